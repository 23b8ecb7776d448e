package memory

import "errors"

var (
	ErrOutOfRange = errors.New("address out of range")
)
