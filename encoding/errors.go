package encoding

import "errors"

var (
	ErrDecodeTarget = errors.New("decode target must be a pointer")
)
