package memory

import "golang.org/x/exp/constraints"

// Align rounds a up to the next multiple of b, which must be a power of
// two. Collaborators that enforce alignment (an MMU layer, a register file)
// round addresses before delegating to the typed access layer.
func Align[I constraints.Integer](a, b I) I {
	return (a + b - 1) &^ (b - 1)
}
