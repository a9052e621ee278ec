package domain

// Immutable 3D placement coordinates of a box's minimum corner inside a bin.
// X runs along the bin length, Y along its width, Z along its height.
type Position struct {
	X float64
	Y float64
	Z float64
}
