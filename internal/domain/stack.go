package domain

// A vertical tower of boxes sharing one footprint, placed as a single unit.
// Boxes are ordered bottom to top; the base footprint comes from the first box.
type Stack struct {
	Boxes       []*Box
	Length      float64
	Width       float64
	Height      float64
	Weight      float64
	Orientation Orientation
}

// NewStack starts a stack with base as its bottom box.
func NewStack(base *Box) *Stack {
	return &Stack{
		Boxes:  []*Box{base},
		Length: base.Length,
		Width:  base.Width,
		Height: base.Height,
		Weight: base.Weight,
	}
}

// Base returns the bottom box.
func (s *Stack) Base() *Box { return s.Boxes[0] }

// FootprintMatches reports whether b sits on a's footprint either directly
// or turned by 90 degrees.
func FootprintMatches(a, b *Box) bool {
	if a.Length == b.Length && a.Width == b.Width {
		return true
	}
	return a.Length == b.Width && a.Width == b.Length
}

// Accepts reports whether c can go on top of the stack without exceeding
// the given height and weight limits.
func (s *Stack) Accepts(c *Box, maxHeight, maxWeight float64) bool {
	if !c.Stackable {
		return false
	}
	if !FootprintMatches(s.Base(), c) {
		return false
	}
	return s.Height+c.Height <= maxHeight && s.Weight+c.Weight <= maxWeight
}

// Push puts b on top and updates the aggregates.
func (s *Stack) Push(b *Box) {
	s.Boxes = append(s.Boxes, b)
	s.Height += b.Height
	s.Weight += b.Weight
}

// EffectiveDimensions returns the stack's (length, width, height) under its orientation.
func (s *Stack) EffectiveDimensions() (float64, float64, float64) {
	return s.DimensionsFor(s.Orientation)
}

// DimensionsFor returns the stack's (length, width, height) for orientation o.
func (s *Stack) DimensionsFor(o Orientation) (float64, float64, float64) {
	if o == Rotated {
		return s.Width, s.Length, s.Height
	}
	return s.Length, s.Width, s.Height
}

// memberOrientation picks the orientation that lines b's effective footprint
// up with the stack's footprint under o. Crosswise members get the flipped one.
func (s *Stack) memberOrientation(b *Box, o Orientation) Orientation {
	if b.Length == s.Length && b.Width == s.Width {
		return o
	}
	return o.Flip()
}
