package domain

import (
	"fmt"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// Orientation records whether a box's length and width are swapped
// relative to its nominal dimensions. Height never changes.
type Orientation int

const (
	Unrotated Orientation = 0
	Rotated   Orientation = 1
)

// Flip returns the other orientation.
func (o Orientation) Flip() Orientation {
	if o == Rotated {
		return Unrotated
	}
	return Rotated
}

// Represents a single cargo item on a packing list.
// Dimensions are millimeters, weight is kilograms. Orientation and Position
// are the only fields written after construction, and only while a bin is
// being filled.
type Box struct {
	ID          int
	Name        string
	Length      float64
	Width       float64
	Height      float64
	Weight      float64
	Volume      float64
	Stackable   bool
	Description string
	Color       string

	Orientation Orientation
	Position    *Position
}

// NewBox builds a Box and derives its volume and display color.
func NewBox(id int, name string, length, width, height, weight float64, stackable bool, description string) *Box {
	if name == "" {
		name = fmt.Sprintf("NO.%d", id)
	}
	return &Box{
		ID:          id,
		Name:        name,
		Length:      length,
		Width:       width,
		Height:      height,
		Weight:      weight,
		Volume:      length * width * height,
		Stackable:   stackable,
		Description: description,
		Color:       boxColor(id),
	}
}

// EffectiveDimensions returns (length, width, height) under the current orientation.
func (b *Box) EffectiveDimensions() (float64, float64, float64) {
	return b.DimensionsFor(b.Orientation)
}

// DimensionsFor returns (length, width, height) as if the box had orientation o.
func (b *Box) DimensionsFor(o Orientation) (float64, float64, float64) {
	if o == Rotated {
		return b.Width, b.Length, b.Height
	}
	return b.Length, b.Width, b.Height
}


// Packed reports whether the box has been assigned a position.
func (b *Box) Packed() bool { return b.Position != nil }

// Clone returns an independent copy, including the position.
func (b *Box) Clone() *Box {
	c := *b
	if b.Position != nil {
		p := *b.Position
		c.Position = &p
	}
	return &c
}

// CloneBoxes deep-copies a box list.
func CloneBoxes(boxes []*Box) []*Box {
	out := make([]*Box, 0, len(boxes))
	for _, b := range boxes {
		out = append(out, b.Clone())
	}
	return out
}

// Validate checks the physical fields of a box.
func (b *Box) Validate() error {
	if !finite(b.Length, b.Width, b.Height, b.Weight) {
		return fmt.Errorf("box %d: dimensions and weight must be finite", b.ID)
	}
	if b.Length <= 0 || b.Width <= 0 || b.Height <= 0 {
		return fmt.Errorf("box %d: dimensions must be positive (%gx%gx%g)", b.ID, b.Length, b.Width, b.Height)
	}
	if b.Weight < 0 {
		return fmt.Errorf("box %d: weight cannot be negative (%g)", b.ID, b.Weight)
	}
	return nil
}

// boxColor maps an id to a light rgb() color so renderers get stable colors per box.
func boxColor(id int) string {
	h := xxhash.Sum64String(strconv.Itoa(id))
	r := 150 + h%100
	g := 150 + (h>>16)%100
	b := 150 + (h>>32)%100
	return fmt.Sprintf("rgb(%d, %d, %d)", r, g, b)
}
