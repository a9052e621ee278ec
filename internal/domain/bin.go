package domain

import "fmt"

// One vehicle instance being filled.
// Floor placement follows a shelf layout: stacks go left to right along the
// length and wrap to a new row across the width. The cursor is only
// meaningful while the bin is being filled.
type Bin struct {
	Name      string
	Vehicle   VehicleSpec
	Length    float64
	Width     float64
	Height    float64
	MaxWeight float64
	Boxes     []*Box
	Weight    float64

	cursorX     float64
	cursorY     float64
	rowMaxWidth float64
}

// NewBin creates the seq-th (1-based) bin of a vehicle type.
func NewBin(spec VehicleSpec, seq int) *Bin {
	return &Bin{
		Name:      fmt.Sprintf("%s #%d", spec.Name, seq),
		Vehicle:   spec,
		Length:    spec.Length,
		Width:     spec.Width,
		Height:    spec.Height,
		MaxWeight: spec.MaxWeight,
	}
}

// RemainingWeight returns the payload still available.
func (b *Bin) RemainingWeight() float64 { return b.MaxWeight - b.Weight }

// Load places a stack on the floor and assigns positions and orientations to
// its boxes. On failure the bin's packed contents are unchanged; a row wrap
// performed while trying may persist.
func (b *Bin) Load(s *Stack, allowRotation bool) error {
	if s.Weight > b.RemainingWeight() {
		return fmt.Errorf("load bin: %s: %w (have %g of %g, stack %g)", b.Name, ErrPayloadExceeded, b.Weight, b.MaxWeight, s.Weight)
	}
	if s.Height > b.Height {
		return fmt.Errorf("load bin: %s: %w (stack %g, interior %g)", b.Name, ErrExceedsHeight, s.Height, b.Height)
	}

	orientations := []Orientation{Unrotated}
	if allowRotation {
		orientations = append(orientations, Rotated)
	}

	for _, o := range orientations {
		l, w, _ := s.DimensionsFor(o)

		if !b.fits(l, w) {
			if b.cursorY+w > b.Width {
				continue
			}
			// Start a new row past the widest stack of the current one.
			b.cursorX = 0
			b.cursorY += b.rowMaxWidth
			b.rowMaxWidth = 0
			if !b.fits(l, w) {
				continue
			}
		}

		b.commit(s, o, l, w)
		return nil
	}

	return fmt.Errorf("load bin: %s: %w", b.Name, ErrNoFloorSpace)
}

func (b *Bin) fits(l, w float64) bool {
	return b.cursorX+l <= b.Length && b.cursorY+w <= b.Width
}

func (b *Bin) commit(s *Stack, o Orientation, l, w float64) {
	s.Orientation = o
	z := 0.0
	for _, box := range s.Boxes {
		box.Orientation = s.memberOrientation(box, o)
		box.Position = &Position{X: b.cursorX, Y: b.cursorY, Z: z}
		z += box.Height
		b.Boxes = append(b.Boxes, box)
	}
	b.Weight += s.Weight
	b.cursorX += l
	b.rowMaxWidth = max(b.rowMaxWidth, w)
}

// PackedIDs returns the ids of all boxes in the bin.
func (b *Bin) PackedIDs() map[int]struct{} {
	ids := make(map[int]struct{}, len(b.Boxes))
	for _, box := range b.Boxes {
		ids[box.ID] = struct{}{}
	}
	return ids
}

// VolumeUtilization returns packed box volume over interior volume, in percent.
func (b *Bin) VolumeUtilization() float64 {
	capacity := b.Length * b.Width * b.Height
	if capacity <= 0 {
		return 0
	}
	used := 0.0
	for _, box := range b.Boxes {
		used += box.Volume
	}
	return used / capacity * 100
}

// WeightUtilization returns payload over max payload, in percent.
func (b *Bin) WeightUtilization() float64 {
	if b.MaxWeight <= 0 {
		return 0
	}
	return b.Weight / b.MaxWeight * 100
}
