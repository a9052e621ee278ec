package domain

import "testing"

func TestStackAccepts(t *testing.T) {
	base := NewBox(1, "", 1000, 600, 500, 200, true, "")

	tests := []struct {
		name      string
		candidate *Box
		maxHeight float64
		maxWeight float64
		want      bool
	}{
		{"same footprint", NewBox(2, "", 1000, 600, 500, 100, true, ""), 1200, 1000, true},
		{"crosswise footprint", NewBox(3, "", 600, 1000, 500, 100, true, ""), 1200, 1000, true},
		{"different footprint", NewBox(4, "", 1000, 500, 500, 100, true, ""), 1200, 1000, false},
		{"not stackable", NewBox(5, "", 1000, 600, 500, 100, false, ""), 1200, 1000, false},
		{"too tall together", NewBox(6, "", 1000, 600, 800, 100, true, ""), 1200, 1000, false},
		{"too heavy together", NewBox(7, "", 1000, 600, 500, 900, true, ""), 1200, 1000, false},
		{"exactly at limits", NewBox(8, "", 1000, 600, 700, 800, true, ""), 1200, 1000, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStack(base)
			if got := s.Accepts(tt.candidate, tt.maxHeight, tt.maxWeight); got != tt.want {
				t.Errorf("Accepts() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStackAggregates(t *testing.T) {
	s := NewStack(NewBox(1, "", 1000, 600, 500, 200, true, ""))
	s.Push(NewBox(2, "", 600, 1000, 300, 50, true, ""))

	if s.Height != 800 || s.Weight != 250 {
		t.Errorf("aggregates = height %g weight %g, want 800 and 250", s.Height, s.Weight)
	}
	l, w, h := s.DimensionsFor(Rotated)
	if l != 600 || w != 1000 || h != 800 {
		t.Errorf("rotated dims = %gx%gx%g, want 600x1000x800", l, w, h)
	}
}

func TestLimitsOf(t *testing.T) {
	got := LimitsOf([]VehicleSpec{
		{Name: "A", Length: 2800, Width: 1600, Height: 1700, MaxWeight: 1000},
		{Name: "B", Length: 2000, Width: 2400, Height: 1500, MaxWeight: 3000},
	})
	want := CatalogLimits{Length: 2800, Width: 2400, Height: 1700, MaxWeight: 3000}
	if got != want {
		t.Errorf("LimitsOf() = %+v, want %+v", got, want)
	}
}
