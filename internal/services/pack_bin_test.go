package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sujeonghan78-lgtm/CargoLoading/internal/domain"
)

func ids(boxes []*domain.Box) []int {
	out := make([]int, 0, len(boxes))
	for _, b := range boxes {
		out = append(out, b.ID)
	}
	return out
}

func TestSortForPacking(t *testing.T) {
	a := domain.NewBox(1, "", 100, 100, 100, 10, true, "")
	b := domain.NewBox(2, "", 200, 200, 200, 5, true, "")
	c := domain.NewBox(3, "", 100, 100, 100, 20, true, "")
	input := []*domain.Box{a, b, c}

	tests := []struct {
		name     string
		byWeight bool
		want     []int
	}{
		{name: "volume first keeps input order on ties", byWeight: false, want: []int{2, 1, 3}},
		{name: "weight first", byWeight: true, want: []int{3, 1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SortForPacking(input, tt.byWeight)
			assert.Equal(t, tt.want, ids(got))
			assert.Equal(t, []int{1, 2, 3}, ids(input), "input must not be reordered")
		})
	}
}

func TestSortForPackingWeightTieBreaksOnVolume(t *testing.T) {
	small := domain.NewBox(1, "", 100, 100, 100, 10, true, "")
	large := domain.NewBox(2, "", 300, 300, 300, 10, true, "")

	got := SortForPacking([]*domain.Box{small, large}, true)
	assert.Equal(t, []int{2, 1}, ids(got))
}

func TestBuildStacks(t *testing.T) {
	bin := domain.NewBin(domain.VehicleSpec{Name: "v", Length: 2000, Width: 2000, Height: 1200, MaxWeight: 1000}, 1)

	newBoxes := func(baseStackable bool) []*domain.Box {
		return []*domain.Box{
			domain.NewBox(1, "", 1000, 1000, 500, 100, baseStackable, ""),
			domain.NewBox(2, "", 800, 800, 400, 100, true, ""),
			domain.NewBox(3, "", 1000, 1000, 400, 100, true, ""),
			domain.NewBox(4, "", 1000, 1000, 300, 100, true, ""),
		}
	}

	tests := []struct {
		name          string
		baseStackable bool
		allowStacking bool
		want          [][]int
	}{
		{
			name:          "first matching boxes go on top until the height is used",
			baseStackable: true,
			allowStacking: true,
			want:          [][]int{{1, 3, 4}, {2}},
		},
		{
			name:          "non-stackable base stays alone",
			baseStackable: false,
			allowStacking: true,
			want:          [][]int{{1}, {3, 4}, {2}},
		},
		{
			name:          "stacking disabled",
			baseStackable: true,
			allowStacking: false,
			want:          [][]int{{1}, {3}, {4}, {2}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sorted := SortForPacking(newBoxes(tt.baseStackable), false)
			stacks := BuildStacks(sorted, bin, tt.allowStacking)

			got := make([][]int, 0, len(stacks))
			for _, s := range stacks {
				got = append(got, ids(s.Boxes))
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildStacksRespectsWeightAndAcceptsCrosswise(t *testing.T) {
	bin := domain.NewBin(domain.VehicleSpec{Name: "v", Length: 3000, Width: 3000, Height: 3000, MaxWeight: 500}, 1)

	base := domain.NewBox(1, "", 1000, 500, 500, 300, true, "")
	tooHeavy := domain.NewBox(2, "", 1000, 500, 400, 250, true, "")
	crosswise := domain.NewBox(3, "", 500, 1000, 300, 100, true, "")

	stacks := BuildStacks(SortForPacking([]*domain.Box{base, tooHeavy, crosswise}, false), bin, true)

	require.Len(t, stacks, 2)
	assert.Equal(t, []int{1, 3}, ids(stacks[0].Boxes))
	assert.Equal(t, 800.0, stacks[0].Height)
	assert.Equal(t, 400.0, stacks[0].Weight)
	assert.Equal(t, []int{2}, ids(stacks[1].Boxes))
}

func TestPackBinReturnsLeftoversInInputOrder(t *testing.T) {
	bin := domain.NewBin(domain.VehicleSpec{Name: "v", Length: 1000, Width: 1000, Height: 1000, MaxWeight: 1000}, 1)
	boxes := []*domain.Box{
		domain.NewBox(7, "", 1000, 1000, 500, 10, false, ""),
		domain.NewBox(3, "", 1000, 1000, 500, 10, false, ""),
		domain.NewBox(5, "", 1000, 1000, 500, 10, false, ""),
	}

	left := PackBin(bin, boxes, domain.DefaultPlanOptions())

	require.Len(t, bin.Boxes, 1)
	assert.Equal(t, 7, bin.Boxes[0].ID)
	assert.Equal(t, []int{3, 5}, ids(left))
	for _, b := range left {
		assert.Nil(t, b.Position, "box %d should stay unplaced", b.ID)
		assert.Equal(t, domain.Unrotated, b.Orientation)
	}
}

func TestPackBinStacksWhenAllowed(t *testing.T) {
	spec := domain.VehicleSpec{Name: "v", Length: 1000, Width: 1000, Height: 1000, MaxWeight: 1000}
	newBoxes := func() []*domain.Box {
		return []*domain.Box{
			domain.NewBox(1, "", 1000, 1000, 500, 10, true, ""),
			domain.NewBox(2, "", 1000, 1000, 500, 10, true, ""),
		}
	}

	stacked := domain.NewBin(spec, 1)
	left := PackBin(stacked, newBoxes(), domain.DefaultPlanOptions())
	assert.Empty(t, left)
	assert.Len(t, stacked.Boxes, 2)

	opts := domain.DefaultPlanOptions()
	opts.AllowStacking = false
	flat := domain.NewBin(spec, 1)
	left = PackBin(flat, newBoxes(), opts)
	assert.Equal(t, []int{2}, ids(left))
}
