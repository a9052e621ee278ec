package services

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sujeonghan78-lgtm/CargoLoading/internal/catalog"
	"github.com/sujeonghan78-lgtm/CargoLoading/internal/domain"
)

func pairOfCrates() []*domain.Box {
	return []*domain.Box{
		domain.NewBox(1, "", 1000, 1000, 500, 200, true, ""),
		domain.NewBox(2, "", 1000, 1000, 500, 200, true, ""),
	}
}

var squareTruck = domain.VehicleSpec{Name: "square", Mode: domain.ModeTruck, Length: 2000, Width: 2000, Height: 1200, MaxWeight: 1000}

func TestPlanFleetStacksMatchingBoxes(t *testing.T) {
	plan, err := PlanFleet(context.Background(), PlanFleetRequest{
		Boxes:    pairOfCrates(),
		Vehicles: []domain.VehicleSpec{squareTruck},
		Options:  domain.DefaultPlanOptions(),
	})
	require.NoError(t, err)
	require.NotNil(t, plan.Best)

	require.Equal(t, 1, plan.Best.Count())
	bin := plan.Best.Bins[0]
	require.Len(t, bin.Boxes, 2)

	assert.Equal(t, domain.Position{X: 0, Y: 0, Z: 0}, *bin.Boxes[0].Position)
	assert.Equal(t, domain.Position{X: 0, Y: 0, Z: 500}, *bin.Boxes[1].Position)
	assert.Equal(t, 400.0, bin.Weight)
}

func TestPlanFleetWithoutStackingPlacesSideBySide(t *testing.T) {
	opts := domain.DefaultPlanOptions()
	opts.AllowStacking = false

	plan, err := PlanFleet(context.Background(), PlanFleetRequest{
		Boxes:    pairOfCrates(),
		Vehicles: []domain.VehicleSpec{squareTruck},
		Options:  opts,
	})
	require.NoError(t, err)
	require.NotNil(t, plan.Best)

	require.Equal(t, 1, plan.Best.Count())
	bin := plan.Best.Bins[0]
	require.Len(t, bin.Boxes, 2)

	assert.Equal(t, domain.Position{X: 0, Y: 0, Z: 0}, *bin.Boxes[0].Position)
	assert.Equal(t, domain.Position{X: 1000, Y: 0, Z: 0}, *bin.Boxes[1].Position)
}

func TestPlanFleetAbortsOnOverweightBox(t *testing.T) {
	boxes := append(pairOfCrates(), domain.NewBox(3, "anvil", 500, 500, 500, 5000, true, ""))

	plan, err := PlanFleet(context.Background(), PlanFleetRequest{
		Boxes:    boxes,
		Vehicles: []domain.VehicleSpec{squareTruck},
		Options:  domain.DefaultPlanOptions(),
	})
	require.Error(t, err)
	assert.Nil(t, plan)
	assert.ErrorIs(t, err, ErrUnplaceableBoxes)

	var oversize *OversizeError
	require.ErrorAs(t, err, &oversize)
	require.Len(t, oversize.Boxes, 1)
	assert.Equal(t, 3, oversize.Boxes[0].ID)
}

func TestPlanVehicleTypeOpensBinsByWeight(t *testing.T) {
	boxes := make([]*domain.Box, 0, 10)
	for i := 1; i <= 10; i++ {
		boxes = append(boxes, domain.NewBox(i, "", 500, 500, 500, 100, false, ""))
	}
	spec := domain.VehicleSpec{Name: "light", Length: 5000, Width: 5000, Height: 2000, MaxWeight: 900}

	plan, err := PlanVehicleType(context.Background(), spec, boxes, domain.DefaultPlanOptions())
	require.NoError(t, err)

	assert.Equal(t, domain.OutcomeComplete, plan.Outcome)
	require.Equal(t, 2, plan.Count())
	assert.Len(t, plan.Bins[0].Boxes, 9)
	assert.Len(t, plan.Bins[1].Boxes, 1)
	assert.Equal(t, "light #1", plan.Bins[0].Name)
	assert.Equal(t, "light #2", plan.Bins[1].Name)
	assert.Empty(t, plan.Unpacked)
}

func TestPlanVehicleTypeStopsAtBinLimit(t *testing.T) {
	boxes := make([]*domain.Box, 0, 5)
	for i := 1; i <= 5; i++ {
		boxes = append(boxes, domain.NewBox(i, "", 1000, 1000, 1000, 10, false, ""))
	}
	spec := domain.VehicleSpec{Name: "cube", Length: 1000, Width: 1000, Height: 1000, MaxWeight: 1000}

	opts := domain.DefaultPlanOptions()
	opts.MaxBinsPerType = 2

	plan, err := PlanVehicleType(context.Background(), spec, boxes, opts)
	require.NoError(t, err)

	assert.Equal(t, domain.OutcomeBinLimitReached, plan.Outcome)
	assert.Equal(t, 2, plan.Count())
	assert.Equal(t, []int{3, 4, 5}, ids(plan.Unpacked))
	assert.False(t, plan.Complete())
}

func TestPlanVehicleTypeReportsUnplaceableRemainder(t *testing.T) {
	boxes := []*domain.Box{
		domain.NewBox(1, "", 500, 500, 500, 10, false, ""),
		domain.NewBox(2, "", 500, 500, 1500, 10, false, ""),
	}
	spec := domain.VehicleSpec{Name: "low", Length: 2000, Width: 2000, Height: 1000, MaxWeight: 1000}

	plan, err := PlanVehicleType(context.Background(), spec, boxes, domain.DefaultPlanOptions())
	require.NoError(t, err)

	assert.Equal(t, domain.OutcomeUnplaceableRemainder, plan.Outcome)
	assert.Equal(t, 1, plan.Count())
	assert.Equal(t, []int{2}, ids(plan.Unpacked))
}

func sixCubes() []*domain.Box {
	boxes := make([]*domain.Box, 0, 6)
	for i := 1; i <= 6; i++ {
		boxes = append(boxes, domain.NewBox(i, "", 1000, 1000, 1000, 100, false, ""))
	}
	return boxes
}

func TestPlanFleetRecommendsFewestVehicles(t *testing.T) {
	vehicles := []domain.VehicleSpec{
		{Name: "two-slot", Length: 2000, Width: 1000, Height: 1000, MaxWeight: 1000},
		{Name: "three-slot", Length: 3000, Width: 1000, Height: 1000, MaxWeight: 1000},
		{Name: "three-slot-copy", Length: 3000, Width: 1000, Height: 1000, MaxWeight: 1000},
	}

	plan, err := PlanFleet(context.Background(), PlanFleetRequest{
		Boxes:    sixCubes(),
		Vehicles: vehicles,
		Options:  domain.DefaultPlanOptions(),
	})
	require.NoError(t, err)

	require.Len(t, plan.Evaluations, 3)
	assert.Equal(t, 3, plan.Evaluations[0].Count())
	assert.Equal(t, 2, plan.Evaluations[1].Count())
	assert.Equal(t, 2, plan.Evaluations[2].Count())

	require.True(t, plan.Feasible())
	assert.Same(t, plan.Evaluations[1], plan.Best)
	assert.Equal(t, "three-slot", plan.Best.Vehicle.Name)
}

func TestPlanFleetNeverRecommendsIncompleteTypes(t *testing.T) {
	vehicles := []domain.VehicleSpec{
		{Name: "low", Length: 3000, Width: 3000, Height: 500, MaxWeight: 1000},
		{Name: "tall", Length: 1000, Width: 1000, Height: 2000, MaxWeight: 1000},
	}
	boxes := []*domain.Box{domain.NewBox(1, "", 1000, 1000, 1000, 100, false, "")}

	plan, err := PlanFleet(context.Background(), PlanFleetRequest{
		Boxes:    boxes,
		Vehicles: vehicles,
		Options:  domain.DefaultPlanOptions(),
	})
	require.NoError(t, err)

	assert.Equal(t, domain.OutcomeUnplaceableRemainder, plan.Evaluations[0].Outcome)
	assert.Equal(t, 0, plan.Evaluations[0].Count())
	require.NotNil(t, plan.Best)
	assert.Equal(t, "tall", plan.Best.Vehicle.Name)
}

func TestPlanFleetWithNoFeasibleType(t *testing.T) {
	vehicles := []domain.VehicleSpec{
		{Name: "narrow", Length: 1000, Width: 1000, Height: 2000, MaxWeight: 100},
		{Name: "flat", Length: 3000, Width: 3000, Height: 500, MaxWeight: 1000},
	}
	boxes := []*domain.Box{domain.NewBox(1, "", 2000, 2000, 1000, 50, false, "")}

	plan, err := PlanFleet(context.Background(), PlanFleetRequest{
		Boxes:    boxes,
		Vehicles: vehicles,
		Options:  domain.DefaultPlanOptions(),
	})
	require.NoError(t, err)

	assert.False(t, plan.Feasible())
	assert.Nil(t, plan.Best)
	for _, e := range plan.Evaluations {
		assert.Equal(t, domain.OutcomeUnplaceableRemainder, e.Outcome, e.Vehicle.Name)
	}
}

func TestPlanFleetWithNoBoxes(t *testing.T) {
	plan, err := PlanFleet(context.Background(), PlanFleetRequest{
		Vehicles: []domain.VehicleSpec{squareTruck},
		Options:  domain.DefaultPlanOptions(),
	})
	require.NoError(t, err)
	require.NotNil(t, plan.Best)
	assert.Equal(t, 0, plan.Best.Count())
	assert.Equal(t, domain.OutcomeComplete, plan.Best.Outcome)
}

func TestPlanFleetLeavesInputBoxesUntouched(t *testing.T) {
	boxes := pairOfCrates()

	plan, err := PlanFleet(context.Background(), PlanFleetRequest{
		Boxes:    boxes,
		Vehicles: []domain.VehicleSpec{squareTruck, squareTruck},
		Options:  domain.DefaultPlanOptions(),
	})
	require.NoError(t, err)

	for _, b := range boxes {
		assert.Nil(t, b.Position)
		assert.Equal(t, domain.Unrotated, b.Orientation)
	}

	// Each evaluation owns its copies.
	a := plan.Evaluations[0].Bins[0].Boxes[0]
	b := plan.Evaluations[1].Bins[0].Boxes[0]
	assert.NotSame(t, a, b)
	assert.NotSame(t, boxes[0], a)
}

func TestPlanFleetRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name string
		req  PlanFleetRequest
	}{
		{
			name: "empty catalog",
			req:  PlanFleetRequest{Boxes: pairOfCrates()},
		},
		{
			name: "vehicle without a name",
			req: PlanFleetRequest{
				Boxes:    pairOfCrates(),
				Vehicles: []domain.VehicleSpec{{Length: 1, Width: 1, Height: 1, MaxWeight: 1}},
			},
		},
		{
			name: "duplicate box ids",
			req: PlanFleetRequest{
				Boxes:    []*domain.Box{domain.NewBox(1, "", 1, 1, 1, 1, true, ""), domain.NewBox(1, "", 1, 1, 1, 1, true, "")},
				Vehicles: []domain.VehicleSpec{squareTruck},
			},
		},
		{
			name: "box with zero height",
			req: PlanFleetRequest{
				Boxes:    []*domain.Box{domain.NewBox(1, "", 1, 1, 0, 1, true, "")},
				Vehicles: []domain.VehicleSpec{squareTruck},
			},
		},
		{
			name: "box with nan weight",
			req: PlanFleetRequest{
				Boxes:    []*domain.Box{domain.NewBox(1, "", 500, 500, 500, math.NaN(), true, ""), domain.NewBox(2, "", 500, 500, 500, 800, true, "")},
				Vehicles: []domain.VehicleSpec{squareTruck},
			},
		},
		{
			name: "vehicle with infinite payload",
			req: PlanFleetRequest{
				Boxes:    pairOfCrates(),
				Vehicles: []domain.VehicleSpec{{Name: "v", Length: 1, Width: 1, Height: 1, MaxWeight: math.Inf(1)}},
			},
		},
		{
			name: "nil box",
			req: PlanFleetRequest{
				Boxes:    []*domain.Box{nil},
				Vehicles: []domain.VehicleSpec{squareTruck},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := PlanFleet(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestPlanFleetHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := PlanFleet(ctx, PlanFleetRequest{
		Boxes:    pairOfCrates(),
		Vehicles: []domain.VehicleSpec{squareTruck},
		Options:  domain.DefaultPlanOptions(),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func mixedPackingList() []*domain.Box {
	lengths := []float64{600, 800, 1000, 1200}
	widths := []float64{400, 600, 800}
	heights := []float64{300, 500, 700}

	boxes := make([]*domain.Box, 0, 60)
	for i := 0; i < 60; i++ {
		boxes = append(boxes, domain.NewBox(
			i+1, "",
			lengths[i%len(lengths)],
			widths[(i/2)%len(widths)],
			heights[(i/3)%len(heights)],
			float64(50+(i*37)%250),
			i%5 != 0,
			"",
		))
	}
	return boxes
}

func TestPlanFleetPlacementInvariants(t *testing.T) {
	vehicles, err := catalog.Preset(domain.ModeTruck)
	require.NoError(t, err)

	for _, opts := range []domain.PlanOptions{
		domain.DefaultPlanOptions(),
		{AllowRotation: false, AllowStacking: true, SortByWeight: true},
		{AllowRotation: true, AllowStacking: false},
	} {
		boxes := mixedPackingList()
		plan, err := PlanFleet(context.Background(), PlanFleetRequest{
			Boxes:       boxes,
			Vehicles:    vehicles,
			Options:     opts,
			Concurrency: 2,
		})
		require.NoError(t, err)

		for _, eval := range plan.Evaluations {
			seen := map[int]bool{}

			for _, bin := range eval.Bins {
				assert.LessOrEqual(t, bin.Weight, bin.MaxWeight, bin.Name)

				var floor []*domain.Box
				total := 0.0
				for _, b := range bin.Boxes {
					require.NotNil(t, b.Position, "box %d in %s has no position", b.ID, bin.Name)
					assert.False(t, seen[b.ID], "box %d packed twice", b.ID)
					seen[b.ID] = true
					total += b.Weight

					l, w, h := b.EffectiveDimensions()
					p := b.Position
					assert.LessOrEqual(t, p.X+l, bin.Length, "box %d x bound in %s", b.ID, bin.Name)
					assert.LessOrEqual(t, p.Y+w, bin.Width, "box %d y bound in %s", b.ID, bin.Name)
					assert.LessOrEqual(t, p.Z+h, bin.Height, "box %d z bound in %s", b.ID, bin.Name)

					if p.Z == 0 {
						floor = append(floor, b)
					}
				}
				assert.InDelta(t, total, bin.Weight, 1e-9)

				for i := range floor {
					for j := i + 1; j < len(floor); j++ {
						assert.False(t, overlaps(floor[i], floor[j]),
							"boxes %d and %d overlap in %s", floor[i].ID, floor[j].ID, bin.Name)
					}
				}
				assertTowersShareFootprint(t, bin, floor)
			}

			for _, b := range eval.Unpacked {
				assert.False(t, seen[b.ID], "box %d both packed and unpacked", b.ID)
				assert.Nil(t, b.Position)
				seen[b.ID] = true
			}
			assert.Len(t, seen, len(boxes), eval.Vehicle.Name)
		}
	}
}

func overlaps(a, b *domain.Box) bool {
	al, aw, _ := a.EffectiveDimensions()
	bl, bw, _ := b.EffectiveDimensions()
	return a.Position.X < b.Position.X+bl && b.Position.X < a.Position.X+al &&
		a.Position.Y < b.Position.Y+bw && b.Position.Y < a.Position.Y+aw
}

func assertTowersShareFootprint(t *testing.T, bin *domain.Bin, floor []*domain.Box) {
	t.Helper()

	for _, b := range bin.Boxes {
		if b.Position.Z == 0 {
			continue
		}
		var base *domain.Box
		for _, f := range floor {
			if f.Position.X == b.Position.X && f.Position.Y == b.Position.Y {
				base = f
				break
			}
		}
		if !assert.NotNil(t, base, "box %d in %s floats", b.ID, bin.Name) {
			continue
		}
		assert.True(t, b.Stackable, "box %d stacked but not stackable", b.ID)
		assert.True(t, base.Stackable, "base %d carries a load but is not stackable", base.ID)

		bl, bw, _ := b.EffectiveDimensions()
		fl, fw, _ := base.EffectiveDimensions()
		assert.Equal(t, []float64{fl, fw}, []float64{bl, bw}, "box %d footprint differs from base %d", b.ID, base.ID)
	}
}

func TestPlanFleetSequentialMatchesParallel(t *testing.T) {
	vehicles, err := catalog.Preset(domain.ModeContainer)
	require.NoError(t, err)

	run := func(concurrency int) []int {
		plan, err := PlanFleet(context.Background(), PlanFleetRequest{
			Boxes:       mixedPackingList(),
			Vehicles:    vehicles,
			Options:     domain.DefaultPlanOptions(),
			Concurrency: concurrency,
		})
		require.NoError(t, err)
		counts := make([]int, 0, len(plan.Evaluations))
		for _, e := range plan.Evaluations {
			counts = append(counts, e.Count())
		}
		return counts
	}

	assert.Equal(t, run(1), run(0))
}

func TestSelectBest(t *testing.T) {
	mk := func(name string, bins int, outcome domain.Outcome) *domain.VehiclePlan {
		return &domain.VehiclePlan{
			Vehicle: domain.VehicleSpec{Name: name},
			Bins:    make([]*domain.Bin, bins),
			Outcome: outcome,
		}
	}

	tests := []struct {
		name  string
		evals []*domain.VehiclePlan
		want  string
	}{
		{
			name:  "fewest bins",
			evals: []*domain.VehiclePlan{mk("a", 3, domain.OutcomeComplete), mk("b", 2, domain.OutcomeComplete)},
			want:  "b",
		},
		{
			name:  "tie goes to the first",
			evals: []*domain.VehiclePlan{mk("a", 2, domain.OutcomeComplete), mk("b", 2, domain.OutcomeComplete)},
			want:  "a",
		},
		{
			name:  "incomplete plans are skipped",
			evals: []*domain.VehiclePlan{mk("a", 1, domain.OutcomeBinLimitReached), mk("b", 4, domain.OutcomeComplete)},
			want:  "b",
		},
		{
			name:  "nothing complete",
			evals: []*domain.VehiclePlan{mk("a", 1, domain.OutcomeUnplaceableRemainder), nil},
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			best := SelectBest(tt.evals)
			if tt.want == "" {
				assert.Nil(t, best)
				return
			}
			require.NotNil(t, best)
			assert.Equal(t, tt.want, best.Vehicle.Name)
		})
	}
}
