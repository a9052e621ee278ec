package services

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/sujeonghan78-lgtm/CargoLoading/internal/domain"
	"github.com/sujeonghan78-lgtm/CargoLoading/internal/platform/obs"
)

type PlanFleetRequest struct {
	Boxes    []*domain.Box
	Vehicles []domain.VehicleSpec
	Options  domain.PlanOptions
	// Concurrency caps how many vehicle types are evaluated at once.
	// Zero evaluates all of them in parallel.
	Concurrency int
}

// PlanVehicleType works out how many bins of one vehicle type the boxes need.
//
// Bins are opened one at a time and filled with whatever is still unpacked,
// until nothing is left, a pass places no box at all, or the bin limit is
// reached. The boxes are cloned first, so the caller's boxes are never
// modified and evaluations of different types cannot see each other's state.
func PlanVehicleType(
	ctx context.Context,
	spec domain.VehicleSpec,
	boxes []*domain.Box,
	opts domain.PlanOptions,
) (*domain.VehiclePlan, error) {
	remaining := domain.CloneBoxes(boxes)
	limit := opts.BinLimit()

	plan := &domain.VehiclePlan{
		Vehicle: spec,
		Bins:    []*domain.Bin{},
	}

	for len(remaining) > 0 && len(plan.Bins) < limit {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("plan vehicle type %q: %w", spec.Name, err)
		}

		bin := domain.NewBin(spec, len(plan.Bins)+1)
		leftover := PackBin(bin, remaining, opts)

		// An empty bin means the remainder cannot be placed in this type at all.
		if len(bin.Boxes) == 0 {
			break
		}

		plan.Bins = append(plan.Bins, bin)
		remaining = leftover
	}

	plan.Unpacked = remaining
	switch {
	case len(remaining) == 0:
		plan.Outcome = domain.OutcomeComplete
	case len(plan.Bins) >= limit:
		plan.Outcome = domain.OutcomeBinLimitReached
	default:
		plan.Outcome = domain.OutcomeUnplaceableRemainder
	}

	slog.DebugContext(ctx, "vehicle type evaluated",
		"vehicle", spec.Name,
		"bins", len(plan.Bins),
		"unpacked", len(plan.Unpacked),
		"outcome", plan.Outcome,
	)

	return plan, nil
}

// PlanFleet evaluates every vehicle type in the catalog and recommends the one
// needing the fewest vehicles.
//
// Boxes that no vehicle could ever carry abort the run with an *OversizeError
// before any packing. Vehicle types that cannot carry every box are kept in
// the result but never recommended; ties go to the type listed first.
func PlanFleet(ctx context.Context, req PlanFleetRequest) (_ *domain.FleetPlan, err error) {
	defer obs.Time(ctx, "plan.fleet")(&err)

	if err := validateFleetRequest(req); err != nil {
		return nil, fmt.Errorf("plan fleet: %w", err)
	}

	if oversize := CheckOversize(req.Boxes, req.Vehicles); oversize != nil {
		return nil, fmt.Errorf("plan fleet: %w", oversize)
	}

	evaluations := make([]*domain.VehiclePlan, len(req.Vehicles))

	limit := req.Concurrency
	if limit <= 0 {
		limit = len(req.Vehicles)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, spec := range req.Vehicles {
		g.Go(func() error {
			plan, err := PlanVehicleType(gctx, spec, req.Boxes, req.Options)
			if err != nil {
				return err
			}
			evaluations[i] = plan
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("plan fleet: %w", err)
	}

	return &domain.FleetPlan{
		Options:     req.Options,
		Evaluations: evaluations,
		Best:        SelectBest(evaluations),
	}, nil
}

// SelectBest returns the complete evaluation with the fewest bins, preferring
// the earliest one on ties. It returns nil when none is complete.
func SelectBest(evaluations []*domain.VehiclePlan) *domain.VehiclePlan {
	var best *domain.VehiclePlan
	for _, e := range evaluations {
		if e == nil || !e.Complete() {
			continue
		}
		// Strict comparison keeps the first type with the minimum count.
		if best == nil || e.Count() < best.Count() {
			best = e
		}
	}
	return best
}

func validateFleetRequest(req PlanFleetRequest) error {
	if len(req.Vehicles) == 0 {
		return fmt.Errorf("%w: vehicle catalog must not be empty", ErrInvalidInput)
	}

	for i, v := range req.Vehicles {
		if err := v.Validate(); err != nil {
			return fmt.Errorf("%w: vehicle at index %d: %v", ErrInvalidInput, i, err)
		}
	}

	seen := make(map[int]struct{}, len(req.Boxes))
	for i, b := range req.Boxes {
		if b == nil {
			return fmt.Errorf("%w: box at index %d is nil", ErrInvalidInput, i)
		}
		if err := b.Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		if _, ok := seen[b.ID]; ok {
			return fmt.Errorf("%w: duplicate box id %d", ErrInvalidInput, b.ID)
		}
		seen[b.ID] = struct{}{}
	}

	return nil
}
