package domain

// DefaultMaxBinsPerType bounds how many bins of one vehicle type a plan may open.
const DefaultMaxBinsPerType = 50

// Knobs for one planning run.
type PlanOptions struct {
	AllowRotation  bool
	AllowStacking  bool
	SortByWeight   bool
	MaxBinsPerType int
}

// DefaultPlanOptions mirrors the defaults offered to users: rotation and
// stacking allowed, volume-first ordering.
func DefaultPlanOptions() PlanOptions {
	return PlanOptions{
		AllowRotation:  true,
		AllowStacking:  true,
		MaxBinsPerType: DefaultMaxBinsPerType,
	}
}

// BinLimit returns MaxBinsPerType, falling back to the default when unset.
func (o PlanOptions) BinLimit() int {
	if o.MaxBinsPerType <= 0 {
		return DefaultMaxBinsPerType
	}
	return o.MaxBinsPerType
}

// Outcome explains how the evaluation of one vehicle type ended.
type Outcome string

const (
	OutcomeComplete             Outcome = "complete"
	OutcomeUnplaceableRemainder Outcome = "unplaceable_remainder"
	OutcomeBinLimitReached      Outcome = "bin_limit_reached"
)

// Represents how one vehicle type would carry the packing list.
// It is planning output only: a VehiclePlan is never reused as input.
type VehiclePlan struct {
	Vehicle  VehicleSpec
	Bins     []*Bin
	Unpacked []*Box
	Outcome  Outcome
}

// Complete reports whether every box found a bin.
func (p *VehiclePlan) Complete() bool { return p.Outcome == OutcomeComplete }

// Count returns the number of bins used.
func (p *VehiclePlan) Count() int { return len(p.Bins) }

// Represents the comparison across a whole vehicle catalog.
// Evaluations keep catalog order; Best points into Evaluations and is nil
// when no vehicle type carries every box.
type FleetPlan struct {
	Options     PlanOptions
	Evaluations []*VehiclePlan
	Best        *VehiclePlan
}

// Feasible reports whether some vehicle type carries the whole list.
func (f *FleetPlan) Feasible() bool { return f.Best != nil }
