package dto

import "github.com/sujeonghan78-lgtm/CargoLoading/internal/domain"

// PlanRequest asks for a fleet plan. Boxes and vehicles default to the
// stored packing list and the catalog for mode.
type PlanRequest struct {
	Mode           string           `json:"mode" validate:"omitempty,max=32"`
	Boxes          []BoxRequest     `json:"boxes" validate:"omitempty,dive"`
	Vehicles       []VehicleRequest `json:"vehicles" validate:"omitempty,dive"`
	AllowRotation  *bool            `json:"allow_rotation"`
	AllowStacking  *bool            `json:"allow_stacking"`
	SortByWeight   bool             `json:"sort_by_weight"`
	MaxBinsPerType int              `json:"max_bins_per_type" validate:"gte=0,lte=500"`
}

// Options applies the request's flags over defaults.
func (r PlanRequest) Options(defaults domain.PlanOptions) domain.PlanOptions {
	opts := defaults
	if r.AllowRotation != nil {
		opts.AllowRotation = *r.AllowRotation
	}
	if r.AllowStacking != nil {
		opts.AllowStacking = *r.AllowStacking
	}
	if r.SortByWeight {
		opts.SortByWeight = true
	}
	if r.MaxBinsPerType > 0 {
		opts.MaxBinsPerType = r.MaxBinsPerType
	}
	return opts
}

type OptionsResponse struct {
	AllowRotation  bool `json:"allow_rotation"`
	AllowStacking  bool `json:"allow_stacking"`
	SortByWeight   bool `json:"sort_by_weight"`
	MaxBinsPerType int  `json:"max_bins_per_type"`
}

type RecommendationResponse struct {
	Vehicle VehicleResponse `json:"vehicle"`
	Count   int             `json:"count"`
}

// EvaluationResponse is one row of the vehicle type comparison.
type EvaluationResponse struct {
	Vehicle        VehicleResponse `json:"vehicle"`
	Count          int             `json:"count"`
	Outcome        string          `json:"outcome"`
	UnpackedBoxIDs []int           `json:"unpacked_box_ids"`
}

type PackedBoxResponse struct {
	ID          int        `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Length      float64    `json:"length"`
	Width       float64    `json:"width"`
	Height      float64    `json:"height"`
	Weight      float64    `json:"weight"`
	Rotated     bool       `json:"rotated"`
	Dimensions  [3]float64 `json:"effective_dimensions"`
	Position    [3]float64 `json:"position"`
	Color       string     `json:"color"`
}

type BinResponse struct {
	Name              string              `json:"name"`
	Weight            float64             `json:"weight"`
	MaxWeight         float64             `json:"max_weight"`
	VolumeUtilization float64             `json:"volume_utilization"`
	WeightUtilization float64             `json:"weight_utilization"`
	Boxes             []PackedBoxResponse `json:"boxes"`
}

type PlanResponse struct {
	PlanID      string                  `json:"plan_id"`
	Feasible    bool                    `json:"feasible"`
	Recommended *RecommendationResponse `json:"recommended,omitempty"`
	Options     OptionsResponse         `json:"options"`
	Evaluations []EvaluationResponse    `json:"evaluations"`
	// Bins of the recommended vehicle type; empty when infeasible.
	Bins []BinResponse `json:"bins"`
}

// NewPlanResponse flattens a fleet plan for transport.
func NewPlanResponse(planID string, plan *domain.FleetPlan) PlanResponse {
	res := PlanResponse{
		PlanID:   planID,
		Feasible: plan.Feasible(),
		Options: OptionsResponse{
			AllowRotation:  plan.Options.AllowRotation,
			AllowStacking:  plan.Options.AllowStacking,
			SortByWeight:   plan.Options.SortByWeight,
			MaxBinsPerType: plan.Options.BinLimit(),
		},
		Evaluations: make([]EvaluationResponse, 0, len(plan.Evaluations)),
		Bins:        []BinResponse{},
	}

	for _, e := range plan.Evaluations {
		unpacked := make([]int, 0, len(e.Unpacked))
		for _, b := range e.Unpacked {
			unpacked = append(unpacked, b.ID)
		}
		res.Evaluations = append(res.Evaluations, EvaluationResponse{
			Vehicle:        NewVehicleResponse(e.Vehicle),
			Count:          e.Count(),
			Outcome:        string(e.Outcome),
			UnpackedBoxIDs: unpacked,
		})
	}

	if plan.Best == nil {
		return res
	}

	res.Recommended = &RecommendationResponse{
		Vehicle: NewVehicleResponse(plan.Best.Vehicle),
		Count:   plan.Best.Count(),
	}
	for _, bin := range plan.Best.Bins {
		res.Bins = append(res.Bins, NewBinResponse(bin))
	}
	return res
}

func NewBinResponse(bin *domain.Bin) BinResponse {
	boxes := make([]PackedBoxResponse, 0, len(bin.Boxes))
	for _, b := range bin.Boxes {
		l, w, h := b.EffectiveDimensions()
		var pos [3]float64
		if b.Position != nil {
			pos = [3]float64{b.Position.X, b.Position.Y, b.Position.Z}
		}
		boxes = append(boxes, PackedBoxResponse{
			ID:          b.ID,
			Name:        b.Name,
			Description: b.Description,
			Length:      b.Length,
			Width:       b.Width,
			Height:      b.Height,
			Weight:      b.Weight,
			Rotated:     b.Orientation == domain.Rotated,
			Dimensions:  [3]float64{l, w, h},
			Position:    pos,
			Color:       b.Color,
		})
	}

	return BinResponse{
		Name:              bin.Name,
		Weight:            bin.Weight,
		MaxWeight:         bin.MaxWeight,
		VolumeUtilization: bin.VolumeUtilization(),
		WeightUtilization: bin.WeightUtilization(),
		Boxes:             boxes,
	}
}

// OversizeResponse lists the boxes no vehicle in the catalog can carry.
type OversizeResponse struct {
	Error string        `json:"error"`
	Boxes []BoxResponse `json:"boxes"`
}
