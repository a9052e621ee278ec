package services

import (
	"github.com/sujeonghan78-lgtm/CargoLoading/internal/domain"
)

// CheckOversize rejects boxes that cannot fit any vehicle in the catalog.
//
// Limits are taken per axis across the whole catalog. A box is rejected when
// it is taller than the tallest vehicle, heavier than the largest payload, or
// its shorter side exceeds both the longest and the widest floor dimension.
// It returns nil when every box passes.
func CheckOversize(boxes []*domain.Box, vehicles []domain.VehicleSpec) *OversizeError {
	limits := domain.LimitsOf(vehicles)

	var rejected []*domain.Box
	for _, b := range boxes {
		shorter := min(b.Length, b.Width)
		switch {
		case b.Height > limits.Height,
			b.Weight > limits.MaxWeight,
			shorter > limits.Width && shorter > limits.Length:
			rejected = append(rejected, b)
		}
	}

	if len(rejected) == 0 {
		return nil
	}
	return &OversizeError{Boxes: rejected, Limits: limits}
}
