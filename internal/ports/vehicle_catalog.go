package ports

import (
	"context"

	"github.com/sujeonghan78-lgtm/CargoLoading/internal/domain"
)

// Contract for retrieving candidate vehicle types.
type VehicleCatalog interface {
	// Return the vehicle types of one mode in catalog order.
	ListVehicles(ctx context.Context, mode domain.Mode) ([]domain.VehicleSpec, error)
	// Replace the vehicle types of one mode; order is preserved.
	ReplaceVehicles(ctx context.Context, mode domain.Mode, specs []domain.VehicleSpec) error
}
