package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/sujeonghan78-lgtm/CargoLoading/internal/domain"
)

// In-memory vehicle catalog keyed by mode.
type VehicleCatalog struct {
	mu    sync.RWMutex
	specs map[domain.Mode][]domain.VehicleSpec
}

func NewVehicleCatalog() *VehicleCatalog {
	return &VehicleCatalog{specs: map[domain.Mode][]domain.VehicleSpec{}}
}

func (c *VehicleCatalog) ListVehicles(ctx context.Context, mode domain.Mode) ([]domain.VehicleSpec, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.specs[mode]), nil
}

func (c *VehicleCatalog) ReplaceVehicles(ctx context.Context, mode domain.Mode, specs []domain.VehicleSpec) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	stored := slices.Clone(specs)
	for i := range stored {
		stored[i].Mode = mode
	}

	c.mu.Lock()
	c.specs[mode] = stored
	c.mu.Unlock()
	return nil
}
