// Package memory provides in-process implementations of the ports, used by
// the CLI and by tests.
package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/sujeonghan78-lgtm/CargoLoading/internal/domain"
)

// In-memory packing list.
type BoxRepository struct {
	mu    sync.RWMutex
	boxes []*domain.Box
}

func NewBoxRepository(boxes ...*domain.Box) *BoxRepository {
	r := &BoxRepository{}
	r.set(boxes)
	return r
}

// Return copies of the stored boxes ordered by id.
func (r *BoxRepository) ListBoxes(ctx context.Context) ([]*domain.Box, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return domain.CloneBoxes(r.boxes), nil
}

func (r *BoxRepository) ReplaceBoxes(ctx context.Context, boxes []*domain.Box) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.set(boxes)
	return nil
}

func (r *BoxRepository) set(boxes []*domain.Box) {
	stored := domain.CloneBoxes(boxes)
	slices.SortStableFunc(stored, func(a, b *domain.Box) int { return cmp.Compare(a.ID, b.ID) })

	r.mu.Lock()
	r.boxes = stored
	r.mu.Unlock()
}
