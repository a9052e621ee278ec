package ports

import (
	"context"

	"github.com/sujeonghan78-lgtm/CargoLoading/internal/domain"
)

// Port: a boundary for the current packing list.
type BoxRepository interface {
	// Retrieve every box on the packing list, ordered by id.
	ListBoxes(ctx context.Context) ([]*domain.Box, error)
	// Replace the whole packing list with boxes.
	ReplaceBoxes(ctx context.Context, boxes []*domain.Box) error
}
