package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sujeonghan78-lgtm/CargoLoading/internal/domain"
)

var (
	// ErrInvalidInput marks planning input that cannot be evaluated at all.
	ErrInvalidInput = errors.New("invalid planning input")
	// ErrUnplaceableBoxes marks boxes that no vehicle in the catalog could carry.
	ErrUnplaceableBoxes = errors.New("boxes exceed every vehicle in the catalog")
)

// OversizeError lists boxes rejected by the catalog-wide pre-check.
type OversizeError struct {
	Boxes  []*domain.Box
	Limits domain.CatalogLimits
}

func (e *OversizeError) Error() string {
	names := make([]string, 0, len(e.Boxes))
	for _, b := range e.Boxes {
		names = append(names, b.Name)
	}
	return fmt.Sprintf("%s: %s", ErrUnplaceableBoxes, strings.Join(names, ", "))
}

func (e *OversizeError) Unwrap() error { return ErrUnplaceableBoxes }
