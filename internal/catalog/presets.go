// Package catalog holds the standard vehicle and container specs offered
// when a user has not entered their own catalog.
package catalog

import (
	"errors"
	"fmt"
	"slices"

	"github.com/sujeonghan78-lgtm/CargoLoading/internal/domain"
)

var ErrUnknownMode = errors.New("catalog: unknown mode")

// Interior dimensions in mm and payload in kg of common Korean cargo trucks.
var trucks = []domain.VehicleSpec{
	{Name: "1t cargo", Mode: domain.ModeTruck, Length: 2800, Width: 1600, Height: 1700, MaxWeight: 1000},
	{Name: "1.4t cargo", Mode: domain.ModeTruck, Length: 3100, Width: 1700, Height: 1800, MaxWeight: 1400},
	{Name: "2.5t cargo", Mode: domain.ModeTruck, Length: 4300, Width: 1800, Height: 2100, MaxWeight: 2500},
	{Name: "5t cargo", Mode: domain.ModeTruck, Length: 6200, Width: 2300, Height: 2350, MaxWeight: 5000},
	{Name: "5t axle", Mode: domain.ModeTruck, Length: 7400, Width: 2300, Height: 2350, MaxWeight: 8000},
	{Name: "11t cargo", Mode: domain.ModeTruck, Length: 9100, Width: 2350, Height: 2500, MaxWeight: 11000},
	{Name: "11t wing body", Mode: domain.ModeTruck, Length: 10200, Width: 2400, Height: 2500, MaxWeight: 11000},
	{Name: "flatbed trailer", Mode: domain.ModeTruck, Length: 12000, Width: 2400, Height: 2500, MaxWeight: 25000},
}

// ISO dry containers.
var containers = []domain.VehicleSpec{
	{Name: "20ft Dry", Mode: domain.ModeContainer, Length: 5898, Width: 2350, Height: 2390, MaxWeight: 21700},
	{Name: "40ft Dry", Mode: domain.ModeContainer, Length: 12032, Width: 2350, Height: 2390, MaxWeight: 26700},
	{Name: "40ft HC", Mode: domain.ModeContainer, Length: 12032, Width: 2350, Height: 2698, MaxWeight: 26400},
}

// Preset returns a copy of the standard catalog for mode.
func Preset(mode domain.Mode) ([]domain.VehicleSpec, error) {
	switch mode {
	case domain.ModeTruck:
		return slices.Clone(trucks), nil
	case domain.ModeContainer:
		return slices.Clone(containers), nil
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownMode, mode)
}

// Modes lists the modes with a preset catalog.
func Modes() []domain.Mode {
	return []domain.Mode{domain.ModeTruck, domain.ModeContainer}
}
