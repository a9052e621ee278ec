package domain

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Mode groups vehicle specs into road trucks or shipping containers.
type Mode string

const (
	ModeTruck     Mode = "truck"
	ModeContainer Mode = "container"
)

// ParseMode normalizes a user supplied mode string.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeTruck, "":
		return ModeTruck, nil
	case ModeContainer:
		return ModeContainer, nil
	}
	return "", fmt.Errorf("parse mode: unknown mode %q", s)
}

// One candidate vehicle or container type: interior dimensions (mm) and payload (kg).
type VehicleSpec struct {
	Name      string
	Mode      Mode
	Length    float64
	Width     float64
	Height    float64
	MaxWeight float64
}

func (v VehicleSpec) Validate() error {
	if strings.TrimSpace(v.Name) == "" {
		return errors.New("vehicle spec: name must be non-empty")
	}
	if !finite(v.Length, v.Width, v.Height, v.MaxWeight) {
		return fmt.Errorf("vehicle spec %q: dimensions and max weight must be finite", v.Name)
	}
	if v.Length <= 0 || v.Width <= 0 || v.Height <= 0 {
		return fmt.Errorf("vehicle spec %q: dimensions must be positive", v.Name)
	}
	if v.MaxWeight < 0 {
		return fmt.Errorf("vehicle spec %q: max weight cannot be negative", v.Name)
	}
	return nil
}

// The largest length, width, height and payload found anywhere in a catalog.
type CatalogLimits struct {
	Length    float64
	Width     float64
	Height    float64
	MaxWeight float64
}

// LimitsOf computes the per-axis maxima of a catalog. Each axis is taken
// independently, so the limits may not describe any single vehicle.
func LimitsOf(specs []VehicleSpec) CatalogLimits {
	var l CatalogLimits
	for _, v := range specs {
		l.Length = max(l.Length, v.Length)
		l.Width = max(l.Width, v.Width)
		l.Height = max(l.Height, v.Height)
		l.MaxWeight = max(l.MaxWeight, v.MaxWeight)
	}
	return l
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
