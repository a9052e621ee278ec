package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/sujeonghan78-lgtm/CargoLoading/internal/adapters/packinglist"
	"github.com/sujeonghan78-lgtm/CargoLoading/internal/catalog"
	"github.com/sujeonghan78-lgtm/CargoLoading/internal/domain"
	"github.com/sujeonghan78-lgtm/CargoLoading/internal/ports"
)

type BoxSeed struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Length      float64 `json:"length"`
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
	Weight      float64 `json:"weight"`
	Stackable   *bool   `json:"stackable"`
	Description string  `json:"description"`
}

type VehicleSeed struct {
	Name      string  `json:"name"`
	Length    float64 `json:"length"`
	Width     float64 `json:"width"`
	Height    float64 `json:"height"`
	MaxWeight float64 `json:"max_weight"`
}

// Seed file layout: a packing list plus optional catalogs keyed by mode.
type SeedFile struct {
	Boxes    []BoxSeed                `json:"boxes"`
	Vehicles map[string][]VehicleSeed `json:"vehicles"`
}

// Populate the database with the packing list and catalogs of a JSON file.
// Modes absent from the file are left untouched.
func SeedFromJSON(
	ctx context.Context,
	jsonPath string,
	boxes ports.BoxRepository,
	vehicles ports.VehicleCatalog,
) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed: read %q: %w", jsonPath, err)
	}

	var data SeedFile
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("seed: parse json: %w", err)
	}

	list := make([]*domain.Box, 0, len(data.Boxes))
	for i, item := range data.Boxes {
		if item.ID <= 0 {
			return fmt.Errorf("seed boxes: invalid id at index %d: %d", i+1, item.ID)
		}
		stackable := item.Stackable == nil || *item.Stackable
		b := domain.NewBox(item.ID, strings.TrimSpace(item.Name), item.Length, item.Width, item.Height, item.Weight, stackable, item.Description)
		if err := b.Validate(); err != nil {
			return fmt.Errorf("seed boxes: item at index %d: %w", i+1, err)
		}
		list = append(list, b)
	}

	if err := boxes.ReplaceBoxes(ctx, list); err != nil {
		return fmt.Errorf("seed boxes: %w", err)
	}

	for name, items := range data.Vehicles {
		mode, err := domain.ParseMode(name)
		if err != nil {
			return fmt.Errorf("seed vehicles: %w", err)
		}

		specs := make([]domain.VehicleSpec, 0, len(items))
		for i, item := range items {
			v := domain.VehicleSpec{
				Name:      strings.TrimSpace(item.Name),
				Mode:      mode,
				Length:    item.Length,
				Width:     item.Width,
				Height:    item.Height,
				MaxWeight: item.MaxWeight,
			}
			if err := v.Validate(); err != nil {
				return fmt.Errorf("seed vehicles: %s item at index %d: %w", mode, i+1, err)
			}
			specs = append(specs, v)
		}

		if err := vehicles.ReplaceVehicles(ctx, mode, specs); err != nil {
			return fmt.Errorf("seed vehicles: %w", err)
		}
	}

	slog.InfoContext(ctx, "seed loaded", "path", jsonPath, "boxes", len(list), "modes", len(data.Vehicles))
	return nil
}

// SeedBoxes replaces the stored packing list with the boxes of a packing-list
// file (.csv, .xlsx or .json).
func SeedBoxes(ctx context.Context, path string, boxes ports.BoxRepository) error {
	list, err := packinglist.ReadFile(path)
	if err != nil {
		return fmt.Errorf("seed boxes: %w", err)
	}
	if err := boxes.ReplaceBoxes(ctx, list); err != nil {
		return fmt.Errorf("seed boxes: %w", err)
	}
	slog.InfoContext(ctx, "packing list loaded", "path", path, "boxes", len(list))
	return nil
}

// SeedVehicles stores the built-in catalog for every mode that has no
// vehicles yet.
func SeedVehicles(ctx context.Context, vehicles ports.VehicleCatalog) error {
	for _, mode := range catalog.Modes() {
		existing, err := vehicles.ListVehicles(ctx, mode)
		if err != nil {
			return fmt.Errorf("seed vehicles: list %s: %w", mode, err)
		}
		if len(existing) > 0 {
			continue
		}

		preset, err := catalog.Preset(mode)
		if err != nil {
			return fmt.Errorf("seed vehicles: %w", err)
		}
		if err := vehicles.ReplaceVehicles(ctx, mode, preset); err != nil {
			return fmt.Errorf("seed vehicles: %w", err)
		}
		slog.InfoContext(ctx, "preset catalog stored", "mode", mode, "vehicles", len(preset))
	}
	return nil
}
