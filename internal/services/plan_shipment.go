package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/sujeonghan78-lgtm/CargoLoading/internal/catalog"
	"github.com/sujeonghan78-lgtm/CargoLoading/internal/domain"
	"github.com/sujeonghan78-lgtm/CargoLoading/internal/ports"
)

type PlanShipmentRequest struct {
	// Boxes and Vehicles override the stored packing list and catalog when set.
	Boxes       []*domain.Box
	Vehicles    []domain.VehicleSpec
	Mode        domain.Mode
	Options     domain.PlanOptions
	Concurrency int
}

// ResolveShipment turns a shipment request into a fleet request.
//
// Missing boxes come from the repository. Missing vehicles come from the
// catalog for the requested mode, then from the built-in preset for that mode
// when the stored catalog is empty.
func ResolveShipment(
	ctx context.Context,
	req PlanShipmentRequest,
	repo ports.BoxRepository,
	vehicles ports.VehicleCatalog,
) (PlanFleetRequest, error) {
	boxes := req.Boxes
	if len(boxes) == 0 {
		if repo == nil {
			return PlanFleetRequest{}, errors.New("resolve shipment: no boxes given and no repository configured")
		}
		stored, err := repo.ListBoxes(ctx)
		if err != nil {
			return PlanFleetRequest{}, fmt.Errorf("resolve shipment: list boxes: %w", err)
		}
		boxes = stored
	}

	specs := req.Vehicles
	if len(specs) == 0 {
		if vehicles != nil {
			stored, err := vehicles.ListVehicles(ctx, req.Mode)
			if err != nil {
				return PlanFleetRequest{}, fmt.Errorf("resolve shipment: list vehicles mode=%q: %w", req.Mode, err)
			}
			specs = stored
		}
		if len(specs) == 0 {
			preset, err := catalog.Preset(req.Mode)
			if err != nil {
				return PlanFleetRequest{}, fmt.Errorf("resolve shipment: %w", err)
			}
			specs = preset
		}
	}

	return PlanFleetRequest{
		Boxes:       boxes,
		Vehicles:    specs,
		Options:     req.Options,
		Concurrency: req.Concurrency,
	}, nil
}

// PlanShipment resolves the request against the stored packing list and
// catalog, then plans the fleet.
func PlanShipment(
	ctx context.Context,
	req PlanShipmentRequest,
	repo ports.BoxRepository,
	vehicles ports.VehicleCatalog,
) (*domain.FleetPlan, error) {
	fleetReq, err := ResolveShipment(ctx, req, repo, vehicles)
	if err != nil {
		return nil, fmt.Errorf("plan shipment: %w", err)
	}

	plan, err := PlanFleet(ctx, fleetReq)
	if err != nil {
		return nil, fmt.Errorf("plan shipment: %w", err)
	}
	return plan, nil
}
