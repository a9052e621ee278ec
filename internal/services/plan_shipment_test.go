package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sujeonghan78-lgtm/CargoLoading/internal/adapters/memory"
	"github.com/sujeonghan78-lgtm/CargoLoading/internal/catalog"
	"github.com/sujeonghan78-lgtm/CargoLoading/internal/domain"
)

func TestResolveShipment(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewBoxRepository(pairOfCrates()...)

	stored := memory.NewVehicleCatalog()
	require.NoError(t, stored.ReplaceVehicles(ctx, domain.ModeTruck, []domain.VehicleSpec{squareTruck}))

	t.Run("stored boxes and catalog", func(t *testing.T) {
		req, err := ResolveShipment(ctx, PlanShipmentRequest{Mode: domain.ModeTruck}, repo, stored)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2}, ids(req.Boxes))
		require.Len(t, req.Vehicles, 1)
		assert.Equal(t, "square", req.Vehicles[0].Name)
	})

	t.Run("empty catalog falls back to presets", func(t *testing.T) {
		req, err := ResolveShipment(ctx, PlanShipmentRequest{Mode: domain.ModeContainer}, repo, stored)
		require.NoError(t, err)
		want, err := catalog.Preset(domain.ModeContainer)
		require.NoError(t, err)
		assert.Equal(t, want, req.Vehicles)
	})

	t.Run("inline input wins", func(t *testing.T) {
		inline := []*domain.Box{domain.NewBox(9, "", 100, 100, 100, 1, true, "")}
		vehicles := []domain.VehicleSpec{{Name: "inline", Length: 1000, Width: 1000, Height: 1000, MaxWeight: 100}}

		req, err := ResolveShipment(ctx, PlanShipmentRequest{Boxes: inline, Vehicles: vehicles, Concurrency: 3}, repo, stored)
		require.NoError(t, err)
		assert.Equal(t, []int{9}, ids(req.Boxes))
		assert.Equal(t, "inline", req.Vehicles[0].Name)
		assert.Equal(t, 3, req.Concurrency)
	})

	t.Run("no boxes and no repository", func(t *testing.T) {
		_, err := ResolveShipment(ctx, PlanShipmentRequest{Mode: domain.ModeTruck}, nil, stored)
		assert.Error(t, err)
	})

	t.Run("unknown mode", func(t *testing.T) {
		_, err := ResolveShipment(ctx, PlanShipmentRequest{Mode: "barge"}, repo, nil)
		assert.ErrorIs(t, err, catalog.ErrUnknownMode)
	})
}

func TestPlanShipment(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewBoxRepository(pairOfCrates()...)
	stored := memory.NewVehicleCatalog()
	require.NoError(t, stored.ReplaceVehicles(ctx, domain.ModeTruck, []domain.VehicleSpec{squareTruck}))

	plan, err := PlanShipment(ctx, PlanShipmentRequest{
		Mode:    domain.ModeTruck,
		Options: domain.DefaultPlanOptions(),
	}, repo, stored)
	require.NoError(t, err)
	require.NotNil(t, plan.Best)
	assert.Equal(t, 1, plan.Best.Count())

	// The repository hands out copies, so planning leaves it unplaced.
	boxes, err := repo.ListBoxes(ctx)
	require.NoError(t, err)
	for _, b := range boxes {
		assert.Nil(t, b.Position)
	}
}
