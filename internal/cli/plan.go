package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/sujeonghan78-lgtm/CargoLoading/internal/adapters/memory"
	"github.com/sujeonghan78-lgtm/CargoLoading/internal/adapters/packinglist"
	"github.com/sujeonghan78-lgtm/CargoLoading/internal/api/dto"
	"github.com/sujeonghan78-lgtm/CargoLoading/internal/config"
	"github.com/sujeonghan78-lgtm/CargoLoading/internal/domain"
	"github.com/sujeonghan78-lgtm/CargoLoading/internal/services"
)

// ErrInfeasible is returned when no vehicle type carries the whole list.
var ErrInfeasible = errors.New("no vehicle type can carry every box")

type planFlags struct {
	input        string
	vehiclesFile string
	mode         string
	noRotation   bool
	noStacking   bool
	heavyFirst   bool
	maxBins      int
	concurrency  int
}

var planOpts planFlags

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Recommend a vehicle type for a packing list",
	Long: `Read a packing list (.csv, .xlsx or .json) and compare every vehicle type
of the chosen catalog. The packing list needs the columns NO., WIDTH(mm),
LENGTH(mm) and HEIGHT(mm); ITEM, G.Weight and STACKABLE are optional.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		return runPlan(ctx, cmd.OutOrStdout(), planOpts, IsJSONOutput())
	},
}

func init() {
	f := planCmd.Flags()
	f.StringVarP(&planOpts.input, "input", "i", "", "Packing list file (.csv, .xlsx or .json)")
	f.StringVar(&planOpts.vehiclesFile, "vehicles", "", "JSON file with a custom vehicle catalog")
	f.StringVar(&planOpts.mode, "mode", "", "Preset catalog: truck or container (overrides VEHICLE_MODE)")
	f.BoolVar(&planOpts.noRotation, "no-rotation", false, "Never turn boxes by 90 degrees")
	f.BoolVar(&planOpts.noStacking, "no-stacking", false, "Never stack boxes")
	f.BoolVar(&planOpts.heavyFirst, "heavy-first", false, "Load heaviest boxes first instead of largest")
	f.IntVar(&planOpts.maxBins, "max-bins", 0, "Vehicles evaluated per type before giving up (overrides MAX_BINS_PER_TYPE)")
	f.IntVar(&planOpts.concurrency, "concurrency", 0, "Vehicle types evaluated at once (0 = all)")
	_ = planCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(planCmd)
}

func runPlan(ctx context.Context, w io.Writer, flags planFlags, asJSON bool) error {
	boxes, err := packinglist.ReadFile(flags.input)
	if err != nil {
		return err
	}

	mode, err := domain.ParseMode(config.Get("VEHICLE_MODE", string(domain.ModeTruck)))
	if flags.mode != "" {
		mode, err = domain.ParseMode(flags.mode)
	}
	if err != nil {
		return err
	}

	var vehicles []domain.VehicleSpec
	if flags.vehiclesFile != "" {
		vehicles, err = readVehicles(flags.vehiclesFile, mode)
		if err != nil {
			return err
		}
	}

	opts := domain.PlanOptions{
		AllowRotation:  !flags.noRotation,
		AllowStacking:  !flags.noStacking,
		SortByWeight:   flags.heavyFirst,
		MaxBinsPerType: flags.maxBins,
	}
	if opts.MaxBinsPerType == 0 {
		if cfg, err := config.FromEnv(); err == nil {
			opts.MaxBinsPerType = cfg.MaxBinsPerType
		}
	}

	plan, err := services.PlanShipment(ctx, services.PlanShipmentRequest{
		Vehicles:    vehicles,
		Mode:        mode,
		Options:     opts,
		Concurrency: flags.concurrency,
	}, memory.NewBoxRepository(boxes...), memory.NewVehicleCatalog())
	if err != nil {
		var oversize *services.OversizeError
		if errors.As(err, &oversize) && !asJSON {
			newPrinter(w).oversize(oversize)
		}
		return err
	}

	if asJSON {
		data, err := json.MarshalIndent(dto.NewPlanResponse(uuid.NewString(), plan), "", "  ")
		if err != nil {
			return fmt.Errorf("encode plan: %w", err)
		}
		fmt.Fprintln(w, string(data))
	} else {
		newPrinter(w).plan(boxes, plan)
	}

	if !plan.Feasible() {
		return ErrInfeasible
	}
	return nil
}

func readVehicles(path string, mode domain.Mode) ([]domain.VehicleSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read vehicles: %w", err)
	}

	var reqs []dto.VehicleRequest
	if err := json.Unmarshal(data, &reqs); err != nil {
		return nil, fmt.Errorf("read vehicles: parse %q: %w", path, err)
	}
	if len(reqs) == 0 {
		return nil, fmt.Errorf("read vehicles: %q lists no vehicles", path)
	}
	return dto.VehiclesToDomain(reqs, mode), nil
}
