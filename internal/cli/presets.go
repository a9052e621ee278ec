package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/sujeonghan78-lgtm/CargoLoading/internal/api/dto"
	"github.com/sujeonghan78-lgtm/CargoLoading/internal/catalog"
	"github.com/sujeonghan78-lgtm/CargoLoading/internal/domain"
)

var presetsMode string

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the built-in vehicle catalogs",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPresets(cmd.OutOrStdout(), presetsMode, IsJSONOutput())
	},
}

func init() {
	presetsCmd.Flags().StringVar(&presetsMode, "mode", "", "Only list one mode: truck or container")
	rootCmd.AddCommand(presetsCmd)
}

func runPresets(w io.Writer, mode string, asJSON bool) error {
	modes := catalog.Modes()
	if mode != "" {
		m, err := domain.ParseMode(mode)
		if err != nil {
			return err
		}
		modes = []domain.Mode{m}
	}

	lists := make([]dto.ListVehiclesResponse, 0, len(modes))
	for _, m := range modes {
		specs, err := catalog.Preset(m)
		if err != nil {
			return err
		}
		res := dto.ListVehiclesResponse{Mode: string(m), Vehicles: make([]dto.VehicleResponse, 0, len(specs))}
		for _, v := range specs {
			res.Vehicles = append(res.Vehicles, dto.NewVehicleResponse(v))
		}
		lists = append(lists, res)
	}

	if asJSON {
		data, err := json.MarshalIndent(lists, "", "  ")
		if err != nil {
			return fmt.Errorf("encode presets: %w", err)
		}
		fmt.Fprintln(w, string(data))
		return nil
	}

	p := newPrinter(w)
	for _, list := range lists {
		p.heading(list.Mode)
		p.vehicleTable(list.Vehicles)
	}
	return nil
}
