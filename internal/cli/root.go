// Package cli implements the loadplan command line tool.
package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/sujeonghan78-lgtm/CargoLoading/internal/config"
	"github.com/sujeonghan78-lgtm/CargoLoading/internal/platform/logging"
)

var (
	jsonOutput bool
	logLevel   string
)

// rootCmd is the base command
var rootCmd = &cobra.Command{
	Use:   "loadplan",
	Short: "Plan how many trucks or containers a packing list needs",
	Long: `loadplan reads a packing list and works out, for every candidate vehicle type,
how many vehicles are needed to carry it, then recommends the type needing the fewest.

Environment Variables:
  VEHICLE_MODE       Default catalog: truck or container (default: truck)
  MAX_BINS_PER_TYPE  Vehicles evaluated per type before giving up (default: 50)
  LOG_LEVEL          debug, info, warn or error (default: warn)`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Setup(config.Get("LOG_LEVEL", logLevel), "text")
		slog.Debug("loadplan starting", "command", cmd.Name())
	},
}

// Execute runs the root command
func Execute() error {
	config.LoadDotenv()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output JSON instead of human-readable text")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (overridden by LOG_LEVEL)")
}

// IsJSONOutput returns whether JSON output is requested
func IsJSONOutput() bool {
	return jsonOutput
}
