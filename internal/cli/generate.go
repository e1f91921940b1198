/*
PURPOSE:
  Defines the 'generate' subcommand.
  Runs the full ingest-normalize-emit pass for one results directory.

REQUIREMENTS:
  User-specified:
  - Positional results directory argument.
  - Optional timestamp for chart filenames, defaults to now.
  - Optional output directory override.

  Implementation-discovered:
  - Need to load config first, then apply flag overrides.

ARCHITECTURE INTEGRATION:
  - Calls: internal/engine.Run()
  - Uses: internal/config

ERROR HANDLING:
  - Returns error if config load fails or the engine run fails; the
    fatal loader conditions surface here as a non-zero exit.

IMPLEMENTATION RULES:
  - Setup flags in init().
  - Logic: Load Config -> Override -> Engine.Run.

USAGE:
  perf-charter generate perf-tests/results --timestamp 20251126-123954

RELATED FILES:
  - internal/cli/root.go

MAINTENANCE:
  - Update when adding new CLI overrides.
*/

package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/telemetry-tools/perf-charter/internal/config"
	"github.com/telemetry-tools/perf-charter/internal/engine"
)

var (
	timestampOverride string
	outputOverride    string
)

var generateCmd = &cobra.Command{
	Use:   "generate <results-dir>",
	Short: "Generate charts, dashboards and summary tables",
	Long: `Reads every raw result file under <results-dir>/raw, normalizes them into
a per-load summary table and a time-aligned metric series, then writes:
- static PNG charts to <output-dir>/charts/
- interactive HTML dashboards and an HTML summary table
- CSV and JSON Lines exports of both datasets

Loads with missing or legacy-format time-series data are summarized only;
a single malformed result file is skipped with a warning.`,
	Example: `  # Generate into the results directory itself
  perf-charter generate perf-tests/results

  # Tag chart filenames with an explicit run timestamp
  perf-charter generate perf-tests/results --timestamp 20251126-123954

  # Write the report elsewhere
  perf-charter generate perf-tests/results -o ./report`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		resultsDir := args[0]
		if _, err := os.Stat(resultsDir); err != nil {
			return fmt.Errorf("results directory not found: %w", err)
		}

		// 1. Load Config
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}

		// 2. Overrides
		if outputOverride != "" {
			cfg.OutputDir = outputOverride
		}
		timestamp := timestampOverride
		if timestamp == "" {
			timestamp = time.Now().Format("20060102-150405")
		}

		// 3. Execution
		return engine.Run(cfg, resultsDir, timestamp)
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVar(&timestampOverride, "timestamp", "", "Timestamp for chart filenames (format: YYYYMMDD-HHMMSS, default: now)")
	generateCmd.Flags().StringVarP(&outputOverride, "output-dir", "o", "", "Output directory for report files (default: the results directory)")
}
