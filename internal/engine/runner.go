/*
PURPOSE:
  High-level runner that orchestrates one report generation pass.
  Load records -> build the two datasets -> write every output surface.

REQUIREMENTS:
  User-specified:
  - Fatal only when no dataset can be produced at all (missing raw/
    directory, zero parseable records).
  - Loads without time-series data skip those outputs with a notice.

  Implementation-discovered:
  - Output dir defaults to the results dir; charts go to a charts/
    subdirectory.

ARCHITECTURE INTEGRATION:
  - Called by: internal/cli
  - Uses: internal/results, internal/report, internal/output

ERROR HANDLING:
  - Returns the first error; per-record problems were already absorbed
    by the loader.

IMPLEMENTATION RULES:
  - Phases run in order: load, normalize, emit. The two dataset builds
    are independent transforms over the same record list.

USAGE:
  engine.Run(cfg, resultsDir, timestamp)

RELATED FILES:
  - internal/results/loader.go
  - internal/report/summary.go
  - internal/report/timeseries.go

MAINTENANCE:
  - New output surfaces register in the emit phase.
*/

package engine

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/telemetry-tools/perf-charter/internal/config"
	"github.com/telemetry-tools/perf-charter/internal/output"
	"github.com/telemetry-tools/perf-charter/internal/report"
	"github.com/telemetry-tools/perf-charter/internal/results"
)

// Run executes a full report generation pass over resultsDir. The
// timestamp tags the static chart filenames so repeated runs do not
// clobber each other.
func Run(cfg *config.Config, resultsDir, timestamp string) error {
	// 1. Load Phase
	label := results.ReportLabel(resultsDir)
	output.Logger.Info("Resolved report label", "label", label)

	recs, err := results.Load(resultsDir)
	if err != nil {
		return err
	}
	output.Logger.Info("Loaded test results", "count", len(recs))

	// 2. Normalization Phase
	summary := report.BuildSummary(recs)
	output.Logger.Info("Built summary table", "loads", strings.Join(summary.LoadNames(), ", "))

	series := report.AlignTimeSeries(recs)
	if series.Empty() {
		output.Logger.Info("No time-series data found (legacy format), skipping time-series outputs")
	} else {
		output.Logger.Info("Aligned time-series data", "points", series.Len())
	}

	// 3. Emit Phase
	outDir := cfg.OutputDir
	if outDir == "" {
		outDir = resultsDir
	}
	chartsDir := filepath.Join(outDir, "charts")
	if err := os.MkdirAll(chartsDir, 0755); err != nil {
		return fmt.Errorf("failed to create charts directory %s: %w", chartsDir, err)
	}

	if err := output.WriteSummaryCharts(cfg, summary, chartsDir, label, timestamp); err != nil {
		return err
	}
	if !series.Empty() {
		if err := output.WriteTimeSeriesCharts(cfg, series, chartsDir, label, timestamp); err != nil {
			return err
		}
	}

	if err := output.WriteSummaryHTML(cfg, summary, label, filepath.Join(outDir, cfg.SummaryFile)); err != nil {
		return err
	}
	if err := output.WriteDashboard(cfg, summary, label, filepath.Join(outDir, cfg.DashboardFile)); err != nil {
		return err
	}
	if !series.Empty() {
		if err := output.WriteTimeSeriesDashboard(cfg, series, label, filepath.Join(outDir, cfg.TimeseriesDashboardFile)); err != nil {
			return err
		}
	}

	if err := writeSummaryCSV(summary.Rows, filepath.Join(outDir, cfg.SummaryCSVFile)); err != nil {
		return err
	}
	if err := writeSummaryJSON(summary.Rows, filepath.Join(outDir, cfg.SummaryJSONFile)); err != nil {
		return err
	}
	if !series.Empty() {
		if err := writeTimeSeriesJSON(series, filepath.Join(outDir, cfg.TimeseriesJSONFile)); err != nil {
			return err
		}
	}

	output.Logger.Info("Report generation complete", "output_dir", outDir)
	return nil
}
