package engine

import (
	"fmt"

	"github.com/telemetry-tools/perf-charter/internal/model"
	"github.com/telemetry-tools/perf-charter/internal/output"
)

func writeSummaryCSV(rows []model.SummaryRow, path string) error {
	w, err := output.NewSummaryCSVWriter(path)
	if err != nil {
		return fmt.Errorf("failed to init CSV writer at %s: %w", path, err)
	}
	defer w.Close()

	for _, r := range rows {
		if err := w.Write(r); err != nil {
			return fmt.Errorf("failed to write CSV row for %s: %w", r.LoadName, err)
		}
	}
	output.Logger.Info("Created CSV export", "path", path)
	return nil
}

func writeSummaryJSON(rows []model.SummaryRow, path string) error {
	w, err := output.NewJSONWriter(path)
	if err != nil {
		return fmt.Errorf("failed to init JSON writer at %s: %w", path, err)
	}
	defer w.Close()

	for _, r := range rows {
		if err := w.Write(r); err != nil {
			return fmt.Errorf("failed to write JSON row for %s: %w", r.LoadName, err)
		}
	}
	output.Logger.Info("Created JSON export", "path", path)
	return nil
}

func writeTimeSeriesJSON(ts model.TimeSeriesTable, path string) error {
	w, err := output.NewJSONWriter(path)
	if err != nil {
		return fmt.Errorf("failed to init JSON writer at %s: %w", path, err)
	}
	defer w.Close()

	for _, p := range ts.Points {
		if err := w.Write(p); err != nil {
			return fmt.Errorf("failed to write JSON point for %s: %w", p.LoadName, err)
		}
	}
	output.Logger.Info("Created time-series JSON export", "path", path)
	return nil
}
