package output_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/telemetry-tools/perf-charter/internal/config"
	"github.com/telemetry-tools/perf-charter/internal/model"
	"github.com/telemetry-tools/perf-charter/internal/output"
)

func TestWriteSummaryCharts(t *testing.T) {
	cfg := config.DefaultConfig()
	dir := t.TempDir()

	if err := output.WriteSummaryCharts(cfg, summaryFixture(), dir, "acme-perf", "20250101-000000"); err != nil {
		t.Fatalf("write summary charts: %v", err)
	}

	for _, name := range []string{
		"latency_comparison", "resource_usage", "throughput_analysis",
		"error_metrics", "bytes_ingested",
	} {
		path := filepath.Join(dir, "report-20250101-000000-"+name+".png")
		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("missing chart %s: %v", name, err)
		}
		if info.Size() == 0 {
			t.Fatalf("empty chart file %s", name)
		}
	}
}

func TestWriteSummaryChartsSingleLoad(t *testing.T) {
	// One load means one data point per series; the renderer must pad
	// rather than fail.
	cfg := config.DefaultConfig()
	dir := t.TempDir()
	table := model.SummaryTable{Rows: []model.SummaryRow{
		{LoadName: "only", MBPerSec: 10, MBPerSecActual: 9, P50Ms: 5, P90Ms: 9, P99Ms: 20},
	}}

	if err := output.WriteSummaryCharts(cfg, table, dir, "acme-perf", "20250101-000000"); err != nil {
		t.Fatalf("write summary charts: %v", err)
	}
}

func TestWriteTimeSeriesCharts(t *testing.T) {
	cfg := config.DefaultConfig()
	dir := t.TempDir()

	ts := model.TimeSeriesTable{Points: []model.TimeSeriesPoint{
		{LoadName: "low", Timestamp: 100, Minute: 1, CPUCores: 1.0, P99Ms: 30, BytesPerSec: 1048576},
		{LoadName: "low", Timestamp: 160, Minute: 2, CPUCores: 1.2, P99Ms: 35, BytesPerSec: 2097152},
		{LoadName: "high", Timestamp: 500, Minute: 1, CPUCores: 3.0, P99Ms: 80, BytesPerSec: 4194304},
	}}

	if err := output.WriteTimeSeriesCharts(cfg, ts, dir, "acme-perf", "20250101-000000"); err != nil {
		t.Fatalf("write timeseries charts: %v", err)
	}

	for _, name := range []string{
		"timeseries_latency", "timeseries_resources",
		"timeseries_throughput", "timeseries_errors",
	} {
		if _, err := os.Stat(filepath.Join(dir, "report-20250101-000000-"+name+".png")); err != nil {
			t.Fatalf("missing chart %s: %v", name, err)
		}
	}
}
