package engine_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/telemetry-tools/perf-charter/internal/config"
	"github.com/telemetry-tools/perf-charter/internal/engine"
)

const fullResult = `{
	"load_name": "10mbps",
	"config": {"mb_per_sec": 10},
	"metrics": {
		"throughput": {"bytes_per_second": 10485760, "spans_per_second": 5000},
		"query_latencies": {"p50_seconds": 0.01, "p90_seconds": 0.02, "p99_seconds": 0.05},
		"resources": {"avg_cpu_cores": 1.5, "max_memory_gb": 2.0},
		"errors": {"error_rate_percent": 0.1, "dropped_spans_per_second": 0}
	},
	"timeseries": {
		"cpu_cores": [{"timestamp": 100, "value": 1.4}, {"timestamp": 160, "value": 1.6}],
		"memory_gb": [{"timestamp": 100, "value": 1.9}]
	}
}`

const legacyResult = `{
	"load_name": "5mbps",
	"config": {"mb_per_sec": 5},
	"metrics": {"throughput": {"bytes_per_second": 5242880}}
}`

func setupResultsDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	rawDir := filepath.Join(dir, "raw")
	if err := os.MkdirAll(rawDir, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	files := map[string]string{
		filepath.Join(rawDir, "01-5mbps.json"):  legacyResult,
		filepath.Join(rawDir, "02-10mbps.json"): fullResult,
		filepath.Join(dir, "report-20250101-000000.json"): `{"report_metadata": {"cluster": {"name": "acme-perf/eu"}}}`,
	}
	for path, content := range files {
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("write %s: %v", path, err)
		}
	}
	return dir
}

func TestRunGeneratesAllOutputs(t *testing.T) {
	dir := setupResultsDir(t)
	cfg := config.DefaultConfig()

	if err := engine.Run(cfg, dir, "20250101-000000"); err != nil {
		t.Fatalf("run: %v", err)
	}

	// Report surfaces land next to the results by default.
	for _, name := range []string{
		"summary.html", "dashboard.html", "timeseries-dashboard.html",
		"summary.csv", "summary.jsonl", "timeseries.jsonl",
	} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Fatalf("missing output %s: %v", name, err)
		}
	}

	charts, err := filepath.Glob(filepath.Join(dir, "charts", "report-20250101-000000-*.png"))
	if err != nil {
		t.Fatalf("glob charts: %v", err)
	}
	if len(charts) != 9 {
		t.Fatalf("expected 9 chart files but got %d: %v", len(charts), charts)
	}

	data, err := os.ReadFile(filepath.Join(dir, "summary.html"))
	if err != nil {
		t.Fatalf("read summary: %v", err)
	}
	if !strings.Contains(string(data), "acme-perf") {
		t.Fatal("summary html missing resolved report label")
	}

	// Only the load with timeseries data contributes points.
	ts, err := os.ReadFile(filepath.Join(dir, "timeseries.jsonl"))
	if err != nil {
		t.Fatalf("read timeseries export: %v", err)
	}
	lines := strings.Count(strings.TrimSpace(string(ts)), "\n") + 1
	if lines != 2 {
		t.Fatalf("expected 2 time-series lines but got %d", lines)
	}
}

func TestRunWithoutTimeseriesData(t *testing.T) {
	dir := t.TempDir()
	rawDir := filepath.Join(dir, "raw")
	if err := os.MkdirAll(rawDir, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(rawDir, "legacy.json"), []byte(legacyResult), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg := config.DefaultConfig()
	if err := engine.Run(cfg, dir, "20250101-000000"); err != nil {
		t.Fatalf("run: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "summary.html")); err != nil {
		t.Fatalf("missing summary output: %v", err)
	}
	// Time-series surfaces are skipped, not emitted empty.
	if _, err := os.Stat(filepath.Join(dir, "timeseries-dashboard.html")); !os.IsNotExist(err) {
		t.Fatal("timeseries dashboard should not exist for legacy-only input")
	}
	if _, err := os.Stat(filepath.Join(dir, "timeseries.jsonl")); !os.IsNotExist(err) {
		t.Fatal("timeseries export should not exist for legacy-only input")
	}
}

func TestRunFatalOnMissingRawDir(t *testing.T) {
	cfg := config.DefaultConfig()
	if err := engine.Run(cfg, t.TempDir(), "20250101-000000"); err == nil {
		t.Fatal("expected error for missing raw directory")
	}
}

func TestRunHonorsOutputDirOverride(t *testing.T) {
	dir := setupResultsDir(t)
	outDir := t.TempDir()

	cfg := config.DefaultConfig()
	cfg.OutputDir = outDir

	if err := engine.Run(cfg, dir, "20250101-000000"); err != nil {
		t.Fatalf("run: %v", err)
	}
	if _, err := os.Stat(filepath.Join(outDir, "summary.html")); err != nil {
		t.Fatalf("summary not written to override dir: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "summary.html")); !os.IsNotExist(err) {
		t.Fatal("summary should not be written to the results dir when overridden")
	}
}
