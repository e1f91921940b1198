package report_test

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/telemetry-tools/perf-charter/internal/model"
	"github.com/telemetry-tools/perf-charter/internal/report"
)

func TestBuildSummarySingleRecord(t *testing.T) {
	raw := `{
		"load_name": "10mbps",
		"config": {"mb_per_sec": 10},
		"metrics": {
			"throughput": {"bytes_per_second": 10485760, "spans_per_second": 5000},
			"query_latencies": {"p50_seconds": 0.01, "p90_seconds": 0.02, "p99_seconds": 0.05},
			"resources": {"avg_cpu_cores": 1.5, "max_memory_gb": 2.0},
			"errors": {"error_rate_percent": 0.1, "dropped_spans_per_second": 0}
		}
	}`

	var rec model.RawResult
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	table := report.BuildSummary([]model.RawResult{rec})
	if table.Len() != 1 {
		t.Fatalf("expected 1 row but got %d", table.Len())
	}

	exp := model.SummaryRow{
		LoadName:       "10mbps",
		MBPerSec:       10,
		MBPerSecActual: 10,
		BytesPerSec:    10485760,
		P50Ms:          10,
		P90Ms:          20,
		P99Ms:          50,
		CPUCores:       1.5,
		MemoryGB:       2.0,
		SpansPerSec:    5000,
		ErrorRate:      0.1,
		DroppedSpans:   0,
	}
	if diff := cmp.Diff(exp, table.Rows[0]); diff != "" {
		t.Fatalf("row mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildSummaryOrderingIsStable(t *testing.T) {
	recs := []model.RawResult{
		{LoadName: "c", Config: model.LoadConfig{MBPerSec: 20}},
		{LoadName: "a1", Config: model.LoadConfig{MBPerSec: 10}},
		{LoadName: "a2", Config: model.LoadConfig{MBPerSec: 10}},
		{LoadName: "b", Config: model.LoadConfig{MBPerSec: 5}},
	}

	table := report.BuildSummary(recs)
	if table.Len() != len(recs) {
		t.Fatalf("expected %d rows but got %d", len(recs), table.Len())
	}

	// Ascending by target rate; equal targets keep input order.
	expOrder := []string{"b", "a1", "a2", "c"}
	if diff := cmp.Diff(expOrder, table.LoadNames()); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildSummaryMissingMetricsDefaultsToZero(t *testing.T) {
	table := report.BuildSummary([]model.RawResult{{LoadName: "legacy"}})

	exp := model.SummaryRow{LoadName: "legacy"}
	if diff := cmp.Diff(exp, table.Rows[0]); diff != "" {
		t.Fatalf("row mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildSummaryEmptyLoadName(t *testing.T) {
	table := report.BuildSummary([]model.RawResult{{}})
	if got := table.Rows[0].LoadName; got != "unknown" {
		t.Fatalf("expected load name %q but got %q", "unknown", got)
	}
}
