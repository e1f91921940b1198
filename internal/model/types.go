/*
PURPOSE:
  Defines the core data structures used throughout Perf Charter.
  These models represent raw load-test records and the two normalized
  datasets every presentation consumer works from.

REQUIREMENTS:
  User-specified:
  - One raw record per load scenario; any field may be absent.
  - Missing metric fields resolve to zero, never to an error.
  - Both output datasets addressable by metric (column) name.

  Implementation-discovered:
  - Typed nested structs give the defaulting policy for free: absent JSON
    paths decode to zero values, so the summary mapping stays declarative.
  - Sample timestamps sometimes arrive as floats; keep them float64 here
    and let the aligner truncate to whole seconds.

ARCHITECTURE INTEGRATION:
  - Used by: internal/results, internal/report, internal/output
  - Shared across boundaries.

ERROR HANDLING:
  - None (pure data structs).

IMPLEMENTATION RULES:
  - Keep structs simple and public.
  - JSON tags mirror the raw record schema exactly.

USAGE:
  var r model.RawResult
  json.Unmarshal(data, &r)

RELATED FILES:
  - internal/report/summary.go
  - internal/report/timeseries.go

MAINTENANCE:
  - New tracked metrics need a field here plus a Column case.
*/

package model

import (
	"time"
)

// RawResult is one raw test-result record as produced by the load harness.
// Absent fields decode to zero values; only unparseable JSON rejects a record.
type RawResult struct {
	LoadName   string              `json:"load_name"`
	Config     LoadConfig          `json:"config"`
	Metrics    Metrics             `json:"metrics"`
	Timeseries map[string][]Sample `json:"timeseries"`
}

// LoadConfig carries the configured target for a load scenario.
type LoadConfig struct {
	MBPerSec float64 `json:"mb_per_sec"`
}

// Metrics is the aggregated metric block of a raw record.
type Metrics struct {
	Throughput     Throughput     `json:"throughput"`
	QueryLatencies QueryLatencies `json:"query_latencies"`
	Resources      Resources      `json:"resources"`
	Errors         ErrorMetrics   `json:"errors"`
}

type Throughput struct {
	BytesPerSecond float64 `json:"bytes_per_second"`
	SpansPerSecond float64 `json:"spans_per_second"`
}

type QueryLatencies struct {
	P50Seconds float64 `json:"p50_seconds"`
	P90Seconds float64 `json:"p90_seconds"`
	P99Seconds float64 `json:"p99_seconds"`
}

type Resources struct {
	AvgCPUCores float64 `json:"avg_cpu_cores"`
	MaxMemoryGB float64 `json:"max_memory_gb"`
}

type ErrorMetrics struct {
	ErrorRatePercent      float64 `json:"error_rate_percent"`
	DroppedSpansPerSecond float64 `json:"dropped_spans_per_second"`
}

// Sample is one point of an independently-sampled metric stream.
// Timestamp is epoch seconds; float inputs are truncated downstream.
type Sample struct {
	Timestamp float64 `json:"timestamp"`
	Value     float64 `json:"value"`
}

// SummaryRow is one normalized summary record per load.
type SummaryRow struct {
	LoadName       string  `json:"load_name"`
	MBPerSec       float64 `json:"mb_per_sec"`
	MBPerSecActual float64 `json:"mb_per_sec_actual"`
	BytesPerSec    float64 `json:"bytes_per_sec"`
	P50Ms          float64 `json:"p50_ms"`
	P90Ms          float64 `json:"p90_ms"`
	P99Ms          float64 `json:"p99_ms"`
	CPUCores       float64 `json:"cpu_cores"`
	MemoryGB       float64 `json:"memory_gb"`
	SpansPerSec    float64 `json:"spans_per_sec"`
	ErrorRate      float64 `json:"error_rate"`
	DroppedSpans   float64 `json:"dropped_spans"`
}

// Efficiency returns the measured rate as a percentage of the target,
// or 0 when no target was configured.
func (r SummaryRow) Efficiency() float64 {
	if r.MBPerSec <= 0 {
		return 0
	}
	return r.MBPerSecActual / r.MBPerSec * 100
}

// TimeSeriesPoint is one time-aligned row of the per-load series. One point
// exists per timestamp of the load's reference (cpu_cores) stream; metrics
// without a sample at that timestamp are zero.
type TimeSeriesPoint struct {
	LoadName      string    `json:"load_name"`
	Timestamp     int64     `json:"timestamp"`
	Datetime      time.Time `json:"datetime"`
	Minute        int       `json:"minute"`
	CPUCores      float64   `json:"cpu_cores"`
	MemoryGB      float64   `json:"memory_gb"`
	SpansPerSec   float64   `json:"spans_per_sec"`
	BytesPerSec   float64   `json:"bytes_per_sec"`
	P50Ms         float64   `json:"p50_ms"`
	P90Ms         float64   `json:"p90_ms"`
	P99Ms         float64   `json:"p99_ms"`
	QueryFailures float64   `json:"query_failures"`
	DroppedSpans  float64   `json:"dropped_spans"`
}

// SummaryTable is the ordered summary dataset, sorted ascending by target
// rate (ties keep input order).
type SummaryTable struct {
	Rows []SummaryRow
}

func (t SummaryTable) Len() int { return len(t.Rows) }

// LoadNames returns the load name of every row, in table order.
func (t SummaryTable) LoadNames() []string {
	names := make([]string, len(t.Rows))
	for i, r := range t.Rows {
		names[i] = r.LoadName
	}
	return names
}

// Column returns the named numeric metric for every row, in table order.
// Unknown names return nil.
func (t SummaryTable) Column(name string) []float64 {
	vals := make([]float64, len(t.Rows))
	for i, r := range t.Rows {
		switch name {
		case "mb_per_sec":
			vals[i] = r.MBPerSec
		case "mb_per_sec_actual":
			vals[i] = r.MBPerSecActual
		case "bytes_per_sec":
			vals[i] = r.BytesPerSec
		case "p50_ms":
			vals[i] = r.P50Ms
		case "p90_ms":
			vals[i] = r.P90Ms
		case "p99_ms":
			vals[i] = r.P99Ms
		case "cpu_cores":
			vals[i] = r.CPUCores
		case "memory_gb":
			vals[i] = r.MemoryGB
		case "spans_per_sec":
			vals[i] = r.SpansPerSec
		case "error_rate":
			vals[i] = r.ErrorRate
		case "dropped_spans":
			vals[i] = r.DroppedSpans
		default:
			return nil
		}
	}
	return vals
}

// TimeSeriesTable is the aligned multi-load series, sorted by
// (load_name, timestamp).
type TimeSeriesTable struct {
	Points []TimeSeriesPoint
}

func (t TimeSeriesTable) Len() int    { return len(t.Points) }
func (t TimeSeriesTable) Empty() bool { return len(t.Points) == 0 }

// Loads returns the distinct load names in first-appearance (row) order.
func (t TimeSeriesTable) Loads() []string {
	seen := make(map[string]bool)
	var loads []string
	for _, p := range t.Points {
		if !seen[p.LoadName] {
			seen[p.LoadName] = true
			loads = append(loads, p.LoadName)
		}
	}
	return loads
}

// Load returns the rows of one load, preserving table order.
func (t TimeSeriesTable) Load(name string) []TimeSeriesPoint {
	var pts []TimeSeriesPoint
	for _, p := range t.Points {
		if p.LoadName == name {
			pts = append(pts, p)
		}
	}
	return pts
}

// Column returns the named numeric metric for every point, in table order.
// Unknown names return nil.
func (t TimeSeriesTable) Column(name string) []float64 {
	vals := make([]float64, len(t.Points))
	for i, p := range t.Points {
		switch name {
		case "timestamp":
			vals[i] = float64(p.Timestamp)
		case "minute":
			vals[i] = float64(p.Minute)
		case "cpu_cores":
			vals[i] = p.CPUCores
		case "memory_gb":
			vals[i] = p.MemoryGB
		case "spans_per_sec":
			vals[i] = p.SpansPerSec
		case "bytes_per_sec":
			vals[i] = p.BytesPerSec
		case "p50_ms":
			vals[i] = p.P50Ms
		case "p90_ms":
			vals[i] = p.P90Ms
		case "p99_ms":
			vals[i] = p.P99Ms
		case "query_failures":
			vals[i] = p.QueryFailures
		case "dropped_spans":
			vals[i] = p.DroppedSpans
		default:
			return nil
		}
	}
	return vals
}
