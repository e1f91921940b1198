/*
PURPOSE:
  Builds the normalized single-row-per-load summary table from the
  loaded record list.

REQUIREMENTS:
  User-specified:
  - One row per record; missing fields map to 0, never reject a record.
  - Derived units: actual MB/s from bytes/s, latencies in milliseconds.
  - Rows ordered ascending by target rate, ties keep input order.

  Implementation-discovered:
  - The zero-value decoding in internal/model already implements the
    defaulting policy, so the mapping here stays a plain projection.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine, internal/cli
  - Consumes: internal/model.RawResult
  - Produces: internal/model.SummaryTable

ERROR HANDLING:
  - None. Pure function; partial records are expected input.

IMPLEMENTATION RULES:
  - sort.SliceStable, not sort.Slice: equal targets must keep input
    order for deterministic output.

USAGE:
  table := report.BuildSummary(recs)

RELATED FILES:
  - internal/model/types.go
  - internal/report/timeseries.go

MAINTENANCE:
  - Update the row mapping when the raw schema grows metrics.
*/

package report

import (
	"sort"

	"github.com/telemetry-tools/perf-charter/internal/model"
)

const bytesPerMB = 1024 * 1024

// BuildSummary maps every loaded record to one SummaryRow and orders the
// table by ascending target rate.
func BuildSummary(results []model.RawResult) model.SummaryTable {
	rows := make([]model.SummaryRow, 0, len(results))
	for _, r := range results {
		name := r.LoadName
		if name == "" {
			name = "unknown"
		}

		bytesPerSec := r.Metrics.Throughput.BytesPerSecond
		rows = append(rows, model.SummaryRow{
			LoadName:       name,
			MBPerSec:       r.Config.MBPerSec,
			MBPerSecActual: bytesPerSec / bytesPerMB,
			BytesPerSec:    bytesPerSec,
			P50Ms:          r.Metrics.QueryLatencies.P50Seconds * 1000,
			P90Ms:          r.Metrics.QueryLatencies.P90Seconds * 1000,
			P99Ms:          r.Metrics.QueryLatencies.P99Seconds * 1000,
			CPUCores:       r.Metrics.Resources.AvgCPUCores,
			MemoryGB:       r.Metrics.Resources.MaxMemoryGB,
			SpansPerSec:    r.Metrics.Throughput.SpansPerSecond,
			ErrorRate:      r.Metrics.Errors.ErrorRatePercent,
			DroppedSpans:   r.Metrics.Errors.DroppedSpansPerSecond,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].MBPerSec < rows[j].MBPerSec
	})

	return model.SummaryTable{Rows: rows}
}
