/*
PURPOSE:
  Reconstructs one coherent per-load time axis from up to nine
  independently-sampled metric streams. The cpu_cores stream is the
  reference: its timestamps decide which rows exist; every other stream
  is looked up per row and zero-filled when it has no sample there.

REQUIREMENTS:
  User-specified:
  - Loads without timeseries data (or an empty cpu_cores stream)
    contribute no rows and must not fail the batch.
  - Rows sorted by (load_name, timestamp).
  - Relative minute per load: floor((ts - minTs)/60) + 1; the earliest
    row of every load is minute 1.
  - Float timestamps truncate to whole seconds, matching the floor
    formula.

  Implementation-discovered:
  - The minute column needs the full per-load row set first, so it is
    a second pass over each load's minimum.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine, internal/cli
  - Consumes: internal/model.RawResult
  - Produces: internal/model.TimeSeriesTable

ERROR HANDLING:
  - None. Pure function; legacy records simply contribute nothing.

IMPLEMENTATION RULES:
  - Streams become timestamp->value maps so "reference drives emission,
    others default to zero" is one lookup per row.
  - Duplicate timestamps within a stream: last sample wins. That is a
    deliberate, tested policy (see streamMap), not an accident of map
    insertion order.

USAGE:
  ts := report.AlignTimeSeries(recs)

RELATED FILES:
  - internal/report/summary.go

MAINTENANCE:
  - New streams need a map here plus a TimeSeriesPoint field.
*/

package report

import (
	"sort"
	"time"

	"github.com/telemetry-tools/perf-charter/internal/model"
)

// referenceStream names the stream whose timestamps drive row emission.
const referenceStream = "cpu_cores"

// AlignTimeSeries merges every load's metric streams into the ordered,
// zero-filled TimeSeriesTable.
func AlignTimeSeries(results []model.RawResult) model.TimeSeriesTable {
	var points []model.TimeSeriesPoint

	for _, r := range results {
		cpu := streamMap(r.Timeseries[referenceStream])
		if len(cpu) == 0 {
			// Legacy record without usable timeseries data.
			continue
		}

		memory := streamMap(r.Timeseries["memory_gb"])
		spans := streamMap(r.Timeseries["spans_per_second"])
		bytesIn := streamMap(r.Timeseries["bytes_per_second"])
		p50 := streamMap(r.Timeseries["p50_latency_seconds"])
		p90 := streamMap(r.Timeseries["p90_latency_seconds"])
		p99 := streamMap(r.Timeseries["p99_latency_seconds"])
		failures := streamMap(r.Timeseries["query_failures_per_second"])
		dropped := streamMap(r.Timeseries["dropped_spans_per_second"])

		name := r.LoadName
		if name == "" {
			name = "unknown"
		}

		for _, ts := range sortedTimestamps(cpu) {
			points = append(points, model.TimeSeriesPoint{
				LoadName:      name,
				Timestamp:     ts,
				Datetime:      time.Unix(ts, 0),
				CPUCores:      cpu[ts],
				MemoryGB:      memory[ts],
				SpansPerSec:   spans[ts],
				BytesPerSec:   bytesIn[ts],
				P50Ms:         p50[ts] * 1000,
				P90Ms:         p90[ts] * 1000,
				P99Ms:         p99[ts] * 1000,
				QueryFailures: failures[ts],
				DroppedSpans:  dropped[ts],
			})
		}
	}

	sort.SliceStable(points, func(i, j int) bool {
		if points[i].LoadName != points[j].LoadName {
			return points[i].LoadName < points[j].LoadName
		}
		return points[i].Timestamp < points[j].Timestamp
	})

	// Second pass: each load's earliest timestamp is its epoch zero for
	// the relative minute column.
	minTs := make(map[string]int64)
	for _, p := range points {
		if m, ok := minTs[p.LoadName]; !ok || p.Timestamp < m {
			minTs[p.LoadName] = p.Timestamp
		}
	}
	for i := range points {
		points[i].Minute = int((points[i].Timestamp-minTs[points[i].LoadName])/60) + 1
	}

	return model.TimeSeriesTable{Points: points}
}

// streamMap folds a sample stream into a timestamp->value map. Float
// timestamps truncate toward zero. Duplicate timestamps keep the last
// sample in stream order; upstream producers should not emit duplicates,
// so this policy mainly keeps malformed streams harmless.
func streamMap(samples []model.Sample) map[int64]float64 {
	if len(samples) == 0 {
		return nil
	}
	m := make(map[int64]float64, len(samples))
	for _, s := range samples {
		m[int64(s.Timestamp)] = s.Value
	}
	return m
}

func sortedTimestamps(m map[int64]float64) []int64 {
	ts := make([]int64, 0, len(m))
	for t := range m {
		ts = append(ts, t)
	}
	sort.Slice(ts, func(i, j int) bool { return ts[i] < ts[j] })
	return ts
}
