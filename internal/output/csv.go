/*
PURPOSE:
  Writes the summary table to a CSV file.
  Ensures data integrity by flushing writes immediately.

REQUIREMENTS:
  User-specified:
  - Machine-readable export so downstream tools do not re-parse raw files.

  Implementation-discovered:
  - One row per load, same column order as the HTML summary.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine
  - Consumes: internal/model.SummaryRow

ERROR HANDLING:
  - Returns error on file creation or write failure.

IMPLEMENTATION RULES:
  - Use encoding/csv.
  - Flush() after every write (critical for crash resilience).
  - Use Mutex; the engine is sequential today but writers stay safe.

USAGE:
  w, err := output.NewSummaryCSVWriter("summary.csv")
  w.Write(row)
  w.Close()

RELATED FILES:
  - internal/model/types.go

MAINTENANCE:
  - Update Write() mapping when SummaryRow changes.
*/

package output

import (
	"encoding/csv"
	"fmt"
	"os"
	"sync"

	"github.com/telemetry-tools/perf-charter/internal/model"
)

// SummaryCSVWriter handles writing summary rows to a CSV file.
type SummaryCSVWriter struct {
	file   *os.File
	writer *csv.Writer
	mu     sync.Mutex
}

// NewSummaryCSVWriter creates a new SummaryCSVWriter.
// It overwrites the file if it exists.
func NewSummaryCSVWriter(path string) (*SummaryCSVWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	w := csv.NewWriter(f)

	header := []string{
		"load_name", "mb_per_sec", "mb_per_sec_actual", "bytes_per_sec",
		"p50_ms", "p90_ms", "p99_ms",
		"cpu_cores", "memory_gb", "spans_per_sec",
		"efficiency_pct", "error_rate", "dropped_spans",
	}
	if err := w.Write(header); err != nil {
		f.Close()
		return nil, err
	}
	w.Flush()

	return &SummaryCSVWriter{
		file:   f,
		writer: w,
	}, nil
}

// Write writes a single summary row to the CSV file.
// It is thread-safe.
func (cw *SummaryCSVWriter) Write(r model.SummaryRow) error {
	cw.mu.Lock()
	defer cw.mu.Unlock()

	record := []string{
		r.LoadName,
		fmt.Sprintf("%.1f", r.MBPerSec),
		fmt.Sprintf("%.2f", r.MBPerSecActual),
		fmt.Sprintf("%.0f", r.BytesPerSec),
		fmt.Sprintf("%.1f", r.P50Ms),
		fmt.Sprintf("%.1f", r.P90Ms),
		fmt.Sprintf("%.1f", r.P99Ms),
		fmt.Sprintf("%.2f", r.CPUCores),
		fmt.Sprintf("%.2f", r.MemoryGB),
		fmt.Sprintf("%.0f", r.SpansPerSec),
		fmt.Sprintf("%.1f", r.Efficiency()),
		fmt.Sprintf("%.2f", r.ErrorRate),
		fmt.Sprintf("%.1f", r.DroppedSpans),
	}

	if err := cw.writer.Write(record); err != nil {
		return err
	}
	cw.writer.Flush()
	return cw.writer.Error()
}

// Close closes the underlying file.
func (cw *SummaryCSVWriter) Close() error {
	cw.writer.Flush()
	return cw.file.Close()
}
