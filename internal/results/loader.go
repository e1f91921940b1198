/*
PURPOSE:
  Loads raw test-result records and report metadata from a results
  directory. This is the single ingestion point: everything downstream
  works from the ordered record list returned here.

REQUIREMENTS:
  User-specified:
  - Read every JSON file under <results_dir>/raw, sorted by filename.
  - A malformed file is skipped with a warning, never aborts the batch.
  - Missing raw/ directory or zero parseable files is fatal.
  - Report label comes from the newest report-*.json, best effort.

  Implementation-discovered:
  - Older runs ship partial records; the record schema tolerates that
    (see internal/model), the loader only rejects broken JSON.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine, internal/cli
  - Consumes: internal/model.RawResult

ERROR HANDLING:
  - Load returns an error only for the two fatal conditions.
  - ReportLabel never fails; parse problems log and fall back.

IMPLEMENTATION RULES:
  - Keep ordering deterministic: filename sort drives record order,
    which downstream stable sorts rely on for tie-breaks.

USAGE:
  recs, err := results.Load(dir)
  label := results.ReportLabel(dir)

RELATED FILES:
  - internal/report/summary.go
  - internal/report/timeseries.go

MAINTENANCE:
  - Update DefaultLabel if the product name changes.
*/

package results

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/telemetry-tools/perf-charter/internal/model"
	"github.com/telemetry-tools/perf-charter/internal/output"
)

// DefaultLabel is the report label used when no metadata is available.
const DefaultLabel = "Performance Test"

// Load reads all parseable raw result files under dir/raw, sorted by
// filename. It fails if the raw directory is missing or no file parses,
// since no dataset can be produced without at least one record.
func Load(dir string) ([]model.RawResult, error) {
	rawDir := filepath.Join(dir, "raw")
	entries, err := os.ReadDir(rawDir)
	if err != nil {
		return nil, fmt.Errorf("raw results directory not found: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	var results []model.RawResult
	for _, name := range names {
		path := filepath.Join(rawDir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			output.Logger.Warn("Could not read result file", "file", path, "error", err)
			continue
		}

		var r model.RawResult
		if err := json.Unmarshal(data, &r); err != nil {
			output.Logger.Warn("Could not parse result file", "file", path, "error", err)
			continue
		}
		results = append(results, r)
	}

	if len(results) == 0 {
		return nil, fmt.Errorf("no valid JSON result files found in %s", rawDir)
	}
	return results, nil
}

// reportFile is the subset of a report-*.json file the resolver cares about.
type reportFile struct {
	ReportMetadata struct {
		Cluster struct {
			Name string `json:"name"`
		} `json:"cluster"`
		GeneratedAt string `json:"generated_at"`
	} `json:"report_metadata"`
}

// ReportLabel resolves a human-readable report label from the most recent
// report-*.json in dir (filename order doubles as recency order). It is
// best effort: any failure logs and falls back, first to a label derived
// from the generated_at date, then to DefaultLabel.
func ReportLabel(dir string) string {
	matches, err := filepath.Glob(filepath.Join(dir, "report-*.json"))
	if err != nil || len(matches) == 0 {
		return DefaultLabel
	}
	sort.Sort(sort.Reverse(sort.StringSlice(matches)))

	data, err := os.ReadFile(matches[0])
	if err != nil {
		output.Logger.Warn("Could not read report file", "file", matches[0], "error", err)
		return DefaultLabel
	}

	var report reportFile
	if err := json.Unmarshal(data, &report); err != nil {
		output.Logger.Warn("Could not parse report file", "file", matches[0], "error", err)
		return DefaultLabel
	}

	// Cluster names look like "perf-test/eu-west-1"; keep the part before
	// the first separator.
	if name := report.ReportMetadata.Cluster.Name; name != "" {
		return strings.SplitN(name, "/", 2)[0]
	}

	if gen := report.ReportMetadata.GeneratedAt; gen != "" {
		if len(gen) > 10 {
			gen = gen[:10]
		}
		return "Report " + gen
	}

	return DefaultLabel
}
