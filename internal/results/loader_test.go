package results_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/telemetry-tools/perf-charter/internal/results"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func newRawDir(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	rawDir := filepath.Join(dir, "raw")
	if err := os.MkdirAll(rawDir, 0755); err != nil {
		t.Fatalf("mkdir raw: %v", err)
	}
	return dir, rawDir
}

func TestLoadMissingRawDir(t *testing.T) {
	if _, err := results.Load(t.TempDir()); err == nil {
		t.Fatal("expected error for missing raw directory")
	}
}

func TestLoadEmptyRawDir(t *testing.T) {
	dir, _ := newRawDir(t)
	if _, err := results.Load(dir); err == nil {
		t.Fatal("expected error for raw directory with no valid files")
	}
}

func TestLoadAllFilesMalformed(t *testing.T) {
	dir, rawDir := newRawDir(t)
	writeFile(t, rawDir, "broken.json", "{not json")
	if _, err := results.Load(dir); err == nil {
		t.Fatal("expected error when zero files parse")
	}
}

func TestLoadSkipsMalformedKeepsOrder(t *testing.T) {
	dir, rawDir := newRawDir(t)
	writeFile(t, rawDir, "02-mid.json", `{"load_name": "mid"}`)
	writeFile(t, rawDir, "03-broken.json", "{")
	writeFile(t, rawDir, "01-low.json", `{"load_name": "low"}`)
	writeFile(t, rawDir, "notes.txt", "not a result")

	recs, err := results.Load(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	var names []string
	for _, r := range recs {
		names = append(names, r.LoadName)
	}
	if diff := cmp.Diff([]string{"low", "mid"}, names); diff != "" {
		t.Fatalf("records mismatch (-want +got):\n%s", diff)
	}
}

func TestReportLabelFromClusterName(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "report-20250101-000000.json",
		`{"report_metadata": {"cluster": {"name": "acme-perf/eu-west-1"}}}`)

	if got := results.ReportLabel(dir); got != "acme-perf" {
		t.Fatalf("expected %q but got %q", "acme-perf", got)
	}
}

func TestReportLabelPicksNewestFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "report-20240101-000000.json",
		`{"report_metadata": {"cluster": {"name": "old"}}}`)
	writeFile(t, dir, "report-20250101-000000.json",
		`{"report_metadata": {"cluster": {"name": "new"}}}`)

	if got := results.ReportLabel(dir); got != "new" {
		t.Fatalf("expected %q but got %q", "new", got)
	}
}

func TestReportLabelGeneratedAtFallback(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "report-20250304-120000.json",
		`{"report_metadata": {"generated_at": "2025-03-04T12:00:00Z"}}`)

	if got := results.ReportLabel(dir); got != "Report 2025-03-04" {
		t.Fatalf("expected %q but got %q", "Report 2025-03-04", got)
	}
}

func TestReportLabelDefaults(t *testing.T) {
	// No report files at all.
	if got := results.ReportLabel(t.TempDir()); got != results.DefaultLabel {
		t.Fatalf("expected default label but got %q", got)
	}

	// Unparsable report file is logged, not fatal.
	dir := t.TempDir()
	writeFile(t, dir, "report-20250101-000000.json", "{broken")
	if got := results.ReportLabel(dir); got != results.DefaultLabel {
		t.Fatalf("expected default label but got %q", got)
	}

	// Empty metadata block.
	dir = t.TempDir()
	writeFile(t, dir, "report-20250101-000000.json", `{"report_metadata": {}}`)
	if got := results.ReportLabel(dir); got != results.DefaultLabel {
		t.Fatalf("expected default label but got %q", got)
	}
}
