/*
PURPOSE:
  Renders the chart inventory over the two normalized datasets using
  go-chart. Summary charts plot one value per load; time-series charts
  plot one line per load over the relative minute axis.

REQUIREMENTS:
  User-specified:
  - Static PNG charts for reports/documentation.
  - Same charts as inline SVG for the HTML dashboards.
  - Skip time-series charts when the aligned series is empty.

  Implementation-discovered:
  - go-chart needs at least two X values per series; single-sample loads
    get padded with a duplicate point.
  - No grouped-bar support, so multi-metric summary charts use one line
    series per metric over the load index, with load-name ticks.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine, internal/output/html.go
  - Consumes: internal/model tables via the Column accessors only.

ERROR HANDLING:
  - Returns error on render or file failure; callers treat that as fatal
    for the generation run.

IMPLEMENTATION RULES:
  - All colors come from the configured theme; no hardcoded palette here.
  - Chart builders are shared between the PNG and SVG paths.

USAGE:
  err := output.WriteSummaryCharts(cfg, table, dir, label, timestamp)

RELATED FILES:
  - internal/output/html.go
  - internal/config/config.go

MAINTENANCE:
  - New charts: add a builder and register it in summaryCharts/tsCharts.
*/

package output

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/telemetry-tools/perf-charter/internal/config"
	"github.com/telemetry-tools/perf-charter/internal/model"
)

// namedChart pairs a renderable chart with its output file stem.
type namedChart struct {
	Name  string
	Title string
	Chart chart.Chart
}

func hexColor(hex string) drawing.Color {
	return drawing.ColorFromHex(strings.TrimPrefix(hex, "#"))
}

func lineStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeColor: col,
		StrokeWidth: 2,
		DotColor:    col,
		DotWidth:    3,
	}
}

// pad duplicates a lone point so go-chart has the two X values it needs.
func pad(xs, ys []float64) ([]float64, []float64) {
	if len(xs) != 1 {
		return xs, ys
	}
	return []float64{xs[0], xs[0] + 1}, []float64{ys[0], ys[0]}
}

func indexXs(n int) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = float64(i)
	}
	return xs
}

// loadTicks labels the load-index axis with "<name> (<target> MB/s)".
func loadTicks(t model.SummaryTable) []chart.Tick {
	ticks := make([]chart.Tick, 0, t.Len()+1)
	for i, r := range t.Rows {
		ticks = append(ticks, chart.Tick{
			Value: float64(i),
			Label: fmt.Sprintf("%s (%.0f MB/s)", r.LoadName, r.MBPerSec),
		})
	}
	if t.Len() == 1 {
		// Matches the padded series range.
		ticks = append(ticks, chart.Tick{Value: 1, Label: ""})
	}
	return ticks
}

func (nc *namedChart) base(cfg *config.Config, title string) {
	nc.Title = title
	nc.Chart.Title = title
	nc.Chart.Width = cfg.ChartWidth
	nc.Chart.Height = cfg.ChartHeight
	nc.Chart.Background = chart.Style{
		FillColor: hexColor(cfg.Theme.Background),
		Padding:   chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20},
	}
	nc.Chart.Canvas = chart.Style{FillColor: hexColor(cfg.Theme.Surface)}
	nc.Chart.TitleStyle = chart.Style{FontColor: hexColor(cfg.Theme.Text), FontSize: 14}
}

func withLegend(c *chart.Chart) {
	c.Elements = []chart.Renderable{chart.Legend(c)}
}

// summarySeries builds one line series over the load index for a summary
// column, consuming the table through its column accessor.
func summarySeries(t model.SummaryTable, column, name string, col drawing.Color) chart.Series {
	xs, ys := pad(indexXs(t.Len()), t.Column(column))
	return chart.ContinuousSeries{
		Name:    name,
		XValues: xs,
		YValues: ys,
		Style:   lineStyle(col),
	}
}

func secondarySeries(t model.SummaryTable, column, name string, col drawing.Color) chart.Series {
	xs, ys := pad(indexXs(t.Len()), t.Column(column))
	return chart.ContinuousSeries{
		Name:    name,
		XValues: xs,
		YValues: ys,
		YAxis:   chart.YAxisSecondary,
		Style:   lineStyle(col),
	}
}

// summaryCharts is the full static chart inventory over the summary table.
func summaryCharts(cfg *config.Config, t model.SummaryTable, label string) []namedChart {
	theme := cfg.Theme
	ticks := loadTicks(t)
	axis := chart.XAxis{Name: "Load Configuration", Ticks: ticks}

	latency := namedChart{Name: "latency_comparison"}
	latency.base(cfg, label+": Query Latency by Load Level")
	latency.Chart.XAxis = axis
	latency.Chart.YAxis = chart.YAxis{Name: "Latency (ms)"}
	latency.Chart.Series = []chart.Series{
		summarySeries(t, "p50_ms", "P50", hexColor(theme.Primary)),
		summarySeries(t, "p90_ms", "P90", hexColor(theme.Secondary)),
		summarySeries(t, "p99_ms", "P99", hexColor(theme.Tertiary)),
	}
	withLegend(&latency.Chart)

	resources := namedChart{Name: "resource_usage"}
	resources.base(cfg, label+": Resource Usage by Load Level")
	resources.Chart.XAxis = axis
	resources.Chart.YAxis = chart.YAxis{Name: "CPU (cores)"}
	resources.Chart.YAxisSecondary = chart.YAxis{Name: "Memory (GB)"}
	resources.Chart.Series = []chart.Series{
		summarySeries(t, "cpu_cores", "CPU (cores)", hexColor(theme.Primary)),
		secondarySeries(t, "memory_gb", "Memory (GB)", hexColor(theme.Secondary)),
	}
	withLegend(&resources.Chart)

	throughput := namedChart{Name: "throughput_analysis"}
	throughput.base(cfg, label+": Throughput (Spans/sec) by Load Level")
	throughput.Chart.XAxis = axis
	throughput.Chart.YAxis = chart.YAxis{Name: "Spans per Second"}
	throughput.Chart.Series = []chart.Series{
		summarySeries(t, "spans_per_sec", "Actual Spans/sec", hexColor(theme.Success)),
	}
	withLegend(&throughput.Chart)

	errors := namedChart{Name: "error_metrics"}
	errors.base(cfg, label+": Error Metrics by Load Level")
	errors.Chart.XAxis = axis
	errors.Chart.YAxis = chart.YAxis{Name: "Error Rate (%)"}
	errors.Chart.YAxisSecondary = chart.YAxis{Name: "Dropped Spans/sec"}
	errors.Chart.Series = []chart.Series{
		summarySeries(t, "error_rate", "Error Rate (%)", hexColor(theme.Secondary)),
		secondarySeries(t, "dropped_spans", "Dropped Spans/sec", hexColor(theme.Accent)),
	}
	withLegend(&errors.Chart)

	ingest := namedChart{Name: "bytes_ingested"}
	ingest.base(cfg, label+": Bytes Ingested, Target vs Actual")
	ingest.Chart.XAxis = axis
	ingest.Chart.YAxis = chart.YAxis{Name: "Ingestion Rate (MB/s)"}
	ingest.Chart.Series = []chart.Series{
		summarySeries(t, "mb_per_sec", "Target MB/s", hexColor(theme.Quaternary)),
		summarySeries(t, "mb_per_sec_actual", "Actual MB/s", hexColor(theme.Primary)),
	}
	withLegend(&ingest.Chart)

	return []namedChart{latency, resources, throughput, errors, ingest}
}

// loadSeries builds one line per load for a time-series column, X axis in
// relative minutes so loads from different wall-clock windows overlay.
func loadSeries(cfg *config.Config, ts model.TimeSeriesTable, column string, secondary bool, scale float64, suffix string) []chart.Series {
	colors := cfg.Theme.SeriesColors()
	var series []chart.Series
	for i, load := range ts.Loads() {
		pts := ts.Load(load)
		xs := make([]float64, len(pts))
		ys := make([]float64, len(pts))
		for j, p := range pts {
			xs[j] = float64(p.Minute)
			ys[j] = pointColumn(p, column) * scale
		}
		xs, ys = pad(xs, ys)

		s := chart.ContinuousSeries{
			Name:    load + suffix,
			XValues: xs,
			YValues: ys,
			Style:   lineStyle(hexColor(colors[i%len(colors)])),
		}
		if secondary {
			s.YAxis = chart.YAxisSecondary
			s.Style.StrokeDashArray = []float64{4, 2}
		}
		series = append(series, s)
	}
	return series
}

func pointColumn(p model.TimeSeriesPoint, column string) float64 {
	switch column {
	case "cpu_cores":
		return p.CPUCores
	case "memory_gb":
		return p.MemoryGB
	case "spans_per_sec":
		return p.SpansPerSec
	case "bytes_per_sec":
		return p.BytesPerSec
	case "p50_ms":
		return p.P50Ms
	case "p90_ms":
		return p.P90Ms
	case "p99_ms":
		return p.P99Ms
	case "query_failures":
		return p.QueryFailures
	case "dropped_spans":
		return p.DroppedSpans
	}
	return 0
}

// tsCharts is the chart inventory over the aligned time series.
func tsCharts(cfg *config.Config, ts model.TimeSeriesTable, label string) []namedChart {
	minuteAxis := chart.XAxis{Name: "Time (minutes)"}

	latency := namedChart{Name: "timeseries_latency"}
	latency.base(cfg, label+": P99 Latency Over Time")
	latency.Chart.XAxis = minuteAxis
	latency.Chart.YAxis = chart.YAxis{Name: "P99 Latency (ms)"}
	latency.Chart.Series = loadSeries(cfg, ts, "p99_ms", false, 1, "")
	withLegend(&latency.Chart)

	resources := namedChart{Name: "timeseries_resources"}
	resources.base(cfg, label+": Resource Usage Over Time")
	resources.Chart.XAxis = minuteAxis
	resources.Chart.YAxis = chart.YAxis{Name: "CPU (cores)"}
	resources.Chart.YAxisSecondary = chart.YAxis{Name: "Memory (GB)"}
	resources.Chart.Series = append(
		loadSeries(cfg, ts, "cpu_cores", false, 1, " CPU"),
		loadSeries(cfg, ts, "memory_gb", true, 1, " Memory")...,
	)
	withLegend(&resources.Chart)

	throughput := namedChart{Name: "timeseries_throughput"}
	throughput.base(cfg, label+": Throughput Over Time")
	throughput.Chart.XAxis = minuteAxis
	throughput.Chart.YAxis = chart.YAxis{Name: "MB/sec"}
	throughput.Chart.YAxisSecondary = chart.YAxis{Name: "Spans/sec"}
	throughput.Chart.Series = append(
		loadSeries(cfg, ts, "bytes_per_sec", false, 1.0/(1024*1024), " MB/sec"),
		loadSeries(cfg, ts, "spans_per_sec", true, 1, " Spans/sec")...,
	)
	withLegend(&throughput.Chart)

	errors := namedChart{Name: "timeseries_errors"}
	errors.base(cfg, label+": Error Metrics Over Time")
	errors.Chart.XAxis = minuteAxis
	errors.Chart.YAxis = chart.YAxis{Name: "Query Failures/sec"}
	errors.Chart.YAxisSecondary = chart.YAxis{Name: "Dropped Spans/sec"}
	errors.Chart.Series = append(
		loadSeries(cfg, ts, "query_failures", false, 1, " Failures"),
		loadSeries(cfg, ts, "dropped_spans", true, 1, " Dropped")...,
	)
	withLegend(&errors.Chart)

	return []namedChart{latency, resources, throughput, errors}
}

func renderPNG(c chart.Chart, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := c.Render(chart.PNG, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func renderSVG(c chart.Chart) (string, error) {
	var buf bytes.Buffer
	if err := c.Render(chart.SVG, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// WriteSummaryCharts renders the summary chart inventory as PNG files
// named report-<timestamp>-<chart>.png under dir.
func WriteSummaryCharts(cfg *config.Config, t model.SummaryTable, dir, label, timestamp string) error {
	for _, nc := range summaryCharts(cfg, t, label) {
		path := filepath.Join(dir, fmt.Sprintf("report-%s-%s.png", timestamp, nc.Name))
		if err := renderPNG(nc.Chart, path); err != nil {
			return fmt.Errorf("failed to render chart %s: %w", nc.Name, err)
		}
		Logger.Info("Created chart", "path", path)
	}
	return nil
}

// WriteTimeSeriesCharts renders the time-series chart inventory as PNG
// files under dir. Callers skip this entirely for an empty table.
func WriteTimeSeriesCharts(cfg *config.Config, ts model.TimeSeriesTable, dir, label, timestamp string) error {
	for _, nc := range tsCharts(cfg, ts, label) {
		path := filepath.Join(dir, fmt.Sprintf("report-%s-%s.png", timestamp, nc.Name))
		if err := renderPNG(nc.Chart, path); err != nil {
			return fmt.Errorf("failed to render chart %s: %w", nc.Name, err)
		}
		Logger.Info("Created chart", "path", path)
	}
	return nil
}
