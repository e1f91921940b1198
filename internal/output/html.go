/*
PURPOSE:
  Emits the HTML report surfaces: the summary table page and the two
  self-contained dashboards with inline SVG charts.

REQUIREMENTS:
  User-specified:
  - summary.html with per-row efficiency and error-rate styling.
  - dashboard.html (summary charts) and timeseries-dashboard.html
    (per-minute charts), viewable offline in a browser.

  Implementation-discovered:
  - Efficiency thresholds: >=90 good, >=70 warn; error rate: <1 good,
    <5 warn (house style carried over from earlier report tooling).
  - Theme colors are passed as template.CSS so the CSS sanitizer does
    not mangle hex values.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine
  - Consumes: internal/model tables, internal/assets templates,
    chart builders from internal/output/charts.go

ERROR HANDLING:
  - Returns error on template or file failure.

IMPLEMENTATION RULES:
  - Presentation only: all numbers come formatted from the datasets,
    no metric math here beyond the row's own Efficiency accessor.

USAGE:
  err := output.WriteSummaryHTML(cfg, table, label, path)

RELATED FILES:
  - internal/assets/templates/summary.html.tmpl
  - internal/assets/templates/dashboard.html.tmpl

MAINTENANCE:
  - Keep column order in sync with the CSV export.
*/

package output

import (
	"fmt"
	"html/template"
	"os"

	"github.com/telemetry-tools/perf-charter/internal/assets"
	"github.com/telemetry-tools/perf-charter/internal/config"
	"github.com/telemetry-tools/perf-charter/internal/model"
)

// themeView exposes the palette to templates as pre-approved CSS values.
type themeView struct {
	Primary    template.CSS
	Secondary  template.CSS
	Success    template.CSS
	Warning    template.CSS
	Background template.CSS
	Surface    template.CSS
	Text       template.CSS
}

func newThemeView(t config.Theme) themeView {
	return themeView{
		Primary:    template.CSS(t.Primary),
		Secondary:  template.CSS(t.Secondary),
		Success:    template.CSS(t.Success),
		Warning:    template.CSS(t.Warning),
		Background: template.CSS(t.Background),
		Surface:    template.CSS(t.Surface),
		Text:       template.CSS(t.Text),
	}
}

type summaryRowView struct {
	LoadName   string
	Target     string
	Actual     string
	P50        string
	P90        string
	P99        string
	CPU        string
	Memory     string
	Spans      string
	Efficiency string
	ErrorRate  string
	EffClass   string
	ErrClass   string
}

type summaryView struct {
	Label string
	Theme themeView
	Rows  []summaryRowView
}

type dashPanel struct {
	Title string
	SVG   template.HTML
}

type dashboardView struct {
	Label    string
	Subtitle string
	Theme    themeView
	Panels   []dashPanel
}

func metricClass(value, good, warn float64, higherIsBetter bool) string {
	if higherIsBetter {
		switch {
		case value >= good:
			return "metric-good"
		case value >= warn:
			return "metric-warn"
		default:
			return "metric-bad"
		}
	}
	switch {
	case value < good:
		return "metric-good"
	case value < warn:
		return "metric-warn"
	default:
		return "metric-bad"
	}
}

func parseTemplate(name string) (*template.Template, error) {
	return template.ParseFS(assets.Templates, "templates/"+name)
}

func writeTemplate(path, name string, data any) error {
	tmpl, err := parseTemplate(name)
	if err != nil {
		return fmt.Errorf("failed to parse template %s: %w", name, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := tmpl.Execute(f, data); err != nil {
		f.Close()
		return fmt.Errorf("failed to render %s: %w", path, err)
	}
	return f.Close()
}

// WriteSummaryHTML renders the summary table page to path.
func WriteSummaryHTML(cfg *config.Config, t model.SummaryTable, label, path string) error {
	view := summaryView{
		Label: label,
		Theme: newThemeView(cfg.Theme),
	}
	for _, r := range t.Rows {
		eff := r.Efficiency()
		view.Rows = append(view.Rows, summaryRowView{
			LoadName:   r.LoadName,
			Target:     fmt.Sprintf("%.1f", r.MBPerSec),
			Actual:     fmt.Sprintf("%.2f", r.MBPerSecActual),
			P50:        fmt.Sprintf("%.1f", r.P50Ms),
			P90:        fmt.Sprintf("%.1f", r.P90Ms),
			P99:        fmt.Sprintf("%.1f", r.P99Ms),
			CPU:        fmt.Sprintf("%.2f", r.CPUCores),
			Memory:     fmt.Sprintf("%.2f", r.MemoryGB),
			Spans:      fmt.Sprintf("%.0f", r.SpansPerSec),
			Efficiency: fmt.Sprintf("%.1f", eff),
			ErrorRate:  fmt.Sprintf("%.2f", r.ErrorRate),
			EffClass:   metricClass(eff, 90, 70, true),
			ErrClass:   metricClass(r.ErrorRate, 1, 5, false),
		})
	}

	if err := writeTemplate(path, "summary.html.tmpl", view); err != nil {
		return err
	}
	Logger.Info("Created summary table", "path", path)
	return nil
}

func renderPanels(charts []namedChart) ([]dashPanel, error) {
	panels := make([]dashPanel, 0, len(charts))
	for _, nc := range charts {
		svg, err := renderSVG(nc.Chart)
		if err != nil {
			return nil, fmt.Errorf("failed to render chart %s: %w", nc.Name, err)
		}
		panels = append(panels, dashPanel{Title: nc.Title, SVG: template.HTML(svg)})
	}
	return panels, nil
}

// WriteDashboard renders the summary dashboard to path.
func WriteDashboard(cfg *config.Config, t model.SummaryTable, label, path string) error {
	panels, err := renderPanels(summaryCharts(cfg, t, label))
	if err != nil {
		return err
	}

	view := dashboardView{
		Label:    label,
		Subtitle: "Performance Test Dashboard",
		Theme:    newThemeView(cfg.Theme),
		Panels:   panels,
	}
	if err := writeTemplate(path, "dashboard.html.tmpl", view); err != nil {
		return err
	}
	Logger.Info("Created dashboard", "path", path)
	return nil
}

// WriteTimeSeriesDashboard renders the time-series dashboard to path.
// Callers skip this for an empty table.
func WriteTimeSeriesDashboard(cfg *config.Config, ts model.TimeSeriesTable, label, path string) error {
	panels, err := renderPanels(tsCharts(cfg, ts, label))
	if err != nil {
		return err
	}

	view := dashboardView{
		Label:    label,
		Subtitle: "Time Series Dashboard",
		Theme:    newThemeView(cfg.Theme),
		Panels:   panels,
	}
	if err := writeTemplate(path, "dashboard.html.tmpl", view); err != nil {
		return err
	}
	Logger.Info("Created time-series dashboard", "path", path)
	return nil
}
