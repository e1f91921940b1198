/*
PURPOSE:
  Defines the configuration structure and loading logic for Perf Charter.
  Covers output filenames, chart geometry, and the presentation theme.

REQUIREMENTS:
  User-specified:
  - Dark default theme matching the report house style.
  - Theme is set once at startup and read-only afterwards.

  Implementation-discovered:
  - Needs to support YAML parsing.
  - Missing config file should fall back to defaults silently; an
    explicitly named file that fails to load is an error.

ARCHITECTURE INTEGRATION:
  - Used by: internal/cli, internal/engine, internal/output
  - Dependencies: gopkg.in/yaml.v3 (standard for Go config)

ERROR HANDLING:
  - Returns explicit error if config file is invalid.

IMPLEMENTATION RULES:
  - Config struct tags should support yaml.
  - Defaults should match the canonical report palette.

USAGE:
  cfg, err := config.Load("perf_charter.yaml")

RELATED FILES:
  - internal/cli/root.go
  - internal/output/charts.go

MAINTENANCE:
  - Update when adding new presentation knobs.
*/

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Theme is the report color palette, as hex strings. The zero value is
// not useful; start from DefaultConfig.
type Theme struct {
	Primary    string `yaml:"primary"`
	Secondary  string `yaml:"secondary"`
	Tertiary   string `yaml:"tertiary"`
	Quaternary string `yaml:"quaternary"`
	Accent     string `yaml:"accent"`
	Success    string `yaml:"success"`
	Warning    string `yaml:"warning"`
	Background string `yaml:"background"`
	Surface    string `yaml:"surface"`
	Text       string `yaml:"text"`
}

// SeriesColors returns the rotation used when one colored series per load
// is drawn.
func (t Theme) SeriesColors() []string {
	return []string{t.Primary, t.Secondary, t.Tertiary, t.Quaternary, t.Accent, t.Success}
}

// Config represents the full configuration for Perf Charter.
type Config struct {
	// OutputDir overrides where reports are written; empty means the
	// results directory itself.
	OutputDir string `yaml:"output_dir"`

	SummaryFile             string `yaml:"summary_file"`
	SummaryCSVFile          string `yaml:"summary_csv_file"`
	SummaryJSONFile         string `yaml:"summary_json_file"`
	TimeseriesJSONFile      string `yaml:"timeseries_json_file"`
	DashboardFile           string `yaml:"dashboard_file"`
	TimeseriesDashboardFile string `yaml:"timeseries_dashboard_file"`

	ChartWidth  int `yaml:"chart_width"`
	ChartHeight int `yaml:"chart_height"`

	Theme Theme `yaml:"theme"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		SummaryFile:             "summary.html",
		SummaryCSVFile:          "summary.csv",
		SummaryJSONFile:         "summary.jsonl",
		TimeseriesJSONFile:      "timeseries.jsonl",
		DashboardFile:           "dashboard.html",
		TimeseriesDashboardFile: "timeseries-dashboard.html",
		ChartWidth:              1200,
		ChartHeight:             700,
		Theme: Theme{
			Primary:    "#00D9FF",
			Secondary:  "#FF6B6B",
			Tertiary:   "#4ECDC4",
			Quaternary: "#FFE66D",
			Accent:     "#C44DFF",
			Success:    "#7AE582",
			Warning:    "#FFA07A",
			Background: "#1a1a2e",
			Surface:    "#16213e",
			Text:       "#eaeaea",
		},
	}
}

// Load reads configuration from a file.
// If path is specified, it attempts to load that file.
// If path is empty, it searches for default files in order.
// If no file found, returns default config.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	var data []byte
	var err error

	if path != "" {
		data, err = os.ReadFile(path)
		if err != nil {
			return cfg, err
		}
	} else {
		// Search for defaults
		defaults := []string{"perf_charter.yaml", "charter.yaml"}
		found := false
		for _, name := range defaults {
			data, err = os.ReadFile(name)
			if err == nil {
				path = name // record which file we loaded
				found = true
				break
			}
		}
		if !found {
			// No config file found, return default
			return cfg, nil
		}
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return cfg, nil
}
