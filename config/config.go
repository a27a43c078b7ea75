// SPDX-License-Identifier: EPL-2.0

package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/phonlab/formantkit/analysis"
	"github.com/phonlab/formantkit/figure"
)

// DefaultPath is where LoadIfPresent looks for a config file.
const DefaultPath = "formantkit.yaml"

// Analysis mirrors analysis.Config for the YAML file.
type Analysis struct {
	Timestamps      int     `yaml:"timestamps"`
	Formants        int     `yaml:"formants"`
	Ceiling         float64 `yaml:"ceiling"`
	WindowLength    float64 `yaml:"window_length"`
	TimeStep        float64 `yaml:"time_step"`
	PreemphasisFrom float64 `yaml:"preemphasis_from"`
	Ext             string  `yaml:"ext"`
	BufSize         int     `yaml:"buf_size"`
}

// Plot holds figure export resolutions.
type Plot struct {
	DPI          int `yaml:"dpi"`
	AmplitudeDPI int `yaml:"amplitude_dpi"`
}

// Log holds logging settings.
type Log struct {
	Level string `yaml:"level"`
}

// Config is the tool configuration. Command-line flags override it;
// it overrides the built-in defaults.
type Config struct {
	Analysis Analysis `yaml:"analysis"`
	Plot     Plot     `yaml:"plot"`
	Log      Log      `yaml:"log"`
}

// Default returns the built-in configuration.
func Default() Config {
	ac := analysis.DefaultConfig()

	return Config{
		Analysis: Analysis{
			Timestamps:      ac.Timestamps,
			Formants:        ac.Formants,
			Ceiling:         ac.Ceiling,
			WindowLength:    ac.WindowLength,
			TimeStep:        ac.TimeStep,
			PreemphasisFrom: ac.PreemphasisFrom,
			Ext:             ac.Ext,
			BufSize:         ac.BufSize,
		},
		Plot: Plot{
			DPI:          figure.DefaultGridDPI,
			AmplitudeDPI: figure.DefaultWaveformDPI,
		},
		Log: Log{Level: "info"},
	}
}

// Load reads a YAML file over the built-in defaults, so a partial file
// only overrides what it names. Unknown keys are ignored.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", path, err)
	}

	return cfg, nil
}

// LoadIfPresent loads DefaultPath from the working directory when it
// exists and falls back to Default when it does not.
func LoadIfPresent() (Config, error) {
	cfg, err := Load(DefaultPath)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}

	return cfg, err
}

// AnalysisConfig converts the analysis section for analysis.New.
func (c Config) AnalysisConfig() analysis.Config {
	return analysis.Config{
		Timestamps:      c.Analysis.Timestamps,
		Formants:        c.Analysis.Formants,
		Ext:             c.Analysis.Ext,
		BufSize:         c.Analysis.BufSize,
		Ceiling:         c.Analysis.Ceiling,
		WindowLength:    c.Analysis.WindowLength,
		TimeStep:        c.Analysis.TimeStep,
		PreemphasisFrom: c.Analysis.PreemphasisFrom,
	}
}
