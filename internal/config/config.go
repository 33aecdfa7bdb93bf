package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Hasti0013/cpusched/internal/scheduler"
)

// Output formats for the schedule file.
const (
	FormatPlain = "plain"
	FormatYAML  = "yaml"
)

// Config holds the settings of a cpusched run. Command-line flags override
// values read from the config file.
type Config struct {
	Algorithm    string       `yaml:"algorithm"`     // SJF or SRTF; required when not given as an argument
	Limit        int          `yaml:"limit"`         // Max records read from the input, -1 for all
	LogLevel     string       `yaml:"log_level"`     // debug, info, warn, error
	OutputFormat string       `yaml:"output_format"` // plain or yaml
	Report       ReportConfig `yaml:"report"`
}

// ReportConfig selects what is printed to stdout after a run.
type ReportConfig struct {
	Gantt            bool `yaml:"gantt"`
	Table            bool `yaml:"table"`
	LegacyTurnaround bool `yaml:"legacy_turnaround"` // report turnaround as waiting + post-run burst
}

// Default returns sensible defaults.
func Default() Config {
	return Config{
		Limit:        -1,
		LogLevel:     "info",
		OutputFormat: FormatPlain,
	}
}

// Load reads a YAML config file on top of Default.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%w: parsing %s", err, path)
	}
	return cfg, cfg.Validate()
}

// Validate checks field values that yaml decoding cannot.
func (c Config) Validate() error {
	switch c.OutputFormat {
	case FormatPlain, FormatYAML:
	default:
		return fmt.Errorf("invalid output_format %q (want %s or %s)", c.OutputFormat, FormatPlain, FormatYAML)
	}
	if c.Limit < -1 {
		return fmt.Errorf("invalid limit %d", c.Limit)
	}
	if c.Algorithm != "" {
		if _, err := scheduler.ParseAlgorithm(c.Algorithm); err != nil {
			return err
		}
	}
	return nil
}
