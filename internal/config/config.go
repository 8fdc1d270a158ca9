package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the optional CLI configuration. Flags override these
// values; absent fields fall back to built-in defaults.
type Config struct {
	RecordsPath string       `yaml:"records_path"`
	Output      OutputConfig `yaml:"output"`
}

type OutputConfig struct {
	Format   string `yaml:"format"`
	BarWidth int    `yaml:"bar_width"`
}

const (
	FormatText = "text"
	FormatJSON = "json"
)

// Default is the configuration used when no config file is given.
func Default() Config {
	return Config{
		RecordsPath: "decisions/sample.yaml",
		Output: OutputConfig{
			Format:   FormatText,
			BarWidth: 40,
		},
	}
}

// Load reads a YAML config, expands environment references, and merges
// it over the defaults.
func Load(path string) (Config, error) {
	// #nosec G304 -- path is operator-provided config path.
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	expanded := os.ExpandEnv(string(raw))
	expanded = strings.ReplaceAll(expanded, "\r\n", "\n")

	cfg := Default()
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.RecordsPath == "" {
		return fmt.Errorf("records_path is required")
	}
	if c.Output.Format != FormatText && c.Output.Format != FormatJSON {
		return fmt.Errorf("output.format must be %q or %q", FormatText, FormatJSON)
	}
	if c.Output.BarWidth <= 0 {
		return fmt.Errorf("output.bar_width must be positive")
	}
	return nil
}
