package config

import (
	"bytes"
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"
)

type (
	// FormattingDefaults tunes the documented fallbacks the run accessors
	// apply when neither the document nor the caller supplies a value. The
	// zero value reproduces the standard constants.
	FormattingDefaults struct {
		MinFontSize       float64 `yaml:"min_font_size,omitempty"`      // points; 0 means the standard 1pt floor
		SuperscriptOffset float64 `yaml:"superscript_offset,omitempty"` // percent; 0 means the standard +30%
		SubscriptOffset   float64 `yaml:"subscript_offset,omitempty"`   // percent; 0 means the standard -25%
	}

	Config struct {
		Version    int                `yaml:"version"`
		Formatting FormattingDefaults `yaml:"formatting"`
		Logging    LoggingConfig      `yaml:"logging"`
	}
)

// Default returns a usable configuration: standard formatting fallbacks and
// console-only logging at normal level.
func Default() *Config {
	return &Config{
		Version: 1,
		Logging: LoggingConfig{
			ConsoleLogger: LoggerConfig{Level: "normal"},
			FileLogger:    LoggerConfig{Level: "none"},
		},
	}
}

// LoadData decodes configuration from YAML. Unknown keys are rejected so
// typos surface immediately instead of silently reverting to defaults.
func LoadData(data []byte) (*Config, error) {
	conf := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(conf); err != nil {
		return nil, fmt.Errorf("unable to parse configuration: %w", err)
	}
	if conf.Version != 1 {
		return nil, fmt.Errorf("unsupported configuration version %d", conf.Version)
	}
	return conf, nil
}

// Load reads configuration from a YAML file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read configuration (%s): %w", path, err)
	}
	return LoadData(data)
}
