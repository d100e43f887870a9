// Package config loads the optional YAML file holding game defaults.
package config

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

type Config struct {
	// Board parameters are kept as text: they are untrusted and go through
	// the same parsing and clamping as command-line input
	Rows  string `yaml:"rows"`
	Cols  string `yaml:"cols"`
	Mines string `yaml:"mines"`

	Seed int64 `yaml:"seed"`
	// Empty when neither the file nor the command line chose one
	Director string `yaml:"director"`
	LogLevel string `yaml:"log_level"`
	// Snapshot file to play instead of a random board
	Layout string `yaml:"layout"`
}

func Default() Config {
	return Config{
		Rows:     "9",
		Cols:     "9",
		Mines:    "10",
		LogLevel: "info",
	}
}

// Load reads path on top of the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Overrides are values given on the command line. Nil fields were not given
// and leave the file's value alone.
type Overrides struct {
	Rows, Cols, Mines *string
	Seed              *int64
	Director          *string
	Layout            *string
	LogLevel          *string
}

func (cfg Config) Override(overrides Overrides) Config {
	setString := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}

	setString(&cfg.Rows, overrides.Rows)
	setString(&cfg.Cols, overrides.Cols)
	setString(&cfg.Mines, overrides.Mines)
	setString(&cfg.Director, overrides.Director)
	setString(&cfg.Layout, overrides.Layout)
	setString(&cfg.LogLevel, overrides.LogLevel)
	if overrides.Seed != nil {
		cfg.Seed = *overrides.Seed
	}
	return cfg
}

func (cfg Config) Level() (logrus.Level, error) {
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return level, fmt.Errorf("invalid log level: %w", err)
	}
	return level, nil
}

// Resolve loads path and applies the command-line overrides on top
func Resolve(path string, overrides Overrides) (Config, error) {
	cfg, err := Load(path)
	if err != nil {
		return cfg, err
	}
	cfg = cfg.Override(overrides)
	if _, err := cfg.Level(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
