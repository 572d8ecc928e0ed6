// Package config loads shrink-run scenarios for the shrink CLI.
// Scenarios are described in YAML; a missing file yields the built-in
// default scenario set.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario kinds.
const (
	KindIntegral   = "integral"
	KindFractional = "fractional"
)

// Scenario describes one shrink run: the numeric domain, where shrinking
// starts, the target it shrinks toward, and the threshold above which a
// value still counts as interesting.
type Scenario struct {
	Name      string  `yaml:"name"`
	Kind      string  `yaml:"kind"` // integral or fractional
	Start     float64 `yaml:"start"`
	Target    float64 `yaml:"target"`
	Threshold float64 `yaml:"threshold"`

	// MaxVisits caps how many values a run may pull from the search
	// trace. Zero means unbounded.
	MaxVisits int `yaml:"max_visits"`
}

// Config holds the full scenario set for a run.
type Config struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// Default returns the built-in scenario set: the classic integral shrink
// from 100 toward 0 with values above 10 still interesting, plus its
// fractional counterpart.
func Default() *Config {
	return &Config{
		Scenarios: []Scenario{
			{
				Name:      "integral-100",
				Kind:      KindIntegral,
				Start:     100,
				Target:    0,
				Threshold: 10,
			},
			{
				Name:      "fractional-1",
				Kind:      KindFractional,
				Start:     1.0,
				Target:    0,
				Threshold: 0.1,
			},
		},
	}
}

// Load reads a scenario file. The result is validated before being
// returned.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks every scenario for a usable kind and bounds.
func (c *Config) Validate() error {
	if len(c.Scenarios) == 0 {
		return fmt.Errorf("config contains no scenarios")
	}
	for i, sc := range c.Scenarios {
		if sc.Name == "" {
			return fmt.Errorf("scenario %d: name required", i)
		}
		if sc.Kind != KindIntegral && sc.Kind != KindFractional {
			return fmt.Errorf("scenario %q: kind must be %q or %q, got %q",
				sc.Name, KindIntegral, KindFractional, sc.Kind)
		}
		if sc.MaxVisits < 0 {
			return fmt.Errorf("scenario %q: max_visits must not be negative", sc.Name)
		}
	}
	return nil
}
