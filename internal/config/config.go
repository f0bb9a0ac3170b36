package config

import (
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/skint-dev/skint/internal/cycle"
	"github.com/skint-dev/skint/internal/ledger"
	"github.com/skint-dev/skint/internal/recurring"
)

// DateLayout is the format used for dates in skint.yaml.
const DateLayout = "2006-01-02"

// Config represents the top-level skint.yaml configuration.
type Config struct {
	Cycle    CycleConfig    `yaml:"cycle"`
	Budget   float64        `yaml:"budget"`
	Files    FilesConfig    `yaml:"files"`
	Detector DetectorConfig `yaml:"detector"`
}

// CycleConfig pins the pay cycle calendar.
type CycleConfig struct {
	Anchor string `yaml:"anchor"` // "YYYY-MM-DD", a known payday
	Days   int    `yaml:"days"`
}

// FilesConfig locates the data and rules files, relative to the config
// file's directory unless absolute.
type FilesConfig struct {
	Data  string `yaml:"data"`
	Rules string `yaml:"rules,omitempty"`
}

// DetectorConfig tunes the recurring-payment detector.
type DetectorConfig struct {
	AmountTolerance float64 `yaml:"amount_tolerance"`
	DayTolerance    int     `yaml:"day_tolerance"`
	NearModeRatio   float64 `yaml:"near_mode_ratio"`
}

// Load reads a skint.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new setup.
func Default() *Config {
	det := recurring.DefaultConfig()
	tol, _ := det.AmountTolerance.Float64()
	budget, _ := ledger.DefaultBudget.Float64()
	return &Config{
		Cycle: CycleConfig{
			Anchor: "2026-02-05",
			Days:   cycle.DefaultLength,
		},
		Budget: budget,
		Files: FilesConfig{
			Data: "skint.json",
		},
		Detector: DetectorConfig{
			AmountTolerance: tol,
			DayTolerance:    det.DayTolerance,
			NearModeRatio:   det.NearModeRatio,
		},
	}
}

// BudgetAmount returns the configured budget as a decimal, falling back
// to the ledger default when unset.
func (c *Config) BudgetAmount() decimal.Decimal {
	if c.Budget <= 0 {
		return ledger.DefaultBudget
	}
	return decimal.NewFromFloat(c.Budget)
}

// Calendar builds the pay cycle calendar from the configured anchor.
func (c *Config) Calendar() (cycle.Calendar, error) {
	anchor, err := time.Parse(DateLayout, c.Cycle.Anchor)
	if err != nil {
		return cycle.Calendar{}, fmt.Errorf("parsing cycle anchor %q: %w", c.Cycle.Anchor, err)
	}
	days := c.Cycle.Days
	if days <= 0 {
		days = cycle.DefaultLength
	}
	return cycle.Calendar{Anchor: anchor, Length: days}, nil
}

// DetectorSettings builds the recurring detector configuration, falling
// back to defaults for unset fields.
func (c *Config) DetectorSettings() recurring.Config {
	det := recurring.DefaultConfig()
	if c.Detector.AmountTolerance > 0 {
		det.AmountTolerance = decimal.NewFromFloat(c.Detector.AmountTolerance)
	}
	if c.Detector.DayTolerance > 0 {
		det.DayTolerance = c.Detector.DayTolerance
	}
	if c.Detector.NearModeRatio > 0 {
		det.NearModeRatio = c.Detector.NearModeRatio
	}
	return det
}
