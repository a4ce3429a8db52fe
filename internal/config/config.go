package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"hawksim/internal/trajectory"
)

// Config holds all application configuration.
type Config struct {
	Sim struct {
		M0           float64 `yaml:"m0"`
		T0           float64 `yaml:"t0"`
		MaxSamples   int     `yaml:"max_samples"`
		Resolution   int     `yaml:"resolution"`
		StepFraction float64 `yaml:"step_fraction"`
	} `yaml:"sim"`
	Sweep struct {
		ScenarioDir string `yaml:"scenario_dir"`
		Workers     int    `yaml:"workers"`
		Cron        string `yaml:"cron"`
		Watch       bool   `yaml:"watch"`
	} `yaml:"sweep"`
	Export struct {
		Dir string `yaml:"dir"`
	} `yaml:"export"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Journal struct {
		StateFile string `yaml:"state_file"`
	} `yaml:"journal"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("SCENARIO_DIR"); v != "" {
		cfg.Sweep.ScenarioDir = v
	}
	if v := os.Getenv("SWEEP_WORKERS"); v != "" {
		var workers int
		if _, err := fmt.Sscanf(v, "%d", &workers); err == nil {
			cfg.Sweep.Workers = workers
		}
	}
	if v := os.Getenv("SWEEP_CRON"); v != "" {
		cfg.Sweep.Cron = v
	}
	if v := os.Getenv("EXPORT_DIR"); v != "" {
		cfg.Export.Dir = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("JOURNAL_FILE"); v != "" {
		cfg.Journal.StateFile = v
	}

	// Defaults
	if cfg.Sim.M0 == 0 {
		cfg.Sim.M0 = trajectory.DefaultM0
	}
	if cfg.Sim.T0 == 0 {
		cfg.Sim.T0 = trajectory.DefaultT0
	}
	if cfg.Sim.MaxSamples == 0 {
		cfg.Sim.MaxSamples = trajectory.DefaultMaxSamples
	}
	if cfg.Sim.Resolution == 0 {
		cfg.Sim.Resolution = trajectory.DefaultResolution
	}
	if cfg.Sim.StepFraction == 0 {
		cfg.Sim.StepFraction = trajectory.DefaultStepFraction
	}
	if cfg.Sweep.ScenarioDir == "" {
		cfg.Sweep.ScenarioDir = "scenarios"
	}
	if cfg.Sweep.Workers == 0 {
		cfg.Sweep.Workers = 4
	}
	if cfg.Sweep.Cron == "" {
		cfg.Sweep.Cron = "0 0 */6 * * *"
	}
	if cfg.Export.Dir == "" {
		cfg.Export.Dir = "data/exports"
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/hawksim.db"
	}
	if cfg.Journal.StateFile == "" {
		cfg.Journal.StateFile = "data/sweep_journal.json"
	}

	return cfg, nil
}

// SimParams maps the sim section onto integrator parameters.
func (c *Config) SimParams() trajectory.Params {
	p := trajectory.DefaultParams()
	if c.Sim.M0 != 0 {
		p.M0 = c.Sim.M0
	}
	if c.Sim.T0 != 0 {
		p.T0 = c.Sim.T0
	}
	if c.Sim.MaxSamples != 0 {
		p.MaxSamples = c.Sim.MaxSamples
	}
	if c.Sim.Resolution != 0 {
		p.Resolution = c.Sim.Resolution
	}
	if c.Sim.StepFraction != 0 {
		p.StepFraction = c.Sim.StepFraction
	}
	return p
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if err := c.SimParams().Validate(); err != nil {
		return fmt.Errorf("sim: %w", err)
	}
	if c.Sweep.Workers <= 0 {
		return fmt.Errorf("sweep.workers must be positive")
	}
	if c.Sweep.Cron == "" {
		return fmt.Errorf("sweep.cron is required")
	}
	return nil
}
