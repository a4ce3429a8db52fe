// Package scenario defines the simulation requests the runner executes:
// which model to run and with what parameters, loadable from small YAML or
// JSON files so complete setups can be exchanged and replayed.
package scenario

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"hawksim/internal/analytic"
	"hawksim/internal/trajectory"
)

// ModelKind selects the engine a scenario runs on.
type ModelKind string

const (
	ModelSpectral ModelKind = "spectral"
	ModelAnalytic ModelKind = "analytic"
)

// Scenario is one simulation request.
type Scenario struct {
	Name  string    `yaml:"name"`
	Model ModelKind `yaml:"model"`

	Spectral SpectralSpec `yaml:"spectral"`
	Analytic AnalyticSpec `yaml:"analytic"`

	// SourcePath records the file the scenario came from, empty when built
	// in code.
	SourcePath string `yaml:"-"`
}

// SpectralSpec parameterizes the full spectral integrator. Zero fields fall
// back to the trajectory defaults.
type SpectralSpec struct {
	M0           float64 `yaml:"m0"`
	T0           float64 `yaml:"t0"`
	MaxSamples   int     `yaml:"max_samples"`
	Resolution   int     `yaml:"resolution"`
	StepFraction float64 `yaml:"step_fraction"`
}

// AnalyticSpec parameterizes a closed-form threshold scan. Zero fields fall
// back to the analytic defaults.
type AnalyticSpec struct {
	Evap       EvapSpec       `yaml:"evap"`
	Chaos      ChaosSpec      `yaml:"chaos"`
	Entropy    EntropySpec    `yaml:"entropy"`
	Visibility VisibilitySpec `yaml:"visibility"`
	Steps      int            `yaml:"steps"`
}

type EvapSpec struct {
	M0    float64 `yaml:"m0"`
	KHawk float64 `yaml:"k_hawk"`
	Model string  `yaml:"model"`
}

type ChaosSpec struct {
	AlphaScr float64 `yaml:"alpha_scr"`
}

type EntropySpec struct {
	Kappa float64 `yaml:"kappa"`
}

// TrajectoryParams maps the spectral block onto integrator parameters,
// substituting defaults for unset fields.
func (s *Scenario) TrajectoryParams() trajectory.Params {
	p := trajectory.DefaultParams()
	if s.Spectral.M0 != 0 {
		p.M0 = s.Spectral.M0
	}
	if s.Spectral.T0 != 0 {
		p.T0 = s.Spectral.T0
	}
	if s.Spectral.MaxSamples != 0 {
		p.MaxSamples = s.Spectral.MaxSamples
	}
	if s.Spectral.Resolution != 0 {
		p.Resolution = s.Spectral.Resolution
	}
	if s.Spectral.StepFraction != 0 {
		p.StepFraction = s.Spectral.StepFraction
	}
	return p
}

// ThresholdsParams maps the analytic block onto scan parameters,
// substituting defaults for unset fields. The visibility profile is built
// here; an unknown profile type is an error.
func (s *Scenario) ThresholdsParams() (analytic.ThresholdsParams, error) {
	p := analytic.DefaultThresholdsParams()
	if s.Analytic.Evap.M0 != 0 {
		p.Evap.M0 = s.Analytic.Evap.M0
	}
	if s.Analytic.Evap.KHawk != 0 {
		p.Evap.KHawk = s.Analytic.Evap.KHawk
	}
	if s.Analytic.Evap.Model != "" {
		p.Evap.Model = s.Analytic.Evap.Model
	}
	if s.Analytic.Chaos.AlphaScr != 0 {
		p.Chaos.AlphaScr = s.Analytic.Chaos.AlphaScr
	}
	p.Entropy.Kappa = s.Analytic.Entropy.Kappa
	if s.Analytic.Steps != 0 {
		p.Steps = s.Analytic.Steps
	}

	chi, err := s.Analytic.Visibility.Func()
	if err != nil {
		return p, err
	}
	p.Visibility = chi
	return p, nil
}

// Validate reports the first problem that would stop the scenario from
// running.
func (s *Scenario) Validate() error {
	switch s.Model {
	case ModelSpectral:
		if err := s.TrajectoryParams().Validate(); err != nil {
			return fmt.Errorf("spectral: %w", err)
		}
	case ModelAnalytic:
		p, err := s.ThresholdsParams()
		if err != nil {
			return fmt.Errorf("analytic: %w", err)
		}
		if !(p.Evap.M0 > 0) {
			return errors.New("analytic: evap.m0 must be positive")
		}
		if !(p.Evap.KHawk > 0) {
			return errors.New("analytic: evap.k_hawk must be positive")
		}
		if p.Steps < 2 {
			return errors.New("analytic: steps must be at least 2")
		}
	case "":
		return errors.New("model is required")
	default:
		return fmt.Errorf("unknown model %q", s.Model)
	}
	return nil
}

// Load reads a scenario from a YAML or JSON file. The scenario name
// defaults to the file name without its extension.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	sc := &Scenario{}
	if err := yaml.Unmarshal(data, sc); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	sc.SourcePath = path
	if sc.Name == "" {
		base := filepath.Base(path)
		sc.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	if err := sc.Validate(); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	return sc, nil
}

// ListDir returns the scenario file paths in dir (extensions .yaml, .yml,
// .json), sorted by file name.
func ListDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read scenario dir: %w", err)
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".yaml", ".yml", ".json":
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(paths)
	return paths, nil
}

// LoadDir loads every scenario file in dir, failing on the first bad one.
func LoadDir(dir string) ([]*Scenario, error) {
	paths, err := ListDir(dir)
	if err != nil {
		return nil, err
	}

	out := make([]*Scenario, 0, len(paths))
	for _, p := range paths {
		sc, err := Load(p)
		if err != nil {
			return nil, err
		}
		out = append(out, sc)
	}
	return out, nil
}
