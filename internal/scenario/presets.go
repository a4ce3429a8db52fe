package scenario

import (
	"fmt"
	"sort"
)

// DefaultSpectral returns the standard full-spectrum run.
func DefaultSpectral() *Scenario {
	return &Scenario{Name: "spectral-default", Model: ModelSpectral}
}

// DefaultAnalytic returns the standard closed-form scan: 4D law with an 80%
// constant-acceptance observer.
func DefaultAnalytic() *Scenario {
	return &Scenario{
		Name:  "analytic-default",
		Model: ModelAnalytic,
		Analytic: AnalyticSpec{
			Visibility: VisibilitySpec{Type: VisibilityConstant, Chi0: floatPtr(0.8)},
		},
	}
}

// Named analytic presets. The values are effective placeholders in the
// spirit of the microscopic models they are labeled after, not calibrated
// results: the SYK-flavored one evaporates faster and scrambles above the
// bound.
var presets = map[string]func() *Scenario{
	"jt": func() *Scenario {
		return &Scenario{
			Name:  "jt",
			Model: ModelAnalytic,
			Analytic: AnalyticSpec{
				Evap:  EvapSpec{M0: 1.0, KHawk: 1e-3, Model: "jt"},
				Chaos: ChaosSpec{AlphaScr: 1.0},
			},
		}
	},
	"syk": func() *Scenario {
		return &Scenario{
			Name:  "syk",
			Model: ModelAnalytic,
			Analytic: AnalyticSpec{
				Evap:  EvapSpec{M0: 1.0, KHawk: 2e-3, Model: "syk-n32-q4"},
				Chaos: ChaosSpec{AlphaScr: 1.2},
			},
		}
	},
}

// Preset returns a named scenario preset.
func Preset(name string) (*Scenario, error) {
	build, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("unknown preset %q (have %v)", name, PresetNames())
	}
	return build(), nil
}

// PresetNames lists the available presets in stable order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
