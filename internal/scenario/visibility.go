package scenario

import (
	"fmt"
	"math"
)

// VisibilityKind names a detector acceptance profile.
type VisibilityKind string

const (
	VisibilityConstant VisibilityKind = "constant"
	VisibilityPowerLaw VisibilityKind = "powerlaw"
	VisibilityStep     VisibilityKind = "step"
)

// VisibilitySpec selects the acceptance χ(M) applied to the emission record.
// Only the fields of the chosen type matter. Knobs whose zero value is a
// meaningful setting are pointers, so an explicit 0 in a file survives
// decoding: chi0: 0 is a blind observer, not an unset field.
type VisibilitySpec struct {
	Type VisibilityKind `yaml:"type"`

	// constant and powerlaw
	Chi0 *float64 `yaml:"chi0"`

	// powerlaw: χ = chi0·(M/m_ref)^p
	MRef float64 `yaml:"m_ref"`
	P    float64 `yaml:"p"`

	// step: chi_hi at or above m_step, chi_lo below
	ChiHi *float64 `yaml:"chi_hi"`
	ChiLo float64  `yaml:"chi_lo"`
	MStep *float64 `yaml:"m_step"`
}

// Func builds the acceptance function. An empty type means constant, and
// unset knobs take the conventional values (full acceptance, unit reference
// mass, step at M=0.5). Unknown types are an error.
func (v VisibilitySpec) Func() (func(float64) float64, error) {
	switch v.Type {
	case VisibilityConstant, "":
		chi0 := defaultTo(v.Chi0, 1.0)
		return func(float64) float64 { return chi0 }, nil
	case VisibilityPowerLaw:
		chi0 := defaultTo(v.Chi0, 1.0)
		mRef := v.MRef
		if mRef == 0 {
			mRef = 1.0
		}
		p := v.P
		return func(m float64) float64 { return chi0 * math.Pow(m/mRef, p) }, nil
	case VisibilityStep:
		hi := defaultTo(v.ChiHi, 1.0)
		lo := v.ChiLo
		mStep := defaultTo(v.MStep, 0.5)
		return func(m float64) float64 {
			if m >= mStep {
				return hi
			}
			return lo
		}, nil
	default:
		return nil, fmt.Errorf("unsupported visibility type %q", v.Type)
	}
}

func defaultTo(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}

func floatPtr(v float64) *float64 { return &v }
