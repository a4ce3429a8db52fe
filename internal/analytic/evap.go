// Package analytic implements the closed-form evaporation model: the cubic
// mass-loss law, information budgets for the emitted radiation, generalized
// entropy branches and the transition times derived from them.
package analytic

import "math"

// DefaultModel labels the closed-form law dM/dt = -k/M².
const DefaultModel = "schwarzschild-4d"

const (
	DefaultM0    = 1.0
	DefaultKHawk = 1e-3
)

// EvapParams configures the closed-form mass-loss law.
type EvapParams struct {
	M0    float64
	KHawk float64
	Model string
}

// DefaultEvapParams returns the standard analytic configuration.
func DefaultEvapParams() EvapParams {
	return EvapParams{M0: DefaultM0, KHawk: DefaultKHawk, Model: DefaultModel}
}

// Lifetime is the total evaporation time M0³/(3k).
func (p EvapParams) Lifetime() float64 {
	return p.M0 * p.M0 * p.M0 / (3 * p.KHawk)
}

// MassAt solves the law in closed form: M(t) = (M0³ - 3kt)^(1/3), clipped at
// zero once the hole has burned away.
func (p EvapParams) MassAt(t float64) float64 {
	inside := p.M0*p.M0*p.M0 - 3*p.KHawk*t
	if inside <= 0 {
		return 0
	}
	return math.Cbrt(inside)
}

// MassOver evaluates MassAt on every time in ts.
func (p EvapParams) MassOver(ts []float64) []float64 {
	out := make([]float64, len(ts))
	for i, t := range ts {
		out[i] = p.MassAt(t)
	}
	return out
}

// TemperatureAt is the horizon temperature at time t.
func (p EvapParams) TemperatureAt(t float64) float64 {
	return TemperatureOfMass(p.MassAt(t))
}

// AreaAt is the horizon area at time t.
func (p EvapParams) AreaAt(t float64) float64 {
	return AreaOfMass(p.MassAt(t))
}

// TemperatureOfMass is the Hawking temperature 1/(8πM) in geometric units.
// The small offset keeps the burned-out endpoint finite.
func TemperatureOfMass(m float64) float64 {
	return 1 / (8 * math.Pi * (m + 1e-16))
}

// AreaOfMass is the horizon area 16πM².
func AreaOfMass(m float64) float64 {
	return 16 * math.Pi * m * m
}
