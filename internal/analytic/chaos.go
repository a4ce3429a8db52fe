package analytic

import "math"

// ChaosParams sets the scrambling strength entering the Lyapunov estimate.
type ChaosParams struct {
	AlphaScr float64
}

// DefaultChaosParams returns the saturated chaos bound, α = 1.
func DefaultChaosParams() ChaosParams {
	return ChaosParams{AlphaScr: 1.0}
}

// LyapunovAt is the chaos-bound growth rate 2πT_H(t)/α at time t.
func LyapunovAt(t float64, ep EvapParams, cp ChaosParams) float64 {
	return LyapunovOfMass(ep.MassAt(t), cp)
}

// LyapunovOfMass is the chaos-bound growth rate for a hole of mass m.
func LyapunovOfMass(m float64, cp ChaosParams) float64 {
	return 2 * math.Pi * TemperatureOfMass(m) / cp.AlphaScr
}
