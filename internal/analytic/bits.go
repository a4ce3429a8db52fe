package analytic

import (
	"errors"
	"math"
)

// HoleBits is the Bekenstein-Hawking entropy 4πM²/ln2 in bits.
func HoleBits(m float64) float64 {
	return 4 * math.Pi * m * m / math.Ln2
}

// RadiatedBits is the entropy emitted while the hole shrank from m0 to m.
func RadiatedBits(m, m0 float64) float64 {
	return HoleBits(m0) - HoleBits(m)
}

// AccessibleBits integrates the visibility-weighted emission record along a
// mass history. masses must be non-increasing (an evaporation run); the
// result is the cumulative trapezoid of (8π/ln2)·χ(M)·M dM, so element i
// counts the bits an observer with detector acceptance χ has collected by
// sample i.
func AccessibleBits(masses []float64, visibility func(float64) float64) ([]float64, error) {
	out := make([]float64, len(masses))
	if len(masses) == 0 {
		return out, nil
	}
	prefactor := 8 * math.Pi / math.Ln2
	hPrev := visibility(masses[0]) * masses[0]
	for i := 1; i < len(masses); i++ {
		dm := masses[i-1] - masses[i]
		if dm < 0 {
			return nil, errors.New("mass history must be non-increasing")
		}
		h := visibility(masses[i]) * masses[i]
		out[i] = out[i-1] + prefactor*0.5*(hPrev+h)*dm
		hPrev = h
	}
	return out, nil
}
