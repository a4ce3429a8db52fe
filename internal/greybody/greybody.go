package greybody

import "math"

// geometricOptics is the high-frequency capture cross-section 27π/4 shared by
// all spins.
const geometricOptics = 27 * math.Pi / 4

// spinTol is the half-width used to match a spin value to its profile.
const spinTol = 1e-9

// Profile evaluates the spin-dependent greybody absorption factor χ_s at the
// dimensionless frequency y.
//
// Every profile approaches 27π/4 at high frequency. At low frequency spin 0
// starts from the full horizon capture value 4π, while spins 1/2, 1 and 2 are
// suppressed by rising powers of y. Spins outside the table fall back to the
// spin-1/2 shape.
func Profile(y, spin float64) float64 {
	y2 := y * y
	switch {
	case near(spin, 0):
		return 4*math.Pi + (geometricOptics-4*math.Pi)*y2/(1+y2)
	case near(spin, 0.5):
		return geometricOptics * y2 / (1 + y2)
	case near(spin, 1):
		y4 := y2 * y2
		return geometricOptics * y4 / (1 + y4)
	case near(spin, 2):
		y6 := y2 * y2 * y2
		return geometricOptics * y6 / (1 + y6)
	default:
		return geometricOptics * y2 / (1 + y2)
	}
}

// Profiles fills dst with Profile(y, spin) for each y in ys and returns dst.
// It panics if the slices differ in length.
func Profiles(dst, ys []float64, spin float64) []float64 {
	if len(dst) != len(ys) {
		panic("greybody: dst and ys length mismatch")
	}
	for i, y := range ys {
		dst[i] = Profile(y, spin)
	}
	return dst
}

func near(a, b float64) bool { return math.Abs(a-b) < spinTol }
