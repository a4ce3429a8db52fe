package spectral

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"

	"hawksim/internal/greybody"
	"hawksim/internal/particle"
)

// DefaultResolution is the emission-integral grid size used when the caller
// does not pick one.
const DefaultResolution = 600

// SpeciesIntegral evaluates the greybody-weighted emission integral of a
// single channel at horizon temperature T (kelvin).
//
// The integration variable x = E/(k_B T) runs from the rest-mass threshold
// mu = m/(k_B T) out to mu+40, well past the thermal peak; the window is
// never narrower than [1e-6, 40]. The occupation factor is e^x+1 for
// fermions and e^x-1 for bosons, replaced by e^x at any grid point where
// e^x-1 is not positive so the integrand stays finite.
func SpeciesIntegral(T float64, sp particle.Species, resolution int) float64 {
	if resolution < 2 {
		resolution = 2
	}
	mu := 0.0
	if sp.MassEV > 0 {
		mu = sp.MassEV / (particle.BoltzmannEVPerK * T)
	}

	xs := floats.Span(make([]float64, resolution), math.Max(mu, 1e-6), math.Max(mu+40, 40))
	ys := floats.ScaleTo(make([]float64, resolution), 1/(4*math.Pi), xs)
	chis := greybody.Profiles(make([]float64, resolution), ys, sp.Spin)

	f := make([]float64, resolution)
	for i, x := range xs {
		ex := math.Exp(x)
		den := ex + 1
		if !sp.Fermion {
			den = ex - 1
			if den <= 0 {
				den = ex
			}
		}
		f[i] = x * x * x * chis[i] / den
	}
	return sp.Degeneracy * integrate.Trapezoidal(xs, f)
}

// Integral sums SpeciesIntegral over the whole emission catalog.
func Integral(T float64, resolution int) float64 {
	total := 0.0
	for _, sp := range particle.Catalog() {
		total += SpeciesIntegral(T, sp, resolution)
	}
	return total
}

// Efficiency is the spectral efficiency F(T) entering the mass-loss law
// dM/dt = -F(T)/M². The overall normalization is fixed at 1, so F(T) is the
// bare catalog integral.
func Efficiency(T float64, resolution int) float64 {
	return Integral(T, resolution)
}

// NormalizedEfficiency returns F(T)/F(T0) for every temperature in grid.
func NormalizedEfficiency(grid []float64, T0 float64, resolution int) []float64 {
	ref := Efficiency(T0, resolution)
	out := make([]float64, len(grid))
	for i, T := range grid {
		out[i] = Efficiency(T, resolution) / ref
	}
	return out
}
