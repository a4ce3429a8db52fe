package trajectory

import (
	"errors"
	"math"

	"hawksim/internal/spectral"
)

// Defaults measure mass in units of the initial mass; T0 anchors the kelvin
// scale of the horizon temperature at that mass.
const (
	DefaultM0           = 1.0
	DefaultT0           = 1.227e12
	DefaultMaxSamples   = 8000
	DefaultResolution   = spectral.DefaultResolution
	DefaultStepFraction = 1.25e-3

	// Stepped mass never falls below massFloorFraction·M0; the run stops
	// once it reaches massStopFraction·M0.
	massFloorFraction = 1e-6
	massStopFraction  = 1e-4
)

// Params configures a spectral evaporation run.
type Params struct {
	M0           float64 // initial mass, geometric units
	T0           float64 // horizon temperature at M0, kelvin
	MaxSamples   int     // hard cap on recorded samples, initial state included
	Resolution   int     // emission-integral grid size
	StepFraction float64 // target relative mass loss per step
}

// DefaultParams returns the standard run configuration.
func DefaultParams() Params {
	return Params{
		M0:           DefaultM0,
		T0:           DefaultT0,
		MaxSamples:   DefaultMaxSamples,
		Resolution:   DefaultResolution,
		StepFraction: DefaultStepFraction,
	}
}

// Validate reports the first unusable field. Evolve itself accepts any
// parameters and truncates the trajectory instead of failing; validation is
// for configuration boundaries that want early errors.
func (p Params) Validate() error {
	if !(p.M0 > 0) {
		return errors.New("m0 must be positive")
	}
	if !(p.T0 > 0) {
		return errors.New("t0 must be positive")
	}
	if p.MaxSamples <= 0 {
		return errors.New("max samples must be positive")
	}
	if p.Resolution < 2 {
		return errors.New("resolution must be at least 2")
	}
	if !(p.StepFraction > 0) {
		return errors.New("step fraction must be positive")
	}
	return nil
}

// Result holds one recorded evaporation history. Slices share a common
// length; index 0 is the initial state.
type Result struct {
	T    []float64 // simulation time
	M    []float64 // mass
	Temp []float64 // horizon temperature, kelvin

	SBH  []float64 // hole entropy, bits
	SRad []float64 // radiated entropy, bits

	Tau     []float64 // T normalized by TEvap
	MOverM0 []float64
	TOverT0 []float64

	TEvap     float64 // final recorded time
	PageIndex int     // first sample where hole and radiation entropy meet
	TauPage   float64
	MPage     float64 // Page-point mass as a fraction of M0
}

// Samples returns the number of recorded states.
func (r *Result) Samples() int { return len(r.T) }

// HawkingTemperature is the horizon temperature of a hole of mass m, scaled
// so that mass m0 radiates at t0.
func HawkingTemperature(m, m0, t0 float64) float64 {
	return t0 * (m0 / m)
}

// HoleBits is the Bekenstein-Hawking entropy 4πM²/ln2 of a hole of mass m,
// measured in bits.
func HoleBits(m float64) float64 {
	return 4 * math.Pi * m * m / math.Ln2
}

// Evolve integrates the evaporation history for the given parameters.
//
// Explicit Euler with an adaptive step targeting StepFraction relative mass
// loss per step. The run stops when the mass reaches 1e-4·M0, when the step
// size degenerates, or when MaxSamples states have been recorded. Radiated
// entropy is accumulated as the exact complement of the hole entropy, so
// SBH[i]+SRad[i] equals SBH[0] at every sample up to rounding.
func Evolve(p Params) *Result {
	mFloor := massFloorFraction * p.M0
	mStop := massStopFraction * p.M0

	res := &Result{}
	t, m := 0.0, p.M0
	sbh := HoleBits(m)
	srad := 0.0
	res.record(t, m, HawkingTemperature(m, p.M0, p.T0), sbh, srad)

	for m > mStop && len(res.T) < p.MaxSamples {
		temp := HawkingTemperature(m, p.M0, p.T0)
		eff := spectral.Efficiency(temp, p.Resolution)
		dmdt := -eff / (m*m + 1e-30)
		dt := p.StepFraction * math.Abs(m/(dmdt+1e-30))
		if math.IsNaN(dt) || math.IsInf(dt, 0) || dt <= 0 {
			break
		}

		mNext := m + dmdt*dt
		if mNext < mFloor {
			mNext = mFloor
		}
		sbhNext := HoleBits(mNext)
		srad -= sbhNext - sbh

		t += dt
		m, sbh = mNext, sbhNext
		res.record(t, m, HawkingTemperature(m, p.M0, p.T0), sbh, srad)
	}

	res.finish(p)
	return res
}

func (r *Result) record(t, m, temp, sbh, srad float64) {
	r.T = append(r.T, t)
	r.M = append(r.M, m)
	r.Temp = append(r.Temp, temp)
	r.SBH = append(r.SBH, sbh)
	r.SRad = append(r.SRad, srad)
}

// finish derives the normalized series and locates the Page point.
func (r *Result) finish(p Params) {
	n := len(r.T)
	r.TEvap = r.T[n-1]

	r.Tau = make([]float64, n)
	r.MOverM0 = make([]float64, n)
	r.TOverT0 = make([]float64, n)
	for i := 0; i < n; i++ {
		if r.TEvap > 0 {
			r.Tau[i] = r.T[i] / r.TEvap
		}
		r.MOverM0[i] = r.M[i] / p.M0
		r.TOverT0[i] = r.Temp[i] / p.T0
	}

	best := math.Inf(1)
	for i := 0; i < n; i++ {
		if gap := math.Abs(r.SBH[i] - r.SRad[i]); gap < best {
			best = gap
			r.PageIndex = i
		}
	}
	r.TauPage = r.Tau[r.PageIndex]
	r.MPage = r.MOverM0[r.PageIndex]
}
