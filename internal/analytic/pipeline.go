package analytic

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/interp"
)

// DefaultThresholdSteps is the sample count of an analytic threshold scan.
const DefaultThresholdSteps = 1000

// ThresholdsParams bundles the model inputs of a threshold scan.
type ThresholdsParams struct {
	Evap    EvapParams
	Chaos   ChaosParams
	Entropy SGenParams

	// Visibility is the detector acceptance χ(M); nil means perfect
	// visibility, χ ≡ 1.
	Visibility func(float64) float64

	Steps int
}

// DefaultThresholdsParams returns a scan of the default model with perfect
// visibility.
func DefaultThresholdsParams() ThresholdsParams {
	return ThresholdsParams{
		Evap:    DefaultEvapParams(),
		Chaos:   DefaultChaosParams(),
		Entropy: DefaultSGenParams(),
		Steps:   DefaultThresholdSteps,
	}
}

// Thresholds holds the sampled series of a scan and the transition times
// derived from them. Times that never occur within the run are NaN.
type Thresholds struct {
	T []float64 // uniform grid over the lifetime
	M []float64

	HoleB []float64 // remaining hole entropy, bits
	RadB  []float64 // emitted entropy, bits
	AccB  []float64 // visibility-weighted collected bits

	SNo      []float64
	SIsland  []float64
	SGen     []float64
	Lyapunov []float64

	Lifetime float64

	MPageGeometric float64 // M0/√2
	TPageGeometric float64

	MPageOperational float64 // NaN when the visible record never reaches half the budget
	TPageOperational float64

	PageIndex    int
	TPageEntropy float64

	TBranchSwitch   float64 // NaN without an island crossing
	THaydenPreskill float64 // NaN when collected bits never catch the hole
}

// Compute runs the full analytic threshold scan.
func Compute(p ThresholdsParams) (*Thresholds, error) {
	if p.Steps < 2 {
		return nil, errors.New("threshold scan needs at least 2 steps")
	}
	if !(p.Evap.M0 > 0) || !(p.Evap.KHawk > 0) {
		return nil, errors.New("evaporation parameters must be positive")
	}
	lifetime := p.Evap.Lifetime()
	if math.IsNaN(lifetime) || math.IsInf(lifetime, 0) || lifetime <= 0 {
		return nil, fmt.Errorf("m0 %g and k_hawk %g give no finite lifetime", p.Evap.M0, p.Evap.KHawk)
	}
	visibility := p.Visibility
	if visibility == nil {
		visibility = func(float64) float64 { return 1 }
	}

	th := &Thresholds{Lifetime: lifetime}
	th.T = floats.Span(make([]float64, p.Steps), 0, th.Lifetime)
	th.M = p.Evap.MassOver(th.T)

	th.HoleB = make([]float64, p.Steps)
	th.RadB = make([]float64, p.Steps)
	th.Lyapunov = make([]float64, p.Steps)
	for i, m := range th.M {
		th.HoleB[i] = HoleBits(m)
		th.RadB[i] = RadiatedBits(m, p.Evap.M0)
		th.Lyapunov[i] = LyapunovOfMass(m, p.Chaos)
	}

	var err error
	th.AccB, err = AccessibleBits(th.M, visibility)
	if err != nil {
		return nil, fmt.Errorf("accessible bits: %w", err)
	}

	// The reversed mass history feeds a piecewise-linear t(M) lookup for the
	// Page masses. Fit panics on a non-increasing grid instead of erroring,
	// so gate it here: subnormal mass scales can collapse neighboring grid
	// points even when the lifetime itself is fine.
	revM := make([]float64, p.Steps)
	revT := make([]float64, p.Steps)
	for i := range th.M {
		revM[p.Steps-1-i] = th.M[i]
		revT[p.Steps-1-i] = th.T[i]
	}
	for i := 1; i < p.Steps; i++ {
		if revM[i] <= revM[i-1] {
			return nil, fmt.Errorf("mass grid degenerate for m0 %g and k_hawk %g", p.Evap.M0, p.Evap.KHawk)
		}
	}
	var tOfM interp.PiecewiseLinear
	tOfM.Fit(revM, revT)

	th.MPageGeometric = p.Evap.M0 / math.Sqrt2
	th.TPageGeometric = tOfM.Predict(th.MPageGeometric)

	th.MPageOperational, th.TPageOperational = operationalPage(th, &tOfM)

	th.SNo, th.SIsland = Branches(th.HoleB, th.RadB, p.Entropy)
	th.SGen = Generalized(th.SNo, th.SIsland)
	th.PageIndex, th.TPageEntropy = PageCrossing(th.T, th.HoleB, th.RadB)
	th.TBranchSwitch = BranchSwitch(th.T, th.SNo, th.SIsland)
	th.THaydenPreskill = haydenPreskill(th.T, th.AccB, th.HoleB)

	return th, nil
}

// operationalPage finds where the collected bits reach half the initial
// budget, interpolating inside the bracketing step. Both results are NaN
// when the record stays below the half-way mark for the whole run.
func operationalPage(th *Thresholds, tOfM *interp.PiecewiseLinear) (float64, float64) {
	half := 0.5 * HoleBits(th.M[0])
	for i := 1; i < len(th.AccB); i++ {
		if th.AccB[i] < half {
			continue
		}
		frac := (half - th.AccB[i-1]) / (th.AccB[i] - th.AccB[i-1])
		m := th.M[i-1] + frac*(th.M[i]-th.M[i-1])
		return m, tOfM.Predict(m)
	}
	return math.NaN(), math.NaN()
}

// haydenPreskill returns the first sample time where the collected bits
// match or exceed the remaining hole entropy, NaN if that never happens.
func haydenPreskill(ts, accB, holeB []float64) float64 {
	for i := range ts {
		if accB[i]-holeB[i] >= 0 {
			return ts[i]
		}
	}
	return math.NaN()
}
