package analytic

import "math"

// SGenParams weighs the island branch of the generalized entropy. Kappa is
// the residual radiation term kept inside the island; 0 reproduces the pure
// hole entropy.
type SGenParams struct {
	Kappa float64
}

// DefaultSGenParams returns the vanishing-residual island branch.
func DefaultSGenParams() SGenParams {
	return SGenParams{Kappa: 0}
}

// Branches returns the two candidate entropies for every sample: the
// no-island branch S_rad and the island branch S_bh + κ·S_rad.
func Branches(sbh, srad []float64, p SGenParams) (sNo, sIsland []float64) {
	sNo = make([]float64, len(srad))
	sIsland = make([]float64, len(srad))
	for i := range srad {
		sNo[i] = srad[i]
		sIsland[i] = sbh[i] + p.Kappa*srad[i]
	}
	return sNo, sIsland
}

// Generalized takes the elementwise minimum of the two branches.
func Generalized(sNo, sIsland []float64) []float64 {
	out := make([]float64, len(sNo))
	for i := range sNo {
		out[i] = math.Min(sNo[i], sIsland[i])
	}
	return out
}

// PageCrossing locates the sample where hole and radiation entropy are
// closest, keeping the first occurrence on ties. It returns the index and
// the corresponding time.
func PageCrossing(ts, sbh, srad []float64) (int, float64) {
	best := math.Inf(1)
	idx := 0
	for i := range ts {
		if gap := math.Abs(sbh[i] - srad[i]); gap < best {
			best = gap
			idx = i
		}
	}
	return idx, ts[idx]
}

// BranchSwitch finds the first time the no-island and island branches cross,
// linearly interpolated between the bracketing samples. It returns NaN when
// the branches never meet.
func BranchSwitch(ts, sNo, sIsland []float64) float64 {
	for i := 0; i+1 < len(ts); i++ {
		d0 := sNo[i] - sIsland[i]
		d1 := sNo[i+1] - sIsland[i+1]
		if d0*d1 > 0 {
			continue
		}
		if d1 == d0 {
			return ts[i]
		}
		return ts[i] + (0-d0)*(ts[i+1]-ts[i])/(d1-d0)
	}
	return math.NaN()
}
