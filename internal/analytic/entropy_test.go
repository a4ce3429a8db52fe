package analytic

import (
	"math"
	"testing"
)

func TestBranchesKappaZero(t *testing.T) {
	sbh := []float64{10, 6, 2}
	srad := []float64{0, 4, 8}
	sNo, sIsland := Branches(sbh, srad, SGenParams{Kappa: 0})
	for i := range sbh {
		if sNo[i] != srad[i] {
			t.Errorf("no-island branch at %d = %v, want %v", i, sNo[i], srad[i])
		}
		if sIsland[i] != sbh[i] {
			t.Errorf("island branch at %d = %v, want %v", i, sIsland[i], sbh[i])
		}
	}
}

func TestBranchesKappaResidual(t *testing.T) {
	sbh := []float64{10}
	srad := []float64{4}
	_, sIsland := Branches(sbh, srad, SGenParams{Kappa: 0.25})
	if want := 11.0; sIsland[0] != want {
		t.Errorf("island branch = %v, want %v", sIsland[0], want)
	}
}

func TestGeneralizedTakesMinimum(t *testing.T) {
	sNo := []float64{1, 5, 9}
	sIsland := []float64{8, 5, 2}
	got := Generalized(sNo, sIsland)
	want := []float64{1, 5, 2}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("S_gen[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestPageCrossingFirstOccurrence(t *testing.T) {
	ts := []float64{0, 1, 2, 3}
	sbh := []float64{10, 6, 6, 2}
	srad := []float64{0, 4, 4, 8}
	// Samples 1 and 2 tie at |Δ|=2; the first must win.
	idx, when := PageCrossing(ts, sbh, srad)
	if idx != 1 || when != 1 {
		t.Errorf("PageCrossing = (%d, %v), want (1, 1)", idx, when)
	}
}

func TestBranchSwitchInterpolates(t *testing.T) {
	ts := []float64{0, 1}
	sNo := []float64{-1, 3}    // difference goes -2 -> +2
	sIsland := []float64{1, 1} // crossing at the midpoint
	got := BranchSwitch(ts, sNo, sIsland)
	if math.Abs(got-0.5) > 1e-12 {
		t.Errorf("BranchSwitch = %v, want 0.5", got)
	}
}

func TestBranchSwitchNoCrossing(t *testing.T) {
	ts := []float64{0, 1, 2}
	sNo := []float64{1, 2, 3}
	sIsland := []float64{5, 6, 7}
	if got := BranchSwitch(ts, sNo, sIsland); !math.IsNaN(got) {
		t.Errorf("expected NaN without a crossing, got %v", got)
	}
}

func TestBranchSwitchFlatTie(t *testing.T) {
	ts := []float64{0, 1, 2}
	sNo := []float64{3, 3, 3}
	sIsland := []float64{3, 3, 3}
	// Degenerate equal branches resolve to the first sample.
	if got := BranchSwitch(ts, sNo, sIsland); got != 0 {
		t.Errorf("BranchSwitch = %v, want 0", got)
	}
}
