package analytic

import (
	"math"
	"testing"
)

func TestHoleBitsComplement(t *testing.T) {
	m0 := 1.0
	for _, m := range []float64{1.0, 0.7, 0.5, 0.1, 0} {
		sum := HoleBits(m) + RadiatedBits(m, m0)
		if math.Abs(sum-HoleBits(m0)) > 1e-12*HoleBits(m0) {
			t.Errorf("m=%v: budget %v does not telescope to %v", m, sum, HoleBits(m0))
		}
	}
}

func decreasingMasses(n int) []float64 {
	p := DefaultEvapParams()
	ts := make([]float64, n)
	for i := range ts {
		ts[i] = p.Lifetime() * float64(i) / float64(n-1)
	}
	return p.MassOver(ts)
}

func TestAccessibleBitsPerfectVisibility(t *testing.T) {
	masses := decreasingMasses(500)
	acc, err := AccessibleBits(masses, func(float64) float64 { return 1 })
	if err != nil {
		t.Fatalf("AccessibleBits: %v", err)
	}
	// χ ≡ 1 makes the collected record the exact emission complement.
	for i, m := range masses {
		want := RadiatedBits(m, masses[0])
		if math.Abs(acc[i]-want) > 1e-9*HoleBits(masses[0]) {
			t.Fatalf("sample %d: collected %v, emitted %v", i, acc[i], want)
		}
	}
}

func TestAccessibleBitsScalesWithVisibility(t *testing.T) {
	masses := decreasingMasses(200)
	full, err := AccessibleBits(masses, func(float64) float64 { return 1 })
	if err != nil {
		t.Fatal(err)
	}
	half, err := AccessibleBits(masses, func(float64) float64 { return 0.5 })
	if err != nil {
		t.Fatal(err)
	}
	for i := range full {
		if math.Abs(half[i]-0.5*full[i]) > 1e-12*HoleBits(masses[0]) {
			t.Fatalf("sample %d: half-visibility record %v != %v/2", i, half[i], full[i])
		}
	}
}

func TestAccessibleBitsMonotone(t *testing.T) {
	masses := decreasingMasses(200)
	acc, err := AccessibleBits(masses, func(m float64) float64 { return 0.3 })
	if err != nil {
		t.Fatal(err)
	}
	if acc[0] != 0 {
		t.Errorf("record must start at 0, got %v", acc[0])
	}
	for i := 1; i < len(acc); i++ {
		if acc[i] < acc[i-1] {
			t.Fatalf("record decreased at %d", i)
		}
	}
}

func TestAccessibleBitsRejectsGrowingHole(t *testing.T) {
	if _, err := AccessibleBits([]float64{0.5, 0.6, 0.7}, func(float64) float64 { return 1 }); err == nil {
		t.Error("expected error for an increasing mass history")
	}
}

func TestAccessibleBitsBlindObserver(t *testing.T) {
	masses := decreasingMasses(100)
	acc, err := AccessibleBits(masses, func(float64) float64 { return 0 })
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range acc {
		if v != 0 {
			t.Fatalf("blind observer collected %v bits at sample %d", v, i)
		}
	}
}

func TestAccessibleBitsEmptyHistory(t *testing.T) {
	acc, err := AccessibleBits(nil, func(float64) float64 { return 1 })
	if err != nil {
		t.Fatal(err)
	}
	if len(acc) != 0 {
		t.Errorf("expected empty record, got %v", acc)
	}
}
