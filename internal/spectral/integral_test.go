package spectral

import (
	"math"
	"testing"

	"hawksim/internal/particle"
)

func masslessChannel(t *testing.T) particle.Species {
	t.Helper()
	for _, sp := range particle.Catalog() {
		if sp.MassEV == 0 {
			return sp
		}
	}
	t.Fatal("catalog has no massless channel")
	return particle.Species{}
}

func TestSpeciesIntegralFiniteAndNonNegative(t *testing.T) {
	temps := []float64{1, 1e6, 1e10, 1e12, 1e14}
	for _, sp := range particle.Catalog() {
		for _, T := range temps {
			got := SpeciesIntegral(T, sp, DefaultResolution)
			if math.IsNaN(got) || math.IsInf(got, 0) {
				t.Errorf("%s at T=%g: non-finite integral %v", sp.Name, T, got)
			}
			if got < 0 {
				t.Errorf("%s at T=%g: negative integral %v", sp.Name, T, got)
			}
		}
	}
}

func TestMasslessChannelTemperatureIndependent(t *testing.T) {
	sp := masslessChannel(t)
	// A massless threshold keeps the dimensionless window at [1e-6, 40]
	// whatever the temperature, so the integral is exactly reproducible.
	a := SpeciesIntegral(1e10, sp, DefaultResolution)
	b := SpeciesIntegral(1e13, sp, DefaultResolution)
	if a != b {
		t.Errorf("massless integral changed with temperature: %v vs %v", a, b)
	}
	if a <= 0 {
		t.Errorf("massless integral should be positive, got %v", a)
	}
}

func TestMassiveChannelSuppressedAtLowTemperature(t *testing.T) {
	var electron particle.Species
	for _, sp := range particle.Catalog() {
		if sp.Name == "electron" {
			electron = sp
		}
	}
	cold := SpeciesIntegral(1e8, electron, DefaultResolution)
	hot := SpeciesIntegral(1e12, electron, DefaultResolution)
	if cold >= hot {
		t.Errorf("electron channel should open with temperature: cold=%v hot=%v", cold, hot)
	}
}

func TestEfficiencyStrictlyIncreasesOverDecades(t *testing.T) {
	temps := []float64{1e10, 1e11, 1e12, 1e13}
	prev := 0.0
	for _, T := range temps {
		f := Efficiency(T, DefaultResolution)
		if math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
			t.Fatalf("Efficiency(%g) = %v, want finite positive", T, f)
		}
		// Massive channels keep opening as the hole heats up, so plateaus
		// are as wrong as dips.
		if f <= prev {
			t.Errorf("Efficiency did not strictly increase at T=%g: %v <= %v", T, f, prev)
		}
		prev = f
	}
}

func TestEfficiencyTinyResolutionDoesNotPanic(t *testing.T) {
	for _, resolution := range []int{-5, 0, 1, 2} {
		f := Efficiency(1e12, resolution)
		if math.IsNaN(f) || f < 0 {
			t.Errorf("resolution %d: got %v", resolution, f)
		}
	}
}

func TestNormalizedEfficiencyReference(t *testing.T) {
	T0 := 1.227e12
	grid := []float64{1e10, T0, 1e13}
	norm := NormalizedEfficiency(grid, T0, DefaultResolution)
	if len(norm) != len(grid) {
		t.Fatalf("got %d values for %d temperatures", len(norm), len(grid))
	}
	if math.Abs(norm[1]-1) > 1e-12 {
		t.Errorf("normalization at T0 should be 1, got %v", norm[1])
	}
	if !(norm[0] <= 1 && norm[2] >= 1) {
		t.Errorf("normalized efficiency not ordered around T0: %v", norm)
	}
}
