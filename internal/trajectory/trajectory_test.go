package trajectory

import (
	"math"
	"testing"
)

// smallParams keeps unit tests fast; the default-parameter run has its own
// dedicated test below.
func smallParams() Params {
	p := DefaultParams()
	p.MaxSamples = 200
	p.Resolution = 100
	return p
}

func TestHoleBits(t *testing.T) {
	want := 4 * math.Pi / math.Ln2
	if got := HoleBits(1); math.Abs(got-want) > 1e-12 {
		t.Errorf("HoleBits(1) = %v, want %v", got, want)
	}
	if got := HoleBits(0); got != 0 {
		t.Errorf("HoleBits(0) = %v, want 0", got)
	}
}

func TestHawkingTemperatureScaling(t *testing.T) {
	if got := HawkingTemperature(1, 1, 1.227e12); got != 1.227e12 {
		t.Errorf("temperature at M0 should be T0, got %v", got)
	}
	if got, want := HawkingTemperature(0.5, 1, 1e12), 2e12; math.Abs(got-want) > 1 {
		t.Errorf("halving the mass should double the temperature: got %v", got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Params)
		wantErr bool
	}{
		{"defaults pass", func(p *Params) {}, false},
		{"zero mass", func(p *Params) { p.M0 = 0 }, true},
		{"negative mass", func(p *Params) { p.M0 = -1 }, true},
		{"nan mass", func(p *Params) { p.M0 = math.NaN() }, true},
		{"zero temperature", func(p *Params) { p.T0 = 0 }, true},
		{"zero samples", func(p *Params) { p.MaxSamples = 0 }, true},
		{"resolution too small", func(p *Params) { p.Resolution = 1 }, true},
		{"zero step fraction", func(p *Params) { p.StepFraction = 0 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParams()
			tt.mutate(&p)
			err := p.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestEvolveRecordsInitialState(t *testing.T) {
	res := Evolve(smallParams())
	if res.Samples() == 0 {
		t.Fatal("no samples recorded")
	}
	if res.T[0] != 0 {
		t.Errorf("first sample time = %v, want 0", res.T[0])
	}
	if res.M[0] != DefaultM0 {
		t.Errorf("first sample mass = %v, want %v", res.M[0], DefaultM0)
	}
	if res.SRad[0] != 0 {
		t.Errorf("radiated entropy must start at 0, got %v", res.SRad[0])
	}
	if math.Abs(res.Temp[0]-DefaultT0) > 1e-3 {
		t.Errorf("initial temperature = %v, want %v", res.Temp[0], DefaultT0)
	}
}

func TestEvolveMonotoneHistories(t *testing.T) {
	res := Evolve(smallParams())
	for i := 1; i < res.Samples(); i++ {
		if res.T[i] <= res.T[i-1] {
			t.Fatalf("time not strictly increasing at %d: %v <= %v", i, res.T[i], res.T[i-1])
		}
		if res.M[i] > res.M[i-1] {
			t.Fatalf("mass increased at %d: %v > %v", i, res.M[i], res.M[i-1])
		}
		if res.Temp[i] < res.Temp[i-1] {
			t.Fatalf("temperature decreased at %d", i)
		}
		if res.SRad[i] < res.SRad[i-1]-1e-9 {
			t.Fatalf("radiated entropy decreased at %d", i)
		}
	}
}

func TestEvolveEntropyConservation(t *testing.T) {
	res := Evolve(smallParams())
	total := res.SBH[0]
	for i, sbh := range res.SBH {
		if math.Abs(sbh+res.SRad[i]-total) > 1e-9*total {
			t.Fatalf("entropy budget violated at sample %d: %v + %v != %v",
				i, sbh, res.SRad[i], total)
		}
	}
}

func TestEvolveDefaultsTerminateOnMass(t *testing.T) {
	if testing.Short() {
		t.Skip("full-resolution run")
	}
	res := Evolve(DefaultParams())
	if res.Samples() >= DefaultMaxSamples {
		t.Fatalf("default run hit the sample cap at %d samples", res.Samples())
	}
	final := res.MOverM0[res.Samples()-1]
	if final > massStopFraction*(1+1e-9) {
		t.Errorf("final mass fraction %v above stop threshold %v", final, massStopFraction)
	}
	if res.TEvap <= 0 {
		t.Errorf("evaporation time %v, want positive", res.TEvap)
	}
	if got := res.Tau[res.Samples()-1]; math.Abs(got-1) > 1e-12 {
		t.Errorf("last normalized time = %v, want 1", got)
	}
}

func TestEvolvePagePointNearHalfEntropy(t *testing.T) {
	if testing.Short() {
		t.Skip("full-resolution run")
	}
	res := Evolve(DefaultParams())
	// The radiated entropy is the exact complement of the hole entropy, so
	// the crossing sits where the hole has half its initial entropy, i.e.
	// M = M0/√2 within one step of the mass ladder.
	want := 1 / math.Sqrt2
	if math.Abs(res.MPage-want) > 5e-3 {
		t.Errorf("Page mass fraction = %v, want about %v", res.MPage, want)
	}
	if !(res.TauPage > 0 && res.TauPage < 1) {
		t.Errorf("Page time fraction = %v, want inside (0,1)", res.TauPage)
	}
	if res.PageIndex <= 0 || res.PageIndex >= res.Samples()-1 {
		t.Errorf("Page index %d out of the interior", res.PageIndex)
	}
}

func TestEvolvePageMassIsNormalized(t *testing.T) {
	p := smallParams()
	p.M0 = 2.0
	p.MaxSamples = 600
	res := Evolve(p)
	// The Page fraction must not scale with the initial mass.
	if res.MPage != res.MOverM0[res.PageIndex] {
		t.Errorf("Page mass = %v, want the normalized sample %v", res.MPage, res.MOverM0[res.PageIndex])
	}
	want := 1 / math.Sqrt2
	if math.Abs(res.MPage-want) > 5e-3 {
		t.Errorf("Page mass fraction = %v, want about %v", res.MPage, want)
	}
}

func TestEvolveSampleCap(t *testing.T) {
	p := smallParams()
	p.MaxSamples = 10
	res := Evolve(p)
	if res.Samples() != 10 {
		t.Errorf("got %d samples, want exactly the cap of 10", res.Samples())
	}
}

func TestEvolveDegenerateParamsTruncate(t *testing.T) {
	tests := []struct {
		name string
		p    Params
	}{
		{"negative mass", Params{M0: -1, T0: 1e12, MaxSamples: 100, Resolution: 50, StepFraction: 1e-3}},
		{"zero mass", Params{M0: 0, T0: 1e12, MaxSamples: 100, Resolution: 50, StepFraction: 1e-3}},
		{"nan mass", Params{M0: math.NaN(), T0: 1e12, MaxSamples: 100, Resolution: 50, StepFraction: 1e-3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Evolve(tt.p)
			if res.Samples() != 1 {
				t.Errorf("degenerate run recorded %d samples, want 1", res.Samples())
			}
		})
	}
}
