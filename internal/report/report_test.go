package report

import (
	"errors"
	"math"
	"strings"
	"testing"

	"hawksim/internal/analytic"
	"hawksim/internal/run"
	"hawksim/internal/scenario"
	"hawksim/internal/trajectory"
)

func TestFormatTrajectory(t *testing.T) {
	p := trajectory.DefaultParams()
	p.MaxSamples = 40
	p.Resolution = 50
	res := trajectory.Evolve(p)

	got := FormatTrajectory("unit", p, res)
	for _, want := range []string{"spectral run unit", "samples: 40", "Page point"} {
		if !strings.Contains(got, want) {
			t.Errorf("summary missing %q:\n%s", want, got)
		}
	}
}

func TestFormatThresholdsNeverReached(t *testing.T) {
	p := analytic.DefaultThresholdsParams()
	p.Visibility = func(float64) float64 { return 0.3 }
	th, err := analytic.Compute(p)
	if err != nil {
		t.Fatal(err)
	}
	if !math.IsNaN(th.TPageOperational) {
		t.Fatal("test setup expects an unreached operational Page")
	}

	got := FormatThresholds("dim", th)
	if !strings.Contains(got, "operational Page: t = never") {
		t.Errorf("unreached transition should read 'never':\n%s", got)
	}
	if !strings.Contains(got, "geometric Page") {
		t.Errorf("summary missing the geometric Page line:\n%s", got)
	}
}

func TestFormatSweepCountsAndFailures(t *testing.T) {
	good := &scenario.Scenario{Name: "good", Model: scenario.ModelAnalytic}
	bad := &scenario.Scenario{Name: "bad", Model: scenario.ModelAnalytic}

	th, err := analytic.Compute(analytic.DefaultThresholdsParams())
	if err != nil {
		t.Fatal(err)
	}
	outcomes := []*run.Outcome{
		{Scenario: good, Kind: scenario.ModelAnalytic, Thresholds: th},
		{Scenario: bad, Kind: scenario.ModelAnalytic, Err: errors.New("boom")},
	}

	got := FormatSweep(outcomes)
	if !strings.Contains(got, "1 ok, 1 failed") {
		t.Errorf("summary missing counts:\n%s", got)
	}
	if !strings.Contains(got, "FAILED bad: boom") {
		t.Errorf("summary missing the failure line:\n%s", got)
	}
}
