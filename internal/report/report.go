// Package report renders run products as short plain-text summaries for the
// CLI and the daemon log.
package report

import (
	"fmt"
	"math"
	"strings"

	"hawksim/internal/analytic"
	"hawksim/internal/run"
	"hawksim/internal/trajectory"
)

// FormatTrajectory summarizes a spectral evaporation run.
func FormatTrajectory(name string, p trajectory.Params, res *trajectory.Result) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("spectral run %s\n", name))
	b.WriteString(fmt.Sprintf("  M0: %g | T0: %g K | resolution: %d\n", p.M0, p.T0, p.Resolution))
	b.WriteString(fmt.Sprintf("  samples: %d (cap %d)\n", res.Samples(), p.MaxSamples))
	b.WriteString(fmt.Sprintf("  evaporation time: %.6e\n", res.TEvap))

	last := res.Samples() - 1
	b.WriteString(fmt.Sprintf("  final mass: %.3e M0 at T = %.3e T0\n", res.MOverM0[last], res.TOverT0[last]))
	b.WriteString(fmt.Sprintf("  Page point: tau = %.4f, M = %.4f M0 (sample %d)\n",
		res.TauPage, res.MPage, res.PageIndex))
	return b.String()
}

// FormatThresholds summarizes an analytic threshold scan.
func FormatThresholds(name string, th *analytic.Thresholds) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("analytic scan %s\n", name))
	b.WriteString(fmt.Sprintf("  lifetime: %.6e (%d samples)\n", th.Lifetime, len(th.T)))
	b.WriteString(fmt.Sprintf("  geometric Page:   t = %s, M = %.4f\n",
		formatTime(th.TPageGeometric), th.MPageGeometric))
	b.WriteString(fmt.Sprintf("  operational Page: t = %s", formatTime(th.TPageOperational)))
	if !math.IsNaN(th.MPageOperational) {
		b.WriteString(fmt.Sprintf(", M = %.4f", th.MPageOperational))
	}
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  entropy crossing: t = %s\n", formatTime(th.TPageEntropy)))
	b.WriteString(fmt.Sprintf("  branch switch:    t = %s\n", formatTime(th.TBranchSwitch)))
	b.WriteString(fmt.Sprintf("  scrambled release: t = %s\n", formatTime(th.THaydenPreskill)))
	return b.String()
}

// FormatSweep summarizes a batch of outcomes, listing failures by name.
func FormatSweep(outcomes []*run.Outcome) string {
	var b strings.Builder

	ok, failed := 0, 0
	for _, out := range outcomes {
		if out.Err != nil {
			failed++
		} else {
			ok++
		}
	}
	b.WriteString(fmt.Sprintf("sweep finished: %d ok, %d failed\n", ok, failed))

	for _, out := range outcomes {
		if out.Err != nil {
			b.WriteString(fmt.Sprintf("  FAILED %s: %v\n", out.Scenario.Name, out.Err))
			continue
		}
		switch {
		case out.Trajectory != nil:
			b.WriteString(fmt.Sprintf("  %s: %d samples, Page at tau %.4f\n",
				out.Scenario.Name, out.Trajectory.Samples(), out.Trajectory.TauPage))
		case out.Thresholds != nil:
			b.WriteString(fmt.Sprintf("  %s: lifetime %.4e, Page at t %s\n",
				out.Scenario.Name, out.Thresholds.Lifetime, formatTime(out.Thresholds.TPageEntropy)))
		}
	}
	return b.String()
}

// formatTime renders transition times, keeping the never-reached case
// readable.
func formatTime(v float64) string {
	if math.IsNaN(v) {
		return "never"
	}
	return fmt.Sprintf("%.6e", v)
}
