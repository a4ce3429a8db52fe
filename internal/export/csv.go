// Package export writes simulation products as plain CSV, the interface to
// external plotting and analysis tooling. All values use scientific notation
// with 8 digits after the decimal point so runs diff cleanly.
package export

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"hawksim/internal/analytic"
	"hawksim/internal/greybody"
	"hawksim/internal/trajectory"
)

// TrajectoryHeader is the column layout of an evaporation history dump.
const TrajectoryHeader = "tau,M_over_M0,T_over_T0,S_bits,bits_emitted"

// WriteTrajectory streams one evaporation history to w. Degenerate
// single-sample histories produce a valid single-row file.
func WriteTrajectory(w io.Writer, res *trajectory.Result) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(TrajectoryHeader + "\n"); err != nil {
		return err
	}
	for i := range res.Tau {
		row := formatRow(res.Tau[i], res.MOverM0[i], res.TOverT0[i], res.SBH[i], res.SRad[i])
		if _, err := bw.WriteString(row); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteTrajectoryFile writes the history to path, creating parent
// directories as needed.
func WriteTrajectoryFile(path string, res *trajectory.Result) error {
	return writeFile(path, func(w io.Writer) error { return WriteTrajectory(w, res) })
}

// ThresholdsHeader is the column layout of an analytic threshold scan dump.
const ThresholdsHeader = "t,M,hole_bits,radiated_bits,accessible_bits,s_no_island,s_island,s_gen,lyapunov"

// WriteThresholds streams the sampled series of a threshold scan to w.
func WriteThresholds(w io.Writer, th *analytic.Thresholds) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(ThresholdsHeader + "\n"); err != nil {
		return err
	}
	for i := range th.T {
		row := formatRow(th.T[i], th.M[i], th.HoleB[i], th.RadB[i], th.AccB[i],
			th.SNo[i], th.SIsland[i], th.SGen[i], th.Lyapunov[i])
		if _, err := bw.WriteString(row); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteThresholdsFile writes the scan to path, creating parent directories
// as needed.
func WriteThresholdsFile(path string, th *analytic.Thresholds) error {
	return writeFile(path, func(w io.Writer) error { return WriteThresholds(w, th) })
}

// GreybodyHeader is the column layout of an absorption-profile dump.
const GreybodyHeader = "y,chi_spin0,chi_spin_half,chi_spin1,chi_spin2"

// WriteGreybody dumps the four absorption profiles over the given
// dimensionless frequencies.
func WriteGreybody(w io.Writer, ys []float64) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(GreybodyHeader + "\n"); err != nil {
		return err
	}
	for _, y := range ys {
		row := formatRow(y,
			greybody.Profile(y, 0),
			greybody.Profile(y, 0.5),
			greybody.Profile(y, 1),
			greybody.Profile(y, 2))
		if _, err := bw.WriteString(row); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteGreybodyFile writes the profile dump to path.
func WriteGreybodyFile(path string, ys []float64) error {
	return writeFile(path, func(w io.Writer) error { return WriteGreybody(w, ys) })
}

// EfficiencyHeader is the column layout of a normalized-efficiency dump.
const EfficiencyHeader = "T,F_over_F0"

// WriteEfficiency dumps F(T)/F(T0) over a temperature grid. The grids must
// have equal length.
func WriteEfficiency(w io.Writer, temps, norm []float64) error {
	if len(temps) != len(norm) {
		return fmt.Errorf("efficiency dump: %d temperatures vs %d values", len(temps), len(norm))
	}
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(EfficiencyHeader + "\n"); err != nil {
		return err
	}
	for i := range temps {
		if _, err := bw.WriteString(formatRow(temps[i], norm[i])); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteEfficiencyFile writes the efficiency dump to path.
func WriteEfficiencyFile(path string, temps, norm []float64) error {
	return writeFile(path, func(w io.Writer) error { return WriteEfficiency(w, temps, norm) })
}

func formatRow(vals ...float64) string {
	var b strings.Builder
	for i, v := range vals {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatFloat(v, 'e', 8, 64))
	}
	b.WriteByte('\n')
	return b.String()
}

func writeFile(path string, write func(io.Writer) error) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
