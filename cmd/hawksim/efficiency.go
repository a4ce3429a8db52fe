package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"

	"hawksim/internal/export"
	"hawksim/internal/spectral"
	"hawksim/internal/trajectory"
)

var (
	effT0         float64
	effTMin       float64
	effTMax       float64
	effPoints     int
	effResolution int
	effOutput     string
)

var efficiencyCmd = &cobra.Command{
	Use:   "efficiency",
	Short: "Tabulate the emission efficiency against temperature",
	Long: `Tabulate the total emitted flux F(T) relative to F(t0) over a
logarithmic temperature grid. Massive species switch on as the hole heats
past their rest mass, which is what bends the curve.

Bounds default to the reference temperature and ten-thousand times it, the
span a default trajectory covers.`,
	RunE: runEfficiency,
}

func init() {
	f := efficiencyCmd.Flags()
	f.Float64Var(&effT0, "t0", trajectory.DefaultT0, "reference temperature, kelvin")
	f.Float64Var(&effTMin, "t-min", 0, "lower temperature bound (0 means t0)")
	f.Float64Var(&effTMax, "t-max", 0, "upper temperature bound (0 means 1e4*t0)")
	f.IntVar(&effPoints, "points", 200, "grid points")
	f.IntVar(&effResolution, "resolution", spectral.DefaultResolution, "spectral grid points per species")
	f.StringVarP(&effOutput, "output", "o", "efficiency.csv", "CSV output path")
	rootCmd.AddCommand(efficiencyCmd)
}

func runEfficiency(cmd *cobra.Command, args []string) error {
	if !(effT0 > 0) {
		return errors.New("t0 must be positive")
	}
	tMin := effTMin
	if tMin == 0 {
		tMin = effT0
	}
	tMax := effTMax
	if tMax == 0 {
		tMax = 1e4 * effT0
	}
	if !(tMin > 0) || tMax <= tMin {
		return errors.New("need 0 < t-min < t-max")
	}
	if effPoints < 2 {
		return errors.New("points must be at least 2")
	}

	temps := floats.LogSpan(make([]float64, effPoints), tMin, tMax)
	norm := spectral.NormalizedEfficiency(temps, effT0, effResolution)

	if err := export.WriteEfficiencyFile(effOutput, temps, norm); err != nil {
		return err
	}
	fmt.Printf("Wrote efficiency curve to %s\n", effOutput)
	return nil
}
