package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"

	"hawksim/internal/export"
)

var (
	greyPoints int
	greyYMin   float64
	greyYMax   float64
	greyOutput string
)

var greybodyCmd = &cobra.Command{
	Use:   "greybody",
	Short: "Tabulate the greybody transmission profiles",
	Long: `Tabulate the per-spin greybody factors χ_s(y) over a logarithmic grid
of y = E/(k_B T). All four spin channels go into one CSV.`,
	RunE: runGreybody,
}

func init() {
	f := greybodyCmd.Flags()
	f.IntVar(&greyPoints, "points", 200, "grid points")
	f.Float64Var(&greyYMin, "y-min", 1e-2, "lower y bound")
	f.Float64Var(&greyYMax, "y-max", 1e2, "upper y bound")
	f.StringVarP(&greyOutput, "output", "o", "greybody.csv", "CSV output path")
	rootCmd.AddCommand(greybodyCmd)
}

func runGreybody(cmd *cobra.Command, args []string) error {
	if greyPoints < 2 {
		return errors.New("points must be at least 2")
	}
	if !(greyYMin > 0) || greyYMax <= greyYMin {
		return errors.New("need 0 < y-min < y-max")
	}

	ys := floats.LogSpan(make([]float64, greyPoints), greyYMin, greyYMax)
	if err := export.WriteGreybodyFile(greyOutput, ys); err != nil {
		return err
	}
	fmt.Printf("Wrote greybody table to %s\n", greyOutput)
	return nil
}
