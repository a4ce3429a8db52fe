package main

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"hawksim/internal/analytic"
	"hawksim/internal/export"
	"hawksim/internal/report"
	"hawksim/internal/run"
	"hawksim/internal/scenario"
)

var (
	thrM0       float64
	thrKHawk    float64
	thrSteps    int
	thrKappa    float64
	thrAlphaScr float64
	thrPreset   string
	thrScenario string
	thrOutput   string
	thrDatabase string
)

var thresholdsCmd = &cobra.Command{
	Use:   "thresholds",
	Short: "Scan an analytic model for its information thresholds",
	Long: `Run a closed-form evaporation model over its whole lifetime and locate
the geometric and operational Page times, the island branch switch, and the
Hayden-Preskill catch-up point. The sampled series goes to CSV.

A preset or scenario file supplies the base model; flags override it.`,
	RunE: runThresholds,
}

func init() {
	defaults := analytic.DefaultThresholdsParams()
	f := thresholdsCmd.Flags()
	f.Float64Var(&thrM0, "m0", defaults.Evap.M0, "initial mass, Planck units")
	f.Float64Var(&thrKHawk, "k-hawk", defaults.Evap.KHawk, "evaporation constant k")
	f.IntVar(&thrSteps, "steps", defaults.Steps, "samples across the lifetime")
	f.Float64Var(&thrKappa, "kappa", defaults.Entropy.Kappa, "island branch residual coefficient")
	f.Float64Var(&thrAlphaScr, "alpha-scr", defaults.Chaos.AlphaScr, "scrambling suppression factor")
	f.StringVar(&thrPreset, "preset", "", fmt.Sprintf("base scenario preset (%s)", strings.Join(scenario.PresetNames(), ", ")))
	f.StringVar(&thrScenario, "scenario", "", "base scenario file (overrides --preset)")
	f.StringVarP(&thrOutput, "output", "o", "thresholds.csv", "CSV output path")
	f.StringVar(&thrDatabase, "database", "", "SQLite run history path (empty disables)")
	rootCmd.AddCommand(thresholdsCmd)
}

func runThresholds(cmd *cobra.Command, args []string) error {
	sc, err := baseScenario()
	if err != nil {
		return err
	}
	if sc.Model != scenario.ModelAnalytic {
		return fmt.Errorf("scenario %s is not an analytic model", sc.Name)
	}

	flags := cmd.Flags()
	if flags.Changed("m0") {
		sc.Analytic.Evap.M0 = thrM0
	}
	if flags.Changed("k-hawk") {
		sc.Analytic.Evap.KHawk = thrKHawk
	}
	if flags.Changed("steps") {
		sc.Analytic.Steps = thrSteps
	}
	if flags.Changed("kappa") {
		sc.Analytic.Entropy.Kappa = thrKappa
	}
	if flags.Changed("alpha-scr") {
		sc.Analytic.Chaos.AlphaScr = thrAlphaScr
	}

	p, err := sc.ThresholdsParams()
	if err != nil {
		return err
	}
	th, err := analytic.Compute(p)
	if err != nil {
		return err
	}

	if err := export.WriteThresholdsFile(thrOutput, th); err != nil {
		return err
	}
	fmt.Printf("Wrote thresholds to %s\n", thrOutput)

	rec := openRecorder(thrDatabase)
	defer rec.Close()
	if err := rec.RecordThresholds(run.ThresholdsRecord(uuid.NewString(), sc.Name, p, th, thrOutput)); err != nil {
		return fmt.Errorf("record scan: %w", err)
	}

	fmt.Println(report.FormatThresholds(sc.Name, th))
	return nil
}

// baseScenario resolves the starting model: a scenario file, a named preset,
// or the analytic default.
func baseScenario() (*scenario.Scenario, error) {
	if thrScenario != "" {
		return scenario.Load(thrScenario)
	}
	if thrPreset != "" {
		return scenario.Preset(thrPreset)
	}
	sc := scenario.DefaultAnalytic()
	sc.Name = "thresholds"
	return sc, nil
}
