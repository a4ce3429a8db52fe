package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"hawksim/internal/report"
	"hawksim/internal/run"
	"hawksim/internal/scenario"
)

var (
	sweepConfig    string
	sweepScenarios string
	sweepWorkers   int
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Run every scenario in a directory",
	Long: `Load all scenario files from a directory and run them concurrently,
writing CSV artifacts and recording each run. Failures are reported per
scenario; the command exits nonzero if any scenario failed.`,
	RunE: runSweep,
}

func init() {
	f := sweepCmd.Flags()
	f.StringVar(&sweepConfig, "config", "", "config file path")
	f.StringVar(&sweepScenarios, "scenarios", "", "scenario directory (overrides config)")
	f.IntVar(&sweepWorkers, "workers", 0, "concurrent scenario limit (overrides config)")
	rootCmd.AddCommand(sweepCmd)
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := loadAppConfig(sweepConfig)
	if err != nil {
		return err
	}
	if sweepScenarios != "" {
		cfg.Sweep.ScenarioDir = sweepScenarios
	}
	if sweepWorkers > 0 {
		cfg.Sweep.Workers = sweepWorkers
	}

	scs, err := scenario.LoadDir(cfg.Sweep.ScenarioDir)
	if err != nil {
		return err
	}
	if len(scs) == 0 {
		return fmt.Errorf("no scenarios in %s", cfg.Sweep.ScenarioDir)
	}

	rec := openRecorder(cfg.Database.SQLitePath)
	defer rec.Close()

	runner := run.New(rec, cfg.Export.Dir)
	outcomes := runner.Sweep(cmd.Context(), scs, cfg.Sweep.Workers)
	fmt.Println(report.FormatSweep(outcomes))

	for _, out := range outcomes {
		if out.Err != nil {
			return errors.New("sweep had failures")
		}
	}
	return nil
}
