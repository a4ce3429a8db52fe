// Command hawksim simulates evaporating black holes: single trajectories,
// analytic threshold scans, scenario sweeps, and a scheduling daemon.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"hawksim/internal/config"
	"hawksim/internal/recorder"
)

var rootCmd = &cobra.Command{
	Use:   "hawksim",
	Short: "Black hole evaporation simulator",
	Long: `hawksim evolves evaporating black holes and the information-theoretic
milestones of their radiation.

The spectral engine integrates greybody-filtered Hawking emission over a
particle catalog and records the mass, temperature, and entropy history up
to the Page turnover. The analytic engine scans closed-form toy models for
the geometric and operational Page times, the island branch switch, and the
Hayden-Preskill catch-up point.`,
	SilenceUsage: true,
}

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadAppConfig resolves the config path (flag, then CONFIG_PATH, then the
// default location) and loads it.
func loadAppConfig(flagPath string) (*config.Config, error) {
	path := flagPath
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	if path == "" {
		path = "configs/hawksim.yaml"
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return cfg, nil
}

// openRecorder opens the SQLite run history, degrading to the no-op
// recorder when no path is given or opening fails.
func openRecorder(dbPath string) recorder.Recorder {
	if dbPath == "" {
		return recorder.NewNoopRecorder()
	}
	sr, err := recorder.NewSQLiteRecorder(dbPath)
	if err != nil {
		log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
		return recorder.NewNoopRecorder()
	}
	return sr
}
