package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"hawksim/internal/daemon"
	"hawksim/internal/run"
)

var daemonConfig string

var daemonCmd = &cobra.Command{
	Use:   "daemon",
	Short: "Run scheduled scenario sweeps until interrupted",
	Long: `Run the simulator as a long-lived process: sweep the scenario directory
on a cron schedule, skip scenarios whose contents already ran cleanly, and
optionally re-sweep when a scenario file changes on disk.

Set RUN_ON_START=true to sweep immediately at startup.`,
	RunE: runDaemon,
}

func init() {
	daemonCmd.Flags().StringVar(&daemonConfig, "config", "", "config file path")
	rootCmd.AddCommand(daemonCmd)
}

func runDaemon(cmd *cobra.Command, args []string) error {
	log.Println("[INFO] hawksim daemon starting...")

	cfg, err := loadAppConfig(daemonConfig)
	if err != nil {
		return err
	}

	rec := openRecorder(cfg.Database.SQLitePath)
	defer rec.Close()

	runner := run.New(rec, cfg.Export.Dir)

	journal, err := daemon.NewJournal(cfg.Journal.StateFile)
	if err != nil {
		return fmt.Errorf("init journal: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	d := daemon.New(ctx, runner, journal, cfg.Sweep.ScenarioDir, cfg.Sweep.Workers)
	if err := d.RegisterSweep(cfg.Sweep.Cron); err != nil {
		return fmt.Errorf("register cron tasks: %w", err)
	}
	d.Start()
	defer d.Stop()

	if cfg.Sweep.Watch {
		if err := d.Watch(); err != nil {
			log.Printf("[WARN] scenario watch disabled: %v", err)
		}
	}

	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, sweeping now")
		go d.RunSweepNow()
	}

	log.Println("[INFO] hawksim daemon is running. Press Ctrl+C to stop.")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	return nil
}
