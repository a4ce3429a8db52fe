package daemon

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/robfig/cron/v3"

	"hawksim/internal/report"
	"hawksim/internal/run"
	"hawksim/internal/scenario"
)

// watchDebounce suppresses duplicate sweeps when editors fire several
// write events for one save.
const watchDebounce = 2 * time.Second

// Daemon runs scheduled scenario sweeps and reacts to scenario edits.
type Daemon struct {
	cron        *cron.Cron
	runner      *run.Runner
	journal     *Journal
	ctx         context.Context
	scenarioDir string
	workers     int
	watcher     *fsnotify.Watcher
}

// New creates a Daemon with a second-resolution cron schedule.
func New(ctx context.Context, runner *run.Runner, journal *Journal, scenarioDir string, workers int) *Daemon {
	return &Daemon{
		cron:        cron.New(cron.WithSeconds()),
		runner:      runner,
		journal:     journal,
		ctx:         ctx,
		scenarioDir: scenarioDir,
		workers:     workers,
	}
}

// RegisterSweep schedules the scenario sweep with a cron expression.
func (d *Daemon) RegisterSweep(cronSpec string) error {
	_, err := d.cron.AddFunc(cronSpec, d.sweepTask)
	if err != nil {
		return fmt.Errorf("register sweep task: %w", err)
	}
	log.Printf("[INFO] sweep scheduled: %s", cronSpec)
	return nil
}

// Start begins the cron scheduler.
func (d *Daemon) Start() {
	d.cron.Start()
	log.Println("[INFO] daemon started")
}

// Stop halts the scheduler and the scenario watcher.
func (d *Daemon) Stop() {
	d.cron.Stop()
	if d.watcher != nil {
		d.watcher.Close()
	}
	log.Println("[INFO] daemon stopped")
}

// RunSweepNow triggers the sweep task immediately.
func (d *Daemon) RunSweepNow() {
	d.sweepTask()
}

// resweepFile clears the journal hash for path and sweeps, so an edit reruns
// the scenario even when its contents hash the same as the last run.
func (d *Daemon) resweepFile(path string) {
	if err := d.journal.Invalidate(path); err != nil {
		log.Printf("[WARN] journal reset for %s failed: %v", path, err)
	}
	d.sweepTask()
}

// sweepTask scans the scenario directory, skips files whose contents already
// ran cleanly, and sweeps the rest. Files that fail to load are journaled so
// they retry until fixed.
func (d *Daemon) sweepTask() {
	log.Println("[INFO] running scenario sweep...")

	paths, err := scenario.ListDir(d.scenarioDir)
	if err != nil {
		log.Printf("[ERROR] scan %s: %v", d.scenarioDir, err)
		return
	}
	if len(paths) == 0 {
		log.Printf("[WARN] no scenarios found in %s", d.scenarioDir)
		return
	}

	var pending []*scenario.Scenario
	var hashes []string
	for _, path := range paths {
		hash, err := FileHash(path)
		if err != nil {
			log.Printf("[WARN] hash %s: %v", path, err)
			continue
		}
		if !d.journal.ShouldRun(path, hash) {
			log.Printf("[INFO] scenario %s unchanged, skipping", filepath.Base(path))
			continue
		}
		sc, err := scenario.Load(path)
		if err != nil {
			log.Printf("[WARN] load scenario failed: %v", err)
			if jerr := d.journal.MarkRun(path, hash, "", err); jerr != nil {
				log.Printf("[WARN] journal update for %s failed: %v", path, jerr)
			}
			continue
		}
		pending = append(pending, sc)
		hashes = append(hashes, hash)
	}
	if len(pending) == 0 {
		log.Println("[INFO] all scenarios up to date")
		return
	}

	outcomes := d.runner.Sweep(d.ctx, pending, d.workers)
	for i, out := range outcomes {
		if err := d.journal.MarkRun(pending[i].SourcePath, hashes[i], out.RunID, out.Err); err != nil {
			log.Printf("[WARN] journal update for %s failed: %v", pending[i].Name, err)
		}
	}

	log.Println(report.FormatSweep(outcomes))
}

// Watch starts watching the scenario directory and sweeps on edits.
func (d *Daemon) Watch() error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create scenario watcher: %w", err)
	}
	if err := watcher.Add(d.scenarioDir); err != nil {
		watcher.Close()
		return fmt.Errorf("watch %s: %w", d.scenarioDir, err)
	}
	d.watcher = watcher

	go d.watchLoop()
	log.Printf("[INFO] watching %s for scenario changes", d.scenarioDir)
	return nil
}

func (d *Daemon) watchLoop() {
	lastSweep := make(map[string]time.Time)
	for {
		select {
		case <-d.ctx.Done():
			log.Println("[INFO] scenario watcher stopped")
			return
		case event, ok := <-d.watcher.Events:
			if !ok {
				return
			}
			ext := strings.ToLower(filepath.Ext(event.Name))
			if ext != ".yaml" && ext != ".yml" && ext != ".json" {
				continue
			}
			if event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				log.Printf("[INFO] scenario %s removed, dropping journal entry", filepath.Base(event.Name))
				if err := d.journal.Forget(event.Name); err != nil {
					log.Printf("[WARN] journal drop for %s failed: %v", event.Name, err)
				}
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if last, ok := lastSweep[event.Name]; ok && time.Since(last) < watchDebounce {
				continue
			}
			lastSweep[event.Name] = time.Now()
			log.Printf("[INFO] scenario %s changed, sweeping", filepath.Base(event.Name))
			d.resweepFile(event.Name)
		case err, ok := <-d.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("[WARN] scenario watcher error: %v", err)
		}
	}
}
