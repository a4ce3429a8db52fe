package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"math"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists runs to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so analysis tooling can read while the daemon writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS trajectory_runs (
			id            TEXT PRIMARY KEY,
			timestamp     INTEGER NOT NULL,
			scenario      TEXT,
			m0            REAL,
			t0            REAL,
			max_samples   INTEGER,
			resolution    INTEGER,
			step_fraction REAL,
			t_evap        REAL,
			tau_page      REAL,
			m_page        REAL,
			page_index    INTEGER,
			samples       INTEGER,
			artifact      TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_trajectory_ts ON trajectory_runs(timestamp)`,

		`CREATE TABLE IF NOT EXISTS trajectory_samples (
			run_id       TEXT NOT NULL,
			idx          INTEGER NOT NULL,
			tau          REAL,
			m_over_m0    REAL,
			t_over_t0    REAL,
			s_bits       REAL,
			bits_emitted REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_samples_run ON trajectory_samples(run_id)`,

		`CREATE TABLE IF NOT EXISTS threshold_runs (
			id                 TEXT PRIMARY KEY,
			timestamp          INTEGER NOT NULL,
			scenario           TEXT,
			m0                 REAL,
			k_hawk             REAL,
			model              TEXT,
			alpha_scr          REAL,
			kappa              REAL,
			steps              INTEGER,
			lifetime           REAL,
			t_page_geometric   REAL,
			m_page_geometric   REAL,
			t_page_operational REAL,
			m_page_operational REAL,
			t_page_entropy     REAL,
			t_branch_switch    REAL,
			t_hayden_preskill  REAL,
			artifact           TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_threshold_ts ON threshold_runs(timestamp)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordTrajectory(run *TrajectoryRun) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`INSERT INTO trajectory_runs
		(id, timestamp, scenario, m0, t0, max_samples, resolution, step_fraction,
		 t_evap, tau_page, m_page, page_index, samples, artifact)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		run.ID, time.Now().Unix(), run.Scenario,
		run.M0, run.T0, run.MaxSamples, run.Resolution, run.StepFraction,
		run.TEvap, run.TauPage, run.MPage, run.PageIndex,
		len(run.Samples), run.ArtifactPath,
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO trajectory_samples
		(run_id, idx, tau, m_over_m0, t_over_t0, s_bits, bits_emitted)
		VALUES (?,?,?,?,?,?,?)`)
	if err != nil {
		return fmt.Errorf("prepare samples: %w", err)
	}
	defer stmt.Close()
	for i, s := range run.Samples {
		if _, err := stmt.Exec(run.ID, i, s.Tau, s.MOverM0, s.TOverT0, s.SBits, s.BitsEmitted); err != nil {
			return fmt.Errorf("insert sample %d: %w", i, err)
		}
	}

	return tx.Commit()
}

func (r *SQLiteRecorder) RecordThresholds(run *ThresholdsRun) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO threshold_runs
		(id, timestamp, scenario, m0, k_hawk, model, alpha_scr, kappa, steps,
		 lifetime, t_page_geometric, m_page_geometric,
		 t_page_operational, m_page_operational,
		 t_page_entropy, t_branch_switch, t_hayden_preskill, artifact)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		run.ID, time.Now().Unix(), run.Scenario,
		run.M0, run.KHawk, run.ModelLabel, run.AlphaScr, run.Kappa, run.Steps,
		run.Lifetime, run.TPageGeometric, run.MPageGeometric,
		nullable(run.TPageOperational), nullable(run.MPageOperational),
		run.TPageEntropy, nullable(run.TBranchSwitch), nullable(run.THaydenPreskill),
		run.ArtifactPath,
	)
	if err != nil {
		return fmt.Errorf("insert threshold run: %w", err)
	}
	return nil
}

// nullable maps unreached transition times to NULL; SQLite has no NaN.
func nullable(v float64) any {
	if math.IsNaN(v) {
		return nil
	}
	return v
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
