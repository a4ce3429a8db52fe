// Package run executes scenarios: it dispatches to the right engine, writes
// CSV artifacts, and records completed runs.
package run

import (
	"context"
	"fmt"
	"log"
	"path/filepath"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"hawksim/internal/analytic"
	"hawksim/internal/export"
	"hawksim/internal/recorder"
	"hawksim/internal/scenario"
	"hawksim/internal/trajectory"
)

// Outcome summarizes one executed scenario. Exactly one of Trajectory and
// Thresholds is set on success.
type Outcome struct {
	RunID    string
	Scenario *scenario.Scenario
	Kind     scenario.ModelKind
	Artifact string

	Trajectory *trajectory.Result
	Thresholds *analytic.Thresholds

	Err error // set only on sweep entries that failed
}

// Runner executes scenarios against a recorder and an artifact directory.
type Runner struct {
	Recorder  recorder.Recorder
	ExportDir string // empty disables CSV artifacts
}

// New creates a Runner. A nil recorder degrades to the no-op one.
func New(rec recorder.Recorder, exportDir string) *Runner {
	if rec == nil {
		rec = recorder.NewNoopRecorder()
	}
	return &Runner{Recorder: rec, ExportDir: exportDir}
}

// RunScenario executes a single scenario. Recording failures are logged and
// do not fail the run; the computed product is still returned.
func (r *Runner) RunScenario(sc *scenario.Scenario) (*Outcome, error) {
	switch sc.Model {
	case scenario.ModelSpectral:
		return r.runSpectral(sc)
	case scenario.ModelAnalytic:
		return r.runAnalytic(sc)
	default:
		return nil, fmt.Errorf("scenario %s: unknown model %q", sc.Name, sc.Model)
	}
}

func (r *Runner) runSpectral(sc *scenario.Scenario) (*Outcome, error) {
	p := sc.TrajectoryParams()
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", sc.Name, err)
	}

	res := trajectory.Evolve(p)
	out := &Outcome{
		RunID:      uuid.NewString(),
		Scenario:   sc,
		Kind:       scenario.ModelSpectral,
		Trajectory: res,
	}

	if r.ExportDir != "" {
		out.Artifact = filepath.Join(r.ExportDir, sc.Name+"_trajectory.csv")
		if err := export.WriteTrajectoryFile(out.Artifact, res); err != nil {
			return nil, fmt.Errorf("scenario %s: %w", sc.Name, err)
		}
	}

	rec := TrajectoryRecord(out.RunID, sc.Name, p, res, out.Artifact)
	if err := r.Recorder.RecordTrajectory(rec); err != nil {
		log.Printf("[WARN] recording run %s failed: %v", sc.Name, err)
	}
	return out, nil
}

// TrajectoryRecord assembles the database row set of one spectral run.
func TrajectoryRecord(id, scenarioName string, p trajectory.Params, res *trajectory.Result, artifact string) *recorder.TrajectoryRun {
	rec := &recorder.TrajectoryRun{
		ID:           id,
		Scenario:     scenarioName,
		M0:           p.M0,
		T0:           p.T0,
		MaxSamples:   p.MaxSamples,
		Resolution:   p.Resolution,
		StepFraction: p.StepFraction,
		TEvap:        res.TEvap,
		TauPage:      res.TauPage,
		MPage:        res.MPage,
		PageIndex:    res.PageIndex,
		ArtifactPath: artifact,
	}
	rec.Samples = make([]recorder.TrajectorySample, res.Samples())
	for i := range rec.Samples {
		rec.Samples[i] = recorder.TrajectorySample{
			Tau:         res.Tau[i],
			MOverM0:     res.MOverM0[i],
			TOverT0:     res.TOverT0[i],
			SBits:       res.SBH[i],
			BitsEmitted: res.SRad[i],
		}
	}
	return rec
}

func (r *Runner) runAnalytic(sc *scenario.Scenario) (*Outcome, error) {
	p, err := sc.ThresholdsParams()
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", sc.Name, err)
	}

	th, err := analytic.Compute(p)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", sc.Name, err)
	}
	out := &Outcome{
		RunID:      uuid.NewString(),
		Scenario:   sc,
		Kind:       scenario.ModelAnalytic,
		Thresholds: th,
	}

	if r.ExportDir != "" {
		out.Artifact = filepath.Join(r.ExportDir, sc.Name+"_thresholds.csv")
		if err := export.WriteThresholdsFile(out.Artifact, th); err != nil {
			return nil, fmt.Errorf("scenario %s: %w", sc.Name, err)
		}
	}

	rec := ThresholdsRecord(out.RunID, sc.Name, p, th, out.Artifact)
	if err := r.Recorder.RecordThresholds(rec); err != nil {
		log.Printf("[WARN] recording scan %s failed: %v", sc.Name, err)
	}
	return out, nil
}

// ThresholdsRecord assembles the database row of one analytic scan.
func ThresholdsRecord(id, scenarioName string, p analytic.ThresholdsParams, th *analytic.Thresholds, artifact string) *recorder.ThresholdsRun {
	return &recorder.ThresholdsRun{
		ID:               id,
		Scenario:         scenarioName,
		M0:               p.Evap.M0,
		KHawk:            p.Evap.KHawk,
		ModelLabel:       p.Evap.Model,
		AlphaScr:         p.Chaos.AlphaScr,
		Kappa:            p.Entropy.Kappa,
		Steps:            p.Steps,
		Lifetime:         th.Lifetime,
		TPageGeometric:   th.TPageGeometric,
		MPageGeometric:   th.MPageGeometric,
		TPageOperational: th.TPageOperational,
		MPageOperational: th.MPageOperational,
		TPageEntropy:     th.TPageEntropy,
		TBranchSwitch:    th.TBranchSwitch,
		THaydenPreskill:  th.THaydenPreskill,
		ArtifactPath:     artifact,
	}
}

// Sweep runs the scenarios with at most workers in flight. Failures are
// isolated: a failed scenario yields an Outcome with Err set while the rest
// proceed. Cancelling ctx stops scenarios that have not started.
func (r *Runner) Sweep(ctx context.Context, scs []*scenario.Scenario, workers int) []*Outcome {
	if workers < 1 {
		workers = 1
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	outcomes := make([]*Outcome, len(scs))
	for i, sc := range scs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				outcomes[i] = &Outcome{Scenario: sc, Kind: sc.Model, Err: err}
				return nil
			}
			out, err := r.RunScenario(sc)
			if err != nil {
				log.Printf("[ERROR] scenario %s: %v", sc.Name, err)
				out = &Outcome{Scenario: sc, Kind: sc.Model, Err: err}
			}
			outcomes[i] = out
			return nil
		})
	}
	g.Wait()
	return outcomes
}
