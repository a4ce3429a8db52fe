package recorder

// NoopRecorder is a no-op implementation used when SQLite is not configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordTrajectory(_ *TrajectoryRun) error { return nil }
func (n *NoopRecorder) RecordThresholds(_ *ThresholdsRun) error { return nil }
func (n *NoopRecorder) Close() error                            { return nil }
