package recorder

// TrajectorySample is one recorded state of a spectral run, in the same
// normalized units as the CSV export.
type TrajectorySample struct {
	Tau         float64
	MOverM0     float64
	TOverT0     float64
	SBits       float64
	BitsEmitted float64
}

// TrajectoryRun holds all data recorded for one spectral evaporation run.
type TrajectoryRun struct {
	ID       string
	Scenario string

	M0           float64
	T0           float64
	MaxSamples   int
	Resolution   int
	StepFraction float64

	TEvap     float64
	TauPage   float64
	MPage     float64
	PageIndex int

	Samples      []TrajectorySample
	ArtifactPath string
}

// ThresholdsRun holds the products of one analytic threshold scan. The
// transition times keep their NaN-when-unreached semantics.
type ThresholdsRun struct {
	ID       string
	Scenario string

	M0         float64
	KHawk      float64
	ModelLabel string
	AlphaScr   float64
	Kappa      float64
	Steps      int

	Lifetime         float64
	TPageGeometric   float64
	MPageGeometric   float64
	TPageOperational float64
	MPageOperational float64
	TPageEntropy     float64
	TBranchSwitch    float64
	THaydenPreskill  float64

	ArtifactPath string
}

// Recorder persists completed runs for analysis.
type Recorder interface {
	RecordTrajectory(run *TrajectoryRun) error
	RecordThresholds(run *ThresholdsRun) error
	Close() error
}
