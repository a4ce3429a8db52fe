package daemon

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Entry records the last sweep result for one scenario file.
type Entry struct {
	Hash      string    `json:"hash"`
	LastRunID string    `json:"last_run_id"`
	LastRunAt time.Time `json:"last_run_at"`
	Runs      int       `json:"runs"`
	LastError string    `json:"last_error,omitempty"`
}

// State is the on-disk journal layout.
type State struct {
	Scenarios map[string]Entry `json:"scenarios"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// LoadState reads the journal from a JSON file. Returns a zero state if the
// file doesn't exist.
func LoadState(filePath string) (*State, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return &State{Scenarios: map[string]Entry{}}, nil
		}
		return nil, err
	}
	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, err
	}
	if state.Scenarios == nil {
		state.Scenarios = map[string]Entry{}
	}
	return &state, nil
}

// SaveState writes the journal to a JSON file, creating parent directories
// as needed.
func SaveState(filePath string, state *State) error {
	state.UpdatedAt = time.Now()
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(filePath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(filePath, data, 0644)
}

// Journal tracks which scenario contents have already been swept, with
// concurrency safety.
type Journal struct {
	mu       sync.Mutex
	state    *State
	filePath string
}

// NewJournal creates a Journal, loading or initializing state from disk.
func NewJournal(filePath string) (*Journal, error) {
	state, err := LoadState(filePath)
	if err != nil {
		return nil, err
	}
	j := &Journal{state: state, filePath: filePath}
	if err := j.save(); err != nil {
		return nil, err
	}
	return j, nil
}

// ShouldRun reports whether the scenario at path needs a run: its content
// hash is new, changed, or its last run failed.
func (j *Journal) ShouldRun(path, hash string) bool {
	j.mu.Lock()
	defer j.mu.Unlock()

	entry, ok := j.state.Scenarios[path]
	if !ok {
		return true
	}
	return entry.Hash != hash || entry.LastError != ""
}

// MarkRun records the outcome of a run for the scenario at path.
func (j *Journal) MarkRun(path, hash, runID string, runErr error) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	entry := j.state.Scenarios[path]
	entry.Hash = hash
	entry.LastRunID = runID
	entry.LastRunAt = time.Now()
	entry.Runs++
	entry.LastError = ""
	if runErr != nil {
		entry.LastError = runErr.Error()
	}
	j.state.Scenarios[path] = entry

	return j.save()
}

// Invalidate clears the stored hash for path so the next sweep reruns the
// scenario, keeping its run history.
func (j *Journal) Invalidate(path string) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	entry, ok := j.state.Scenarios[path]
	if !ok {
		return nil
	}
	entry.Hash = ""
	j.state.Scenarios[path] = entry
	return j.save()
}

// Forget drops the entry for path entirely, for scenarios removed from disk.
func (j *Journal) Forget(path string) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	delete(j.state.Scenarios, path)
	return j.save()
}

// Lookup returns the recorded entry for path.
func (j *Journal) Lookup(path string) (Entry, bool) {
	j.mu.Lock()
	defer j.mu.Unlock()

	entry, ok := j.state.Scenarios[path]
	return entry, ok
}

func (j *Journal) save() error {
	return SaveState(j.filePath, j.state)
}

// FileHash returns the hex SHA-256 of a file's contents.
func FileHash(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
