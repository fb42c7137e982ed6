package model

import (
	"time"

	"github.com/google/uuid"
)

// RunTimestampLayout is the wall-clock layout shared by every artifact name of a run.
// One-second resolution: runs started in different seconds never collide.
const RunTimestampLayout = "20060102-150405"

// RunTimestamp identifies all artifacts produced by one invocation
type RunTimestamp string

// NewRunTimestamp derives the run timestamp from t in t's location
func NewRunTimestamp(t time.Time) RunTimestamp {
	return RunTimestamp(t.Format(RunTimestampLayout))
}

// String returns the timestamp text
func (ts RunTimestamp) String() string {
	return string(ts)
}

// Mode is the export strategy chosen by the operator before a run starts
type Mode string

const (
	// ModeLive exports collections through the query shell or driver
	ModeLive Mode = "live"
	// ModeFallback copies pre-existing export artifacts
	ModeFallback Mode = "fallback"
)

// Run carries the identity of one invocation
type Run struct {
	ID        string       `json:"id"`
	Timestamp RunTimestamp `json:"timestamp"`
	Mode      Mode         `json:"mode"`
	StartedAt time.Time    `json:"started_at"`
}

// NewRun creates the run identity for a start time
func NewRun(mode Mode, startedAt time.Time) *Run {
	return &Run{
		ID:        uuid.NewString(),
		Timestamp: NewRunTimestamp(startedAt),
		Mode:      mode,
		StartedAt: startedAt,
	}
}
