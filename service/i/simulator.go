package i

import (
	"github.com/beka-birhanu/gridwalk/engine"
	"github.com/beka-birhanu/gridwalk/maze"
	"github.com/google/uuid"
)

// Snapshot is the full observable state of the simulation, enough for a
// renderer to paint a frame without further queries.
type Snapshot struct {
	RunID    uuid.UUID           `json:"run_id"`
	Seed     uint64              `json:"seed"`
	State    string              `json:"state"`
	Width    int                 `json:"width"`
	Height   int                 `json:"height"`
	Steps    int                 `json:"steps"`
	Visited  int                 `json:"visited"`
	Passages int                 `json:"passages"`
	Finished bool                `json:"finished"`
	Current  maze.CellPosition   `json:"current"`
	Cells    [][]engine.CellView `json:"cells"`
}

// StepResult reports the outcome of one unit of simulation work.
type StepResult struct {
	State    engine.State      `json:"-"`
	Status   string            `json:"status"`
	Position maze.CellPosition `json:"position"`
	Steps    int               `json:"steps"`
	Finished bool              `json:"finished"`
}

// Simulator is the boundary through which a host controls and observes the
// single process-wide simulation. Implementations serialize calls; the host
// must not assume reentrancy.
type Simulator interface {
	// Init starts a fresh run, discarding any prior one.
	Init(seed uint64, width, height int) error

	// Step advances the run by one unit of work.
	Step() (StepResult, error)

	// CellState returns a read-only view of one cell.
	CellState(row, col int) (engine.CellView, error)

	// Snapshot returns the full observable state of the current run.
	Snapshot() (Snapshot, error)

	// Finished reports whether the run has reached its terminal state.
	Finished() bool

	// Reset discards the run entirely.
	Reset()
}
