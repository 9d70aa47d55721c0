// Package service hosts the boundary layer between the walk engine and its
// hosts. The engine itself is single-owner and lock-free; this layer is
// where the single-call-at-a-time discipline is enforced, since HTTP and
// websocket hosts are inherently concurrent.
package service

import (
	"fmt"
	"sync"

	"github.com/beka-birhanu/gridwalk/engine"
	"github.com/beka-birhanu/gridwalk/maze"
	"github.com/beka-birhanu/gridwalk/service/i"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// Sim wraps the one process-wide engine instance behind the Simulator
// interface, adding input validation, run identity and serialized access.
type Sim struct {
	mu           sync.Mutex
	engine       *engine.Engine
	runID        uuid.UUID
	seed         uint64
	maxDimension int
	logger       *log.Logger
}

// NewSim creates the simulation service. maxDimension caps grid width and
// height to keep a remote host from requesting absurd allocations.
func NewSim(maxDimension int, logger *log.Logger) (*Sim, error) {
	if maxDimension < 1 {
		return nil, fmt.Errorf("%w: max dimension %d", maze.ErrInvalidDimensions, maxDimension)
	}

	return &Sim{
		engine:       engine.New(),
		maxDimension: maxDimension,
		logger:       logger,
	}, nil
}

// Init starts a fresh run with the given seed and dimensions.
func (s *Sim) Init(seed uint64, width, height int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if width > s.maxDimension || height > s.maxDimension {
		return fmt.Errorf("%w: %dx%d exceeds maximum dimension %d",
			maze.ErrInvalidDimensions, width, height, s.maxDimension)
	}

	if err := s.engine.Init(seed, width, height); err != nil {
		return err
	}

	s.runID = uuid.New()
	s.seed = seed
	s.logger.Info("run initialized", "run", s.runID, "seed", seed, "width", width, "height", height)
	return nil
}

// Step advances the run by one unit of work.
func (s *Sim) Step() (i.StepResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	wasFinished := s.engine.Finished()
	state, err := s.engine.Step()
	if err != nil {
		return i.StepResult{State: state, Status: "NotInitialized"}, err
	}

	if state == engine.StateFinished && !wasFinished {
		s.logger.Info("run finished", "run", s.runID, "steps", s.engine.Steps())
	}

	return i.StepResult{
		State:    state,
		Status:   state.String(),
		Position: s.engine.Pos(),
		Steps:    s.engine.Steps(),
		Finished: state == engine.StateFinished,
	}, nil
}

// CellState returns a read-only view of one cell.
func (s *Sim) CellState(row, col int) (engine.CellView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.engine.CellState(maze.CellPosition{Row: row, Col: col})
}

// Snapshot returns the full observable state of the current run.
func (s *Sim) Snapshot() (i.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.engine.State() == engine.StateUninitialized {
		return i.Snapshot{}, engine.ErrNotInitialized
	}

	grid := s.engine.Grid()
	cells := make([][]engine.CellView, grid.Height)
	for row := range cells {
		cells[row] = make([]engine.CellView, grid.Width)
		for col := range cells[row] {
			view, err := s.engine.CellState(maze.CellPosition{Row: row, Col: col})
			if err != nil {
				return i.Snapshot{}, err
			}
			cells[row][col] = view
		}
	}

	return i.Snapshot{
		RunID:    s.runID,
		Seed:     s.seed,
		State:    s.engine.State().String(),
		Width:    grid.Width,
		Height:   grid.Height,
		Steps:    s.engine.Steps(),
		Visited:  grid.VisitedCount(),
		Passages: grid.PassageCount(),
		Finished: s.engine.Finished(),
		Current:  s.engine.Pos(),
		Cells:    cells,
	}, nil
}

// Finished reports whether the run has reached its terminal state.
func (s *Sim) Finished() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.engine.Finished()
}

// Reset discards the run entirely.
func (s *Sim) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.engine.Reset()
	s.logger.Info("run reset", "run", s.runID)
	s.runID = uuid.Nil
	s.seed = 0
}
