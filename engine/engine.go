/*
Package engine implements an incremental depth-first carving walk over a
rectangular grid.

The engine advances exactly one unit of work per Step call: it either carves
into one new cell or backtracks one cell toward an earlier branch point. The
host drives pacing by calling Step at whatever cadence it wants, typically
once per rendered frame. Because every random draw comes from a seeded
deterministic source, a run is fully replayable from its seed.

An Engine is single-owner state. It performs no locking; callers that share
one across goroutines must serialize access themselves.
*/
package engine

import (
	"errors"

	"github.com/beka-birhanu/gridwalk/maze"
	"github.com/beka-birhanu/gridwalk/rng"
)

// ErrNotInitialized is returned when the engine is used before Init.
var ErrNotInitialized = errors.New("engine not initialized")

// State identifies the engine's position in its lifecycle.
type State uint8

const (
	// StateUninitialized is the state before Init and after Reset.
	StateUninitialized State = iota
	// StateIdle means the engine is initialized but has not stepped yet.
	StateIdle
	// StateRunning means the walk is in progress.
	StateRunning
	// StateFinished is terminal; every reachable cell has been carved.
	StateFinished
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "Uninitialized"
	case StateIdle:
		return "Idle"
	case StateRunning:
		return "Running"
	case StateFinished:
		return "Finished"
	default:
		return "Unknown"
	}
}

// CellWalls reports which walls of a cell are still standing.
type CellWalls struct {
	North bool `json:"north"`
	East  bool `json:"east"`
	South bool `json:"south"`
	West  bool `json:"west"`
}

// CellView is a read-only projection of one cell, safe to hand to a host.
type CellView struct {
	Open    bool      `json:"open"`
	Visited bool      `json:"visited"`
	Current bool      `json:"current"`
	Walls   CellWalls `json:"walls"`
}

// Engine owns the grid, the walker and the random source of one simulation.
type Engine struct {
	state  State
	grid   *maze.Grid
	walker *Walker
	rand   *rng.Source
	steps  int
}

// New creates an uninitialized engine.
func New() *Engine {
	return &Engine{state: StateUninitialized}
}

// Init allocates a fresh grid, walker and random source for the given seed
// and dimensions, discarding any prior run. The engine comes out Idle.
func (e *Engine) Init(seed uint64, width, height int) error {
	grid, err := maze.New(width, height)
	if err != nil {
		return err
	}

	e.grid = grid
	e.walker = NewWalker()
	e.rand = rng.New(seed)
	e.steps = 0
	e.state = StateIdle
	return nil
}

// Reset discards all state and returns the engine to Uninitialized.
func (e *Engine) Reset() {
	e.grid = nil
	e.walker = nil
	e.rand = nil
	e.steps = 0
	e.state = StateUninitialized
}

// Step advances the simulation by one unit of work and returns the resulting
// state. On the first call it carves the start cell; afterwards each call
// either discovers one neighbor or backtracks one cell. Once the backtrack
// stack empties the engine is Finished and further calls change nothing.
func (e *Engine) Step() (State, error) {
	switch e.state {
	case StateUninitialized:
		return StateUninitialized, ErrNotInitialized
	case StateFinished:
		return StateFinished, nil
	case StateIdle:
		e.start()
		return e.state, nil
	default:
		e.advance()
		return e.state, nil
	}
}

// start carves the randomly chosen start cell and begins the walk.
func (e *Engine) start() {
	pos := maze.CellPosition{
		Row: e.rand.Intn(e.grid.Height),
		Col: e.rand.Intn(e.grid.Width),
	}
	e.carve(pos)
	e.state = StateRunning
	e.steps++
}

// advance performs one Running step: discover one unvisited neighbor, or
// backtrack one cell when the current position is a dead end.
func (e *Engine) advance() {
	e.steps++

	candidates := e.grid.UnvisitedNeighbors(e.walker.Pos())
	if len(candidates) == 0 {
		if !e.walker.Backtrack() {
			e.state = StateFinished
		}
		return
	}

	move := candidates[e.rand.Intn(len(candidates))]
	_ = e.grid.OpenWall(move.From, move.Direction)
	e.carve(move.To)
}

// carve marks a cell visited and open and moves the walker onto it. The
// position is always in bounds here, so the grid errors cannot fire.
func (e *Engine) carve(pos maze.CellPosition) {
	_ = e.grid.MarkVisited(pos)
	_ = e.grid.SetOpen(pos)
	e.walker.MoveTo(pos)
}

// State returns the engine's lifecycle state.
func (e *Engine) State() State {
	return e.state
}

// Finished reports whether the walk has reached its terminal state.
func (e *Engine) Finished() bool {
	return e.state == StateFinished
}

// Steps returns the number of units of work performed in the current run.
func (e *Engine) Steps() int {
	return e.steps
}

// Pos returns the walker's current position. Only meaningful once Running.
func (e *Engine) Pos() maze.CellPosition {
	if e.walker == nil {
		return maze.CellPosition{}
	}
	return e.walker.Pos()
}

// Grid exposes the underlying grid for read-only inspection.
func (e *Engine) Grid() *maze.Grid {
	return e.grid
}

// CellState returns a read-only view of one cell.
func (e *Engine) CellState(pos maze.CellPosition) (CellView, error) {
	if e.state == StateUninitialized {
		return CellView{}, ErrNotInitialized
	}

	cell, err := e.grid.Cell(pos)
	if err != nil {
		return CellView{}, err
	}

	return CellView{
		Open:    cell.Open,
		Visited: cell.Visited,
		Current: e.state != StateIdle && pos == e.walker.Pos(),
		Walls: CellWalls{
			North: cell.NorthWall,
			East:  cell.EastWall,
			South: cell.SouthWall,
			West:  cell.WestWall,
		},
	}, nil
}
