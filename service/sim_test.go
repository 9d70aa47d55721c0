package service

import (
	"io"
	"testing"

	"github.com/beka-birhanu/gridwalk/engine"
	"github.com/beka-birhanu/gridwalk/maze"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSim(t *testing.T) *Sim {
	t.Helper()
	sim, err := NewSim(64, log.New(io.Discard))
	require.NoError(t, err)
	return sim
}

func TestSim(t *testing.T) {
	t.Run("rejects non-positive max dimension", func(t *testing.T) {
		_, err := NewSim(0, log.New(io.Discard))
		assert.ErrorIs(t, err, maze.ErrInvalidDimensions)
	})

	t.Run("step before init reports not initialized", func(t *testing.T) {
		sim := newTestSim(t)
		_, err := sim.Step()
		assert.ErrorIs(t, err, engine.ErrNotInitialized)
		_, err = sim.Snapshot()
		assert.ErrorIs(t, err, engine.ErrNotInitialized)
		_, err = sim.CellState(0, 0)
		assert.ErrorIs(t, err, engine.ErrNotInitialized)
		assert.False(t, sim.Finished())
	})

	t.Run("init validates dimensions", func(t *testing.T) {
		sim := newTestSim(t)
		assert.ErrorIs(t, sim.Init(1, 0, 3), maze.ErrInvalidDimensions)
		assert.ErrorIs(t, sim.Init(1, 3, 0), maze.ErrInvalidDimensions)
		assert.ErrorIs(t, sim.Init(1, 65, 3), maze.ErrInvalidDimensions)
		assert.ErrorIs(t, sim.Init(1, 3, 65), maze.ErrInvalidDimensions)
	})

	t.Run("init assigns a fresh run id", func(t *testing.T) {
		sim := newTestSim(t)
		require.NoError(t, sim.Init(1, 3, 3))
		first, err := sim.Snapshot()
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, first.RunID)

		require.NoError(t, sim.Init(2, 3, 3))
		second, err := sim.Snapshot()
		require.NoError(t, err)
		assert.NotEqual(t, first.RunID, second.RunID)
		assert.Equal(t, uint64(2), second.Seed)
	})

	t.Run("snapshot tracks the run", func(t *testing.T) {
		sim := newTestSim(t)
		require.NoError(t, sim.Init(1, 3, 3))

		snap, err := sim.Snapshot()
		require.NoError(t, err)
		assert.Equal(t, "Idle", snap.State)
		assert.Equal(t, 3, snap.Width)
		assert.Equal(t, 3, snap.Height)
		assert.Equal(t, 0, snap.Steps)
		assert.Len(t, snap.Cells, 3)
		assert.Len(t, snap.Cells[0], 3)

		for !sim.Finished() {
			_, err := sim.Step()
			require.NoError(t, err)
		}

		snap, err = sim.Snapshot()
		require.NoError(t, err)
		assert.Equal(t, "Finished", snap.State)
		assert.True(t, snap.Finished)
		assert.Equal(t, 9, snap.Visited)
		assert.Equal(t, 8, snap.Passages)
		assert.Equal(t, 18, snap.Steps)
	})

	t.Run("cell state bounds", func(t *testing.T) {
		sim := newTestSim(t)
		require.NoError(t, sim.Init(1, 3, 3))

		_, err := sim.CellState(3, 0)
		assert.ErrorIs(t, err, maze.ErrOutOfBounds)
		_, err = sim.CellState(0, -1)
		assert.ErrorIs(t, err, maze.ErrOutOfBounds)

		view, err := sim.CellState(1, 1)
		require.NoError(t, err)
		assert.False(t, view.Visited)
	})

	t.Run("reset returns to uninitialized", func(t *testing.T) {
		sim := newTestSim(t)
		require.NoError(t, sim.Init(1, 3, 3))
		_, err := sim.Step()
		require.NoError(t, err)

		sim.Reset()
		_, err = sim.Step()
		assert.ErrorIs(t, err, engine.ErrNotInitialized)

		require.NoError(t, sim.Init(5, 4, 4))
		res, err := sim.Step()
		require.NoError(t, err)
		assert.Equal(t, engine.StateRunning, res.State)
		assert.Equal(t, "Running", res.Status)
		assert.Equal(t, 1, res.Steps)
	})
}
