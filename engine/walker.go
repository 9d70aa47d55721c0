package engine

import "github.com/beka-birhanu/gridwalk/maze"

// Walker tracks the walk's current position and the chain of cells it must
// return through when it dead-ends. The stack is the explicit form of the
// recursion a depth-first carve would otherwise need.
type Walker struct {
	pos   maze.CellPosition
	stack []maze.CellPosition
}

// NewWalker creates an empty walker.
func NewWalker() *Walker {
	return &Walker{}
}

// Pos returns the walker's current position.
func (w *Walker) Pos() maze.CellPosition {
	return w.pos
}

// MoveTo advances the walker to a newly discovered cell, remembering it on
// the backtrack stack.
func (w *Walker) MoveTo(pos maze.CellPosition) {
	w.pos = pos
	w.stack = append(w.stack, pos)
}

// Backtrack pops the current cell off the stack and returns the walker to
// the previous one. It reports false once the stack is exhausted, meaning
// there is nothing left to return through.
func (w *Walker) Backtrack() bool {
	if len(w.stack) == 0 {
		return false
	}
	w.stack = w.stack[:len(w.stack)-1]
	if len(w.stack) == 0 {
		return false
	}
	w.pos = w.stack[len(w.stack)-1]
	return true
}

// Depth returns the number of cells on the backtrack stack.
func (w *Walker) Depth() int {
	return len(w.stack)
}
