/*
Package maze provides the grid model for a rectangular walk simulation.

It defines the `Grid` structure, composed of `Cell` objects that track wall
configurations and carve state. The package owns all bounds checking and the
fixed neighbor scan order; it carries no traversal logic of its own.
*/
package maze

import (
	"errors"
	"strings"
)

var (
	// ErrInvalidDimensions is returned when a grid dimension is below one.
	ErrInvalidDimensions = errors.New("invalid grid dimensions")
	// ErrOutOfBounds is returned when a coordinate falls outside the grid.
	ErrOutOfBounds = errors.New("coordinate out of bounds")
)

// CellPosition addresses a cell by row and column, row-major from the
// top-left corner.
type CellPosition struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Move describes a step from one cell to an orthogonally adjacent one.
type Move struct {
	From      CellPosition
	To        CellPosition
	Direction Direction
}

// Grid is a rectangular collection of cells with fixed dimensions.
type Grid struct {
	Width  int       // Width of the grid (number of columns)
	Height int       // Height of the grid (number of rows)
	Cells  [][]*Cell // 2D cell matrix indexed [row][col]
}

// New allocates a width x height grid with every cell fully walled, closed
// and unvisited.
func New(width, height int) (*Grid, error) {
	if width < 1 || height < 1 {
		return nil, ErrInvalidDimensions
	}

	cells := make([][]*Cell, height)
	for i := range cells {
		cells[i] = make([]*Cell, width)
		for j := range cells[i] {
			cells[i][j] = &Cell{
				NorthWall: true,
				SouthWall: true,
				EastWall:  true,
				WestWall:  true,
			}
		}
	}

	return &Grid{
		Width:  width,
		Height: height,
		Cells:  cells,
	}, nil
}

// InBound reports whether the position addresses a cell of the grid.
func (g *Grid) InBound(pos CellPosition) bool {
	return pos.Row >= 0 && pos.Row < g.Height && pos.Col >= 0 && pos.Col < g.Width
}

// Cell returns the cell at the given position.
func (g *Grid) Cell(pos CellPosition) (*Cell, error) {
	if !g.InBound(pos) {
		return nil, ErrOutOfBounds
	}
	return g.Cells[pos.Row][pos.Col], nil
}

// MarkVisited flags the cell at the given position as visited.
func (g *Grid) MarkVisited(pos CellPosition) error {
	cell, err := g.Cell(pos)
	if err != nil {
		return err
	}
	cell.Visited = true
	return nil
}

// SetOpen carves the cell at the given position into the walkable structure.
func (g *Grid) SetOpen(pos CellPosition) error {
	cell, err := g.Cell(pos)
	if err != nil {
		return err
	}
	cell.Open = true
	return nil
}

// OpenWall removes the wall between the cell at pos and its neighbor in the
// given direction, on both sides of the shared edge.
func (g *Grid) OpenWall(pos CellPosition, d Direction) error {
	cell, err := g.Cell(pos)
	if err != nil {
		return err
	}

	dRow, dCol := d.Delta()
	neighbor, err := g.Cell(CellPosition{Row: pos.Row + dRow, Col: pos.Col + dCol})
	if err != nil {
		return err
	}

	cell.dropWall(d)
	neighbor.dropWall(d.Opposite())
	return nil
}

// Neighbors finds all in-bounds moves from a given cell position, always in
// North, East, South, West order.
func (g *Grid) Neighbors(pos CellPosition) []Move {
	var result []Move
	for _, dir := range Directions {
		dRow, dCol := dir.Delta()
		neighbor := CellPosition{Row: pos.Row + dRow, Col: pos.Col + dCol}
		if g.InBound(neighbor) {
			result = append(result, Move{From: pos, To: neighbor, Direction: dir})
		}
	}
	return result
}

// UnvisitedNeighbors filters Neighbors down to cells the walk has not
// entered yet, preserving scan order. The slice is rebuilt on every call.
func (g *Grid) UnvisitedNeighbors(pos CellPosition) []Move {
	var result []Move
	for _, move := range g.Neighbors(pos) {
		if !g.Cells[move.To.Row][move.To.Col].Visited {
			result = append(result, move)
		}
	}
	return result
}

// VisitedCount returns the number of visited cells.
func (g *Grid) VisitedCount() int {
	count := 0
	for _, row := range g.Cells {
		for _, cell := range row {
			if cell.Visited {
				count++
			}
		}
	}
	return count
}

// PassageCount returns the number of open edges between adjacent cells.
// Each passage is counted once even though both cells dropped a wall.
func (g *Grid) PassageCount() int {
	count := 0
	for _, row := range g.Cells {
		for _, cell := range row {
			if !cell.EastWall {
				count++
			}
			if !cell.SouthWall {
				count++
			}
		}
	}
	return count
}

// String provides a textual representation of the grid, drawing standing
// walls and leaving carved passages blank.
func (g *Grid) String() string {
	var output string

	// Top boundary
	output += "+" + strings.Repeat("---+", g.Width) + "\n"

	for row := 0; row < g.Height; row++ {
		// Cell rows
		cellRow := "|"
		for col := 0; col < g.Width; col++ {
			cell := g.Cells[row][col]
			if !cell.EastWall {
				cellRow += "    "
			} else {
				cellRow += "   |"
			}
		}
		output += cellRow + "\n"

		// Wall rows
		wallRow := "+"
		for col := 0; col < g.Width; col++ {
			cell := g.Cells[row][col]
			if !cell.SouthWall {
				wallRow += "   +"
			} else {
				wallRow += "---+"
			}
		}
		output += wallRow + "\n"
	}

	return output
}
