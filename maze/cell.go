package maze

// Cell represents a single cell in a maze grid.
// It starts fully walled, closed and unvisited; carving opens it and drops
// walls toward its linked neighbors.
type Cell struct {
	// NorthWall indicates whether there is a wall on the north side of the cell.
	NorthWall bool
	// SouthWall indicates whether there is a wall on the south side of the cell.
	SouthWall bool
	// EastWall indicates whether there is a wall on the east side of the cell.
	EastWall bool
	// WestWall indicates whether there is a wall on the west side of the cell.
	WestWall bool
	// Open indicates the cell has been carved into the walkable structure.
	Open bool
	// Visited indicates the walk has entered the cell at least once.
	Visited bool
}

// HasWall reports whether the wall on the given side is still standing.
func (c *Cell) HasWall(d Direction) bool {
	switch d {
	case North:
		return c.NorthWall
	case East:
		return c.EastWall
	case South:
		return c.SouthWall
	case West:
		return c.WestWall
	default:
		return true
	}
}

// dropWall removes the wall on the given side of this cell only. Callers
// open the matching side of the neighbor themselves.
func (c *Cell) dropWall(d Direction) {
	switch d {
	case North:
		c.NorthWall = false
	case East:
		c.EastWall = false
	case South:
		c.SouthWall = false
	case West:
		c.WestWall = false
	}
}
