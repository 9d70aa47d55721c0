package maze

// Direction identifies one of the four orthogonal sides of a cell. The
// numeric order (North, East, South, West) is the scan order everywhere a
// cell's neighbors are enumerated, which keeps tie-breaking deterministic.
type Direction uint8

const (
	North Direction = iota
	East
	South
	West
)

// Directions lists all directions in scan order.
var Directions = [4]Direction{North, East, South, West}

// Delta returns the row/column offset of one step in the direction.
func (d Direction) Delta() (dRow, dCol int) {
	switch d {
	case North:
		return -1, 0
	case East:
		return 0, 1
	case South:
		return 1, 0
	case West:
		return 0, -1
	default:
		return 0, 0
	}
}

// Opposite returns the direction pointing back across the same edge.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case East:
		return West
	case South:
		return North
	default:
		return East
	}
}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return "Unknown"
	}
}
