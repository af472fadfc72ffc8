// Package sim is the deterministic maze-chase simulation: navigation graph,
// agent motion, ghost behavior, pickups and collisions. It has no UI or I/O
// dependencies beyond an injected logger.
package sim

// Dir is a movement direction on the grid.
type Dir uint8

const (
	DirNone Dir = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// scanOrder is the order in which candidate directions are enumerated.
var scanOrder = [4]Dir{DirUp, DirDown, DirLeft, DirRight}

// String returns the string representation of a direction.
func (d Dir) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// MarshalText encodes the direction by name.
func (d Dir) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Delta returns the (dx, dy) offset for one step in this direction.
// Up decreases Y (screen coordinates).
func (d Dir) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the reverse direction. DirNone has no opposite.
func (d Dir) Opposite() Dir {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	default:
		return DirNone
	}
}

// Priority ranks directions for tie-breaks: lower wins.
// Up beats Left beats Down beats Right.
func (d Dir) Priority() int {
	switch d {
	case DirUp:
		return 0
	case DirLeft:
		return 1
	case DirDown:
		return 2
	case DirRight:
		return 3
	default:
		return 4
	}
}
