package sim

import (
	"fmt"
	"math"
)

// Coord is a tile coordinate. X grows to the right, Y grows downward.
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns a new Coord offset by (dx, dy).
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// Step returns the coordinate n tiles away in direction d.
func (c Coord) Step(d Dir, n int) Coord {
	dx, dy := d.Delta()
	return c.Add(dx*n, dy*n)
}

// Dist returns the Euclidean distance to another coordinate.
func (c Coord) Dist(o Coord) float64 {
	return math.Hypot(float64(c.X-o.X), float64(c.Y-o.Y))
}

// Cell is the content of a grid cell.
type Cell uint8

const (
	CellWall Cell = iota
	CellOpen
	CellDoor // passable only for ghosts returning home
)

// Layout characters accepted by ParseGrid.
const (
	glyphWall  = '#'
	glyphDot   = '.'
	glyphEmpty = ' '
	glyphDoor  = '-'
)

// Validation error codes for grids and world options.
const (
	CodeEmptyGrid  = "EMPTY_GRID"
	CodeRaggedRows = "RAGGED_ROWS"
	CodeBadTile    = "BAD_TILE"
	CodeBorderOpen = "BORDER_OPEN"
	CodeNoTunnel   = "NO_TUNNEL"
	CodeNoHouse    = "NO_HOUSE"
)

// ValidationError describes a configuration problem that prevents a level
// from starting.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Grid is an immutable wall map. Border cells are walls except the two edge
// cells of the tunnel row.
type Grid struct {
	W, H      int
	cells     []Cell
	dots      []bool
	tunnelRow int
}

// ParseGrid builds a grid from layout rows. '#' is a wall, '.' an open cell
// holding a dot, ' ' an open cell without a dot and '-' a ghost door.
// tunnelRow < 0 means the maze has no wraparound row.
func ParseGrid(rows []string, tunnelRow int) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ValidationError{Code: CodeEmptyGrid, Message: "layout has no rows"}
	}

	w, h := len(rows[0]), len(rows)
	g := &Grid{
		W:         w,
		H:         h,
		cells:     make([]Cell, w*h),
		dots:      make([]bool, w*h),
		tunnelRow: tunnelRow,
	}

	open := 0
	for y, row := range rows {
		if len(row) != w {
			return nil, ValidationError{
				Code:    CodeRaggedRows,
				Message: fmt.Sprintf("row %d has width %d, expected %d", y, len(row), w),
			}
		}
		for x, ch := range []byte(row) {
			i := y*w + x
			switch ch {
			case glyphWall:
				g.cells[i] = CellWall
			case glyphDot:
				g.cells[i] = CellOpen
				g.dots[i] = true
				open++
			case glyphEmpty:
				g.cells[i] = CellOpen
				open++
			case glyphDoor:
				g.cells[i] = CellDoor
			default:
				return nil, ValidationError{
					Code:    CodeBadTile,
					Message: fmt.Sprintf("unknown glyph %q at %v", ch, C(x, y)),
				}
			}
		}
	}

	if open == 0 {
		return nil, ValidationError{Code: CodeEmptyGrid, Message: "layout has no passable cells"}
	}

	if tunnelRow >= 0 {
		if tunnelRow >= h || g.At(C(0, tunnelRow)) != CellOpen || g.At(C(w-1, tunnelRow)) != CellOpen {
			return nil, ValidationError{
				Code:    CodeNoTunnel,
				Message: fmt.Sprintf("tunnel row %d needs open cells on both edges", tunnelRow),
			}
		}
	}

	for y := range h {
		for x := range w {
			if x != 0 && y != 0 && x != w-1 && y != h-1 {
				continue
			}
			if g.At(C(x, y)) == CellWall || g.isTunnelEdge(C(x, y)) {
				continue
			}
			return nil, ValidationError{
				Code:    CodeBorderOpen,
				Message: fmt.Sprintf("border cell %v is not a wall", C(x, y)),
			}
		}
	}

	return g, nil
}

// InBounds returns true if the coordinate is within the grid.
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.W && c.Y >= 0 && c.Y < g.H
}

// At returns the cell at c. Out-of-bounds cells read as walls.
func (g *Grid) At(c Coord) Cell {
	if !g.InBounds(c) {
		return CellWall
	}
	return g.cells[c.Y*g.W+c.X]
}

// IsWall reports whether c blocks every agent.
func (g *Grid) IsWall(c Coord) bool {
	return g.At(c) == CellWall
}

// IsDoor reports whether c is a ghost door.
func (g *Grid) IsDoor(c Coord) bool {
	return g.At(c) == CellDoor
}

// Passable reports whether an agent may stand on c.
func (g *Grid) Passable(c Coord, allowDoor bool) bool {
	switch g.At(c) {
	case CellOpen:
		return true
	case CellDoor:
		return allowDoor
	default:
		return false
	}
}

// HasDot reports whether the layout placed a dot on c.
func (g *Grid) HasDot(c Coord) bool {
	return g.InBounds(c) && g.dots[c.Y*g.W+c.X]
}

// DotTiles returns every tile holding a dot in row-major order.
func (g *Grid) DotTiles() []Coord {
	var out []Coord
	for i, d := range g.dots {
		if d {
			out = append(out, C(i%g.W, i/g.W))
		}
	}
	return out
}

// TunnelRow returns the wraparound row, or -1.
func (g *Grid) TunnelRow() int {
	return g.tunnelRow
}

func (g *Grid) isTunnelEdge(c Coord) bool {
	return g.tunnelRow >= 0 && c.Y == g.tunnelRow && (c.X == 0 || c.X == g.W-1)
}
