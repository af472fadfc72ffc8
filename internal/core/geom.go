// Package core holds what the game and its front ends share: actions,
// the cell screen, the runtime config and a few integer helpers. It imports
// nothing outside the standard library.
package core

// Rect is a cell area on a Screen.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect returns the w x h area with its top-left cell at (x, y).
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right is the first column past the area.
func (r Rect) Right() int { return r.X + r.W }

// Bottom is the first row past the area.
func (r Rect) Bottom() int { return r.Y + r.H }

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

// Abs returns |x|.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
