package mazechase

import (
	"fmt"
	"math"

	"github.com/vovakirdan/mazechase/internal/core"
	"github.com/vovakirdan/mazechase/internal/games/mazechase/sim"
)

// Each tile is drawn two cells wide so the maze keeps its proportions in a
// terminal.
const cellsPerTile = 2

// hudHeight is the status line plus separator.
const hudHeight = 2

// Minimum terminal size to play.
const (
	minScreenW = 30
	minScreenH = 12
)

var ghostColors = map[sim.Identity]core.Color{
	sim.Blinky: core.ColorBrightRed,
	sim.Pinky:  core.ColorBrightMagenta,
	sim.Inky:   core.ColorBrightCyan,
	sim.Clyde:  core.ColorOrange,
}

// camera maps maze tiles to screen cells. The viewport follows the player
// when the maze does not fit.
type camera struct {
	originX, originY int // screen cell of the viewport's top-left
	tileX, tileY     int // first visible tile
	cols, rows       int // visible tiles
}

func newCamera(dst *core.Screen, grid *sim.Grid, focus sim.Coord) camera {
	viewW := dst.Width() / cellsPerTile
	viewH := dst.Height() - hudHeight

	c := camera{cols: min(viewW, grid.W), rows: min(viewH, grid.H)}
	c.tileX = core.Clamp(focus.X-c.cols/2, 0, grid.W-c.cols)
	c.tileY = core.Clamp(focus.Y-c.rows/2, 0, grid.H-c.rows)
	c.originX = (dst.Width() - c.cols*cellsPerTile) / 2
	c.originY = hudHeight + (viewH-c.rows)/2
	return c
}

// cell returns the screen position of a fractional tile position.
func (c camera) cell(tx, ty float64) (x, y int, ok bool) {
	fx := (tx - float64(c.tileX)) * cellsPerTile
	fy := ty - float64(c.tileY)
	x, y = int(math.Round(fx)), int(math.Round(fy))
	ok = x >= 0 && x < c.cols*cellsPerTile && y >= 0 && y < c.rows
	return c.originX + x, c.originY + y, ok
}

func (c camera) tile(t sim.Coord) (x, y int, ok bool) {
	return c.cell(float64(t.X), float64(t.Y))
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}
	if g.world == nil {
		msg := "No level"
		if g.err != nil {
			msg = g.err.Error()
		}
		g.renderOverlay(dst, "Config error", msg)
		return
	}

	cam := newCamera(dst, g.world.Grid(), g.world.Player().Tile())
	g.renderMaze(dst, cam)
	g.renderPickups(dst, cam)
	g.renderGhosts(dst, cam)
	g.renderPlayer(dst, cam)

	switch {
	case g.phase == PhaseWon:
		g.renderOverlay(dst, "You Win!", fmt.Sprintf("Final Score: %d", g.score))
	case g.phase == PhaseGameOver:
		g.renderOverlay(dst, "Game Over", "Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	case g.phase == PhaseReady:
		g.renderOverlay(dst, "READY!", fmt.Sprintf("Level %d", g.level))
	case g.phase == PhaseCleared:
		g.renderOverlay(dst, fmt.Sprintf("Level %d cleared!", g.level), fmt.Sprintf("Score: %d", g.score))
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Maze Chase  Score: %d  Lives: %d  Level: %d/%d",
		g.score, g.lives, g.level, g.cfg.Gameplay.Levels)
	if g.world != nil {
		hud += fmt.Sprintf("  Dots: %d  %s", g.world.DotsLeft(), g.world.Waves().Current())
	}
	dst.DrawTextColor(0, 0, hud, core.ColorBrightWhite)
	for x := range dst.Width() {
		dst.SetCell(x, 1, '─', core.ColorGray)
	}
}

func (g *Game) renderMaze(dst *core.Screen, cam camera) {
	grid := g.world.Grid()
	for ty := cam.tileY; ty < cam.tileY+cam.rows; ty++ {
		for tx := cam.tileX; tx < cam.tileX+cam.cols; tx++ {
			t := sim.C(tx, ty)
			x, y, ok := cam.tile(t)
			if !ok {
				continue
			}
			switch {
			case grid.IsWall(t):
				dst.SetCell(x, y, '█', core.ColorBlue)
				dst.SetCell(x+1, y, '█', core.ColorBlue)
			case grid.IsDoor(t):
				dst.SetCell(x, y, '─', core.ColorMagenta)
				dst.SetCell(x+1, y, '─', core.ColorMagenta)
			case g.world.HasDot(t):
				dst.SetCell(x, y, '·', core.ColorWhite)
			}
		}
	}
}

func (g *Game) renderPickups(dst *core.Screen, cam camera) {
	for _, p := range g.world.Pickups() {
		// Flickering pickups blink every eight ticks before they vanish.
		if p.Flicker() && (p.Age/8)%2 == 1 {
			continue
		}
		x, y, ok := cam.tile(p.Tile)
		if !ok {
			continue
		}
		if p.Kind == sim.PickupMajor {
			dst.SetCell(x, y, '●', core.ColorBrightYellow)
		} else {
			dst.SetCell(x, y, '◆', core.ColorBrightGreen)
		}
	}
}

func (g *Game) renderGhosts(dst *core.Screen, cam camera) {
	ts := g.world.Graph().TileSize()
	for _, gh := range g.world.Ghosts() {
		x, y, ok := cam.cell(gh.Pos.X/ts-0.5, gh.Pos.Y/ts-0.5)
		if !ok {
			continue
		}
		glyph, color := 'M', ghostColors[gh.ID]
		switch {
		case gh.Mode() == sim.ModeEaten:
			glyph, color = '"', core.ColorWhite
		case gh.Mode() == sim.ModeFrightened:
			glyph, color = 'w', core.ColorBlue
			if gh.Flashing(g.world.FlashTicks()) && (g.tick/10)%2 == 0 {
				color = core.ColorBrightWhite
			}
		case gh.Buffed():
			glyph = 'W'
		}
		dst.SetCell(x, y, glyph, color)
	}
}

var playerGlyphs = map[sim.Dir]rune{
	sim.DirUp:    'v',
	sim.DirDown:  '^',
	sim.DirLeft:  '>',
	sim.DirRight: '<',
}

func (g *Game) renderPlayer(dst *core.Screen, cam camera) {
	p := g.world.Player()
	ts := g.world.Graph().TileSize()
	x, y, ok := cam.cell(p.Pos.X/ts-0.5, p.Pos.Y/ts-0.5)
	if !ok {
		return
	}
	glyph := playerGlyphs[p.Facing()]
	if g.phase == PhaseDying && (g.phaseTicks/6)%2 == 0 {
		glyph = '*'
	}
	color := core.ColorYellow
	if p.Boosted() {
		color = core.ColorBrightYellow
	}
	dst.SetCell(x, y, glyph, color)
}

// renderOverlay draws a centered overlay message.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := max(len([]rune(line1)), len([]rune(line2)))
	boxW := min(maxLen+4, dst.Width())
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawTextCenteredColor(box.Y+1, line1, core.ColorBrightYellow)
	dst.DrawTextCenteredColor(box.Y+3, line2, core.ColorWhite)
}
