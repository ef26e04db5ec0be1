package tui

import (
	"math"

	"github.com/vovakirdan/blockbreaker/internal/core"
	"github.com/vovakirdan/blockbreaker/internal/games/blockbreaker"
)

// Glyphs used to rasterize the logical surface.
const (
	glyphBall  = '●'
	glyphSolid = '█'
)

// frameTitle is drawn on the top edge of the playfield frame.
const frameTitle = " BLOCK BREAKER "

// Canvas rasterizes the logical drawing surface onto a cell buffer.
// The buffer is the bordered playfield; the surface maps onto its interior,
// stretched independently on each axis.
type Canvas struct {
	screen *core.Screen
	view   core.Rect // interior of the frame, in buffer cells

	logicalW, logicalH float64
	sx, sy             float64 // logical pixels per cell
}

var _ blockbreaker.Surface = (*Canvas)(nil)

// NewCanvas creates a canvas for a logical surface of the given size,
// occupying cols x rows cells including the frame.
func NewCanvas(logicalW, logicalH float64, cols, rows int) *Canvas {
	c := &Canvas{
		screen:   core.NewScreen(0, 0),
		logicalW: logicalW,
		logicalH: logicalH,
	}
	c.Resize(cols, rows)
	return c
}

// Resize changes the playfield size and redraws the frame.
func (c *Canvas) Resize(cols, rows int) {
	c.screen.Resize(cols, rows)
	c.view = core.NewRect(1, 1, core.Max(cols-2, 0), core.Max(rows-2, 0))
	c.sx, c.sy = 0, 0
	if c.view.W > 0 {
		c.sx = c.logicalW / float64(c.view.W)
	}
	if c.view.H > 0 {
		c.sy = c.logicalH / float64(c.view.H)
	}
	c.screen.Clear()
	c.screen.DrawBox(core.NewRect(0, 0, cols, rows), core.ColorBorder)
	if cols >= len(frameTitle)+4 {
		c.screen.DrawTextCentered(0, frameTitle, core.ColorMuted)
	}
}

// Screen returns the underlying cell buffer.
func (c *Canvas) Screen() *core.Screen {
	return c.screen
}

// Usable reports whether the interior has room to draw anything.
func (c *Canvas) Usable() bool {
	return c.view.W > 0 && c.view.H > 0
}

// LogicalX converts a buffer column to a surface-relative x at the cell's
// center. Columns left of the interior give negative values and columns
// right of it give values past the surface width.
func (c *Canvas) LogicalX(col int) float64 {
	return (float64(col-c.view.X) + 0.5) * c.sx
}

// ColumnOf returns the buffer column showing logical x.
func (c *Canvas) ColumnOf(x float64) int {
	if c.sx == 0 {
		return c.view.X
	}
	return c.view.X + int(math.Floor(x/c.sx))
}

// ClearRect implements blockbreaker.Surface.
func (c *Canvas) ClearRect(x, y, w, h float64) {
	c.fill(x, y, w, h, ' ', core.ColorDefault)
}

// FillCircle implements blockbreaker.Surface. Cells whose center lies in
// the circle are filled; the cell under the center is always filled.
func (c *Canvas) FillCircle(x, y, r float64) {
	if !c.Usable() {
		return
	}
	c0, c1 := c.span(x-r, x+r, c.sx, c.view.W)
	r0, r1 := c.span(y-r, y+r, c.sy, c.view.H)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			cx := (float64(col) + 0.5) * c.sx
			cy := (float64(row) + 0.5) * c.sy
			if math.Hypot(cx-x, cy-y) <= r {
				c.set(col, row, glyphBall)
			}
		}
	}

	col, row := c.cell(x, c.sx), c.cell(y, c.sy)
	if col >= 0 && col < c.view.W && row >= 0 && row < c.view.H {
		c.set(col, row, glyphBall)
	}
}

// FillRect implements blockbreaker.Surface.
func (c *Canvas) FillRect(x, y, w, h float64) {
	c.fill(x, y, w, h, glyphSolid, core.ColorAccent)
}

func (c *Canvas) fill(x, y, w, h float64, r rune, color core.Color) {
	if !c.Usable() || w <= 0 || h <= 0 {
		return
	}
	c0, c1 := c.span(x, x+w, c.sx, c.view.W)
	r0, r1 := c.span(y, y+h, c.sy, c.view.H)
	area := core.NewRect(c.view.X+c0, c.view.Y+r0, c1-c0+1, r1-r0+1)
	c.screen.DrawRect(area, r, color)
}

func (c *Canvas) set(col, row int, r rune) {
	c.screen.SetColored(c.view.X+col, c.view.Y+row, r, core.ColorAccent)
}

// cell returns the interior cell index holding logical coordinate v.
func (c *Canvas) cell(v, scale float64) int {
	return int(math.Floor(v / scale))
}

// span returns the interior cells covering [lo, hi), clipped to [0, n).
// An empty result has first > last.
func (c *Canvas) span(lo, hi, scale float64, n int) (first, last int) {
	first = c.cell(lo, scale)
	last = int(math.Ceil(hi/scale)) - 1
	if last < first {
		last = first
	}
	return core.Clamp(first, 0, n), core.Clamp(last, -1, n-1)
}
