package viz

import (
	"strings"
)

// Each terminal cell holds a 2x4 Braille block:
//
//	1 4
//	2 5
//	3 6
//	7 8
const brailleBase = 0x2800

var dotMask = [4][2]rune{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// Canvas is a grid of Braille cells addressed in dots. A canvas of
// Cols x Rows cells has (2*Cols) x (4*Rows) dots; (0,0) is the top left.
type Canvas struct {
	Cols, Rows int
	cells      [][]rune
}

func NewCanvas(cols, rows int) *Canvas {
	c := &Canvas{Cols: cols, Rows: rows, cells: make([][]rune, rows)}
	for i := range c.cells {
		c.cells[i] = make([]rune, cols)
	}
	c.Clear()
	return c
}

// Dots returns the canvas size in dots.
func (c *Canvas) Dots() (w, h int) { return c.Cols * 2, c.Rows * 4 }

func (c *Canvas) cell(x, y int) (*rune, rune, bool) {
	if x < 0 || y < 0 {
		return nil, 0, false
	}
	col, row := x/2, y/4
	if col >= c.Cols || row >= c.Rows {
		return nil, 0, false
	}
	return &c.cells[row][col], dotMask[y%4][x%2], true
}

// Set lights the dot at (x, y). Out of range dots are ignored.
func (c *Canvas) Set(x, y int) {
	if r, mask, ok := c.cell(x, y); ok {
		*r |= mask
	}
}

func (c *Canvas) Unset(x, y int) {
	if r, mask, ok := c.cell(x, y); ok {
		*r &^= mask
	}
}

func (c *Canvas) IsSet(x, y int) bool {
	r, mask, ok := c.cell(x, y)
	return ok && *r&mask != 0
}

func (c *Canvas) Clear() {
	for i := range c.cells {
		for j := range c.cells[i] {
			c.cells[i][j] = brailleBase
		}
	}
}

// Line draws from (x0, y0) to (x1, y1) with Bresenham's algorithm.
func (c *Canvas) Line(x0, y0, x1, y1 int) {
	dx, dy := absInt(x1-x0), absInt(y1-y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx - dy

	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// Dashed draws every other run of n dots along a line.
func (c *Canvas) Dashed(x0, y0, x1, y1, n int) {
	steps := max(absInt(x1-x0), absInt(y1-y0))
	if steps == 0 {
		c.Set(x0, y0)
		return
	}
	for i := 0; i <= steps; i++ {
		if (i/n)%2 == 1 {
			continue
		}
		x := x0 + (x1-x0)*i/steps
		y := y0 + (y1-y0)*i/steps
		c.Set(x, y)
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.cells {
		b.WriteString(string(row))
		b.WriteByte('\n')
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
