package viz

import (
	"strings"

	"github.com/san-kum/clothlab/internal/cloth"
)

// Braille patterns give a 2x4 dot raster per terminal cell.
var pixelMap = [4][2]rune{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// Viewport is the world-space rectangle mapped onto the canvas.
type Viewport struct {
	MinX, MinY, MaxX, MaxY float64
}

// Canvas rasterizes world-space geometry into braille cells. Width and
// Height are in cells; the dot resolution is Width*2 by Height*4.
type Canvas struct {
	Width, Height int
	View          Viewport
	grid          [][]rune
}

func NewCanvas(width, height int, view Viewport) *Canvas {
	c := &Canvas{Width: width, Height: height, View: view}
	c.grid = make([][]rune, height)
	for i := range c.grid {
		c.grid[i] = make([]rune, width)
	}
	c.Clear()
	return c
}

func (c *Canvas) Clear() {
	for i := range c.grid {
		for j := range c.grid[i] {
			c.grid[i][j] = 0x2800
		}
	}
}

// project maps a world point to dot coordinates.
func (c *Canvas) project(pt cloth.Vec2) (int, int) {
	fx := (pt.X - c.View.MinX) / (c.View.MaxX - c.View.MinX)
	fy := (pt.Y - c.View.MinY) / (c.View.MaxY - c.View.MinY)
	return int(fx * float64(c.Width*2)), int(fy * float64(c.Height*4))
}

// WorldAt maps a cell coordinate (as reported by terminal mouse events)
// back to the world point at the cell's center.
func (c *Canvas) WorldAt(cellX, cellY int) cloth.Vec2 {
	return cloth.Vec2{
		X: c.View.MinX + (float64(cellX)+0.5)/float64(c.Width)*(c.View.MaxX-c.View.MinX),
		Y: c.View.MinY + (float64(cellY)+0.5)/float64(c.Height)*(c.View.MaxY-c.View.MinY),
	}
}

func (c *Canvas) set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.grid[row][col] |= pixelMap[y%4][x%2]
}

// Point plots a single world point.
func (c *Canvas) Point(pt cloth.Vec2) {
	x, y := c.project(pt)
	c.set(x, y)
}

// Line draws a world-space segment with Bresenham's algorithm over the dot
// raster.
func (c *Canvas) Line(a, b cloth.Vec2) {
	x0, y0 := c.project(a)
	x1, y1 := c.project(b)

	// A segment projected absurdly far off-raster (a diverging mesh) would
	// make Bresenham walk millions of dots; drop it instead.
	const maxCoord = 1 << 20
	if abs(x0) > maxCoord || abs(y0) > maxCoord || abs(x1) > maxCoord || abs(y1) > maxCoord {
		return
	}

	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.set(x0, y0)
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

// DrawMesh rasterizes every constraint as a segment between its endpoint
// positions. Non-finite endpoints are dropped so a diverged simulation
// cannot wedge the rasterizer.
func (c *Canvas) DrawMesh(m *cloth.Mesh) {
	for _, con := range m.Constraints {
		a := m.Particles[con.A].Pos
		b := m.Particles[con.B].Pos
		if !a.Finite() || !b.Finite() {
			continue
		}
		c.Line(a, b)
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.grid {
		b.WriteString(string(row))
		b.WriteByte('\n')
	}
	return b.String()
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
