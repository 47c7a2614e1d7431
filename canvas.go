package jestsay

import (
	"errors"
	"strings"
)

// ErrOutOfBounds is returned by Canvas.Set for positions outside the grid.
var ErrOutOfBounds = errors.New("position out of canvas bounds")

// Canvas is a fixed-size 2D grid of cells holding one parsed piece of art.
// All rows have the same width; coordinates are zero-based (x = column,
// y = row).
type Canvas struct {
	width, height int
	cells         []Cell
}

// NewCanvas creates a canvas filled with empty cells.
func NewCanvas(width, height int) *Canvas {
	cells := make([]Cell, width*height)
	for i := range cells {
		cells[i] = EmptyCell
	}
	return &Canvas{
		width:  width,
		height: height,
		cells:  cells,
	}
}

func (c *Canvas) index(x, y int) int {
	return y*c.width + x
}

// InBounds reports whether (x, y) lies inside the canvas.
func (c *Canvas) InBounds(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

// Width returns the canvas width in columns.
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in rows.
func (c *Canvas) Height() int { return c.height }

// Get returns the cell at (x, y), or EmptyCell if out of bounds.
func (c *Canvas) Get(x, y int) Cell {
	if !c.InBounds(x, y) {
		return EmptyCell
	}
	return c.cells[c.index(x, y)]
}

// Set writes the cell at (x, y). Out-of-bounds writes return ErrOutOfBounds
// rather than being dropped; callers that want clipping check InBounds first.
func (c *Canvas) Set(x, y int, cell Cell) error {
	if !c.InBounds(x, y) {
		return ErrOutOfBounds
	}
	c.cells[c.index(x, y)] = cell
	return nil
}

// Equal returns true if two canvases have identical dimensions and cells.
func (c *Canvas) Equal(other *Canvas) bool {
	if c.width != other.width || c.height != other.height {
		return false
	}
	for i := range c.cells {
		if !c.cells[i].Equal(other.cells[i]) {
			return false
		}
	}
	return true
}

// ToDebugString returns the canvas characters without styling, one row per
// line. Useful in tests.
func (c *Canvas) ToDebugString() string {
	var sb strings.Builder
	for y := 0; y < c.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < c.width; x++ {
			sb.WriteRune(c.Get(x, y).Char)
		}
	}
	return sb.String()
}
