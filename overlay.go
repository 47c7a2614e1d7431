package jestsay

import "github.com/mattn/go-runewidth"

// Region is the rectangle of the canvas where caption text may be written.
type Region struct {
	X, Y          int
	Width, Height int
}

// OverlayStyle is the caller-supplied styling for composited text. A nil
// Color keeps the art's foreground at each position; Bold applies to every
// written cell either way. The art's background is never overwritten.
type OverlayStyle struct {
	Color *RGB
	Bold  bool
}

// Overlay writes a laid-out text block into the canvas at the region's
// offset. Cells outside the canvas are clipped rather than failing the
// render, and plain spaces are skipped so the art shows through the gaps
// between words. Every untouched cell keeps its exact prior value.
func Overlay(c *Canvas, r Region, block TextBlock, style OverlayStyle) {
	for i, line := range block.Lines {
		y := r.Y + i
		x := r.X + line.Offset

		for _, char := range line.Text {
			w := runewidth.RuneWidth(char)
			if char == ' ' {
				x++
				continue
			}
			if !c.InBounds(x, y) {
				x += w
				continue
			}

			existing := c.Get(x, y)
			cell := Cell{Char: char, Style: existing.Style}
			if style.Color != nil {
				rgb := *style.Color
				cell.Style.ColorRGB = &rgb
				cell.Style.Color = ColorNone
			}
			cell.Style.Bold = style.Bold
			c.Set(x, y, cell)

			// A double-width rune covers the next column too; blank the
			// shadowed cell so the row stays aligned.
			if w == 2 && c.InBounds(x+1, y) {
				shadow := c.Get(x+1, y)
				shadow.Char = ' '
				c.Set(x+1, y, shadow)
			}
			x += w
		}
	}
}
