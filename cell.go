// Package jestsay renders a short quip onto a piece of ANSI terminal art.
// The core is a pure pipeline: parse the art into a grid of styled cells,
// lay the quip out into a rectangle, composite it over the grid, and
// serialize the grid back into a minimal escape-sequence stream.
package jestsay

// Color represents terminal colors using a compact uint8 representation.
// ColorNone means "unset": the cell inherits whatever the terminal has.
type Color uint8

const (
	ColorNone    Color = iota // No color set (inherit terminal default)
	ColorDefault              // Explicit terminal default (SGR 39/49)
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightBlack
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
)

// RGB represents a 24-bit true color.
type RGB struct {
	R, G, B uint8
}

// Style holds the attributes active for one cell. Colors are either a named
// Color or a 24-bit value; when the RGB pointer is set it wins. Attributes
// beyond color and bold are carried through from the art untouched.
type Style struct {
	Color         Color
	Background    Color
	Bold          bool
	Dim           bool
	Italic        bool
	Underline     bool
	Inverse       bool
	Strikethrough bool
	ColorRGB      *RGB
	BackgroundRGB *RGB
}

// Cell represents a single character position in the art grid.
type Cell struct {
	Char  rune
	Style Style
}

// EmptyStyle is a Style with no attributes set.
var EmptyStyle = Style{}

// EmptyCell is a Cell with a space character and no styling.
var EmptyCell = Cell{Char: ' ', Style: EmptyStyle}

// Equal returns true if two Cells are identical.
func (a Cell) Equal(b Cell) bool {
	if a.Char != b.Char {
		return false
	}
	return a.Style.Equal(b.Style)
}

// Equal returns true if two Styles are identical.
func (a Style) Equal(b Style) bool {
	if a.Color != b.Color || a.Background != b.Background {
		return false
	}
	if a.Bold != b.Bold || a.Dim != b.Dim || a.Italic != b.Italic ||
		a.Underline != b.Underline || a.Inverse != b.Inverse ||
		a.Strikethrough != b.Strikethrough {
		return false
	}
	if !rgbEqual(a.ColorRGB, b.ColorRGB) {
		return false
	}
	return rgbEqual(a.BackgroundRGB, b.BackgroundRGB)
}

// IsZero returns true if the style carries no attributes at all, i.e. the
// terminal's own defaults apply.
func (s Style) IsZero() bool {
	return s.Equal(EmptyStyle)
}

func rgbEqual(a, b *RGB) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return a.R == b.R && a.G == b.G && a.B == b.B
}
