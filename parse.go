package jestsay

import "unicode/utf8"

// Parse turns a raw stream of ANSI art into a Canvas. One mutable style state
// is threaded through the scan and copied into every cell produced, so each
// cell records the style active at the moment its character appeared.
//
// Only SGR sequences (CSI ... 'm') affect the state; every other escape
// sequence, including malformed or unterminated ones, is skipped without
// producing a cell. The style state persists across newlines since art
// authors commonly rely on carried-over color. Rows are right-padded with
// empty cells so the result is always rectangular.
func Parse(art []byte) *Canvas {
	s := string(art)

	var rows [][]Cell
	var row []Cell
	var state Style
	i := 0

	for i < len(s) {
		switch {
		case s[i] == '\x1b' && i+1 < len(s) && s[i+1] == '[':
			// CSI sequence: ESC [ params final-byte (0x40-0x7E)
			i += 2
			paramStart := i
			for i < len(s) && !(s[i] >= 0x40 && s[i] <= 0x7E) {
				i++
			}
			if i < len(s) {
				if s[i] == 'm' {
					applySGR(s[paramStart:i], &state)
				}
				i++ // skip final byte
			}
		case s[i] == '\x1b':
			// Non-CSI escape: skip ESC + next byte
			i += 2
		case s[i] == '\r':
			i++
		case s[i] == '\n':
			rows = append(rows, row)
			row = nil
			i++
		default:
			r, size := utf8.DecodeRuneInString(s[i:])
			row = append(row, Cell{Char: r, Style: state})
			i += size
		}
	}
	if row != nil {
		rows = append(rows, row)
	}

	return normalize(rows)
}

// normalize pads every row with empty cells to the widest row's length and
// packs the result into a Canvas.
func normalize(rows [][]Cell) *Canvas {
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}

	c := NewCanvas(width, len(rows))
	for y, row := range rows {
		for x, cell := range row {
			c.Set(x, y, cell)
		}
	}
	return c
}

// applySGR applies SGR (Select Graphic Rendition) parameters to the running
// style state. Unknown parameters are ignored.
func applySGR(paramStr string, style *Style) {
	if paramStr == "" {
		// ESC[m is equivalent to ESC[0m (reset)
		*style = EmptyStyle
		return
	}

	params := parseSGRParams(paramStr)
	i := 0
	for i < len(params) {
		p := params[i]
		switch {
		case p == 0:
			*style = EmptyStyle
		case p == 1:
			style.Bold = true
		case p == 2:
			style.Dim = true
		case p == 3:
			style.Italic = true
		case p == 4:
			style.Underline = true
		case p == 7:
			style.Inverse = true
		case p == 9:
			style.Strikethrough = true
		case p == 22:
			style.Bold = false
			style.Dim = false
		case p == 23:
			style.Italic = false
		case p == 24:
			style.Underline = false
		case p == 27:
			style.Inverse = false
		case p == 29:
			style.Strikethrough = false

		// Foreground colors 30-37
		case p >= 30 && p <= 37:
			style.Color = ColorBlack + Color(p-30)
			style.ColorRGB = nil
		case p == 39:
			style.Color = ColorNone
			style.ColorRGB = nil

		// Background colors 40-47
		case p >= 40 && p <= 47:
			style.Background = ColorBlack + Color(p-40)
			style.BackgroundRGB = nil
		case p == 49:
			style.Background = ColorNone
			style.BackgroundRGB = nil

		// Bright foreground 90-97
		case p >= 90 && p <= 97:
			style.Color = ColorBrightBlack + Color(p-90)
			style.ColorRGB = nil

		// Bright background 100-107
		case p >= 100 && p <= 107:
			style.Background = ColorBrightBlack + Color(p-100)
			style.BackgroundRGB = nil

		// Extended foreground: 38;5;N (256-color) or 38;2;R;G;B
		case p == 38:
			if i+2 < len(params) && params[i+1] == 5 {
				style.Color, style.ColorRGB = color256(params[i+2])
				i += 2
			} else if i+4 < len(params) && params[i+1] == 2 {
				style.ColorRGB = &RGB{R: uint8(params[i+2]), G: uint8(params[i+3]), B: uint8(params[i+4])}
				style.Color = ColorNone
				i += 4
			}

		// Extended background: 48;5;N or 48;2;R;G;B
		case p == 48:
			if i+2 < len(params) && params[i+1] == 5 {
				style.Background, style.BackgroundRGB = color256(params[i+2])
				i += 2
			} else if i+4 < len(params) && params[i+1] == 2 {
				style.BackgroundRGB = &RGB{R: uint8(params[i+2]), G: uint8(params[i+3]), B: uint8(params[i+4])}
				style.Background = ColorNone
				i += 4
			}
		}
		i++
	}
}

// parseSGRParams splits a semicolon-separated parameter string into integers.
func parseSGRParams(s string) []int {
	var params []int
	n := 0
	hasDigit := false
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			n = n*10 + int(s[i]-'0')
			hasDigit = true
		} else if s[i] == ';' {
			params = append(params, n)
			n = 0
			hasDigit = false
		}
	}
	if hasDigit {
		params = append(params, n)
	}
	return params
}

// color256 maps a 256-color index to a named Color and optional RGB.
func color256(n int) (Color, *RGB) {
	switch {
	case n >= 0 && n <= 7:
		return ColorBlack + Color(n), nil
	case n >= 8 && n <= 15:
		return ColorBrightBlack + Color(n-8), nil
	case n >= 16 && n <= 231:
		// 6x6x6 color cube
		n -= 16
		b := n % 6
		g := (n / 6) % 6
		r := n / 36
		return ColorNone, &RGB{R: uint8(r * 51), G: uint8(g * 51), B: uint8(b * 51)}
	case n >= 232 && n <= 255:
		// Grayscale
		v := uint8((n-232)*10 + 8)
		return ColorNone, &RGB{R: v, G: v, B: v}
	}
	return ColorNone, nil
}
