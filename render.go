package jestsay

import (
	"strconv"
	"strings"
)

const (
	csiStr   = "\x1b["
	resetStr = "\x1b[0m"
)

// Render walks the canvas row by row and re-emits it as an ANSI byte stream.
// A "last emitted" style is tracked so escape sequences appear only where the
// style actually changes; each change is one combined SGR sequence carrying
// just the parameters that differ. A reset follows the final row so the art
// does not bleed color into whatever the terminal prints next.
//
// The compression is a correctness requirement, not an optimization: a
// per-cell emission would balloon naive art files after overlay.
func Render(c *Canvas) []byte {
	if c.Height() == 0 {
		return nil
	}

	var sb strings.Builder
	sb.Grow(c.Width()*c.Height() + 64)

	last := EmptyStyle
	for y := 0; y < c.Height(); y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < c.Width(); x++ {
			cell := c.Get(x, y)
			if !cell.Style.Equal(last) {
				sb.WriteString(sgrTransition(last, cell.Style))
				last = cell.Style
			}
			sb.WriteRune(cell.Char)
		}
	}

	sb.WriteString(resetStr)
	sb.WriteByte('\n')
	return []byte(sb.String())
}

// sgrTransition returns the single SGR sequence that takes the terminal from
// one style to another. Transitioning to the zero style collapses to a full
// reset.
func sgrTransition(from, to Style) string {
	if to.IsZero() {
		return resetStr
	}

	var codes []string

	// SGR 22 clears bold and dim together, so re-assert whichever survives.
	if (from.Bold && !to.Bold) || (from.Dim && !to.Dim) {
		codes = append(codes, "22")
		if to.Bold {
			codes = append(codes, "1")
		}
		if to.Dim {
			codes = append(codes, "2")
		}
	} else {
		if to.Bold && !from.Bold {
			codes = append(codes, "1")
		}
		if to.Dim && !from.Dim {
			codes = append(codes, "2")
		}
	}

	if to.Italic != from.Italic {
		codes = append(codes, flagCode(to.Italic, "3", "23"))
	}
	if to.Underline != from.Underline {
		codes = append(codes, flagCode(to.Underline, "4", "24"))
	}
	if to.Inverse != from.Inverse {
		codes = append(codes, flagCode(to.Inverse, "7", "27"))
	}
	if to.Strikethrough != from.Strikethrough {
		codes = append(codes, flagCode(to.Strikethrough, "9", "29"))
	}

	if to.Color != from.Color || !rgbEqual(to.ColorRGB, from.ColorRGB) {
		codes = append(codes, fgCode(to)...)
	}
	if to.Background != from.Background || !rgbEqual(to.BackgroundRGB, from.BackgroundRGB) {
		codes = append(codes, bgCode(to)...)
	}

	if len(codes) == 0 {
		return ""
	}
	return csiStr + strings.Join(codes, ";") + "m"
}

func flagCode(on bool, set, clear string) string {
	if on {
		return set
	}
	return clear
}

// fgCode returns the SGR parameters selecting the style's foreground.
func fgCode(s Style) []string {
	if s.ColorRGB != nil {
		return []string{"38", "2",
			strconv.Itoa(int(s.ColorRGB.R)),
			strconv.Itoa(int(s.ColorRGB.G)),
			strconv.Itoa(int(s.ColorRGB.B))}
	}
	switch {
	case s.Color == ColorNone || s.Color == ColorDefault:
		return []string{"39"}
	case s.Color >= ColorBlack && s.Color <= ColorWhite:
		return []string{strconv.Itoa(30 + int(s.Color-ColorBlack))}
	case s.Color >= ColorBrightBlack && s.Color <= ColorBrightWhite:
		return []string{strconv.Itoa(90 + int(s.Color-ColorBrightBlack))}
	}
	return nil
}

// bgCode returns the SGR parameters selecting the style's background.
func bgCode(s Style) []string {
	if s.BackgroundRGB != nil {
		return []string{"48", "2",
			strconv.Itoa(int(s.BackgroundRGB.R)),
			strconv.Itoa(int(s.BackgroundRGB.G)),
			strconv.Itoa(int(s.BackgroundRGB.B))}
	}
	switch {
	case s.Background == ColorNone || s.Background == ColorDefault:
		return []string{"49"}
	case s.Background >= ColorBlack && s.Background <= ColorWhite:
		return []string{strconv.Itoa(40 + int(s.Background-ColorBlack))}
	case s.Background >= ColorBrightBlack && s.Background <= ColorBrightWhite:
		return []string{strconv.Itoa(100 + int(s.Background-ColorBrightBlack))}
	}
	return nil
}

// Strip removes every escape sequence from a rendered stream, leaving only
// the visible characters. Used for terminals that want no color at all.
func Strip(out []byte) []byte {
	s := string(out)
	if !strings.Contains(s, "\x1b[") {
		return out
	}
	var b strings.Builder
	b.Grow(len(s))
	i := 0
	for i < len(s) {
		if s[i] == '\x1b' && i+1 < len(s) && s[i+1] == '[' {
			// CSI sequence: skip ESC[ then params until final byte (0x40-0x7E)
			i += 2
			for i < len(s) && !(s[i] >= 0x40 && s[i] <= 0x7E) {
				i++
			}
			if i < len(s) {
				i++ // skip final byte
			}
		} else if s[i] == '\x1b' {
			// Other escape: skip ESC + next byte
			i += 2
		} else {
			b.WriteByte(s[i])
			i++
		}
	}
	return []byte(b.String())
}
