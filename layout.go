package jestsay

import (
	"fmt"
	"strings"

	"github.com/clipperhouse/uax29/v2/words"
	"github.com/mattn/go-runewidth"
)

// Align selects where wrapped lines sit inside the text region.
type Align uint8

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// ParseAlign converts an alignment name to Align. An unknown name is a
// configuration error, never silently defaulted.
func ParseAlign(s string) (Align, error) {
	switch s {
	case "left":
		return AlignLeft, nil
	case "center":
		return AlignCenter, nil
	case "right":
		return AlignRight, nil
	}
	return AlignLeft, fmt.Errorf("invalid alignment %q (want left, center or right)", s)
}

func (a Align) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	}
	return "left"
}

// Line is one wrapped line of caption text. Offset is the alignment shift in
// display columns from the region's left edge; trailing padding is never
// materialized.
type Line struct {
	Text   string
	Offset int
}

// TextBlock is the laid-out caption: at most region-height lines, each at
// most region-width display columns wide.
type TextBlock struct {
	Lines []Line
}

// LayoutText wraps the caption into lines fitting a width x height region and
// computes per-line alignment offsets. Words are packed greedily; a single
// word wider than the region is hard-truncated. Lines beyond height are
// dropped. An empty caption yields a block with no lines.
func LayoutText(caption string, width, height int, align Align) TextBlock {
	if width <= 0 || height <= 0 {
		return TextBlock{}
	}

	var lines []string
	var current strings.Builder
	currentWidth := 0

	appendWord := func(word string) {
		w := runewidth.StringWidth(word)
		if w > width {
			word = runewidth.Truncate(word, width, "")
			w = runewidth.StringWidth(word)
		}

		switch {
		case currentWidth == 0:
			current.WriteString(word)
			currentWidth = w
		case currentWidth+1+w <= width:
			current.WriteByte(' ')
			current.WriteString(word)
			currentWidth += 1 + w
		default:
			lines = append(lines, current.String())
			current.Reset()
			current.WriteString(word)
			currentWidth = w
		}
	}

	// UAX#29 treats trailing punctuation as its own token, so glue
	// consecutive non-whitespace tokens back into one word and break only
	// at whitespace.
	var word strings.Builder
	tokens := words.FromString(caption)
	for tokens.Next() {
		token := tokens.Value()
		if strings.TrimSpace(token) == "" {
			if word.Len() > 0 {
				appendWord(word.String())
				word.Reset()
			}
			continue
		}
		word.WriteString(token)
	}
	if word.Len() > 0 {
		appendWord(word.String())
	}
	if currentWidth > 0 {
		lines = append(lines, current.String())
	}

	if len(lines) > height {
		lines = lines[:height]
	}

	block := TextBlock{Lines: make([]Line, 0, len(lines))}
	for _, text := range lines {
		pad := width - runewidth.StringWidth(text)
		offset := 0
		switch align {
		case AlignRight:
			offset = pad
		case AlignCenter:
			offset = pad / 2
		}
		block.Lines = append(block.Lines, Line{Text: text, Offset: offset})
	}
	return block
}
