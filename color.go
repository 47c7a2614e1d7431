package jestsay

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ParseHexColor parses a "#rrggbb" or "#rgb" hex string (leading '#'
// optional) into an RGB. A supplied-but-invalid value is an error; it is
// never silently replaced with a default.
func ParseHexColor(s string) (*RGB, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 3 && len(hex) != 6 {
		return nil, fmt.Errorf("invalid hex color %q: want 3 or 6 digits, got %d", s, len(hex))
	}

	c, err := colorful.Hex("#" + hex)
	if err != nil {
		return nil, fmt.Errorf("invalid hex color %q: %w", s, err)
	}

	r, g, b := c.RGB255()
	return &RGB{R: r, G: g, B: b}, nil
}
