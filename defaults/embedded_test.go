package defaults_test

import (
	"strings"
	"testing"

	"github.com/jestsay/jestsay"
	"github.com/jestsay/jestsay/defaults"
)

func TestJesterBubbleFitsDefaultRegion(t *testing.T) {
	c := jestsay.Parse(defaults.Jester())
	if c.Height() == 0 {
		t.Fatal("embedded jester art is empty")
	}

	// The stock bubble interior must cover the default text region.
	for y := jestsay.DefaultYOffset; y < jestsay.DefaultYOffset+jestsay.DefaultHeight; y++ {
		for x := jestsay.DefaultXOffset; x < jestsay.DefaultXOffset+jestsay.DefaultWidth; x++ {
			if !c.InBounds(x, y) {
				t.Fatalf("default region cell (%d, %d) outside the art", x, y)
			}
			if ch := c.Get(x, y).Char; ch != ' ' {
				t.Errorf("bubble interior (%d, %d) = %q, want blank", x, y, ch)
			}
		}
	}
}

func TestQuipsAreUsable(t *testing.T) {
	quips := jestsay.ReadQuips(strings.NewReader(string(defaults.Quips())))
	if len(quips) == 0 {
		t.Fatal("embedded quips are empty")
	}
	for _, q := range quips {
		if strings.HasPrefix(q, "#") || strings.TrimSpace(q) == "" {
			t.Errorf("quip %q should have been filtered", q)
		}
	}
}
