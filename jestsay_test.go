package jestsay

import (
	"strings"
	"testing"
)

func TestSayEndToEnd(t *testing.T) {
	art := "\x1b[48;2;10;20;30m          \x1b[0m\n" +
		"\x1b[48;2;10;20;30m          \x1b[0m\n" +
		"\x1b[48;2;10;20;30m          \x1b[0m"

	out := Say([]byte(art), "hi", Options{
		Region: Region{X: 0, Y: 1, Width: 10, Height: 1},
		Align:  AlignCenter,
		Color:  &RGB{255, 0, 0},
		Bold:   true,
	})

	c := Parse(out)
	if c.Width() != 10 || c.Height() != 3 {
		t.Fatalf("dimensions = %dx%d, want 10x3", c.Width(), c.Height())
	}

	// Centered "hi" in width 10 starts at column 4.
	h := c.Get(4, 1)
	if h.Char != 'h' || c.Get(5, 1).Char != 'i' {
		t.Fatalf("caption not centered: %q", c.ToDebugString())
	}
	if !h.Style.Bold {
		t.Error("caption should be bold")
	}
	if !rgbEqual(h.Style.ColorRGB, &RGB{255, 0, 0}) {
		t.Errorf("caption color = %+v, want red", h.Style.ColorRGB)
	}
	if !rgbEqual(h.Style.BackgroundRGB, &RGB{10, 20, 30}) {
		t.Error("caption should keep the art's background")
	}

	// Rows without caption content keep their art styling.
	if c.Get(0, 0).Style.IsZero() {
		t.Error("art row lost its style")
	}
}

func TestSayEmptyArt(t *testing.T) {
	out := Say(nil, "hello", Options{
		Region: Region{Width: 10, Height: 2},
		Align:  AlignLeft,
	})
	if len(out) != 0 {
		t.Errorf("empty art should produce empty output, got %q", out)
	}
}

func TestSayEmptyQuipLeavesArtIntact(t *testing.T) {
	art := "\x1b[31mabc\ndef"
	plain := Render(Parse([]byte(art)))
	out := Say([]byte(art), "", Options{
		Region: Region{X: 0, Y: 0, Width: 3, Height: 2},
		Align:  AlignLeft,
		Bold:   true,
	})
	if string(out) != string(plain) {
		t.Errorf("empty quip changed the art:\n%q\nvs\n%q", out, plain)
	}
}

func TestSayDeterministic(t *testing.T) {
	art := "\x1b[33m~~~~~~~~\n~~~~~~~~"
	opts := Options{
		Region: Region{X: 1, Y: 0, Width: 6, Height: 2},
		Align:  AlignRight,
		Color:  &RGB{1, 2, 3},
	}
	a := Say([]byte(art), "same in same out", opts)
	b := Say([]byte(art), "same in same out", opts)
	if string(a) != string(b) {
		t.Error("Say must be deterministic")
	}
	if !strings.Contains(string(a), "\x1b[") {
		t.Error("output should carry escape sequences")
	}
}
