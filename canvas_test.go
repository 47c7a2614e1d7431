package jestsay

import (
	"errors"
	"testing"
)

func TestCanvasGetSet(t *testing.T) {
	c := NewCanvas(3, 2)
	cell := Cell{Char: 'x', Style: Style{Color: ColorRed}}

	if err := c.Set(2, 1, cell); err != nil {
		t.Fatalf("Set(2, 1) = %v, want nil", err)
	}
	if got := c.Get(2, 1); !got.Equal(cell) {
		t.Errorf("Get(2, 1) = %+v, want %+v", got, cell)
	}
}

func TestCanvasSetOutOfBounds(t *testing.T) {
	c := NewCanvas(3, 2)
	tests := []struct{ x, y int }{
		{3, 0}, {0, 2}, {-1, 0}, {0, -1},
	}
	for _, tt := range tests {
		err := c.Set(tt.x, tt.y, EmptyCell)
		if !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Set(%d, %d) = %v, want ErrOutOfBounds", tt.x, tt.y, err)
		}
	}
}

func TestCanvasGetOutOfBounds(t *testing.T) {
	c := NewCanvas(1, 1)
	if got := c.Get(5, 5); !got.Equal(EmptyCell) {
		t.Errorf("Get out of bounds = %+v, want EmptyCell", got)
	}
}

func TestCanvasEqual(t *testing.T) {
	a := NewCanvas(2, 2)
	b := NewCanvas(2, 2)
	if !a.Equal(b) {
		t.Error("fresh canvases should be equal")
	}
	b.Set(0, 0, Cell{Char: 'q'})
	if a.Equal(b) {
		t.Error("canvases with differing cells should not be equal")
	}
	if a.Equal(NewCanvas(2, 3)) {
		t.Error("canvases with differing dimensions should not be equal")
	}
}
