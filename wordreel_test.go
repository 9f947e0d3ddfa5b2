package wordreel

import (
	"image/color"
	"testing"
)

func TestColorToRGBA(t *testing.T) {
	tests := []struct {
		name string
		c    Color
		want color.RGBA
	}{
		{"white", ColorWhite, color.RGBA{255, 255, 255, 255}},
		{"half alpha premultiplied", Color{R: 1, A: 0.5}, color.RGBA{R: 127, A: 127}},
		{"clamped", Color{R: 2, G: -1, B: 0, A: 1}, color.RGBA{R: 255, A: 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.toRGBA(); got != tt.want {
				t.Errorf("toRGBA = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectCentered(t *testing.T) {
	r := RectCentered(50, 40, 20, 10)
	if r != (Rect{X: 40, Y: 35, Width: 20, Height: 10}) {
		t.Errorf("RectCentered = %+v", r)
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	tests := []struct {
		x, y float64
		want bool
	}{
		{5, 5, true},
		{0, 0, true},
		{10, 10, true},
		{10.1, 5, false},
		{-1, 5, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestRectIntersects(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	tests := []struct {
		name string
		b    Rect
		want bool
	}{
		{"overlap", Rect{X: 5, Y: 5, Width: 10, Height: 10}, true},
		{"contained", Rect{X: 2, Y: 2, Width: 2, Height: 2}, true},
		{"shared edge", Rect{X: 10, Y: 0, Width: 5, Height: 5}, true},
		{"apart horizontally", Rect{X: 11, Y: 0, Width: 5, Height: 5}, false},
		{"apart vertically", Rect{X: 0, Y: -6, Width: 5, Height: 5}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Intersects(tt.b); got != tt.want {
				t.Errorf("Intersects = %v, want %v", got, tt.want)
			}
			if got := tt.b.Intersects(a); got != tt.want {
				t.Errorf("reverse Intersects = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectInflate(t *testing.T) {
	got := Rect{X: 10, Y: 10, Width: 4, Height: 6}.Inflate(3)
	if got != (Rect{X: 7, Y: 7, Width: 10, Height: 12}) {
		t.Errorf("Inflate = %+v", got)
	}
}

func TestNodeTypeString(t *testing.T) {
	for typ, want := range map[NodeType]string{
		NodeTypeContainer: "container",
		NodeTypeSprite:    "sprite",
		NodeTypeText:      "text",
		NodeType(9):       "unknown",
	} {
		if got := typ.String(); got != want {
			t.Errorf("NodeType(%d).String() = %q, want %q", typ, got, want)
		}
	}
}
