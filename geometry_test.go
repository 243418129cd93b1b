package compose

import (
	"image"
	"testing"
)

func TestRectUnite(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want Rect
	}{
		{"overlapping", R(0, 0, 10, 10), R(5, 5, 10, 10), R(0, 0, 15, 15)},
		{"disjoint", R(0, 0, 1, 1), R(9, 9, 1, 1), R(0, 0, 10, 10)},
		{"moved", R(10, 10, 20, 20), R(30, 10, 20, 20), R(10, 10, 40, 20)},
		{"empty left", R(100, 100, 0, 0), R(1, 2, 3, 4), R(1, 2, 3, 4)},
		{"empty right", R(1, 2, 3, 4), R(100, 100, 0, 5), R(1, 2, 3, 4)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Unite(tt.b); got != tt.want {
				t.Errorf("%v.Unite(%v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestRectIntersect(t *testing.T) {
	got := R(0, 0, 10, 10).Intersect(R(5, 5, 10, 10))
	if want := R(5, 5, 5, 5); got != want {
		t.Errorf("Intersect() = %v, want %v", got, want)
	}
	if !R(0, 0, 1, 1).Intersect(R(5, 5, 1, 1)).IsEmpty() {
		t.Error("disjoint Intersect() is not empty")
	}
}

func TestRectIsEmpty(t *testing.T) {
	tests := []struct {
		r    Rect
		want bool
	}{
		{R(0, 0, 1, 1), false},
		{R(0, 0, 0, 1), true},
		{R(0, 0, 1, 0), true},
		{Rect{}, true},
	}
	for _, tt := range tests {
		if got := tt.r.IsEmpty(); got != tt.want {
			t.Errorf("%v.IsEmpty() = %v, want %v", tt.r, got, tt.want)
		}
	}
}

func TestRectContains(t *testing.T) {
	r := R(10, 10, 5, 5)
	if !r.Contains(Pt(10, 10)) {
		t.Error("top-left corner not contained")
	}
	if r.Contains(Pt(15, 12)) {
		t.Error("right edge contained")
	}
}

func TestRectImage(t *testing.T) {
	got := R(1.9, 2.2, 3.7, 4.1).Image()
	if want := image.Rect(1, 2, 4, 6); !got.Eq(want) {
		t.Errorf("Image() = %v, want %v", got, want)
	}
}

func TestRectSizeAndOrigin(t *testing.T) {
	r := R(1, 2, 3, 4)
	if r.Size() != Sz(3, 4) {
		t.Errorf("Size() = %v, want 3x4", r.Size())
	}
	if r.Origin() != Pt(1, 2) {
		t.Errorf("Origin() = %v, want (1,2)", r.Origin())
	}
	if RectFromSize(Sz(3, 4)) != R(0, 0, 3, 4) {
		t.Error("RectFromSize() not anchored at the origin")
	}
	if r.Translate(1, 1) != R(2, 3, 3, 4) {
		t.Errorf("Translate() = %v", r.Translate(1, 1))
	}
}
