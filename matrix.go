package compose

import (
	"image"
	"math"
)

// Matrix is a 2D affine transformation restricted to independent axis
// scaling followed by a translation:
//
//	x' = SX*x + TX
//	y' = SY*y + TY
//
// Surfaces never rotate or shear, so the off-diagonal terms of a general
// affine matrix are always zero and are not stored.
type Matrix struct {
	SX, SY float64
	TX, TY float64
}

// Identity returns the identity transformation matrix.
func Identity() Matrix {
	return Matrix{SX: 1, SY: 1}
}

// NewMatrix creates a matrix that scales by (sx, sy) and then translates
// by (tx, ty).
func NewMatrix(tx, ty, sx, sy float64) Matrix {
	return Matrix{SX: sx, SY: sy, TX: tx, TY: ty}
}

// Translate returns m followed by a translation of (x, y).
// The offset is expressed in the output space of m.
func (m Matrix) Translate(x, y float64) Matrix {
	m.TX += x
	m.TY += y
	return m
}

// Scale returns m followed by a scaling of (sx, sy).
func (m Matrix) Scale(sx, sy float64) Matrix {
	return Matrix{
		SX: m.SX * sx,
		SY: m.SY * sy,
		TX: m.TX * sx,
		TY: m.TY * sy,
	}
}

// Multiply multiplies two matrices (m * other): other is applied first,
// then m.
//
// Composing a child transform into its parent's is parent.Multiply(child).
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		SX: m.SX * other.SX,
		SY: m.SY * other.SY,
		TX: m.SX*other.TX + m.TX,
		TY: m.SY*other.TY + m.TY,
	}
}

// TransformPoint applies the transformation to a point.
func (m Matrix) TransformPoint(p Point) Point {
	return Point{
		X: m.SX*p.X + m.TX,
		Y: m.SY*p.Y + m.TY,
	}
}

// TransformRect maps r into the output space of m.
func (m Matrix) TransformRect(r Rect) Rect {
	return Rect{
		X:      m.SX*r.X + m.TX,
		Y:      m.SY*r.Y + m.TY,
		Width:  r.Width * m.SX,
		Height: r.Height * m.SY,
	}
}

// ToScreen maps r into device pixels. Each component is truncated
// toward zero independently, so the resulting width is the truncated
// scaled width rather than the difference of two truncated edges.
func (m Matrix) ToScreen(r Rect) image.Rectangle {
	x := int(m.SX*r.X + m.TX)
	y := int(m.SY*r.Y + m.TY)
	w := int(r.Width * m.SX)
	h := int(r.Height * m.SY)
	return image.Rect(x, y, x+w, y+h)
}

// Invert returns the inverse matrix.
// Returns the identity matrix if either scale factor is (near) zero.
func (m Matrix) Invert() Matrix {
	if math.Abs(m.SX) < 1e-10 || math.Abs(m.SY) < 1e-10 {
		return Identity()
	}
	return Matrix{
		SX: 1 / m.SX,
		SY: 1 / m.SY,
		TX: -m.TX / m.SX,
		TY: -m.TY / m.SY,
	}
}

// IsIdentity returns true if the matrix is the identity matrix.
func (m Matrix) IsIdentity() bool {
	return m.SX == 1 && m.SY == 1 && m.TX == 0 && m.TY == 0
}

// IsTranslation returns true if the matrix is only a translation.
func (m Matrix) IsTranslation() bool {
	return m.SX == 1 && m.SY == 1
}
