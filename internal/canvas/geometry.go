package canvas

import "math"

// Offset is a point or a displacement in canvas units.
type Offset struct {
	X, Y float64
}

// Size is the extent of a drawing surface.
type Size struct {
	Width, Height float64
}

// IsEmpty reports whether the size has no drawable area.
func (s Size) IsEmpty() bool {
	return !(s.Width > 0) || !(s.Height > 0)
}

// Center returns the midpoint of the size.
func (s Size) Center() Offset {
	return Offset{X: s.Width / 2, Y: s.Height / 2}
}

// Min returns the smaller of the two dimensions.
func (s Size) Min() float64 {
	return math.Min(s.Width, s.Height)
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// RectFromLTWH creates a Rect from its left/top corner and size.
func RectFromLTWH(left, top, width, height float64) Rect {
	return Rect{Left: left, Top: top, Right: left + width, Bottom: top + height}
}

// Width returns the rectangle width.
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height returns the rectangle height.
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// Center returns the rectangle midpoint.
func (r Rect) Center() Offset {
	return Offset{X: (r.Left + r.Right) / 2, Y: (r.Top + r.Bottom) / 2}
}

// Inset shrinks the rectangle by dx horizontally and dy vertically on each side.
func (r Rect) Inset(dx, dy float64) Rect {
	return Rect{Left: r.Left + dx, Top: r.Top + dy, Right: r.Right - dx, Bottom: r.Bottom - dy}
}

// Matrix is a 2D affine transform mapping (x, y) to
// (A*x + C*y + E, B*x + D*y + F).
type Matrix struct {
	A, B, C, D, E, F float64
}

// Identity returns the identity transform.
func Identity() Matrix {
	return Matrix{A: 1, D: 1}
}

// Apply transforms p.
func (m Matrix) Apply(p Offset) Offset {
	return Offset{
		X: m.A*p.X + m.C*p.Y + m.E,
		Y: m.B*p.X + m.D*p.Y + m.F,
	}
}

// Multiply returns the transform that applies n first, then m.
func (m Matrix) Multiply(n Matrix) Matrix {
	return Matrix{
		A: m.A*n.A + m.C*n.B,
		B: m.B*n.A + m.D*n.B,
		C: m.A*n.C + m.C*n.D,
		D: m.B*n.C + m.D*n.D,
		E: m.A*n.E + m.C*n.F + m.E,
		F: m.B*n.E + m.D*n.F + m.F,
	}
}

// Translate returns m with a local translation applied first.
func (m Matrix) Translate(dx, dy float64) Matrix {
	return m.Multiply(Matrix{A: 1, D: 1, E: dx, F: dy})
}

// Rotate returns m with a local rotation applied first. Positive radians
// turn clockwise on a y-down surface.
func (m Matrix) Rotate(radians float64) Matrix {
	sin, cos := math.Sincos(radians)
	return m.Multiply(Matrix{A: cos, B: sin, C: -sin, D: cos})
}

// Invert returns the inverse transform. A singular matrix yields the identity.
func (m Matrix) Invert() Matrix {
	det := m.A*m.D - m.B*m.C
	if det == 0 {
		return Identity()
	}
	inv := 1 / det
	return Matrix{
		A: m.D * inv,
		B: -m.B * inv,
		C: -m.C * inv,
		D: m.A * inv,
		E: (m.C*m.F - m.D*m.E) * inv,
		F: (m.B*m.E - m.A*m.F) * inv,
	}
}
