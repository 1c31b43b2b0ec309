package glyphmask

import "math"

// Matrix is a 2D affine transformation in row-major order:
//
//	| a  b  c |
//	| d  e  f |
//
// which maps
//
//	x' = a*x + b*y + c
//	y' = d*x + e*y + f
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity transformation.
func Identity() Matrix {
	return Matrix{A: 1, E: 1}
}

// Translate returns a translation.
func Translate(x, y float64) Matrix {
	return Matrix{A: 1, C: x, E: 1, F: y}
}

// Scale returns a scaling.
func Scale(x, y float64) Matrix {
	return Matrix{A: x, E: y}
}

// RotateDegrees returns a rotation by deg degrees around (cx, cy).
// Positive angles turn the x axis toward the y axis.
func RotateDegrees(deg, cx, cy float64) Matrix {
	sin, cos := sinCosDegrees(deg)
	r := Matrix{A: cos, B: -sin, D: sin, E: cos}
	return Translate(cx, cy).Multiply(r).Multiply(Translate(-cx, -cy))
}

// Shear returns a shear: x' = x + sx*y, y' = sy*x + y.
func Shear(sx, sy float64) Matrix {
	return Matrix{A: 1, B: sx, D: sy, E: 1}
}

// sinCosDegrees returns exact values at multiples of 90 degrees.
func sinCosDegrees(deg float64) (sin, cos float64) {
	rad := deg * math.Pi / 180
	sin, cos = math.Sincos(rad)
	if nearlyZero(sin) {
		sin = 0
	}
	if nearlyZero(cos) {
		cos = 0
	}
	return sin, cos
}

// nearlyZero reports whether v is within 1/4096 of zero.
func nearlyZero(v float64) bool {
	return math.Abs(v) <= 1.0/4096
}

// Multiply returns m*other, which applies other first.
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// TransformPoint maps p through m.
func (m Matrix) TransformPoint(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}

// Invert returns the inverse of m and whether m was invertible.
func (m Matrix) Invert() (Matrix, bool) {
	det := m.A*m.E - m.B*m.D
	if det == 0 || math.IsNaN(det) || math.IsInf(det, 0) {
		return Identity(), false
	}
	inv := 1 / det
	return Matrix{
		A: m.E * inv,
		B: -m.B * inv,
		C: (m.B*m.F - m.C*m.E) * inv,
		D: -m.D * inv,
		E: m.A * inv,
		F: (m.C*m.D - m.A*m.F) * inv,
	}, true
}

// IsIdentity reports whether m is exactly the identity.
func (m Matrix) IsIdentity() bool {
	return m == Identity()
}

// MinScale returns the smallest factor by which m scales a unit vector,
// the smaller singular value of the linear part.
func (m Matrix) MinScale() float64 {
	// Eigenvalues of the symmetric matrix M^T M.
	a := m.A*m.A + m.D*m.D
	b := m.A*m.B + m.D*m.E
	c := m.B*m.B + m.E*m.E
	half := (a + c) / 2
	disc := math.Sqrt(math.Max(0, (a-c)*(a-c)/4+b*b))
	return math.Sqrt(math.Max(0, half-disc))
}
