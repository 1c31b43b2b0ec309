package glyphmask

import "math"

// Point is a 2D point or vector in device pixels.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns p scaled by s.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Dot returns the dot product of p and q.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Length returns the length of p.
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Perp returns p rotated by 90 degrees, (y, -x).
func (p Point) Perp() Point {
	return Point{X: p.Y, Y: -p.X}
}

// Project returns the projection of p onto the direction of onto.
// A zero onto vector yields the zero vector.
func (p Point) Project(onto Point) Point {
	l2 := onto.Dot(onto)
	if l2 == 0 {
		return Point{}
	}
	return onto.Mul(p.Dot(onto) / l2)
}
