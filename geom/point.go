// Package geom provides the integer 2D geometry primitives the quadtree
// core is built on: points, directions, rectangles, circles, lines, and
// the pixel-walking iterators drawing and ray casting consume.
package geom

import "math"

// Point is an integer 2D coordinate.
type Point struct {
	X, Y int32
}

var (
	Zero   = Point{0, 0}
	One    = Point{1, 1}
	NegOne = Point{-1, -1}
)

// NewPoint builds a Point from plain coordinates.
func NewPoint(x, y int32) Point {
	return Point{X: x, Y: y}
}

func (p Point) Add(o Point) Point       { return Point{p.X + o.X, p.Y + o.Y} }
func (p Point) AddScalar(n int32) Point { return Point{p.X + n, p.Y + n} }
func (p Point) Sub(o Point) Point       { return Point{p.X - o.X, p.Y - o.Y} }
func (p Point) SubScalar(n int32) Point { return Point{p.X - n, p.Y - n} }
func (p Point) Mul(o Point) Point       { return Point{p.X * o.X, p.Y * o.Y} }
func (p Point) MulScalar(n int32) Point { return Point{p.X * n, p.Y * n} }
func (p Point) Neg() Point              { return Point{-p.X, -p.Y} }

func (p Point) Min(o Point) Point {
	return Point{minInt32(p.X, o.X), minInt32(p.Y, o.Y)}
}

func (p Point) Max(o Point) Point {
	return Point{maxInt32(p.X, o.X), maxInt32(p.Y, o.Y)}
}

// MoveTowards steps this point by `by` units along a direction's unit vector.
func (p Point) MoveTowards(d Direction, by int32) Point {
	return p.Add(d.Unit().MulScalar(by))
}

// DistanceSquaredTo returns the squared Euclidean distance between two points.
func (p Point) DistanceSquaredTo(o Point) float64 {
	dx := float64(o.X - p.X)
	dy := float64(o.Y - p.Y)
	return math.Abs(dx*dx + dy*dy)
}

// DistanceTo returns the Euclidean distance between two points.
func (p Point) DistanceTo(o Point) float64 {
	return math.Sqrt(p.DistanceSquaredTo(o))
}

func minInt32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

func maxInt32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}
