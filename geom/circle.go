package geom

import "math"

// Circle is a circle represented by a center point and a radius, in
// integer coordinates.
type Circle struct {
	Point  Point
	Radius uint32
}

// ZeroCircle is the degenerate circle of radius zero at the origin.
var ZeroCircle = Circle{}

// NewCircle builds a circle with the given center and radius.
func NewCircle(point Point, radius uint32) Circle {
	return Circle{Point: point, Radius: radius}
}

func (c Circle) X() int32 { return c.Point.X }
func (c Circle) Y() int32 { return c.Point.Y }

// Contains reports whether point lies within or on the circle's edge.
func (c Circle) Contains(p Point) bool {
	d := p.Sub(c.Point)
	r := int32(c.Radius)
	return d.X*d.X+d.Y*d.Y <= r*r
}

// AABB returns the axis-aligned bounding box of the circle, covering every
// pixel from center-radius to center+radius inclusive on both axes.
func (c Circle) AABB() Rect {
	r := int32(c.Radius)
	return Rect{Min: c.Point.SubScalar(r), Max: c.Point.AddScalar(r + 1)}
}

// InnerRect returns an axis-aligned square centered on the circle and
// contained within it, built with RectCenteredAt from a side of
// radius·√2 rounded down. It is not always the largest such square.
func (c Circle) InnerRect() Rect {
	size := uint32(float64(c.Radius) * math.Sqrt2)
	return RectCenteredAt(c.Point, size, size)
}

// Pixels returns an iterator over every integer pixel inside the circle.
func (c Circle) Pixels() *CirclePixelIterator {
	return NewCirclePixelIterator(c)
}

// CircleFromRect builds the largest inscribed circle of rect.
func CircleFromRect(rect Rect) Circle {
	radius := rect.Width()
	if rect.Height() < radius {
		radius = rect.Height()
	}
	radius /= 2
	p := Point{rect.X() + int32(rect.Width())/2, rect.Y() + int32(rect.Height())/2}
	return NewCircle(p, radius)
}

// CirclePixelIterator walks every pixel of a Circle, scan-line by scan-line.
type CirclePixelIterator struct {
	circle Circle
	x, y   int32
}

func NewCirclePixelIterator(circle Circle) *CirclePixelIterator {
	r := int32(circle.Radius)
	y := -r
	x := -int32(math.Sqrt(float64(r*r - y*y)))
	return &CirclePixelIterator{circle: circle, x: x, y: y}
}

// Next returns the next pixel in the circle, or false once exhausted.
func (it *CirclePixelIterator) Next() (Point, bool) {
	r := int32(it.circle.Radius)
	for {
		if it.y > r {
			return Point{}, false
		}

		x := it.x
		it.x++

		xLen := int32(math.Sqrt(float64(r*r - it.y*it.y)))
		if x > xLen {
			it.y++
			nextXLen := int32(math.Sqrt(float64(r*r - it.y*it.y)))
			it.x = -nextXLen
			continue
		}

		return Point{it.circle.X() + x, it.circle.Y() + it.y}, true
	}
}
