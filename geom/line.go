package geom

import "math"

// Line is a line segment represented by two endpoints, in integer coordinates.
type Line struct {
	Start, End Point
}

// ZeroLine is the degenerate line segment at the origin.
var ZeroLine = Line{}

// NewLine builds a line segment between start and end.
func NewLine(start, end Point) Line {
	return Line{Start: start, End: end}
}

// LengthSquared returns the squared length of the segment.
func (l Line) LengthSquared() float64 {
	return DistanceSquaredTo(l.Start, l.End)
}

// Length returns the length of the segment.
func (l Line) Length() float64 {
	return DistanceTo(l.Start, l.End)
}

// Rotate returns a copy of this line rotated around its start point by radians.
func (l Line) Rotate(radians float64) Line {
	return l.RotateAround(l.Start, radians)
}

// RotateAround returns a copy of this line rotated around center by radians.
func (l Line) RotateAround(center Point, radians float64) Line {
	cosTheta := math.Cos(radians)
	sinTheta := math.Sin(radians)

	startXDiff := float64(l.Start.X) - float64(center.X)
	startYDiff := float64(l.Start.Y) - float64(center.Y)
	endXDiff := float64(l.End.X) - float64(center.X)
	endYDiff := float64(l.End.Y) - float64(center.Y)

	x0 := cosTheta*startXDiff - sinTheta*startYDiff + float64(center.X)
	y0 := sinTheta*startXDiff + cosTheta*startYDiff + float64(center.Y)
	x1 := cosTheta*endXDiff - sinTheta*endYDiff + float64(center.X)
	y1 := sinTheta*endXDiff + cosTheta*endYDiff + float64(center.Y)

	return NewLine(Point{int32(x0), int32(y0)}, Point{int32(x1), int32(y1)})
}

// Contains reports whether point lies on this line segment, within a small
// epsilon of floating point error.
func (l Line) Contains(p Point) bool {
	d := DistanceTo(l.Start, p) + DistanceTo(p, l.End) - l.Length()
	const epsilon = 1.1920929e-7 // float32 epsilon, matches the source's tolerance
	return -epsilon < d && d < epsilon
}

// IsAxisAligned reports whether this line runs along the X or Y axis.
func (l Line) IsAxisAligned() bool {
	return l.Start.X == l.End.X || l.Start.Y == l.End.Y
}

// AABB returns the axis-aligned bounding box of this line.
func (l Line) AABB() Rect {
	return RectFromCorners(l.Start, l.End)
}

// AxisAlignment returns the compass direction of this line if it runs
// exactly along the X or Y axis, and false otherwise.
func (l Line) AxisAlignment() (Direction, bool) {
	switch {
	case l.Start.X == l.End.X:
		if l.Start.Y < l.End.Y {
			return North, true
		}
		return South, true
	case l.Start.Y == l.End.Y:
		if l.Start.X > l.End.X {
			return West, true
		}
		return East, true
	default:
		return 0, false
	}
}

// DiagonalAxisAlignment returns the compass direction of this line if it
// runs exactly along a 45 degree diagonal, and false otherwise.
func (l Line) DiagonalAxisAlignment() (Direction, bool) {
	dx := l.End.X - l.Start.X
	dy := l.End.Y - l.Start.Y
	switch {
	case dx == dy:
		if dx > 0 {
			return NorthEast, true
		}
		return SouthWest, true
	case dx == -dy:
		if dx > 0 {
			return SouthEast, true
		}
		return NorthWest, true
	default:
		return 0, false
	}
}

// IntersectsLine returns the unique intersection point of this line segment
// and other, if one exists. Parallel, collinear, and non-overlapping
// segments report false.
func (l Line) IntersectsLine(other Line) (Point, bool) {
	p := l.Start
	r := l.End.Sub(l.Start)
	q := other.Start
	s := other.End.Sub(other.Start)

	rxs := cross(r, s)
	if rxs == 0 {
		return Point{}, false
	}

	qp := q.Sub(p)
	t := float64(cross(qp, s)) / float64(rxs)
	u := float64(cross(qp, r)) / float64(rxs)

	if t < 0 || t > 1 || u < 0 || u > 1 {
		return Point{}, false
	}

	x := float64(p.X) + t*float64(r.X)
	y := float64(p.Y) + t*float64(r.Y)
	return Point{int32(math.Round(x)), int32(math.Round(y))}, true
}

func cross(a, b Point) int64 {
	return int64(a.X)*int64(b.Y) - int64(a.Y)*int64(b.X)
}

// IntersectsRect reports whether this line crosses any edge of rect.
func (l Line) IntersectsRect(rect Rect) bool {
	for _, seg := range rect.Segments() {
		if _, ok := l.IntersectsLine(seg); ok {
			return true
		}
	}
	return false
}

// VisitPoints walks every integer pixel on this line using Bresenham's
// algorithm, calling visit for each one.
func (l Line) VisitPoints(visit func(x, y int32)) {
	PlotLine(l.Start.X, l.Start.Y, l.End.X, l.End.Y, visit)
}

// Pixels returns an iterator over every integer pixel on this line.
func (l Line) Pixels() *LinePixelIterator {
	return NewLinePixelIterator(l)
}

// DistanceSquaredTo returns the squared Euclidean distance between a and b.
func DistanceSquaredTo(a, b Point) float64 {
	x := float64(b.X - a.X)
	y := float64(b.Y - a.Y)
	return math.Abs(x*x + y*y)
}

// DistanceTo returns the Euclidean distance between a and b.
func DistanceTo(a, b Point) float64 {
	return math.Sqrt(DistanceSquaredTo(a, b))
}
