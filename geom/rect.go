package geom

import "math"

// Rect is an axis-aligned rectangle defined by a minimum and maximum point,
// in integer coordinates. The minimum is inclusive on both axes; the maximum
// is exclusive on both axes (see LeftBounds/RightBounds/TopBounds/BottomBounds).
type Rect struct {
	Min, Max Point
}

// ZeroRect is the degenerate rectangle at the origin.
var ZeroRect = Rect{}

// NewRect builds a rectangle from raw corner coordinates, normalizing them.
func NewRect(x0, y0, x1, y1 int32) Rect {
	return RectFromCorners(Point{x0, y0}, Point{x1, y1})
}

// RectFromCorners builds a rectangle from two corner points, normalizing
// so min is the bottom-left corner and max is the top-right corner.
func RectFromCorners(a, b Point) Rect {
	return Rect{Min: a.Min(b), Max: a.Max(b)}
}

// RectCenteredAt builds a rectangle centered on point, reaching width/2 and
// height/2 (integer division) to each side of it, so an odd width or height
// above 1 comes out one pixel smaller. A width or height of 0 or 1 instead
// gives a rectangle that starts at point and extends by width and height.
func RectCenteredAt(point Point, width, height uint32) Rect {
	if width <= 1 || height <= 1 {
		return Rect{Min: point, Max: point.Add(Point{int32(width), int32(height)})}
	}
	widthHalf := int32(width) / 2
	heightHalf := int32(height) / 2
	min := point.Sub(Point{widthHalf, heightHalf})
	max := point.Add(Point{widthHalf, heightHalf})
	return RectFromCorners(min, max)
}

// IsZero reports whether min equals max on both axes.
func (r Rect) IsZero() bool {
	return r.Min.X == r.Max.X && r.Min.Y == r.Max.Y
}

// IsEmpty reports whether this rectangle has zero area.
func (r Rect) IsEmpty() bool {
	return r.Min.X == r.Max.X || r.Min.Y == r.Max.Y
}

func (r Rect) X() int32 { return r.Min.X }
func (r Rect) Y() int32 { return r.Min.Y }

func (r Rect) Center() Point {
	return r.Min.Add(Point{r.Max.X / 2, r.Max.Y / 2})
}

func (r Rect) Width() uint32  { return uint32(r.Max.X - r.Min.X) }
func (r Rect) Height() uint32 { return uint32(r.Max.Y - r.Min.Y) }
func (r Rect) Size() Point    { return r.Max.Sub(r.Min) }

// LeftBounds returns the inclusive left edge.
func (r Rect) LeftBounds() int32 { return r.Min.X }

// RightBounds returns the inclusive right edge (Max.X - 1).
func (r Rect) RightBounds() int32 { return r.Max.X - 1 }

// TopBounds returns the inclusive top edge (Max.Y - 1).
func (r Rect) TopBounds() int32 { return r.Max.Y - 1 }

// BottomBounds returns the inclusive bottom edge.
func (r Rect) BottomBounds() int32 { return r.Min.Y }

// Inclusive returns a rectangle with the same origin whose max point is
// pushed out by one, so the top and right edges are treated inclusively.
func (r Rect) Inclusive() Rect {
	return Rect{Min: r.Min, Max: r.Max.Add(One)}
}

// Grow returns a rectangle expanded in all directions by amount.
func (r Rect) Grow(amount int32) Rect {
	return Rect{Min: r.Min.SubScalar(amount), Max: r.Max.AddScalar(amount)}
}

// Contains reports whether point lies within this rectangle's bounds.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.LeftBounds() && p.X <= r.RightBounds() &&
		p.Y <= r.TopBounds() && p.Y >= r.BottomBounds()
}

// DistanceSquaredTo returns the squared distance from the nearest edge of
// this rectangle to point, or 0 if point is contained.
func (r Rect) DistanceSquaredTo(p Point) float64 {
	if r.Contains(p) {
		return 0
	}
	var dx, dy int32
	switch {
	case p.X < r.Min.X:
		dx = r.Min.X - p.X
	case p.X > r.Max.X:
		dx = p.X - r.Max.X
	}
	switch {
	case p.Y < r.Min.Y:
		dy = r.Min.Y - p.Y
	case p.Y > r.Max.Y:
		dy = p.Y - r.Max.Y
	}
	return float64(dx*dx + dy*dy)
}

// DistanceTo returns the distance from the nearest edge of this rectangle
// to point, or 0 if point is contained.
func (r Rect) DistanceTo(p Point) float64 {
	return math.Sqrt(r.DistanceSquaredTo(p))
}

// ContainsRect reports whether this rectangle fully contains other.
func (r Rect) ContainsRect(other Rect) bool {
	return other.Min.X >= r.Min.X && other.Min.Y >= r.Min.Y &&
		other.Max.X <= r.Max.X && other.Max.Y <= r.Max.Y
}

// IntersectsRect reports whether this rectangle overlaps other.
func (r Rect) IntersectsRect(other Rect) bool {
	if r.RightBounds() < other.LeftBounds() || r.LeftBounds() > other.RightBounds() {
		return false
	}
	if r.TopBounds() < other.BottomBounds() || r.BottomBounds() > other.TopBounds() {
		return false
	}
	return true
}

// Union returns the smallest rectangle encompassing both r and other.
func (r Rect) Union(other Rect) Rect {
	return Rect{Min: r.Min.Min(other.Min), Max: r.Max.Max(other.Max)}
}

// UnionPoint returns the smallest rectangle encompassing both r and point.
func (r Rect) UnionPoint(point Point) Rect {
	return Rect{Min: r.Min.Min(point), Max: r.Max.Max(point)}
}

// Intersection returns the overlap between r and other, or false if they
// do not overlap.
func (r Rect) Intersection(other Rect) (Rect, bool) {
	result := Rect{Min: r.Min.Max(other.Min), Max: r.Max.Min(other.Max)}
	result.Min = result.Min.Min(result.Max)
	if result.IsEmpty() {
		return Rect{}, false
	}
	return result, true
}

// Segments returns the four edges of this rectangle, starting at Min and
// proceeding counter-clockwise.
func (r Rect) Segments() [4]Line {
	width := r.Max.X - r.Min.X
	height := r.Max.Y - r.Min.Y
	return [4]Line{
		NewLine(r.Min, r.Min.Add(Point{width, 0})),
		NewLine(r.Min.Add(Point{width, 0}), r.Max),
		NewLine(r.Max, r.Min.Add(Point{0, height})),
		NewLine(r.Min.Add(Point{0, height}), r.Min),
	}
}

// AppendTrimeshData appends two triangles' worth of vertices and indices
// describing this rectangle as a quad, offset by offset.
func (r Rect) AppendTrimeshData(vertices *[]Point, indices *[]uint32, offset Point) {
	index := uint32(len(*vertices))
	*vertices = append(*vertices,
		r.Min.Add(offset),
		Point{r.Max.X, r.Min.Y}.Add(offset),
		r.Max.Add(offset),
		Point{r.Min.X, r.Max.Y}.Add(offset),
	)
	*indices = append(*indices, index, index+1, index+2, index, index+2, index+3)
}

// AppendPolylineData appends the four edges of this rectangle as vertex
// pairs, offset by offset.
func (r Rect) AppendPolylineData(vertices *[]Point, indices *[][2]uint32, offset Point) {
	index := uint32(len(*vertices))
	*vertices = append(*vertices,
		r.Min.Add(offset),
		Point{r.Max.X, r.Min.Y}.Add(offset),
		r.Max.Add(offset),
		Point{r.Min.X, r.Max.Y}.Add(offset),
	)
	*indices = append(*indices,
		[2]uint32{index, index + 1},
		[2]uint32{index + 1, index + 2},
		[2]uint32{index + 2, index + 3},
		[2]uint32{index + 3, index},
	)
}

// Pixels returns an iterator over every integer pixel inside this rectangle.
func (r Rect) Pixels() *RectPixelIterator {
	return NewRectPixelIterator(r)
}

// RectPixelIterator walks every pixel of a Rect in row-major order.
type RectPixelIterator struct {
	rect Rect
	x, y int32
}

func NewRectPixelIterator(rect Rect) *RectPixelIterator {
	return &RectPixelIterator{rect: rect, x: rect.X(), y: rect.Y()}
}

// Next returns the next pixel in the rectangle, or false once exhausted.
func (it *RectPixelIterator) Next() (Point, bool) {
	for {
		if it.x < it.rect.Max.X {
			x := it.x
			it.x++
			return Point{x, it.y}, true
		}
		if it.y < it.rect.Max.Y-1 {
			it.x = it.rect.Min.X
			it.y++
			continue
		}
		return Point{}, false
	}
}
