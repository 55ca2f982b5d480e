// Package quadtree implements the MX-quadtree node model: Region, Quadrant,
// NodePath, PNode, and the PixelMap façade built on top of them.
package quadtree

import "pixelmap/geom"

// Quadrant identifies one of the four children of a subdivided node. The
// numeric values are load-bearing: they index PNode's children array and
// are packed two bits at a time into a NodePath.
type Quadrant uint8

const (
	BottomLeft Quadrant = iota
	BottomRight
	TopRight
	TopLeft
)

func (q Quadrant) String() string {
	switch q {
	case BottomLeft:
		return "BottomLeft"
	case BottomRight:
		return "BottomRight"
	case TopRight:
		return "TopRight"
	case TopLeft:
		return "TopLeft"
	default:
		return "Unknown"
	}
}

// QuadrantFromValue recovers a Quadrant from its packed two-bit value, as
// stored in a NodePath. Returns false for values outside 0-3.
func QuadrantFromValue(v uint8) (Quadrant, bool) {
	switch v {
	case uint8(BottomLeft):
		return BottomLeft, true
	case uint8(BottomRight):
		return BottomRight, true
	case uint8(TopRight):
		return TopRight, true
	case uint8(TopLeft):
		return TopLeft, true
	default:
		return 0, false
	}
}

// QuadrantForPoint determines which quadrant of a node a point falls into,
// given the point relative to the node's origin and the node's center offset.
func QuadrantForPoint(point geom.Point, center int32) Quadrant {
	if point.X < center {
		if point.Y >= center {
			return TopLeft
		}
		return BottomLeft
	}
	if point.Y >= center {
		return TopRight
	}
	return BottomRight
}

// Region describes the square area of pixels a node covers: an origin and
// a side length, both in unsigned grid coordinates.
type Region struct {
	X, Y, Size uint32
}

// NewRegion builds a Region with the given origin and side length.
func NewRegion(x, y, size uint32) Region {
	return Region{X: x, Y: y, Size: size}
}

// Point returns the region's origin as a signed geom.Point.
func (r Region) Point() geom.Point {
	return geom.Point{X: int32(r.X), Y: int32(r.Y)}
}

// EndPoint returns the region's last contained pixel.
func (r Region) EndPoint() geom.Point {
	return r.Point().AddScalar(int32(r.Size) - 1)
}

// Center returns half the region's side length, used to split into quadrants.
func (r Region) Center() uint32 {
	return r.Size / 2
}

// IsUnit reports whether this region is a single pixel of the given size.
func (r Region) IsUnit(pixelSize uint8) bool {
	return r.Size == uint32(pixelSize)
}

// Contains reports whether point falls within this region.
func (r Region) Contains(point geom.Point) bool {
	x := int32(r.X)
	y := int32(r.Y)
	size := int32(r.Size)
	return point.X >= x && point.X < x+size && point.Y >= y && point.Y < y+size
}

// QuadrantFor determines which of this region's four quadrants point falls
// into.
func (r Region) QuadrantFor(point geom.Point) Quadrant {
	center := int32(r.Center())
	return QuadrantForPoint(point.Sub(r.Point()), center)
}

// Rect converts this region to a geom.Rect covering the same pixels.
func (r Region) Rect() geom.Rect {
	min := r.Point()
	max := min.AddScalar(int32(r.Size))
	return geom.RectFromCorners(min, max)
}
