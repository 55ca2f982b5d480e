package quadtree

import "pixelmap/geom"

// NeighborOrientation tags a pair of adjacent leaves returned by
// VisitNeighborPairs with which axis they sit across.
type NeighborOrientation int

const (
	// Horizontal pairs sit side by side (left/right).
	Horizontal NeighborOrientation = iota
	// Vertical pairs sit one above the other (bottom/top).
	Vertical
)

func (o NeighborOrientation) String() string {
	if o == Vertical {
		return "Vertical"
	}
	return "Horizontal"
}

// intersectOrEmpty returns the overlap of a and b, which may itself be an
// empty (zero-width or zero-height) rectangle if they don't actually
// overlap, rather than reporting failure.
func intersectOrEmpty(a, b geom.Rect) geom.Rect {
	result := geom.Rect{Min: a.Min.Max(b.Min), Max: a.Max.Min(b.Max)}
	result.Min = result.Min.Min(result.Max)
	return result
}

// rectOuterEdge returns the strip of unit width/height directly outside
// rect's edge in direction. Returns false for a direction that would cross
// the map's minimum edge (no wraparound neighbors).
func rectOuterEdge(rect geom.Rect, direction geom.Direction) (geom.Rect, bool) {
	switch direction {
	case geom.North:
		return geom.Rect{
			Min: geom.Point{X: rect.Min.X, Y: rect.Max.Y},
			Max: geom.Point{X: rect.Max.X, Y: rect.Max.Y + 1},
		}, true
	case geom.NorthEast:
		return geom.Rect{Min: rect.Max, Max: rect.Max.AddScalar(1)}, true
	case geom.East:
		return geom.Rect{
			Min: geom.Point{X: rect.Max.X, Y: rect.Min.Y},
			Max: geom.Point{X: rect.Max.X + 1, Y: rect.Max.Y},
		}, true
	case geom.SouthEast:
		if rect.Min.Y == 0 {
			return geom.Rect{}, false
		}
		return geom.Rect{
			Min: geom.Point{X: rect.Max.X, Y: rect.Min.Y - 1},
			Max: geom.Point{X: rect.Max.X + 1, Y: rect.Min.Y},
		}, true
	case geom.South:
		if rect.Min.Y == 0 {
			return geom.Rect{}, false
		}
		return geom.Rect{
			Min: geom.Point{X: rect.Min.X, Y: rect.Min.Y - 1},
			Max: geom.Point{X: rect.Max.X, Y: rect.Min.Y},
		}, true
	case geom.SouthWest:
		if rect.Min.X == 0 || rect.Min.Y == 0 {
			return geom.Rect{}, false
		}
		return geom.Rect{
			Min: geom.Point{X: rect.Min.X - 1, Y: rect.Min.Y - 1},
			Max: rect.Min,
		}, true
	case geom.West:
		if rect.Min.X == 0 {
			return geom.Rect{}, false
		}
		return geom.Rect{
			Min: geom.Point{X: rect.Min.X - 1, Y: rect.Min.Y},
			Max: geom.Point{X: rect.Min.X, Y: rect.Max.Y},
		}, true
	case geom.NorthWest:
		if rect.Min.X == 0 {
			return geom.Rect{}, false
		}
		return geom.Rect{
			Min: geom.Point{X: rect.Min.X - 1, Y: rect.Max.Y},
			Max: geom.Point{X: rect.Min.X, Y: rect.Max.Y + 1},
		}, true
	default:
		return geom.Rect{}, false
	}
}

// VisitNeighbors visits leaf nodes adjacent to nodeRegion on the edge or
// corner given by direction, within rect, that satisfy predicate.
func (pm *PixelMap[T]) VisitNeighbors(
	rect geom.Rect,
	nodeRegion Region,
	direction geom.Direction,
	predicate func(region Region, value T, subRect geom.Rect) bool,
	visitor func(region Region, value T, subRect geom.Rect),
) {
	bounded := intersectOrEmpty(rect, nodeRegion.Rect())

	neighborRect, ok := rectOuterEdge(bounded, direction)
	if !ok {
		return
	}

	traversed := 0
	pm.root.visitLeavesInRect(neighborRect, func(n *pnode[T], subRect geom.Rect) {
		if predicate(n.Region(), n.Value(), subRect) {
			visitor(n.Region(), n.Value(), subRect)
		}
	}, &traversed)
}

// VisitAllNeighbors visits leaf nodes adjacent to nodeRegion in all eight
// compass directions.
func (pm *PixelMap[T]) VisitAllNeighbors(
	rect geom.Rect,
	nodeRegion Region,
	predicate func(region Region, value T, subRect geom.Rect) bool,
	visitor func(region Region, value T, subRect geom.Rect),
) {
	for _, d := range geom.AllDirections() {
		pm.VisitNeighbors(rect, nodeRegion, d, predicate, visitor)
	}
}

// VisitDiagonalNeighbors visits leaf nodes adjacent to nodeRegion at its
// four corners.
func (pm *PixelMap[T]) VisitDiagonalNeighbors(
	rect geom.Rect,
	nodeRegion Region,
	predicate func(region Region, value T, subRect geom.Rect) bool,
	visitor func(region Region, value T, subRect geom.Rect),
) {
	for _, d := range geom.DiagonalDirections() {
		pm.VisitNeighbors(rect, nodeRegion, d, predicate, visitor)
	}
}

// VisitCardinalNeighbors visits leaf nodes adjacent to nodeRegion on its
// four edges.
func (pm *PixelMap[T]) VisitCardinalNeighbors(
	rect geom.Rect,
	nodeRegion Region,
	predicate func(region Region, value T, subRect geom.Rect) bool,
	visitor func(region Region, value T, subRect geom.Rect),
) {
	for _, d := range geom.CardinalDirections() {
		pm.VisitNeighbors(rect, nodeRegion, d, predicate, visitor)
	}
}

// VisitNeighborPairs visits every pair of adjacent leaves within rect
// exactly once, tagged with the orientation of their shared face.
func (pm *PixelMap[T]) VisitNeighborPairs(
	rect geom.Rect,
	visitor func(orientation NeighborOrientation, aRegion Region, aValue T, aRect geom.Rect, bRegion Region, bValue T, bRect geom.Rect),
) {
	subRect := intersectOrEmpty(pm.root.Region().Rect(), rect)
	if subRect.IsEmpty() {
		return
	}
	pm.root.visitNeighborPairsFace(subRect, visitor)
}

// childOrSelf returns n's child in quadrant q, or n itself if n is a leaf.
func childOrSelf[T comparable](n *pnode[T], q Quadrant) *pnode[T] {
	if n.children != nil {
		return n.children[q]
	}
	return n
}

// visitNeighborPairsFace enumerates adjacent leaf pairs formed at this
// node's own subdivision, then recurses into each child for pairs formed
// deeper in the tree.
func (n *pnode[T]) visitNeighborPairsFace(
	rect geom.Rect,
	visitor func(orientation NeighborOrientation, aRegion Region, aValue T, aRect geom.Rect, bRegion Region, bValue T, bRect geom.Rect),
) {
	if n.children == nil {
		return
	}

	visitFacePair(n.children[BottomLeft], n.children[BottomRight], Horizontal, rect, visitor)
	visitFacePair(n.children[TopLeft], n.children[TopRight], Horizontal, rect, visitor)
	visitFacePair(n.children[BottomLeft], n.children[TopLeft], Vertical, rect, visitor)
	visitFacePair(n.children[BottomRight], n.children[TopRight], Vertical, rect, visitor)

	for _, c := range n.children {
		c.visitNeighborPairsFace(rect, visitor)
	}
}

// visitFacePair visits the leaf pairs along the shared face of a and b,
// descending into whichever side still has children until both sides are
// leaves.
func visitFacePair[T comparable](
	a, b *pnode[T],
	orientation NeighborOrientation,
	rect geom.Rect,
	visitor func(orientation NeighborOrientation, aRegion Region, aValue T, aRect geom.Rect, bRegion Region, bValue T, bRect geom.Rect),
) {
	if a.IsLeaf() && b.IsLeaf() {
		aRect, aOK := a.Region().Rect().Intersection(rect)
		bRect, bOK := b.Region().Rect().Intersection(rect)
		if aOK && bOK {
			visitor(orientation, a.Region(), a.Value(), aRect, b.Region(), b.Value(), bRect)
		}
		return
	}

	if orientation == Horizontal {
		visitFacePair(childOrSelf(a, BottomRight), childOrSelf(b, BottomLeft), Horizontal, rect, visitor)
		visitFacePair(childOrSelf(a, TopRight), childOrSelf(b, TopLeft), Horizontal, rect, visitor)
	} else {
		visitFacePair(childOrSelf(a, TopLeft), childOrSelf(b, BottomLeft), Vertical, rect, visitor)
		visitFacePair(childOrSelf(a, TopRight), childOrSelf(b, BottomRight), Vertical, rect, visitor)
	}
}
