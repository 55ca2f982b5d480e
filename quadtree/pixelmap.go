package quadtree

import "pixelmap/geom"

// PixelMap is a map of pixels backed by an MX-quadtree. T is the type of
// pixel data; a bool is the common choice, denoting on/off, but any
// comparable type (e.g. a color) works.
type PixelMap[T comparable] struct {
	root      *pnode[T]
	pixelSize uint8
}

// NewPixelMap builds a PixelMap covering region, with every pixel initially
// set to value. pixelSize must be a power of two and is the smallest
// divisible unit this map will subdivide down to.
func NewPixelMap[T comparable](region Region, value T, pixelSize uint8) *PixelMap[T] {
	if pixelSize == 0 || pixelSize&(pixelSize-1) != 0 {
		panic("quadtree: pixel size must be a power of two")
	}
	return &PixelMap[T]{
		root:      newPNode(region, value, true),
		pixelSize: pixelSize,
	}
}

// PixelSize returns the smallest region size this map will subdivide down to.
func (pm *PixelMap[T]) PixelSize() uint8 {
	return pm.pixelSize
}

// Region returns the region this map covers.
func (pm *PixelMap[T]) Region() Region {
	return pm.root.Region()
}

// Clear discards all pixel data and sets the whole map to value.
func (pm *PixelMap[T]) Clear(value T) {
	pm.root.setValue(value)
}

// GetPixel returns the value at point, or false if point is outside this
// map's region.
func (pm *PixelMap[T]) GetPixel(point geom.Point) (T, bool) {
	if !pm.root.Region().Contains(point) {
		var zero T
		return zero, false
	}
	traversed := 0
	return pm.root.findNode(point, &traversed).Value(), true
}

// SetPixel sets the value at point. Returns false if point is outside this
// map's region.
func (pm *PixelMap[T]) SetPixel(point geom.Point, value T) bool {
	return pm.root.setPixel(point, pm.pixelSize, value)
}

// DrawRect sets the value of every pixel within rect. Returns false if rect
// does not overlap this map's region.
func (pm *PixelMap[T]) DrawRect(rect geom.Rect, value T) bool {
	if !rect.IntersectsRect(pm.root.Region().Rect()) {
		return false
	}
	pm.root.drawRect(rect, pm.pixelSize, value)
	return true
}

// DrawCircle sets the value of every pixel within circle. Returns false if
// the circle's bounding box does not overlap this map's region.
func (pm *PixelMap[T]) DrawCircle(circle geom.Circle, value T) bool {
	if !circle.AABB().IntersectsRect(pm.root.Region().Rect()) {
		return false
	}
	pm.root.drawCircle(circle, pm.pixelSize, value)
	return true
}

// Visit visits every leaf node, in pre-order.
func (pm *PixelMap[T]) Visit(visitor func(region Region, value T)) {
	pm.root.visitLeaves(func(n *pnode[T]) {
		visitor(n.Region(), n.Value())
	})
}

// VisitInRect visits every leaf node overlapping rect, passing the
// intersection of the leaf's region and rect. Returns the number of nodes
// traversed.
func (pm *PixelMap[T]) VisitInRect(rect geom.Rect, visitor func(region Region, value T, subRect geom.Rect)) int {
	traversed := 0
	pm.root.visitLeavesInRect(rect, func(n *pnode[T], subRect geom.Rect) {
		visitor(n.Region(), n.Value(), subRect)
	}, &traversed)
	return traversed
}

// AnyInRect reports whether any leaf node overlapping rect satisfies f. The
// second return is false if rect does not overlap this map's region.
func (pm *PixelMap[T]) AnyInRect(rect geom.Rect, f func(region Region, value T, subRect geom.Rect) bool) (bool, bool) {
	return pm.root.anyLeavesInRect(rect, func(n *pnode[T], subRect geom.Rect) bool {
		return f(n.Region(), n.Value(), subRect)
	})
}

// AllInRect reports whether every leaf node overlapping rect satisfies f.
// The second return is false if rect does not overlap this map's region.
func (pm *PixelMap[T]) AllInRect(rect geom.Rect, f func(region Region, value T, subRect geom.Rect) bool) (bool, bool) {
	return pm.root.allLeavesInRect(rect, func(n *pnode[T], subRect geom.Rect) bool {
		return f(n.Region(), n.Value(), subRect)
	})
}

// VisitDirty visits every dirty leaf node without clearing dirty status.
// Returns the number of nodes traversed.
func (pm *PixelMap[T]) VisitDirty(visitor func(region Region, value T)) int {
	traversed := 0
	pm.root.visitDirtyLeaves(func(n *pnode[T]) {
		visitor(n.Region(), n.Value())
	}, &traversed)
	return traversed
}

// DrainDirty visits every dirty leaf node and clears dirty status along the
// way. Returns the number of nodes traversed.
func (pm *PixelMap[T]) DrainDirty(visitor func(region Region, value T)) int {
	traversed := 0
	pm.root.drainDirtyLeaves(func(n *pnode[T]) {
		visitor(n.Region(), n.Value())
	}, &traversed)
	return traversed
}

// ClearDirty clears the root node's dirty flag only, not its descendants'.
func (pm *PixelMap[T]) ClearDirty() {
	pm.root.ClearDirty()
}

// TrimeshInRect builds a triangle mesh (vertices + triangle indices) for
// every leaf overlapping rect that satisfies predicate, offset by offset.
func (pm *PixelMap[T]) TrimeshInRect(rect geom.Rect, offset geom.Point, predicate func(region Region, value T, subRect geom.Rect) bool) ([]geom.Point, []uint32) {
	vertices := make([]geom.Point, 0, 1024)
	indices := make([]uint32, 0, 1024)
	pm.VisitInRect(rect, func(region Region, value T, subRect geom.Rect) {
		if predicate(region, value, subRect) {
			subRect.AppendTrimeshData(&vertices, &indices, offset)
		}
	})
	return vertices, indices
}

// PolylinesInRect builds the polyline edges (vertices + segment indices) of
// every leaf overlapping rect that satisfies predicate, offset by offset.
func (pm *PixelMap[T]) PolylinesInRect(rect geom.Rect, offset geom.Point, predicate func(region Region, value T, subRect geom.Rect) bool) ([]geom.Point, [][2]uint32) {
	vertices := make([]geom.Point, 0, 1024)
	indices := make([][2]uint32, 0, 1024)
	pm.VisitInRect(rect, func(region Region, value T, subRect geom.Rect) {
		if predicate(region, value, subRect) {
			subRect.AppendPolylineData(&vertices, &indices, offset)
		}
	})
	return vertices, indices
}

// RayCast walks every leaf node overlapping query's line, calling
// collisionCheck for each one to decide whether to continue or stop.
func (pm *PixelMap[T]) RayCast(query RayCastQuery, collisionCheck func(region Region, value T) RayCast) RayCastResult {
	ctx := &rayCastContext{
		lineIter: query.Line.Pixels(),
	}
	if result, ok := pm.root.rayCast(query, ctx, func(n *pnode[T]) RayCast {
		return collisionCheck(n.Region(), n.Value())
	}); ok {
		return result
	}
	return RayCastResult{Traversed: ctx.traversed}
}

// Stats reports node/leaf/unit-leaf counts for this map's current tree.
type Stats struct {
	NodeCount int
	LeafCount int
	UnitCount int
}

// Stats traverses the tree and tallies Stats.
func (pm *PixelMap[T]) Stats() Stats {
	var stats Stats
	pm.root.visitNodes(func(n *pnode[T]) {
		stats.NodeCount++
		if n.IsLeaf() {
			stats.LeafCount++
			if n.Region().IsUnit(pm.pixelSize) {
				stats.UnitCount++
			}
		}
	})
	return stats
}

// Combine merges other into pm using combiner to decide the resulting value
// of each overlapping pixel. other is sampled at an offset from pm's
// coordinate space. Leaves are snapshotted in a read pass before any
// mutation, so combine never reads from a tree it is simultaneously
// rewriting.
func (pm *PixelMap[T]) Combine(other *PixelMap[T], offset geom.Point, combiner func(a, b T) T) {
	type update struct {
		rect  geom.Rect
		value T
	}
	var updates []update

	pm.Visit(func(region Region, value T) {
		regionRect := region.Rect()
		regionRect = geom.Rect{Min: regionRect.Min.Add(offset), Max: regionRect.Max.Add(offset)}
		other.VisitInRect(regionRect, func(_ Region, otherValue T, subRect geom.Rect) {
			merged := combiner(value, otherValue)
			shifted := geom.Rect{Min: subRect.Min.Sub(offset), Max: subRect.Max.Sub(offset)}
			updates = append(updates, update{rect: shifted, value: merged})
		})
	})

	for _, u := range updates {
		pm.DrawRect(u.rect, u.value)
	}
}

// Split takes this map's four top-level quadrant subtrees and returns them
// as separate maps, indexed by Quadrant. Returns false if the root node is
// a leaf.
func (pm *PixelMap[T]) Split() ([4]*PixelMap[T], bool) {
	children, ok := pm.root.takeChildren()
	if !ok {
		return [4]*PixelMap[T]{}, false
	}
	var result [4]*PixelMap[T]
	for i, c := range children {
		result[i] = &PixelMap[T]{root: c, pixelSize: pm.pixelSize}
	}
	return result, true
}

// Join combines four quadrant maps, indexed by Quadrant, into a single map
// covering their union. Panics if they don't share a pixel size, or if
// their regions don't form a square with no gaps or overlap.
func Join[T comparable](quads [4]*PixelMap[T]) *PixelMap[T] {
	pixelSize := quads[0].pixelSize
	dirty := false
	for _, pm := range quads {
		if pm.pixelSize != pixelSize {
			panic("quadtree: cannot join maps with different pixel sizes")
		}
		dirty = dirty || pm.root.Dirty()
	}

	children := [4]*pnode[T]{quads[0].root, quads[1].root, quads[2].root, quads[3].root}
	root := newPNodeWithChildren(quads[0].root.Value(), children, dirty)

	x, y, half := root.region.X, root.region.Y, root.region.Size/2
	expected := [4]Region{
		NewRegion(x, y, half),
		NewRegion(x+half, y, half),
		NewRegion(x+half, y+half, half),
		NewRegion(x, y+half, half),
	}
	for i, c := range children {
		if c.region != expected[i] {
			panic("quadtree: cannot join maps that are not the four quadrants of a square")
		}
	}

	return &PixelMap[T]{root: root, pixelSize: pixelSize}
}
