package quadtree

import "pixelmap/geom"

// pnode is a node of a PixelMap quad tree: either a leaf holding a single
// value, or an interior node with exactly four children.
type pnode[T comparable] struct {
	region   Region
	value    T
	children *[4]*pnode[T]
	dirty    bool
}

func newPNode[T comparable](region Region, value T, dirty bool) *pnode[T] {
	return &pnode[T]{region: region, value: value, dirty: dirty}
}

// newPNodeWithChildren builds an interior node whose region is the union of
// its four children's regions. Panics if that union is not itself square.
func newPNodeWithChildren[T comparable](value T, children [4]*pnode[T], dirty bool) *pnode[T] {
	rect := children[0].region.Rect()
	for _, c := range children[1:] {
		rect = rect.Union(c.region.Rect())
	}
	if rect.Width() != rect.Height() {
		panic("quadtree: children do not form a square region")
	}
	region := NewRegion(uint32(rect.X()), uint32(rect.Y()), rect.Width())
	return &pnode[T]{region: region, value: value, children: &children, dirty: dirty}
}

// Region returns the region this node covers.
func (n *pnode[T]) Region() Region {
	return n.region
}

// Dirty reports whether this node has been modified since it was last
// cleared.
func (n *pnode[T]) Dirty() bool {
	return n.dirty
}

// ClearDirty resets this node's dirty flag, without touching its children.
func (n *pnode[T]) ClearDirty() {
	n.dirty = false
}

// Value returns this node's value.
func (n *pnode[T]) Value() T {
	return n.value
}

// setValue replaces this node's value, discarding any children, and marks
// it dirty.
func (n *pnode[T]) setValue(value T) {
	n.dirty = true
	n.value = value
	n.children = nil
}

// Children returns this node's four children, or false if it is a leaf.
func (n *pnode[T]) Children() (*[4]*pnode[T], bool) {
	return n.children, n.children != nil
}

// Child returns the child in the given quadrant, or false if this node is
// a leaf.
func (n *pnode[T]) Child(q Quadrant) (*pnode[T], bool) {
	if n.children == nil {
		return nil, false
	}
	return n.children[q], true
}

// takeChildren removes and returns this node's children, making it a leaf,
// and marks it dirty.
func (n *pnode[T]) takeChildren() (*[4]*pnode[T], bool) {
	children := n.children
	n.children = nil
	n.dirty = true
	return children, children != nil
}

// IsLeaf reports whether this node has no children.
func (n *pnode[T]) IsLeaf() bool {
	return n.children == nil
}

// IsLeafParent reports whether every immediate child of this node is itself
// a leaf.
func (n *pnode[T]) IsLeafParent() bool {
	if n.children == nil {
		return false
	}
	for _, c := range n.children {
		if !c.IsLeaf() {
			return false
		}
	}
	return true
}

// visitNodes visits this node and, recursively, every descendant.
func (n *pnode[T]) visitNodes(visit func(*pnode[T])) {
	visit(n)
	if n.children != nil {
		for _, c := range n.children {
			c.visitNodes(visit)
		}
	}
}

// visitLeaves visits only this node's descendant leaves (or this node
// itself, if it is already a leaf).
func (n *pnode[T]) visitLeaves(visit func(*pnode[T])) {
	if n.children != nil {
		for _, c := range n.children {
			c.visitLeaves(visit)
		}
	} else {
		visit(n)
	}
}

// visitLeavesInRect visits every leaf whose region intersects rect, passing
// the intersection of the leaf's region and rect to visit.
func (n *pnode[T]) visitLeavesInRect(rect geom.Rect, visit func(*pnode[T], geom.Rect), traversed *int) {
	*traversed++

	myRect := n.region.Rect()
	subRect, ok := myRect.Intersection(rect)
	if !ok {
		return
	}

	if n.children != nil {
		for _, c := range n.children {
			c.visitLeavesInRect(rect, visit, traversed)
		}
	} else {
		visit(n, subRect)
	}
}

// anyLeavesInRect reports whether any leaf intersecting rect satisfies f.
// Returns false (not true/false) when this node's region doesn't intersect
// rect at all.
func (n *pnode[T]) anyLeavesInRect(rect geom.Rect, f func(*pnode[T], geom.Rect) bool) (bool, bool) {
	myRect := n.region.Rect()
	subRect, ok := myRect.Intersection(rect)
	if !ok {
		return false, false
	}

	if n.children != nil {
		for _, c := range n.children {
			if hit, has := c.anyLeavesInRect(rect, f); has && hit {
				return true, true
			}
		}
	} else if f(n, subRect) {
		return true, true
	}
	return false, true
}

// allLeavesInRect reports whether every leaf intersecting rect satisfies f.
// Returns false (not true/false) when this node's region doesn't intersect
// rect at all.
func (n *pnode[T]) allLeavesInRect(rect geom.Rect, f func(*pnode[T], geom.Rect) bool) (bool, bool) {
	myRect := n.region.Rect()
	subRect, ok := myRect.Intersection(rect)
	if !ok {
		return false, false
	}

	if n.children != nil {
		for _, c := range n.children {
			if pass, has := c.allLeavesInRect(rect, f); has && !pass {
				return false, true
			}
		}
	} else if !f(n, subRect) {
		return false, true
	}
	return true, true
}

// visitDirtyLeaves visits every dirty leaf beneath this node, stopping
// descent as soon as a subtree is found clean.
func (n *pnode[T]) visitDirtyLeaves(visit func(*pnode[T]), traversed *int) {
	*traversed++

	if !n.dirty {
		return
	}
	if n.children != nil {
		for _, c := range n.children {
			c.visitDirtyLeaves(visit, traversed)
		}
	} else {
		visit(n)
	}
}

// drainDirtyLeaves visits and clears every dirty leaf beneath this node,
// clearing the dirty flag of every node it descends through along the way.
func (n *pnode[T]) drainDirtyLeaves(visit func(*pnode[T]), traversed *int) {
	*traversed++

	if !n.dirty {
		return
	}
	n.ClearDirty()
	if n.children != nil {
		for _, c := range n.children {
			c.drainDirtyLeaves(visit, traversed)
		}
	} else {
		visit(n)
	}
}

// findNode returns the leaf node containing point. The caller must ensure
// point lies within this node's region.
func (n *pnode[T]) findNode(point geom.Point, traversed *int) *pnode[T] {
	*traversed++
	if n.children != nil {
		q := n.region.QuadrantFor(point)
		return n.children[q].findNode(point, traversed)
	}
	return n
}

// setPixel sets the value of the unit pixel at point, subdividing and
// decimating as needed. Returns false if point is outside this node.
func (n *pnode[T]) setPixel(point geom.Point, pixelSize uint8, value T) bool {
	if !n.region.Contains(point) {
		return false
	}
	if n.region.IsUnit(pixelSize) {
		n.setValue(value)
	} else {
		n.subdivide()
		q := n.region.QuadrantFor(point)
		n.children[q].setPixel(point, pixelSize, value)
		n.decimate()
		n.recalcDirty()
	}
	return true
}

// drawRect sets the value of every pixel within rect that overlaps this
// node's region.
func (n *pnode[T]) drawRect(rect geom.Rect, pixelSize uint8, value T) {
	if n.containedByRect(rect) {
		n.setValue(value)
		return
	}
	subRect, ok := rect.Intersection(n.region.Rect())
	if !ok {
		return
	}
	if n.region.IsUnit(pixelSize) {
		n.setValue(value)
		return
	}
	n.subdivide()
	for _, c := range n.children {
		c.drawRect(subRect, pixelSize, value)
	}
	n.decimate()
	n.recalcDirty()
}

// drawCircle sets the value of every pixel within circle that overlaps
// this node's region.
func (n *pnode[T]) drawCircle(circle geom.Circle, pixelSize uint8, value T) {
	outerAABB := circle.AABB()
	innerRect := circle.InnerRect()
	if n.containedByRect(innerRect) {
		n.setValue(value)
		return
	}
	outerAABB, ok := outerAABB.Intersection(n.region.Rect())
	if !ok {
		return
	}
	n.drawRect(innerRect, pixelSize, value)

	it := circle.Pixels()
	for {
		p, more := it.Next()
		if !more {
			break
		}
		if !outerAABB.Contains(p) {
			continue
		}
		if innerRect.Contains(p) {
			continue
		}
		n.setPixel(p, pixelSize, value)
	}
}

// containedByRect reports whether this node's entire region lies within rect.
func (n *pnode[T]) containedByRect(rect geom.Rect) bool {
	return rect.Contains(n.region.Point()) && rect.Contains(n.region.EndPoint())
}

// subdivide splits a leaf into four equal quadrants, each inheriting this
// node's current value and dirty flag. A no-op on interior nodes.
func (n *pnode[T]) subdivide() {
	if n.children != nil {
		return
	}

	x := n.region.X
	y := n.region.Y
	half := n.region.Center()

	n.children = &[4]*pnode[T]{
		newPNode(NewRegion(x, y, half), n.value, n.dirty),
		newPNode(NewRegion(x+half, y, half), n.value, n.dirty),
		newPNode(NewRegion(x+half, y+half, half), n.value, n.dirty),
		newPNode(NewRegion(x, y+half, half), n.value, n.dirty),
	}
}

// decimate collapses this node's four children back into a leaf if they are
// all leaves sharing the same value.
func (n *pnode[T]) decimate() {
	if !n.IsLeafParent() {
		return
	}

	first := n.children[0].value
	for _, c := range n.children[1:] {
		if c.value != first {
			return
		}
	}
	n.setValue(first)
}

// recalcDirty sets this node's dirty flag to the logical OR of its
// children's dirty flags. A no-op on leaves.
func (n *pnode[T]) recalcDirty() {
	if n.children == nil {
		return
	}
	dirty := false
	for _, c := range n.children {
		if c.dirty {
			dirty = true
			break
		}
	}
	n.dirty = dirty
}
