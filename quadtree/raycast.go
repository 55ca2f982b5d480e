package quadtree

import "pixelmap/geom"

// RayCastQuery describes a line to cast through a PixelMap.
type RayCastQuery struct {
	Line geom.Line
}

// RayCastResult reports the outcome of a ray cast.
type RayCastResult struct {
	CollisionPoint geom.Point
	Hit            bool
	Distance       float64
	Traversed      int
}

// IsHit reports whether the ray struck a node before exhausting its line.
func (r RayCastResult) IsHit() bool {
	return r.Hit
}

// rayCastContext threads the shared line iterator and traversal counter
// through a ray cast's recursive descent.
type rayCastContext struct {
	lineIter  *geom.LinePixelIterator
	traversed int
}

// RayCast is the outcome a collision-check callback returns for a leaf node
// visited during a ray cast.
type RayCast int

const (
	// RayCastContinue tells the cast to keep walking past this leaf.
	RayCastContinue RayCast = iota
	// RayCastHit tells the cast to stop, treating this leaf as a collision.
	RayCastHit
)

// rayCast walks the shared line iterator, descending into whichever child
// contains the current point, calling visitor once a leaf is reached. It
// returns false once the line leaves this node's region or is exhausted.
func (n *pnode[T]) rayCast(query RayCastQuery, ctx *rayCastContext, visitor func(*pnode[T]) RayCast) (RayCastResult, bool) {
	for {
		ctx.traversed++

		point, ok := ctx.lineIter.Peek()
		if !ok {
			return RayCastResult{}, false
		}
		if !n.region.Contains(point) {
			return RayCastResult{}, false
		}

		if n.children != nil {
			q := n.region.QuadrantFor(point)
			if result, hit := n.children[q].rayCast(query, ctx, visitor); hit {
				return result, true
			}
			continue
		}

		switch visitor(n) {
		case RayCastContinue:
			ctx.lineIter.SeekBounds(n.Region().Rect())
			continue
		case RayCastHit:
			distance := geom.DistanceTo(query.Line.Start, point)
			return RayCastResult{
				CollisionPoint: point,
				Hit:            true,
				Distance:       distance,
				Traversed:      ctx.traversed,
			}, true
		default:
			return RayCastResult{}, false
		}
	}
}
