package quadtree

import (
	"container/heap"
	"math"

	"pixelmap/geom"
)

// cellForPoint returns the grid-aligned cell of the given size containing
// point.
func cellForPoint(point geom.Point, gridSize uint32) geom.Rect {
	size := int32(gridSize)
	min := geom.Point{X: (point.X / size) * size, Y: (point.Y / size) * size}
	max := min.AddScalar(size)
	return geom.RectFromCorners(min, max)
}

// cellNeighbor returns the cell adjacent to cell in direction, assuming
// cell is square. Returns an empty rect if the neighbor would cross the
// grid's minimum edge.
func cellNeighbor(cell geom.Rect, direction geom.Direction) geom.Rect {
	size := int32(cell.Width())
	unit := direction.Unit()
	newMin := cell.Min.Add(geom.Point{X: unit.X * size, Y: unit.Y * size})
	if newMin.X < 0 || newMin.Y < 0 {
		return geom.Rect{}
	}
	newMax := newMin.AddScalar(size)
	return geom.RectFromCorners(newMin, newMax)
}

// directions reorders the eight compass directions, reversing the whole
// list when toggle flips and moving the last direction that produced a
// successful expansion to the front, so the search tends to keep heading
// the way it was already going.
func directions(lastSuccess geom.Direction, toggle bool) [8]geom.Direction {
	all := geom.AllDirections()

	if toggle {
		for i, j := 0, len(all)-1; i < j; i, j = i+1, j-1 {
			all[i], all[j] = all[j], all[i]
		}
	}

	if lastSuccess != all[0] {
		for i, d := range all {
			if d == lastSuccess {
				all[0], all[i] = all[i], all[0]
				break
			}
		}
	}

	return all
}

// EuclideanHeuristic is a squared-distance cost estimate suitable for
// PathfindAStarGrid. Note it returns the squared distance, not the true
// Euclidean distance, despite the name.
func EuclideanHeuristic(a, b geom.Point) uint32 {
	dx := math.Pow(float64(a.X)-float64(b.X), 2)
	dy := math.Pow(float64(a.Y)-float64(b.Y), 2)
	return uint32(math.Abs(dx + dy))
}

// smallestCostHolder is a priority queue entry ordered by estimated total
// cost, ties broken by cost so far.
type smallestCostHolder struct {
	estimatedCost uint32
	cost          uint32
	index         uint32
}

type costQueue []smallestCostHolder

func (q costQueue) Len() int { return len(q) }
func (q costQueue) Less(i, j int) bool {
	if q[i].estimatedCost != q[j].estimatedCost {
		return q[i].estimatedCost < q[j].estimatedCost
	}
	return q[i].cost < q[j].cost
}
func (q costQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }
func (q *costQueue) Push(x any)   { *q = append(*q, x.(smallestCostHolder)) }
func (q *costQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

type pathParent struct {
	parent uint32
	cost   uint32
}

const noParent = math.MaxUint32

// reversePath walks the parent chain backward from index and returns the
// cell-min path from the root to index, in forward order.
func reversePath(cellMins []geom.Point, parents []pathParent, index uint32) []geom.Point {
	var path []geom.Point
	i := index
	for {
		path = append(path, cellMins[i])
		parent := parents[i].parent
		if parent == noParent {
			break
		}
		i = parent
	}
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}
	return path
}

// PathfindAStarGrid finds a path from start to goal by A* search over a
// uniform grid of cells of gridSize, where a cell is passable only if every
// leaf overlapping it satisfies predicate. heuristic estimates the
// remaining cost between two grid-cell centers.
//
// Returns the path as a sequence of points (the centers of the cells walked,
// beginning with start's cell, followed by goal itself; just start and goal
// when both lie in the same leaf), the path's total cost, and the number of
// cells considered. The final bool is false if bounds doesn't overlap this
// map, start or goal fails predicate, or no path exists.
func (pm *PixelMap[T]) PathfindAStarGrid(
	bounds geom.Rect,
	gridSize uint32,
	start, goal geom.Point,
	heuristic func(a, b geom.Point) uint32,
	predicate func(region Region, value T, subRect geom.Rect) bool,
) ([]geom.Point, uint32, uint32, bool) {
	if gridSize < 1 {
		panic("quadtree: grid_size must be >= 1")
	}
	gridHalf := int32(gridSize / 2)

	bounds = intersectOrEmpty(bounds, pm.root.Region().Rect())
	if bounds.IsEmpty() {
		return nil, 0, 0, false
	}

	wrap := func(n *pnode[T], subRect geom.Rect) bool {
		return predicate(n.Region(), n.Value(), subRect)
	}

	traversed := 0
	startNode := pm.root.findNode(start, &traversed)
	if !predicate(startNode.Region(), startNode.Value(), intersectOrEmpty(bounds, startNode.Region().Rect())) {
		return nil, 0, 0, false
	}

	goalNode := pm.root.findNode(goal, &traversed)
	if !predicate(goalNode.Region(), goalNode.Value(), intersectOrEmpty(bounds, goalNode.Region().Rect())) {
		return nil, 0, 0, false
	}

	if startNode.Region().Contains(goal) {
		return []geom.Point{start, goal}, 0, 1, true
	}

	pq := make(costQueue, 0, 512)
	heap.Push(&pq, smallestCostHolder{estimatedCost: 0, cost: 0, index: 0})

	var cellMins []geom.Point
	var parents []pathParent
	indexOf := make(map[geom.Point]uint32)

	startCell := cellForPoint(start, gridSize)
	cellMins = append(cellMins, startCell.Min)
	parents = append(parents, pathParent{parent: noParent, cost: 0})
	indexOf[startCell.Min] = 0

	consideredNodes := uint32(1)
	directionToggle := false
	lastSuccessfulDirection := geom.North

	for len(pq) > 0 {
		entry := heap.Pop(&pq).(smallestCostHolder)
		cost, index := entry.cost, entry.index

		cellMin := cellMins[index]
		cellCost := parents[index].cost
		cell := geom.RectFromCorners(cellMin, cellMin.AddScalar(int32(gridSize)))

		if cell.Contains(goal) {
			path := reversePath(cellMins, parents, index)
			result := make([]geom.Point, 0, len(path)+1)
			for _, min := range path {
				result = append(result, min.AddScalar(gridHalf))
			}
			result = append(result, goal)
			return result, cost, consideredNodes, true
		}
		if cost > cellCost {
			continue
		}

		directionToggle = !directionToggle
		for _, d := range directions(lastSuccessfulDirection, directionToggle) {
			consideredNodes++

			neighborCell := cellNeighbor(cell, d)
			if neighborCell.IsEmpty() {
				continue
			}

			pass, has := pm.root.allLeavesInRect(neighborCell, wrap)
			if !has || !pass {
				continue
			}

			const moveCost = 1
			newCost := cost + moveCost

			var h uint32
			var i uint32
			if idx, ok := indexOf[neighborCell.Min]; ok {
				if parents[idx].cost > newCost {
					h = heuristic(neighborCell.Min.AddScalar(gridHalf), goal)
					i = idx
					parents[idx] = pathParent{parent: index, cost: newCost}
				} else {
					continue
				}
			} else {
				h = heuristic(neighborCell.Min.AddScalar(gridHalf), goal)
				i = uint32(len(cellMins))
				cellMins = append(cellMins, neighborCell.Min)
				parents = append(parents, pathParent{parent: index, cost: newCost})
				indexOf[neighborCell.Min] = i
			}

			lastSuccessfulDirection = d
			heap.Push(&pq, smallestCostHolder{estimatedCost: newCost + h, cost: newCost, index: i})
		}
	}

	return nil, 0, consideredNodes, false
}
