package quadtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pixelmap/geom"
)

func passable(_ Region, blocked bool, _ geom.Rect) bool {
	return !blocked
}

func TestPathfindStraightLine(t *testing.T) {
	pm := NewPixelMap(NewRegion(0, 0, 64), false, 1)
	// A blocked pixel away from the route splits the root, so start and goal
	// fall in different leaves and the grid search runs instead of the
	// same-leaf shortcut.
	pm.SetPixel(geom.Point{X: 0, Y: 63}, true)
	bounds := pm.Region().Rect()

	path, cost, considered, ok := pm.PathfindAStarGrid(
		bounds, 8,
		geom.Point{X: 4, Y: 4}, geom.Point{X: 60, Y: 4},
		EuclideanHeuristic, passable,
	)

	require.True(t, ok)
	require.NotEmpty(t, path)
	assert.Equal(t, geom.Point{X: 60, Y: 4}, path[len(path)-1])
	assert.Greater(t, considered, uint32(0))
	assert.Equal(t, uint32(7), cost)
}

func TestPathfindSameCellShortCircuits(t *testing.T) {
	pm := NewPixelMap(NewRegion(0, 0, 64), false, 1)
	bounds := pm.Region().Rect()

	path, cost, considered, ok := pm.PathfindAStarGrid(
		bounds, 16,
		geom.Point{X: 2, Y: 2}, geom.Point{X: 5, Y: 5},
		EuclideanHeuristic, passable,
	)

	require.True(t, ok)
	assert.Equal(t, []geom.Point{{X: 2, Y: 2}, {X: 5, Y: 5}}, path)
	assert.Equal(t, uint32(0), cost)
	assert.Equal(t, uint32(1), considered)
}

func TestPathfindFailsWhenStartBlocked(t *testing.T) {
	pm := NewPixelMap(NewRegion(0, 0, 64), false, 1)
	pm.DrawRect(geom.NewRect(0, 0, 16, 16), true)
	bounds := pm.Region().Rect()

	_, _, _, ok := pm.PathfindAStarGrid(
		bounds, 8,
		geom.Point{X: 4, Y: 4}, geom.Point{X: 60, Y: 60},
		EuclideanHeuristic, passable,
	)
	assert.False(t, ok)
}

func TestPathfindThroughWallGap(t *testing.T) {
	size := uint32(1024)
	pm := NewPixelMap(NewRegion(0, 0, size), false, 1)

	wall := geom.NewRect(512, 0, 513, int32(size))
	require.True(t, pm.DrawRect(wall, true))
	// Align the opening to whole 16-wide grid cells so at least one cell
	// straddling the wall column is entirely passable.
	gap := geom.NewRect(512, 496, 513, 528)
	require.True(t, pm.DrawRect(gap, false))

	bounds := pm.Region().Rect()
	path, cost, considered, ok := pm.PathfindAStarGrid(
		bounds, 16,
		geom.Point{X: 64, Y: 64}, geom.Point{X: 960, Y: 960},
		EuclideanHeuristic, passable,
	)

	require.True(t, ok)
	require.NotEmpty(t, path)
	assert.Greater(t, considered, uint32(0))
	assert.Equal(t, geom.Point{X: 960, Y: 960}, path[len(path)-1])

	for _, center := range path[:len(path)-1] {
		cell := geom.RectFromCorners(
			geom.Point{X: (center.X / 16) * 16, Y: (center.Y / 16) * 16},
			geom.Point{X: (center.X/16)*16 + 16, Y: (center.Y/16)*16 + 16},
		)
		pass, has := pm.AllInRect(cell, passable)
		require.True(t, has)
		assert.True(t, pass)
	}

	_ = cost
}

func TestPathfindNoPathWhenWallHasNoGap(t *testing.T) {
	size := uint32(128)
	pm := NewPixelMap(NewRegion(0, 0, size), false, 1)
	wall := geom.NewRect(64, 0, 65, int32(size))
	require.True(t, pm.DrawRect(wall, true))

	bounds := pm.Region().Rect()
	_, _, considered, ok := pm.PathfindAStarGrid(
		bounds, 8,
		geom.Point{X: 4, Y: 4}, geom.Point{X: 120, Y: 120},
		EuclideanHeuristic, passable,
	)
	assert.False(t, ok)
	assert.Greater(t, considered, uint32(0))
}
