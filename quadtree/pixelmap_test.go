package quadtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pixelmap/geom"
)

// assertMinimal walks every interior node and fails if it finds four
// sibling leaves sharing an equal value (the decimation invariant).
func assertMinimal(t *testing.T, pm *PixelMap[bool]) {
	t.Helper()
	var walk func(n *pnode[bool])
	walk = func(n *pnode[bool]) {
		if n.children == nil {
			return
		}
		if n.IsLeafParent() {
			first := n.children[0].value
			allEqual := true
			for _, c := range n.children[1:] {
				if c.value != first {
					allEqual = false
					break
				}
			}
			require.False(t, allEqual, "four equal leaf children were not decimated")
		}
		for _, c := range n.children {
			walk(c)
		}
	}
	walk(pm.root)
}

func TestStatsAfterSingleSetPixel(t *testing.T) {
	pm := NewPixelMap(NewRegion(0, 0, 2), false, 1)
	ok := pm.SetPixel(geom.Point{X: 1, Y: 1}, true)
	assert.True(t, ok)

	stats := pm.Stats()
	assert.Equal(t, Stats{NodeCount: 5, LeafCount: 4, UnitCount: 4}, stats)

	v, ok := pm.GetPixel(geom.Point{X: 1, Y: 1})
	assert.True(t, ok)
	assert.True(t, v)

	v, ok = pm.GetPixel(geom.Point{X: 0, Y: 0})
	assert.True(t, ok)
	assert.False(t, v)

	_, ok = pm.GetPixel(geom.Point{X: 4, Y: 4})
	assert.False(t, ok)

	assertMinimal(t, pm)
}

func TestStatsWithGrandchildren(t *testing.T) {
	pm := NewPixelMap(NewRegion(0, 0, 4), false, 1)
	assert.True(t, pm.DrawRect(geom.NewRect(0, 0, 2, 2), true))
	assert.True(t, pm.SetPixel(geom.Point{X: 0, Y: 0}, false))

	stats := pm.Stats()
	assert.Equal(t, Stats{NodeCount: 9, LeafCount: 7, UnitCount: 4}, stats)
	assertMinimal(t, pm)
}

func TestSplitJoinRoundTrip(t *testing.T) {
	pm := NewPixelMap(NewRegion(0, 0, 2), false, 1)
	assert.True(t, pm.SetPixel(geom.Point{X: 0, Y: 0}, true))

	quads, ok := pm.Split()
	require.True(t, ok)
	assert.Equal(t, true, quads[BottomLeft].root.Value())
	assert.Equal(t, false, quads[BottomRight].root.Value())
	assert.Equal(t, false, quads[TopLeft].root.Value())
	assert.Equal(t, false, quads[TopRight].root.Value())

	joined := Join(quads)
	v, ok := joined.GetPixel(geom.Point{X: 0, Y: 0})
	require.True(t, ok)
	assert.True(t, v)
	v, ok = joined.GetPixel(geom.Point{X: 1, Y: 1})
	require.True(t, ok)
	assert.False(t, v)

	_, ok = joined.Split()
	require.True(t, ok)
}

func TestSplitOnLeafFails(t *testing.T) {
	pm := NewPixelMap(NewRegion(0, 0, 4), false, 1)
	_, ok := pm.Split()
	assert.False(t, ok)
}

func TestReadAfterWrite(t *testing.T) {
	pm := NewPixelMap(NewRegion(0, 0, 16), 0, 1)
	target := geom.Point{X: 5, Y: 9}
	assert.True(t, pm.SetPixel(target, 42))

	v, ok := pm.GetPixel(target)
	require.True(t, ok)
	assert.Equal(t, 42, v)

	v, ok = pm.GetPixel(geom.Point{X: 0, Y: 0})
	require.True(t, ok)
	assert.Equal(t, 0, v)
}

func TestDrawRectFill(t *testing.T) {
	pm := NewPixelMap(NewRegion(0, 0, 16), false, 1)
	rect := geom.NewRect(2, 2, 10, 6)
	assert.True(t, pm.DrawRect(rect, true))

	for y := int32(0); y < 16; y++ {
		for x := int32(0); x < 16; x++ {
			p := geom.Point{X: x, Y: y}
			v, ok := pm.GetPixel(p)
			require.True(t, ok)
			assert.Equal(t, rect.Contains(p), v, "pixel (%d,%d)", x, y)
		}
	}
	assertMinimal(t, pm)
}

func TestDrawCircleFill(t *testing.T) {
	pm := NewPixelMap(NewRegion(0, 0, 32), false, 1)
	circle := geom.NewCircle(geom.Point{X: 16, Y: 16}, 6)
	assert.True(t, pm.DrawCircle(circle, true))

	outer := circle.AABB()
	for y := int32(0); y < 32; y++ {
		for x := int32(0); x < 32; x++ {
			p := geom.Point{X: x, Y: y}
			v, ok := pm.GetPixel(p)
			require.True(t, ok)
			if !outer.Contains(p) {
				assert.False(t, v, "pixel (%d,%d) outside outer AABB was touched", x, y)
				continue
			}
			if circle.Contains(p) {
				assert.True(t, v, "pixel (%d,%d) inside circle wasn't filled", x, y)
			}
		}
	}
}

func TestDirtyDrainIdempotence(t *testing.T) {
	pm := NewPixelMap(NewRegion(0, 0, 8), false, 1)
	pm.DrainDirty(func(Region, bool) {})

	var visited []geom.Point
	pm.SetPixel(geom.Point{X: 3, Y: 5}, true)
	pm.DrainDirty(func(r Region, v bool) {
		visited = append(visited, r.Point())
	})
	require.Len(t, visited, 1)
	assert.Equal(t, geom.Point{X: 3, Y: 5}, visited[0])

	var secondPass int
	pm.DrainDirty(func(Region, bool) { secondPass++ })
	assert.Equal(t, 0, secondPass)
}

func TestClearDirtyIsShallow(t *testing.T) {
	pm := NewPixelMap(NewRegion(0, 0, 8), false, 1)
	pm.SetPixel(geom.Point{X: 1, Y: 1}, true)
	pm.ClearDirty()

	// Clearing the root's flag stops descent: dirty leaves deeper in the
	// tree are no longer reachable by visit_dirty until they are marked
	// dirty again on a path that still reaches the root.
	var stillDirty int
	pm.VisitDirty(func(Region, bool) { stillDirty++ })
	assert.Equal(t, 0, stillDirty)

	pm.SetPixel(geom.Point{X: 1, Y: 1}, false)
	stillDirty = 0
	pm.VisitDirty(func(Region, bool) { stillDirty++ })
	assert.Equal(t, 1, stillDirty)
}

func TestAnyAllInRect(t *testing.T) {
	pm := NewPixelMap(NewRegion(0, 0, 8), false, 1)
	pm.DrawRect(geom.NewRect(0, 0, 4, 4), true)

	any, has := pm.AnyInRect(geom.NewRect(0, 0, 8, 8), func(_ Region, v bool, _ geom.Rect) bool { return v })
	require.True(t, has)
	assert.True(t, any)

	all, has := pm.AllInRect(geom.NewRect(0, 0, 4, 4), func(_ Region, v bool, _ geom.Rect) bool { return v })
	require.True(t, has)
	assert.True(t, all)

	all, has = pm.AllInRect(geom.NewRect(0, 0, 8, 8), func(_ Region, v bool, _ geom.Rect) bool { return v })
	require.True(t, has)
	assert.False(t, all)

	_, has = pm.AnyInRect(geom.NewRect(100, 100, 104, 104), func(Region, bool, geom.Rect) bool { return true })
	assert.False(t, has)
}

func TestCombine(t *testing.T) {
	a := NewPixelMap(NewRegion(0, 0, 4), 1, 1)
	b := NewPixelMap(NewRegion(0, 0, 4), 10, 1)
	b.SetPixel(geom.Point{X: 2, Y: 2}, 20)

	a.Combine(b, geom.Point{}, func(x, y int) int { return x + y })

	v, _ := a.GetPixel(geom.Point{X: 0, Y: 0})
	assert.Equal(t, 11, v)
	v, _ = a.GetPixel(geom.Point{X: 2, Y: 2})
	assert.Equal(t, 21, v)
}

func TestTrimeshAndPolylinesInRect(t *testing.T) {
	pm := NewPixelMap(NewRegion(0, 0, 4), false, 1)
	pm.DrawRect(geom.NewRect(0, 0, 2, 2), true)

	verts, indices := pm.TrimeshInRect(geom.NewRect(0, 0, 4, 4), geom.Point{}, func(_ Region, v bool, _ geom.Rect) bool {
		return v
	})
	assert.NotEmpty(t, verts)
	assert.Len(t, indices, 6)

	lineVerts, segments := pm.PolylinesInRect(geom.NewRect(0, 0, 4, 4), geom.Point{}, func(_ Region, v bool, _ geom.Rect) bool {
		return v
	})
	assert.NotEmpty(t, lineVerts)
	assert.Len(t, segments, 4)
}

func TestPanicsOnBadPixelSize(t *testing.T) {
	assert.Panics(t, func() {
		NewPixelMap(NewRegion(0, 0, 8), false, 3)
	})
}

func TestJoinPanicsOnMismatchedPixelSize(t *testing.T) {
	a := NewPixelMap(NewRegion(0, 0, 2), false, 1)
	b := NewPixelMap(NewRegion(0, 0, 2), false, 2)
	quads := [4]*PixelMap[bool]{a, a, a, b}
	assert.Panics(t, func() {
		Join(quads)
	})
}
