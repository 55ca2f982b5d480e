package quadtree

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pixelmap/geom"
)

func TestRayCastDiagonalHit(t *testing.T) {
	pm := NewPixelMap(NewRegion(0, 0, 16), false, 1)
	require.True(t, pm.SetPixel(geom.Point{X: 5, Y: 5}, true))

	query := RayCastQuery{Line: geom.NewLine(geom.Point{X: 0, Y: 0}, geom.Point{X: 10, Y: 10})}
	result := pm.RayCast(query, func(_ Region, solid bool) RayCast {
		if solid {
			return RayCastHit
		}
		return RayCastContinue
	})

	require.True(t, result.Hit)
	assert.Equal(t, geom.Point{X: 5, Y: 5}, result.CollisionPoint)
	assert.InDelta(t, math.Sqrt(50), result.Distance, 1e-9)
	assert.Greater(t, result.Traversed, 0)
}

func TestRayCastNoHit(t *testing.T) {
	pm := NewPixelMap(NewRegion(0, 0, 16), false, 1)
	query := RayCastQuery{Line: geom.NewLine(geom.Point{X: 0, Y: 0}, geom.Point{X: 15, Y: 0})}
	result := pm.RayCast(query, func(Region, bool) RayCast { return RayCastContinue })

	assert.False(t, result.Hit)
	assert.Equal(t, geom.Point{}, result.CollisionPoint)
	assert.Equal(t, 0.0, result.Distance)
}

func TestRayCastVisitsEachLeafOnce(t *testing.T) {
	pm := NewPixelMap(NewRegion(0, 0, 32), false, 1)
	pm.DrawRect(geom.NewRect(10, 10, 20, 20), true)

	query := RayCastQuery{Line: geom.NewLine(geom.Point{X: 0, Y: 0}, geom.Point{X: 31, Y: 31})}
	var seen []Region
	result := pm.RayCast(query, func(region Region, _ bool) RayCast {
		seen = append(seen, region)
		return RayCastContinue
	})

	assert.False(t, result.Hit)
	unique := map[Region]bool{}
	for _, r := range seen {
		assert.False(t, unique[r], "leaf %v visited more than once", r)
		unique[r] = true
	}
}

func TestRayCastAxisAlignedLine(t *testing.T) {
	pm := NewPixelMap(NewRegion(0, 0, 16), false, 1)
	require.True(t, pm.SetPixel(geom.Point{X: 8, Y: 0}, true))

	query := RayCastQuery{Line: geom.NewLine(geom.Point{X: 0, Y: 0}, geom.Point{X: 15, Y: 0})}
	result := pm.RayCast(query, func(_ Region, solid bool) RayCast {
		if solid {
			return RayCastHit
		}
		return RayCastContinue
	})

	require.True(t, result.Hit)
	assert.Equal(t, geom.Point{X: 8, Y: 0}, result.CollisionPoint)
	assert.Equal(t, 8.0, result.Distance)
}
