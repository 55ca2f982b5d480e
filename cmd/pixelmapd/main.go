package main

import (
	"log"
	"math/rand"
	"net/http"
	"strconv"
	"time"

	"pixelmap/geom"
	"pixelmap/quadtree"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

var worldRegion = quadtree.NewRegion(0, 0, mapSize)

var world *quadtree.PixelMap[bool]

const (
	mapSize        = 1024
	pixelSize      = 1
	numPainters    = 8
	paintInterval  = 2 * time.Second
	maxShapeRadius = 24
)

// simulatePainter periodically drops a random obstacle onto the shared map.
func simulatePainter(painterID int, seed int64) {
	rng := rand.New(rand.NewSource(time.Now().UnixNano() + seed))

	time.Sleep(time.Duration(rng.Intn(2000)) * time.Millisecond)

	for {
		time.Sleep(paintInterval)

		center := geom.Point{
			X: int32(rng.Intn(mapSize)),
			Y: int32(rng.Intn(mapSize)),
		}

		if rng.Intn(2) == 0 {
			radius := uint32(1 + rng.Intn(maxShapeRadius))
			world.DrawCircle(geom.NewCircle(center, radius), true)
		} else {
			size := int32(1 + rng.Intn(maxShapeRadius))
			world.DrawRect(geom.NewRect(center.X, center.Y, center.X+size, center.Y+size), true)
		}
	}
}

func parsePoint(c *gin.Context, xKey, yKey string) (geom.Point, bool) {
	x, errX := strconv.ParseInt(c.Query(xKey), 10, 32)
	y, errY := strconv.ParseInt(c.Query(yKey), 10, 32)
	if errX != nil || errY != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "parametri '" + xKey + "' e '" + yKey + "' non validi o mancanti"})
		return geom.Point{}, false
	}
	return geom.Point{X: int32(x), Y: int32(y)}, true
}

func handleGetPixel(c *gin.Context) {
	p, ok := parsePoint(c, "x", "y")
	if !ok {
		return
	}

	value, ok := world.GetPixel(p)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "punto fuori dai limiti della mappa"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"x": p.X, "y": p.Y, "solid": value})
}

func handleSetPixel(c *gin.Context) {
	p, ok := parsePoint(c, "x", "y")
	if !ok {
		return
	}
	solid := c.Query("solid") == "true"

	if !world.SetPixel(p, solid) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "punto fuori dai limiti della mappa"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"x": p.X, "y": p.Y, "solid": solid})
}

func handleDrawRect(c *gin.Context) {
	x0, errX0 := strconv.ParseInt(c.Query("x0"), 10, 32)
	y0, errY0 := strconv.ParseInt(c.Query("y0"), 10, 32)
	x1, errX1 := strconv.ParseInt(c.Query("x1"), 10, 32)
	y1, errY1 := strconv.ParseInt(c.Query("y1"), 10, 32)
	if errX0 != nil || errY0 != nil || errX1 != nil || errY1 != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "coordinate rettangolo non valide"})
		return
	}
	solid := c.Query("solid") == "true"

	rect := geom.NewRect(int32(x0), int32(y0), int32(x1), int32(y1))
	if !world.DrawRect(rect, solid) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "il rettangolo non interseca la mappa"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "drawn"})
}

func handleStats(c *gin.Context) {
	stats := world.Stats()
	c.JSON(http.StatusOK, gin.H{
		"nodeCount": stats.NodeCount,
		"leafCount": stats.LeafCount,
		"unitCount": stats.UnitCount,
	})
}

func handleRayCast(c *gin.Context) {
	start, ok := parsePoint(c, "x0", "y0")
	if !ok {
		return
	}
	end, ok := parsePoint(c, "x1", "y1")
	if !ok {
		return
	}

	query := quadtree.RayCastQuery{Line: geom.NewLine(start, end)}
	result := world.RayCast(query, func(_ quadtree.Region, solid bool) quadtree.RayCast {
		if solid {
			return quadtree.RayCastHit
		}
		return quadtree.RayCastContinue
	})

	if !result.IsHit() {
		c.JSON(http.StatusOK, gin.H{"hit": false, "traversed": result.Traversed})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"hit":       true,
		"x":         result.CollisionPoint.X,
		"y":         result.CollisionPoint.Y,
		"distance":  result.Distance,
		"traversed": result.Traversed,
	})
}

func handlePathfind(c *gin.Context) {
	start, ok := parsePoint(c, "x0", "y0")
	if !ok {
		return
	}
	goal, ok := parsePoint(c, "x1", "y1")
	if !ok {
		return
	}
	gridSize, err := strconv.ParseUint(c.DefaultQuery("gridSize", "16"), 10, 32)
	if err != nil || gridSize == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "parametro 'gridSize' non valido"})
		return
	}

	passable := func(_ quadtree.Region, solid bool, _ geom.Rect) bool { return !solid }
	path, cost, considered, ok := world.PathfindAStarGrid(
		world.Region().Rect(), uint32(gridSize), start, goal,
		quadtree.EuclideanHeuristic, passable,
	)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "nessun percorso trovato"})
		return
	}

	points := make([][2]int32, 0, len(path))
	for _, p := range path {
		points = append(points, [2]int32{p.X, p.Y})
	}
	c.JSON(http.StatusOK, gin.H{"path": points, "cost": cost, "nodesConsidered": considered})
}

func main() {
	world = quadtree.NewPixelMap(worldRegion, false, pixelSize)

	log.Printf("Starting background obstacle simulation with %d painters...", numPainters)
	for i := 0; i < numPainters; i++ {
		go simulatePainter(i, int64(i))
	}
	log.Println("Simulation started in the background.")

	r := gin.Default()

	r.Use(cors.Default())

	r.GET("/pixel", handleGetPixel)
	r.POST("/pixel", handleSetPixel)
	r.POST("/draw-rect", handleDrawRect)
	r.GET("/stats", handleStats)
	r.GET("/ray-cast", handleRayCast)
	r.GET("/pathfind", handlePathfind)

	log.Println("API server listening on http://localhost:8080")
	r.Run(":8080")
}
