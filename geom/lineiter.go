package geom

// PlotLine walks every integer pixel between (x0,y0) and (x1,y1) using
// Bresenham's line algorithm, calling plot for each one.
func PlotLine(x0, y0, x1, y1 int32, plot func(x, y int32)) {
	dx := abs32(x1 - x0)
	dy := abs32(y1 - y0)
	x, y := x0, y0
	xi, yi := int32(1), int32(1)
	if x1 < x0 {
		xi = -1
	}
	if y1 < y0 {
		yi = -1
	}

	err := dx - dy
	for x != x1 || y != y1 {
		plot(x, y)
		e2 := err * 2
		if e2 > -dy {
			err -= dy
			x += xi
		}
		if e2 < dx {
			err += dx
			y += yi
		}
	}
	plot(x1, y1)
}

func abs32(n int32) int32 {
	if n < 0 {
		return -n
	}
	return n
}

// LinePixelIterator walks every integer pixel on a line segment. It picks a
// constant-time AxisLineIterator when the line is compass or diagonal
// aligned, falling back to a general Bresenham walk otherwise.
type LinePixelIterator struct {
	axis  *AxisLineIterator
	angle *AngleLineIterator
}

// NewLinePixelIterator builds a pixel iterator for line.
func NewLinePixelIterator(line Line) *LinePixelIterator {
	if axis, ok := NewAxisLineIterator(line); ok {
		return &LinePixelIterator{axis: axis}
	}
	return &LinePixelIterator{angle: NewAngleLineIterator(line)}
}

// Peek returns the next pixel without consuming it.
func (it *LinePixelIterator) Peek() (Point, bool) {
	if it.axis != nil {
		return it.axis.Peek()
	}
	return it.angle.Peek()
}

// Next returns the next pixel on the line, or false once exhausted.
func (it *LinePixelIterator) Next() (Point, bool) {
	if it.axis != nil {
		return it.axis.Next()
	}
	return it.angle.Next()
}

// SeekBounds advances the iterator to the last point on the line that is
// still within bounds, and returns it. Calling Next afterward returns the
// point beyond bounds, if the line segment has one. If the line ends inside
// bounds, the end point is returned and Next then reports false. Returns
// false only if the iterator was already exhausted.
func (it *LinePixelIterator) SeekBounds(bounds Rect) (Point, bool) {
	if it.axis != nil {
		return it.axis.SeekBounds(bounds)
	}
	return it.angle.SeekBounds(bounds)
}

// AxisLineIterator walks a compass or diagonal aligned line in constant
// time per step, without needing Bresenham error accumulation.
type AxisLineIterator struct {
	point     Point
	direction Direction
	end       Point
	finished  bool
}

// NewAxisLineIterator builds an iterator for line if it is axis or diagonal
// aligned, reporting false otherwise.
func NewAxisLineIterator(line Line) (*AxisLineIterator, bool) {
	direction, ok := line.AxisAlignment()
	if !ok {
		direction, ok = line.DiagonalAxisAlignment()
		if !ok {
			return nil, false
		}
	}
	return &AxisLineIterator{
		point:     line.Start,
		direction: direction,
		end:       line.End,
	}, true
}

func (it *AxisLineIterator) Peek() (Point, bool) {
	if it.finished {
		return Point{}, false
	}
	return it.point, true
}

func (it *AxisLineIterator) Next() (Point, bool) {
	if it.finished {
		return Point{}, false
	}
	result := it.point
	if it.point == it.end {
		it.finished = true
	} else {
		it.point = it.point.Add(it.direction.Unit())
	}
	return result, true
}

func (it *AxisLineIterator) SeekBounds(bounds Rect) (Point, bool) {
	point, ok := it.Next()
	if !ok {
		return Point{}, false
	}

	top := bounds.TopBounds()
	left := bounds.LeftBounds()
	right := bounds.RightBounds()
	bottom := bounds.BottomBounds()

	// A diagonal line only reaches a region's corner when it enters exactly
	// at that corner; in general it exits through whichever edge is nearer,
	// so the other coordinate must be extrapolated along the 45 degree
	// slope by that same distance rather than snapped to the corner.
	var result Point
	switch it.direction {
	case North:
		result = Point{point.X, minInt32(it.end.Y, top)}
	case NorthEast:
		xDistance := right - it.end.X
		yDistance := top - it.end.Y
		var x, y int32
		if xDistance < yDistance {
			x, y = right, it.end.Y+xDistance
		} else {
			x, y = it.end.X+yDistance, top
		}
		if y > point.Y {
			result = Point{x, y}
		} else {
			result = point
		}
	case NorthWest:
		xDistance := it.end.X - left
		yDistance := top - it.end.Y
		var x, y int32
		if xDistance < yDistance {
			x, y = left, it.end.Y+xDistance
		} else {
			x, y = it.end.X-yDistance, top
		}
		if y > point.Y {
			result = Point{x, y}
		} else {
			result = point
		}
	case East:
		result = Point{minInt32(it.end.X, right), point.Y}
	case South:
		result = Point{point.X, maxInt32(it.end.Y, bottom)}
	case SouthEast:
		xDistance := right - it.end.X
		yDistance := it.end.Y - bottom
		var x, y int32
		if xDistance < yDistance {
			x, y = right, it.end.Y-xDistance
		} else {
			x, y = it.end.X+yDistance, bottom
		}
		if y < point.Y {
			result = Point{x, y}
		} else {
			result = point
		}
	case SouthWest:
		xDistance := it.end.X - left
		yDistance := it.end.Y - bottom
		var x, y int32
		if xDistance < yDistance {
			x, y = left, it.end.Y-xDistance
		} else {
			x, y = it.end.X-yDistance, bottom
		}
		if y < point.Y {
			result = Point{x, y}
		} else {
			result = point
		}
	case West:
		result = Point{maxInt32(it.end.X, left), point.Y}
	}

	// The bounds may reach past the line's end; never step beyond it.
	unit := it.direction.Unit()
	if (result.X-it.end.X)*unit.X > 0 || (result.Y-it.end.Y)*unit.Y > 0 {
		result = it.end
	}

	it.point = result
	return it.Next()
}

// AngleLineIterator walks an arbitrary line segment with Bresenham's
// algorithm, one step at a time.
type AngleLineIterator struct {
	end      Point
	dist     Point
	point    Point
	xi, yi   int32
	err      int32
	finished bool
}

// NewAngleLineIterator builds a general Bresenham walk over line.
func NewAngleLineIterator(line Line) *AngleLineIterator {
	x0, y0 := line.Start.X, line.Start.Y
	x1, y1 := line.End.X, line.End.Y
	dist := Point{abs32(x1 - x0), abs32(y1 - y0)}
	xi, yi := int32(1), int32(1)
	if x1 < x0 {
		xi = -1
	}
	if y1 < y0 {
		yi = -1
	}
	return &AngleLineIterator{
		end:   line.End,
		dist:  dist,
		point: line.Start,
		xi:    xi,
		yi:    yi,
		err:   dist.X - dist.Y,
	}
}

func (it *AngleLineIterator) Peek() (Point, bool) {
	if it.finished {
		return Point{}, false
	}
	return it.point, true
}

func (it *AngleLineIterator) Next() (Point, bool) {
	if it.finished {
		return Point{}, false
	}
	result := it.point
	if it.point == it.end {
		it.finished = true
	} else {
		e2 := it.err * 2
		if e2 > -it.dist.Y {
			it.err -= it.dist.Y
			it.point = it.point.Add(Point{it.xi, 0})
		}
		if e2 < it.dist.X {
			it.err += it.dist.X
			it.point = it.point.Add(Point{0, it.yi})
		}
	}
	return result, true
}

func (it *AngleLineIterator) SeekBounds(bounds Rect) (Point, bool) {
	for {
		point, ok := it.Next()
		if !ok {
			return Point{}, false
		}
		if next, ok := it.Peek(); ok {
			if !bounds.Contains(next) {
				return point, true
			}
		} else {
			return point, true
		}
	}
}
