package geom

// NewPolygon validates a vertex list and wraps it in a Polygon. The slice is
// copied; callers keep ownership of theirs and nothing here will mutate it.
func NewPolygon(points []Point) (Polygon, error) {
	if len(points) < 3 {
		return Polygon{}, invalidPolygonf("At least three points are required to describe a polygon.")
	}
	copied := make([]Point, len(points))
	copy(copied, points)
	return Polygon{Points: copied}, nil
}

// NewPolygonFromPairs is the coercion boundary for untyped host input. Each
// coordinate is truncated toward zero, matching what the visualization layer
// sends (its sliders can produce values like 3.0).
func NewPolygonFromPairs(pairs [][2]float64) (Polygon, error) {
	points := make([]Point, len(pairs))
	for i, pair := range pairs {
		points[i] = Point{X: int(pair[0]), Y: int(pair[1])}
	}
	return NewPolygon(points)
}

// Edge returns the i'th edge of the cycle, connecting vertex i to vertex i+1
// (wrapping back to the first vertex).
func (poly Polygon) Edge(i int) Segment {
	n := len(poly.Points)
	return Segment{
		Start: poly.Points[CircularIndex(i, n)],
		End:   poly.Points[CircularIndex(i+1, n)],
	}
}

// BoundingBox gives the inclusive axis-aligned bounds of the vertices.
func (poly Polygon) BoundingBox() (min, max Point) {
	min = poly.Points[0]
	max = poly.Points[0]
	for _, p := range poly.Points[1:] {
		if p.X < min.X {
			min.X = p.X
		}
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
	}
	return min, max
}

// HasVertex reports whether p coincides with one of the polygon's vertices.
func (poly Polygon) HasVertex(p Point) bool {
	for _, vertex := range poly.Points {
		if vertex == p {
			return true
		}
	}
	return false
}

func (poly Polygon) Reverse() Polygon {
	newPoly := Polygon{}
	for i := len(poly.Points) - 1; i >= 0; i-- {
		newPoly.Points = append(newPoly.Points, poly.Points[i])
	}
	return newPoly
}
