package geom

// BoundaryCount counts the lattice points on the polygon's boundary. An edge
// with delta (dx, dy) carries gcd(|dx|, |dy|) lattice points when you exclude
// its far endpoint, so summing that over the closed cycle counts every
// boundary point exactly once, vertices included.
func (poly Polygon) BoundaryCount() int {
	boundary := 0
	for i := range poly.Points {
		edge := poly.Edge(i)
		boundary += gcd(abs(edge.End.X-edge.Start.X), abs(edge.End.Y-edge.Start.Y))
	}
	return boundary
}

// BoundaryPoints collects every lattice point on the boundary, walking each
// edge in gcd-sized steps. Vertices shared by two edges are deduplicated
// through a set, and the result comes back in (x, y) order.
func (poly Polygon) BoundaryPoints() []Point {
	boundary := make(PointSet)
	for i := range poly.Points {
		edge := poly.Edge(i)
		for _, p := range edge.latticePoints() {
			boundary[p] = struct{}{}
		}
	}
	points := make([]Point, 0, len(boundary))
	for p := range boundary {
		points = append(points, p)
	}
	sortPoints(points)
	return points
}

// latticePoints returns every lattice point on the segment, endpoints
// included, in walking order. A zero-length segment is just its start.
func (s Segment) latticePoints() []Point {
	dx, dy := s.End.X-s.Start.X, s.End.Y-s.Start.Y
	steps := gcd(abs(dx), abs(dy))
	if steps == 0 {
		return []Point{s.Start}
	}
	stepX, stepY := dx/steps, dy/steps
	points := make([]Point, 0, steps+1)
	for j := 0; j <= steps; j++ {
		points = append(points, Point{s.Start.X + stepX*j, s.Start.Y + stepY*j})
	}
	return points
}

// InteriorLatticePoints returns the lattice points strictly between the
// segment's endpoints, and how many there are. For the shared diagonal of an
// additive snapshot these are the points both triangles count as boundary but
// the union does not.
func (s Segment) InteriorLatticePoints() (int, []Point) {
	dx, dy := s.End.X-s.Start.X, s.End.Y-s.Start.Y
	steps := gcd(abs(dx), abs(dy))
	if steps <= 1 {
		return 0, []Point{}
	}
	stepX, stepY := dx/steps, dy/steps
	points := make([]Point, 0, steps-1)
	for j := 1; j < steps; j++ {
		points = append(points, Point{s.Start.X + stepX*j, s.Start.Y + stepY*j})
	}
	return steps - 1, points
}
