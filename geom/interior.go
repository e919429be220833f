package geom

// InteriorCount counts the lattice points strictly inside the polygon by
// scanning its bounding box. O(box area × edges), which is fine at the
// coordinate ranges an interactive grid works at.
func (poly Polygon) InteriorCount() int {
	interior := 0
	poly.scanInterior(func(Point) {
		interior++
	})
	return interior
}

// InteriorPoints collects the strictly interior lattice points. The order is
// the scan order, x ascending and then y ascending within each column, and
// callers rely on it being deterministic.
func (poly Polygon) InteriorPoints() []Point {
	interior := []Point{}
	poly.scanInterior(func(p Point) {
		interior = append(interior, p)
	})
	return interior
}

// scanInterior visits every strictly interior lattice point in row-major
// order. Candidates on an edge or at a vertex are filtered before the
// containment test, so the dispatch predicate only ever decides
// inside-vs-outside.
func (poly Polygon) scanInterior(visit func(Point)) {
	min, max := poly.BoundingBox()
	n := len(poly.Points)
	for x := min.X; x <= max.X; x++ {
	candidates:
		for y := min.Y; y <= max.Y; y++ {
			candidate := Point{x, y}
			if poly.HasVertex(candidate) {
				continue
			}
			for i := 0; i < n; i++ {
				edge := poly.Edge(i)
				if IsPointOnEdge(candidate, edge.Start, edge.End) {
					continue candidates
				}
			}
			if poly.ContainsPoint(candidate) {
				visit(candidate)
			}
		}
	}
}
