package geom

// Snapshot bundles every statistic for the polygon. The count and enumeration
// passes recompute independently rather than deriving one from the other;
// that redundancy is what lets the consistency tests mean something, and at
// this scale it costs nothing.
func (poly Polygon) Snapshot() *Snapshot {
	return &Snapshot{
		Area:           poly.Area(),
		Boundary:       poly.BoundaryCount(),
		Interior:       poly.InteriorCount(),
		BoundaryPoints: poly.BoundaryPoints(),
		InteriorPoints: poly.InteriorPoints(),
	}
}

// AdditiveSnapshot splits a quadrilateral along the v0-v2 diagonal and
// snapshots the triangle (v0,v1,v2), the triangle (v0,v3,v2), and the whole
// quadrilateral. No winding or convexity check is made: the caller promises a
// convex quadrilateral whose intended shared edge is v0-v2, and gets silently
// wrong numbers otherwise.
func (poly Polygon) AdditiveSnapshot() (*AdditiveSnapshot, error) {
	if len(poly.Points) != 4 {
		return nil, invalidPolygonf("Additive snapshot expects exactly four vertices.")
	}
	a, b, c, d := poly.Points[0], poly.Points[1], poly.Points[2], poly.Points[3]

	triangleOne := Polygon{Points: []Point{a, b, c}}
	triangleTwo := Polygon{Points: []Point{a, d, c}}

	diagonal := Segment{Start: a, End: c}
	interiorCount, interiorPoints := diagonal.InteriorLatticePoints()

	return &AdditiveSnapshot{
		T1:    triangleOne.Snapshot(),
		T2:    triangleTwo.Snapshot(),
		Union: poly.Snapshot(),
		SharedEdge: SharedEdge{
			Points:        interiorPoints,
			InteriorCount: interiorCount,
			Endpoints:     [2]Point{a, c},
		},
	}, nil
}
