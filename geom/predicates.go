package geom

// edgeSign is the cross product sign test for a directed edge from start to
// end: positive on one side of the line through them, negative on the other,
// zero when p is collinear with it.
func edgeSign(p, start, end Point) int {
	return (p.X-end.X)*(start.Y-end.Y) - (start.X-end.X)*(p.Y-end.Y)
}

// IsPointOnEdge reports whether p lies on the segment, endpoints included.
// Exact integer arithmetic, so this is reliable for diagonal segments too; no
// tolerance is involved anywhere.
func IsPointOnEdge(p, start, end Point) bool {
	cross := (p.X-start.X)*(end.Y-start.Y) - (p.Y-start.Y)*(end.X-start.X)
	if cross != 0 {
		return false
	}
	minX, maxX := minMax(start.X, end.X)
	minY, maxY := minMax(start.Y, end.Y)
	return minX <= p.X && p.X <= maxX && minY <= p.Y && p.Y <= maxY
}

// triangleContains is the strict point-in-triangle test. A point on any edge
// has a zero sign and is rejected; otherwise the point is inside exactly when
// the three edge signs agree.
func triangleContains(p, a, b, c Point) bool {
	d1 := edgeSign(p, a, b)
	d2 := edgeSign(p, b, c)
	d3 := edgeSign(p, c, a)
	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	onBoundary := d1 == 0 || d2 == 0 || d3 == 0
	return !onBoundary && !(hasNeg && hasPos)
}

// containsByRayCast is the strict even-odd test: count crossings of the
// rightward horizontal ray from p. A boundary point short-circuits to false,
// which also keeps the crossing arithmetic away from the p-on-edge cases it
// would misjudge.
func containsByRayCast(p Point, poly Polygon) bool {
	inside := false
	n := len(poly.Points)
	for i := 0; i < n; i++ {
		edge := poly.Edge(i)
		if IsPointOnEdge(p, edge.Start, edge.End) {
			return false
		}
		start, end := edge.Start, edge.End
		if (start.Y > p.Y) != (end.Y > p.Y) {
			// Horizontal edges never straddle p.Y, so the denominator check
			// only guards degenerate repeated vertices.
			denom := end.Y - start.Y
			if denom != 0 {
				xinters := float64((end.X-start.X)*(p.Y-start.Y))/float64(denom) + float64(start.X)
				if xinters > float64(p.X) {
					inside = !inside
				}
			}
		}
	}
	return inside
}

// ContainsPoint reports whether p is strictly inside the polygon. Boundary
// points, vertices included, are outside. Triangles get the pure sign test;
// everything else ray casts.
func (poly Polygon) ContainsPoint(p Point) bool {
	if len(poly.Points) == 3 {
		return triangleContains(p, poly.Points[0], poly.Points[1], poly.Points[2])
	}
	return containsByRayCast(p, poly)
}
