package geom

// Area computes the polygon's area with the shoelace formula. The cross
// products accumulate as exact integers; the only float operation is the
// final halving. Winding direction doesn't matter because of the absolute
// value, and simple non-convex polygons work fine.
func (poly Polygon) Area() float64 {
	area2 := 0
	for i := range poly.Points {
		edge := poly.Edge(i)
		area2 += edge.Start.X*edge.End.Y - edge.End.X*edge.Start.Y
	}
	return float64(abs(area2)) / 2
}
