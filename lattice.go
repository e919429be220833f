// Lattice-point statistics for simple polygons on the integer grid.
//
// Given a polygon's vertices, this package reports its area, the lattice
// points on its boundary, and the lattice points strictly inside it; the
// three are related by Pick's theorem (area = interior + boundary/2 - 1). An
// additive mode splits a convex quadrilateral into two triangles along a
// diagonal and reports statistics for each triangle and their union, so a
// host visualization can show the theorem holding across a shared edge.
package lattice

import "github.com/pickviz/lattice/geom"

type Point = geom.Point
type Polygon = geom.Polygon
type Snapshot = geom.Snapshot
type AdditiveSnapshot = geom.AdditiveSnapshot
type InvalidPolygonError = geom.InvalidPolygonError

// ComputeSnapshot takes raw coordinate pairs from a host application,
// truncates them onto the lattice, and returns the polygon's complete
// statistics. At least three pairs are required; the only error kind is
// *InvalidPolygonError.
func ComputeSnapshot(pairs [][2]float64) (*Snapshot, error) {
	poly, err := geom.NewPolygonFromPairs(pairs)
	if err != nil {
		return nil, err
	}
	return poly.Snapshot(), nil
}

// ComputeAdditiveSnapshot is ComputeSnapshot's quadrilateral counterpart: it
// expects exactly four pairs (v0,v1,v2,v3), splits along the v0-v2 diagonal,
// and returns snapshots for both triangles and the union plus the shared
// edge's interior lattice points. The caller is responsible for supplying a
// convex quadrilateral in cycle order; see geom.Polygon.AdditiveSnapshot.
func ComputeAdditiveSnapshot(pairs [][2]float64) (*AdditiveSnapshot, error) {
	poly, err := geom.NewPolygonFromPairs(pairs)
	if err != nil {
		return nil, err
	}
	return poly.AdditiveSnapshot()
}
