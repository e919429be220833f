package geom

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
)

// Point is a lattice point. All geometry in this package is exact integer
// arithmetic on these, so Point is a comparable value type and can be used
// directly as a map key.
type Point struct {
	X int
	Y int
}

// Polygon is a closed cycle of at least three vertices. The last vertex
// implicitly connects back to the first; no vertex is repeated to close the
// cycle. Use NewPolygon to get a validated one.
type Polygon struct {
	Points []Point
}

// Segment is a pair of lattice endpoints.
type Segment struct {
	Start Point
	End   Point
}

type PointSet map[Point]struct{}

// Snapshot is the complete statistical description of one polygon: its area,
// and the count and positions of the lattice points on its boundary and
// strictly inside it. The JSON shape matches what a rendering host expects.
type Snapshot struct {
	Area           float64 `json:"area"`
	Boundary       int     `json:"boundary"`
	Interior       int     `json:"interior"`
	BoundaryPoints []Point `json:"boundary_points"`
	InteriorPoints []Point `json:"interior_points"`
}

// SharedEdge describes the diagonal two triangles of an additive snapshot
// have in common: its endpoints and the lattice points strictly between them.
type SharedEdge struct {
	Points        []Point  `json:"points"`
	InteriorCount int      `json:"interior_count"`
	Endpoints     [2]Point `json:"endpoints"`
}

// AdditiveSnapshot describes a convex quadrilateral (v0,v1,v2,v3) split along
// the diagonal v0-v2 into triangles (v0,v1,v2) and (v0,v3,v2): a snapshot for
// each triangle, one for their union, and the shared diagonal's lattice
// points.
type AdditiveSnapshot struct {
	T1         *Snapshot  `json:"t1"`
	T2         *Snapshot  `json:"t2"`
	Union      *Snapshot  `json:"union"`
	SharedEdge SharedEdge `json:"shared_edge"`
}

// Less orders points lexicographically by (x, y). This is the canonical order
// for every point list this package returns.
func (p Point) Less(q Point) bool {
	if p.X != q.X {
		return p.X < q.X
	}
	return p.Y < q.Y
}

// MarshalJSON emits the point as the two element array [x, y], the shape the
// original visualization protocol uses for coordinates.
func (p Point) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("[%d,%d]", p.X, p.Y)), nil
}

func (p *Point) UnmarshalJSON(data []byte) error {
	var pair [2]int
	if err := json.Unmarshal(data, &pair); err != nil {
		return errors.Wrapf(err, "invalid point %q", data)
	}
	p.X, p.Y = pair[0], pair[1]
	return nil
}
