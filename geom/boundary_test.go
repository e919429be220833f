package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoundaryCount(t *testing.T) {
	cases := []struct {
		name     string
		points   []Point
		expected int
	}{
		{"unit square", []Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}}, 4},
		{"right triangle", []Point{{0, 0}, {4, 0}, {0, 4}}, 12},
		{"L shape", []Point{{0, 0}, {4, 0}, {4, 2}, {2, 2}, {2, 4}, {0, 4}}, 16},
		// gcd(6,2)=2 and gcd(2,2)=2 put midpoints on the slanted edges
		{"dart", []Point{{0, 0}, {6, 2}, {0, 4}, {2, 2}}, 8},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			poly := Polygon{Points: c.points}
			assert.Equal(t, c.expected, poly.BoundaryCount())
		})
	}
}

func TestBoundaryPoints(t *testing.T) {
	t.Run("unit square", func(t *testing.T) {
		poly := Polygon{Points: []Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}}}
		assert.Equal(t, []Point{{0, 0}, {0, 1}, {1, 0}, {1, 1}}, poly.BoundaryPoints())
	})

	t.Run("matches the count and is sorted", func(t *testing.T) {
		polys := []Polygon{
			{Points: []Point{{0, 0}, {4, 0}, {0, 4}}},
			{Points: []Point{{0, 0}, {4, 0}, {4, 2}, {2, 2}, {2, 4}, {0, 4}}},
			{Points: []Point{{0, 0}, {6, 2}, {0, 4}, {2, 2}}},
		}
		for _, poly := range polys {
			points := poly.BoundaryPoints()
			require.Equal(t, poly.BoundaryCount(), len(points))
			for i := 1; i < len(points); i++ {
				// Strict order also proves vertices were deduplicated
				assert.True(t, points[i-1].Less(points[i]))
			}
		}
	})
}

func TestSegmentLatticePoints(t *testing.T) {
	t.Run("walks in gcd steps", func(t *testing.T) {
		seg := Segment{Start: Point{0, 0}, End: Point{4, 2}}
		assert.Equal(t, []Point{{0, 0}, {2, 1}, {4, 2}}, seg.latticePoints())
	})

	t.Run("degenerate segment is its start", func(t *testing.T) {
		seg := Segment{Start: Point{3, 3}, End: Point{3, 3}}
		assert.Equal(t, []Point{{3, 3}}, seg.latticePoints())
	})
}

func TestSegmentInteriorLatticePoints(t *testing.T) {
	cases := []struct {
		name     string
		seg      Segment
		count    int
		expected []Point
	}{
		{"unit diagonal has none", Segment{Point{0, 0}, Point{1, 1}}, 0, []Point{}},
		{"square diagonal midpoint", Segment{Point{0, 0}, Point{2, 2}}, 1, []Point{{1, 1}}},
		{"horizontal run", Segment{Point{0, 0}, Point{3, 0}}, 2, []Point{{1, 0}, {2, 0}}},
		{"steep diagonal", Segment{Point{1, 1}, Point{4, 7}}, 2, []Point{{2, 3}, {3, 5}}},
		{"degenerate", Segment{Point{2, 2}, Point{2, 2}}, 0, []Point{}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			count, points := c.seg.InteriorLatticePoints()
			assert.Equal(t, c.count, count)
			assert.Equal(t, c.expected, points)
		})
	}
}
