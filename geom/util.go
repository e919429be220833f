package geom

import "sort"

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives
// positive values.
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

// Euclid's gcd on non-negative ints. gcd(0, 0) is 0, which edge iteration
// relies on for zero-length edges.
func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}

func minMax(a, b int) (int, int) {
	if a <= b {
		return a, b
	}
	return b, a
}

// sortPoints orders a point slice lexicographically by (x, y), in place.
func sortPoints(points []Point) {
	sort.Slice(points, func(i, j int) bool {
		return points[i].Less(points[j])
	})
}
