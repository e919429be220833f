package geom

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrawSnapshot(t *testing.T) {
	poly := Polygon{Points: []Point{{0, 0}, {4, 0}, {0, 4}}}
	path := filepath.Join(t.TempDir(), "triangle.png")

	require.NoError(t, DrawSnapshot(poly, poly.Snapshot(), 32, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
