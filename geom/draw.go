package geom

import (
	"github.com/fogleman/gg"
	"github.com/pkg/errors"
)

const drawPadding = 16

// DrawSnapshot renders a polygon and its snapshot to a PNG: filled shape,
// stroked edges, boundary lattice points in cyan, interior lattice points in
// yellow. scale is pixels per lattice unit. This exists so the demo CLI can
// show what the host visualization would; it is not a rendering API.
func DrawSnapshot(poly Polygon, snap *Snapshot, scale float64, path string) error {
	min, max := poly.BoundingBox()

	// Set up the context
	width := int(scale*float64(max.X-min.X)) + drawPadding*2
	height := int(scale*float64(max.Y-min.Y)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(drawPadding, drawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-float64(min.X), -float64(min.Y))

	c.SetLineWidth(2 / scale)
	c.MoveTo(float64(poly.Points[0].X), float64(poly.Points[0].Y))
	for _, p := range poly.Points[1:] {
		c.LineTo(float64(p.X), float64(p.Y))
	}
	c.ClosePath()
	c.SetRGB(0, 0.5, 0)
	c.FillPreserve()
	c.SetRGB(0, 1, 1)
	c.Stroke()

	pointRadius := 4 / scale
	c.SetRGB(0, 1, 1)
	for _, p := range snap.BoundaryPoints {
		c.DrawCircle(float64(p.X), float64(p.Y), pointRadius)
		c.Fill()
	}
	c.SetRGB(1, 1, 0)
	for _, p := range snap.InteriorPoints {
		c.DrawCircle(float64(p.X), float64(p.Y), pointRadius)
		c.Fill()
	}

	return errors.Wrapf(c.SavePNG(path), "saving %s", path)
}
