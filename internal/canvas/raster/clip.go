package raster

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/clip"

	"github.com/iburimskiy/canvas-animations/internal/canvas"
)

// clipPolygon clips poly to the rectangle [0, w] x [0, h]. The rasterizer
// works in fixed point below 512 pixels and overflows on far-off vertices,
// so every polygon is brought inside the target first. Coverage inside the
// rectangle is unchanged. Polygons with no area left return nil.
func clipPolygon(poly []canvas.Offset, w, h float64) []canvas.Offset {
	if len(poly) < 3 {
		return nil
	}
	ring := make(orb.Ring, len(poly))
	for i, p := range poly {
		ring[i] = orb.Point{p.X, p.Y}
	}
	bound := orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{w, h}}
	clipped := clip.Ring(bound, ring)
	if len(clipped) < 3 {
		return nil
	}

	out := make([]canvas.Offset, len(clipped))
	for i, p := range clipped {
		out[i] = canvas.Offset{X: p.X(), Y: p.Y()}
	}
	return out
}
