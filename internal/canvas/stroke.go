package canvas

import "math"

// StrokePolygons expands a polyline into one quad per segment, each
// width wide and centred on the segment. All quads share the same winding
// so overlapping joins do not cancel under nonzero filling.
func StrokePolygons(points []Offset, closed bool, width float64) [][]Offset {
	if len(points) < 2 || !(width > 0) {
		return nil
	}
	half := width / 2
	n := len(points) - 1
	if closed {
		n = len(points)
	}
	quads := make([][]Offset, 0, n)
	for i := 0; i < n; i++ {
		a := points[i]
		b := points[(i+1)%len(points)]
		dx, dy := b.X-a.X, b.Y-a.Y
		length := math.Hypot(dx, dy)
		if length == 0 {
			continue
		}
		nx, ny := -dy/length*half, dx/length*half
		quads = append(quads, []Offset{
			{X: a.X + nx, Y: a.Y + ny},
			{X: b.X + nx, Y: b.Y + ny},
			{X: b.X - nx, Y: b.Y - ny},
			{X: a.X - nx, Y: a.Y - ny},
		})
	}
	return quads
}
