package ebitencanvas

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/canvas-animations/internal/canvas"
)

func geoM(m canvas.Matrix) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m.A)
	g.SetElement(0, 1, m.C)
	g.SetElement(0, 2, m.E)
	g.SetElement(1, 0, m.B)
	g.SetElement(1, 1, m.D)
	g.SetElement(1, 2, m.F)
	return g
}

// scaleOf returns the uniform scale factor of m.
func scaleOf(m canvas.Matrix) float64 {
	return math.Sqrt(math.Abs(m.A*m.D - m.B*m.C))
}

func premultiplied(c color.RGBA) (r, g, b, a float32) {
	return float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, float32(c.A) / 255
}
