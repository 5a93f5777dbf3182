package raster

import (
	"image"
	"image/draw"
	"math"

	"github.com/disintegration/imaging"
)

// composite draws the layer's blurred shadow and then the layer itself
// onto its parent.
func composite(l *layer) {
	b := l.img.Bounds()
	if l.shadow.Color.A > 0 {
		// imaging returns a copy anchored at the origin; only its alpha is
		// used as the shadow mask.
		mask := imaging.Blur(l.img, shadowSigma(l.shadow.Radius))
		off := image.Pt(int(math.Round(l.shadow.Offset.X)), int(math.Round(l.shadow.Offset.Y)))
		draw.DrawMask(l.parent, b, image.NewUniform(l.shadow.Color), image.Point{}, mask, image.Point{}.Sub(off), draw.Over)
	}
	draw.Draw(l.parent, b, l.img, b.Min, draw.Over)
}

// shadowSigma maps a blur radius to a gaussian standard deviation, with
// the radius covering two deviations.
func shadowSigma(radius float64) float64 {
	if !(radius > 0) {
		return 0
	}
	return radius / 2
}
