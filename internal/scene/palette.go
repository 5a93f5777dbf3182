package scene

import (
	"image/color"
	"math"
)

// paletteColor returns palette[i]. Past the end of the palette it walks
// the hue circle by the golden angle, so neighbouring extras stay apart.
func paletteColor(palette []color.RGBA, i int) color.RGBA {
	if i < len(palette) {
		return palette[i]
	}
	return hueColor(float64(i-len(palette))*137.5, 0.8, 0.9)
}

// hueColor converts a hue in degrees with saturation and value in [0, 1]
// to an opaque color.
func hueColor(hue, sat, val float64) color.RGBA {
	hue = math.Mod(hue, 360)
	if hue < 0 {
		hue += 360
	}
	sector := math.Floor(hue / 60)
	f := hue/60 - sector
	p := val * (1 - sat)
	q := val * (1 - sat*f)
	t := val * (1 - sat*(1-f))

	var r, g, b float64
	switch int(sector) {
	case 0:
		r, g, b = val, t, p
	case 1:
		r, g, b = q, val, p
	case 2:
		r, g, b = p, val, t
	case 3:
		r, g, b = p, q, val
	case 4:
		r, g, b = t, p, val
	default:
		r, g, b = val, p, q
	}
	return color.RGBA{R: channel(r), G: channel(g), B: channel(b), A: 255}
}

func channel(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
}
