package canvas

import (
	"fmt"
	"image/color"
	"math"
)

// PaintStyle determines whether a path is filled or stroked.
type PaintStyle int

const (
	// PaintFill fills the path interior.
	PaintFill PaintStyle = iota
	// PaintStroke draws the path outline with StrokeWidth.
	PaintStroke
)

// String returns a human-readable representation of the paint style.
func (s PaintStyle) String() string {
	switch s {
	case PaintFill:
		return "fill"
	case PaintStroke:
		return "stroke"
	default:
		return fmt.Sprintf("PaintStyle(%d)", int(s))
	}
}

// Shader computes a color for a point in the local coordinates of the
// draw call it is used with.
type Shader interface {
	ColorAt(p Offset) color.RGBA
}

// Paint describes how a path is drawn. A nil Shader paints Color.
type Paint struct {
	Style       PaintStyle
	Color       color.RGBA
	Shader      Shader
	StrokeWidth float64
}

// Fill returns a solid fill paint.
func Fill(c color.RGBA) Paint {
	return Paint{Style: PaintFill, Color: c}
}

// Stroke returns a solid stroke paint.
func Stroke(c color.RGBA, width float64) Paint {
	return Paint{Style: PaintStroke, Color: c, StrokeWidth: width}
}

// ColorAt returns the paint color at a local point.
func (p Paint) ColorAt(pt Offset) color.RGBA {
	if p.Shader != nil {
		return p.Shader.ColorAt(pt)
	}
	return p.Color
}

// GradientStop defines a color stop within a gradient.
type GradientStop struct {
	Position float64
	Color    color.RGBA
}

// EvenStops spreads colors evenly over [0, 1].
func EvenStops(colors ...color.RGBA) []GradientStop {
	stops := make([]GradientStop, len(colors))
	for i, c := range colors {
		pos := 0.0
		if len(colors) > 1 {
			pos = float64(i) / float64(len(colors)-1)
		}
		stops[i] = GradientStop{Position: pos, Color: c}
	}
	return stops
}

// LinearGradient blends its stops along the segment from Start to End.
type LinearGradient struct {
	Start Offset
	End   Offset
	Stops []GradientStop
}

// ColorAt projects p onto the gradient axis.
func (g LinearGradient) ColorAt(p Offset) color.RGBA {
	dx, dy := g.End.X-g.Start.X, g.End.Y-g.Start.Y
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return colorAtStops(g.Stops, 0)
	}
	t := ((p.X-g.Start.X)*dx + (p.Y-g.Start.Y)*dy) / lenSq
	return colorAtStops(g.Stops, t)
}

// RadialGradient blends its stops from Center outward to Radius.
type RadialGradient struct {
	Center Offset
	Radius float64
	Stops  []GradientStop
}

// ColorAt uses the distance of p from the centre.
func (g RadialGradient) ColorAt(p Offset) color.RGBA {
	if g.Radius <= 0 {
		return colorAtStops(g.Stops, 1)
	}
	t := math.Hypot(p.X-g.Center.X, p.Y-g.Center.Y) / g.Radius
	return colorAtStops(g.Stops, t)
}

// colorAtStops interpolates stops at t. Values outside the stop range take
// the nearest end color. Stops are expected in ascending position.
func colorAtStops(stops []GradientStop, t float64) color.RGBA {
	switch len(stops) {
	case 0:
		return color.RGBA{}
	case 1:
		return stops[0].Color
	}
	if t <= stops[0].Position {
		return stops[0].Color
	}
	for i := 1; i < len(stops); i++ {
		a, b := stops[i-1], stops[i]
		if t <= b.Position {
			span := b.Position - a.Position
			if span <= 0 {
				return b.Color
			}
			return lerpColor(a.Color, b.Color, clamp01((t-a.Position)/span))
		}
	}
	return stops[len(stops)-1].Color
}

func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + (float64(y)-float64(x))*t))
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
