// Package raster implements canvas.Canvas on an in-memory RGBA image using
// the golang.org/x/image/vector rasterizer. It needs no window or GPU and
// backs the snapshot command and pixel tests.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/iburimskiy/canvas-animations/internal/canvas"
	"github.com/iburimskiy/canvas-animations/internal/errors"
)

type layer struct {
	img    *image.RGBA
	parent *image.RGBA
	shadow canvas.Shadow
}

type state struct {
	m     canvas.Matrix
	layer *layer
}

// Canvas draws into an *image.RGBA.
type Canvas struct {
	dst    *image.RGBA
	target *image.RGBA
	m      canvas.Matrix
	stack  []state
	face   font.Face
}

// New returns a Canvas over a new transparent width x height image.
func New(width, height int) *Canvas {
	return NewFromImage(image.NewRGBA(image.Rect(0, 0, width, height)))
}

// NewFromImage returns a Canvas drawing into img.
func NewFromImage(img *image.RGBA) *Canvas {
	return &Canvas{
		dst:    img,
		target: img,
		m:      canvas.Identity(),
		face:   basicfont.Face7x13,
	}
}

// Image returns the destination image.
func (c *Canvas) Image() *image.RGBA {
	return c.dst
}

// EncodePNG writes the destination image to w as PNG.
func (c *Canvas) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, c.dst); err != nil {
		return errors.Wrap("raster.EncodePNG", errors.KindRender, err)
	}
	return nil
}

func (c *Canvas) Size() canvas.Size {
	b := c.dst.Bounds()
	return canvas.Size{Width: float64(b.Dx()), Height: float64(b.Dy())}
}

func (c *Canvas) Save() {
	c.stack = append(c.stack, state{m: c.m})
}

func (c *Canvas) SaveLayerShadow(shadow canvas.Shadow) {
	l := &layer{
		img:    image.NewRGBA(c.dst.Bounds()),
		parent: c.target,
		shadow: shadow,
	}
	c.stack = append(c.stack, state{m: c.m, layer: l})
	c.target = l.img
}

func (c *Canvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	s := c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
	c.m = s.m
	if s.layer != nil {
		composite(s.layer)
		c.target = s.layer.parent
	}
}

func (c *Canvas) Translate(dx, dy float64) {
	c.m = c.m.Translate(dx, dy)
}

func (c *Canvas) Rotate(radians float64) {
	c.m = c.m.Rotate(radians)
}

func (c *Canvas) Clear(clr color.RGBA) {
	draw.Draw(c.target, c.target.Bounds(), image.NewUniform(clr), image.Point{}, draw.Src)
}

func (c *Canvas) DrawPath(path *canvas.Path, paint canvas.Paint) {
	if path == nil {
		return
	}
	subpaths, closed := path.Subpaths()

	var polys [][]canvas.Offset
	switch paint.Style {
	case canvas.PaintStroke:
		width := paint.StrokeWidth
		if !(width > 0) {
			width = 1
		}
		for i, sp := range subpaths {
			polys = append(polys, canvas.StrokePolygons(sp, closed[i], width)...)
		}
	default:
		for _, sp := range subpaths {
			if len(sp) >= 3 {
				polys = append(polys, sp)
			}
		}
	}
	if len(polys) == 0 {
		return
	}

	b := c.target.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.DrawOp = draw.Over
	drawn := false
	for _, poly := range polys {
		device := make([]canvas.Offset, len(poly))
		for i, p := range poly {
			device[i] = c.m.Apply(p)
		}
		device = clipPolygon(device, float64(b.Dx()), float64(b.Dy()))
		if len(device) < 3 {
			continue
		}
		z.MoveTo(float32(device[0].X), float32(device[0].Y))
		for _, p := range device[1:] {
			z.LineTo(float32(p.X), float32(p.Y))
		}
		z.ClosePath()
		drawn = true
	}
	if !drawn {
		return
	}

	var src image.Image = image.NewUniform(paint.Color)
	if paint.Shader != nil {
		src = canvas.NewShaderImage(paint, c.m, b)
	}
	z.Draw(c.target, b, src, b.Min)
}

func (c *Canvas) DrawText(text string, at canvas.Offset, style canvas.TextStyle) {
	if text == "" {
		return
	}
	metrics := c.face.Metrics()
	advance := font.MeasureString(c.face, text).Ceil()
	lineHeight := metrics.Height.Ceil()
	if advance <= 0 || lineHeight <= 0 {
		return
	}

	glyphs := image.NewRGBA(image.Rect(0, 0, advance, lineHeight))
	d := font.Drawer{
		Dst:  glyphs,
		Src:  image.NewUniform(style.Color),
		Face: c.face,
		Dot:  fixed.P(0, metrics.Ascent.Ceil()),
	}
	d.DrawString(text)

	scale := 1.0
	if style.Size > 0 {
		scale = style.Size / float64(lineHeight)
	}
	w, h := float64(advance)*scale, float64(lineHeight)*scale
	center := c.m.Apply(at)
	r := image.Rect(
		int(math.Round(center.X-w/2)),
		int(math.Round(center.Y-h/2)),
		int(math.Round(center.X+w/2)),
		int(math.Round(center.Y+h/2)),
	)
	xdraw.BiLinear.Scale(c.target, r, glyphs, glyphs.Bounds(), xdraw.Over, nil)
}
