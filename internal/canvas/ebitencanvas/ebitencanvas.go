// Package ebitencanvas implements canvas.Canvas on an ebiten image, for
// drawing inside the game loop.
package ebitencanvas

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/iburimskiy/canvas-animations/internal/canvas"
)

// maxCachedShaders bounds the baked gradient textures kept between frames.
const maxCachedShaders = 32

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)

	face = text.NewGoXFace(basicfont.Face7x13)
)

func init() {
	whiteImage.Fill(color.White)
}

type state struct {
	m     canvas.Matrix
	layer *layer
}

type layer struct {
	img    *ebiten.Image
	parent *ebiten.Image
	shadow canvas.Shadow
}

// Surface owns the resources reused across frames: offscreen layers and
// baked gradient textures. Create one per window and call Begin each frame.
type Surface struct {
	layers  []*ebiten.Image
	shaders map[string]*ebiten.Image
}

// NewSurface returns an empty Surface.
func NewSurface() *Surface {
	return &Surface{shaders: map[string]*ebiten.Image{}}
}

// Begin returns a Canvas drawing onto screen for one frame.
func (s *Surface) Begin(screen *ebiten.Image) *Canvas {
	return &Canvas{
		surface: s,
		screen:  screen,
		target:  screen,
		m:       canvas.Identity(),
	}
}

func (s *Surface) layerImage(depth int, bounds image.Rectangle) *ebiten.Image {
	for len(s.layers) <= depth {
		s.layers = append(s.layers, nil)
	}
	img := s.layers[depth]
	if img == nil || img.Bounds() != bounds {
		if img != nil {
			img.Deallocate()
		}
		img = ebiten.NewImage(bounds.Dx(), bounds.Dy())
		s.layers[depth] = img
	}
	img.Clear()
	return img
}

func (s *Surface) shaderImage(paint canvas.Paint, m canvas.Matrix, bounds image.Rectangle) *ebiten.Image {
	key := fmt.Sprintf("%#v|%v|%v", paint.Shader, m, bounds)
	if img, ok := s.shaders[key]; ok {
		return img
	}
	if len(s.shaders) >= maxCachedShaders {
		for k, img := range s.shaders {
			img.Deallocate()
			delete(s.shaders, k)
		}
	}
	img := ebiten.NewImageFromImage(canvas.NewShaderImage(paint, m, bounds).Render())
	s.shaders[key] = img
	return img
}

// Canvas draws onto an ebiten image for the duration of one frame.
type Canvas struct {
	surface *Surface
	screen  *ebiten.Image
	target  *ebiten.Image
	m       canvas.Matrix
	stack   []state
	depth   int
}

func (c *Canvas) Size() canvas.Size {
	b := c.screen.Bounds()
	return canvas.Size{Width: float64(b.Dx()), Height: float64(b.Dy())}
}

func (c *Canvas) Save() {
	c.stack = append(c.stack, state{m: c.m})
}

func (c *Canvas) SaveLayerShadow(shadow canvas.Shadow) {
	l := &layer{
		img:    c.surface.layerImage(c.depth, c.screen.Bounds()),
		parent: c.target,
		shadow: shadow,
	}
	c.depth++
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
		c.depth--
	}
}

func (c *Canvas) Translate(dx, dy float64) {
	c.m = c.m.Translate(dx, dy)
}

func (c *Canvas) Rotate(radians float64) {
	c.m = c.m.Rotate(radians)
}

func (c *Canvas) Clear(clr color.RGBA) {
	c.target.Fill(clr)
}

func (c *Canvas) DrawPath(path *canvas.Path, paint canvas.Paint) {
	if path == nil {
		return
	}
	var p vector.Path
	for _, cmd := range path.Commands {
		pt := c.m.Apply(cmd.To)
		switch cmd.Op {
		case canvas.PathOpMoveTo:
			p.MoveTo(float32(pt.X), float32(pt.Y))
		case canvas.PathOpLineTo:
			p.LineTo(float32(pt.X), float32(pt.Y))
		case canvas.PathOpClose:
			p.Close()
		}
	}

	var (
		vs []ebiten.Vertex
		is []uint16
	)
	op := &ebiten.DrawTrianglesOptions{
		AntiAlias:      true,
		ColorScaleMode: ebiten.ColorScaleModePremultipliedAlpha,
	}
	if paint.Style == canvas.PaintStroke {
		width := paint.StrokeWidth * scaleOf(c.m)
		if !(width > 0) {
			width = 1
		}
		vs, is = p.AppendVerticesAndIndicesForStroke(vs, is, &vector.StrokeOptions{
			Width:    float32(width),
			LineJoin: vector.LineJoinRound,
			LineCap:  vector.LineCapRound,
		})
	} else {
		vs, is = p.AppendVerticesAndIndicesForFilling(vs, is)
		op.FillRule = ebiten.NonZero
	}
	if len(is) == 0 {
		return
	}

	src := whiteSubImage
	if paint.Shader != nil {
		src = c.surface.shaderImage(paint, c.m, c.screen.Bounds())
		for i := range vs {
			vs[i].SrcX, vs[i].SrcY = vs[i].DstX, vs[i].DstY
			vs[i].ColorR, vs[i].ColorG, vs[i].ColorB, vs[i].ColorA = 1, 1, 1, 1
		}
	} else {
		r, g, b, a := premultiplied(paint.Color)
		for i := range vs {
			vs[i].SrcX, vs[i].SrcY = 1, 1
			vs[i].ColorR, vs[i].ColorG, vs[i].ColorB, vs[i].ColorA = r, g, b, a
		}
	}
	c.target.DrawTriangles(vs, is, src, op)
}

func (c *Canvas) DrawText(str string, at canvas.Offset, style canvas.TextStyle) {
	if str == "" {
		return
	}
	scale := 1.0
	if style.Size > 0 {
		scale = style.Size / float64(basicfont.Face7x13.Height)
	}
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(at.X, at.Y)
	op.GeoM.Concat(geoM(c.m))
	op.ColorScale.ScaleWithColor(style.Color)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(c.target, str, face, op)
}

// composite draws a blurred approximation of the layer's shadow followed
// by the layer.
func composite(l *layer) {
	if a := l.shadow.Color.A; a > 0 {
		r := float64(int(l.shadow.Radius + 0.5))
		offsets := []float64{0}
		if r > 0 {
			offsets = []float64{-r, 0, r}
		}
		alpha := float32(a) / 255 / float32(len(offsets)*len(offsets))
		for _, dx := range offsets {
			for _, dy := range offsets {
				op := &ebiten.DrawImageOptions{}
				op.GeoM.Translate(l.shadow.Offset.X+dx, l.shadow.Offset.Y+dy)
				op.ColorScale.Scale(0, 0, 0, alpha)
				l.parent.DrawImage(l.img, op)
			}
		}
	}
	l.parent.DrawImage(l.img, nil)
}
