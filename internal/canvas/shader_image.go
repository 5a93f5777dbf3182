package canvas

import (
	"image"
	"image/color"
)

// ShaderImage exposes a paint as an image in device space. At maps each
// device pixel centre back through Inverse before evaluating the paint,
// so gradients stay attached to the local coordinates of the draw call.
type ShaderImage struct {
	Paint   Paint
	Inverse Matrix
	Rect    image.Rectangle
}

// NewShaderImage returns a ShaderImage for paint drawn under transform m.
func NewShaderImage(paint Paint, m Matrix, bounds image.Rectangle) *ShaderImage {
	return &ShaderImage{Paint: paint, Inverse: m.Invert(), Rect: bounds}
}

func (s *ShaderImage) ColorModel() color.Model { return color.RGBAModel }

func (s *ShaderImage) Bounds() image.Rectangle { return s.Rect }

func (s *ShaderImage) At(x, y int) color.Color {
	local := s.Inverse.Apply(Offset{X: float64(x) + 0.5, Y: float64(y) + 0.5})
	return s.Paint.ColorAt(local)
}

// Render bakes the shader into an RGBA image.
func (s *ShaderImage) Render() *image.RGBA {
	img := image.NewRGBA(s.Rect)
	for y := s.Rect.Min.Y; y < s.Rect.Max.Y; y++ {
		for x := s.Rect.Min.X; x < s.Rect.Max.X; x++ {
			img.SetRGBA(x, y, s.At(x, y).(color.RGBA))
		}
	}
	return img
}
