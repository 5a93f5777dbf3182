package canvas

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	red  = color.RGBA{R: 255, A: 255}
	blue = color.RGBA{B: 255, A: 255}
)

func assertOffset(t *testing.T, want, got Offset) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, 1e-9, "x")
	assert.InDelta(t, want.Y, got.Y, 1e-9, "y")
}

func TestMatrixTranslateThenRotate(t *testing.T) {
	m := Identity().Translate(100, 50).Rotate(math.Pi / 2)
	// (0, 10) points down locally; a quarter turn clockwise sends it left
	assertOffset(t, Offset{X: 90, Y: 50}, m.Apply(Offset{X: 0, Y: 10}))

	inv := m.Invert()
	assertOffset(t, Offset{X: 0, Y: 10}, inv.Apply(Offset{X: 90, Y: 50}))
}

func TestMatrixHalfTurnFlipsHand(t *testing.T) {
	m := Identity().Translate(50, 50).Rotate(math.Pi)
	assertOffset(t, Offset{X: 50, Y: 20}, m.Apply(Offset{X: 0, Y: 30}))
}

func TestMatrixSingularInvert(t *testing.T) {
	assert.Equal(t, Identity(), Matrix{}.Invert())
}

func TestSizeHelpers(t *testing.T) {
	assert.True(t, Size{}.IsEmpty())
	assert.True(t, Size{Width: 10, Height: -1}.IsEmpty())
	assert.True(t, Size{Width: math.NaN(), Height: 1}.IsEmpty())
	assert.False(t, Size{Width: 1, Height: 1}.IsEmpty())
	assert.Equal(t, 3.0, Size{Width: 3, Height: 8}.Min())
	assert.Equal(t, Offset{X: 1.5, Y: 4}, Size{Width: 3, Height: 8}.Center())
}

func TestRectHelpers(t *testing.T) {
	r := RectFromLTWH(10, 20, 100, 50)
	assert.Equal(t, 100.0, r.Width())
	assert.Equal(t, 50.0, r.Height())
	assert.Equal(t, Offset{X: 60, Y: 45}, r.Center())
	assert.Equal(t, RectFromLTWH(15, 25, 90, 40), r.Inset(5, 5))
}

func TestPathSubpaths(t *testing.T) {
	p := NewPath()
	p.AddRect(RectFromLTWH(0, 0, 2, 1))
	p.AddPolyline([]Offset{{X: 5, Y: 5}, {X: 6, Y: 7}})
	p.LineTo(8, 8)

	subpaths, closed := p.Subpaths()
	require.Len(t, subpaths, 2)
	assert.Equal(t, []bool{true, false}, closed)
	assert.Len(t, subpaths[0], 4)
	assert.Equal(t, []Offset{{X: 5, Y: 5}, {X: 6, Y: 7}, {X: 8, Y: 8}}, subpaths[1])
	assert.Equal(t, Rect{Left: 0, Top: 0, Right: 8, Bottom: 8}, p.Bounds())
	assert.Equal(t, "line_to", PathOpLineTo.String())
}

func TestPathLineAfterCloseStartsAtSubpathStart(t *testing.T) {
	p := NewPath()
	p.MoveTo(1, 1)
	p.LineTo(2, 1)
	p.Close()
	p.LineTo(3, 3)

	subpaths, _ := p.Subpaths()
	require.Len(t, subpaths, 2)
	assert.Equal(t, []Offset{{X: 1, Y: 1}, {X: 3, Y: 3}}, subpaths[1])
}

func TestAddCircle(t *testing.T) {
	p := NewPath()
	p.AddCircle(Offset{X: 10, Y: 10}, 5)
	subpaths, closed := p.Subpaths()
	require.Len(t, subpaths, 1)
	assert.True(t, closed[0])
	for _, pt := range subpaths[0] {
		assert.InDelta(t, 5, math.Hypot(pt.X-10, pt.Y-10), 1e-9)
	}
}

func TestLinearGradient(t *testing.T) {
	g := LinearGradient{Start: Offset{}, End: Offset{X: 100}, Stops: EvenStops(red, blue)}
	assert.Equal(t, red, g.ColorAt(Offset{X: -5}))
	assert.Equal(t, blue, g.ColorAt(Offset{X: 200}))
	mid := g.ColorAt(Offset{X: 50, Y: 30})
	assert.Equal(t, color.RGBA{R: 128, B: 128, A: 255}, mid)
}

func TestRadialGradient(t *testing.T) {
	g := RadialGradient{
		Center: Offset{X: 50, Y: 50},
		Radius: 50,
		Stops: []GradientStop{
			{Position: 0, Color: red},
			{Position: 0.5, Color: red},
			{Position: 1, Color: blue},
		},
	}
	assert.Equal(t, red, g.ColorAt(Offset{X: 60, Y: 50}))
	assert.Equal(t, blue, g.ColorAt(Offset{X: 0, Y: 0}))
	assert.Equal(t, color.RGBA{}, colorAtStops(nil, 0.5))
}

func TestPaintColorAt(t *testing.T) {
	assert.Equal(t, red, Fill(red).ColorAt(Offset{X: 4}))
	p := Stroke(red, 2)
	p.Shader = LinearGradient{End: Offset{X: 10}, Stops: EvenStops(blue)}
	assert.Equal(t, blue, p.ColorAt(Offset{}))
	assert.Equal(t, "stroke", p.Style.String())
}

func TestStrokePolygons(t *testing.T) {
	quads := StrokePolygons([]Offset{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 0}}, false, 2)
	require.Len(t, quads, 1, "zero-length segments are skipped")
	assert.Equal(t, []Offset{{X: 0, Y: 1}, {X: 10, Y: 1}, {X: 10, Y: -1}, {X: 0, Y: -1}}, quads[0])

	closed := StrokePolygons([]Offset{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}}, true, 1)
	assert.Len(t, closed, 3)
	assert.Nil(t, StrokePolygons([]Offset{{}}, false, 1))
}

func TestRecorderScopesTransforms(t *testing.T) {
	r := NewRecorder(Size{Width: 100, Height: 100})
	path := NewPath()
	path.AddRect(RectFromLTWH(0, 0, 1, 1))

	WithShadow(r, Shadow{Radius: 3}, func() {
		r.Translate(50, 50)
		r.Rotate(math.Pi)
		r.DrawPath(path, Fill(red))
	})
	r.DrawPath(path, Fill(blue))

	paths := r.Paths()
	require.Len(t, paths, 2)
	assert.Equal(t, 1, paths[0].Depth)
	assertOffset(t, Offset{X: 49, Y: 49}, paths[0].Transform.Apply(Offset{X: 1, Y: 1}))
	assert.Equal(t, 0, paths[1].Depth)
	assert.Equal(t, Identity(), paths[1].Transform)
	assert.Equal(t, Identity(), r.Transform())

	WithTransform(r, func() { r.Translate(3, 4) })
	assert.Equal(t, Identity(), r.Transform())

	// unmatched Restore is ignored
	r.Restore()
	assert.Equal(t, Identity(), r.Transform())
}

func TestRecorderReplay(t *testing.T) {
	src := NewRecorder(Size{Width: 10, Height: 10})
	src.Clear(blue)
	WithTransform(src, func() {
		src.Translate(1, 2)
		src.DrawText("12", Offset{X: 3, Y: 4}, TextStyle{Size: 8, Color: red})
	})

	dst := NewRecorder(src.Size())
	src.Replay(dst)
	require.Len(t, dst.Ops, len(src.Ops))
	texts := dst.Texts()
	require.Len(t, texts, 1)
	assert.Equal(t, Identity().Translate(1, 2), texts[0].Transform)
}

func TestShaderImageUsesLocalCoordinates(t *testing.T) {
	p := Fill(red)
	p.Shader = LinearGradient{Start: Offset{}, End: Offset{X: 10}, Stops: EvenStops(red, blue)}
	img := NewShaderImage(p, Identity().Translate(10, 0), image.Rect(0, 0, 30, 1))

	assert.Equal(t, red, img.At(5, 0))
	assert.Equal(t, blue, img.At(25, 0))
	rendered := img.Render()
	assert.Equal(t, red, rendered.RGBAAt(0, 0))
}
