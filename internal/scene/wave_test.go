package scene

import (
	"image/color"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/canvas-animations/internal/canvas"
	"github.com/iburimskiy/canvas-animations/internal/config"
	"github.com/iburimskiy/canvas-animations/internal/errors"
	"github.com/iburimskiy/canvas-animations/internal/timeline"
	"github.com/iburimskiy/canvas-animations/internal/wave"
)

func TestStaticWavePath(t *testing.T) {
	rec := canvas.NewRecorder(canvas.Size{Width: 360, Height: 200})
	s := NewWave(false)
	require.NoError(t, s.Draw(rec, timeline.Frame{Phase: 0.5}))

	paths := rec.Paths()
	require.Len(t, paths, 1)
	op := paths[0]
	assert.Equal(t, canvas.PaintStroke, op.Paint.Style)
	g, ok := op.Paint.Shader.(canvas.LinearGradient)
	require.True(t, ok)
	assert.Equal(t, 360.0, g.End.X)

	subpaths, _ := op.Path.Subpaths()
	require.Len(t, subpaths, 1)
	require.Len(t, subpaths[0], 361)
	for _, p := range subpaths[0] {
		y, err := wave.Sample(p.X, 360, 200, config.StaticWaveFrequency, 0.2*200, 0.5)
		require.NoError(t, err)
		assert.InDelta(t, y, p.Y, 1e-9)
	}
}

func TestStaticWaveFill(t *testing.T) {
	rec := canvas.NewRecorder(canvas.Size{Width: 100, Height: 100})
	require.NoError(t, NewWave(true).Draw(rec, timeline.Frame{}))
	assert.Equal(t, canvas.PaintFill, rec.Paths()[0].Paint.Style)
}

func TestStaticWaveInvalidFrequency(t *testing.T) {
	s := NewWave(false)
	s.Frequency = 0
	rec := canvas.NewRecorder(canvas.Size{Width: 100, Height: 100})
	assert.ErrorIs(t, s.Draw(rec, timeline.Frame{}), errors.ErrInvalidFrequency)
	assert.Empty(t, rec.Ops)
}

func TestWavesDrawsEveryInstance(t *testing.T) {
	s, err := NewWaves(rand.New(rand.NewPCG(7, 7)), 5, false)
	require.NoError(t, err)

	rec := canvas.NewRecorder(canvas.Size{Width: 300, Height: 150})
	require.NoError(t, s.Draw(rec, timeline.Frame{Phase: math.Pi}))

	require.Equal(t, canvas.OpClear, rec.Ops[0].Kind)
	assert.Equal(t, config.WaveBackground, rec.Ops[0].Color)
	paths := rec.Paths()
	require.Len(t, paths, 5)
	for i, op := range paths {
		assert.Equal(t, config.WavePalette[i], op.Paint.Color)
		assert.Equal(t, float64(i)+2, op.Paint.StrokeWidth)

		subpaths, _ := op.Path.Subpaths()
		first := subpaths[0][0]
		assert.Equal(t, 0.0, first.X)
		assert.InDelta(t, 75+float64(i)*config.WaveOffsetStep, first.Y, 1e-9)
	}
}

func TestWavesSharePhase(t *testing.T) {
	a, err := wave.NewInstance(0, 20, 2, 0)
	require.NoError(t, err)
	b, err := wave.NewInstance(1, 20, 2, 10)
	require.NoError(t, err)
	s := &Waves{Instances: []wave.Instance{a, b}, Step: 1, Palette: config.WavePalette}

	rec := canvas.NewRecorder(canvas.Size{Width: 120, Height: 80})
	require.NoError(t, s.Draw(rec, timeline.Frame{Phase: 1}))
	p0, _ := rec.Paths()[0].Path.Subpaths()
	p1, _ := rec.Paths()[1].Path.Subpaths()
	require.Len(t, p1[0], len(p0[0]))
	for j := range p0[0] {
		assert.InDelta(t, 10, p1[0][j].Y-p0[0][j].Y, 1e-9)
	}
}

func TestWavesDegenerate(t *testing.T) {
	s, err := NewWaves(rand.New(rand.NewPCG(1, 1)), 3, true)
	require.NoError(t, err)
	rec := canvas.NewRecorder(canvas.Size{Width: 0, Height: 0})
	assert.ErrorIs(t, s.Draw(rec, timeline.Frame{}), errors.ErrDegenerateGeometry)
	assert.Empty(t, rec.Ops)

	_, err = s.Describe(canvas.Size{}, timeline.Frame{})
	assert.ErrorIs(t, err, errors.ErrDegenerateGeometry)
}

func TestWavesDescribe(t *testing.T) {
	s, err := NewWaves(rand.New(rand.NewPCG(3, 3)), 2, false)
	require.NoError(t, err)
	g, err := s.Describe(canvas.Size{Width: 50, Height: 50}, timeline.Frame{Phase: 2})
	require.NoError(t, err)
	geom := g.(WavesGeometry)
	assert.Equal(t, 2.0, geom.Phase)
	assert.Len(t, geom.Paths, 2)
	assert.Len(t, geom.Paths[0], 51)
}

func TestPaletteColorExtends(t *testing.T) {
	palette := []color.RGBA{{R: 1, A: 255}}
	assert.Equal(t, palette[0], paletteColor(palette, 0))
	extra := paletteColor(palette, 1)
	assert.Equal(t, uint8(255), extra.A)
	assert.NotEqual(t, paletteColor(palette, 2), extra)
}

func TestHueColor(t *testing.T) {
	assert.Equal(t, color.RGBA{R: 255, A: 255}, hueColor(0, 1, 1))
	assert.Equal(t, color.RGBA{G: 255, A: 255}, hueColor(120, 1, 1))
	assert.Equal(t, color.RGBA{B: 255, A: 255}, hueColor(240, 1, 1))
	assert.Equal(t, hueColor(30, 1, 1), hueColor(390, 1, 1))
	assert.Equal(t, hueColor(300, 1, 1), hueColor(-60, 1, 1))
	assert.Equal(t, color.RGBA{R: 128, G: 128, B: 128, A: 255}, hueColor(200, 0, 0.5))
}

func TestWavesBeyondPalette(t *testing.T) {
	r, err := DefaultRegistry(Options{Seed: 4, Count: 8})
	require.NoError(t, err)
	s, ok := r.Get("waves")
	require.True(t, ok)
	require.Len(t, s.(*Waves).Instances, 8)

	rec := canvas.NewRecorder(canvas.Size{Width: 200, Height: 120})
	require.NoError(t, s.Draw(rec, timeline.Frame{}))
	paths := rec.Paths()
	require.Len(t, paths, 8)
	seen := map[color.RGBA]bool{}
	for _, op := range paths {
		assert.Equal(t, uint8(255), op.Paint.Color.A)
		assert.False(t, seen[op.Paint.Color], "colour %v repeated", op.Paint.Color)
		seen[op.Paint.Color] = true
	}
	for _, op := range paths[len(config.WavePalette):] {
		assert.NotContains(t, config.WavePalette, op.Paint.Color)
	}
}

func TestDefaultRegistry(t *testing.T) {
	r, err := DefaultRegistry(Options{Seed: 9, Brand: "Test"})
	require.NoError(t, err)
	assert.Equal(t, []string{"clock", "wave", "waves"}, r.List())
	w, _ := r.Get("waves")
	assert.Len(t, w.(*Waves).Instances, config.WaveInstanceCount)

	s, ok := r.Get("clock")
	require.True(t, ok)
	assert.Equal(t, "Test", s.(*Clock).Face.Brand)

	_, ok = r.Get("matrix")
	assert.False(t, ok)

	again, err := DefaultRegistry(Options{Seed: 9})
	require.NoError(t, err)
	w1, _ := r.Get("waves")
	w2, _ := again.Get("waves")
	assert.Equal(t, w1.(*Waves).Instances, w2.(*Waves).Instances)
}
