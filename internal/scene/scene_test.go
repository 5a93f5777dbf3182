package scene

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/canvas-animations/internal/canvas"
	"github.com/iburimskiy/canvas-animations/internal/canvas/raster"
	"github.com/iburimskiy/canvas-animations/internal/errors"
	"github.com/iburimskiy/canvas-animations/internal/timeline"
)

// halfDrawn draws one path and then fails.
type halfDrawn struct{}

func (halfDrawn) Name() string { return "half" }

func (halfDrawn) Draw(c canvas.Canvas, f timeline.Frame) error {
	p := canvas.NewPath()
	p.AddRect(canvas.RectFromLTWH(0, 0, 4, 4))
	c.DrawPath(p, canvas.Fill(red))
	return errors.DegenerateGeometry("half", 0, 0)
}

func (halfDrawn) Describe(canvas.Size, timeline.Frame) (any, error) { return nil, nil }

func TestRenderLeavesCanvasUntouchedOnError(t *testing.T) {
	rc := raster.New(4, 4)
	err := Render(halfDrawn{}, rc, timeline.Frame{})
	assert.ErrorIs(t, err, errors.ErrDegenerateGeometry)
	assert.Equal(t, color.RGBA{}, rc.Image().RGBAAt(1, 1))
}

func TestRenderReplaysScene(t *testing.T) {
	s, err := NewWaves(nil, 0, true)
	require.NoError(t, err)
	s.Background = color.RGBA{B: 255, A: 255}

	rc := raster.New(6, 6)
	require.NoError(t, Render(s, rc, timeline.Frame{}))
	assert.Equal(t, s.Background, rc.Image().RGBAAt(3, 3))

	rec := canvas.NewRecorder(canvas.Size{Width: 200, Height: 200})
	require.NoError(t, Render(NewClock(), rec, frameAt(0, 0, 0)))
	assert.Len(t, rec.Paths(), 67)
	assert.Equal(t, canvas.Identity(), rec.Transform())
}
