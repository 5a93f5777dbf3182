package wave

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/canvas-animations/internal/errors"
)

func TestEnvelopeShape(t *testing.T) {
	for _, w := range []float64{1, 3, 360, 1023} {
		assert.Equal(t, 1.0, Envelope(w/2, w), "centre of %g", w)
		assert.Equal(t, 0.0, Envelope(0, w), "left edge of %g", w)
		assert.Equal(t, 0.0, Envelope(w, w), "right edge of %g", w)
	}
	assert.Less(t, Envelope(-10, 100), 0.0)
}

func TestSampleEdgesAreMidHeight(t *testing.T) {
	for _, phase := range []float64{0, 0.3, math.Pi, 5} {
		y, err := Sample(0, 400, 300, 5, 80, phase)
		require.NoError(t, err)
		assert.Equal(t, 150.0, y)

		y, err = Sample(400, 400, 300, 5, 80, phase)
		require.NoError(t, err)
		assert.Equal(t, 150.0, y)
	}
}

func TestSampleCentreUsesFullStrength(t *testing.T) {
	y, err := Sample(200, 400, 300, 5, 80, 0.25)
	require.NoError(t, err)
	wavelength := 400.0 / 5
	assert.InDelta(t, 80*math.Sin(200/wavelength+0.25)+150, y, 1e-12)
}

func TestSampleUsesRadians(t *testing.T) {
	const h = 200.0
	y, err := Sample(90, 360, h, 1, 10, 0)
	require.NoError(t, err)

	// wavelength 360, relativeX = 0.25 rad, envelope = 1 - 0.5² = 0.75
	want := 0.75*10*math.Sin(0.25) + h/2
	assert.InDelta(t, want, y, 1e-12)

	degrees := 0.75*10*math.Sin(0.25*math.Pi/180) + h/2
	assert.Greater(t, math.Abs(y-degrees), 1.0)
}

func TestSamplePeriodicInPhase(t *testing.T) {
	for x := 0.0; x <= 640; x += 13 {
		for _, phase := range []float64{0, 1, 2.5, 10} {
			a, err := Sample(x, 640, 480, 3, 40, phase)
			require.NoError(t, err)
			b, err := Sample(x, 640, 480, 3, 40, phase+2*math.Pi)
			require.NoError(t, err)
			assert.InDelta(t, a, b, 1e-9)
		}
	}
}

func TestSampleRejectsFrequency(t *testing.T) {
	for _, f := range []float64{0, -1, math.NaN()} {
		y, err := Sample(10, 100, 100, f, 10, 0)
		assert.ErrorIs(t, err, errors.ErrInvalidFrequency)
		assert.False(t, math.IsNaN(y) || math.IsInf(y, 0))
	}
}

func TestSampleRejectsDegenerateGeometry(t *testing.T) {
	_, err := Sample(0, 0, 100, 1, 10, 0)
	assert.ErrorIs(t, err, errors.ErrDegenerateGeometry)
	_, err = Sample(0, 100, -1, 1, 10, 0)
	assert.ErrorIs(t, err, errors.ErrDegenerateGeometry)
}

func TestBuildPathSamplesEveryUnit(t *testing.T) {
	p := Params{Strength: 50, Frequency: 5, Phase: 0.5}
	points, err := BuildPath(p, 360, 200, DefaultStep)
	require.NoError(t, err)
	require.Len(t, points, 361)

	for i, pt := range points {
		assert.Equal(t, float64(i), pt.X)
		y, err := Sample(pt.X, 360, 200, p.Frequency, p.Strength, p.Phase)
		require.NoError(t, err)
		assert.Equal(t, y, pt.Y)
	}
	assert.Equal(t, 100.0, points[0].Y)
	assert.Equal(t, 100.0, points[360].Y)
}

func TestBuildPathEndsOnWidth(t *testing.T) {
	points, err := BuildPath(Params{Strength: 1, Frequency: 1}, 10, 10, 3)
	require.NoError(t, err)
	xs := make([]float64, len(points))
	for i, pt := range points {
		xs[i] = pt.X
	}
	assert.Equal(t, []float64{0, 3, 6, 9, 10}, xs)

	points, err = BuildPath(Params{Strength: 1, Frequency: 1}, 10, 10, 0)
	require.NoError(t, err)
	assert.Len(t, points, 11)
}

func TestBuildPathErrors(t *testing.T) {
	_, err := BuildPath(Params{Strength: 1, Frequency: 0}, 10, 10, 1)
	assert.ErrorIs(t, err, errors.ErrInvalidFrequency)

	_, err = BuildPath(Params{Strength: 1, Frequency: 1}, 0, 10, 1)
	assert.ErrorIs(t, err, errors.ErrDegenerateGeometry)
}

func TestBuildPathCoarsensTinyStep(t *testing.T) {
	for _, step := range []float64{1e-300, math.SmallestNonzeroFloat64, 1e-9} {
		points, err := BuildPath(Params{Strength: 1, Frequency: 1}, 100, 100, step)
		require.NoError(t, err, "step %g", step)
		assert.LessOrEqual(t, len(points), MaxSamples+2)
		assert.GreaterOrEqual(t, len(points), MaxSamples)
		assert.Equal(t, 0.0, points[0].X)
		assert.Equal(t, 100.0, points[len(points)-1].X)
	}
}
