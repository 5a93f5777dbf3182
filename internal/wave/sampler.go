// Package wave samples the enveloped sine curve drawn by the wave views.
//
// The vertical displacement at x is the product of a downward parabola,
// equal to 1 at the horizontal centre and 0 at both edges, and a sine of
// x/wavelength + phase. Paths are rebuilt from scratch every frame.
package wave

import (
	"math"

	"github.com/iburimskiy/canvas-animations/internal/errors"
)

const (
	// DefaultStep is the reference sampling density: one sample per unit of x.
	DefaultStep = 1.0
	// MaxSamples bounds the number of steps BuildPath takes across the width.
	// Finer steps are coarsened to width/MaxSamples.
	MaxSamples = 1 << 16
)

// Params describes one wave for one frame.
type Params struct {
	// Strength is the peak vertical displacement in view units.
	Strength float64 `yaml:"strength"`
	// Frequency divides the view width into wavelengths. Must be > 0.
	Frequency float64 `yaml:"frequency"`
	// Phase is the radian offset added to the sine argument.
	Phase float64 `yaml:"phase"`
}

// Validate reports ErrInvalidFrequency for a frequency <= 0 or NaN.
func (p Params) Validate() error {
	if !(p.Frequency > 0) {
		return errors.InvalidFrequency("wave.Params", p.Frequency)
	}
	return nil
}

// Point is a single path sample.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Envelope returns 1 - d², where d is the distance of x from the
// horizontal centre normalized to [-1, 1] over [0, width]. It is negative
// outside [0, width].
func Envelope(x, width float64) float64 {
	midWidth := width / 2
	d := (x - midWidth) / midWidth
	return 1 - d*d
}

// Sample returns the y coordinate of the wave at x.
func Sample(x, width, height, frequency, strength, phase float64) (float64, error) {
	if !(frequency > 0) {
		return 0, errors.InvalidFrequency("wave.Sample", frequency)
	}
	if !(width > 0) || !(height > 0) {
		return 0, errors.DegenerateGeometry("wave.Sample", width, height)
	}
	return sample(x, width, height, frequency, strength, phase), nil
}

func sample(x, width, height, frequency, strength, phase float64) float64 {
	midHeight := height / 2
	wavelength := width / frequency
	relativeX := x / wavelength
	return Envelope(x, width)*strength*math.Sin(relativeX+phase) + midHeight
}

// BuildPath samples p across [0, width] every step units. The last sample
// always lands exactly on width. A step <= 0 uses DefaultStep; a step
// finer than width/MaxSamples is coarsened to it.
func BuildPath(p Params, width, height, step float64) ([]Point, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if !(width > 0) || !(height > 0) {
		return nil, errors.DegenerateGeometry("wave.BuildPath", width, height)
	}
	if !(step > 0) {
		step = DefaultStep
	}
	if !(width/step <= MaxSamples) {
		step = width / MaxSamples
	}

	n := int(math.Floor(width / step))
	points := make([]Point, 0, n+2)
	for i := 0; i <= n; i++ {
		x := float64(i) * step
		points = append(points, Point{X: x, Y: sample(x, width, height, p.Frequency, p.Strength, p.Phase)})
	}
	if last := points[len(points)-1].X; last < width {
		points = append(points, Point{X: width, Y: sample(width, width, height, p.Frequency, p.Strength, p.Phase)})
	}
	return points, nil
}

// Translate shifts every point by dy, in place, and returns points.
func Translate(points []Point, dy float64) []Point {
	for i := range points {
		points[i].Y += dy
	}
	return points
}
