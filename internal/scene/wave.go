package scene

import (
	"image/color"
	"math/rand/v2"

	"github.com/iburimskiy/canvas-animations/internal/canvas"
	"github.com/iburimskiy/canvas-animations/internal/config"
	"github.com/iburimskiy/canvas-animations/internal/timeline"
	"github.com/iburimskiy/canvas-animations/internal/wave"
)

func pathOf(points []wave.Point) *canvas.Path {
	offsets := make([]canvas.Offset, len(points))
	for i, p := range points {
		offsets[i] = canvas.Offset{X: p.X, Y: p.Y}
	}
	path := canvas.NewPath()
	path.AddPolyline(offsets)
	return path
}

// Wave is the single parametrized wave. Its strength is a fixed ratio of
// the view height; the phase comes from the frame.
type Wave struct {
	Frequency      float64
	AmplitudeRatio float64
	Step           float64
	// Fill fills the area between the curve and the midline instead of
	// stroking the curve.
	Fill        bool
	StrokeWidth float64
	Gradient    []color.RGBA
}

// NewWave returns the static wave with its default parameters.
func NewWave(fill bool) *Wave {
	return &Wave{
		Frequency:      config.StaticWaveFrequency,
		AmplitudeRatio: config.StaticWaveAmplitudeRatio,
		Step:           config.WaveSampleStep,
		Fill:           fill,
		StrokeWidth:    config.StaticWaveStrokeWidth,
		Gradient:       config.StaticWaveGradient,
	}
}

func (s *Wave) Name() string { return "wave" }

func (s *Wave) params(size canvas.Size, phase float64) wave.Params {
	return wave.Params{
		Strength:  s.AmplitudeRatio * size.Height,
		Frequency: s.Frequency,
		Phase:     phase,
	}
}

func (s *Wave) Draw(c canvas.Canvas, f timeline.Frame) error {
	size := c.Size()
	if err := checkSize("scene.Wave", size); err != nil {
		return err
	}
	points, err := wave.BuildPath(s.params(size, f.Phase), size.Width, size.Height, s.Step)
	if err != nil {
		return err
	}

	base := white
	if len(s.Gradient) > 0 {
		base = s.Gradient[0]
	}
	paint := canvas.Stroke(base, s.StrokeWidth)
	if s.Fill {
		paint = canvas.Fill(base)
	}
	paint.Shader = canvas.LinearGradient{
		Start: canvas.Offset{X: 0, Y: size.Height / 2},
		End:   canvas.Offset{X: size.Width, Y: size.Height / 2},
		Stops: canvas.EvenStops(s.Gradient...),
	}
	c.DrawPath(pathOf(points), paint)
	return nil
}

// WaveGeometry is the dumped form of a static wave frame.
type WaveGeometry struct {
	Params wave.Params  `yaml:"params"`
	Points []wave.Point `yaml:"points"`
}

func (s *Wave) Describe(size canvas.Size, f timeline.Frame) (any, error) {
	if err := checkSize("scene.Wave", size); err != nil {
		return nil, err
	}
	p := s.params(size, f.Phase)
	points, err := wave.BuildPath(p, size.Width, size.Height, s.Step)
	if err != nil {
		return nil, err
	}
	return WaveGeometry{Params: p, Points: points}, nil
}

// Waves is the animated multi-wave view. Instances are fixed at
// construction and share the frame's phase.
type Waves struct {
	Instances  []wave.Instance
	Fill       bool
	Step       float64
	Background color.RGBA
	Palette    []color.RGBA
}

// NewWaves draws n instances from r.
func NewWaves(r *rand.Rand, n int, fill bool) (*Waves, error) {
	instances, err := wave.RandomInstances(r, n, config.WaveOffsetStep)
	if err != nil {
		return nil, err
	}
	return &Waves{
		Instances:  instances,
		Fill:       fill,
		Step:       config.WaveSampleStep,
		Background: config.WaveBackground,
		Palette:    config.WavePalette,
	}, nil
}

func (s *Waves) Name() string { return "waves" }

func (s *Waves) paths(size canvas.Size, phase float64) ([][]wave.Point, error) {
	out := make([][]wave.Point, 0, len(s.Instances))
	for _, in := range s.Instances {
		points, err := in.Path(size.Width, size.Height, phase, s.Step)
		if err != nil {
			return nil, err
		}
		out = append(out, points)
	}
	return out, nil
}

func (s *Waves) Draw(c canvas.Canvas, f timeline.Frame) error {
	size := c.Size()
	if err := checkSize("scene.Waves", size); err != nil {
		return err
	}
	paths, err := s.paths(size, f.Phase)
	if err != nil {
		return err
	}

	c.Clear(s.Background)
	for i, points := range paths {
		clr := paletteColor(s.Palette, i)
		paint := canvas.Stroke(clr, float64(i)+config.WaveStrokeBaseWide)
		if s.Fill {
			paint = canvas.Fill(clr)
		}
		c.DrawPath(pathOf(points), paint)
	}
	return nil
}

// WavesGeometry is the dumped form of a multi-wave frame.
type WavesGeometry struct {
	Phase     float64         `yaml:"phase"`
	Instances []wave.Instance `yaml:"instances"`
	Paths     [][]wave.Point  `yaml:"paths"`
}

func (s *Waves) Describe(size canvas.Size, f timeline.Frame) (any, error) {
	if err := checkSize("scene.Waves", size); err != nil {
		return nil, err
	}
	paths, err := s.paths(size, f.Phase)
	if err != nil {
		return nil, err
	}
	return WavesGeometry{Phase: f.Phase, Instances: s.Instances, Paths: paths}, nil
}
