package scene

import (
	"image/color"
	"math"
	"strconv"

	"github.com/iburimskiy/canvas-animations/internal/canvas"
	"github.com/iburimskiy/canvas-animations/internal/clockface"
	"github.com/iburimskiy/canvas-animations/internal/config"
	"github.com/iburimskiy/canvas-animations/internal/timeline"
)

var (
	black = color.RGBA{A: 255}
	white = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	gray  = color.RGBA{R: 142, G: 142, B: 147, A: 255}
	red   = color.RGBA{R: 255, G: 59, B: 48, A: 255}

	handShadow = canvas.Shadow{Color: color.RGBA{A: 85}, Radius: 3}
)

func degrees(d float64) float64 {
	return d * math.Pi / 180
}

// Clock is the analog clock view: a static face and three moving hands
// drawn in a square centred on the surface.
type Clock struct {
	Face  Face
	Hands Hands
	// Padding is kept clear around the square.
	Padding float64
}

// NewClock returns a Clock with the default brand and padding.
func NewClock() *Clock {
	return &Clock{
		Face:    Face{Brand: config.Brand},
		Padding: config.ClockPadding,
	}
}

func (s *Clock) Name() string { return "clock" }

// square returns the side of the clock square and its top-left corner.
func (s *Clock) square(size canvas.Size) (canvas.Size, canvas.Offset) {
	side := size.Min() - 2*s.Padding
	return canvas.Size{Width: side, Height: side},
		canvas.Offset{X: (size.Width - side) / 2, Y: (size.Height - side) / 2}
}

func (s *Clock) Draw(c canvas.Canvas, f timeline.Frame) error {
	sq, origin := s.square(c.Size())
	if err := checkSize("scene.Clock", sq); err != nil {
		return err
	}
	angles := clockface.ComputeHandAngles(f.Instant)
	canvas.WithTransform(c, func() {
		c.Translate(origin.X, origin.Y)
		s.Face.Draw(c, sq)
		s.Hands.Draw(c, sq, angles)
	})
	return nil
}

// ClockGeometry is the dumped form of a clock frame.
type ClockGeometry struct {
	Side   float64              `yaml:"side"`
	Angles clockface.HandAngles `yaml:"angles"`
}

func (s *Clock) Describe(size canvas.Size, f timeline.Frame) (any, error) {
	sq, _ := s.square(size)
	if err := checkSize("scene.Clock", sq); err != nil {
		return nil, err
	}
	return ClockGeometry{Side: sq.Width, Angles: clockface.ComputeHandAngles(f.Instant)}, nil
}

// Face draws the static clock decoration: border, background, ticks,
// numerals and brand text.
type Face struct {
	Brand string
}

// Draw renders the face into a size x size area at the current origin.
func (f Face) Draw(c canvas.Canvas, size canvas.Size) {
	f.drawFace(c, size)
	f.drawTicks(c, size)
	f.drawNumbers(c, size)
	f.drawBrand(c, size)
}

func (f Face) drawFace(c canvas.Canvas, size canvas.Size) {
	inset := size.Width * 0.04
	rect := canvas.RectFromLTWH(0, 0, size.Width, size.Height).Inset(inset, inset)
	circle := canvas.NewPath()
	circle.AddCircle(rect.Center(), rect.Width()/2)

	// Border
	border := canvas.Stroke(black, size.Width*0.08)
	border.Shader = canvas.LinearGradient{
		Start: canvas.Offset{},
		End:   canvas.Offset{X: size.Width, Y: size.Height},
		Stops: canvas.EvenStops(gray, black),
	}
	c.DrawPath(circle, border)

	// Background
	background := canvas.Fill(white)
	background.Shader = canvas.RadialGradient{
		Center: size.Center(),
		Radius: size.Width/2 - size.Width/2*0.04,
		Stops: []canvas.GradientStop{
			{Position: 0, Color: white},
			{Position: 0.9, Color: white},
			{Position: 0.95, Color: gray},
			{Position: 1.05, Color: black},
		},
	}
	c.DrawPath(circle, background)
}

func (f Face) drawTicks(c canvas.Canvas, size canvas.Size) {
	thinWidth := size.Width * 0.004
	thickWidth := size.Width * 0.012

	thin := canvas.NewPath()
	thin.AddRect(canvas.RectFromLTWH(-thinWidth/2, size.Height*0.41, thinWidth, size.Height*0.025))
	thick := canvas.NewPath()
	thick.AddRect(canvas.RectFromLTWH(-thickWidth/2, size.Height*0.40, thickWidth, size.Height*0.038))

	for tick := 0; tick < 60; tick++ {
		canvas.WithTransform(c, func() {
			c.Translate(size.Width/2, size.Height/2)
			c.Rotate(degrees(float64(tick)*6 + 180))
			if tick%5 == 0 {
				c.DrawPath(thick, canvas.Fill(black))
			} else {
				c.DrawPath(thin, canvas.Fill(black))
			}
		})
	}
}

// numeralPosition returns where hour h (1-12) is drawn.
func numeralPosition(size canvas.Size, h int) canvas.Offset {
	angle := degrees(360*float64(12-h)/12 + 180)
	return canvas.Offset{
		X: size.Width/2 + math.Sin(angle)*size.Width*0.33,
		Y: size.Height/2 + math.Cos(angle)*size.Width*0.33,
	}
}

func (f Face) drawNumbers(c canvas.Canvas, size canvas.Size) {
	style := canvas.TextStyle{Font: config.NumeralFont, Size: size.Width * 0.1, Color: black}
	for h := 1; h <= 12; h++ {
		c.DrawText(strconv.Itoa(h), numeralPosition(size, h), style)
	}
}

func (f Face) drawBrand(c canvas.Canvas, size canvas.Size) {
	if f.Brand == "" {
		return
	}
	style := canvas.TextStyle{Font: config.BrandFont, Size: size.Width * 0.03, Color: black}
	c.DrawText(f.Brand, canvas.Offset{X: size.Width / 2, Y: size.Height * 0.65}, style)
}

// handSpec sizes one hand relative to the clock square.
type handSpec struct {
	width  float64 // fraction of the width
	length float64 // fraction of the radius
	offset float64 // fraction of the width the hand extends behind the pivot
	color  color.RGBA
}

var (
	hourHand   = handSpec{width: 0.016, length: 0.58, offset: 0.075, color: black}
	minuteHand = handSpec{width: 0.016, length: 0.76, offset: 0.075, color: black}
	secondHand = handSpec{width: 0.008, length: 0.7, offset: 0.15, color: red}
)

// Hands draws the three hands and the two centre dots.
type Hands struct{}

// Draw renders angles into a size x size area at the current origin. Each
// hand is laid out pointing down from the pivot and rotated by
// angle + clockface.HandRotationOffset.
func (Hands) Draw(c canvas.Canvas, size canvas.Size, angles clockface.HandAngles) {
	center := size.Center()
	hour, minute, second := angles.Rotations()

	drawHand(c, size, hourHand, hour)
	drawHand(c, size, minuteHand, minute)
	drawDot(c, center, size.Width*0.048, black)
	drawHand(c, size, secondHand, second)
	drawDot(c, center, size.Width*0.02, gray)
}

// drawHand draws one hand rotated by radians about the centre.
func drawHand(c canvas.Canvas, size canvas.Size, hs handSpec, radians float64) {
	w := size.Width * hs.width
	o := size.Width * hs.offset
	path := canvas.NewPath()
	path.AddRect(canvas.RectFromLTWH(-w/2, -o, w, size.Height/2*hs.length+o))

	canvas.WithShadow(c, handShadow, func() {
		c.Translate(size.Width/2, size.Height/2)
		c.Rotate(radians)
		c.DrawPath(path, canvas.Fill(hs.color))
	})
}

func drawDot(c canvas.Canvas, center canvas.Offset, diameter float64, clr color.RGBA) {
	dot := canvas.NewPath()
	dot.AddCircle(center, diameter/2)
	c.DrawPath(dot, canvas.Fill(clr))
}
