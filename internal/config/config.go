package config

import (
	"image/color"
	"time"
)

const (
	WindowWidth  = 1024
	WindowHeight = 512
	WindowTitle  = "Canvas animations - Esc/Q: Quit"

	// Clock cadence: hands are resampled no finer than this.
	ClockMinInterval = 60 * time.Millisecond
	// ClockPadding surrounds the square clock area.
	ClockPadding = 20
	Brand        = "Canvas-Lab"
	NumeralFont  = "Futura"
	BrandFont    = "Futura Bold"

	// Static wave
	StaticWaveFrequency      = 5.0
	StaticWaveAmplitudeRatio = 0.2
	StaticWaveLoopDuration   = 4 * time.Second
	StaticWaveStrokeWidth    = 2.0

	// Animated multi-wave
	WaveInstanceCount  = 5
	WaveOffsetStep     = 10.0
	WaveLoopDuration   = 1 * time.Second
	WaveSampleStep     = 1.0
	WaveStrokeBaseWide = 2.0

	// Stats overlay
	FrameHistorySize = 120
)

var (
	// WavePalette colors instance i of the multi-wave view.
	WavePalette = []color.RGBA{
		{R: 255, G: 59, B: 48, A: 255},  // red
		{R: 52, G: 199, B: 89, A: 255},  // green
		{A: 255},                        // black
		{R: 255, G: 204, B: 0, A: 255},  // yellow
		{R: 175, G: 82, B: 222, A: 255}, // purple
	}
	WaveBackground = color.RGBA{R: 0, G: 122, B: 255, A: 255}

	StaticWaveGradient = []color.RGBA{
		{R: 0, G: 122, B: 255, A: 255},  // blue
		{R: 175, G: 82, B: 222, A: 255}, // purple
	}
)
