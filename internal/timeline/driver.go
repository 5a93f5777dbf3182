package timeline

import (
	"time"

	"github.com/benbjohnson/clock"
)

// Frame is the time input of one rendered frame.
type Frame struct {
	// Instant is the wall-clock time the clock hands are computed from.
	Instant time.Time `yaml:"instant"`
	// Phase is the looping wave phase in radians.
	Phase float64 `yaml:"phase"`
}

// Driver produces one Frame per tick from a Timeline and a Loop that
// share a clock.
type Driver struct {
	timeline *Timeline
	loop     *Loop
}

// NewDriver returns a Driver on c. Instants are resampled no finer than
// minInterval; the phase loops over loopDuration.
func NewDriver(c clock.Clock, minInterval, loopDuration time.Duration) *Driver {
	return &Driver{
		timeline: NewTimeline(c, minInterval),
		loop:     NewLoop(c, loopDuration),
	}
}

// Next returns the frame to draw now.
func (d *Driver) Next() Frame {
	return Frame{
		Instant: d.timeline.Instant(),
		Phase:   d.loop.Value(),
	}
}

// Loop returns the driver's phase loop.
func (d *Driver) Loop() *Loop {
	return d.loop
}
