// Package timeline supplies the per-frame time values the visualizations
// are drawn from: a wall-clock instant resampled no finer than a minimum
// interval, and a phase that loops linearly over a fixed duration.
package timeline

import (
	"math"
	"time"

	"github.com/benbjohnson/clock"
)

// Timeline samples a clock at most once per MinInterval. Between samples
// Instant keeps returning the previous value.
type Timeline struct {
	clock       clock.Clock
	minInterval time.Duration

	last    time.Time
	sampled bool
}

// NewTimeline returns a Timeline reading c. A minInterval <= 0 samples on
// every call.
func NewTimeline(c clock.Clock, minInterval time.Duration) *Timeline {
	return &Timeline{clock: c, minInterval: minInterval}
}

// Instant returns the current frame instant.
func (t *Timeline) Instant() time.Time {
	now := t.clock.Now()
	if !t.sampled || now.Sub(t.last) >= t.minInterval || now.Before(t.last) {
		t.last = now
		t.sampled = true
	}
	return t.last
}

// Loop maps elapsed time onto [From, To) linearly, restarting at From every
// Duration and never reversing.
type Loop struct {
	From     float64
	To       float64
	Duration time.Duration

	clock clock.Clock
	start time.Time
}

// NewLoop starts a loop from 0 to 2π over d, measured on c.
func NewLoop(c clock.Clock, d time.Duration) *Loop {
	return &Loop{
		From:     0,
		To:       2 * math.Pi,
		Duration: d,
		clock:    c,
		start:    c.Now(),
	}
}

// Reset restarts the loop at From.
func (l *Loop) Reset() {
	l.start = l.clock.Now()
}

// Elapsed returns the time since the loop started.
func (l *Loop) Elapsed() time.Duration {
	return l.clock.Since(l.start)
}

// Progress returns the position within the current cycle in [0, 1).
func (l *Loop) Progress() float64 {
	if l.Duration <= 0 {
		return 0
	}
	elapsed := l.Elapsed()
	if elapsed < 0 {
		return 0
	}
	return float64(elapsed%l.Duration) / float64(l.Duration)
}

// Value returns the current loop value.
func (l *Loop) Value() float64 {
	return l.From + (l.To-l.From)*l.Progress()
}
