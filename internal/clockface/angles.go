// Package clockface converts wall-clock instants into analog hand angles.
package clockface

import (
	"math"
	"time"
)

// HandRotationOffset is added to every hand angle before drawing. Hands are
// laid out pointing toward 6 o'clock (+y on screen) from the pivot, so a
// half turn brings angle 0 to the 12 o'clock position.
const HandRotationOffset = 180.0

// HandAngles holds the hand rotations in degrees, clockwise from 12 o'clock.
// Values are not reduced modulo 360.
type HandAngles struct {
	Hour   float64 `yaml:"hour"`
	Minute float64 `yaml:"minute"`
	Second float64 `yaml:"second"`
}

// ComputeHandAngles returns the angles of the three hands at t, read in
// t's location. Each larger unit carries the fractional progress of the
// smaller one, so the minute and hour hands sweep instead of snapping.
func ComputeHandAngles(t time.Time) HandAngles {
	h := float64(t.Hour() % 12)
	m := float64(t.Minute())
	s := float64(t.Second()) + float64(t.Nanosecond())/float64(time.Second)

	secondAngle := s / 60 * 360
	minuteAngle := (m + secondAngle/360) / 60 * 360
	hourAngle := (h + minuteAngle/360) / 12 * 360

	return HandAngles{
		Hour:   hourAngle,
		Minute: minuteAngle,
		Second: secondAngle,
	}
}

// Rotation converts a hand angle to the radians a renderer rotates by,
// including HandRotationOffset.
func Rotation(degrees float64) float64 {
	return (degrees + HandRotationOffset) * math.Pi / 180
}

// Rotations returns Rotation applied to each hand, in hour, minute, second order.
func (a HandAngles) Rotations() (hour, minute, second float64) {
	return Rotation(a.Hour), Rotation(a.Minute), Rotation(a.Second)
}
