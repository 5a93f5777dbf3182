package wave

import (
	"math/rand/v2"

	"github.com/iburimskiy/canvas-animations/internal/errors"
)

// Instance is one wave of the animated multi-wave view. Strength and
// frequency are fixed at construction; only the shared phase changes.
type Instance struct {
	Index     int     `yaml:"index"`
	Strength  float64 `yaml:"strength"`
	Frequency float64 `yaml:"frequency"`
	// OffsetY shifts the whole path down by a fixed amount.
	OffsetY float64 `yaml:"offset_y"`
}

// NewInstance validates the parameters and returns an Instance.
func NewInstance(index int, strength, frequency, offsetY float64) (Instance, error) {
	if !(frequency > 0) {
		return Instance{}, errors.InvalidFrequency("wave.NewInstance", frequency)
	}
	return Instance{
		Index:     index,
		Strength:  strength,
		Frequency: frequency,
		OffsetY:   offsetY,
	}, nil
}

// RandomInstances draws n instances from r. Instance i (0-based) gets
// strength i times an integer in [1, 9] and frequency i or i+1, shifted
// down by i*offsetStep. The first instance always has strength 0; its
// frequency is raised to 1 so it stays valid.
func RandomInstances(r *rand.Rand, n int, offsetStep float64) ([]Instance, error) {
	out := make([]Instance, 0, n)
	for i := 0; i < n; i++ {
		strength := float64(i * (1 + r.IntN(9)))
		frequency := float64(max(i+r.IntN(2), 1))
		in, err := NewInstance(i, strength, frequency, float64(i)*offsetStep)
		if err != nil {
			return nil, err
		}
		out = append(out, in)
	}
	return out, nil
}

// Params returns the instance's parameters at the given phase.
func (in Instance) Params(phase float64) Params {
	return Params{Strength: in.Strength, Frequency: in.Frequency, Phase: phase}
}

// Path builds the instance's path for one frame, including OffsetY.
func (in Instance) Path(width, height, phase, step float64) ([]Point, error) {
	points, err := BuildPath(in.Params(phase), width, height, step)
	if err != nil {
		return nil, err
	}
	return Translate(points, in.OffsetY), nil
}
