package scene

import (
	"math/rand/v2"
	"time"

	"github.com/iburimskiy/canvas-animations/internal/config"
)

// Options selects how the default scenes are built.
type Options struct {
	// Seed fixes the multi-wave instance parameters. Zero picks a seed
	// from the current time.
	Seed uint64
	// Fill fills waves instead of stroking them.
	Fill bool
	// Brand overrides the clock face text when non-empty.
	Brand string
	// Count is the number of multi-wave instances. Zero uses
	// config.WaveInstanceCount.
	Count int
}

// ResolveSeed returns the seed Options will use.
func (o Options) ResolveSeed() uint64 {
	if o.Seed != 0 {
		return o.Seed
	}
	return uint64(time.Now().UnixNano())
}

// DefaultRegistry builds the clock, wave and waves scenes.
func DefaultRegistry(o Options) (*Registry, error) {
	seed := o.ResolveSeed()
	count := o.Count
	if count <= 0 {
		count = config.WaveInstanceCount
	}
	waves, err := NewWaves(rand.New(rand.NewPCG(seed, seed)), count, o.Fill)
	if err != nil {
		return nil, err
	}

	clock := NewClock()
	if o.Brand != "" {
		clock.Face.Brand = o.Brand
	}

	r := NewRegistry()
	r.Register(clock)
	r.Register(NewWave(o.Fill))
	r.Register(waves)
	return r, nil
}
