// Package scene draws the visualizations onto a canvas.Canvas. Every
// scene rebuilds its geometry from the frame it is given; none keeps
// drawing state between frames.
package scene

import (
	"sort"

	"github.com/iburimskiy/canvas-animations/internal/canvas"
	"github.com/iburimskiy/canvas-animations/internal/errors"
	"github.com/iburimskiy/canvas-animations/internal/timeline"
)

// Scene is one selectable visualization.
type Scene interface {
	Name() string
	// Draw renders f onto c. On error nothing has been drawn.
	Draw(c canvas.Canvas, f timeline.Frame) error
	// Describe returns the frame's geometry in a form suitable for dumping.
	Describe(size canvas.Size, f timeline.Frame) (any, error)
}

// Registry maps scene names to scenes.
type Registry struct{ m map[string]Scene }

func NewRegistry() *Registry { return &Registry{m: map[string]Scene{}} }

func (r *Registry) Register(s Scene) {
	if s == nil {
		return
	}
	r.m[s.Name()] = s
}

func (r *Registry) Get(name string) (Scene, bool) { s, ok := r.m[name]; return s, ok }

// List returns the registered names in sorted order.
func (r *Registry) List() []string {
	out := make([]string, 0, len(r.m))
	for k := range r.m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Render draws f with s onto c. The scene is drawn into a canvas.Recorder
// first and replayed only when it succeeds, so a failed frame leaves c
// untouched.
func Render(s Scene, c canvas.Canvas, f timeline.Frame) error {
	rec := canvas.NewRecorder(c.Size())
	if err := s.Draw(rec, f); err != nil {
		return err
	}
	rec.Replay(c)
	return nil
}

func checkSize(op string, size canvas.Size) error {
	if size.IsEmpty() {
		return errors.DegenerateGeometry(op, size.Width, size.Height)
	}
	return nil
}
