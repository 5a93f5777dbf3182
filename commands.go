package main

import (
	stderrors "errors"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/iburimskiy/canvas-animations/internal/canvas"
	"github.com/iburimskiy/canvas-animations/internal/canvas/raster"
	"github.com/iburimskiy/canvas-animations/internal/config"
	"github.com/iburimskiy/canvas-animations/internal/game"
	"github.com/iburimskiy/canvas-animations/internal/scene"
	"github.com/iburimskiy/canvas-animations/internal/timeline"
)

// viewSize is a WxH command line value.
type viewSize struct {
	Width, Height int
}

func (s *viewSize) UnmarshalText(b []byte) error {
	w, h, ok := strings.Cut(strings.ToLower(string(b)), "x")
	if !ok {
		return fmt.Errorf("size %q: want WIDTHxHEIGHT", b)
	}
	var err error
	if s.Width, err = strconv.Atoi(w); err != nil {
		return fmt.Errorf("size %q: %w", b, err)
	}
	if s.Height, err = strconv.Atoi(h); err != nil {
		return fmt.Errorf("size %q: %w", b, err)
	}
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("size %q: dimensions must be positive", b)
	}
	return nil
}

func (s viewSize) canvasSize() canvas.Size {
	return canvas.Size{Width: float64(s.Width), Height: float64(s.Height)}
}

// SceneFlags are shared by every command that builds scenes.
type SceneFlags struct {
	Seed  uint64 `help:"Seed for the multi-wave parameters (0 picks one from the clock)."`
	Fill  bool   `help:"Fill waves instead of stroking them."`
	Brand string `help:"Text printed on the clock face." default:"${brand}"`
	Waves int    `help:"Number of waves in the multi-wave view." default:"${waves}"`
}

func (f SceneFlags) scene(name string) (scene.Scene, error) {
	if f.Waves < 1 {
		return nil, fmt.Errorf("--waves %d: need at least one wave", f.Waves)
	}
	opts := scene.Options{Seed: f.Seed, Fill: f.Fill, Brand: f.Brand, Count: f.Waves}
	opts.Seed = opts.ResolveSeed()
	log.Debug().Uint64("seed", opts.Seed).Msg("building scenes")

	r, err := scene.DefaultRegistry(opts)
	if err != nil {
		return nil, err
	}
	s, ok := r.Get(name)
	if !ok {
		return nil, fmt.Errorf("unknown view %q (have %s)", name, strings.Join(r.List(), ", "))
	}
	return s, nil
}

// FrameFlags pin the time input of a single frame.
type FrameFlags struct {
	At    string   `help:"Instant to draw, RFC3339. Defaults to now."`
	Phase *float64 `help:"Wave phase in radians. Defaults to the start of the loop."`
}

func (f FrameFlags) frame(view string) (timeline.Frame, error) {
	at := time.Now()
	if f.At != "" {
		t, err := time.Parse(time.RFC3339, f.At)
		if err != nil {
			return timeline.Frame{}, fmt.Errorf("--at: %w", err)
		}
		at = t
	}

	mock := clock.NewMock()
	mock.Set(at)
	minInterval, loopDuration := game.Cadence(view)
	frame := timeline.NewDriver(mock, minInterval, loopDuration).Next()
	if f.Phase != nil {
		frame.Phase = *f.Phase
	}
	return frame, nil
}

type runCmd struct {
	SceneFlags

	View  string `arg:"" optional:"" enum:"clock,wave,waves" default:"clock" help:"View to animate (${enum})."`
	Stats bool   `help:"Show frame statistics."`
}

func (c *runCmd) Run(g *Globals) error {
	s, err := c.scene(c.View)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	log.Info().Str("view", c.View).Msg("starting")
	if err := ebiten.RunGame(game.New(game.Options{Scene: s, Stats: c.Stats})); err != nil && !stderrors.Is(err, ebiten.Termination) {
		log.Error().Err(err).Str("view", c.View).Msg("game loop failed")
		if derr := zenity.Error(err.Error(), zenity.Title(config.WindowTitle), zenity.ErrorIcon); derr != nil {
			log.Debug().Err(derr).Msg("error dialog unavailable")
		}
		return err
	}
	return nil
}

type snapshotCmd struct {
	SceneFlags
	FrameFlags

	View string   `arg:"" enum:"clock,wave,waves" help:"View to render (${enum})."`
	Out  string   `short:"o" default:"snapshot.png" help:"Output PNG file."`
	Size viewSize `default:"${size}" help:"Image size as WIDTHxHEIGHT."`
	Pick bool     `help:"Choose the output file in a save dialog."`
}

func (c *snapshotCmd) Run(g *Globals) error {
	s, err := c.scene(c.View)
	if err != nil {
		return err
	}
	frame, err := c.frame(c.View)
	if err != nil {
		return err
	}

	rc := raster.New(c.Size.Width, c.Size.Height)
	rc.Clear(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	if err := scene.Render(s, rc, frame); err != nil {
		return err
	}

	out := c.Out
	if c.Pick {
		out, err = zenity.SelectFileSave(
			zenity.Title("Save snapshot"),
			zenity.Filename(c.Out),
			zenity.ConfirmOverwrite(),
			zenity.FileFilters{{Name: "PNG image", Patterns: []string{"*.png"}}},
		)
		if err != nil {
			if stderrors.Is(err, zenity.ErrCanceled) {
				log.Info().Msg("snapshot canceled")
				return nil
			}
			return err
		}
	}

	f, err := os.Create(out)
	if err != nil {
		return err
	}
	if err := rc.EncodePNG(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	log.Info().Str("view", c.View).Str("file", out).Time("at", frame.Instant).Float64("phase", frame.Phase).Msg("snapshot written")
	return nil
}

type dumpCmd struct {
	SceneFlags
	FrameFlags

	View string   `arg:"" enum:"clock,wave,waves" help:"View to describe (${enum})."`
	Size viewSize `default:"${size}" help:"View size as WIDTHxHEIGHT."`
}

type dump struct {
	View     string         `yaml:"view"`
	Size     canvas.Size    `yaml:"size"`
	Frame    timeline.Frame `yaml:"frame"`
	Geometry any            `yaml:"geometry"`
}

func (c *dumpCmd) Run(g *Globals) error {
	s, err := c.scene(c.View)
	if err != nil {
		return err
	}
	frame, err := c.frame(c.View)
	if err != nil {
		return err
	}
	size := c.Size.canvasSize()
	geometry, err := s.Describe(size, frame)
	if err != nil {
		return err
	}

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(dump{View: c.View, Size: size, Frame: frame, Geometry: geometry}); err != nil {
		return err
	}
	return enc.Close()
}

type listCmd struct{}

func (listCmd) Run(g *Globals) error {
	r, err := scene.DefaultRegistry(scene.Options{Seed: 1})
	if err != nil {
		return err
	}
	for _, name := range r.List() {
		fmt.Println(name)
	}
	return nil
}
