// Package game hosts a scene in the ebiten game loop.
package game

import (
	"fmt"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/rs/zerolog/log"

	"github.com/iburimskiy/canvas-animations/internal/canvas/ebitencanvas"
	"github.com/iburimskiy/canvas-animations/internal/config"
	"github.com/iburimskiy/canvas-animations/internal/errors"
	"github.com/iburimskiy/canvas-animations/internal/scene"
	"github.com/iburimskiy/canvas-animations/internal/timeline"
)

// Options configures a Game.
type Options struct {
	Scene scene.Scene
	// Clock defaults to the wall clock.
	Clock clock.Clock
	// Stats draws the frame statistics overlay.
	Stats bool
}

type game struct {
	scene   scene.Scene
	driver  *timeline.Driver
	surface *ebitencanvas.Surface
	clock   clock.Clock

	stats   bool
	history *timeline.History
	lastErr error

	prevKey map[ebiten.Key]bool
}

// New returns an ebiten.Game drawing o.Scene.
func New(o Options) ebiten.Game {
	c := o.Clock
	if c == nil {
		c = clock.New()
	}
	minInterval, loopDuration := Cadence(o.Scene.Name())
	return &game{
		scene:   o.Scene,
		driver:  timeline.NewDriver(c, minInterval, loopDuration),
		surface: ebitencanvas.NewSurface(),
		clock:   c,
		stats:   o.Stats,
		history: timeline.NewHistory(config.FrameHistorySize),
		prevKey: map[ebiten.Key]bool{},
	}
}

// Cadence returns the instant resampling interval and the phase loop
// duration used for the named scene.
func Cadence(name string) (minInterval, loopDuration time.Duration) {
	switch name {
	case "clock":
		return config.ClockMinInterval, config.WaveLoopDuration
	case "wave":
		return 0, config.StaticWaveLoopDuration
	default:
		return 0, config.WaveLoopDuration
	}
}

func (g *game) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		log.Debug().Str("scene", g.scene.Name()).Msg("quit requested")
		return ebiten.Termination
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	start := g.clock.Now()
	g.drawScene(screen)
	g.history.Record(g.clock.Since(start))

	if g.stats {
		g.drawStats(screen)
	}
}

func (g *game) drawScene(screen *ebiten.Image) {
	defer errors.Recover("game.Draw")

	c := g.surface.Begin(screen)
	frame := g.driver.Next()
	if err := scene.Render(g.scene, c, frame); err != nil {
		errors.Report("game.Draw", err)
		// resizes pass through empty sizes; keep them off the overlay
		if errors.KindOf(err) != errors.KindDegenerateGeometry {
			g.lastErr = err
		}
		return
	}
	g.lastErr = nil
}

func (g *game) drawStats(screen *ebiten.Image) {
	status := fmt.Sprintf("%s | FPS %.1f | TPS %.1f | draw %v (avg of %d)",
		g.scene.Name(), ebiten.ActualFPS(), ebiten.ActualTPS(),
		g.history.Average().Round(time.Microsecond), g.history.Len())
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, 12)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}
