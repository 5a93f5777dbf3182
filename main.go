package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/iburimskiy/canvas-animations/internal/config"
	"github.com/iburimskiy/canvas-animations/internal/errors"
)

type Globals struct {
	Verbose bool `short:"v" help:"Log at debug level and include stack traces."`
}

type cli struct {
	Globals

	Run      runCmd      `cmd:"" default:"withargs" help:"Open a window animating a view."`
	Snapshot snapshotCmd `cmd:"" help:"Render one frame of a view to a PNG file."`
	Dump     dumpCmd     `cmd:"" help:"Print the geometry of one frame as YAML."`
	List     listCmd     `cmd:"" help:"List the available views."`
}

func setupLogging(verbose bool) {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	errors.SetHandler(&errors.LogHandler{Verbose: verbose})
}

func main() {
	var c cli
	ctx := kong.Parse(&c,
		kong.Name("canvas-animations"),
		kong.Description("Animated analog clock and wave visualizations."),
		kong.UsageOnError(),
		kong.Vars{
			"brand": config.Brand,
			"waves": strconv.Itoa(config.WaveInstanceCount),
			"size":  fmt.Sprintf("%dx%d", config.WindowWidth, config.WindowHeight),
		},
	)
	setupLogging(c.Verbose)
	ctx.FatalIfErrorf(ctx.Run(&c.Globals))
}
