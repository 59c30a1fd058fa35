package main

import (
	"log/slog"
	"os"

	"storegen/generate"
	"storegen/parallel"

	"github.com/alecthomas/kong"
)

type cli struct {
	Verbose bool `help:"Log debug output" short:"v"`
	Workers int  `help:"Number of assets drawn concurrently, 0 for one per CPU" default:"1"`

	Generate generate.CLICmd     `cmd:"" default:"withargs" help:"Draw the store listing assets"`
	Palette  generate.PaletteCmd `cmd:"" help:"Export the brand palette as a RIFF PAL file"`
}

var startPool = parallel.Start

func run(args []string, options ...kong.Option) error {
	var c cli
	var pool *parallel.Pool

	options = append([]kong.Option{
		kong.Name("storegen"),
		kong.Description("Generates the store listing images."),
		kong.UsageOnError(),
		generate.Vars(),
		// only commands that take a pool get one
		kong.BindToProvider(func() (*parallel.Pool, error) {
			if pool == nil {
				pool = startPool(c.Workers)
			}
			return pool, nil
		}),
	}, options...)

	parser, err := kong.New(&c, options...)
	if err != nil {
		return err
	}

	kctx, err := parser.Parse(args)
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		return err
	}

	if c.Verbose {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	err = kctx.Run()
	if pool != nil {
		pool.Wait(true)
	}
	if err != nil {
		slog.Error("failed", "command", kctx.Command(), "error", err)
	}
	return err
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		os.Exit(1)
	}
}
