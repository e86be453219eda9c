package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"os/signal"
	"time"

	"github.com/echoflaresat/raybench/bench"
	"github.com/echoflaresat/raybench/frames"
	"github.com/echoflaresat/raybench/render"
	"github.com/echoflaresat/raybench/report"
	"github.com/echoflaresat/raybench/ticks"
)

type config struct {
	runs     *int
	period   *time.Duration
	expect   *uint
	frameDir *string
	format   *string
	scale    *int
	workers  *int
	verbose  *bool
	showHelp *bool
}

func defineFlags(fs *flag.FlagSet) config {
	return config{
		runs:   fs.Int("runs", 1, "Number of timed sweeps"),
		period: fs.Duration("period", ticks.DefaultPeriod, "Duration of one timer tick"),
		expect: fs.Uint("expect", uint(render.ReferenceChecksum), "Expected checksum (0 disables the check)"),

		frameDir: fs.String("frames", "", "Directory to export every sweep frame to (empty disables export)"),
		format:   fs.String("format", "png", "Frame image format: png, jpg or tif"),
		scale:    fs.Int("scale", 8, "Integer upscale factor for exported frames"),
		workers:  fs.Int("workers", 0, "Parallel frame encoders (0 = GOMAXPROCS)"),

		verbose:  fs.Bool("v", false, "Enable debug logging"),
		showHelp: fs.Bool("h", false, "Show this help message"),
	}
}

func printHelp(fs *flag.FlagSet) {
	fmt.Fprintf(fs.Output(), `Raytracer Benchmark - single precision FPU workload

Usage:
  %[1]s [options]

`, fs.Name())

	printGroup(fs, "Benchmark Options", []string{"runs", "period", "expect"})
	printGroup(fs, "Frame Export", []string{"frames", "format", "scale", "workers"})
	printGroup(fs, "Misc", []string{"v", "h"})
}

func printGroup(fs *flag.FlagSet, title string, keys []string) {
	fmt.Fprintf(fs.Output(), "%s:\n", title)
	for _, name := range keys {
		if f := fs.Lookup(name); f != nil {
			fmt.Fprintf(fs.Output(), "  -%-8s %s (default %q)\n", f.Name, f.Usage, f.DefValue)
		}
	}
	fmt.Fprintln(fs.Output())
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args, os.Stdout, os.Stderr); err != nil {
		slog.Error("benchmark failed", "error", err)
		stop()
		os.Exit(1)
	}
}

// run parses args, runs the benchmark and optionally exports the frames.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	fs.SetOutput(stderr)
	cfg := defineFlags(fs)
	fs.Usage = func() { printHelp(fs) }
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}
	if *cfg.showHelp {
		printHelp(fs)
		return nil
	}

	level := slog.LevelInfo
	if *cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if *cfg.expect > math.MaxUint32 {
		return fmt.Errorf("-expect %d does not fit a 32-bit checksum", *cfg.expect)
	}
	expected := uint32(*cfg.expect)
	sinks := report.Multi{
		report.Text{W: stdout, Expected: expected, Tick: *cfg.period},
		report.Log{Logger: logger},
	}
	if expected != 0 {
		sinks = append(sinks, report.Checker{Expected: expected})
	}

	fmt.Fprintln(stdout, "Floating point raytracer benchmark started")
	summary, err := bench.Harness{
		Runs:   *cfg.runs,
		Period: *cfg.period,
		Sink:   sinks,
		Logger: logger,
	}.Run(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Finished in final time %dms\n",
		report.TicksToDuration(summary.TotalTicks, *cfg.period).Milliseconds())

	if *cfg.frameDir == "" {
		return nil
	}
	return exportFrames(ctx, cfg, logger)
}

func exportFrames(ctx context.Context, cfg config, logger *slog.Logger) error {
	cache, err := frames.NewCache(3 * render.LightSteps)
	if err != nil {
		return err
	}
	_, err = frames.Export(ctx, cache, frames.Options{
		Dir:     *cfg.frameDir,
		Format:  *cfg.format,
		Scale:   *cfg.scale,
		Workers: *cfg.workers,
		Logger:  logger,
	})
	return err
}
