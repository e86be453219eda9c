// Package bench times the ray tracing sweep against a tick source.
package bench

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/echoflaresat/raybench/render"
	"github.com/echoflaresat/raybench/report"
	"github.com/echoflaresat/raybench/ticks"
	"golang.org/x/sync/errgroup"
)

var ErrNoRuns = errors.New("bench: at least one run is required")

// Result is one timed sweep.
type Result struct {
	Checksum uint32
	Elapsed  uint32
}

// Run reads src, runs the sweep, reads src again and hands checksum and
// elapsed ticks to sink. The result is returned even when the sink fails.
func Run(src ticks.Source, sink report.Sink) (Result, error) {
	start := src.Ticks()
	checksum := render.Sweep()
	end := src.Ticks()

	r := Result{Checksum: checksum, Elapsed: ticks.Elapsed(start, end)}
	if err := sink.Report(r.Checksum, r.Elapsed); err != nil {
		return r, fmt.Errorf("report: %w", err)
	}
	return r, nil
}

// Summary collects the runs of a Harness.
type Summary struct {
	Results    []Result
	TotalTicks uint32
}

// Harness runs the benchmark Runs times with its own tick timer.
type Harness struct {
	Runs   int
	Period time.Duration
	Sink   report.Sink
	Logger *slog.Logger
}

// Run starts the tick timer, performs the runs back to back and stops the
// timer again. It stops at the first failing run.
func (h Harness) Run(ctx context.Context) (Summary, error) {
	if h.Runs <= 0 {
		return Summary{}, ErrNoRuns
	}
	logger := h.Logger
	if logger == nil {
		logger = slog.Default()
	}
	sink := h.Sink
	if sink == nil {
		sink = report.Log{Logger: logger}
	}

	timer := ticks.NewTimer(h.Period)
	timer.Logger = logger

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return timer.Run(gctx)
	})

	var summary Summary
	g.Go(func() error {
		defer cancel()
		for i := 1; i <= h.Runs; i++ {
			if err := gctx.Err(); err != nil {
				return err
			}
			r, err := Run(timer.Source(), sink)
			summary.Results = append(summary.Results, r)
			summary.TotalTicks += r.Elapsed
			if err != nil {
				return fmt.Errorf("run %d: %w", i, err)
			}
			logger.Debug("run finished", "run", i, "checksum", r.Checksum, "elapsed_ticks", r.Elapsed)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return summary, err
	}
	return summary, nil
}
