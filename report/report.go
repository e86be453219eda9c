// Package report delivers a finished benchmark run to its consumers.
package report

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"
)

// ErrChecksumMismatch is returned by Checker when a run produced a checksum
// other than the expected one.
var ErrChecksumMismatch = errors.New("checksum mismatch")

// Sink accepts the result of one benchmark run.
type Sink interface {
	Report(checksum, elapsed uint32) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(checksum, elapsed uint32) error

func (f SinkFunc) Report(checksum, elapsed uint32) error { return f(checksum, elapsed) }

// Multi reports to every sink in order. All sinks are called; the errors are
// joined.
type Multi []Sink

func (m Multi) Report(checksum, elapsed uint32) error {
	var errs []error
	for _, s := range m {
		if err := s.Report(checksum, elapsed); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Text prints one human readable line per run, e.g.
//
//	Raytracer checksum=363682 PASS, time=41ms
//
// The verdict is omitted when Expected is 0.
type Text struct {
	W        io.Writer
	Expected uint32
	// Tick is the duration of one tick; zero means a millisecond.
	Tick time.Duration
}

func (t Text) Report(checksum, elapsed uint32) error {
	verdict := ""
	if t.Expected != 0 {
		verdict = " " + Verdict(t.Expected, checksum)
	}
	_, err := fmt.Fprintf(t.W, "Raytracer checksum=%d%s, time=%dms\n",
		checksum, verdict, TicksToDuration(elapsed, t.Tick).Milliseconds())
	return err
}

// Verdict returns PASS when actual matches expected and FAIL otherwise.
func Verdict(expected, actual uint32) string {
	if expected == actual {
		return "PASS"
	}
	return "FAIL"
}

// TicksToDuration converts a tick count into wall time.
func TicksToDuration(ticks uint32, tick time.Duration) time.Duration {
	if tick <= 0 {
		tick = time.Millisecond
	}
	return time.Duration(ticks) * tick
}

// Log writes each run as a structured log record.
type Log struct {
	Logger *slog.Logger
}

func (l Log) Report(checksum, elapsed uint32) error {
	logger := l.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Info("raytracer run", "checksum", checksum, "elapsed_ticks", elapsed)
	return nil
}

// Checker fails the run when the checksum differs from Expected.
type Checker struct {
	Expected uint32
}

func (c Checker) Report(checksum, _ uint32) error {
	if checksum != c.Expected {
		return fmt.Errorf("%w: got %d, want %d", ErrChecksumMismatch, checksum, c.Expected)
	}
	return nil
}
