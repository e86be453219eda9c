// Package ticks provides the benchmark's monotonic tick counter and the host
// timer service that advances it.
package ticks

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"
)

// DefaultPeriod is one tick per millisecond, the SysTick rate the benchmark
// reports its time in.
const DefaultPeriod = time.Millisecond

// Source is the read-only view of a tick counter.
type Source interface {
	Ticks() uint32
}

// Counter is a free-running tick counter. It wraps at 2^32.
type Counter struct {
	n atomic.Uint32
}

// Ticks returns the current count.
func (c *Counter) Ticks() uint32 { return c.n.Load() }

// Advance adds n ticks.
func (c *Counter) Advance(n uint32) { c.n.Add(n) }

// Elapsed returns end - start modulo 2^32, so a counter that wrapped once
// during the measurement still yields the right duration.
func Elapsed(start, end uint32) uint32 {
	return end - start
}

// Timer converts wall-clock time into ticks on a Counter, standing in for
// the periodic timer interrupt of the target board.
type Timer struct {
	Period  time.Duration
	Counter *Counter
	Logger  *slog.Logger

	last time.Time
	acc  time.Duration
}

// NewTimer returns a timer driving a fresh counter. A non-positive period
// falls back to DefaultPeriod.
func NewTimer(period time.Duration) *Timer {
	if period <= 0 {
		period = DefaultPeriod
	}
	return &Timer{Period: period, Counter: &Counter{}, Logger: slog.Default()}
}

// Source returns the counter as a read-only tick source.
func (t *Timer) Source() Source { return t.Counter }

// Run advances the counter until ctx is done. It always returns nil; the
// timer has no failure mode of its own.
func (t *Timer) Run(ctx context.Context) error {
	ticker := time.NewTicker(t.Period)
	defer ticker.Stop()

	t.step(time.Now())
	t.Logger.Debug("tick timer started", "period", t.Period)
	for {
		select {
		case <-ctx.Done():
			t.step(time.Now())
			t.Logger.Debug("tick timer stopped", "ticks", t.Counter.Ticks())
			return nil
		case now := <-ticker.C:
			t.step(now)
		}
	}
}

// step credits the whole periods elapsed since the previous call. The
// remainder is carried so that slow wakeups do not lose time.
func (t *Timer) step(now time.Time) {
	if t.last.IsZero() {
		t.last = now
		t.acc = 0
		return
	}

	t.acc += now.Sub(t.last)
	t.last = now

	ticks := t.acc / t.Period
	if ticks <= 0 {
		return
	}
	t.acc %= t.Period
	t.Counter.Advance(uint32(ticks))
}
