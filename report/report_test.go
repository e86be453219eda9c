package report

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestText(t *testing.T) {
	cases := []struct {
		name     string
		sink     Text
		checksum uint32
		elapsed  uint32
		want     string
	}{
		{"pass", Text{Expected: 363682}, 363682, 41, "Raytracer checksum=363682 PASS, time=41ms\n"},
		{"fail", Text{Expected: 363682}, 1, 41, "Raytracer checksum=1 FAIL, time=41ms\n"},
		{"no verdict", Text{}, 7, 3, "Raytracer checksum=7, time=3ms\n"},
		{"slow tick", Text{Tick: 10 * time.Millisecond}, 7, 3, "Raytracer checksum=7, time=30ms\n"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var buf bytes.Buffer
			c.sink.W = &buf
			require.NoError(t, c.sink.Report(c.checksum, c.elapsed))
			assert.Equal(t, c.want, buf.String())
		})
	}
}

func TestChecker(t *testing.T) {
	c := Checker{Expected: 10}
	assert.NoError(t, c.Report(10, 99))

	err := c.Report(11, 99)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrChecksumMismatch))
	assert.Contains(t, err.Error(), "got 11, want 10")
}

func TestMultiCallsAllAndJoinsErrors(t *testing.T) {
	var calls []string
	boom := errors.New("boom")
	m := Multi{
		SinkFunc(func(c, e uint32) error { calls = append(calls, "a"); return nil }),
		Checker{Expected: 1},
		SinkFunc(func(c, e uint32) error { calls = append(calls, "c"); return boom }),
	}

	err := m.Report(2, 5)
	assert.Equal(t, []string{"a", "c"}, calls)
	assert.ErrorIs(t, err, ErrChecksumMismatch)
	assert.ErrorIs(t, err, boom)

	assert.NoError(t, Multi{}.Report(1, 1))
}

func TestLog(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	require.NoError(t, Log{Logger: logger}.Report(363682, 12))
	assert.Contains(t, buf.String(), "checksum=363682")
	assert.Contains(t, buf.String(), "elapsed_ticks=12")
}

func TestVerdictAndDuration(t *testing.T) {
	assert.Equal(t, "PASS", Verdict(3, 3))
	assert.Equal(t, "FAIL", Verdict(3, 4))
	assert.Equal(t, 5*time.Millisecond, TicksToDuration(5, 0))
	assert.Equal(t, 10*time.Microsecond, TicksToDuration(10, time.Microsecond))
}
