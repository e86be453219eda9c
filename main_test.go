package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/echoflaresat/raybench/frames"
	"github.com/echoflaresat/raybench/render"
	"github.com/echoflaresat/raybench/report"
)

func TestRunPasses(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{"raybench", "-runs", "2", "-period", "1ms"}, &stdout, &stderr)
	if err != nil {
		t.Fatalf("run failed: %v\nstderr:\n%s", err, stderr.String())
	}

	out := stdout.String()
	if n := strings.Count(out, "Raytracer checksum=363682 PASS"); n != 2 {
		t.Fatalf("expected 2 PASS lines, got %d:\n%s", n, out)
	}
	if !strings.Contains(out, "Finished in final time") {
		t.Fatalf("missing total time:\n%s", out)
	}
	if !strings.Contains(stderr.String(), "checksum=363682") {
		t.Fatalf("missing log record:\n%s", stderr.String())
	}
}

func TestRunChecksumMismatch(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{"raybench", "-expect", "1"}, &stdout, &stderr)
	if !errors.Is(err, report.ErrChecksumMismatch) {
		t.Fatalf("expected checksum mismatch, got %v", err)
	}
	if !strings.Contains(stdout.String(), "FAIL") {
		t.Fatalf("expected FAIL line:\n%s", stdout.String())
	}
}

func TestRunWithoutCheck(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if err := run(context.Background(), []string{"raybench", "-expect", "0"}, &stdout, &stderr); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if strings.Contains(stdout.String(), "PASS") || strings.Contains(stdout.String(), "FAIL") {
		t.Fatalf("no verdict expected:\n%s", stdout.String())
	}
}

func TestRunHelpAndBadFlags(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if err := run(context.Background(), []string{"raybench", "-h"}, &stdout, &stderr); err != nil {
		t.Fatalf("help failed: %v", err)
	}
	if !strings.Contains(stderr.String(), "Benchmark Options:") {
		t.Fatalf("help output:\n%s", stderr.String())
	}

	if err := run(context.Background(), []string{"raybench", "-nope"}, &stdout, &stderr); err == nil {
		t.Fatalf("expected error for unknown flag")
	}
	if err := run(context.Background(), []string{"raybench", "-runs", "0"}, &stdout, &stderr); err == nil {
		t.Fatalf("expected error for zero runs")
	}
}

func TestRunRejectsOversizedExpect(t *testing.T) {
	var stdout, stderr bytes.Buffer
	// 4295330978 is 2^32 + 363682 and would wrap onto the reference checksum.
	err := run(context.Background(), []string{"raybench", "-expect", "4295330978"}, &stdout, &stderr)
	if err == nil {
		t.Fatalf("expected an error for a checksum above 32 bits")
	}
	if strings.Contains(stdout.String(), "PASS") {
		t.Fatalf("oversized expect must not report PASS:\n%s", stdout.String())
	}
}

func TestRunExportsFrames(t *testing.T) {
	dir := t.TempDir()
	var stdout, stderr bytes.Buffer
	args := []string{"raybench", "-frames", dir, "-format", "png", "-scale", "1"}
	if err := run(context.Background(), args, &stdout, &stderr); err != nil {
		t.Fatalf("run failed: %v\nstderr:\n%s", err, stderr.String())
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 3*render.LightSteps {
		t.Fatalf("expected %d frames, got %d", 3*render.LightSteps, len(entries))
	}

	k := frames.Key{Zoom: 2, Angle: 11}
	want := render.RenderFrame(render.Zooms()[k.Zoom], render.OrbitLight(render.LightAngles()[k.Angle]))
	assertSameEncoding(t, filepath.Join(dir, frames.FileName(k, "png")), want)
}

// assertSameEncoding fails unless the file at path holds exactly the PNG
// encoding of frame.
func assertSameEncoding(t *testing.T, path string, frame *render.Frame) {
	t.Helper()

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read exported frame: %v", err)
	}
	var want bytes.Buffer
	if err := frames.Encode(&want, frame.Image(), "png"); err != nil {
		t.Fatalf("failed to encode frame: %v", err)
	}
	if !bytes.Equal(want.Bytes(), got) {
		t.Fatalf("exported frame %s differs from a fresh render", path)
	}
}
