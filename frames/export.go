package frames

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Options controls Export.
type Options struct {
	Dir     string
	Format  string // png, jpg or tif
	Scale   int    // integer upscale factor, <= 1 keeps 80x40
	Workers int    // <= 0 uses GOMAXPROCS
	Logger  *slog.Logger
}

// FileName returns the export file name of a frame.
func FileName(k Key, format string) string {
	return fmt.Sprintf("frame_z%d_a%02d.%s", k.Zoom, k.Angle, format)
}

// Export renders every frame of the sweep and writes it to opts.Dir. It
// returns the written paths in sweep order.
func Export(ctx context.Context, cache *Cache, opts Options) ([]string, error) {
	if opts.Format == "" {
		opts.Format = "png"
	}
	format, err := NormalizeFormat(opts.Format)
	if err != nil {
		return nil, err
	}
	if opts.Workers <= 0 {
		opts.Workers = runtime.GOMAXPROCS(0)
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	if err := os.MkdirAll(opts.Dir, 0755); err != nil {
		return nil, fmt.Errorf("create %s: %w", opts.Dir, err)
	}

	keys := cache.Keys()
	paths := make([]string, len(keys))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)
	for i, k := range keys {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			f, err := cache.Frame(k)
			if err != nil {
				return err
			}
			path := filepath.Join(opts.Dir, FileName(k, format))
			if err := Save(path, Upscale(f.Image(), opts.Scale)); err != nil {
				return err
			}
			logger.Debug("frame written", "frame", k.String(), "path", path, "checksum", f.Checksum())
			paths[i] = path
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	logger.Info("frames exported", "dir", opts.Dir, "count", len(paths))
	return paths, nil
}
