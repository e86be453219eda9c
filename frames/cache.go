// Package frames renders individual sweep frames and moves them in and out
// of image files.
package frames

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru"

	"github.com/echoflaresat/raybench/render"
)

// Key addresses one frame of the sweep by zoom index and light angle index.
type Key struct {
	Zoom  int
	Angle int
}

func (k Key) String() string {
	return fmt.Sprintf("z%d/a%02d", k.Zoom, k.Angle)
}

// Cache renders frames on demand and keeps the most recent ones.
// It is safe for concurrent use.
type Cache struct {
	frames *lru.Cache // Key -> *render.Frame
	zooms  []float32
	angles []float32
}

// NewCache returns a cache holding up to size frames.
func NewCache(size int) (*Cache, error) {
	c, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("frame cache: %w", err)
	}
	return &Cache{
		frames: c,
		zooms:  render.Zooms(),
		angles: render.LightAngles(),
	}, nil
}

// Keys lists every frame of the sweep in sweep order.
func (c *Cache) Keys() []Key {
	keys := make([]Key, 0, len(c.zooms)*len(c.angles))
	for z := range c.zooms {
		for a := range c.angles {
			keys = append(keys, Key{Zoom: z, Angle: a})
		}
	}
	return keys
}

// Frame returns the frame for k, rendering it on a miss. The returned frame
// is shared and must not be modified.
func (c *Cache) Frame(k Key) (*render.Frame, error) {
	if k.Zoom < 0 || k.Zoom >= len(c.zooms) || k.Angle < 0 || k.Angle >= len(c.angles) {
		return nil, fmt.Errorf("frame %v out of range", k)
	}
	if v, ok := c.frames.Get(k); ok {
		return v.(*render.Frame), nil
	}
	f := render.RenderFrame(c.zooms[k.Zoom], render.OrbitLight(c.angles[k.Angle]))
	c.frames.Add(k, f)
	return f, nil
}

// Len returns the number of cached frames.
func (c *Cache) Len() int {
	return c.frames.Len()
}
