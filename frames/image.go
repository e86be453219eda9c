package frames

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/echoflaresat/tiff"
	"golang.org/x/exp/mmap"
	"golang.org/x/image/draw"
	xtiff "golang.org/x/image/tiff"
)

// ErrUnsupportedFormat is returned for file extensions with no encoder.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// Upscale enlarges img by an integer factor with nearest neighbour sampling,
// keeping the hard pixel edges of the low resolution frame.
func Upscale(img image.Image, factor int) image.Image {
	if factor <= 1 {
		return img
	}
	b := img.Bounds()
	dst := image.NewGray(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// NormalizeFormat maps a format name or file extension onto "png", "jpg"
// or "tif".
func NormalizeFormat(format string) (string, error) {
	switch strings.ToLower(strings.TrimPrefix(format, ".")) {
	case "png":
		return "png", nil
	case "jpg", "jpeg":
		return "jpg", nil
	case "tif", "tiff":
		return "tif", nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}

// Encode writes img in the given format (see NormalizeFormat).
func Encode(w io.Writer, img image.Image, format string) error {
	f, err := NormalizeFormat(format)
	if err != nil {
		return err
	}
	switch f {
	case "png":
		return (&png.Encoder{CompressionLevel: png.BestSpeed}).Encode(w, img)
	case "jpg":
		return jpeg.Encode(w, img, &jpeg.Options{Quality: 95})
	default:
		return xtiff.Encode(w, img, &xtiff.Options{Compression: xtiff.Deflate, Predictor: true})
	}
}

// Save writes img to path, choosing the encoder from the file extension.
func Save(path string, img image.Image) (err error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return fmt.Errorf("%w: %s has no extension", ErrUnsupportedFormat, path)
	}
	if _, err := NormalizeFormat(ext); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	// A partially written file must not be picked up by Load later.
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			_ = os.Remove(path)
		}
	}()
	if err := Encode(f, img, ext); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}

// Load reads an image file. TIFF is tried first, then the registered
// stdlib codecs. The result is copied into memory, so nothing refers to the
// mapped file after Load returns.
func Load(path string) (image.Image, error) {
	r, err := mmap.Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	sr := io.NewSectionReader(r, 0, int64(r.Len()))
	img, err := tiff.Decode(sr)

	// fallback to image codecs
	if err != nil {
		if _, err := sr.Seek(0, io.SeekStart); err != nil {
			return nil, err
		}
		img, _, err = image.Decode(sr)
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
	}

	out := image.NewNRGBA(img.Bounds())
	draw.Draw(out, out.Bounds(), img, img.Bounds().Min, draw.Src)
	return out, nil
}
