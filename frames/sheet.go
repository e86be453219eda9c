package frames

import (
	"errors"
	"fmt"
	"image"

	"golang.org/x/image/draw"
)

// Sheet lays tiles out left to right, top to bottom, cols per row. All tiles
// must have the size of the first one.
func Sheet(tiles []image.Image, cols int) (*image.NRGBA, error) {
	if len(tiles) == 0 {
		return nil, errors.New("sheet: no tiles")
	}
	if cols <= 0 {
		return nil, fmt.Errorf("sheet: invalid column count %d", cols)
	}
	rows := (len(tiles) + cols - 1) / cols

	tileW := tiles[0].Bounds().Dx()
	tileH := tiles[0].Bounds().Dy()
	canvas := image.NewNRGBA(image.Rect(0, 0, cols*tileW, rows*tileH))

	for idx, tile := range tiles {
		if tileW != tile.Bounds().Dx() || tileH != tile.Bounds().Dy() {
			return nil, fmt.Errorf("sheet: tile %d is %dx%d, expected %dx%d",
				idx, tile.Bounds().Dx(), tile.Bounds().Dy(), tileW, tileH)
		}
		x := (idx % cols) * tileW
		y := (idx / cols) * tileH
		draw.Draw(canvas, image.Rect(x, y, x+tileW, y+tileH), tile, tile.Bounds().Min, draw.Over)
	}
	return canvas, nil
}
