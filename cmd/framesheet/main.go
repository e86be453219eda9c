// Command framesheet merges exported benchmark frames into one contact sheet.
package main

import (
	"fmt"
	"image"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/echoflaresat/raybench/frames"
)

func main() {
	if len(os.Args) < 4 {
		fmt.Fprintf(os.Stderr, "Usage: %s <cols>x<rows> <output.png|.jpg|.tif> <frame1> <frame2> ...\n", os.Args[0])
		os.Exit(1)
	}

	cols, rows, err := parseLayout(os.Args[1])
	if err != nil {
		log.Fatal(err)
	}

	output := os.Args[2]
	inputFiles := os.Args[3:]
	if len(inputFiles) > cols*rows {
		log.Fatalf("Layout %dx%d holds %d frames, got %d", cols, rows, cols*rows, len(inputFiles))
	}

	tiles := make([]image.Image, 0, len(inputFiles))
	for _, path := range inputFiles {
		fmt.Printf("Processing %s\n", path)
		tile, err := frames.Load(path)
		if err != nil {
			log.Fatalf("Could not load input file %q: %v", path, err)
		}
		tiles = append(tiles, tile)
	}

	sheet, err := frames.Sheet(tiles, cols)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("-> creating %s\n", output)
	if err := frames.Save(output, sheet); err != nil {
		log.Fatalf("Could not create %s: %v", output, err)
	}
}

// parseLayout parses "<cols>x<rows>".
func parseLayout(s string) (int, int, error) {
	parts := strings.Split(s, "x")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid layout %q (expected NxM)", s)
	}
	cols, err := strconv.Atoi(parts[0])
	if err != nil || cols <= 0 {
		return 0, 0, fmt.Errorf("invalid cols in %q", s)
	}
	rows, err := strconv.Atoi(parts[1])
	if err != nil || rows <= 0 {
		return 0, 0, fmt.Errorf("invalid rows in %q", s)
	}
	return cols, rows, nil
}
