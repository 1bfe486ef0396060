// Package render turns gridpath symbol grids into raster images: one
// filled square per cell, colored by display symbol.
//
// The renderer consumes only the [][]rune snapshot that
// gridmap.GridMap.Symbols produces (cost glyphs plus overlay markers)
// and never touches search internals, so any symbol grid of the same
// shape renders fine.
//
// Palette:
//
//	'#' obstacle    dark red        (211, 33, 45)
//	'.' cost 1      light gray      (215, 215, 215)
//	',' cost 2      mid gray        (166, 166, 166)
//	':' cost 3      dark gray       (96, 96, 96)
//	';' cost 4      near black      (36, 36, 36)
//	'S' start       magenta         (255, 0, 255)
//	'G' goal        cyan            (0, 128, 255)
//	anything else   yellow          (255, 255, 0), path marks included
//
// Errors:
//
//   - ErrEmptyGrid: no rows or no columns.
//   - ErrNonRectangular: rows of differing lengths.
//   - ErrBadScale: non-positive cell size.
package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"
)

// Sentinel errors for rendering operations.
var (
	// ErrEmptyGrid indicates a symbol grid with no rows or no columns.
	ErrEmptyGrid = errors.New("render: symbol grid must have at least one row and one column")

	// ErrNonRectangular indicates symbol rows of differing lengths.
	ErrNonRectangular = errors.New("render: all symbol rows must have the same length")

	// ErrBadScale indicates a non-positive cell edge length in pixels.
	ErrBadScale = errors.New("render: scale must be positive")
)

// DefaultScale is the cell edge length, in pixels, the CLI renders with.
const DefaultScale = 16

// palette maps display symbols to their cell colors. Symbols without an
// entry (path marks, dense-cost glyphs) fall back to fallbackColor.
var palette = map[rune]color.RGBA{
	'#': {R: 211, G: 33, B: 45, A: 255},
	'.': {R: 215, G: 215, B: 215, A: 255},
	',': {R: 166, G: 166, B: 166, A: 255},
	':': {R: 96, G: 96, B: 96, A: 255},
	';': {R: 36, G: 36, B: 36, A: 255},
	'S': {R: 255, G: 0, B: 255, A: 255},
	'G': {R: 0, G: 128, B: 255, A: 255},
}

// fallbackColor highlights everything the palette does not name, which
// makes path marks pop against the grays.
var fallbackColor = color.RGBA{R: 255, G: 255, B: 0, A: 255}

// ColorFor returns the cell color for a display symbol.
func ColorFor(symbol rune) color.RGBA {
	if c, ok := palette[symbol]; ok {
		return c
	}
	return fallbackColor
}

// Image renders the symbol grid with scale×scale pixels per cell.
// Row 0 lands at the top of the image, column 0 at the left.
// Complexity: O(rows×cols) draw calls.
func Image(symbols [][]rune, scale int) (image.Image, error) {
	if scale < 1 {
		return nil, fmt.Errorf("%w: %d", ErrBadScale, scale)
	}
	if len(symbols) == 0 || len(symbols[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	cols := len(symbols[0])
	for r, row := range symbols {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(row), cols)
		}
	}

	dc := gg.NewContext(cols*scale, len(symbols)*scale)
	var sym rune
	for y, row := range symbols {
		for x := range row {
			sym = row[x]
			dc.SetColor(ColorFor(sym))
			dc.DrawRectangle(float64(x*scale), float64(y*scale), float64(scale), float64(scale))
			dc.Fill()
		}
	}

	return dc.Image(), nil
}

// SavePNG renders the symbol grid and writes it as a PNG file at path.
func SavePNG(path string, symbols [][]rune, scale int) error {
	img, err := Image(symbols, scale)
	if err != nil {
		return err
	}
	if err := gg.SavePNG(path, img); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}
