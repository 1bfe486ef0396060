// Package render rasterizes gridpath symbol grids into PNG images.
//
// What:
//
//   - Image draws one filled scale×scale square per cell, colored by
//     display symbol (obstacles dark red, costs in grays, start magenta,
//     goal cyan, everything else yellow).
//   - SavePNG renders and writes the image in one call.
//   - ColorFor exposes the palette, so terminal front-ends can match it.
//
// Why:
//
//   - A picture of the marked map is the fastest way to inspect a route
//     on grids too large for the text rendering.
//
// Complexity:
//
//   - Image: O(rows×cols) draw calls.
//
// Errors:
//
//   - ErrEmptyGrid: no rows or no columns.
//   - ErrNonRectangular: symbol rows of differing lengths.
//   - ErrBadScale: non-positive cell size.
package render
