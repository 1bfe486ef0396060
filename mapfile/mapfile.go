// Package mapfile reads and writes gridpath cost grids as CSV: one grid
// row per record, one integer per field, Obstacle (-1) for walls.
//
// Parsing is strict: the grid must be rectangular (enforced by the CSV
// reader's field-count check), non-empty, and every cell must be either
// the obstacle sentinel or a cost ≥ 1. That is exactly the domain
// gridmap.New accepts, so a successful Parse always yields a
// constructible grid.
//
// Errors:
//
//   - ErrEmptyGrid: the input holds no records.
//   - ErrBadCell: a field is not an integer or is outside the cell-value
//     domain; the error names the offending row, column, and value.
//   - Ragged input surfaces the csv reader's own csv.ErrFieldCount.
package mapfile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/AndKlet/gridpath/gridmap"
)

// Sentinel errors for map parsing and writing.
var (
	// ErrEmptyGrid indicates an input with no rows or a grid with no columns.
	ErrEmptyGrid = errors.New("mapfile: grid must have at least one row and one column")

	// ErrBadCell indicates a field outside the legal cell-value domain.
	ErrBadCell = errors.New("mapfile: cell values must be Obstacle or ≥ 1")

	// ErrNonRectangular indicates a grid whose rows differ in length,
	// detected when writing caller-supplied grids.
	ErrNonRectangular = errors.New("mapfile: all rows must have the same length")
)

// Parse reads a comma-separated integer grid from r.
// Ragged records are rejected by the csv reader (csv.ErrFieldCount);
// empty input yields ErrEmptyGrid; non-integer or out-of-domain cells
// yield ErrBadCell with the offending coordinate.
// Complexity: O(rows×cols).
func Parse(r io.Reader) ([][]int, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("mapfile: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrEmptyGrid
	}

	grid := make([][]int, len(records))
	var (
		row   []int
		field string
		v     int
	)
	for rowIdx, rec := range records {
		row = make([]int, len(rec))
		for colIdx := range rec {
			field = strings.TrimSpace(rec[colIdx])
			v, err = strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("%w: cell (%d,%d) %q is not an integer", ErrBadCell, rowIdx, colIdx, field)
			}
			if v != gridmap.Obstacle && v < gridmap.MinCost {
				return nil, fmt.Errorf("%w: cell (%d,%d) holds %d", ErrBadCell, rowIdx, colIdx, v)
			}
			row[colIdx] = v
		}
		grid[rowIdx] = row
	}

	return grid, nil
}

// Load reads and parses the CSV grid stored at path.
func Load(path string) ([][]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mapfile: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Write renders grid as CSV onto w, one record per grid row.
// The grid must be non-empty (ErrEmptyGrid) and rectangular
// (ErrNonRectangular); a grid accepted by gridmap.New always is.
// Write output round-trips through Parse.
func Write(w io.Writer, grid [][]int) error {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return ErrEmptyGrid
	}
	cols := len(grid[0])
	for r, row := range grid {
		if len(row) != cols {
			return fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(row), cols)
		}
	}

	cw := csv.NewWriter(w)
	record := make([]string, cols)
	for _, row := range grid {
		for c, v := range row {
			record[c] = strconv.Itoa(v)
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("mapfile: %w", err)
		}
	}
	cw.Flush()

	if err := cw.Error(); err != nil {
		return fmt.Errorf("mapfile: %w", err)
	}
	return nil
}

// Save writes grid as CSV to a new file at path, replacing any previous
// content.
func Save(path string, grid [][]int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("mapfile: %w", err)
	}

	werr := Write(f, grid)
	cerr := f.Close()
	if werr != nil {
		return werr
	}
	if cerr != nil {
		return fmt.Errorf("mapfile: %w", cerr)
	}
	return nil
}
