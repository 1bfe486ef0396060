// Package mapfile loads and saves gridpath cost grids as CSV files.
//
// What:
//
//   - Parse/Load read comma-separated integer grids: one grid row per
//     record, Obstacle (-1) for walls, costs ≥ 1 elsewhere.
//   - Write/Save render a grid back to CSV; output round-trips through
//     Parse bit-for-bit.
//   - The accepted cell domain matches gridmap.New exactly, so a parsed
//     grid always constructs.
//
// Why:
//
//   - Maps live in version control and spreadsheets: plain CSV keeps
//     them diffable and hand-editable.
//   - The strict domain check moves input errors to load time, with
//     row/column coordinates in the message.
//
// Complexity:
//
//   - Parse / Write: O(rows×cols) time and memory.
//
// Errors:
//
//   - ErrEmptyGrid: no records, or a grid with no columns.
//   - ErrBadCell: a field is not an integer, or is outside the cell
//     domain.
//   - ErrNonRectangular: Write received rows of differing lengths.
//   - Ragged CSV input surfaces encoding/csv's csv.ErrFieldCount.
package mapfile
