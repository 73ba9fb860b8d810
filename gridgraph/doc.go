// Package gridgraph treats a rectangular pipe maze as a graph of cells,
// enabling start-cell resolution and a doubled-resolution view in which
// plain 4-connected flood fill decides containment exactly.
//
// What:
//
//   - Grid wraps a rectangular row-major slice of pipe.Pipe plus the start
//     position. It is immutable once built.
//   - Parse / FromRows turn text into a Grid, rejecting ragged rows, unknown
//     glyphs and anything but exactly one 'S'.
//   - ResolveStart infers the two true openings of the start cell from its
//     neighbours and returns a patched copy.
//   - Inflate builds the (2H−1)×(2W−1) grid of walls: even/even cells are
//     the source cells, the others are connectors between two adjacent cells.
//   - Inflated.OpenComponents lists 4-connected regions of non-wall cells.
//
// Why:
//
//   - Two corner pipes touching diagonally neither share an edge nor block
//     the gap between them. Inserting connector cells turns that gap into
//     an ordinary passable cell, so 4-connectivity is exact again.
//
// Complexity:
//
//   - Parse:          O(W×H), Memory: O(W×H).
//   - ResolveStart:   O(W×H) for the copy, O(1) for the inference.
//   - Inflate:        O(W×H), Memory: O(4×W×H).
//   - OpenComponents: O(W×H), Memory: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrNoStart / ErrMultipleStarts: start glyph count is not exactly one.
//   - ErrStartDegree: the start cell does not connect to exactly two neighbours.
//
// Parse failures are reported as *pipe.ParseError, start failures as
// *pipe.TopologyError; both unwrap to the sentinels above.
package gridgraph
