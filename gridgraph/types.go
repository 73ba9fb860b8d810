package gridgraph

import "github.com/katalvlaran/pipeloop/pipe"

// Grid is a rectangular pipe maze. It is immutable once built; ResolveStart
// returns a patched copy instead of mutating the receiver.
// Width and Height define dimensions; cells holds pipes in row-major order.
type Grid struct {
	Width, Height int
	// Start is the position of the 'S' glyph.
	Start pipe.Position
	cells []pipe.Pipe
}

// Inflated is the doubled-resolution wall map derived from a Grid and its
// loop. Even/even positions correspond to source cells; any other position
// is a connector between two orthogonally adjacent source cells.
// A wall is a loop-occupied cell; everything else is passable.
type Inflated struct {
	Width, Height int
	walls         []bool
}
