package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrNoStart indicates the input contains no start glyph.
	ErrNoStart = errors.New("gridgraph: no start cell")
	// ErrMultipleStarts indicates the input contains more than one start glyph.
	ErrMultipleStarts = errors.New("gridgraph: more than one start cell")
	// ErrStartDegree indicates the start cell does not have exactly two
	// neighbours opening back towards it.
	ErrStartDegree = errors.New("gridgraph: start cell must connect to exactly two neighbours")
)
