package pipe

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownGlyph indicates a rune outside the pipe glyph table.
	ErrUnknownGlyph = errors.New("pipe: unknown glyph")
	// ErrInvalidOpenings indicates a shape was requested with equal openings.
	ErrInvalidOpenings = errors.New("pipe: openings must be two distinct directions")
)

// ParseError reports malformed grid text: a bad rune, a ragged row, or a
// missing or duplicated start glyph. Line and Column are 1-based; Column is
// zero when the problem concerns a whole line or the whole input.
type ParseError struct {
	Line, Column int
	Err          error
}

func (e *ParseError) Error() string {
	switch {
	case e.Line == 0:
		return fmt.Sprintf("parse: %v", e.Err)
	case e.Column == 0:
		return fmt.Sprintf("parse: line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("parse: line %d, column %d: %v", e.Line, e.Column, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// TopologyError reports a grid whose pipes do not form a valid loop through
// the start cell. At is the cell where the inconsistency was detected.
type TopologyError struct {
	At  Position
	Err error
}

func (e *TopologyError) Error() string {
	return fmt.Sprintf("topology: at %v: %v", e.At, e.Err)
}

func (e *TopologyError) Unwrap() error { return e.Err }
