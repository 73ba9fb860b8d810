// Package gridgraph provides utilities to treat a pipe maze as a graph of
// grid cells. It supports:
//
//   - Parsing text into a validated rectangular Grid
//   - Resolving the start cell's openings from neighbour evidence
//   - Inflating the grid so connectors between cells become addressable
//   - Identification of connected regions of passable inflated cells
package gridgraph

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/pipeloop/pipe"
)

// maxLineBytes bounds a single input row read by Parse.
const maxLineBytes = 1 << 20

// Parse reads one grid row per line from r and builds a Grid.
// Trailing "\r" and trailing blank lines are ignored.
// Returns a *pipe.ParseError wrapping ErrEmptyGrid, ErrNonRectangular,
// ErrNoStart, ErrMultipleStarts or pipe.ErrUnknownGlyph.
// Algorithmic complexity: O(W×H) time and memory.
func Parse(r io.Reader) (*Grid, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	var rows []string
	for sc.Scan() {
		rows = append(rows, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gridgraph: read input: %w", err)
	}
	for len(rows) > 0 && rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}

	return FromRows(rows)
}

// FromRows builds a Grid from already split rows.
// Same validation and errors as Parse.
func FromRows(rows []string) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, &pipe.ParseError{Err: ErrEmptyGrid}
	}
	w := len([]rune(rows[0]))
	g := &Grid{
		Width:  w,
		Height: len(rows),
		cells:  make([]pipe.Pipe, 0, w*len(rows)),
	}
	starts := 0
	for y, row := range rows {
		runes := []rune(row)
		if len(runes) != w {
			return nil, &pipe.ParseError{
				Line: y + 1,
				Err:  fmt.Errorf("%w: got %d columns, want %d", ErrNonRectangular, len(runes), w),
			}
		}
		for x, r := range runes {
			p, err := pipe.ParseGlyph(r)
			if err != nil {
				return nil, &pipe.ParseError{Line: y + 1, Column: x + 1, Err: err}
			}
			if p == pipe.Start {
				starts++
				if starts > 1 {
					return nil, &pipe.ParseError{Line: y + 1, Column: x + 1, Err: ErrMultipleStarts}
				}
				g.Start = pipe.Position{Row: y, Col: x}
			}
			g.cells = append(g.cells, p)
		}
	}
	if starts == 0 {
		return nil, &pipe.ParseError{Err: ErrNoStart}
	}

	return g, nil
}

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(p pipe.Position) bool {
	return p.Row >= 0 && p.Row < g.Height && p.Col >= 0 && p.Col < g.Width
}

// At returns the pipe at p, or pipe.Ground when p is out of bounds.
func (g *Grid) At(p pipe.Position) pipe.Pipe {
	if !g.InBounds(p) {
		return pipe.Ground
	}
	return g.cells[g.index(p)]
}

// Neighbor returns the cell one step from p in direction d and whether it
// lies inside the grid.
func (g *Grid) Neighbor(p pipe.Position, d pipe.Direction) (pipe.Position, bool) {
	n := p.Step(d)
	return n, g.InBounds(n)
}

// Resolved reports whether the start cell carries a real pipe shape.
func (g *Grid) Resolved() bool {
	return g.At(g.Start) != pipe.Start
}

// String renders the grid back to glyphs, one row per line.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.Height * (g.Width + 1))
	for i, p := range g.cells {
		if i > 0 && i%g.Width == 0 {
			sb.WriteByte('\n')
		}
		sb.WriteRune(p.Glyph())
	}
	return sb.String()
}

// index maps p to a row-major index: Row*Width + Col.
// Complexity: O(1).
func (g *Grid) index(p pipe.Position) int {
	return p.Row*g.Width + p.Col
}

// Coordinate converts a row-major index back to a position.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) pipe.Position {
	return pipe.Position{Row: idx / g.Width, Col: idx % g.Width}
}
