package loop

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/pipeloop/gridgraph"
	"github.com/katalvlaran/pipeloop/pipe"
)

// State is the walker's position in its two-state machine.
type State uint8

const (
	// Walking means the walker has not yet returned to the start.
	Walking State = iota
	// Closed is terminal: the walker stands on the start again.
	Closed
)

func (s State) String() string {
	if s == Closed {
		return "closed"
	}
	return "walking"
}

// Walker advances one pipe at a time around the loop through a grid's start.
type Walker struct {
	grid  *gridgraph.Grid
	start pipe.Position
	pos   pipe.Position
	// back is the opening of the current pipe that leads to the predecessor.
	back  pipe.Direction
	path  []pipe.Direction
	limit int
	state State
}

// NewWalker returns a walker standing on g.Start that will leave it through
// heading. g must have its start resolved and heading must be one of the
// start pipe's openings.
func NewWalker(g *gridgraph.Grid, heading pipe.Direction) (*Walker, error) {
	if !g.Resolved() {
		return nil, &pipe.TopologyError{At: g.Start, Err: ErrStartUnresolved}
	}
	back, ok := g.At(g.Start).Other(heading)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotStartOpening, heading)
	}

	return &Walker{
		grid:  g,
		start: g.Start,
		pos:   g.Start,
		back:  back,
		limit: g.Width * g.Height,
		state: Walking,
	}, nil
}

// Step moves the walker to the next loop cell and returns it.
// The move that lands on the start again switches the walker to Closed.
func (w *Walker) Step() (pipe.Position, error) {
	if w.state == Closed {
		return w.pos, ErrClosed
	}
	next, ok := w.grid.At(w.pos).Other(w.back)
	if !ok {
		return w.pos, &pipe.TopologyError{At: w.pos, Err: ErrBrokenPipe}
	}
	np, in := w.grid.Neighbor(w.pos, next)
	if !in {
		return w.pos, &pipe.TopologyError{
			At:  w.pos,
			Err: fmt.Errorf("%w: heading %s", ErrLeftGrid, next),
		}
	}
	if !w.grid.At(np).Has(next.Opposite()) {
		return w.pos, &pipe.TopologyError{
			At:  np,
			Err: fmt.Errorf("%w: %q entered from %s", ErrBrokenPipe, w.grid.At(np).Glyph(), next.Opposite()),
		}
	}

	w.pos = np
	w.back = next.Opposite()
	w.path = append(w.path, next)

	switch {
	case w.pos == w.start:
		w.state = Closed
	case len(w.path) >= w.limit:
		return w.pos, &pipe.TopologyError{At: w.pos, Err: ErrUnclosed}
	}

	return w.pos, nil
}

// Position returns the cell the walker stands on.
func (w *Walker) Position() pipe.Position { return w.pos }

// Steps returns the number of moves made so far.
func (w *Walker) Steps() int { return len(w.path) }

// State returns Walking or Closed.
func (w *Walker) State() State { return w.state }

// Closed reports whether the walker has returned to the start.
func (w *Walker) Closed() bool { return w.state == Closed }

// Path returns a copy of the directions taken so far.
func (w *Walker) Path() []pipe.Direction { return slices.Clone(w.path) }
