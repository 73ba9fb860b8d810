package loop

import (
	"github.com/katalvlaran/pipeloop/gridgraph"
	"github.com/katalvlaran/pipeloop/pipe"
)

// Loop is the ordered cycle of cells through the start. Cells[0] is the
// start; consecutive cells, and the last and first, are connected.
type Loop struct {
	Cells  []pipe.Position
	width  int
	member []bool
}

// Len returns the loop length: the number of steps needed to return to start.
func (l *Loop) Len() int { return len(l.Cells) }

// Contains reports whether p is a loop cell. Complexity: O(1).
func (l *Loop) Contains(p pipe.Position) bool {
	if p.Row < 0 || p.Col < 0 || p.Col >= l.width {
		return false
	}
	i := p.Row*l.width + p.Col
	return i < len(l.member) && l.member[i]
}

// Trace walks from g.Start through the first opening of the start pipe and
// records every cell until the start is reached again. The start is
// recorded once, at the beginning.
func Trace(g *gridgraph.Grid) (*Loop, error) {
	if !g.Resolved() {
		return nil, &pipe.TopologyError{At: g.Start, Err: ErrStartUnresolved}
	}
	heading, _, _ := g.At(g.Start).Openings()
	w, err := NewWalker(g, heading)
	if err != nil {
		return nil, err
	}

	l := &Loop{
		Cells:  []pipe.Position{g.Start},
		width:  g.Width,
		member: make([]bool, g.Width*g.Height),
	}
	l.member[g.Start.Row*g.Width+g.Start.Col] = true
	for {
		p, err := w.Step()
		if err != nil {
			return nil, err
		}
		if w.Closed() {
			return l, nil
		}
		l.Cells = append(l.Cells, p)
		l.member[p.Row*g.Width+p.Col] = true
	}
}

// Farthest returns the number of steps from the start to the loop cell
// farthest from it, ceil(N/2) for a loop of length N.
//
// Two walkers leave the start through its two openings and advance in
// lockstep. They meet on a cell after N/2 steps when N is even, or swap
// across an edge on step ceil(N/2) when N is odd.
func Farthest(g *gridgraph.Grid) (int, error) {
	if !g.Resolved() {
		return 0, &pipe.TopologyError{At: g.Start, Err: ErrStartUnresolved}
	}
	a, b, _ := g.At(g.Start).Openings()
	wa, err := NewWalker(g, a)
	if err != nil {
		return 0, err
	}
	wb, err := NewWalker(g, b)
	if err != nil {
		return 0, err
	}

	prevA, prevB := g.Start, g.Start
	for i := 0; ; i++ {
		pa, err := wa.Step()
		if err != nil {
			return 0, err
		}
		pb, err := wb.Step()
		if err != nil {
			return 0, err
		}
		if pa == pb || (pa == prevB && pb == prevA) {
			return i + 1, nil
		}
		prevA, prevB = pa, pb
	}
}
