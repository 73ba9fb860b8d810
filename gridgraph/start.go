package gridgraph

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/pipeloop/pipe"
)

// ResolveStart infers the start cell's shape from its neighbours: a direction
// qualifies when the neighbour in that direction exists and opens back
// towards the start. Exactly two directions must qualify.
//
// Returns a copy of g with the start cell rewritten; g itself is unchanged.
// A grid whose start is already resolved is returned as is.
// On failure returns a *pipe.TopologyError wrapping ErrStartDegree.
// Complexity: O(W×H) for the copy.
func (g *Grid) ResolveStart() (*Grid, error) {
	if g.Resolved() {
		return g, nil
	}
	var open []pipe.Direction
	for _, d := range pipe.Directions {
		n, ok := g.Neighbor(g.Start, d)
		if !ok {
			continue
		}
		if g.At(n).Has(d.Opposite()) {
			open = append(open, d)
		}
	}
	if len(open) != 2 {
		return nil, &pipe.TopologyError{
			At:  g.Start,
			Err: fmt.Errorf("%w: found %d %v", ErrStartDegree, len(open), open),
		}
	}
	shape, err := pipe.Between(open[0], open[1])
	if err != nil {
		return nil, &pipe.TopologyError{At: g.Start, Err: err}
	}

	patched := &Grid{
		Width:  g.Width,
		Height: g.Height,
		Start:  g.Start,
		cells:  slices.Clone(g.cells),
	}
	patched.cells[patched.index(g.Start)] = shape

	return patched, nil
}
