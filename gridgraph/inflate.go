package gridgraph

import "github.com/katalvlaran/pipeloop/pipe"

// Inflate builds the doubled-resolution wall map of g for the loop described
// by onLoop, which must report membership for source positions.
//
// Layout of the (2H−1)×(2W−1) result:
//
//   - (2r, 2c): source cell (r, c); a wall iff it is on the loop.
//   - (2r, 2c+1): connector between (r, c) and (r, c+1); a wall iff both are
//     on the loop and open towards each other.
//   - (2r+1, 2c): connector between (r, c) and (r+1, c); same rule vertically.
//   - (2r+1, 2c+1): never a wall.
//
// g should have its start resolved, otherwise the start cell has no
// openings and both its connectors stay passable.
// Complexity: O(W×H) time, O(4×W×H) memory.
func (g *Grid) Inflate(onLoop func(pipe.Position) bool) *Inflated {
	in := &Inflated{
		Width:  2*g.Width - 1,
		Height: 2*g.Height - 1,
	}
	in.walls = make([]bool, in.Width*in.Height)

	for r := 0; r < g.Height; r++ {
		for c := 0; c < g.Width; c++ {
			p := pipe.Position{Row: r, Col: c}
			if !onLoop(p) {
				continue
			}
			in.walls[in.Index(Scale(p))] = true
			// Right and Down cover every adjacent pair exactly once.
			for _, d := range [...]pipe.Direction{pipe.Right, pipe.Down} {
				n, ok := g.Neighbor(p, d)
				if !ok || !onLoop(n) {
					continue
				}
				if g.At(p).Has(d) && g.At(n).Has(d.Opposite()) {
					in.walls[in.Index(Scale(p).Step(d))] = true
				}
			}
		}
	}

	return in
}

// Scale maps a source position to its inflated position (2·Row, 2·Col).
func Scale(p pipe.Position) pipe.Position {
	return pipe.Position{Row: 2 * p.Row, Col: 2 * p.Col}
}

// Source maps an inflated position back to its source cell.
// ok is false for connector positions.
func Source(p pipe.Position) (src pipe.Position, ok bool) {
	if p.Row%2 != 0 || p.Col%2 != 0 {
		return pipe.Position{}, false
	}
	return pipe.Position{Row: p.Row / 2, Col: p.Col / 2}, true
}

// InBounds reports whether p lies within the inflated grid.
func (in *Inflated) InBounds(p pipe.Position) bool {
	return p.Row >= 0 && p.Row < in.Height && p.Col >= 0 && p.Col < in.Width
}

// IsWall reports whether p is loop-occupied. Out-of-bounds positions are not walls.
func (in *Inflated) IsWall(p pipe.Position) bool {
	return in.InBounds(p) && in.walls[in.Index(p)]
}

// OnBorder reports whether p lies on the outermost row or column.
func (in *Inflated) OnBorder(p pipe.Position) bool {
	return p.Row == 0 || p.Col == 0 || p.Row == in.Height-1 || p.Col == in.Width-1
}

// Len returns the number of inflated cells.
func (in *Inflated) Len() int {
	return in.Width * in.Height
}

// Index maps p to a row-major index: Row*Width + Col.
// Complexity: O(1).
func (in *Inflated) Index(p pipe.Position) int {
	return p.Row*in.Width + p.Col
}

// Coordinate converts a row-major index back to a position.
// Complexity: O(1).
func (in *Inflated) Coordinate(idx int) pipe.Position {
	return pipe.Position{Row: idx / in.Width, Col: idx % in.Width}
}
