package region

import (
	"strings"

	"github.com/katalvlaran/pipeloop/gridgraph"
	"github.com/katalvlaran/pipeloop/pipe"
)

// CountEnclosed returns the number of source tiles enclosed by the loop:
// Interior cells whose row and column are both even. Connector cells are
// never counted.
func CountEnclosed(c *Classification) int {
	n := 0
	for r := 0; r < c.Height; r += 2 {
		for col := 0; col < c.Width; col += 2 {
			if c.tags[r*c.Width+col] == Interior {
				n++
			}
		}
	}
	return n
}

// Enclosed returns the enclosed source tiles in row-major order.
func Enclosed(c *Classification) []pipe.Position {
	var out []pipe.Position
	for r := 0; r < c.Height; r += 2 {
		for col := 0; col < c.Width; col += 2 {
			if c.tags[r*c.Width+col] == Interior {
				out = append(out, pipe.Position{Row: r / 2, Col: col / 2})
			}
		}
	}
	return out
}

// Render draws g with loop cells as their glyph ('S' at the start), enclosed
// tiles as 'I' and every other non-loop tile as 'O'.
// c must be the classification of g's inflated grid.
func Render(g *gridgraph.Grid, c *Classification) string {
	var sb strings.Builder
	sb.Grow(g.Height * (g.Width + 1))
	for r := 0; r < g.Height; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for col := 0; col < g.Width; col++ {
			p := pipe.Position{Row: r, Col: col}
			switch c.At(gridgraph.Scale(p)) {
			case LoopMember:
				if p == g.Start {
					sb.WriteRune(pipe.Start.Glyph())
				} else {
					sb.WriteRune(g.At(p).Glyph())
				}
			case Interior:
				sb.WriteByte('I')
			default:
				sb.WriteByte('O')
			}
		}
	}
	return sb.String()
}
