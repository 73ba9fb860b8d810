package gridgraph

import "github.com/katalvlaran/pipeloop/pipe"

// OpenComponents finds all 4-connected regions of non-wall inflated cells.
// Returns a slice of components; each component is a slice of cell-indices
// (row-major) in BFS order, components ordered by their first cell.
//
// To convert an index back to a position, use Coordinate(idx).
//
// Time:   O(W·H·4).
// Memory: O(W·H) for visited flags and output.
func (in *Inflated) OpenComponents() [][]int {
	total := in.Len()
	seen := make([]bool, total)
	var comps [][]int

	for i0 := 0; i0 < total; i0++ {
		if in.walls[i0] || seen[i0] {
			continue
		}
		// BFS to collect component
		queue := []int{i0}
		seen[i0] = true
		var comp []int

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			comp = append(comp, u)
			up := in.Coordinate(u)
			for _, d := range pipe.Directions {
				vp := up.Step(d)
				if !in.InBounds(vp) || in.IsWall(vp) {
					continue
				}
				vi := in.Index(vp)
				if !seen[vi] {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		comps = append(comps, comp)
	}
	return comps
}

// TouchesBorder reports whether any cell of comp lies on the inflated border.
func (in *Inflated) TouchesBorder(comp []int) bool {
	for _, i := range comp {
		if in.OnBorder(in.Coordinate(i)) {
			return true
		}
	}
	return false
}
