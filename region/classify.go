package region

import (
	"github.com/katalvlaran/pipeloop/gridgraph"
	"github.com/katalvlaran/pipeloop/pipe"
)

// Classify tags every cell of in. Walls become LoopMember; every other cell
// becomes Interior or Exterior according to whether its 4-connected region
// reaches the border.
func Classify(in *gridgraph.Inflated, opts ...Option) *Classification {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	c := &Classification{
		Width:  in.Width,
		Height: in.Height,
		tags:   make([]Tag, in.Len()),
	}
	// Seeds next to the loop first, then every cell as a catch-all sweep.
	order := make([]int, 0, 2*in.Len())
	for i := range c.tags {
		if in.IsWall(in.Coordinate(i)) {
			c.tags[i] = LoopMember
		}
	}
	for i, t := range c.tags {
		if t == LoopMember {
			continue
		}
		p := in.Coordinate(i)
		for _, d := range pipe.Directions {
			if in.IsWall(p.Step(d)) {
				order = append(order, i)
				break
			}
		}
	}
	for i := range c.tags {
		order = append(order, i)
	}
	if o.rng != nil {
		o.rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })
	}

	f := filler{in: in, c: c, mark: make([]int32, in.Len())}
	for _, i := range order {
		if c.tags[i] == Unknown {
			f.fill(i)
		}
	}

	return c
}

// filler runs successive flood fills; mark[i] holds the id of the last fill
// that reached cell i.
type filler struct {
	in    *gridgraph.Inflated
	c     *Classification
	mark  []int32
	id    int32
	stack []int
	seen  []int
}

// fill classifies the region of seed, stopping early once the verdict is known.
func (f *filler) fill(seed int) {
	f.id++
	f.stack = append(f.stack[:0], seed)
	f.seen = append(f.seen[:0], seed)
	f.mark[seed] = f.id

	verdict := Interior
	for len(f.stack) > 0 {
		u := f.stack[len(f.stack)-1]
		f.stack = f.stack[:len(f.stack)-1]

		if t := f.c.tags[u]; t == Interior || t == Exterior {
			verdict = t
			break
		}
		up := f.in.Coordinate(u)
		if f.in.OnBorder(up) {
			verdict = Exterior
			break
		}
		for _, d := range pipe.Directions {
			vp := up.Step(d)
			if !f.in.InBounds(vp) || f.in.IsWall(vp) {
				continue
			}
			vi := f.in.Index(vp)
			if f.mark[vi] != f.id {
				f.mark[vi] = f.id
				f.stack = append(f.stack, vi)
				f.seen = append(f.seen, vi)
			}
		}
	}

	for _, i := range f.seen {
		f.c.tags[i] = verdict
	}
}
