// Package solver runs the full pipe-maze pipeline: parse, resolve the start,
// walk the loop, inflate, classify and count.
//
// Any parse or topology failure aborts the whole run; no partial Result is
// returned.
package solver

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/pipeloop/gridgraph"
	"github.com/katalvlaran/pipeloop/loop"
	"github.com/katalvlaran/pipeloop/region"
)

// Result holds both answers plus the intermediate structures they came from.
type Result struct {
	// Farthest is the step distance from the start to the farthest loop cell.
	Farthest int
	// Enclosed is the number of source tiles strictly inside the loop.
	Enclosed int
	// LoopLength is the number of cells on the loop.
	LoopLength int

	Grid           *gridgraph.Grid
	Loop           *loop.Loop
	Classification *region.Classification
}

// Render draws the grid with enclosed tiles as 'I' and outside tiles as 'O'.
func (r *Result) Render() string {
	return region.Render(r.Grid, r.Classification)
}

// Option configures Solve.
type Option func(*options)

type options struct {
	logger   *slog.Logger
	classify []region.Option
}

// WithLogger sets the logger receiving one Debug record per stage.
// Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("solver: WithLogger(nil)")
	}
	return func(o *options) {
		o.logger = l
	}
}

// WithClassifyOptions forwards options to region.Classify.
func WithClassifyOptions(opts ...region.Option) Option {
	return func(o *options) {
		o.classify = append(o.classify, opts...)
	}
}

// Solve parses the maze text from r and runs the pipeline on it.
func Solve(r io.Reader, opts ...Option) (*Result, error) {
	g, err := gridgraph.Parse(r)
	if err != nil {
		return nil, err
	}
	return SolveGrid(g, opts...)
}

// SolveGrid runs the pipeline on an already parsed grid. The start may be
// resolved or not.
func SolveGrid(g *gridgraph.Grid, opts ...Option) (*Result, error) {
	o := options{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(&o)
	}
	log := o.logger

	log.Debug("grid parsed", "width", g.Width, "height", g.Height, "start", g.Start.String())

	g, err := g.ResolveStart()
	if err != nil {
		return nil, err
	}
	log.Debug("start resolved", "shape", g.At(g.Start).String())

	far, err := loop.Farthest(g)
	if err != nil {
		return nil, err
	}
	l, err := loop.Trace(g)
	if err != nil {
		return nil, err
	}
	log.Debug("loop traced", "length", l.Len(), "farthest", far)

	in := g.Inflate(l.Contains)
	log.Debug("grid inflated", "width", in.Width, "height", in.Height)

	c := region.Classify(in, o.classify...)
	enclosed := region.CountEnclosed(c)
	log.Debug("regions classified",
		"interior", c.Count(region.Interior),
		"exterior", c.Count(region.Exterior),
		"enclosed", enclosed,
	)

	return &Result{
		Farthest:       far,
		Enclosed:       enclosed,
		LoopLength:     l.Len(),
		Grid:           g,
		Loop:           l,
		Classification: c,
	}, nil
}
