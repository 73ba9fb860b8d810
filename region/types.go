package region

import (
	"math/rand"
	"slices"

	"github.com/katalvlaran/pipeloop/pipe"
)

// Tag is the classification of one inflated cell.
type Tag uint8

const (
	// Unknown is only observed while Classify is running.
	Unknown Tag = iota
	// LoopMember marks a wall cell: a loop pipe or a connector between two.
	LoopMember
	// Interior marks a cell enclosed by the loop.
	Interior
	// Exterior marks a cell connected to the grid border.
	Exterior
)

func (t Tag) String() string {
	switch t {
	case LoopMember:
		return "loop"
	case Interior:
		return "interior"
	case Exterior:
		return "exterior"
	}
	return "unknown"
}

// Classification maps every inflated position to its Tag.
type Classification struct {
	Width, Height int
	tags          []Tag
}

// At returns the tag of inflated position p, or Unknown when out of bounds.
func (c *Classification) At(p pipe.Position) Tag {
	if p.Row < 0 || p.Row >= c.Height || p.Col < 0 || p.Col >= c.Width {
		return Unknown
	}
	return c.tags[p.Row*c.Width+p.Col]
}

// Count returns how many inflated cells carry tag t.
func (c *Classification) Count(t Tag) int {
	n := 0
	for _, v := range c.tags {
		if v == t {
			n++
		}
	}
	return n
}

// Tags returns a row-major copy of all tags.
func (c *Classification) Tags() []Tag {
	return slices.Clone(c.tags)
}

// Option configures Classify.
type Option func(*options)

type options struct {
	rng *rand.Rand
}

// WithRand shuffles the fill order with r. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("region: WithRand(nil)")
	}
	return func(o *options) {
		o.rng = r
	}
}

// WithSeedShuffle shuffles the fill order with a deterministic source.
func WithSeedShuffle(seed int64) Option {
	return func(o *options) {
		o.rng = rand.New(rand.NewSource(seed))
	}
}
