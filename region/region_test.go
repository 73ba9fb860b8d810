package region_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pipeloop/gridgraph"
	"github.com/katalvlaran/pipeloop/loop"
	"github.com/katalvlaran/pipeloop/pipe"
	"github.com/katalvlaran/pipeloop/region"
)

var (
	squareLoop = []string{
		".....",
		".S-7.",
		".|.|.",
		".L-J.",
		".....",
	}

	// squeezeLoop lets the outside region slip between the '||' pairs.
	squeezeLoop = []string{
		"..........",
		".S------7.",
		".|F----7|.",
		".||....||.",
		".||....||.",
		".|L-7F-J|.",
		".|..||..|.",
		".L--JL--J.",
		"..........",
	}

	largeLoop = []string{
		".F----7F7F7F7F-7....",
		".|F--7||||||||FJ....",
		".||.FJ||||||||L7....",
		"FJL7L7LJLJ||LJ.L-7..",
		"L--J.L7...LJS7F-7L7.",
		"....F-J..F7FJ|L7L7L7",
		"....L7.F7||L7|.L7L7|",
		".....|FJLJ|FJ|F7|.LJ",
		"....FJL-7.||.||||...",
		"....L---J.LJ.LJLJ...",
	}

	junkLoop = []string{
		"FF7FSF7F7F7F7F7F---7",
		"L|LJ||||||||||||F--J",
		"FL-7LJLJ||||||LJL-77",
		"F--JF--7||LJLJ7F7FJ-",
		"L---JF-JLJ.||-FJLJJ7",
		"|F|F-JF---7F7-L7L|7|",
		"|FFJF7L7F-JF7|JL---7",
		"7-L-JL7||F7|L7F-7F7|",
		"L.L7LFJ|||||FJL7||LJ",
		"L7JLJL-JLJLJL--JLJ.L",
	}
)

// prepare runs the stages up to inflation.
func prepare(t testing.TB, rows []string) (*gridgraph.Grid, *gridgraph.Inflated) {
	t.Helper()
	g, err := gridgraph.FromRows(rows)
	require.NoError(t, err)
	g, err = g.ResolveStart()
	require.NoError(t, err)
	l, err := loop.Trace(g)
	require.NoError(t, err)
	return g, g.Inflate(l.Contains)
}

// frame returns an h×w grid whose border is one loop with S at (0,0).
func frame(h, w int) []string {
	rows := make([]string, h)
	for r := range rows {
		switch r {
		case 0:
			rows[r] = "S" + strings.Repeat("-", w-2) + "7"
		case h - 1:
			rows[r] = "L" + strings.Repeat("-", w-2) + "J"
		default:
			rows[r] = "|" + strings.Repeat(".", w-2) + "|"
		}
	}
	return rows
}

func TestCountEnclosed_Scenarios(t *testing.T) {
	cases := []struct {
		name string
		rows []string
		want int
	}{
		{"Square", squareLoop, 1},
		{"Squeeze", squeezeLoop, 4},
		{"Large", largeLoop, 8},
		{"StrayPipes", junkLoop, 10},
		{"Smallest", []string{"S7", "LJ"}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, in := prepare(t, tc.rows)
			c := region.Classify(in)
			assert.Equal(t, tc.want, region.CountEnclosed(c))
			assert.Len(t, region.Enclosed(c), tc.want)
			assert.Zero(t, c.Count(region.Unknown), "every cell must be classified")
		})
	}
}

func TestEnclosed_Squeeze(t *testing.T) {
	_, in := prepare(t, squeezeLoop)
	got := region.Enclosed(region.Classify(in))
	want := []pipe.Position{{Row: 6, Col: 2}, {Row: 6, Col: 3}, {Row: 6, Col: 6}, {Row: 6, Col: 7}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("enclosed tiles mismatch (-want +got):\n%s", diff)
	}
}

// TestClassify_ConnectorsNotCounted checks interior connector cells exist
// yet never contribute to the tile count.
func TestClassify_ConnectorsNotCounted(t *testing.T) {
	_, in := prepare(t, frame(4, 4))
	c := region.Classify(in)

	// The 2×2 interior and the gaps around it inflate to a 5×5 block:
	// 4 tiles and 21 connectors.
	assert.Equal(t, 25, c.Count(region.Interior))
	assert.Equal(t, 4, region.CountEnclosed(c))
	assert.Equal(t, region.Interior, c.At(pipe.Position{Row: 3, Col: 3}))
	assert.Equal(t, region.LoopMember, c.At(pipe.Position{Row: 0, Col: 0}))
	assert.Equal(t, region.Unknown, c.At(pipe.Position{Row: -1, Col: 0}))
}

// TestClassify_FullBorderLoop covers loops running along the whole grid
// border: with no cell left between the sides nothing is enclosed, otherwise
// the inner (H−2)×(W−2) block is.
func TestClassify_FullBorderLoop(t *testing.T) {
	for _, size := range [][2]int{{2, 2}, {2, 7}, {6, 2}, {3, 3}, {4, 5}, {9, 6}} {
		h, w := size[0], size[1]
		_, in := prepare(t, frame(h, w))
		c := region.Classify(in)
		assert.Equal(t, (h-2)*(w-2), region.CountEnclosed(c), "frame %dx%d", h, w)
		assert.Zero(t, c.Count(region.Exterior), "frame %dx%d has no outside cell", h, w)
	}
}

// TestClassify_OrderIndependent checks shuffled fill orders and the plain
// component analysis all agree cell by cell.
func TestClassify_OrderIndependent(t *testing.T) {
	for _, rows := range [][]string{squareLoop, squeezeLoop, largeLoop, junkLoop} {
		_, in := prepare(t, rows)
		base := region.Classify(in).Tags()

		for seed := int64(1); seed <= 8; seed++ {
			got := region.Classify(in, region.WithSeedShuffle(seed)).Tags()
			if diff := cmp.Diff(base, got); diff != "" {
				t.Fatalf("seed %d changed the classification (-base +got):\n%s", seed, diff)
			}
		}
		got := region.Classify(in, region.WithRand(rand.New(rand.NewSource(99)))).Tags()
		require.Equal(t, base, got)

		// Oracle: whole components, border test applied afterwards.
		oracle := make([]region.Tag, in.Len())
		for i := range oracle {
			oracle[i] = region.LoopMember
		}
		for _, comp := range in.OpenComponents() {
			tag := region.Interior
			if in.TouchesBorder(comp) {
				tag = region.Exterior
			}
			for _, i := range comp {
				oracle[i] = tag
			}
		}
		if diff := cmp.Diff(oracle, base); diff != "" {
			t.Fatalf("classification disagrees with components (-oracle +got):\n%s", diff)
		}
	}
}

func TestWithRand_NilPanics(t *testing.T) {
	assert.Panics(t, func() { region.WithRand(nil) })
}

func TestRender(t *testing.T) {
	g, in := prepare(t, squeezeLoop)
	got := region.Render(g, region.Classify(in))
	want := strings.Join([]string{
		"OOOOOOOOOO",
		"OS------7O",
		"O|F----7|O",
		"O||OOOO||O",
		"O||OOOO||O",
		"O|L-7F-J|O",
		"O|II||II|O",
		"OL--JL--JO",
		"OOOOOOOOOO",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestRender_StrayPipes(t *testing.T) {
	g, in := prepare(t, junkLoop)
	got := region.Render(g, region.Classify(in))
	want := strings.Join([]string{
		"OF7FSF7F7F7F7F7F---7",
		"O|LJ||||||||||||F--J",
		"OL-7LJLJ||||||LJL-7O",
		"F--JF--7||LJLJIF7FJO",
		"L---JF-JLJIIIIFJLJOO",
		"OOOF-JF---7IIIL7OOOO",
		"OOFJF7L7F-JF7IIL---7",
		"OOL-JL7||F7|L7F-7F7|",
		"OOOOOFJ|||||FJL7||LJ",
		"OOOOOL-JLJLJL--JLJOO",
	}, "\n")
	assert.Equal(t, want, got)
}
