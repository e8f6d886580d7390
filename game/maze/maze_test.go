package maze

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zyedidia/generic/mapset"
)

// constRand always draws the same value, folded into range.
type constRand struct{ v int }

func (c constRand) Intn(n int) int { return c.v % n }

// reachableCells counts cells reachable from the entry through passable kinds.
func reachableCells(g *Grid) mapset.Set[CellPosition] {
	seen := mapset.New[CellPosition]()
	queue := []CellPosition{g.Entry()}
	seen.Put(g.Entry())
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, dir := range Directions {
			delta, _ := dir.Delta()
			next := cur.Add(delta)
			if !g.InBound(next.Row, next.Col) || seen.Has(next) || !g.KindAt(next.Row, next.Col).Passable() {
				continue
			}
			seen.Put(next)
			queue = append(queue, next)
		}
	}
	return seen
}

func TestGenerateLevelsInvariants(t *testing.T) {
	sizes := []struct {
		name       string
		rows, cols int
	}{
		{"10x10", 10, 10},
		{"3x7", 3, 7},
		{"1x6", 1, 6},
		{"2x2", 2, 2},
	}

	for _, tc := range sizes {
		t.Run(tc.name, func(t *testing.T) {
			rng := rand.New(rand.NewSource(42))
			levels, err := GenerateLevels(20, tc.rows, tc.cols, rng)
			require.NoError(t, err)
			require.Len(t, levels, 20)

			for _, g := range levels {
				assert.Equal(t, tc.rows, g.Rows())
				assert.Equal(t, tc.cols, g.Cols())

				// Entry and exit stay empty.
				assert.Equal(t, Passage, g.KindAt(0, 0))
				assert.Equal(t, Passage, g.KindAt(tc.rows-1, tc.cols-1))

				// No stray passage besides entry and exit.
				assert.Equal(t, 2, g.Count(Passage), g.String())

				// The exit stays reachable around walls and obstacles.
				assert.True(t, reachableCells(g).Has(g.Exit()), g.String())
			}
		})
	}
}

func TestGenerateTwoByTwoHasNoDecoration(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		levels, err := GenerateLevels(1, 2, 2, rand.New(rand.NewSource(seed)))
		require.NoError(t, err)
		g := levels[0]

		assert.Zero(t, g.Count(Hazard))
		assert.Zero(t, g.Count(Obstacle))
		assert.Zero(t, g.Count(Collectible))
		assert.Equal(t, 2, g.Count(Minidot))
	}
}

func TestGenerateTwoRowLevelIsDecorated(t *testing.T) {
	// Every carved cell is open, so the route runs along row 0 and drops into
	// the exit. The rest of row 1 is off the route.
	levels, err := GenerateLevels(1, 2, 20, constRand{v: 0})
	require.NoError(t, err)
	g := levels[0]

	assert.Equal(t, 19, g.Count(Collectible))
	assert.Equal(t, 19, g.Count(Minidot))
	assert.Equal(t, Passage, g.KindAt(0, 0))
	assert.Equal(t, Passage, g.KindAt(1, 19))
	for c := 0; c < 19; c++ {
		assert.Equal(t, Collectible, g.KindAt(1, c), "col %d", c)
	}
}

func TestGenerateForcedDraws(t *testing.T) {
	const rows, cols = 10, 10
	path := SolutionPath(newGrid(rows, cols, Passage))
	require.Len(t, path, rows+cols-1)

	t.Run("draw zero decorates every off-path cell as collectible", func(t *testing.T) {
		levels, err := GenerateLevels(1, rows, cols, constRand{v: 0})
		require.NoError(t, err)
		g := levels[0]

		assert.Equal(t, rows*cols-len(path), g.Count(Collectible))
		assert.Zero(t, g.Count(Hazard))
		assert.Zero(t, g.Count(Obstacle))
		for _, pos := range path[1 : len(path)-1] {
			assert.Equal(t, Minidot, g.KindAt(pos.Row, pos.Col))
		}
	})

	t.Run("draw fifty leaves every cell as minidot", func(t *testing.T) {
		levels, err := GenerateLevels(1, rows, cols, constRand{v: 50})
		require.NoError(t, err)
		g := levels[0]

		assert.Zero(t, g.Count(Collectible))
		assert.Zero(t, g.Count(Hazard))
		assert.Zero(t, g.Count(Obstacle))
		assert.Equal(t, rows*cols-2, g.Count(Minidot))
	})
}

func TestLevelRetriesUnreachableGrid(t *testing.T) {
	gen, err := NewGenerator(rand.New(rand.NewSource(3)), DefaultProfile())
	require.NoError(t, err)

	checks := 0
	gen.reachable = func(g *Grid) bool {
		checks++
		return checks > 1 && IsReachable(g)
	}

	g, err := gen.Level(6, 6)
	require.NoError(t, err)
	assert.Equal(t, 2, checks)

	// The second attempt carved a fresh maze and finished it.
	assert.Equal(t, 2, g.Count(Passage))
	assert.True(t, reachableCells(g).Has(g.Exit()), g.String())
}

func TestGenerateIsReproducible(t *testing.T) {
	a, err := GenerateLevels(5, 10, 10, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	b, err := GenerateLevels(5, 10, 10, rand.New(rand.NewSource(7)))
	require.NoError(t, err)

	for i := range a {
		assert.True(t, a[i].Equal(b[i]), "level %d differs", i)
	}
}

func TestGenerateRejectsDegenerateConfig(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for _, dims := range [][2]int{{0, 10}, {10, 0}, {-1, 5}, {1, 1}} {
		_, err := GenerateLevels(3, dims[0], dims[1], rng)
		assert.ErrorIs(t, err, ErrInvalidDimensions, "dims %v", dims)
	}

	_, err := GenerateLevels(0, 10, 10, rng)
	assert.ErrorIs(t, err, ErrInvalidLevelCount)

	_, err = NewGenerator(nil, DefaultProfile())
	assert.Error(t, err)

	_, err = NewGenerator(rng, Profile{Roll: 100, CollectibleBelow: 20, HazardBelow: 10, ObstacleBelow: 30})
	assert.Error(t, err)
}

func TestDirectionDelta(t *testing.T) {
	delta, err := East.Delta()
	require.NoError(t, err)
	assert.Equal(t, CellPosition{Row: 0, Col: 1}, delta)

	_, err = Direction("Up").Delta()
	assert.ErrorIs(t, err, ErrInvalidMove)
}
