package maze

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seqRand replays draws in order and repeats the last one.
type seqRand struct {
	draws []int
	i     int
}

func (s *seqRand) Intn(n int) int {
	d := s.draws[min(s.i, len(s.draws)-1)]
	s.i++
	return d % n
}

func TestDecorateNeverTouchesThePath(t *testing.T) {
	for seed := int64(0); seed < 30; seed++ {
		rng := rand.New(rand.NewSource(seed))
		cells := NewWallGrid(10, 10)
		Carve(cells, rng)
		g := Rasterize(cells)
		path := SolutionPath(g)
		require.NotEmpty(t, path)

		Decorate(g, path, rng, DefaultProfile())

		for _, pos := range path {
			assert.Equal(t, Minidot, g.KindAt(pos.Row, pos.Col), "path cell %v decorated", pos)
		}
		assert.Zero(t, g.Count(Passage))
	}
}

func TestDecorateBuckets(t *testing.T) {
	cases := []struct {
		draw int
		want CellKind
	}{
		{0, Collectible},
		{4, Collectible},
		{5, Hazard},
		{14, Hazard},
		{15, Obstacle},
		{34, Obstacle},
		{35, Minidot},
		{99, Minidot},
	}

	for _, tc := range cases {
		g := newGrid(3, 3, Passage)
		path := []CellPosition{{0, 0}, {0, 1}, {0, 2}, {1, 2}, {2, 2}}

		Decorate(g, path, constRand{v: tc.draw}, DefaultProfile())

		assert.Equal(t, tc.want, g.KindAt(1, 0), "draw %d", tc.draw)
		assert.Equal(t, tc.want, g.KindAt(2, 1), "draw %d", tc.draw)
		// Entry and exit are swept; the generator restores them.
		assert.Equal(t, Minidot, g.KindAt(0, 0))
		assert.Equal(t, Minidot, g.KindAt(2, 2))
	}
}

func TestDecorateSkipsWallsAndDrawsOncePerCell(t *testing.T) {
	g := mustGrid(t,
		"   ",
		"#  ",
		"   ",
	)
	path := SolutionPath(g)
	require.Len(t, path, 5)

	rng := &seqRand{draws: []int{10, 20, 60}}
	Decorate(g, path, rng, DefaultProfile())

	// Off-path passages in row-major order: (1,1), (2,0), (2,1).
	assert.Equal(t, 3, rng.i)
	assert.Equal(t, Wall, g.KindAt(1, 0))
	assert.Equal(t, Hazard, g.KindAt(1, 1))
	assert.Equal(t, Obstacle, g.KindAt(2, 0))
	assert.Equal(t, Minidot, g.KindAt(2, 1))
}

func TestDecorateTwoByTwoOnlySweeps(t *testing.T) {
	g := newGrid(2, 2, Passage)
	Decorate(g, SolutionPath(g), constRand{v: 0}, DefaultProfile())
	assert.Equal(t, 4, g.Count(Minidot))
}

func TestDecorateTwoRowGrids(t *testing.T) {
	for _, cols := range []int{3, 5, 20} {
		g := newGrid(2, cols, Passage)
		path := SolutionPath(g)
		require.Len(t, path, cols+1)

		Decorate(g, path, constRand{v: 0}, DefaultProfile())

		assert.Equal(t, cols-1, g.Count(Collectible), "2x%d", cols)
		assert.Equal(t, cols+1, g.Count(Minidot), "2x%d", cols)
	}
}

func TestProfileValidate(t *testing.T) {
	assert.NoError(t, DefaultProfile().Validate())
	assert.NoError(t, Profile{Roll: 10}.Validate())
	assert.Error(t, Profile{}.Validate())
	assert.Error(t, Profile{Roll: 100, CollectibleBelow: -1, HazardBelow: 5, ObstacleBelow: 10}.Validate())
	assert.Error(t, Profile{Roll: 30, CollectibleBelow: 5, HazardBelow: 15, ObstacleBelow: 35}.Validate())
}
