package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustGrid(t *testing.T, rows ...string) *Grid {
	t.Helper()
	kinds := make([][]CellKind, len(rows))
	for r, line := range rows {
		for _, ch := range line {
			switch ch {
			case '#':
				kinds[r] = append(kinds[r], Wall)
			case 'X':
				kinds[r] = append(kinds[r], Obstacle)
			default:
				kinds[r] = append(kinds[r], Passage)
			}
		}
	}
	g, err := GridFromKinds(kinds)
	require.NoError(t, err)
	return g
}

func TestSolutionPathOpenGrid(t *testing.T) {
	g := newGrid(3, 3, Passage)

	want := []CellPosition{{0, 0}, {0, 1}, {0, 2}, {1, 2}, {2, 2}}
	assert.Equal(t, want, SolutionPath(g))
	assert.Equal(t, SolutionPath(g), SolutionPath(g))
}

func TestSolutionPathFollowsCorridor(t *testing.T) {
	g := mustGrid(t,
		"  # ",
		"# # ",
		"    ",
		" ## ",
	)

	want := []CellPosition{{0, 0}, {0, 1}, {1, 1}, {2, 1}, {2, 2}, {2, 3}, {3, 3}}
	assert.True(t, IsReachable(g))
	assert.Equal(t, want, SolutionPath(g))
}

func TestSolutionPathIsShortest(t *testing.T) {
	g := mustGrid(t,
		"     ",
		" ### ",
		"     ",
	)

	path := SolutionPath(g)
	assert.Len(t, path, 7)
	assert.Equal(t, g.Entry(), path[0])
	assert.Equal(t, g.Exit(), path[len(path)-1])
	for i := 1; i < len(path); i++ {
		dr, dc := path[i].Row-path[i-1].Row, path[i].Col-path[i-1].Col
		assert.Equal(t, 1, dr*dr+dc*dc, "step %d is not orthogonal", i)
	}
}

func TestUnreachableExit(t *testing.T) {
	g := mustGrid(t,
		"  # ",
		"  # ",
		"### ",
		"    ",
	)

	assert.False(t, IsReachable(g))
	assert.Nil(t, SolutionPath(g))
}

func TestSearchOnlyWalksPassage(t *testing.T) {
	g := mustGrid(t,
		" X ",
		"X  ",
		"   ",
	)
	assert.False(t, IsReachable(g))

	require.NoError(t, g.SetKind(0, 1, Passage))
	assert.True(t, IsReachable(g))

	require.NoError(t, g.SetKind(0, 1, Minidot))
	assert.False(t, IsReachable(g))
}
