/*
Package maze generates the grid levels played by the dot-eating game.

A level is produced in four steps. A wall grid is carved into a perfect maze by
a randomized iterative depth-first search, the wall cells are rasterized into a
flat grid of cell kinds, the shortest route from the entry (top-left) to the
exit (bottom-right) is extracted with a breadth-first search, and every free
cell off that route is decorated with collectibles, hazards or obstacles. The
route itself is never decorated, so a finished level is always solvable.

The package holds no state between calls. All randomness comes from the Rand
passed in by the caller, which makes generation reproducible under a fixed seed.
*/
package maze

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDimensions = errors.New("invalid maze dimensions")
	ErrInvalidLevelCount = errors.New("invalid level count")
	ErrOutOfBounds       = errors.New("position is out of the grid")
	ErrUnknownKind       = errors.New("unknown cell kind")
	ErrInvalidMove       = errors.New("invalid move request")
)

// Rand is the uniform integer source used by generation.
// Intn returns a value in [0,n). *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Direction names one of the four orthogonal moves.
type Direction string

const (
	North Direction = "North"
	East  Direction = "East"
	South Direction = "South"
	West  Direction = "West"
)

// Directions lists the moves in neighbour enumeration order: up, right, down, left.
// Carving and path extraction both rely on this order for reproducibility.
var Directions = []Direction{North, East, South, West}

var deltas = map[Direction]CellPosition{
	North: {Row: -1, Col: 0},
	East:  {Row: 0, Col: 1},
	South: {Row: 1, Col: 0},
	West:  {Row: 0, Col: -1},
}

// Delta returns the row/column offset of the direction.
func (d Direction) Delta() (CellPosition, error) {
	delta, ok := deltas[d]
	if !ok {
		return CellPosition{}, fmt.Errorf("%w: unknown direction %q", ErrInvalidMove, d)
	}
	return delta, nil
}

// Generator produces finished levels.
type Generator struct {
	rng       Rand
	profile   Profile
	reachable func(*Grid) bool
}

// NewGenerator returns a generator drawing from rng and decorating with p.
func NewGenerator(rng Rand, p Profile) (*Generator, error) {
	if rng == nil {
		return nil, errors.New("nil random source")
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &Generator{rng: rng, profile: p, reachable: IsReachable}, nil
}

// Level generates one finished level of the given dimensions.
func (g *Generator) Level(rows, cols int) (*Grid, error) {
	if err := validateDimensions(rows, cols); err != nil {
		return nil, err
	}

	for {
		cells := NewWallGrid(rows, cols)
		Carve(cells, g.rng)
		grid := Rasterize(cells)

		// Unreachable cannot happen with the current carver; start over if it ever does.
		if !g.reachable(grid) {
			continue
		}

		path := SolutionPath(grid)
		Decorate(grid, path, g.rng, g.profile)

		grid.cells[0][0] = Passage
		grid.cells[rows-1][cols-1] = Passage
		return grid, nil
	}
}

// Levels generates count independent levels.
func (g *Generator) Levels(count, rows, cols int) ([]*Grid, error) {
	if count <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLevelCount, count)
	}
	if err := validateDimensions(rows, cols); err != nil {
		return nil, err
	}

	levels := make([]*Grid, 0, count)
	for i := 0; i < count; i++ {
		level, err := g.Level(rows, cols)
		if err != nil {
			return nil, err
		}
		levels = append(levels, level)
	}
	return levels, nil
}

// GenerateLevels generates count levels with the default decoration profile.
func GenerateLevels(count, rows, cols int, rng Rand) ([]*Grid, error) {
	g, err := NewGenerator(rng, DefaultProfile())
	if err != nil {
		return nil, err
	}
	return g.Levels(count, rows, cols)
}

func validateDimensions(rows, cols int) error {
	if min(rows, cols) <= 0 || max(rows, cols) <= 1 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, rows, cols)
	}
	return nil
}
