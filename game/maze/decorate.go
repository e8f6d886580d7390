package maze

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

const (
	defaultRoll             = 100
	defaultCollectibleBelow = 5
	defaultHazardBelow      = 15
	defaultObstacleBelow    = 35

	// maxSweptOnlyCells is the largest cell count that skips off-path
	// decoration. Among valid shapes only 2x2 has off-path cells at this size.
	maxSweptOnlyCells = 4
)

// Profile holds the weighted buckets used to decorate off-path cells.
// A draw d in [0,Roll) becomes a Collectible when d < CollectibleBelow, a
// Hazard when d < HazardBelow, an Obstacle when d < ObstacleBelow and is left
// alone otherwise.
type Profile struct {
	Roll             int `toml:"roll" json:"roll"`
	CollectibleBelow int `toml:"collectible_below" json:"collectible_below"`
	HazardBelow      int `toml:"hazard_below" json:"hazard_below"`
	ObstacleBelow    int `toml:"obstacle_below" json:"obstacle_below"`
}

// DefaultProfile returns the 5% collectible, 10% hazard, 20% obstacle split.
func DefaultProfile() Profile {
	return Profile{
		Roll:             defaultRoll,
		CollectibleBelow: defaultCollectibleBelow,
		HazardBelow:      defaultHazardBelow,
		ObstacleBelow:    defaultObstacleBelow,
	}
}

// Validate checks that the buckets are ordered and fit inside the roll.
func (p Profile) Validate() error {
	if p.Roll <= 0 {
		return fmt.Errorf("invalid decoration profile: roll must be positive, got %d", p.Roll)
	}
	if p.CollectibleBelow < 0 || p.CollectibleBelow > p.HazardBelow || p.HazardBelow > p.ObstacleBelow || p.ObstacleBelow > p.Roll {
		return fmt.Errorf("invalid decoration profile: want 0 <= %d <= %d <= %d <= %d",
			p.CollectibleBelow, p.HazardBelow, p.ObstacleBelow, p.Roll)
	}
	return nil
}

// classify maps one draw to a decoration. Passage means no decoration.
func (p Profile) classify(draw int) CellKind {
	switch {
	case draw < p.CollectibleBelow:
		return Collectible
	case draw < p.HazardBelow:
		return Hazard
	case draw < p.ObstacleBelow:
		return Obstacle
	default:
		return Passage
	}
}

// Decorate classifies every Passage cell that is off the path and is neither
// entry nor exit, then turns every cell still marked Passage into a Minidot.
// The caller restores entry and exit to Passage afterwards.
//
// Grids of at most four cells are only swept: a 2x2 level keeps its single
// off-path cell as a Minidot.
func Decorate(g *Grid, path []CellPosition, rng Rand, p Profile) {
	onPath := mapset.New[CellPosition]()
	for _, pos := range path {
		onPath.Put(pos)
	}
	entry, exit := g.Entry(), g.Exit()

	if g.rows*g.cols > maxSweptOnlyCells {
		for r := range g.cells {
			for c := range g.cells[r] {
				pos := CellPosition{Row: r, Col: c}
				if g.cells[r][c] != Passage || onPath.Has(pos) || pos == entry || pos == exit {
					continue
				}
				if kind := p.classify(rng.Intn(p.Roll)); kind != Passage {
					g.cells[r][c] = kind
				}
			}
		}
	}

	for r := range g.cells {
		for c := range g.cells[r] {
			if g.cells[r][c] == Passage {
				g.cells[r][c] = Minidot
			}
		}
	}
}
