package service

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/beka-birhanu/vinom-levels/game/maze"
	"github.com/beka-birhanu/vinom-levels/service/i"
	"golang.org/x/sync/errgroup"
)

// maxParallelLevels bounds how many levels are generated at once.
const maxParallelLevels = 8

// LevelService generates decorated level sequences.
type LevelService struct {
	profile maze.Profile
	logger  i.Logger
}

// LevelServiceConfig holds the dependencies of a LevelService.
type LevelServiceConfig struct {
	Profile maze.Profile
	Logger  i.Logger
}

// NewLevelService validates the decoration profile and returns a LevelService.
func NewLevelService(c LevelServiceConfig) (*LevelService, error) {
	if err := c.Profile.Validate(); err != nil {
		return nil, err
	}
	return &LevelService{profile: c.Profile, logger: c.Logger}, nil
}

// Generate builds count levels in parallel. Level k uses a stream seeded with
// seed+k so the result does not depend on scheduling.
func (ls *LevelService) Generate(ctx context.Context, count, rows, cols int, seed int64) ([]*maze.Grid, error) {
	if count <= 0 {
		err := fmt.Errorf("%w: %d", maze.ErrInvalidLevelCount, count)
		ls.logger.Error(fmt.Sprintf("generating levels: %s", err))
		return nil, err
	}

	levels := make([]*maze.Grid, count)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelLevels)
	for k := 0; k < count; k++ {
		k := k
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			gen, err := maze.NewGenerator(rand.New(rand.NewSource(seed+int64(k))), ls.profile)
			if err != nil {
				return err
			}
			level, err := gen.Level(rows, cols)
			if err != nil {
				return fmt.Errorf("level %d: %w", k, err)
			}
			levels[k] = level
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		ls.logger.Error(fmt.Sprintf("generating %d levels of %dx%d: %s", count, rows, cols, err))
		return nil, err
	}

	ls.logger.Info(fmt.Sprintf("generated %d levels of %dx%d from seed %d", count, rows, cols, seed))
	return levels, nil
}
