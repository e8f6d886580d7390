package leaderboard

import (
	"context"
	"errors"
	"fmt"

	"github.com/beka-birhanu/vinom-levels/service/i"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

// RedisLeaderboard keeps each player's best score in a Redis sorted set.
type RedisLeaderboard struct {
	client *redis.Client
	locker *redsync.Redsync
	key    string
}

// NewRedisLeaderboard initializes a leaderboard stored under key.
func NewRedisLeaderboard(client *redis.Client, key string) (i.Leaderboard, error) {
	if key == "" {
		return nil, errors.New("leaderboard key is empty")
	}
	board := &RedisLeaderboard{
		client: client,
		key:    key,
	}
	pool := goredis.NewPool(client)
	board.locker = redsync.New(pool)
	return board, nil
}

// Submit stores score for the player when it beats the stored best.
func (rl *RedisLeaderboard) Submit(ctx context.Context, playerID string, score int) (bool, error) {
	mutex := rl.locker.NewMutex(rl.key + ":" + playerID + ":lock")
	if err := mutex.LockContext(ctx); err != nil {
		return false, fmt.Errorf("locking score of %s: %w", playerID, err)
	}
	defer func() {
		_, _ = mutex.UnlockContext(ctx)
	}()

	best, err := rl.client.ZScore(ctx, rl.key, playerID).Result()
	switch {
	case errors.Is(err, redis.Nil):
	case err != nil:
		return false, err
	case float64(score) <= best:
		return false, nil
	}

	if err := rl.client.ZAdd(ctx, rl.key, redis.Z{Score: float64(score), Member: playerID}).Err(); err != nil {
		return false, err
	}
	return true, nil
}

// Top returns up to n entries with the highest scores.
func (rl *RedisLeaderboard) Top(ctx context.Context, n int64) ([]i.ScoreEntry, error) {
	if n <= 0 {
		return []i.ScoreEntry{}, nil
	}
	zs, err := rl.client.ZRevRangeWithScores(ctx, rl.key, 0, n-1).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]i.ScoreEntry, 0, len(zs))
	for _, z := range zs {
		member, ok := z.Member.(string)
		if !ok {
			continue
		}
		entries = append(entries, i.ScoreEntry{PlayerID: member, Score: int(z.Score)})
	}
	return entries, nil
}
