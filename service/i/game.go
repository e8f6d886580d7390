package i

import (
	"context"

	"github.com/beka-birhanu/vinom-levels/game/maze"
	"github.com/beka-birhanu/vinom-levels/game/session"
	"github.com/google/uuid"
)

// LevelGenerator builds level sequences.
type LevelGenerator interface {
	// Generate returns count levels. Level k is drawn from its own stream
	// seeded with seed+k, so the same seed always yields the same levels.
	Generate(ctx context.Context, count, rows, cols int, seed int64) ([]*maze.Grid, error)
}

// ScoreEntry is one row of the leaderboard.
type ScoreEntry struct {
	PlayerID string
	Score    int
}

// Leaderboard keeps each player's best score.
type Leaderboard interface {
	// Submit records score for the player and reports whether it beat the stored best.
	Submit(ctx context.Context, playerID string, score int) (bool, error)
	// Top returns the n best entries, highest first.
	Top(ctx context.Context, n int64) ([]ScoreEntry, error)
}

// SessionManager runs the game sessions of signed-in players.
type SessionManager interface {
	Start(ctx context.Context, playerID uuid.UUID, seed int64) (session.State, error)
	State(playerID, sessionID uuid.UUID) (session.State, error)
	Level(playerID, sessionID uuid.UUID, index int) (*maze.Grid, error)
	Move(ctx context.Context, playerID, sessionID uuid.UUID, dir maze.Direction) (session.Event, session.State, error)
	Tick(ctx context.Context, playerID, sessionID uuid.UUID) (session.Event, session.State, error)
	Undo(playerID, sessionID uuid.UUID) (session.State, error)
	Save(ctx context.Context, playerID, sessionID uuid.UUID) error
	Load(ctx context.Context, playerID, sessionID uuid.UUID) (session.State, error)
}
