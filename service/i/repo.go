package i

import (
	"context"
	"errors"
	"time"

	"github.com/beka-birhanu/vinom-levels/game/session"
	"github.com/beka-birhanu/vinom-levels/identity"
	"github.com/google/uuid"
)

// ErrNotFound is returned by repositories when no record matches.
var ErrNotFound = errors.New("not found")

// PlayerRepo defines the interface for player persistence operations.
type PlayerRepo interface {
	// Save inserts or updates a player.
	Save(player *identity.Player) error

	// ByID retrieves a player by ID. Returns ErrNotFound when missing.
	ByID(id uuid.UUID) (*identity.Player, error)

	// ByUsername retrieves a player by username. Returns ErrNotFound when missing.
	ByUsername(username string) (*identity.Player, error)
}

// SavedGame is a session snapshot stored for a player.
type SavedGame struct {
	PlayerID uuid.UUID
	State    session.State
	SavedAt  time.Time
}

// SessionRepo stores session snapshots so a game can be continued later.
type SessionRepo interface {
	Save(ctx context.Context, game *SavedGame) error
	// ByID returns the saved game with the given session ID or ErrNotFound.
	ByID(ctx context.Context, id uuid.UUID) (*SavedGame, error)
}
