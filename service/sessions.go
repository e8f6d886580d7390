package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/beka-birhanu/vinom-levels/game/maze"
	"github.com/beka-birhanu/vinom-levels/game/session"
	"github.com/beka-birhanu/vinom-levels/service/i"
	"github.com/google/uuid"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrNotSessionOwner = errors.New("session belongs to another player")
)

// activeSession is a session being played. recorded is shared by every
// reload of the same session so a finished game is scored once.
type activeSession struct {
	owner    uuid.UUID
	game     *session.GameSession
	recorded *sync.Once
}

// SessionManager keeps the sessions being played in memory and persists them on request.
type SessionManager struct {
	levels     i.LevelGenerator
	repo       i.SessionRepo
	players    i.PlayerRepo
	board      i.Leaderboard
	logger     i.Logger
	levelCount int
	rows       int
	cols       int
	sessions   map[uuid.UUID]*activeSession
	sync.RWMutex
}

// SessionManagerConfig holds the dependencies and level shape of a SessionManager.
type SessionManagerConfig struct {
	Levels      i.LevelGenerator
	Repo        i.SessionRepo
	Players     i.PlayerRepo
	Leaderboard i.Leaderboard
	Logger      i.Logger
	LevelCount  int
	Rows        int
	Cols        int
}

// NewSessionManager returns a SessionManager generating LevelCount levels of Rows x Cols per session.
func NewSessionManager(c *SessionManagerConfig) (*SessionManager, error) {
	if c.LevelCount <= 0 {
		return nil, maze.ErrInvalidLevelCount
	}
	if c.Rows <= 0 || c.Cols <= 0 || (c.Rows <= 1 && c.Cols <= 1) {
		return nil, maze.ErrInvalidDimensions
	}
	return &SessionManager{
		levels:     c.Levels,
		repo:       c.Repo,
		players:    c.Players,
		board:      c.Leaderboard,
		logger:     c.Logger,
		levelCount: c.LevelCount,
		rows:       c.Rows,
		cols:       c.Cols,
		sessions:   make(map[uuid.UUID]*activeSession),
	}, nil
}

// Start generates a fresh level sequence from seed and opens a session for the player.
func (sm *SessionManager) Start(ctx context.Context, playerID uuid.UUID, seed int64) (session.State, error) {
	levels, err := sm.levels.Generate(ctx, sm.levelCount, sm.rows, sm.cols, seed)
	if err != nil {
		return session.State{}, fmt.Errorf("generating levels: %w", err)
	}

	game, err := session.New(sm.newSessionID(), levels)
	if err != nil {
		return session.State{}, err
	}

	sm.Lock()
	sm.sessions[game.ID()] = &activeSession{owner: playerID, game: game, recorded: &sync.Once{}}
	sm.Unlock()

	sm.logger.Info(fmt.Sprintf("player %s started session %s", playerID, game.ID()))
	return game.Snapshot(), nil
}

func (sm *SessionManager) State(playerID, sessionID uuid.UUID) (session.State, error) {
	as, err := sm.lookup(playerID, sessionID)
	if err != nil {
		return session.State{}, err
	}
	return as.game.Snapshot(), nil
}

func (sm *SessionManager) Level(playerID, sessionID uuid.UUID, index int) (*maze.Grid, error) {
	as, err := sm.lookup(playerID, sessionID)
	if err != nil {
		return nil, err
	}
	return as.game.Level(index)
}

func (sm *SessionManager) Move(ctx context.Context, playerID, sessionID uuid.UUID, dir maze.Direction) (session.Event, session.State, error) {
	as, err := sm.lookup(playerID, sessionID)
	if err != nil {
		return "", session.State{}, err
	}

	event, err := as.game.Move(dir)
	if err != nil {
		return "", session.State{}, err
	}
	sm.recordIfFinished(ctx, as)
	return event, as.game.Snapshot(), nil
}

func (sm *SessionManager) Tick(ctx context.Context, playerID, sessionID uuid.UUID) (session.Event, session.State, error) {
	as, err := sm.lookup(playerID, sessionID)
	if err != nil {
		return "", session.State{}, err
	}

	event, err := as.game.Tick()
	if err != nil {
		return "", session.State{}, err
	}
	sm.recordIfFinished(ctx, as)
	return event, as.game.Snapshot(), nil
}

func (sm *SessionManager) Undo(playerID, sessionID uuid.UUID) (session.State, error) {
	as, err := sm.lookup(playerID, sessionID)
	if err != nil {
		return session.State{}, err
	}
	if err := as.game.Undo(); err != nil {
		return session.State{}, err
	}
	return as.game.Snapshot(), nil
}

// Save stores a snapshot of the session so it can be loaded later.
func (sm *SessionManager) Save(ctx context.Context, playerID, sessionID uuid.UUID) error {
	as, err := sm.lookup(playerID, sessionID)
	if err != nil {
		return err
	}

	saved := &i.SavedGame{
		PlayerID: playerID,
		State:    as.game.Snapshot(),
		SavedAt:  time.Now().UTC(),
	}
	if err := sm.repo.Save(ctx, saved); err != nil {
		sm.logger.Error(fmt.Sprintf("saving session %s: %s", sessionID, err))
		return err
	}

	sm.logger.Info(fmt.Sprintf("player %s saved session %s", playerID, sessionID))
	return nil
}

// Load replaces the in-memory session with its last saved snapshot.
func (sm *SessionManager) Load(ctx context.Context, playerID, sessionID uuid.UUID) (session.State, error) {
	saved, err := sm.repo.ByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, i.ErrNotFound) {
			return session.State{}, ErrSessionNotFound
		}
		return session.State{}, err
	}
	if saved.PlayerID != playerID {
		return session.State{}, ErrNotSessionOwner
	}

	game, err := session.Restore(saved.State)
	if err != nil {
		return session.State{}, fmt.Errorf("restoring session %s: %w", sessionID, err)
	}

	sm.Lock()
	recorded := &sync.Once{}
	if prev, ok := sm.sessions[sessionID]; ok {
		recorded = prev.recorded
	}
	sm.sessions[sessionID] = &activeSession{owner: playerID, game: game, recorded: recorded}
	sm.Unlock()

	sm.logger.Info(fmt.Sprintf("player %s loaded session %s saved at %s", playerID, sessionID, saved.SavedAt.Format(time.RFC3339)))
	return game.Snapshot(), nil
}

func (sm *SessionManager) lookup(playerID, sessionID uuid.UUID) (*activeSession, error) {
	sm.RLock()
	defer sm.RUnlock()

	as, ok := sm.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if as.owner != playerID {
		return nil, ErrNotSessionOwner
	}
	return as, nil
}

func (sm *SessionManager) newSessionID() uuid.UUID {
	sm.RLock()
	defer sm.RUnlock()

	id := uuid.New()
	for {
		if _, ok := sm.sessions[id]; !ok {
			return id
		}
		id = uuid.New()
	}
}

// recordIfFinished submits the final score once the session is won or lost.
// Failures are logged; the game result itself stands.
func (sm *SessionManager) recordIfFinished(ctx context.Context, as *activeSession) {
	status := as.game.Status()
	if status == session.StatusPlaying {
		return
	}

	as.recorded.Do(func() {
		score := as.game.Score()
		won := status == session.StatusWon

		best, err := sm.board.Submit(ctx, as.owner.String(), score)
		if err != nil {
			sm.logger.Error(fmt.Sprintf("submitting score of session %s: %s", as.game.ID(), err))
		} else if best {
			sm.logger.Info(fmt.Sprintf("player %s set a new best score %d", as.owner, score))
		}

		player, err := sm.players.ByID(as.owner)
		if err != nil {
			sm.logger.Warning(fmt.Sprintf("recording game for player %s: %s", as.owner, err))
			return
		}
		player.RecordGame(score, won)
		if err := sm.players.Save(player); err != nil {
			sm.logger.Error(fmt.Sprintf("saving player %s: %s", as.owner, err))
		}
	})
}
