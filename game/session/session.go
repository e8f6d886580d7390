// Package session holds the state of one play-through of a level sequence.
//
// A GameSession replaces process-wide game globals: it owns the generated
// levels, the player position and the lives, time and score counters, and
// applies the movement and timer rules. It is safe for concurrent use.
package session

import (
	"errors"
	"fmt"
	"sync"

	"github.com/beka-birhanu/vinom-levels/game/maze"
	"github.com/google/uuid"
)

// Session-related errors.
var (
	ErrNoLevels      = errors.New("session needs at least one level")
	ErrGameEnded     = errors.New("game has ended")
	ErrNothingToUndo = errors.New("no move to undo")
	ErrInvalidState  = errors.New("invalid session state")
)

// Gameplay constants.
const (
	initialLives         = 2  // Lives at the start of a session.
	initialTime          = 15 // Seconds on the clock for the first level.
	levelTime            = 25 // Seconds on the clock after a level change or reset.
	collectibleTimeBonus = 5  // Seconds added by a collectible.
)

// Status is the lifecycle stage of a session.
type Status string

const (
	StatusPlaying Status = "playing"
	StatusWon     Status = "won"
	StatusLost    Status = "lost"
)

// Event describes what happened as the result of a move or a tick.
type Event string

const (
	EventMoved        Event = "moved"
	EventBlocked      Event = "blocked"
	EventMinidot      Event = "minidot"
	EventCollectible  Event = "collectible"
	EventHazard       Event = "hazard"
	EventLevelCleared Event = "level_cleared"
	EventGameWon      Event = "game_won"
	EventGameOver     Event = "game_over"
	EventTick         Event = "tick"
	EventTimeUp       Event = "time_up"
)

// GameSession is one player's run through a sequence of levels.
type GameSession struct {
	id       uuid.UUID
	levels   []*maze.Grid
	level    int
	pos      maze.CellPosition
	lives    int
	timeLeft int
	score    int
	history  []maze.CellPosition // Positions before each successful move on the current level.
	status   Status
	sync.RWMutex
}

// New starts a session at the entry of the first level.
func New(id uuid.UUID, levels []*maze.Grid) (*GameSession, error) {
	if len(levels) == 0 {
		return nil, ErrNoLevels
	}
	for i, l := range levels {
		if l == nil {
			return nil, fmt.Errorf("%w: level %d is nil", ErrInvalidState, i)
		}
	}

	return &GameSession{
		id:       id,
		levels:   levels,
		lives:    initialLives,
		timeLeft: initialTime,
		status:   StatusPlaying,
	}, nil
}

// ID returns the session identifier.
func (s *GameSession) ID() uuid.UUID {
	return s.id
}

// Status returns the current lifecycle stage.
func (s *GameSession) Status() Status {
	s.RLock()
	defer s.RUnlock()
	return s.status
}

// Score returns the number of minidots eaten so far.
func (s *GameSession) Score() int {
	s.RLock()
	defer s.RUnlock()
	return s.score
}

// LevelCount returns the number of levels in the session.
func (s *GameSession) LevelCount() int {
	return len(s.levels)
}

// Level returns a copy of the level at index i.
func (s *GameSession) Level(i int) (*maze.Grid, error) {
	s.RLock()
	defer s.RUnlock()
	if i < 0 || i >= len(s.levels) {
		return nil, fmt.Errorf("%w: level %d", maze.ErrOutOfBounds, i)
	}
	return s.levels[i].Clone(), nil
}

// Move moves the player one cell in direction dir and applies the effect of
// the cell entered.
func (s *GameSession) Move(dir maze.Direction) (Event, error) {
	s.Lock()
	defer s.Unlock()

	if s.status != StatusPlaying {
		return "", ErrGameEnded
	}

	delta, err := dir.Delta()
	if err != nil {
		return "", err
	}

	grid := s.levels[s.level]
	next := s.pos.Add(delta)
	kind := grid.KindAt(next.Row, next.Col)
	if !grid.InBound(next.Row, next.Col) || !kind.Passable() {
		return EventBlocked, nil
	}

	event := EventMoved
	switch kind {
	case maze.Hazard:
		s.lives--
		if s.lives <= 0 {
			s.status = StatusLost
			return EventGameOver, nil
		}
		s.resetPosition()
		return EventHazard, nil
	case maze.Collectible:
		s.lives++
		s.timeLeft += collectibleTimeBonus
		_ = grid.SetKind(next.Row, next.Col, maze.Passage)
		event = EventCollectible
	case maze.Minidot:
		s.score++
		_ = grid.SetKind(next.Row, next.Col, maze.Passage)
		event = EventMinidot
	}

	s.history = append(s.history, s.pos)
	s.pos = next

	if s.pos != grid.Exit() {
		return event, nil
	}
	if s.level == len(s.levels)-1 {
		s.status = StatusWon
		return EventGameWon, nil
	}
	s.level++
	s.timeLeft = levelTime
	s.resetPosition()
	return EventLevelCleared, nil
}

// Tick advances the level clock by one second. When the clock runs out the
// player loses a life and restarts the level.
func (s *GameSession) Tick() (Event, error) {
	s.Lock()
	defer s.Unlock()

	if s.status != StatusPlaying {
		return "", ErrGameEnded
	}

	s.timeLeft--
	if s.timeLeft > 0 {
		return EventTick, nil
	}

	s.lives--
	if s.lives <= 0 {
		s.status = StatusLost
		return EventGameOver, nil
	}
	s.timeLeft = levelTime
	s.resetPosition()
	return EventTimeUp, nil
}

// Undo moves the player back to where the last successful move started.
// Consumed pickups are not restored.
func (s *GameSession) Undo() error {
	s.Lock()
	defer s.Unlock()

	if s.status != StatusPlaying {
		return ErrGameEnded
	}
	if len(s.history) == 0 {
		return ErrNothingToUndo
	}
	last := len(s.history) - 1
	s.pos = s.history[last]
	s.history = s.history[:last]
	return nil
}

// resetPosition sends the player back to the entry of the current level.
func (s *GameSession) resetPosition() {
	s.pos = s.levels[s.level].Entry()
	s.history = s.history[:0]
}
