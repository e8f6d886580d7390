package session

import (
	"fmt"

	"github.com/beka-birhanu/vinom-levels/game/maze"
	"github.com/google/uuid"
)

// State is a detached copy of a session, used for saving and for responses.
type State struct {
	ID       uuid.UUID
	Levels   []*maze.Grid
	Level    int
	Position maze.CellPosition
	Lives    int
	TimeLeft int
	Score    int
	Status   Status
}

// Snapshot copies the session, levels included.
func (s *GameSession) Snapshot() State {
	s.RLock()
	defer s.RUnlock()

	levels := make([]*maze.Grid, len(s.levels))
	for i, l := range s.levels {
		levels[i] = l.Clone()
	}

	return State{
		ID:       s.id,
		Levels:   levels,
		Level:    s.level,
		Position: s.pos,
		Lives:    s.lives,
		TimeLeft: s.timeLeft,
		Score:    s.score,
		Status:   s.status,
	}
}

// Restore rebuilds a session from a snapshot. Move history is not part of a
// snapshot, so a restored session cannot undo past its saved position.
func Restore(st State) (*GameSession, error) {
	levels := make([]*maze.Grid, len(st.Levels))
	for i, l := range st.Levels {
		if l != nil {
			levels[i] = l.Clone()
		}
	}
	s, err := New(st.ID, levels)
	if err != nil {
		return nil, err
	}

	if st.Level < 0 || st.Level >= len(st.Levels) {
		return nil, fmt.Errorf("%w: level index %d", ErrInvalidState, st.Level)
	}
	grid := st.Levels[st.Level]
	if !grid.InBound(st.Position.Row, st.Position.Col) || !grid.KindAt(st.Position.Row, st.Position.Col).Passable() {
		return nil, fmt.Errorf("%w: position %v", ErrInvalidState, st.Position)
	}
	switch st.Status {
	case StatusPlaying, StatusWon, StatusLost:
	default:
		return nil, fmt.Errorf("%w: status %q", ErrInvalidState, st.Status)
	}
	if st.Lives < 0 || st.Score < 0 {
		return nil, fmt.Errorf("%w: negative counters", ErrInvalidState)
	}

	s.level = st.Level
	s.pos = st.Position
	s.lives = st.Lives
	s.timeLeft = st.TimeLeft
	s.score = st.Score
	s.status = st.Status
	return s, nil
}
