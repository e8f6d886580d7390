package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/beka-birhanu/vinom-levels/game/maze"
	"github.com/beka-birhanu/vinom-levels/identity"
	"github.com/beka-birhanu/vinom-levels/service/i"
	"github.com/google/uuid"
)

type fakeLogger struct {
	sync.Mutex
	infos, warnings, errors []string
}

func (l *fakeLogger) Info(msg string)    { l.Lock(); l.infos = append(l.infos, msg); l.Unlock() }
func (l *fakeLogger) Warning(msg string) { l.Lock(); l.warnings = append(l.warnings, msg); l.Unlock() }
func (l *fakeLogger) Error(msg string)   { l.Lock(); l.errors = append(l.errors, msg); l.Unlock() }

type fakePlayerRepo struct {
	players map[uuid.UUID]*identity.Player
	saves   int
	err     error
}

func newFakePlayerRepo() *fakePlayerRepo {
	return &fakePlayerRepo{players: make(map[uuid.UUID]*identity.Player)}
}

func (r *fakePlayerRepo) Save(p *identity.Player) error {
	cp := *p
	r.players[p.ID] = &cp
	r.saves++
	return nil
}

func (r *fakePlayerRepo) ByID(id uuid.UUID) (*identity.Player, error) {
	p, ok := r.players[id]
	if !ok {
		return nil, i.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *fakePlayerRepo) ByUsername(username string) (*identity.Player, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, p := range r.players {
		if p.Username == username {
			cp := *p
			return &cp, nil
		}
	}
	return nil, i.ErrNotFound
}

type fakeSessionRepo struct {
	saved map[uuid.UUID]*i.SavedGame
	err   error
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{saved: make(map[uuid.UUID]*i.SavedGame)}
}

func (r *fakeSessionRepo) Save(_ context.Context, g *i.SavedGame) error {
	if r.err != nil {
		return r.err
	}
	r.saved[g.State.ID] = g
	return nil
}

func (r *fakeSessionRepo) ByID(_ context.Context, id uuid.UUID) (*i.SavedGame, error) {
	if r.err != nil {
		return nil, r.err
	}
	g, ok := r.saved[id]
	if !ok {
		return nil, i.ErrNotFound
	}
	return g, nil
}

type fakeLeaderboard struct {
	best        map[string]int
	submissions int
}

func newFakeLeaderboard() *fakeLeaderboard {
	return &fakeLeaderboard{best: make(map[string]int)}
}

func (b *fakeLeaderboard) Submit(_ context.Context, playerID string, score int) (bool, error) {
	b.submissions++
	if old, ok := b.best[playerID]; ok && old >= score {
		return false, nil
	}
	b.best[playerID] = score
	return true, nil
}

func (b *fakeLeaderboard) Top(context.Context, int64) ([]i.ScoreEntry, error) {
	return nil, errors.New("not used")
}

// corridorLevels builds count 1x3 levels: entry, a minidot, exit.
type corridorLevels struct{}

func (corridorLevels) Generate(_ context.Context, count, _, _ int, _ int64) ([]*maze.Grid, error) {
	levels := make([]*maze.Grid, count)
	for k := range levels {
		g, err := maze.GridFromKinds([][]maze.CellKind{{maze.Passage, maze.Minidot, maze.Passage}})
		if err != nil {
			return nil, err
		}
		levels[k] = g
	}
	return levels, nil
}

type fakeTokenizer struct {
	claims map[string]interface{}
}

func (t *fakeTokenizer) Generate(claims map[string]interface{}, _ time.Duration) (string, error) {
	t.claims = claims
	return "signed-token", nil
}

func (t *fakeTokenizer) Decode(string) (map[string]interface{}, error) {
	return t.claims, nil
}
