package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/beka-birhanu/vinom-levels/game/maze"
	"github.com/beka-birhanu/vinom-levels/game/session"
	"github.com/beka-birhanu/vinom-levels/service/i"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// levelDoc stores a grid as its dimensions plus the raw kind codes.
type levelDoc struct {
	Rows  int      `bson:"rows"`
	Cols  int      `bson:"cols"`
	Cells [][]int8 `bson:"cells"`
}

// sessionDoc is the BSON layout of a saved game.
type sessionDoc struct {
	ID       uuid.UUID  `bson:"_id"`
	PlayerID uuid.UUID  `bson:"playerId"`
	Levels   []levelDoc `bson:"levels"`
	Level    int        `bson:"level"`
	Row      int        `bson:"row"`
	Col      int        `bson:"col"`
	Lives    int        `bson:"lives"`
	TimeLeft int        `bson:"timeLeft"`
	Score    int        `bson:"score"`
	Status   string     `bson:"status"`
	SavedAt  time.Time  `bson:"savedAt"`
}

// SessionRepo persists saved games in a MongoDB collection.
type SessionRepo struct {
	collection *mongo.Collection
	timeout    time.Duration
}

// NewSessionRepo creates a SessionRepo on the given database and collection.
func NewSessionRepo(client *mongo.Client, dbName, collectionName string) *SessionRepo {
	return &SessionRepo{
		collection: client.Database(dbName).Collection(collectionName),
		timeout:    2 * time.Second,
	}
}

// Save replaces the stored snapshot of the session, creating it if needed.
func (s *SessionRepo) Save(ctx context.Context, game *i.SavedGame) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	doc := toSessionDoc(game)
	_, err := s.collection.ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("saving session %s: %w", doc.ID, err)
	}
	return nil
}

// ByID loads the saved game with the given session ID.
func (s *SessionRepo) ByID(ctx context.Context, id uuid.UUID) (*i.SavedGame, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var doc sessionDoc
	if err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("session %s %w", id, i.ErrNotFound)
		}
		return nil, fmt.Errorf("loading session %s: %w", id, err)
	}
	return fromSessionDoc(&doc)
}

func toSessionDoc(game *i.SavedGame) *sessionDoc {
	st := game.State
	levels := make([]levelDoc, len(st.Levels))
	for n, grid := range st.Levels {
		kinds := grid.Kinds()
		cells := make([][]int8, len(kinds))
		for r, row := range kinds {
			cells[r] = make([]int8, len(row))
			for c, k := range row {
				cells[r][c] = int8(k)
			}
		}
		levels[n] = levelDoc{Rows: grid.Rows(), Cols: grid.Cols(), Cells: cells}
	}

	return &sessionDoc{
		ID:       st.ID,
		PlayerID: game.PlayerID,
		Levels:   levels,
		Level:    st.Level,
		Row:      st.Position.Row,
		Col:      st.Position.Col,
		Lives:    st.Lives,
		TimeLeft: st.TimeLeft,
		Score:    st.Score,
		Status:   string(st.Status),
		SavedAt:  game.SavedAt,
	}
}

func fromSessionDoc(doc *sessionDoc) (*i.SavedGame, error) {
	levels := make([]*maze.Grid, len(doc.Levels))
	for n, l := range doc.Levels {
		if len(l.Cells) != l.Rows {
			return nil, fmt.Errorf("session %s level %d: %d rows stored, want %d", doc.ID, n, len(l.Cells), l.Rows)
		}
		kinds := make([][]maze.CellKind, len(l.Cells))
		for r, row := range l.Cells {
			if len(row) != l.Cols {
				return nil, fmt.Errorf("session %s level %d: row %d has %d cells, want %d", doc.ID, n, r, len(row), l.Cols)
			}
			kinds[r] = make([]maze.CellKind, len(row))
			for c, code := range row {
				kinds[r][c] = maze.CellKind(code)
			}
		}
		grid, err := maze.GridFromKinds(kinds)
		if err != nil {
			return nil, fmt.Errorf("session %s level %d: %w", doc.ID, n, err)
		}
		levels[n] = grid
	}

	return &i.SavedGame{
		PlayerID: doc.PlayerID,
		SavedAt:  doc.SavedAt,
		State: session.State{
			ID:       doc.ID,
			Levels:   levels,
			Level:    doc.Level,
			Position: maze.CellPosition{Row: doc.Row, Col: doc.Col},
			Lives:    doc.Lives,
			TimeLeft: doc.TimeLeft,
			Score:    doc.Score,
			Status:   session.Status(doc.Status),
		},
	}, nil
}
