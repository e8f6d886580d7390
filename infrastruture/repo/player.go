package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/beka-birhanu/vinom-levels/identity"
	"github.com/beka-birhanu/vinom-levels/service/i"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrUsernameConflict = errors.New("username conflict")

// PlayerRepo persists players in a MongoDB collection.
type PlayerRepo struct {
	collection *mongo.Collection
}

// NewPlayerRepo creates a PlayerRepo on the given database and collection.
func NewPlayerRepo(client *mongo.Client, dbName, collectionName string) *PlayerRepo {
	return &PlayerRepo{
		collection: client.Database(dbName).Collection(collectionName),
	}
}

// EnsureIndexes creates the unique username index.
func (p *PlayerRepo) EnsureIndexes(ctx context.Context) error {
	_, err := p.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// Save upserts the player by ID.
func (p *PlayerRepo) Save(player *identity.Player) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	filter := bson.M{"_id": player.ID}
	update := bson.M{
		"$set": bson.M{
			"username":     player.Username,
			"passwordHash": player.PasswordHash,
			"bestScore":    player.BestScore,
			"gamesWon":     player.GamesWon,
			"updatedAt":    time.Now(),
		},
	}

	_, err := p.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrUsernameConflict
		}
		return fmt.Errorf("saving player: %w", err)
	}
	return nil
}

// ByID retrieves a player by ID.
func (p *PlayerRepo) ByID(id uuid.UUID) (*identity.Player, error) {
	return p.findOne(bson.M{"_id": id})
}

// ByUsername retrieves a player by username.
func (p *PlayerRepo) ByUsername(username string) (*identity.Player, error) {
	return p.findOne(bson.M{"username": username})
}

func (p *PlayerRepo) findOne(filter bson.M) (*identity.Player, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	var player identity.Player
	if err := p.collection.FindOne(ctx, filter).Decode(&player); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("player %w", i.ErrNotFound)
		}
		return nil, fmt.Errorf("finding player: %w", err)
	}
	return &player, nil
}
