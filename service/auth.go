package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/beka-birhanu/vinom-levels/identity"
	"github.com/beka-birhanu/vinom-levels/service/i"
	"github.com/google/uuid"
)

const tokenLifetime = 24 * time.Hour

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameTaken      = errors.New("username already taken")
)

// Auth registers players and issues their API tokens.
type Auth struct {
	playerRepo i.PlayerRepo
	tokenizer  i.Tokenizer
}

// NewAuth returns an Auth service backed by the given repository and tokenizer.
func NewAuth(repo i.PlayerRepo, tokenizer i.Tokenizer) *Auth {
	return &Auth{playerRepo: repo, tokenizer: tokenizer}
}

func (a *Auth) Register(username, password string) error {
	if _, err := a.playerRepo.ByUsername(username); err == nil {
		return ErrUsernameTaken
	} else if !errors.Is(err, i.ErrNotFound) {
		return err
	}

	player, err := identity.NewPlayer(identity.PlayerConfig{
		ID:            uuid.New(),
		Username:      username,
		PlainPassword: password,
	})
	if err != nil {
		return err
	}

	return a.playerRepo.Save(player)
}

func (a *Auth) SignIn(username, password string) (*identity.Player, string, error) {
	player, err := a.playerRepo.ByUsername(username)
	if errors.Is(err, i.ErrNotFound) {
		return nil, "", ErrInvalidCredentials
	}
	if err != nil {
		return nil, "", fmt.Errorf("finding player %s: %w", username, err)
	}

	if !player.VerifyPassword(password) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := a.tokenizer.Generate(map[string]interface{}{
		"playerID": player.ID.String(),
		"username": player.Username,
	}, tokenLifetime)
	if err != nil {
		return nil, "", fmt.Errorf("signing token: %w", err)
	}

	return player, token, nil
}
