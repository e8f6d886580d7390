package i

import (
	"time"

	"github.com/beka-birhanu/vinom-levels/identity"
)

// Authenticator registers players and signs them in.
type Authenticator interface {
	Register(username, password string) error
	// SignIn returns the player and a bearer token for the API.
	SignIn(username, password string) (*identity.Player, string, error)
}

// Tokenizer defines methods for generating and decoding tokens.
type Tokenizer interface {
	// Generate creates a token with the given claims and expiration duration.
	Generate(claims map[string]interface{}, expTime time.Duration) (string, error)

	// Decode validates and parses a token, returning its claims.
	Decode(token string) (map[string]interface{}, error)
}
