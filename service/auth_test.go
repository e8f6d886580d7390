package service

import (
	"errors"
	"testing"

	"github.com/beka-birhanu/vinom-levels/identity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const strongPassword = "q7#Vx!m2Lp@9zR"

func TestRegisterAndSignIn(t *testing.T) {
	repo := newFakePlayerRepo()
	tokens := &fakeTokenizer{}
	auth := NewAuth(repo, tokens)

	require.NoError(t, auth.Register("dot_eater", strongPassword))
	assert.ErrorIs(t, auth.Register("dot_eater", strongPassword), ErrUsernameTaken)

	player, token, err := auth.SignIn("dot_eater", strongPassword)
	require.NoError(t, err)
	assert.Equal(t, "signed-token", token)
	assert.Equal(t, "dot_eater", player.Username)
	assert.Equal(t, player.ID.String(), tokens.claims["playerID"])
	assert.Equal(t, "dot_eater", tokens.claims["username"])
}

func TestRegisterRejectsWeakPassword(t *testing.T) {
	auth := NewAuth(newFakePlayerRepo(), &fakeTokenizer{})
	assert.ErrorIs(t, auth.Register("dot_eater", "password"), identity.ErrWeakPassword)
}

func TestSignInFailures(t *testing.T) {
	auth := NewAuth(newFakePlayerRepo(), &fakeTokenizer{})
	require.NoError(t, auth.Register("dot_eater", strongPassword))

	tests := []struct {
		name     string
		username string
		password string
	}{
		{name: "unknown user", username: "ghost", password: strongPassword},
		{name: "wrong password", username: "dot_eater", password: "not-the-password"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := auth.SignIn(tt.username, tt.password)
			assert.ErrorIs(t, err, ErrInvalidCredentials)
		})
	}
}

func TestSignInReportsRepositoryFailure(t *testing.T) {
	repo := newFakePlayerRepo()
	auth := NewAuth(repo, &fakeTokenizer{})
	require.NoError(t, auth.Register("dot_eater", strongPassword))

	outage := errors.New("server selection timeout")
	repo.err = outage

	_, _, err := auth.SignIn("dot_eater", strongPassword)
	assert.ErrorIs(t, err, outage)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}
