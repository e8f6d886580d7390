package token

import (
	"crypto/rand"
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSecret(t *testing.T) string {
	t.Helper()
	bytes := make([]byte, 32)
	_, err := rand.Read(bytes)
	require.NoError(t, err)
	return base64.URLEncoding.EncodeToString(bytes)
}

func TestJwtService(t *testing.T) {
	secretKey := newSecret(t)
	svc := NewJwtService(secretKey, "vinom-levels")

	t.Run("round trip keeps player claims", func(t *testing.T) {
		token, err := svc.Generate(map[string]interface{}{
			"playerID": "5b0c8d8e-8f2b-4a55-9d0e-0a1f6c1c2b3d",
			"username": "dot_eater",
		}, 5*time.Minute)
		require.NoError(t, err)
		require.NotEmpty(t, token)

		claims, err := svc.Decode(token)
		require.NoError(t, err)
		assert.Equal(t, "dot_eater", claims["username"])
		assert.Equal(t, "vinom-levels", claims["iss"])
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := svc.Decode("invalidTokenString")
		assert.Error(t, err)
	})

	t.Run("expired token", func(t *testing.T) {
		token, err := svc.Generate(map[string]interface{}{}, -time.Minute)
		require.NoError(t, err)

		_, err = svc.Decode(token)
		assert.Error(t, err)
	})

	t.Run("caller cannot override issuer", func(t *testing.T) {
		token, err := svc.Generate(map[string]interface{}{"iss": "someone-else"}, time.Minute)
		require.NoError(t, err)

		claims, err := svc.Decode(token)
		require.NoError(t, err)
		assert.Equal(t, "vinom-levels", claims["iss"])
	})

	t.Run("token from another issuer", func(t *testing.T) {
		other := NewJwtService(secretKey, "another-service")
		token, err := other.Generate(map[string]interface{}{}, time.Minute)
		require.NoError(t, err)

		_, err = svc.Decode(token)
		assert.ErrorIs(t, err, ErrWrongIssuer)
	})

	t.Run("token signed with another key", func(t *testing.T) {
		other := NewJwtService(newSecret(t), "vinom-levels")
		token, err := other.Generate(map[string]interface{}{}, time.Minute)
		require.NoError(t, err)

		_, err = svc.Decode(token)
		assert.Error(t, err)
	})
}
