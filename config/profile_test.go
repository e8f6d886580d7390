package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/beka-birhanu/vinom-levels/game/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProfile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profile.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadLevelProfile(t *testing.T) {
	t.Run("empty path gives defaults", func(t *testing.T) {
		p, err := LoadLevelProfile("")
		require.NoError(t, err)
		assert.Equal(t, maze.DefaultProfile(), p)
	})

	t.Run("partial file keeps defaults", func(t *testing.T) {
		p, err := LoadLevelProfile(writeProfile(t, "[decoration]\nobstacle_below = 50\n"))
		require.NoError(t, err)
		assert.Equal(t, 100, p.Roll)
		assert.Equal(t, 5, p.CollectibleBelow)
		assert.Equal(t, 15, p.HazardBelow)
		assert.Equal(t, 50, p.ObstacleBelow)
	})

	t.Run("unordered buckets are rejected", func(t *testing.T) {
		_, err := LoadLevelProfile(writeProfile(t, "[decoration]\nhazard_below = 2\n"))
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadLevelProfile(filepath.Join(t.TempDir(), "nope.toml"))
		assert.Error(t, err)
	})
}
