package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rocketscienceinc/battleship-backend/internal/apperror"
	"github.com/rocketscienceinc/battleship-backend/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Reads the yaml file", func(t *testing.T) {
		// Given: a config with a custom grid and fleet
		path := writeConfig(t, `
log-level: debug
grid-size: 6
auto-deploy: true
random-seed: 99
fleet:
  - type: carrier
    length: 4
  - type: submarine
    length: 3
`)

		// When: loading it
		config, err := Load(path)

		// Then: every field is taken from the file
		require.NoError(t, err)
		assert.Equal(t, "debug", config.LogLevel)
		assert.Equal(t, entity.Rules{
			GridSize:   6,
			AutoDeploy: true,
			Fleet: []entity.ShipSpec{
				{Type: "carrier", Length: 4},
				{Type: "submarine", Length: 3},
			},
		}, config.Rules())
		assert.Equal(t, int64(99), config.RandomSeed)
	})

	t.Run("Applies defaults to an empty file", func(t *testing.T) {
		path := writeConfig(t, "{}\n")

		config, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, "info", config.LogLevel)
		assert.False(t, config.AutoDeploy)
		assert.Equal(t, entity.DefaultRules(), config.Rules())
	})

	t.Run("Falls back to the environment without a file", func(t *testing.T) {
		t.Setenv("GRID_SIZE", "7")
		t.Setenv("LOG_LEVEL", "warn")

		config, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		require.NoError(t, err)
		assert.Equal(t, 7, config.GridSize)
		assert.Equal(t, "warn", config.LogLevel)
		assert.Len(t, config.Fleet, 2)
	})

	t.Run("Rejects a fleet that does not fit the grid", func(t *testing.T) {
		path := writeConfig(t, `
grid-size: 3
fleet:
  - type: carrier
    length: 5
`)

		_, err := Load(path)

		require.ErrorIs(t, err, apperror.ErrInvalidFleet)
	})

	t.Run("Rejects an unknown log level", func(t *testing.T) {
		path := writeConfig(t, "log-level: loud\n")

		_, err := Load(path)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log level")
	})
}

func TestMustLoad(t *testing.T) {
	path := writeConfig(t, "grid-size: -1\n")

	assert.Panics(t, func() {
		MustLoad(path)
	})
}
