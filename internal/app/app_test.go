package app

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"promptpilot/backend/internal/config"
)

func TestBuildRepository(t *testing.T) {
	t.Run("SQLite backend", func(t *testing.T) {
		cfg := &config.Config{
			StorageBackend: "sqlite",
			DatabasePath:   filepath.Join(t.TempDir(), "app-test.db"),
		}

		repo, cleanup, err := buildRepository(cfg)
		require.NoError(t, err)
		t.Cleanup(cleanup)

		assert.NotNil(t, repo)
	})

	t.Run("Redis backend", func(t *testing.T) {
		cfg := &config.Config{
			StorageBackend: "redis",
			RedisAddr:      "localhost:6379",
		}

		// The client connects lazily, so construction succeeds without a
		// running server.
		repo, cleanup, err := buildRepository(cfg)
		require.NoError(t, err)
		t.Cleanup(cleanup)

		assert.NotNil(t, repo)
	})

	t.Run("Unknown backend is rejected", func(t *testing.T) {
		cfg := &config.Config{StorageBackend: "mongodb"}

		_, _, err := buildRepository(cfg)

		assert.Error(t, err)
	})
}

func TestSetupLogger(t *testing.T) {
	// Accepts any casing and falls back to INFO for unknown levels
	// without panicking.
	for _, level := range []string{"DEBUG", "info", "Warn", "ERROR", "bogus", ""} {
		setupLogger(level)
	}
}
