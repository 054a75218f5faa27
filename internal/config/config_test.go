package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.Addr)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.Empty(t, cfg.ResultsDSN)
	assert.Zero(t, cfg.Seed)
	assert.Equal(t, 2*time.Hour, cfg.SessionIdle)
	assert.Equal(t, "metagame_session", cfg.CookieName)

	lvl, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, zapcore.InfoLevel, lvl)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("METAGAME_ADDR", "127.0.0.1:9000")
	t.Setenv("METAGAME_LOG_LEVEL", "debug")
	t.Setenv("METAGAME_SEED", "1234")
	t.Setenv("METAGAME_SESSION_IDLE", "30m")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.Addr)
	assert.Equal(t, uint64(1234), cfg.Seed)
	assert.Equal(t, 30*time.Minute, cfg.SessionIdle)

	lvl, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, zapcore.DebugLevel, lvl)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Run("level", func(t *testing.T) {
		t.Setenv("METAGAME_LOG_LEVEL", "loud")
		_, err := Load()
		assert.Error(t, err)
	})
	t.Run("format", func(t *testing.T) {
		t.Setenv("METAGAME_LOG_FORMAT", "xml")
		_, err := Load()
		assert.Error(t, err)
	})
	t.Run("idle", func(t *testing.T) {
		t.Setenv("METAGAME_SESSION_IDLE", "0s")
		_, err := Load()
		assert.Error(t, err)
	})
	t.Run("seed", func(t *testing.T) {
		t.Setenv("METAGAME_SEED", "minus one")
		_, err := Load()
		assert.Error(t, err)
	})
}

func TestHasStaticDir(t *testing.T) {
	cfg := Config{StaticDir: t.TempDir()}
	assert.True(t, cfg.HasStaticDir())

	cfg.StaticDir = cfg.StaticDir + "/missing"
	assert.False(t, cfg.HasStaticDir())
}
