package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "test-token")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 3306, cfg.Database.Port)
	assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	assert.Equal(t, "test-token", cfg.Telegram.Token)
	assert.Equal(t, int64(0), cfg.Telegram.AdminChatID)
	assert.Equal(t, "fonts/Amiri-Regular.ttf", cfg.Render.FontPath)
	assert.Equal(t, "temp", cfg.Render.TempDir)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_MissingToken(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "")

	_, err := Load()

	assert.Error(t, err)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "test-token")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("TELEGRAM_ADMIN_CHAT_ID", "123456")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, int64(123456), cfg.Telegram.AdminChatID)
	assert.Equal(t, "debug", cfg.Log.Level)
}
