package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "CHAT_MODEL", "REPORT_MODEL", "COMPLETION_TIMEOUT", "REDIS_ADDR", "SMTP_HOST"} {
		t.Setenv(key, "")
	}

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, ":8000", cfg.Server.Addr())
	assert.Equal(t, DefaultChatModel, cfg.Gemini.ChatModel)
	assert.Equal(t, DefaultReportModel, cfg.Gemini.ReportModel)
	assert.Equal(t, 60*time.Second, cfg.Gemini.Timeout)
	assert.False(t, cfg.Redis.Enabled())
	assert.False(t, cfg.SMTP.Enabled())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("CHAT_MODEL", "gemini-test-flash")
	t.Setenv("COMPLETION_TIMEOUT", "5s")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("USER_TOKEN_LIMIT", "not-a-number")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "gemini-test-flash", cfg.Gemini.ChatModel)
	assert.Equal(t, 5*time.Second, cfg.Gemini.Timeout)
	assert.True(t, cfg.Redis.Enabled())
	assert.Equal(t, 50000, cfg.Redis.TokenLimit)
}

func TestLoad_EnvFile(t *testing.T) {
	// godotenv never overrides variables that already exist.
	for _, key := range []string{"SMTP_HOST", "SMTP_PORT"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("SMTP_HOST=smtp.example.com\nSMTP_PORT=2525\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.SMTP.Enabled())
	assert.Equal(t, "smtp.example.com", cfg.SMTP.Host)
	assert.Equal(t, 2525, cfg.SMTP.Port)
}
