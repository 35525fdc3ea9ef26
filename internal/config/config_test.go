package config

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ad-fanout/internal/config/configs"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, uint16(8080), cfg.HTTP.Port)
	assert.Equal(t, []string{"*"}, cfg.HTTP.AllowedOrigins)
	assert.Equal(t, 2*time.Minute, cfg.HTTP.DistributeTimeout)
	assert.False(t, cfg.Psql.Enabled)
	assert.Equal(t, "v19.0", cfg.Meta.APIVersion)
	assert.Equal(t, "https://googleads.googleapis.com", cfg.Google.BaseURL)
	assert.Equal(t, "202401", cfg.LinkedIn.APIVersion)
	assert.Equal(t, "v1.3", cfg.TikTok.APIVersion)
}

func TestLoadPrefixesAndDotEnv(t *testing.T) {
	file := filepath.Join(t.TempDir(), ".env")
	// godotenv.Load sets the process environment; clear what the file adds
	t.Cleanup(func() { _ = os.Unsetenv("GOOGLE_DEVELOPER_TOKEN") })
	require.NoError(t, os.WriteFile(file, []byte("GOOGLE_DEVELOPER_TOKEN=from-file\nTIKTOK_TIMEOUT=5s\n"), 0o600))

	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("HTTP_ALLOWED_ORIGINS", "https://app.example.com,https://admin.example.com")
	t.Setenv("PSQL_ENABLED", "true")
	t.Setenv("LOG_FORMAT", "JSON")
	// the environment wins over the file
	t.Setenv("TIKTOK_TIMEOUT", "7s")

	cfg, err := Load(file)
	require.NoError(t, err)
	assert.Equal(t, uint16(9090), cfg.HTTP.Port)
	assert.Equal(t, []string{"https://app.example.com", "https://admin.example.com"}, cfg.HTTP.AllowedOrigins)
	assert.True(t, cfg.Psql.Enabled)
	assert.Equal(t, "json", cfg.Log.SlogFormat())
	assert.Equal(t, "from-file", cfg.Google.DeveloperToken)
	assert.Equal(t, 7*time.Second, cfg.TikTok.Timeout)
}

func TestLoggerFormats(t *testing.T) {
	var buf bytes.Buffer
	configs.Logger{Level: "warn", Format: "JSON"}.New(&buf).Info("dropped")
	assert.Empty(t, buf.String())

	configs.Logger{Level: "debug", Format: "json"}.New(&buf).Debug("kept", "event", "probe")
	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "kept", rec["msg"])
	assert.Equal(t, "probe", rec["event"])

	buf.Reset()
	configs.Logger{Level: "nonsense", Format: "yaml"}.New(&buf).Info("plain")
	assert.Contains(t, buf.String(), "level=INFO")
	assert.Contains(t, buf.String(), "msg=plain")
}
