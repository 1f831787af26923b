package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJSON_AllFields(t *testing.T) {
	path := writeTempJSON(t, `{
		"app": {
			"token_sign_key": "json_secret",
			"token_issuer": "json_issuer",
			"token_duration": "24h",
			"code_ttl": "10m"
		},
		"storage": {"db": {"dsn": "postgres://json/db"}},
		"server": {"http_address": "127.0.0.1:9000", "request_timeout": "15s"},
		"smtp": {"host": "mail.example.com", "port": 587, "from": "verify@example.com"},
		"workers": {"code_cleanup_interval": "30m"}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "json_secret", cfg.App.TokenSignKey)
	assert.Equal(t, "json_issuer", cfg.App.TokenIssuer)
	assert.Equal(t, 24*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, 10*time.Minute, cfg.App.CodeTTL)
	assert.Equal(t, "postgres://json/db", cfg.Storage.DB.DSN)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, 15*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "mail.example.com", cfg.SMTP.Host)
	assert.Equal(t, 587, cfg.SMTP.Port)
	assert.Equal(t, 30*time.Minute, cfg.Workers.CodeCleanupInterval)
}

func TestParseJSON_DurationAsNumber(t *testing.T) {
	path := writeTempJSON(t, `{"app": {"token_duration": 3600000000000}}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)
	assert.Equal(t, time.Hour, cfg.App.TokenDuration)
}

func TestParseJSON_FileMissing(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

func TestParseJSON_MalformedJSON(t *testing.T) {
	path := writeTempJSON(t, `{"app": `)

	_, err := parseJSON(path)
	require.Error(t, err)
}
