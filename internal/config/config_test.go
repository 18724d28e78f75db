package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", "0.0.0.0:3300")
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://localhost/keys")
	t.Setenv("APP_TOKEN_SIGN_KEY", "secret")
	t.Setenv("APP_KEY_TTL", "720h")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "0.0.0.0:3300", cfg.Server.HTTPAddress)
	assert.Equal(t, "postgres://localhost/keys", cfg.Storage.DB.DSN)
	assert.Equal(t, "secret", cfg.App.TokenSignKey)
	assert.Equal(t, 720*time.Hour, cfg.App.KeyTTL)
}

func TestParseFlags(t *testing.T) {
	cfg := parseFlags([]string{
		"-a", "localhost:9000",
		"-d", "postgres://localhost/keys",
		"-token-sign-key", "secret",
		"-key-ttl", "24h",
		"-c", "/tmp/cfg.json",
	})

	assert.Equal(t, "localhost:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, "postgres://localhost/keys", cfg.Storage.DB.DSN)
	assert.Equal(t, "secret", cfg.App.TokenSignKey)
	assert.Equal(t, 24*time.Hour, cfg.App.KeyTTL)
	assert.Equal(t, "/tmp/cfg.json", cfg.JSONFilePath)
}

func TestNetAddressSet(t *testing.T) {
	var addr NetAddress
	require.NoError(t, addr.Set("example.com:8080"))
	assert.Equal(t, "example.com", addr.Host)
	assert.Equal(t, 8080, addr.Port)
	assert.Equal(t, "example.com:8080", addr.String())

	assert.ErrorIs(t, addr.Set("no-port"), ErrInvalidNetAddress)
	assert.ErrorIs(t, addr.Set("host:notanumber"), ErrInvalidNetAddress)
}

func TestNetAddressString_Empty(t *testing.T) {
	var addr NetAddress
	assert.Equal(t, "", addr.String())
}

func TestParseJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{
		"app": {"token_sign_key": "secret", "token_duration": "30m", "key_ttl": "720h"},
		"storage": {"db": {"dsn": "postgres://localhost/keys"}},
		"server": {"address": "localhost:3300", "request_timeout": "15s"}
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "secret", cfg.App.TokenSignKey)
	assert.Equal(t, 30*time.Minute, cfg.App.TokenDuration)
	assert.Equal(t, 720*time.Hour, cfg.App.KeyTTL)
	assert.Equal(t, "postgres://localhost/keys", cfg.Storage.DB.DSN)
	assert.Equal(t, "localhost:3300", cfg.Server.HTTPAddress)
	assert.Equal(t, 15*time.Second, cfg.Server.RequestTimeout)
}

func TestParseJSON_BadDuration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"app": {"key_ttl": "soon"}}`), 0o600))

	_, err := parseJSON(path)
	require.Error(t, err)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

func TestValidate_Defaults(t *testing.T) {
	cfg := &StructuredConfig{}
	cfg.Storage.DB.DSN = "postgres://localhost/keys"
	cfg.App.TokenSignKey = "secret"

	require.NoError(t, cfg.validate())

	assert.Equal(t, defaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, defaultKeyTTL, cfg.App.KeyTTL)
	assert.Equal(t, defaultTokenIssuer, cfg.App.TokenIssuer)
	assert.Equal(t, defaultTokenDuration, cfg.App.TokenDuration)
}

func TestValidate_Required(t *testing.T) {
	cfg := &StructuredConfig{}
	cfg.App.TokenSignKey = "secret"
	assert.ErrorIs(t, cfg.validate(), ErrNoDatabaseDSN)

	cfg = &StructuredConfig{}
	cfg.Storage.DB.DSN = "postgres://localhost/keys"
	assert.ErrorIs(t, cfg.validate(), ErrNoTokenSignKey)
}

func TestBuilder_MergePriority(t *testing.T) {
	b := newConfigBuilder()

	first := &StructuredConfig{}
	first.Server.HTTPAddress = "from-first:1"
	first.Storage.DB.DSN = "postgres://localhost/keys"
	first.App.TokenSignKey = "secret"

	second := &StructuredConfig{}
	second.Server.HTTPAddress = "from-second:2"
	second.App.TokenIssuer = "issuer-from-second"

	b.configs = append(b.configs, first, second)

	cfg, err := b.build()
	require.NoError(t, err)

	// earlier sources win; later ones only fill gaps
	assert.Equal(t, "from-first:1", cfg.Server.HTTPAddress)
	assert.Equal(t, "issuer-from-second", cfg.App.TokenIssuer)
}
