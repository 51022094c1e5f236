package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if name == "" {
		name = "cfg.json"
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson_SourcesAndPrecedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	dir := t.TempDir()
	pathFlag := writeTempJSON(t, dir, "flag.json", map[string]any{
		"amizone_addr":    "amizone.example:443",
		"amizone_tls":     true,
		"database_dsn":    "postgres://bot@db/amibot",
		"codec_strategy":  "aesgcm",
		"key_file":        "/etc/amibot/key",
		"log_level":       "debug",
		"command_timeout": "45s",
	})

	t.Run("loads from json", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", pathFlag}

		cfg := &Config{}
		parseJson(cfg)

		assert.Equal(t, "amizone.example:443", cfg.AmizoneAddr)
		assert.True(t, cfg.AmizoneTLS)
		assert.Equal(t, "postgres://bot@db/amibot", cfg.DatabaseDSN)
		assert.Equal(t, "aesgcm", cfg.CodecStrategy)
		assert.Equal(t, "/etc/amibot/key", cfg.KeyFile)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, 45*time.Second, cfg.CommandTimeout)
	})

	t.Run("absent fields keep current values", func(t *testing.T) {
		partial := writeTempJSON(t, dir, "partial.json", map[string]any{
			"database_dsn": "postgres://other@db/amibot",
		})
		os.Args = []string{"testbin", "-config", partial}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg)

		assert.Equal(t, "postgres://other@db/amibot", cfg.DatabaseDSN)
		assert.Equal(t, "localhost:50051", cfg.AmizoneAddr)
		assert.Equal(t, 30*time.Second, cfg.CommandTimeout)
	})

	t.Run("no config flag means no changes", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{AmizoneAddr: "defaults:1234", DatabaseDSN: "postgres://d"}
		parseJson(cfg)

		assert.Equal(t, "defaults:1234", cfg.AmizoneAddr)
		assert.Equal(t, "postgres://d", cfg.DatabaseDSN)
	})

	t.Run("invalid JSON panics", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

		os.Args = []string{"testbin", "-config", bad}

		cfg := &Config{}
		require.Panics(t, func() { parseJson(cfg) })
	})

	t.Run("missing file panics", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", filepath.Join(dir, "nope.json")}

		cfg := &Config{}
		require.Panics(t, func() { parseJson(cfg) })
	})
}
