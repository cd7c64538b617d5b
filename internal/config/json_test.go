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
	dir := t.TempDir()
	path := writeTempJSON(t, dir, "studyhub.json", map[string]any{
		"store_driver":         "postgres",
		"store_dsn":            "postgres://localhost/studyhub",
		"request_timeout":      "10s",
		"cors_allowed_origins": []string{"http://localhost:5173"},
	})

	t.Run("loads from -config", func(t *testing.T) {
		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg, []string{"-config", path})

		assert.Equal(t, DriverPostgres, cfg.StoreDriver)
		assert.Equal(t, "postgres://localhost/studyhub", cfg.StoreDSN)
		assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
		assert.Equal(t, []string{"http://localhost:5173"}, cfg.CORSAllowedOrigins)
		assert.Equal(t, "deepseek-chat", cfg.AIModel, "absent keys keep earlier values")
	})

	t.Run("flags win over JSON", func(t *testing.T) {
		cfg := load([]string{"-c", path, "-d", "override.db"})

		assert.Equal(t, DriverPostgres, cfg.StoreDriver)
		assert.Equal(t, "override.db", cfg.StoreDSN)
	})

	t.Run("no config flag leaves values alone", func(t *testing.T) {
		cfg := &Config{StoreDSN: "defaults.db", RequestTimeout: 42 * time.Second}
		parseJson(cfg, nil)

		assert.Equal(t, "defaults.db", cfg.StoreDSN)
		assert.Equal(t, 42*time.Second, cfg.RequestTimeout)
	})

	t.Run("invalid JSON panics", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

		require.Panics(t, func() { parseJson(&Config{}, []string{"-c", bad}) })
	})

	t.Run("missing file panics", func(t *testing.T) {
		require.Panics(t, func() { parseJson(&Config{}, []string{"-c", filepath.Join(dir, "nope.json")}) })
	})
}
