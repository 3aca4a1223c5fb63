package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestRoundTrip(t *testing.T) {
	cfg := Default("Test Biz", "trading")
	cfg.Source.Kind = SourceHTTP
	cfg.Source.BaseURL = "https://api.example.com"
	cfg.Source.Token = "secret"

	path := filepath.Join(t.TempDir(), File)
	err := Save(path, cfg)
	require.NoError(t, err)

	got, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, cfg, got)
}

func TestDefaults(t *testing.T) {
	cfg := Default("My Company", "services")

	assert.Equal(t, "My Company", cfg.Workspace.Name)
	assert.Equal(t, "services", cfg.Workspace.BusinessType)
	assert.Equal(t, SourceFile, cfg.Source.Kind)
	assert.Equal(t, 10*time.Second, cfg.Source.Timeout)
	assert.Equal(t, "en", cfg.Display.Locale)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.True(t, cfg.Git.AutoCommit)
	assert.Equal(t, "Ledgertree", cfg.Git.AuthorName)
	assert.Equal(t, "ledgertree@cleared.dev", cfg.Git.AuthorEmail)
	assert.NoError(t, cfg.Validate())
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestYAMLFormat(t *testing.T) {
	cfg := Default("Test Biz", "trading")
	path := filepath.Join(t.TempDir(), File)
	err := Save(path, cfg)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	contents := string(data)

	assert.Contains(t, contents, "name: Test Biz")
	assert.Contains(t, contents, "business_type: trading")
	assert.Contains(t, contents, "kind: file")
	assert.Contains(t, contents, "timeout: 10s")
	assert.Contains(t, contents, "auto_commit: true")
	assert.NotContains(t, contents, "token:")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"default", func(*Config) {}, ""},
		{"http with base url", func(c *Config) {
			c.Source.Kind = SourceHTTP
			c.Source.BaseURL = "http://localhost:9000"
		}, ""},
		{"unknown kind", func(c *Config) { c.Source.Kind = "ftp" }, "source kind"},
		{"http without base url", func(c *Config) { c.Source.Kind = SourceHTTP }, "base_url"},
		{"zero timeout", func(c *Config) { c.Source.Timeout = 0 }, "timeout"},
		{"bad locale", func(c *Config) { c.Display.Locale = "not a locale" }, "locale"},
		{"bad log format", func(c *Config) { c.Log.Format = "xml" }, "log format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default("Test Biz", "trading")
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestDisplayTag(t *testing.T) {
	tag, err := DisplayConfig{}.Tag()
	require.NoError(t, err)
	assert.Equal(t, language.English, tag)

	tag, err = DisplayConfig{Locale: "de"}.Tag()
	require.NoError(t, err)
	assert.Equal(t, "de", tag.String())
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("LEDGERTREE_SOURCE_KIND", "http")
	t.Setenv("LEDGERTREE_SOURCE_BASE_URL", "https://api.example.com")
	t.Setenv("LEDGERTREE_SOURCE_TIMEOUT", "3s")
	t.Setenv("LEDGERTREE_GIT_AUTO_COMMIT", "false")

	cfg := Default("Test Biz", "trading")
	require.NoError(t, ApplyEnv(cfg, t.TempDir()))

	assert.Equal(t, SourceHTTP, cfg.Source.Kind)
	assert.Equal(t, "https://api.example.com", cfg.Source.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.Source.Timeout)
	assert.False(t, cfg.Git.AutoCommit)
	// Unset variables keep file values.
	assert.Equal(t, "Test Biz", cfg.Workspace.Name)
	assert.Equal(t, "/ledgers", cfg.Source.LedgersPath)
}

func TestApplyEnv_DotEnv(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, ".env"),
		[]byte("LEDGERTREE_LOG_LEVEL=debug\nLEDGERTREE_SERVER_ADDR=:9999\n"), 0o644))
	t.Setenv("LEDGERTREE_SERVER_ADDR", ":7000")
	// godotenv sets process variables; register them for cleanup.
	t.Setenv("LEDGERTREE_LOG_LEVEL", "")
	require.NoError(t, os.Unsetenv("LEDGERTREE_LOG_LEVEL"))

	cfg := Default("Test Biz", "trading")
	require.NoError(t, ApplyEnv(cfg, root))

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, ":7000", cfg.Server.Addr, "process environment wins over .env")
}

func TestOpen(t *testing.T) {
	root := t.TempDir()
	cfg := Default("Test Biz", "trading")
	cfg.Source.Kind = "bogus"
	require.NoError(t, Save(filepath.Join(root, File), cfg))

	_, err := Open(root)
	assert.ErrorContains(t, err, "source kind")

	t.Setenv("LEDGERTREE_SOURCE_KIND", "file")
	got, err := Open(root)
	require.NoError(t, err)
	assert.Equal(t, SourceFile, got.Source.Kind)
}
