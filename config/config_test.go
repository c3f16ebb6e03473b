package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearPlatformEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"PORT", "DATABASE_URL", "CHROME_PATH", "REDIS_URL", "GOOGLE_APPLICATION_CREDENTIALS"} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearPlatformEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "file", cfg.Catalog.Source)
	assert.Equal(t, "data/all.json", cfg.Catalog.Path)
	assert.Equal(t, 600*time.Millisecond, cfg.Search.Debounce)
	assert.Equal(t, 1584, cfg.Export.Width)
	assert.Equal(t, 396, cfg.Export.Height)
	assert.Equal(t, "banner.png", cfg.Export.Filename)
	assert.Equal(t, "memory", cfg.Export.Store)
	assert.Equal(t, 10*time.Minute, cfg.Export.TTL)
	assert.Equal(t, "0.0.0.0:8080", cfg.Addr())
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearPlatformEnv(t)

	t.Run("prefixed variables", func(t *testing.T) {
		t.Setenv("BANNER_SEARCH_DEBOUNCE", "250ms")
		t.Setenv("BANNER_EXPORT_STORE", "redis")

		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, 250*time.Millisecond, cfg.Search.Debounce)
		assert.Equal(t, "redis", cfg.Export.Store)
	})

	t.Run("platform PORT strips the colon", func(t *testing.T) {
		t.Setenv("PORT", ":9090")

		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, "9090", cfg.Server.Port)
	})

	t.Run("DATABASE_URL enables the postgres source", func(t *testing.T) {
		t.Setenv("BANNER_CATALOG_SOURCE", "postgres")
		t.Setenv("DATABASE_URL", "postgres://localhost/logos")

		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, "postgres://localhost/logos", cfg.Database.URL)
	})
}

func TestLoad_ConfigFile(t *testing.T) {
	clearPlatformEnv(t)

	path := filepath.Join(t.TempDir(), "banner.yaml")
	content := `
catalog:
  path: /srv/logos/all.json
export:
  width: 1500
  height: 500
preset:
  prefixes: ["react", "go-"]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/srv/logos/all.json", cfg.Catalog.Path)
	assert.Equal(t, 1500, cfg.Export.Width)
	assert.Equal(t, 500, cfg.Export.Height)
	assert.Equal(t, []string{"react", "go-"}, cfg.Preset.Prefixes)
}

func TestLoad_MissingConfigFile(t *testing.T) {
	_, err := Load("/nonexistent/banner.yaml")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Catalog: CatalogConfig{Source: "file", Path: "all.json"},
			Export:  ExportConfig{Width: 1584, Height: 396, Filename: "banner.png", Store: "memory", TTL: time.Minute},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "unknown source", mutate: func(c *Config) { c.Catalog.Source = "s3" }, wantErr: true},
		{name: "postgres without url", mutate: func(c *Config) { c.Catalog.Source = "postgres" }, wantErr: true},
		{name: "unknown store", mutate: func(c *Config) { c.Export.Store = "disk" }, wantErr: true},
		{name: "zero height", mutate: func(c *Config) { c.Export.Height = 0 }, wantErr: true},
		{name: "zero export ttl", mutate: func(c *Config) { c.Export.TTL = 0 }, wantErr: true},
		{name: "negative export ttl", mutate: func(c *Config) { c.Export.TTL = -time.Minute }, wantErr: true},
		{name: "negative debounce", mutate: func(c *Config) { c.Search.Debounce = -time.Second }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
