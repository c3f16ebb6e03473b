// Package config loads service settings from defaults, an optional config file and the environment.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Catalog  CatalogConfig  `mapstructure:"catalog"`
	Database DatabaseConfig `mapstructure:"database"`
	Search   SearchConfig   `mapstructure:"search"`
	Session  SessionConfig  `mapstructure:"session"`
	Preset   PresetConfig   `mapstructure:"preset"`
	Export   ExportConfig   `mapstructure:"export"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Port    string `mapstructure:"port"`
	BaseURL string `mapstructure:"base_url"`
}

// CatalogConfig selects where the logo dataset comes from
type CatalogConfig struct {
	Source    string `mapstructure:"source"`     // "file" or "postgres"
	Path      string `mapstructure:"path"`       // JSON dataset for the file source
	AssetsDir string `mapstructure:"assets_dir"` // Root for item asset paths
}

type DatabaseConfig struct {
	URL string `mapstructure:"url"`
}

type SearchConfig struct {
	Debounce time.Duration `mapstructure:"debounce"`
}

type SessionConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

// PresetConfig overrides the built-in preset prefixes when non-empty
type PresetConfig struct {
	Prefixes []string `mapstructure:"prefixes"`
}

type ExportConfig struct {
	Width            int           `mapstructure:"width"`
	Height           int           `mapstructure:"height"`
	Filename         string        `mapstructure:"filename"`
	Timeout          time.Duration `mapstructure:"timeout"`
	ChromePath       string        `mapstructure:"chrome_path"`
	Store            string        `mapstructure:"store"` // "memory" or "redis"
	TTL              time.Duration `mapstructure:"ttl"`
	DriveFolderID    string        `mapstructure:"drive_folder_id"`
	DriveCredentials string        `mapstructure:"drive_credentials"`
}

type RedisConfig struct {
	URL string `mapstructure:"url"`
}

type LogConfig struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

// setDefaults registers every default value
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.base_url", "http://localhost:8080")

	v.SetDefault("catalog.source", "file")
	v.SetDefault("catalog.path", "data/all.json")
	v.SetDefault("catalog.assets_dir", "public")

	v.SetDefault("database.url", "")

	v.SetDefault("search.debounce", 600*time.Millisecond)
	v.SetDefault("session.ttl", 30*time.Minute)
	v.SetDefault("preset.prefixes", []string{})

	v.SetDefault("export.width", 1584)
	v.SetDefault("export.height", 396)
	v.SetDefault("export.filename", "banner.png")
	v.SetDefault("export.timeout", 30*time.Second)
	v.SetDefault("export.chrome_path", "")
	v.SetDefault("export.store", "memory")
	v.SetDefault("export.ttl", 10*time.Minute)
	v.SetDefault("export.drive_folder_id", "")
	v.SetDefault("export.drive_credentials", "")

	v.SetDefault("redis.url", "redis://localhost:6379")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.development", false)
}

// Load reads configuration. configFile may be empty.
// Environment variables use the BANNER_ prefix (BANNER_EXPORT_TTL=5m); a few
// platform variables (PORT, DATABASE_URL, CHROME_PATH, REDIS_URL,
// GOOGLE_APPLICATION_CREDENTIALS) are honoured as well.
func Load(configFile string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("BANNER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	applyPlatformEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyPlatformEnv maps the variables hosting platforms set without our prefix
func applyPlatformEnv(cfg *Config) {
	if port := os.Getenv("PORT"); port != "" {
		cfg.Server.Port = port
	}
	// PORT from Render doesn't include the colon, but be lenient
	cfg.Server.Port = strings.TrimPrefix(cfg.Server.Port, ":")

	if cfg.Database.URL == "" {
		cfg.Database.URL = os.Getenv("DATABASE_URL")
	}
	if cfg.Export.ChromePath == "" {
		cfg.Export.ChromePath = os.Getenv("CHROME_PATH")
	}
	if url := os.Getenv("REDIS_URL"); url != "" && os.Getenv("BANNER_REDIS_URL") == "" {
		cfg.Redis.URL = url
	}
	if cfg.Export.DriveCredentials == "" {
		cfg.Export.DriveCredentials = os.Getenv("GOOGLE_APPLICATION_CREDENTIALS")
	}
}

// Validate checks values that would otherwise fail late
func (c *Config) Validate() error {
	switch c.Catalog.Source {
	case "file":
		if c.Catalog.Path == "" {
			return fmt.Errorf("catalog.path is required for the file source")
		}
	case "postgres":
		if c.Database.URL == "" {
			return fmt.Errorf("database.url (or DATABASE_URL) is required for the postgres source")
		}
	default:
		return fmt.Errorf("unknown catalog.source %q (valid: file, postgres)", c.Catalog.Source)
	}

	switch c.Export.Store {
	case "memory", "redis":
	default:
		return fmt.Errorf("unknown export.store %q (valid: memory, redis)", c.Export.Store)
	}

	if c.Export.Width <= 0 || c.Export.Height <= 0 {
		return fmt.Errorf("export dimensions must be positive, got %dx%d", c.Export.Width, c.Export.Height)
	}
	if c.Export.Filename == "" {
		return fmt.Errorf("export.filename is required")
	}
	if c.Export.TTL <= 0 {
		return fmt.Errorf("export.ttl must be positive, got %s", c.Export.TTL)
	}
	if c.Search.Debounce < 0 {
		return fmt.Errorf("search.debounce must not be negative")
	}
	return nil
}

// Addr returns the listen address.
// Listen on 0.0.0.0 to accept connections from all interfaces (required for Docker/Render)
func (c *Config) Addr() string {
	return "0.0.0.0:" + c.Server.Port
}
