package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// File is the config file name at the workspace root.
const File = "ledgertree.yaml"

// EnvPrefix prefixes every environment override.
const EnvPrefix = "LEDGERTREE_"

// Source kinds.
const (
	SourceFile = "file"
	SourceHTTP = "http"
)

// Config represents the top-level ledgertree.yaml configuration.
type Config struct {
	Workspace WorkspaceConfig `yaml:"workspace" envPrefix:"WORKSPACE_"`
	Source    SourceConfig    `yaml:"source" envPrefix:"SOURCE_"`
	Display   DisplayConfig   `yaml:"display" envPrefix:"DISPLAY_"`
	Log       LogConfig       `yaml:"log" envPrefix:"LOG_"`
	Server    ServerConfig    `yaml:"server" envPrefix:"SERVER_"`
	Git       GitConfig       `yaml:"git" envPrefix:"GIT_"`
}

// WorkspaceConfig identifies the business the taxonomy belongs to.
type WorkspaceConfig struct {
	Name         string `yaml:"name" env:"NAME"`
	BusinessType string `yaml:"business_type" env:"BUSINESS_TYPE"`
}

// SourceConfig selects where hierarchy rows and tenant ledgers come from.
type SourceConfig struct {
	Kind          string        `yaml:"kind" env:"KIND"` // "file" or "http"
	BaseURL       string        `yaml:"base_url,omitempty" env:"BASE_URL"`
	HierarchyPath string        `yaml:"hierarchy_path,omitempty" env:"HIERARCHY_PATH"`
	LedgersPath   string        `yaml:"ledgers_path,omitempty" env:"LEDGERS_PATH"`
	Token         string        `yaml:"token,omitempty" env:"TOKEN"`
	Timeout       time.Duration `yaml:"timeout" env:"TIMEOUT"`
}

// DisplayConfig controls presentation of options and roots.
type DisplayConfig struct {
	Locale string `yaml:"locale" env:"LOCALE"` // BCP 47 tag used for collation
}

// LogConfig controls the zap logger.
type LogConfig struct {
	Level  string `yaml:"level" env:"LEVEL"`
	Format string `yaml:"format" env:"FORMAT"` // "console" or "json"
}

// ServerConfig controls the HTTP surface.
type ServerConfig struct {
	Addr string `yaml:"addr" env:"ADDR"`
}

// GitConfig controls git integration.
type GitConfig struct {
	AutoCommit  bool   `yaml:"auto_commit" env:"AUTO_COMMIT"`
	AuthorName  string `yaml:"author_name" env:"AUTHOR_NAME"`
	AuthorEmail string `yaml:"author_email" env:"AUTHOR_EMAIL"`
}

// Load reads a ledgertree.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Open loads the workspace config at root, applies environment overrides
// and validates the result.
func Open(root string) (*Config, error) {
	cfg, err := Load(filepath.Join(root, File))
	if err != nil {
		return nil, err
	}
	if err := ApplyEnv(cfg, root); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overlays LEDGERTREE_* environment variables onto cfg. A .env
// file at root is loaded first when present; variables already set in the
// process win over it. Unset variables leave file values alone.
func ApplyEnv(cfg *Config, root string) error {
	dotenv := filepath.Join(root, ".env")
	if _, err := os.Stat(dotenv); err == nil {
		if err := godotenv.Load(dotenv); err != nil {
			return fmt.Errorf("loading %s: %w", dotenv, err)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("checking %s: %w", dotenv, err)
	}

	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parsing environment: %w", err)
	}
	return nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	switch c.Source.Kind {
	case SourceFile:
	case SourceHTTP:
		if c.Source.BaseURL == "" {
			return fmt.Errorf("source base_url is required when kind is %q", SourceHTTP)
		}
	default:
		return fmt.Errorf("source kind must be %q or %q, got %q", SourceFile, SourceHTTP, c.Source.Kind)
	}
	if c.Source.Timeout <= 0 {
		return fmt.Errorf("source timeout must be positive, got %s", c.Source.Timeout)
	}
	if _, err := c.Display.Tag(); err != nil {
		return err
	}
	switch c.Log.Format {
	case "", "console", "json":
	default:
		return fmt.Errorf("log format must be console or json, got %q", c.Log.Format)
	}
	return nil
}

// Tag parses the display locale. An empty locale is English.
func (d DisplayConfig) Tag() (language.Tag, error) {
	if d.Locale == "" {
		return language.English, nil
	}
	tag, err := language.Parse(d.Locale)
	if err != nil {
		return language.Und, fmt.Errorf("parsing display locale %q: %w", d.Locale, err)
	}
	return tag, nil
}

// Default returns a Config with sensible defaults for a new workspace.
func Default(name, businessType string) *Config {
	return &Config{
		Workspace: WorkspaceConfig{
			Name:         name,
			BusinessType: businessType,
		},
		Source: SourceConfig{
			Kind:          SourceFile,
			HierarchyPath: "/hierarchy",
			LedgersPath:   "/ledgers",
			Timeout:       10 * time.Second,
		},
		Display: DisplayConfig{
			Locale: "en",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
		Git: GitConfig{
			AutoCommit:  true,
			AuthorName:  "Ledgertree",
			AuthorEmail: "ledgertree@cleared.dev",
		},
	}
}
