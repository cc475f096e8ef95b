package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/shuku"
	"gopkg.in/yaml.v3"
)

// Store backends selectable with SHUKU_STORE.
const (
	StoreSQLite = "sqlite"
	StoreFile   = "file"
)

// Config holds the settings read from the environment and the optional
// site profile.
type Config struct {
	BaseURL   string
	Hosts     []string
	Store     string
	StorePath string
	Cookie    string
	UserAgent string
	LogLevel  slog.Level

	// Defaults seed the list command's filter flags.
	DefaultCategory shuku.Category
	DefaultSort     shuku.SortOrder
}

// Profile is the YAML site profile named by SHUKU_CONFIG.
type Profile struct {
	BaseURL   string   `yaml:"base_url"`
	Hosts     []string `yaml:"hosts"`
	UserAgent string   `yaml:"user_agent"`
	Filter    struct {
		Category string `yaml:"category"`
		Sort     string `yaml:"sort"`
	} `yaml:"filter"`
}

// LoadConfig builds a Config from getenv, then applies the profile file
// named by SHUKU_CONFIG when set.
func LoadConfig(getenv func(string) string) (Config, error) {
	cfg := Config{
		BaseURL:   getEnv(getenv, "SHUKU_BASE_URL", shuku.DefaultBaseURL),
		Store:     strings.ToLower(getEnv(getenv, "SHUKU_STORE", StoreSQLite)),
		Cookie:    getenv("SHUKU_COOKIE"),
		UserAgent: getenv("SHUKU_USER_AGENT"),
	}

	switch cfg.Store {
	case StoreSQLite, StoreFile:
	default:
		return Config{}, fmt.Errorf("invalid SHUKU_STORE %q, expected sqlite|file", cfg.Store)
	}
	cfg.StorePath = getEnv(getenv, "SHUKU_DB", defaultStorePath(cfg.Store))

	level, err := parseLogLevel(getEnv(getenv, "SHUKU_LOG_LEVEL", "WARN"))
	if err != nil {
		return Config{}, err
	}
	cfg.LogLevel = level

	if path := getenv("SHUKU_CONFIG"); path != "" {
		if err := cfg.applyProfile(path); err != nil {
			return Config{}, err
		}
	}

	return cfg, nil
}

func (c *Config) applyProfile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read profile: %w", err)
	}

	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("failed to parse profile %s: %w", path, err)
	}

	if p.BaseURL != "" {
		c.BaseURL = p.BaseURL
	}
	if len(p.Hosts) > 0 {
		c.Hosts = p.Hosts
	}
	if p.UserAgent != "" {
		c.UserAgent = p.UserAgent
	}

	filter := shuku.Filter{
		Category: shuku.Category(p.Filter.Category),
		Sort:     shuku.SortOrder(p.Filter.Sort),
	}
	if err := filter.Validate(); err != nil {
		return fmt.Errorf("profile %s: %w", path, err)
	}
	c.DefaultCategory = filter.Category
	c.DefaultSort = filter.Sort
	return nil
}

// Site returns the shuku.Site described by the config.
func (c Config) Site() shuku.Site {
	s := shuku.DefaultSite()
	if c.BaseURL != "" {
		s.BaseURL = c.BaseURL
	}
	s.Hosts = c.Hosts
	return s
}

func parseLogLevel(raw string) (slog.Level, error) {
	switch strings.ToUpper(raw) {
	case "DEBUG":
		return slog.LevelDebug, nil
	case "INFO":
		return slog.LevelInfo, nil
	case "WARN":
		return slog.LevelWarn, nil
	case "ERROR":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid SHUKU_LOG_LEVEL %q, expected DEBUG|INFO|WARN|ERROR", raw)
	}
}

func getEnv(getenv func(string) string, key, fallback string) string {
	if value := getenv(key); value != "" {
		return value
	}
	return fallback
}

func defaultStorePath(store string) string {
	name := "shuku.db"
	if store == StoreFile {
		name = "shuku.json"
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return name
	}
	return filepath.Join(home, ".shuku", name)
}
