package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds the settings taqvim reads at startup.
type Config struct {
	Language  string
	Theme     string
	LogLevel  string
	LogFile   string
	Listen    string
	PrefsFile string
	Refresh   time.Duration
}

const (
	defaultConfigPath = "~/.config/taqvim/config.toml"
	defaultPrefsFile  = "~/.config/taqvim/prefs.toml"
	defaultLogFile    = "~/.local/state/taqvim/taqvim.log"
	defaultLanguage   = "en"
	defaultTheme      = "Nightfox"
	defaultLogLevel   = "info"
	defaultListen     = "127.0.0.1:7488"
	defaultRefresh    = 60 * time.Second
	minRefresh        = time.Second
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Language:  defaultLanguage,
		Theme:     defaultTheme,
		LogLevel:  defaultLogLevel,
		LogFile:   mustExpand(defaultLogFile),
		Listen:    defaultListen,
		PrefsFile: mustExpand(defaultPrefsFile),
		Refresh:   defaultRefresh,
	}
}

// Load locates and parses the config file, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		Language       string `toml:"language"`
		Theme          string `toml:"theme"`
		LogLevel       string `toml:"log_level"`
		LogFile        string `toml:"log_file"`
		Listen         string `toml:"listen"`
		PrefsFile      string `toml:"prefs_file"`
		RefreshSeconds int    `toml:"refresh_seconds"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg.Language = orDefault(strings.ToLower(raw.Language), defaultLanguage)
	cfg.Theme = orDefault(raw.Theme, defaultTheme)
	cfg.LogLevel = orDefault(strings.ToLower(raw.LogLevel), defaultLogLevel)
	cfg.Listen = orDefault(raw.Listen, defaultListen)
	cfg.LogFile = mustExpand(orDefault(raw.LogFile, defaultLogFile))
	cfg.PrefsFile = mustExpand(orDefault(raw.PrefsFile, defaultPrefsFile))

	if raw.RefreshSeconds > 0 {
		cfg.Refresh = time.Duration(raw.RefreshSeconds) * time.Second
	}
	if cfg.Refresh < minRefresh {
		cfg.Refresh = minRefresh
	}

	return cfg, nil
}

// LogDir returns the directory holding the log file.
func (c Config) LogDir() string {
	if strings.TrimSpace(c.LogFile) == "" {
		return filepath.Dir(mustExpand(defaultLogFile))
	}
	return filepath.Dir(c.LogFile)
}

func orDefault(value, fallback string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fallback
	}
	return trimmed
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return ExpandPath(defaultConfigPath)
	}
	return ExpandPath(path)
}

func mustExpand(path string) string {
	expanded, err := ExpandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

// ExpandPath trims path, expands a leading "~" to the home directory and
// makes it absolute.
func ExpandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
