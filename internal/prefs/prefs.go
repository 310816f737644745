// Package prefs persists taqvim user preferences.
// Preferences are stored in ~/.config/taqvim/prefs.toml.
package prefs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/taqvim/internal/config"
)

// Prefs holds what the month browser remembers between runs.
type Prefs struct {
	Theme    string `toml:"theme"`
	Language string `toml:"language,omitempty"`

	// Last month shown by the calendar browser. Zero means "open on today".
	LastYear  int `toml:"last_year,omitempty"`
	LastMonth int `toml:"last_month,omitempty"`
}

// HasLastMonth reports whether a last viewed month was recorded.
func (p Prefs) HasLastMonth() bool {
	return p.LastYear > 0 && p.LastMonth >= 1 && p.LastMonth <= 12
}

const (
	defaultPrefsPath = "~/.config/taqvim/prefs.toml"
	defaultTheme     = "Nightfox"
)

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPrefsPath
}

// Load reads preferences from path. Prefs are a convenience, so a missing,
// unreadable or malformed file yields the defaults instead of an error.
func Load(path string) Prefs {
	defaults := Prefs{Theme: defaultTheme}

	resolved, err := resolvePath(path)
	if err != nil {
		return defaults
	}
	data, err := os.ReadFile(resolved)
	if err != nil {
		return defaults
	}

	p := defaults
	if err := toml.Unmarshal(data, &p); err != nil {
		return defaults
	}
	return p.normalize()
}

func (p Prefs) normalize() Prefs {
	p.Theme = strings.TrimSpace(p.Theme)
	if p.Theme == "" {
		p.Theme = defaultTheme
	}
	p.Language = strings.ToLower(strings.TrimSpace(p.Language))
	if !p.HasLastMonth() {
		p.LastYear, p.LastMonth = 0, 0
	}
	return p
}

// Save writes p to path, creating directories as needed. The file is
// replaced atomically so an interrupted save leaves the old prefs intact.
func Save(path string, p Prefs) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	dir := filepath.Dir(resolved)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	data, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".prefs-*.toml")
	if err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	_, werr := tmp.Write(data)
	cerr := tmp.Close()
	if err := errors.Join(werr, cerr); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	if err := os.Rename(tmp.Name(), resolved); err != nil {
		return fmt.Errorf("replace prefs: %w", err)
	}
	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		path = defaultPrefsPath
	}
	return config.ExpandPath(path)
}
