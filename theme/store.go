package theme

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// FileName is the preference file inside the store directory
const FileName = "theme.toml"

// preference is the on-disk layout
type preference struct {
	Theme string `toml:"theme"`
}

// Store persists the theme preference as TOML
type Store struct {
	path string
}

// DefaultPath returns the per-user preference file location
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config dir: %w", err)
	}
	return filepath.Join(dir, "antigravity", FileName), nil
}

// NewStore creates a store backed by path
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the preference file
func (s *Store) Path() string {
	return s.path
}

// Dir returns the directory holding the preference file
func (s *Store) Dir() string {
	return filepath.Dir(s.path)
}

// Load returns the saved theme; ok is false when nothing was saved
func (s *Store) Load() (t Theme, ok bool, err error) {
	var p preference
	if _, err := toml.DecodeFile(s.path, &p); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Light, false, nil
		}
		return Light, false, fmt.Errorf("load theme: %w", err)
	}
	if p.Theme == "" {
		return Light, false, nil
	}
	t, err = Parse(p.Theme)
	if err != nil {
		return Light, false, fmt.Errorf("load theme: %w", err)
	}
	return t, true, nil
}

// Save writes the preference through a temp file so readers never see a partial write
func (s *Store) Save(t Theme) error {
	if err := os.MkdirAll(s.Dir(), 0o755); err != nil {
		return fmt.Errorf("save theme: %w", err)
	}

	tmp, err := os.CreateTemp(s.Dir(), ".theme-*.toml")
	if err != nil {
		return fmt.Errorf("save theme: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := toml.NewEncoder(tmp).Encode(preference{Theme: t.String()}); err != nil {
		tmp.Close()
		return fmt.Errorf("save theme: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("save theme: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("save theme: %w", err)
	}
	return nil
}
