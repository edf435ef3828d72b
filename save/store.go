package save

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrNoHome is returned when no per-user config directory can be found.
var ErrNoHome = errors.New("save: no user config directory")

const (
	bestFile     = "best.yaml"
	settingsFile = "settings.yaml"
)

// Store keeps the best score and settings as YAML files in one directory.
type Store struct {
	dir string
}

func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// DefaultDir returns <user config dir>/phaserunner.
func DefaultDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil || base == "" {
		return "", ErrNoHome
	}
	return filepath.Join(base, "phaserunner"), nil
}

func (s *Store) Dir() string { return s.dir }

type bestDoc struct {
	Best int `yaml:"best"`
}

// LoadBest returns the saved best score, or 0 when nothing was saved yet.
func (s *Store) LoadBest() (int, error) {
	var doc bestDoc
	found, err := s.read(bestFile, &doc)
	if err != nil || !found {
		return 0, err
	}
	if doc.Best < 0 {
		return 0, nil
	}
	return doc.Best, nil
}

func (s *Store) SaveBest(best int) error {
	return s.write(bestFile, bestDoc{Best: best})
}

// LoadSettings returns the saved settings merged over DefaultSettings.
func (s *Store) LoadSettings() (Settings, error) {
	out := DefaultSettings()
	if _, err := s.read(settingsFile, &out); err != nil {
		return DefaultSettings(), err
	}
	out.normalize()
	return out, nil
}

func (s *Store) SaveSettings(st Settings) error {
	st.normalize()
	return s.write(settingsFile, st)
}

func (s *Store) read(name string, out any) (bool, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("save: read %s: %w", name, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("save: unmarshal %s: %w", name, err)
	}
	return true, nil
}

// write replaces the file through a rename so a crash never leaves half a
// document behind.
func (s *Store) write(name string, v any) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("save: mkdir %s: %w", s.dir, err)
	}
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("save: marshal %s: %w", name, err)
	}
	tmp, err := os.CreateTemp(s.dir, name+".*.tmp")
	if err != nil {
		return fmt.Errorf("save: write %s: %w", name, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("save: write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("save: write %s: %w", name, err)
	}
	if err := os.Rename(tmp.Name(), filepath.Join(s.dir, name)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("save: write %s: %w", name, err)
	}
	return nil
}
