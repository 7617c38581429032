package settings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// Store reads and writes the settings file. Files ending in .yaml or .yml
// are written as YAML, anything else as indented JSON. Both are read with
// the YAML decoder.
type Store struct {
	mu   sync.Mutex
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Path() string {
	return s.path
}

// Load returns empty settings when the file does not exist yet.
func (s *Store) Load(ctx context.Context) (*Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.loadLocked(ctx)
}

func (s *Store) Save(ctx context.Context, settings *Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.saveLocked(ctx, settings)
}

// Update applies fn to the stored settings and saves the result.
func (s *Store) Update(ctx context.Context, fn func(*Settings)) (*Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.loadLocked(ctx)
	if err != nil {
		return nil, err
	}
	fn(current)

	if err := s.saveLocked(ctx, current); err != nil {
		return nil, err
	}
	return current, nil
}

func (s *Store) loadLocked(ctx context.Context) (*Settings, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			slog.DebugContext(ctx, "settings file not found, using empty settings",
				slog.String("path", s.path),
			)
			return &Settings{}, nil
		}
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	var settings Settings
	if len(strings.TrimSpace(string(data))) == 0 {
		return &settings, nil
	}
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSettings, err)
	}

	return &settings, nil
}

func (s *Store) saveLocked(ctx context.Context, settings *Settings) error {
	data, err := s.encode(settings)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".settings-*")
	if err != nil {
		return fmt.Errorf("failed to create temp settings file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write settings: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		return fmt.Errorf("failed to set settings permissions: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("failed to replace settings: %w", err)
	}

	slog.InfoContext(ctx, "settings saved",
		slog.String("path", s.path),
	)

	return nil
}

func (s *Store) encode(settings *Settings) ([]byte, error) {
	switch strings.ToLower(filepath.Ext(s.path)) {
	case ".yaml", ".yml":
		return yaml.Marshal(settings)
	default:
		data, err := json.MarshalIndent(settings, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	}
}
