package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/petworks/tamacore/internal/domain"
	"github.com/petworks/tamacore/internal/logger"
)

// FileStore persists the save blob as a JSON file. This is the default
// backend for a single-device install.
type FileStore struct {
	path string
}

// NewFileStore creates the data directory if needed and returns a store
// writing <dataDir>/<SaveKey>.json.
func NewFileStore(dataDir string) (*FileStore, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &FileStore{path: filepath.Join(dataDir, SaveKey+".json")}, nil
}

// Load reads the save blob. A missing file, a corrupt blob or a version
// mismatch all degrade to "no save".
func (s *FileStore) Load(ctx context.Context) (*domain.SaveState, error) {
	log := logger.FromContext(ctx)

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read save blob: %w", err)
	}

	var state domain.SaveState
	if err := json.Unmarshal(data, &state); err != nil {
		log.Warn("save blob unreadable, starting fresh", "path", s.path, "error", err)
		return nil, nil
	}
	if state.Version != domain.CurrentVersion {
		log.Warn("save blob version mismatch, starting fresh",
			"path", s.path, "version", state.Version, "want", domain.CurrentVersion)
		return nil, nil
	}
	if state.Events == nil {
		state.Events = make(map[string]int)
	}
	if state.Inventory.Equipped == nil {
		state.Inventory.Equipped = make(map[domain.Category]string)
	}
	return &state, nil
}

// Save writes the blob atomically: temp file in the same directory, then
// rename over the target.
func (s *FileStore) Save(ctx context.Context, state *domain.SaveState) error {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal save blob: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write save blob: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("commit save blob: %w", err)
	}
	return nil
}

// Ping verifies the data directory is still reachable.
func (s *FileStore) Ping(ctx context.Context) error {
	_, err := os.Stat(filepath.Dir(s.path))
	return err
}

func (s *FileStore) Close() error { return nil }
