// Package corpcache persists the company identifier master list between runs
// as a record-oriented JSON snapshot.
package corpcache

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/fin-tools/filing-atlas/pkg/models/store"
)

type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads the cached master list. A missing, empty, or structurally
// invalid snapshot is a cache miss (nil entries, nil error), never a fatal
// condition; the caller rebuilds from the master-list source.
func (s *Store) Load(ctx context.Context) ([]store.CorpEntry, error) {
	logger := zerolog.Ctx(ctx)

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn().Err(err).Str("path", s.path).Msg("identifier cache unreadable, rebuilding")
		}
		return nil, nil
	}

	var entries []store.CorpEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		logger.Warn().Err(err).Str("path", s.path).Msg("identifier cache corrupt, rebuilding")
		return nil, nil
	}

	if len(entries) == 0 {
		return nil, nil
	}

	logger.Debug().Int("companies", len(entries)).Str("path", s.path).Msg("identifier cache loaded")
	return entries, nil
}

// Save writes a full snapshot, replacing any previous one.
func (s *Store) Save(ctx context.Context, entries []store.CorpEntry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to encode identifier cache: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create cache directory: %w", err)
		}
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write identifier cache: %w", err)
	}

	zerolog.Ctx(ctx).Debug().Int("companies", len(entries)).Str("path", s.path).Msg("identifier cache saved")
	return nil
}
