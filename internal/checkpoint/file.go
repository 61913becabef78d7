// Package checkpoint persists the per-product sync flags across runs as a
// JSON file mapping product id to {"desc": bool, "photo": bool}.
package checkpoint

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"catalog_sync/internal/domain"
)

type FileStore struct {
	path    string
	entries map[string]domain.Checkpoint
}

func NewFileStore(path string) *FileStore {
	return &FileStore{
		path:    path,
		entries: make(map[string]domain.Checkpoint),
	}
}

// Load reads the file. A missing file is an empty store, not an error. The
// legacy format — a plain list of product ids — upgrades in memory to both
// flags true per id; it gets rewritten in the current format on the next
// Mark.
func (s *FileStore) Load(ctx context.Context) error {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		s.entries = make(map[string]domain.Checkpoint)
		return nil
	}
	if err != nil {
		return fmt.Errorf("read checkpoint file: %w", err)
	}

	var entries map[string]domain.Checkpoint
	if err := json.Unmarshal(data, &entries); err == nil {
		s.entries = entries
		return nil
	}

	var legacy []json.Number
	if err := json.Unmarshal(data, &legacy); err != nil {
		return fmt.Errorf("parse checkpoint file %s: %w", s.path, err)
	}
	s.entries = make(map[string]domain.Checkpoint, len(legacy))
	for _, id := range legacy {
		s.entries[id.String()] = domain.Checkpoint{Desc: true, Photo: true}
	}
	return nil
}

// Get returns the entry for a product; absent products have both flags false.
func (s *FileStore) Get(id string) domain.Checkpoint {
	return s.entries[id]
}

// Mark sets the given flags to true and flushes synchronously. Flags are
// monotonic: Mark never clears one that is already set.
func (s *FileStore) Mark(ctx context.Context, id string, desc, photo bool) error {
	entry := s.entries[id]
	entry.Desc = entry.Desc || desc
	entry.Photo = entry.Photo || photo
	s.entries[id] = entry
	return s.flush()
}

// flush writes via a temp file and rename so a crash mid-write cannot leave a
// truncated checkpoint.
func (s *FileStore) flush() error {
	data, err := json.MarshalIndent(s.entries, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal checkpoints: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create checkpoint dir: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write checkpoint file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replace checkpoint file: %w", err)
	}
	return nil
}
