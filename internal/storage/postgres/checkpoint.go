package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"catalog_sync/internal/domain"
)

// CheckpointStore is the postgres checkpoint backend. Same contract as the
// file store: loaded once at batch start, every Mark upserts synchronously,
// flags only ever move to true.
type CheckpointStore struct {
	db      *sqlx.DB
	entries map[string]domain.Checkpoint
}

func NewCheckpointStore(db *sqlx.DB) *CheckpointStore {
	return &CheckpointStore{
		db:      db,
		entries: make(map[string]domain.Checkpoint),
	}
}

type checkpointRow struct {
	ProductID   string `db:"product_id"`
	DescSynced  bool   `db:"desc_synced"`
	PhotoSynced bool   `db:"photo_synced"`
}

func (s *CheckpointStore) Load(ctx context.Context) error {
	var rows []checkpointRow
	err := s.db.SelectContext(ctx, &rows,
		"SELECT product_id, desc_synced, photo_synced FROM catalog_checkpoints")
	if err != nil {
		return fmt.Errorf("load checkpoints: %w", err)
	}

	s.entries = make(map[string]domain.Checkpoint, len(rows))
	for _, r := range rows {
		s.entries[r.ProductID] = domain.Checkpoint{Desc: r.DescSynced, Photo: r.PhotoSynced}
	}
	return nil
}

func (s *CheckpointStore) Get(id string) domain.Checkpoint {
	return s.entries[id]
}

func (s *CheckpointStore) Mark(ctx context.Context, id string, desc, photo bool) error {
	query := `
		INSERT INTO catalog_checkpoints (product_id, desc_synced, photo_synced, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (product_id) DO UPDATE SET
			desc_synced = catalog_checkpoints.desc_synced OR EXCLUDED.desc_synced,
			photo_synced = catalog_checkpoints.photo_synced OR EXCLUDED.photo_synced,
			updated_at = NOW()`

	if _, err := s.db.ExecContext(ctx, query, id, desc, photo); err != nil {
		return fmt.Errorf("mark checkpoint: %w", err)
	}

	entry := s.entries[id]
	entry.Desc = entry.Desc || desc
	entry.Photo = entry.Photo || photo
	s.entries[id] = entry
	return nil
}
