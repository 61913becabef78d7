package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"catalog_sync/internal/corpus"
	"catalog_sync/internal/domain"
)

type Catalog interface {
	Products(ctx context.Context) ([]domain.CatalogRecord, error)
	Update(ctx context.Context, productID string, upd domain.ProductUpdate) error
}

// CorpusProvider resolves the configured corpora. Either accessor may return
// nil when that corpus is not configured.
type CorpusProvider interface {
	Main() corpus.Corpus
	Comments() corpus.Corpus
}

type MessageFinder interface {
	Resolve(ctx context.Context, c corpus.Corpus, article string) (*domain.Message, error)
}

type PhotoCollector interface {
	Combined(ctx context.Context, c corpus.Corpus, main domain.Message) ([]domain.PhotoCandidate, error)
	MainFirst(ctx context.Context, c corpus.Corpus, main domain.Message) ([]domain.PhotoCandidate, error)
}

type DescriptionSelector interface {
	Select(ctx context.Context, c corpus.Corpus, main domain.Message) (string, []string, error)
}

type Uploader interface {
	Upload(ctx context.Context, path string) (string, error)
}

type CheckpointStore interface {
	Load(ctx context.Context) error
	Get(id string) domain.Checkpoint
	Mark(ctx context.Context, id string, desc, photo bool) error
}

type Publisher interface {
	Publish(ctx context.Context, res *domain.SyncResult) error
	Close() error
}
