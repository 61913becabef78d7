// Package memory holds an in-process corpus over a fixed message slice.
// It backs tests and serves as the reference Corpus implementation.
package memory

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"catalog_sync/internal/corpus"
	"catalog_sync/internal/domain"
)

type Corpus struct {
	messages []domain.Message
	photos   map[int64][]byte // message id -> photo bytes
	broken   map[int64]bool   // message ids whose download always fails
	flaky    map[int64]int    // message id -> remaining download failures
}

func New(messages []domain.Message) *Corpus {
	sorted := make([]domain.Message, len(messages))
	copy(sorted, messages)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })
	return &Corpus{
		messages: sorted,
		photos:   make(map[int64][]byte),
		broken:   make(map[int64]bool),
		flaky:    make(map[int64]int),
	}
}

// SetPhoto attaches downloadable bytes to a message id.
func (c *Corpus) SetPhoto(id int64, data []byte) {
	c.photos[id] = data
}

// BreakDownload makes Download fail for the given message id.
func (c *Corpus) BreakDownload(id int64) {
	c.broken[id] = true
}

// FailDownloads makes the next n downloads of the given message id fail
// before downloads start succeeding again.
func (c *Corpus) FailDownloads(id int64, n int) {
	c.flaky[id] = n
}

func (c *Corpus) Messages(ctx context.Context, q corpus.Query) ([]domain.Message, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var out []domain.Message
	for _, m := range c.messages {
		if !q.Matches(m) {
			continue
		}
		out = append(out, m)
		if q.Limit > 0 && len(out) >= q.Limit {
			break
		}
	}
	return out, nil
}

func (c *Corpus) Download(ctx context.Context, msg domain.Message, destDir, name string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if c.broken[msg.ID] {
		return "", fmt.Errorf("download message %d: unavailable", msg.ID)
	}
	if c.flaky[msg.ID] > 0 {
		c.flaky[msg.ID]--
		return "", fmt.Errorf("download message %d: transient failure", msg.ID)
	}
	data, ok := c.photos[msg.ID]
	if !ok {
		return "", fmt.Errorf("download message %d: no photo", msg.ID)
	}
	path := filepath.Join(destDir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
