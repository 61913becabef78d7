package resolve

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"catalog_sync/internal/corpus"
	"catalog_sync/internal/domain"
)

// Scan windows, in message ids. The corpus is not indexed, so every scan is a
// fixed offset around the main message; messages outside a window are
// invisible to resolution. That is a deliberate approximation — widening it
// without a real index only makes scans slower, not correct.
const (
	replyScanWindow    = 800 // forward window for photo replies to the main message
	galleryScanWindow  = 50  // window either side of the main message for gallery members
	trailingScanWindow = 400 // forward window for text-free trailing photos
	commentScanWindow  = 200 // forward window for a reply carrying the description
)

// PhotoCollector gathers up to MaxPhotos downloaded candidates for a resolved
// main message. No source message contributes more than one candidate.
type PhotoCollector struct {
	MaxPhotos   int
	DownloadDir string
	Logger      *slog.Logger
}

// collection tracks one run: ordered candidates plus the source ids already
// claimed by a successful download, shared across phases so later phases
// skip sources that already contributed.
type collection struct {
	photos []domain.PhotoCandidate
	seen   map[int64]bool
}

func (c *collection) full(cap int) bool {
	return len(c.photos) >= cap
}

// Combined is the default (auto) algorithm: replies first, then the main
// message's own attachment or gallery, then the trailing text-free run. Each
// phase stops the whole collection the instant the cap is reached.
func (p *PhotoCollector) Combined(ctx context.Context, c corpus.Corpus, main domain.Message) ([]domain.PhotoCandidate, error) {
	if err := os.MkdirAll(p.DownloadDir, 0o755); err != nil {
		return nil, fmt.Errorf("create download dir: %w", err)
	}
	col := &collection{seen: make(map[int64]bool)}

	if err := p.collectReplies(ctx, c, main, col); err != nil {
		return col.photos, err
	}
	if col.full(p.MaxPhotos) {
		return col.photos, nil
	}

	if err := p.collectMain(ctx, c, main, col); err != nil {
		return col.photos, err
	}
	if col.full(p.MaxPhotos) {
		return col.photos, nil
	}

	err := p.collectTrailing(ctx, c, main, col)
	return col.photos, err
}

// MainFirst is the manual algorithm: only the main attachment or gallery,
// topped up from the trailing run. Replies are never consulted.
func (p *PhotoCollector) MainFirst(ctx context.Context, c corpus.Corpus, main domain.Message) ([]domain.PhotoCandidate, error) {
	if err := os.MkdirAll(p.DownloadDir, 0o755); err != nil {
		return nil, fmt.Errorf("create download dir: %w", err)
	}
	col := &collection{seen: make(map[int64]bool)}

	if err := p.collectMain(ctx, c, main, col); err != nil {
		return col.photos, err
	}
	if col.full(p.MaxPhotos) {
		return col.photos, nil
	}

	err := p.collectTrailing(ctx, c, main, col)
	return col.photos, err
}

// collectReplies takes photo-bearing messages replying to the main message,
// the strongest explicit association with the product post.
func (p *PhotoCollector) collectReplies(ctx context.Context, c corpus.Corpus, main domain.Message, col *collection) error {
	msgs, err := c.Messages(ctx, corpus.Query{MinID: main.ID, MaxID: main.ID + replyScanWindow})
	if err != nil {
		return p.scanErr(ctx, "replies", err)
	}
	for _, m := range msgs {
		if m.ReplyTo != main.ID || !m.HasPhoto {
			continue
		}
		p.download(ctx, c, m, fmt.Sprintf("reply_%d_%d.jpg", main.ID, m.ID), col)
		if col.full(p.MaxPhotos) {
			return nil
		}
	}
	return ctx.Err()
}

// collectMain takes the main message's own photo, or every member of its
// gallery. Gallery members can be interleaved with other posts, hence the
// window in both directions.
func (p *PhotoCollector) collectMain(ctx context.Context, c corpus.Corpus, main domain.Message, col *collection) error {
	if main.GroupID == 0 {
		if main.HasPhoto && !col.seen[main.ID] {
			p.download(ctx, c, main, fmt.Sprintf("main_%d.jpg", main.ID), col)
		}
		return ctx.Err()
	}

	msgs, err := c.Messages(ctx, corpus.Query{MinID: main.ID - galleryScanWindow, MaxID: main.ID + galleryScanWindow})
	if err != nil {
		return p.scanErr(ctx, "gallery", err)
	}
	for _, m := range msgs {
		if m.GroupID != main.GroupID || !m.HasPhoto || col.seen[m.ID] {
			continue
		}
		p.download(ctx, c, m, fmt.Sprintf("maingroup_%d_%d.jpg", main.GroupID, m.ID), col)
		if col.full(p.MaxPhotos) {
			return nil
		}
	}
	return ctx.Err()
}

// collectTrailing takes photos posted right after the main message with no
// text. The first textual message ends the run: it belongs to the next post.
func (p *PhotoCollector) collectTrailing(ctx context.Context, c corpus.Corpus, main domain.Message, col *collection) error {
	msgs, err := c.Messages(ctx, corpus.Query{MinID: main.ID, MaxID: main.ID + trailingScanWindow})
	if err != nil {
		return p.scanErr(ctx, "trailing", err)
	}
	for _, m := range msgs {
		if strings.TrimSpace(m.Text) != "" {
			break
		}
		if !m.HasPhoto || col.seen[m.ID] {
			continue
		}
		p.download(ctx, c, m, fmt.Sprintf("after_%d_%d.jpg", main.ID, m.ID), col)
		if col.full(p.MaxPhotos) {
			return nil
		}
	}
	return ctx.Err()
}

// download fetches one candidate. A failure drops that candidate for the
// current phase only; the id is claimed on success, so a later phase may
// retry the same message. Each phase checks seen before downloading, which
// keeps one candidate per source message.
func (p *PhotoCollector) download(ctx context.Context, c corpus.Corpus, m domain.Message, name string, col *collection) {
	path, err := c.Download(ctx, m, p.DownloadDir, name)
	if err != nil {
		p.Logger.Debug("photo download failed", "message_id", m.ID, "error", err)
		return
	}
	col.seen[m.ID] = true
	col.photos = append(col.photos, domain.PhotoCandidate{Path: path, MessageID: m.ID})
}

// scanErr separates cancellation from scan failures: cancellation propagates,
// a failed scan only ends its own phase.
func (p *PhotoCollector) scanErr(ctx context.Context, phase string, err error) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	p.Logger.Warn("photo scan failed", "phase", phase, "error", err)
	return nil
}
