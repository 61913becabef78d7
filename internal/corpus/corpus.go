// Package corpus defines the read contract over a message collection scope
// (main channel or comment group) and the adapters that implement it.
package corpus

import (
	"context"
	"strings"

	"catalog_sync/internal/domain"
)

// Query bounds one scan. MinID and MaxID are exclusive; zero means unbounded
// on that side. Search is an optional case-insensitive substring filter over
// message text. Limit caps the number of returned messages, zero = no cap.
type Query struct {
	MinID  int64
	MaxID  int64
	Search string
	Limit  int
}

// Corpus is a message collection the resolvers scan. Implementations must
// return messages in ascending id order; phase truncation under the photo cap
// depends on it.
type Corpus interface {
	// Messages runs one bounded scan. Scans are finite by construction:
	// callers always pass an id window, a limit, or both.
	Messages(ctx context.Context, q Query) ([]domain.Message, error)

	// Download fetches the photo attachment of msg into destDir under the
	// given file name and returns the local path. Failing is expected and
	// non-fatal to callers.
	Download(ctx context.Context, msg domain.Message, destDir, name string) (string, error)
}

// Matches reports whether m passes the query bounds and search filter.
// Shared by the in-process adapters.
func (q Query) Matches(m domain.Message) bool {
	if q.MinID != 0 && m.ID <= q.MinID {
		return false
	}
	if q.MaxID != 0 && m.ID >= q.MaxID {
		return false
	}
	if q.Search != "" && !strings.Contains(strings.ToLower(m.Text), strings.ToLower(q.Search)) {
		return false
	}
	return true
}
