// Package export adapts a Telegram Desktop channel export (the directory
// holding result.json and its photos/ subtree) into a corpus.Corpus. Working
// off an export keeps the wire-level messaging client out of this repo; the
// export is produced by the official desktop app.
package export

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"catalog_sync/internal/corpus"
	"catalog_sync/internal/domain"
)

type Corpus struct {
	dir      string
	messages []domain.Message
	photos   map[int64]string // message id -> photo path relative to dir
	logger   *slog.Logger
}

type exportFile struct {
	Name     string          `json:"name"`
	Type     string          `json:"type"`
	ID       int64           `json:"id"`
	Messages []exportMessage `json:"messages"`
}

type exportMessage struct {
	ID        int64           `json:"id"`
	Type      string          `json:"type"`
	Text      json.RawMessage `json:"text"`
	Photo     string          `json:"photo"`
	ReplyTo   int64           `json:"reply_to_message_id"`
	GroupedID int64           `json:"grouped_id"`
}

// Open reads dir/result.json and builds the corpus. Service messages are
// skipped; messages come out sorted by ascending id.
func Open(dir string, logger *slog.Logger) (*Corpus, error) {
	path := filepath.Join(dir, "result.json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read export: %w", err)
	}

	var file exportFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse export %s: %w", path, err)
	}

	c := &Corpus{
		dir:    dir,
		photos: make(map[int64]string),
		logger: logger.With("export", file.Name),
	}

	for _, em := range file.Messages {
		if em.Type != "" && em.Type != "message" {
			continue
		}
		m := domain.Message{
			ID:       em.ID,
			Text:     flattenText(em.Text),
			HasPhoto: em.Photo != "",
			ReplyTo:  em.ReplyTo,
			GroupID:  em.GroupedID,
		}
		c.messages = append(c.messages, m)
		if em.Photo != "" {
			c.photos[em.ID] = em.Photo
		}
	}
	sort.Slice(c.messages, func(i, j int) bool { return c.messages[i].ID < c.messages[j].ID })

	c.logger.Info("loaded export", "messages", len(c.messages), "photos", len(c.photos))
	return c, nil
}

// flattenText handles the two shapes the export uses: a plain string, or an
// array mixing strings and {"type": ..., "text": ...} entity objects.
func flattenText(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	var parts []json.RawMessage
	if err := json.Unmarshal(raw, &parts); err != nil {
		return ""
	}

	var sb strings.Builder
	for _, part := range parts {
		var ps string
		if err := json.Unmarshal(part, &ps); err == nil {
			sb.WriteString(ps)
			continue
		}
		var ent struct {
			Text string `json:"text"`
		}
		if err := json.Unmarshal(part, &ent); err == nil {
			sb.WriteString(ent.Text)
		}
	}
	return sb.String()
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

// Download copies the exported photo file into destDir. The export already
// holds the bytes locally, so "download" is a copy.
func (c *Corpus) Download(ctx context.Context, msg domain.Message, destDir, name string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	rel, ok := c.photos[msg.ID]
	if !ok {
		return "", fmt.Errorf("message %d has no photo", msg.ID)
	}

	src, err := os.Open(filepath.Join(c.dir, rel))
	if err != nil {
		return "", fmt.Errorf("open exported photo: %w", err)
	}
	defer src.Close()

	dest := filepath.Join(destDir, name)
	out, err := os.Create(dest)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", dest, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		os.Remove(dest)
		return "", fmt.Errorf("copy photo: %w", err)
	}
	return dest, nil
}
