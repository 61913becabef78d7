// Package uploader pushes local image files to an asset host: normalize,
// validate, then upload with a bounded number of attempts.
package uploader

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// AssetHost is the consumed upload primitive: local file in, public URL out.
type AssetHost interface {
	Upload(ctx context.Context, path, folder string) (string, error)
}

type Config struct {
	AllowedExtensions []string
	MaxSizeMB         int
	Folder            string
	Retries           int
	RetryDelay        time.Duration
}

type Pipeline struct {
	host   AssetHost
	cfg    Config
	logger *slog.Logger
}

func New(host AssetHost, cfg Config, logger *slog.Logger) *Pipeline {
	if cfg.Retries <= 0 {
		cfg.Retries = 3
	}
	return &Pipeline{host: host, cfg: cfg, logger: logger}
}

// Upload normalizes the file and attempts the upload up to the configured
// retry count, with a fixed delay between attempts. Validation runs before
// every attempt and a validation failure abandons the candidate immediately,
// no retry. A temporary normalized file never outlives the call, success or
// not; the source file is left for the caller to clean up.
func (p *Pipeline) Upload(ctx context.Context, path string) (string, error) {
	prepared, isTemp, err := NormalizeImage(path, p.cfg.AllowedExtensions)
	if err != nil {
		return "", fmt.Errorf("prepare image: %w", err)
	}
	if isTemp {
		defer os.Remove(prepared)
	}

	base := filepath.Base(prepared)
	var lastErr error
	for attempt := 1; attempt <= p.cfg.Retries; attempt++ {
		if err := p.validate(prepared); err != nil {
			return "", fmt.Errorf("validate %s: %w", base, err)
		}

		url, err := p.host.Upload(ctx, prepared, p.cfg.Folder)
		if err == nil {
			return url, nil
		}
		lastErr = err
		p.logger.Warn("upload attempt failed", "file", base, "attempt", attempt, "error", err)

		if attempt < p.cfg.Retries {
			if err := sleepWithContext(ctx, p.cfg.RetryDelay); err != nil {
				return "", err
			}
		}
	}
	return "", fmt.Errorf("upload %s after %d attempts: %w", base, p.cfg.Retries, lastErr)
}

func (p *Pipeline) validate(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if p.cfg.MaxSizeMB > 0 {
		if sizeMB := float64(info.Size()) / (1024 * 1024); sizeMB > float64(p.cfg.MaxSizeMB) {
			return fmt.Errorf("file is %.1fMB, limit %dMB", sizeMB, p.cfg.MaxSizeMB)
		}
	}
	ext := strings.ToLower(filepath.Ext(path))
	if !containsExt(p.cfg.AllowedExtensions, ext) {
		return fmt.Errorf("extension %q not allowed", ext)
	}
	return nil
}

func sleepWithContext(ctx context.Context, delay time.Duration) error {
	if delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
