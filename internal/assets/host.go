// Package assets talks to the asset host. The adapter targets the
// Cloudinary-style unsigned upload endpoint: multipart POST with an upload
// preset, JSON response carrying the public URL.
package assets

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

type Config struct {
	UploadURL string
	Preset    string
	Timeout   time.Duration
}

type Host struct {
	httpClient *http.Client
	uploadURL  string
	preset     string
	logger     *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *Host {
	return &Host{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		uploadURL:  cfg.UploadURL,
		preset:     cfg.Preset,
		logger:     logger,
	}
}

type uploadResponse struct {
	SecureURL string `json:"secure_url"`
	URL       string `json:"url"`
}

// Upload posts the file and returns its public URL. Retrying is the upload
// pipeline's job, one request per call here.
func (h *Host) Upload(ctx context.Context, path, folder string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	part, err := mw.CreateFormFile("file", filepath.Base(path))
	if err != nil {
		return "", fmt.Errorf("build form: %w", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return "", fmt.Errorf("read file: %w", err)
	}
	if err := mw.WriteField("upload_preset", h.preset); err != nil {
		return "", fmt.Errorf("build form: %w", err)
	}
	if folder != "" {
		if err := mw.WriteField("folder", folder); err != nil {
			return "", fmt.Errorf("build form: %w", err)
		}
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("build form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.uploadURL, &body)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := h.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("execute upload: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("upload rejected: status %d: %s", resp.StatusCode, raw)
	}

	var ur uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&ur); err != nil {
		return "", fmt.Errorf("decode upload response: %w", err)
	}
	if ur.SecureURL != "" {
		return ur.SecureURL, nil
	}
	if ur.URL != "" {
		return ur.URL, nil
	}
	return "", fmt.Errorf("upload response has no url")
}
