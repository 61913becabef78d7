package uploader

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeHost fails the first failures calls and then returns a fixed URL.
type fakeHost struct {
	failures int
	calls    int
	paths    []string
}

func (f *fakeHost) Upload(ctx context.Context, path, folder string) (string, error) {
	f.calls++
	f.paths = append(f.paths, path)
	if f.calls <= f.failures {
		return "", errors.New("host unavailable")
	}
	return "https://cdn.example.com/img.jpg", nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func writePNG(t *testing.T, path string) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(1, 1, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
}

func TestPipeline_Upload(t *testing.T) {
	ctx := context.Background()
	allowed := []string{".jpg", ".jpeg", ".png"}

	t.Run("success on first attempt", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "photo.png")
		writePNG(t, path)

		host := &fakeHost{}
		p := New(host, Config{AllowedExtensions: allowed, Retries: 3}, testLogger())

		url, err := p.Upload(ctx, path)
		require.NoError(t, err)
		assert.Equal(t, "https://cdn.example.com/img.jpg", url)
		assert.Equal(t, 1, host.calls)
	})

	t.Run("retries until the host recovers", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "photo.png")
		writePNG(t, path)

		host := &fakeHost{failures: 2}
		p := New(host, Config{AllowedExtensions: allowed, Retries: 3, RetryDelay: time.Millisecond}, testLogger())

		url, err := p.Upload(ctx, path)
		require.NoError(t, err)
		assert.NotEmpty(t, url)
		assert.Equal(t, 3, host.calls)
	})

	t.Run("gives up after the retry budget", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "photo.png")
		writePNG(t, path)

		host := &fakeHost{failures: 10}
		p := New(host, Config{AllowedExtensions: allowed, Retries: 2, RetryDelay: time.Millisecond}, testLogger())

		_, err := p.Upload(ctx, path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "after 2 attempts")
		assert.Equal(t, 2, host.calls)
	})

	t.Run("disallowed format converts to jpeg", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "photo.png")
		writePNG(t, path)

		host := &fakeHost{}
		p := New(host, Config{AllowedExtensions: []string{".jpg", ".jpeg"}, Retries: 1}, testLogger())

		_, err := p.Upload(ctx, path)
		require.NoError(t, err)
		require.Len(t, host.paths, 1)
		assert.True(t, strings.HasSuffix(host.paths[0], ".converted.jpg"))

		// Temp gone after a successful upload, original untouched.
		_, statErr := os.Stat(host.paths[0])
		assert.True(t, os.IsNotExist(statErr))
		_, statErr = os.Stat(path)
		assert.NoError(t, statErr)
	})

	t.Run("conversion temp removed when upload abandoned", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "photo.png")
		writePNG(t, path)

		host := &fakeHost{failures: 10}
		p := New(host, Config{AllowedExtensions: []string{".jpg", ".jpeg"}, Retries: 2, RetryDelay: time.Millisecond}, testLogger())

		_, err := p.Upload(ctx, path)
		require.Error(t, err)

		leftovers, globErr := filepath.Glob(filepath.Join(dir, "*.converted.jpg"))
		require.NoError(t, globErr)
		assert.Empty(t, leftovers)
		_, statErr := os.Stat(path)
		assert.NoError(t, statErr)
	})

	t.Run("oversize file abandoned without retry", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "big.jpg")
		require.NoError(t, os.WriteFile(path, make([]byte, 2<<20), 0o644))

		host := &fakeHost{}
		p := New(host, Config{AllowedExtensions: allowed, MaxSizeMB: 1, Retries: 3}, testLogger())

		_, err := p.Upload(ctx, path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "limit 1MB")
		assert.Equal(t, 0, host.calls)
	})

	t.Run("cancellation during retry delay", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "photo.png")
		writePNG(t, path)

		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		host := &fakeHost{failures: 10}
		p := New(host, Config{AllowedExtensions: allowed, Retries: 3, RetryDelay: time.Minute}, testLogger())

		_, err := p.Upload(cancelled, path)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("undecodable file fails normalization", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "photo.bmp")
		require.NoError(t, os.WriteFile(path, []byte("not an image"), 0o644))

		host := &fakeHost{}
		p := New(host, Config{AllowedExtensions: allowed, Retries: 1}, testLogger())

		_, err := p.Upload(ctx, path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "prepare image")
		assert.Equal(t, 0, host.calls)
	})
}

func TestNormalizeImage(t *testing.T) {
	t.Run("allowed non-jpeg passes through", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "photo.png")
		writePNG(t, path)

		out, isTemp, err := NormalizeImage(path, []string{".png"})
		require.NoError(t, err)
		assert.Equal(t, path, out)
		assert.False(t, isTemp)
	})

	t.Run("jpeg with broken content passes through", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "photo.jpg")
		require.NoError(t, os.WriteFile(path, []byte("garbage"), 0o644))

		out, isTemp, err := NormalizeImage(path, []string{".jpg"})
		require.NoError(t, err)
		assert.Equal(t, path, out)
		assert.False(t, isTemp)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, []byte("garbage"), data)
	})

	t.Run("conversion produces a decodable jpeg", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "photo.png")
		writePNG(t, path)

		out, isTemp, err := NormalizeImage(path, []string{".jpg"})
		require.NoError(t, err)
		assert.True(t, isTemp)

		img, err := decodeFile(out)
		require.NoError(t, err)
		assert.Equal(t, 4, img.Bounds().Dx())
	})
}
