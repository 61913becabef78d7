package uploader

import (
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"strings"

	_ "image/gif"
	_ "image/png"

	_ "golang.org/x/image/webp"
)

const jpegQuality = 85

// NormalizeImage prepares a downloaded file for upload. Files outside the
// allowed extension set are decoded and re-encoded as JPEG next to the
// original (the returned temp flag is true, the original stays untouched).
// Files already in an allowed compressed photographic format are re-encoded
// in place to enforce a consistent quality setting; when that fails the
// original passes through as-is.
func NormalizeImage(path string, allowed []string) (string, bool, error) {
	ext := strings.ToLower(filepath.Ext(path))

	if containsExt(allowed, ext) {
		if ext == ".jpg" || ext == ".jpeg" {
			reencodeInPlace(path)
		}
		return path, false, nil
	}

	img, err := decodeFile(path)
	if err != nil {
		return "", false, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}

	converted := path + ".converted.jpg"
	if err := encodeJPEG(converted, img); err != nil {
		return "", false, fmt.Errorf("convert %s: %w", filepath.Base(path), err)
	}
	return converted, true, nil
}

// reencodeInPlace rewrites a jpeg at the standard quality. Best effort: any
// failure leaves the original file alone.
func reencodeInPlace(path string) {
	img, err := decodeFile(path)
	if err != nil {
		return
	}
	tmp := path + ".prepared.jpg"
	if err := encodeJPEG(tmp, img); err != nil {
		os.Remove(tmp)
		return
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
	}
}

func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	return img, err
}

func encodeJPEG(path string, img image.Image) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := jpeg.Encode(out, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		out.Close()
		os.Remove(path)
		return err
	}
	return out.Close()
}

func containsExt(allowed []string, ext string) bool {
	for _, a := range allowed {
		if a == ext {
			return true
		}
	}
	return false
}
