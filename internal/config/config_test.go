package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "{}"))
	require.NoError(t, err)

	assert.Equal(t, "comments", cfg.Sync.OperationMode)
	assert.Equal(t, "only_new", cfg.Sync.UpdateStrategy)
	assert.Equal(t, "both", cfg.Sync.UpdateWhat)
	assert.Equal(t, 9, cfg.Sync.MaxPhotos)
	assert.Equal(t, 10, cfg.Sync.MaxPhotoSizeMB)
	assert.Equal(t, []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}, cfg.Sync.AllowedExtensions)
	assert.Equal(t, 9, cfg.Sync.MinPhotosToSkip)
	assert.Equal(t, []string{"only_new"}, cfg.Sync.PhotoSkipStrategies)
	assert.Equal(t, ListOrString{"comments", "main"}, cfg.Sync.DescriptionPriority)
	assert.Equal(t, 6, cfg.Sync.SKUTakeFirstN)
	assert.Equal(t, 1000, cfg.Sync.ScanLimit)
	assert.Equal(t, 15*time.Second, cfg.Sync.PauseBetweenItems)
	assert.Equal(t, 2*time.Second, cfg.Sync.PauseBetweenPhotos)
	assert.Equal(t, "file", cfg.Checkpoint.Backend)
	assert.Equal(t, "updated_products.json", cfg.Checkpoint.Path)
	assert.Equal(t, "info", cfg.LogLevel)

	desc, photos := cfg.Sync.Wanted()
	assert.True(t, desc)
	assert.True(t, photos)
}

func TestLoad_ListOrString(t *testing.T) {
	t.Run("comma separated string", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, `
sync:
  stop_words: "Price, DELIVERY ;  наличие"
`))
		require.NoError(t, err)
		assert.Equal(t, ListOrString{"price", "delivery", "наличие"}, cfg.Sync.StopWords)
	})

	t.Run("yaml sequence", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, `
sync:
  stop_words:
    - Price
    - Delivery
`))
		require.NoError(t, err)
		assert.Equal(t, ListOrString{"price", "delivery"}, cfg.Sync.StopWords)
	})

	t.Run("priority list from string", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, `
sync:
  description_source_priority: "main,comments"
`))
		require.NoError(t, err)
		assert.Equal(t, ListOrString{"main", "comments"}, cfg.Sync.DescriptionPriority)
	})
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"bad operation mode", "sync:\n  operation_mode: webhooks\n"},
		{"bad strategy", "sync:\n  update_strategy: sometimes\n"},
		{"bad update scope", "sync:\n  update_what: everything\n"},
		{"bad photo source mode", "sync:\n  photo_source_mode: psychic\n"},
		{"bad checkpoint backend", "checkpoint:\n  backend: redis\n"},
		{"bad priority source", "sync:\n  description_source_priority: \"comments,reviews\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestLoad_ExtensionNormalization(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
sync:
  allowed_extensions:
    - JPG
    - .Png
`))
	require.NoError(t, err)
	assert.Equal(t, []string{".jpg", ".png"}, cfg.Sync.AllowedExtensions)
}

func TestLoad_EnvExpansion(t *testing.T) {
	t.Setenv("TEST_CATALOG_KEY", "ck_secret")

	cfg, err := Load(writeConfig(t, `
catalog:
  key: ${TEST_CATALOG_KEY}
`))
	require.NoError(t, err)
	assert.Equal(t, "ck_secret", cfg.Catalog.Key)
}

func TestSyncConfig_Wanted(t *testing.T) {
	yes, no := true, false

	tests := []struct {
		name       string
		cfg        SyncConfig
		wantDesc   bool
		wantPhotos bool
	}{
		{"photos only", SyncConfig{UpdateWhat: "photos", UpdateDescription: &yes, UpdatePhotos: &yes}, false, true},
		{"description only", SyncConfig{UpdateWhat: "description", UpdateDescription: &yes, UpdatePhotos: &yes}, true, false},
		{"both honors toggles", SyncConfig{UpdateWhat: "both", UpdateDescription: &no, UpdatePhotos: &yes}, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			desc, photos := tt.cfg.Wanted()
			assert.Equal(t, tt.wantDesc, desc)
			assert.Equal(t, tt.wantPhotos, photos)
		})
	}
}
