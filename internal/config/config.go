package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Corpus     CorpusConfig     `yaml:"corpus"`
	Catalog    CatalogConfig    `yaml:"catalog"`
	Assets     AssetsConfig     `yaml:"assets"`
	Checkpoint CheckpointConfig `yaml:"checkpoint"`
	RabbitMQ   RabbitMQConfig   `yaml:"rabbitmq"`
	Sync       SyncConfig       `yaml:"sync"`
	LogLevel   string           `yaml:"log_level"`
}

// CorpusConfig points at the two message corpora: the main channel and its
// comment group, both as Telegram Desktop export directories.
type CorpusConfig struct {
	MainExport    string `yaml:"main_export"`
	CommentExport string `yaml:"comment_export"`
	DownloadDir   string `yaml:"download_dir"`
}

type CatalogConfig struct {
	BaseURL  string        `yaml:"base_url"`
	Key      string        `yaml:"key"`
	Secret   string        `yaml:"secret"`
	Timeout  time.Duration `yaml:"timeout"`
	PageSize int           `yaml:"page_size"`
}

type AssetsConfig struct {
	UploadURL string        `yaml:"upload_url"`
	Preset    string        `yaml:"preset"`
	Folder    string        `yaml:"folder"`
	Timeout   time.Duration `yaml:"timeout"`
}

type CheckpointConfig struct {
	Backend  string         `yaml:"backend"` // "file" or "postgres"
	Path     string         `yaml:"path"`
	Database DatabaseConfig `yaml:"database"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

type RabbitMQConfig struct {
	URL        string `yaml:"url"`
	Exchange   string `yaml:"exchange"`
	RoutingKey string `yaml:"routing_key"`
	QueueName  string `yaml:"queue_name"`
}

type SyncConfig struct {
	OperationMode       string        `yaml:"operation_mode"` // "comments" or "manual"
	UpdateStrategy      string        `yaml:"update_strategy"`
	UpdateWhat          string        `yaml:"update_what"`
	UpdateDescription   *bool         `yaml:"update_description"`
	UpdatePhotos        *bool         `yaml:"update_photos"`
	MaxPhotos           int           `yaml:"max_photos"`
	MaxPhotoSizeMB      int           `yaml:"max_photo_size_mb"`
	AllowedExtensions   []string      `yaml:"allowed_extensions"`
	MinPhotosToSkip     int           `yaml:"min_photos_to_skip"`
	PhotoSkipStrategies []string      `yaml:"photo_skip_strategies"`
	PhotoSourceMode     string        `yaml:"photo_source_mode"`   // "auto" or "manual"
	PhotoSourceForced   string        `yaml:"photo_source_forced"` // "main" or "comments"
	DescriptionPriority ListOrString  `yaml:"description_source_priority"`
	StopWords           ListOrString  `yaml:"stop_words"`
	Tags                []string      `yaml:"tags"`
	SKUPreferSiteField  bool          `yaml:"sku_prefer_site_field"`
	SKUTakeFirstN       int           `yaml:"sku_take_first_n"`
	ScanLimit           int           `yaml:"scan_limit"`
	UploadRetries       int           `yaml:"upload_retries"`
	PauseBetweenItems   time.Duration `yaml:"pause_between_products"`
	PauseBetweenPhotos  time.Duration `yaml:"pause_between_photos"`
	Interval            time.Duration `yaml:"interval"` // 0 = run once
}

// ListOrString accepts either a YAML sequence or a single comma/semicolon
// separated string. Older settings files stored lists the second way.
type ListOrString []string

func (l *ListOrString) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.SequenceNode:
		var items []string
		if err := value.Decode(&items); err != nil {
			return err
		}
		*l = splitAndTrim(strings.Join(items, ","))
		return nil
	case yaml.ScalarNode:
		var s string
		if err := value.Decode(&s); err != nil {
			return err
		}
		*l = splitAndTrim(s)
		return nil
	default:
		return fmt.Errorf("expected list or string, got yaml kind %d", value.Kind)
	}
}

func splitAndTrim(s string) []string {
	var out []string
	for _, part := range strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ';' || r == '\n'
	}) {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, strings.ToLower(p))
		}
	}
	return out
}

func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.setDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) setDefaults() {
	if c.Corpus.DownloadDir == "" {
		c.Corpus.DownloadDir = "downloads"
	}
	if c.Catalog.Timeout == 0 {
		c.Catalog.Timeout = 60 * time.Second
	}
	if c.Catalog.PageSize == 0 {
		c.Catalog.PageSize = 100
	}
	if c.Assets.Folder == "" {
		c.Assets.Folder = "tg_import"
	}
	if c.Assets.Timeout == 0 {
		c.Assets.Timeout = 60 * time.Second
	}
	if c.Checkpoint.Backend == "" {
		c.Checkpoint.Backend = "file"
	}
	if c.Checkpoint.Path == "" {
		c.Checkpoint.Path = "updated_products.json"
	}
	if c.RabbitMQ.Exchange == "" {
		c.RabbitMQ.Exchange = "catalog_sync"
	}
	if c.RabbitMQ.RoutingKey == "" {
		c.RabbitMQ.RoutingKey = "products"
	}
	if c.RabbitMQ.QueueName == "" {
		c.RabbitMQ.QueueName = "product_sync_events"
	}
	if c.Sync.OperationMode == "" {
		c.Sync.OperationMode = "comments"
	}
	if c.Sync.UpdateStrategy == "" {
		c.Sync.UpdateStrategy = "only_new"
	}
	if c.Sync.UpdateWhat == "" {
		c.Sync.UpdateWhat = "both"
	}
	if c.Sync.UpdateDescription == nil {
		c.Sync.UpdateDescription = boolPtr(true)
	}
	if c.Sync.UpdatePhotos == nil {
		c.Sync.UpdatePhotos = boolPtr(true)
	}
	if c.Sync.MaxPhotos == 0 {
		c.Sync.MaxPhotos = 9
	}
	if c.Sync.MaxPhotoSizeMB == 0 {
		c.Sync.MaxPhotoSizeMB = 10
	}
	if len(c.Sync.AllowedExtensions) == 0 {
		c.Sync.AllowedExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}
	}
	if c.Sync.MinPhotosToSkip == 0 {
		c.Sync.MinPhotosToSkip = 9
	}
	if len(c.Sync.PhotoSkipStrategies) == 0 {
		c.Sync.PhotoSkipStrategies = []string{"only_new"}
	}
	if c.Sync.PhotoSourceMode == "" {
		c.Sync.PhotoSourceMode = "auto"
	}
	if c.Sync.PhotoSourceForced == "" {
		c.Sync.PhotoSourceForced = "main"
	}
	if len(c.Sync.DescriptionPriority) == 0 {
		c.Sync.DescriptionPriority = ListOrString{"comments", "main"}
	}
	if c.Sync.SKUTakeFirstN == 0 {
		c.Sync.SKUTakeFirstN = 6
	}
	if c.Sync.ScanLimit == 0 {
		c.Sync.ScanLimit = 1000
	}
	if c.Sync.UploadRetries == 0 {
		c.Sync.UploadRetries = 3
	}
	if c.Sync.PauseBetweenItems == 0 {
		c.Sync.PauseBetweenItems = 15 * time.Second
	}
	if c.Sync.PauseBetweenPhotos == 0 {
		c.Sync.PauseBetweenPhotos = 2 * time.Second
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// Validate checks every enumerated field once at load so the rest of the code
// never has to coerce or re-check configuration values.
func (c *Config) Validate() error {
	if err := oneOf("sync.operation_mode", c.Sync.OperationMode, "comments", "manual"); err != nil {
		return err
	}
	if err := oneOf("sync.update_strategy", c.Sync.UpdateStrategy, "only_new", "only_updated", "all"); err != nil {
		return err
	}
	if err := oneOf("sync.update_what", c.Sync.UpdateWhat, "both", "photos", "description"); err != nil {
		return err
	}
	if err := oneOf("sync.photo_source_mode", c.Sync.PhotoSourceMode, "auto", "manual"); err != nil {
		return err
	}
	if err := oneOf("sync.photo_source_forced", c.Sync.PhotoSourceForced, "main", "comments"); err != nil {
		return err
	}
	if err := oneOf("checkpoint.backend", c.Checkpoint.Backend, "file", "postgres"); err != nil {
		return err
	}
	for _, src := range c.Sync.DescriptionPriority {
		if src != "comments" && src != "main" {
			return fmt.Errorf("sync.description_source_priority: unknown source %q", src)
		}
	}
	for i, ext := range c.Sync.AllowedExtensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		c.Sync.AllowedExtensions[i] = ext
	}
	if c.Sync.MaxPhotos < 1 {
		return fmt.Errorf("sync.max_photos must be positive, got %d", c.Sync.MaxPhotos)
	}
	return nil
}

// Wanted resolves the configured update scope into the per-aspect toggles.
func (s SyncConfig) Wanted() (desc, photos bool) {
	switch s.UpdateWhat {
	case "photos":
		return false, true
	case "description":
		return true, false
	default:
		return *s.UpdateDescription, *s.UpdatePhotos
	}
}

func boolPtr(b bool) *bool { return &b }

func oneOf(field, got string, allowed ...string) error {
	for _, a := range allowed {
		if got == a {
			return nil
		}
	}
	return fmt.Errorf("%s: %q is not one of %s", field, got, strings.Join(allowed, "|"))
}
