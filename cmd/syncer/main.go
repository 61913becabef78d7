package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"catalog_sync/internal/assets"
	"catalog_sync/internal/catalog/woocommerce"
	"catalog_sync/internal/checkpoint"
	"catalog_sync/internal/config"
	"catalog_sync/internal/corpus"
	"catalog_sync/internal/corpus/export"
	"catalog_sync/internal/publisher"
	"catalog_sync/internal/resolve"
	"catalog_sync/internal/scheduler"
	"catalog_sync/internal/service"
	"catalog_sync/internal/storage/postgres"
	"catalog_sync/internal/uploader"
)

// corpora adapts the configured export directories to the provider the
// orchestrator consumes. A nil entry means that corpus is not configured.
type corpora struct {
	main     corpus.Corpus
	comments corpus.Corpus
}

func (c corpora) Main() corpus.Corpus     { return c.main }
func (c corpora) Comments() corpus.Corpus { return c.comments }

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	logger := setupLogger("info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	provider, err := openCorpora(cfg.Corpus, logger)
	if err != nil {
		logger.Error("failed to open corpora", "error", err)
		os.Exit(1)
	}

	checkpoints, cleanup, err := openCheckpoints(cfg.Checkpoint, logger)
	if err != nil {
		logger.Error("failed to open checkpoint store", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	var events service.Publisher
	if cfg.RabbitMQ.URL != "" {
		rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
			URL:        cfg.RabbitMQ.URL,
			Exchange:   cfg.RabbitMQ.Exchange,
			RoutingKey: cfg.RabbitMQ.RoutingKey,
			QueueName:  cfg.RabbitMQ.QueueName,
		}, logger)
		if err != nil {
			logger.Error("failed to connect to rabbitmq", "error", err)
			os.Exit(1)
		}
		defer rabbitMQ.Close()
		events = rabbitMQ
	}

	catalog := woocommerce.New(woocommerce.Config{
		BaseURL:  cfg.Catalog.BaseURL,
		Key:      cfg.Catalog.Key,
		Secret:   cfg.Catalog.Secret,
		Timeout:  cfg.Catalog.Timeout,
		PageSize: cfg.Catalog.PageSize,
	}, logger)

	host := assets.New(assets.Config{
		UploadURL: cfg.Assets.UploadURL,
		Preset:    cfg.Assets.Preset,
		Timeout:   cfg.Assets.Timeout,
	}, logger)

	pipeline := uploader.New(host, uploader.Config{
		AllowedExtensions: cfg.Sync.AllowedExtensions,
		MaxSizeMB:         cfg.Sync.MaxPhotoSizeMB,
		Folder:            cfg.Assets.Folder,
		Retries:           cfg.Sync.UploadRetries,
		RetryDelay:        2 * time.Second,
	}, logger)

	if err := os.MkdirAll(cfg.Corpus.DownloadDir, 0o755); err != nil {
		logger.Error("failed to create download dir", "error", err)
		os.Exit(1)
	}

	orchestrator := service.NewOrchestrator(
		catalog,
		provider,
		resolve.MainMessageResolver{ScanLimit: cfg.Sync.ScanLimit},
		&resolve.PhotoCollector{
			MaxPhotos:   cfg.Sync.MaxPhotos,
			DownloadDir: cfg.Corpus.DownloadDir,
			Logger:      logger,
		},
		resolve.DescriptionSelector{
			Priority:  cfg.Sync.DescriptionPriority,
			StopWords: cfg.Sync.StopWords,
		},
		pipeline,
		checkpoints,
		events,
		service.NewGate(),
		logger,
		cfg.Sync,
	)

	sched := scheduler.NewScheduler(orchestrator, cfg.Sync.Interval, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	// SIGUSR1 toggles the pause gate between products.
	go func() {
		gate := orchestrator.Gate()
		pauseCh := make(chan os.Signal, 1)
		signal.Notify(pauseCh, syscall.SIGUSR1)
		for range pauseCh {
			if gate.Paused() {
				gate.Resume()
				logger.Info("sync resumed")
			} else {
				gate.Pause()
				logger.Info("sync paused")
			}
		}
	}()

	logger.Info("starting catalog syncer",
		"mode", cfg.Sync.OperationMode,
		"strategy", cfg.Sync.UpdateStrategy,
		"interval", cfg.Sync.Interval,
	)

	if err := sched.Start(ctx); err != nil && err != context.Canceled {
		logger.Error("scheduler error", "error", err)
		os.Exit(1)
	}
}

func openCorpora(cfg config.CorpusConfig, logger *slog.Logger) (corpora, error) {
	var c corpora
	if cfg.MainExport != "" {
		main, err := export.Open(cfg.MainExport, logger)
		if err != nil {
			return c, err
		}
		c.main = main
	}
	if cfg.CommentExport != "" {
		comments, err := export.Open(cfg.CommentExport, logger)
		if err != nil {
			return c, err
		}
		c.comments = comments
	}
	return c, nil
}

func openCheckpoints(cfg config.CheckpointConfig, logger *slog.Logger) (service.CheckpointStore, func(), error) {
	if cfg.Backend == "postgres" {
		db, err := sqlx.Connect("postgres", cfg.Database.DSN())
		if err != nil {
			return nil, nil, err
		}
		logger.Info("connected to database")
		return postgres.NewCheckpointStore(db), func() { db.Close() }, nil
	}
	return checkpoint.NewFileStore(cfg.Path), func() {}, nil
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
