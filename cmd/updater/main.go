package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"feedreader/internal/config"
	"feedreader/internal/extract"
	"feedreader/internal/feedparse"
	"feedreader/internal/fetch"
	"feedreader/internal/publisher"
	"feedreader/internal/scheduler"
	"feedreader/internal/service"
	"feedreader/internal/storage/postgres"
)

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

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}
	logger.Info("connected to database")

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

	articleStore := postgres.NewArticleStore(db)
	articleTagStore := postgres.NewArticleTagStore(db)
	tagStore := postgres.NewTagStore(db)
	feedStore := postgres.NewFeedStore(db)
	feedUpdateStore := postgres.NewFeedUpdateStore(db)
	deletedStore := postgres.NewFeedDeletedArticleStore(db)
	fetchErrorStore := postgres.NewArticleFetchErrorStore(db)
	userStore := postgres.NewUserStore(db)
	txManager := postgres.NewTransactionManager(db)

	// Feeds and article pages get separate clients: feed documents may be
	// much larger than a single page.
	feedClient := fetch.NewClient(fetch.Config{
		UserAgent:      cfg.Fetch.UserAgent,
		Timeout:        cfg.Fetch.Timeout,
		MaxBodySize:    cfg.Fetch.MaxFeedFileSize,
		MaxAttempts:    cfg.Fetch.Retry.MaxAttempts,
		InitialBackoff: cfg.Fetch.Retry.InitialBackoff,
		MaxBackoff:     cfg.Fetch.Retry.MaxBackoff,
	}, logger)
	articleClient := fetch.NewClient(fetch.Config{
		UserAgent:      cfg.Fetch.UserAgent,
		Timeout:        cfg.Fetch.Timeout,
		MaxBodySize:    cfg.Fetch.MaxArticleFileSize,
		MaxAttempts:    cfg.Fetch.Retry.MaxAttempts,
		InitialBackoff: cfg.Fetch.Retry.InitialBackoff,
		MaxBackoff:     cfg.Fetch.Retry.MaxBackoff,
	}, logger)

	locator := feedparse.NewLocator(feedClient, cfg.Fetch.MaxFeedFileSize, logger)
	extractor := extract.NewExtractor(articleClient, cfg.Fetch.MaxArticleFileSize, logger)

	articleService := service.NewArticleService(
		articleStore,
		articleTagStore,
		tagStore,
		feedStore,
		deletedStore,
		fetchErrorStore,
		extractor,
		txManager,
		rabbitMQ,
		logger,
	)
	updateService := service.NewUpdateService(
		feedStore,
		feedUpdateStore,
		deletedStore,
		userStore,
		articleService,
		locator,
		logger,
		cfg.Update,
	)

	sched := scheduler.NewScheduler(updateService, cfg.Update.Interval, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	logger.Info("starting feed updater",
		"interval", cfg.Update.Interval,
		"max_concurrent_feeds", cfg.Update.MaxConcurrentFeeds,
	)

	if err := sched.Start(ctx); err != nil && err != context.Canceled {
		logger.Error("scheduler error", "error", err)
		os.Exit(1)
	}
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
