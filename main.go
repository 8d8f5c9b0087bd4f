package main

import (
	"time"

	"go.uber.org/zap"

	"github.com/creativeworkssakib-source/autofloy4-sub004/internal/classifier"
	"github.com/creativeworkssakib-source/autofloy4-sub004/internal/config"
	"github.com/creativeworkssakib-source/autofloy4-sub004/internal/gemini"
	"github.com/creativeworkssakib-source/autofloy4-sub004/internal/notifier"
	"github.com/creativeworkssakib-source/autofloy4-sub004/internal/orders"
	"github.com/creativeworkssakib-source/autofloy4-sub004/internal/processor"
	"github.com/creativeworkssakib-source/autofloy4-sub004/internal/repository"
	"github.com/creativeworkssakib-source/autofloy4-sub004/internal/resolver"
	"github.com/creativeworkssakib-source/autofloy4-sub004/internal/server"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer func() {
		_ = logger.Sync() // Flushes buffer, if any
	}()

	// Load configuration
	cfgPath := "configs/config.yml"
	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	// Database connection
	db, err := repository.NewPostgresDB(cfg.Database.URL, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Run migrations
	repository.MigrateDB(db, logger)

	// Initialize repositories
	rulesRepo := repository.NewPageRulesRepository(db, logger)
	conversationRepo := repository.NewConversationRepository(db, logger)
	productRepo := repository.NewProductRepository(db, logger)
	postLinkRepo := repository.NewPostLinkRepository(db, logger)
	orderRepo := repository.NewOrderRepository(db, logger)

	// Initialize the completion client
	completionClient, err := gemini.NewClient(gemini.Config{
		APIKey:     cfg.Gemini.APIKey,
		ModelName:  cfg.Gemini.ModelName,
		MaxRetries: cfg.Gemini.MaxRetries,
		Timeout:    time.Duration(cfg.Gemini.TimeoutSeconds) * time.Second,
	}, logger)
	if err != nil {
		logger.Fatal("Failed to initialize Gemini client", zap.Error(err))
	}
	defer completionClient.Close()

	// Initialize Telegram notifier (optional)
	bot, err := notifier.NewBot(cfg, logger)
	if err != nil {
		logger.Warn("Failed to initialize Telegram notifier, continuing without it", zap.Error(err))
		bot = nil
	}
	var orderNotifier processor.Notifier
	if bot != nil {
		orderNotifier = bot
	}

	// Initialize the event processor
	proc := processor.NewProcessor(
		rulesRepo,
		conversationRepo,
		classifier.New(nil),
		resolver.New(productRepo, postLinkRepo, logger),
		completionClient,
		orders.NewMaterializer(orderRepo, logger),
		orderNotifier,
		logger,
	)

	// Initialize and run the server
	srv := server.NewServer(db, cfg, proc, logger)
	if err := srv.Run(cfg.Server.Port); err != nil {
		logger.Fatal("Server failed to start", zap.Error(err))
	}
}
