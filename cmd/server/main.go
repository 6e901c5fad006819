package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"quotebot/internal/catalog"
	"quotebot/internal/catalog/importer"
	"quotebot/internal/catalog/repository"
	"quotebot/internal/config"
	"quotebot/internal/delivery/telegram"
	"quotebot/internal/infrastructure/logger"
	"quotebot/internal/infrastructure/mysql"
	"quotebot/internal/metrics"
	"quotebot/internal/quote"
	"quotebot/internal/render"
	"quotebot/internal/server"
	"quotebot/internal/transcribe"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	db, err := mysql.NewConnection(cfg.Database)
	if err != nil {
		zapLogger.Fatal("connecting to database", zap.Error(err))
	}
	defer db.Close()
	zapLogger.Info("database connected")

	catalogRepo := repository.NewMySQLCatalogRepository(db)

	seedCtx, cancelSeed := context.WithTimeout(context.Background(), 30*time.Second)
	seeded, err := catalog.Seed(seedCtx, catalogRepo)
	cancelSeed()
	if err != nil {
		zapLogger.Fatal("seeding catalog", zap.Error(err))
	}
	if seeded > 0 {
		zapLogger.Info("catalog seeded", zap.Int("products", seeded))
	}

	if err := os.MkdirAll(cfg.Render.TempDir, 0o700); err != nil {
		zapLogger.Fatal("creating temp dir", zap.String("dir", cfg.Render.TempDir), zap.Error(err))
	}

	reg := metrics.NewRegistry()

	renderer, err := render.NewPDFRenderer(cfg.Render.FontPath, reg, zapLogger)
	if err != nil {
		zapLogger.Fatal("initializing renderer", zap.Error(err))
	}

	var transcriber transcribe.Transcriber = transcribe.Disabled{}
	if cfg.Transcribe.GeminiAPIKey != "" {
		gemini, err := transcribe.NewGeminiTranscriber(context.Background(), cfg.Transcribe.GeminiAPIKey)
		if err != nil {
			zapLogger.Fatal("initializing transcriber", zap.Error(err))
		}
		defer gemini.Close()
		transcriber = gemini
	} else {
		zapLogger.Warn("GEMINI_API_KEY not set, voice messages will use the placeholder")
	}

	quoteUseCase := quote.NewModule(db, renderer, reg, zapLogger)

	bot, err := telegram.NewBotHandler(
		cfg.Telegram.Token,
		quoteUseCase,
		transcriber,
		importer.NewExcelImporter(),
		catalogRepo,
		cfg.Telegram.AdminChatID,
		cfg.Render.TempDir,
		reg,
		zapLogger,
	)
	if err != nil {
		zapLogger.Fatal("creating telegram bot", zap.Error(err))
	}
	zapLogger.Info("telegram bot authorized", zap.String("username", bot.Username()))

	botCtx, cancelBot := context.WithCancel(context.Background())
	defer cancelBot()

	go func() {
		if err := bot.Start(botCtx); err != nil && err != context.Canceled {
			zapLogger.Error("bot update loop stopped", zap.Error(err))
		}
	}()

	srv := server.New(cfg.Server.Port, server.NewRouter(reg), zapLogger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			zapLogger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit
	zapLogger.Info("received shutdown signal")

	cancelBot()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Fatal("server shutdown failed", zap.Error(err))
	}

	zapLogger.Info("server stopped gracefully")
}
