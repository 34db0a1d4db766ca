package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"document-chatbot/config"
	_ "document-chatbot/docs" // Swagger docs
	memoryRepo "document-chatbot/internal/appointment/repository/memory"
	apptUsecase "document-chatbot/internal/appointment/usecase"
	tgDelivery "document-chatbot/internal/chat/delivery/telegram"
	chatUsecase "document-chatbot/internal/chat/usecase"
	qdrantRepo "document-chatbot/internal/document/repository/qdrant"
	docUsecase "document-chatbot/internal/document/usecase"
	formUsecase "document-chatbot/internal/form/usecase"
	"document-chatbot/internal/httpserver"
	"document-chatbot/internal/middleware"
	"document-chatbot/internal/router"
	"document-chatbot/pkg/datemath"
	"document-chatbot/pkg/gcalendar"
	"document-chatbot/pkg/groq"
	"document-chatbot/pkg/log"
	"document-chatbot/pkg/qdrant"
	"document-chatbot/pkg/telegram"
	"document-chatbot/pkg/voyage"
)

// @title       Document Chatbot API
// @description Chatbot that answers questions over ingested documents and books appointments conversationally.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Document Chatbot...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Qdrant URL: %s", cfg.Qdrant.URL)

	// 3. Upstream clients
	if cfg.Groq.APIKey == "" {
		logger.Warn(ctx, "GROQ_API_KEY missing: document answers will degrade to the fallback reply")
	}
	groqClient := groq.NewClient(cfg.Groq.APIKey)
	if cfg.Groq.Model != "" {
		groqClient.WithModel(cfg.Groq.Model)
	}

	voyageClient, err := voyage.NewClient(cfg.Voyage.APIKey)
	if err != nil {
		logger.Error(ctx, "Failed to initialize Voyage client (set VOYAGE_API_KEY): ", err)
		return
	}

	qdrantClient := qdrant.NewClient(cfg.Qdrant.URL, cfg.Qdrant.APIKey)
	if err := qdrantClient.EnsureCollection(ctx, cfg.Qdrant.CollectionName, cfg.Qdrant.VectorSize); err != nil {
		logger.Warnf(ctx, "Could not ensure Qdrant collection %q (will retry on first ingest): %v", cfg.Qdrant.CollectionName, err)
	}

	// DateMath parser
	dateMathParser, dtErr := datemath.NewParser(cfg.Chat.Timezone)
	if dtErr != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Chat.Timezone, dtErr)
		dateMathParser, _ = datemath.NewParser("UTC")
	}

	// Google Calendar client (optional)
	var calendarClient gcalendar.ICalendar
	if cfg.GoogleCalendar.CredentialsPath != "" {
		gcal, gcErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if gcErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", gcErr)
		} else {
			calendarClient = gcal
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 4. Domains
	vectorRepo := qdrantRepo.New(qdrantClient, voyageClient, cfg.Qdrant.CollectionName, logger)
	docUC := docUsecase.New(logger, groqClient, vectorRepo)

	apptRepo := memoryRepo.New(logger)
	apptUC := apptUsecase.New(logger, apptRepo, calendarClient)

	formEngine := formUsecase.New(logger, dateMathParser)
	intentRouter := router.New()

	chatUC := chatUsecase.New(logger, intentRouter, formEngine, docUC, apptUC)

	// 5. Telegram (optional)
	var telegramHandler tgDelivery.Handler
	if cfg.Telegram.BotToken != "" {
		telegramBot := telegram.NewBot(cfg.Telegram.BotToken)
		telegramHandler = tgDelivery.New(logger, chatUC, telegramBot)

		if cfg.Telegram.WebhookURL != "" {
			if whErr := telegramBot.SetWebhook(ctx, cfg.Telegram.WebhookURL); whErr != nil {
				logger.Warnf(ctx, "Failed to set Telegram webhook: %v", whErr)
			} else {
				logger.Infof(ctx, "Telegram webhook registered at %s", cfg.Telegram.WebhookURL)
			}
		}
	} else {
		logger.Warn(ctx, "Telegram skipped: TELEGRAM_BOT_TOKEN is missing")
	}

	// 6. HTTP Server
	mw := middleware.New(logger, cfg.Chat.RateLimitPerSec, cfg.Chat.RateLimitBurst)

	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		Middleware:      mw,
		ChatUC:          chatUC,
		DocumentUC:      docUC,
		AppointmentUC:   apptUC,
		TelegramHandler: telegramHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
