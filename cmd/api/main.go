package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ai-chatbot/config"
	"ai-chatbot/config/postgre"
	_ "ai-chatbot/docs" // Swagger docs
	chatUsecase "ai-chatbot/internal/chat/usecase"
	"ai-chatbot/internal/classifier"
	conversationRepo "ai-chatbot/internal/conversation/repository/postgre"
	conversationUsecase "ai-chatbot/internal/conversation/usecase"
	"ai-chatbot/internal/httpserver"
	intentRepo "ai-chatbot/internal/intent/repository/postgre"
	intentUsecase "ai-chatbot/internal/intent/usecase"
	"ai-chatbot/pkg/coingecko"
	"ai-chatbot/pkg/log"
	"ai-chatbot/pkg/newsapi"
	"ai-chatbot/pkg/openweather"
	"ai-chatbot/pkg/telegram"

	tgDelivery "ai-chatbot/internal/chat/delivery/telegram"
)

// @title       AI Chatbot API
// @description Intent-classifying chatbot with a trainable TF-IDF + Naive Bayes model, canned responses and a conversation log.
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

	logger.Info(ctx, "Starting AI Chatbot...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Storage
	postgresDB, err := postgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
		return
	}
	defer postgre.Disconnect(ctx, postgresDB)

	// 4. Classifier core
	engine := classifier.NewEngine(logger)
	responder := classifier.NewResponder(
		cfg.Classifier.ConfidenceThreshold,
		cfg.Responder.FallbackText,
		cfg.Responder.Seed,
	)

	// 5. Domains
	intentUC := intentUsecase.New(intentRepo.New(postgresDB, logger), logger)
	conversationUC := conversationUsecase.New(
		conversationRepo.New(postgresDB, logger),
		cfg.Classifier.ConfidenceThreshold,
		logger,
	)

	// Live-data enrichment clients (all optional)
	enrich := chatUsecase.EnrichConfig{
		DefaultCity: cfg.Weather.DefaultCity,
		DefaultCoin: cfg.Crypto.DefaultCoin,
		CacheTTL:    time.Duration(cfg.Chat.EnrichCacheTTLSeconds) * time.Second,
	}
	if cfg.Weather.APIKey != "" {
		weatherClient, wErr := openweather.New(cfg.Weather.APIKey)
		if wErr != nil {
			logger.Warnf(ctx, "OpenWeatherMap not available (optional): %v", wErr)
		} else {
			enrich.Weather = weatherClient.WithBaseURL(cfg.Weather.BaseURL)
		}
	} else {
		logger.Warn(ctx, "WEATHER_API_KEY missing, weather intent serves canned responses only")
	}
	if cfg.News.APIKey != "" {
		newsClient, nErr := newsapi.New(cfg.News.APIKey)
		if nErr != nil {
			logger.Warnf(ctx, "NewsAPI not available (optional): %v", nErr)
		} else {
			enrich.News = newsClient.WithBaseURL(cfg.News.BaseURL)
		}
	} else {
		logger.Warn(ctx, "NEWS_API_KEY missing, news intent serves canned responses only")
	}
	enrich.Crypto = coingecko.New().WithBaseURL(cfg.Crypto.BaseURL)

	chatUC := chatUsecase.New(engine, responder, intentUC, conversationUC, enrich, logger)

	// 6. Telegram delivery (optional)
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
		logger.Warn(ctx, "TELEGRAM_BOT_TOKEN missing, Telegram delivery disabled")
	}

	// 7. Startup training. A store failure is not fatal: the server comes
	// up untrained and answers 503 on chat until a later train succeeds.
	if trainOut, trainErr := chatUC.Train(ctx); trainErr != nil {
		logger.Warnf(ctx, "Startup training failed, serving untrained: %v", trainErr)
	} else {
		logger.Infof(ctx, "Startup training done: %d intents, %d examples", trainOut.Intents, trainOut.Examples)
	}

	// 8. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		InternalKey:     cfg.InternalKey,
		RateLimitPerMin: cfg.Chat.RateLimitPerMin,
		IntentUC:        intentUC,
		ConversationUC:  conversationUC,
		ChatUC:          chatUC,
		TelegramHandler: telegramHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
