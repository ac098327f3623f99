package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"ai-chatbot/config"
	"ai-chatbot/config/postgre"
	chatDomain "ai-chatbot/internal/chat"
	chatUsecase "ai-chatbot/internal/chat/usecase"
	"ai-chatbot/internal/classifier"
	"ai-chatbot/internal/conversation"
	conversationRepo "ai-chatbot/internal/conversation/repository/postgre"
	conversationUsecase "ai-chatbot/internal/conversation/usecase"
	intentRepo "ai-chatbot/internal/intent/repository/postgre"
	intentUsecase "ai-chatbot/internal/intent/usecase"
	"ai-chatbot/pkg/log"
)

// main runs the chatbot as a local terminal REPL against the same store
// and pipeline the HTTP server uses. Type quit or exit to leave; a
// confident "bye" also ends the session.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	logger := log.Init(log.ZapConfig{
		Level:        "warn", // keep the REPL quiet
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()

	postgresDB, err := postgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		fmt.Println("Failed to connect to PostgreSQL: ", err)
		return
	}
	defer postgre.Disconnect(ctx, postgresDB)

	engine := classifier.NewEngine(logger)
	responder := classifier.NewResponder(
		cfg.Classifier.ConfidenceThreshold,
		cfg.Responder.FallbackText,
		cfg.Responder.Seed,
	)

	intentUC := intentUsecase.New(intentRepo.New(postgresDB, logger), logger)
	conversationUC := conversationUsecase.New(
		conversationRepo.New(postgresDB, logger),
		cfg.Classifier.ConfidenceThreshold,
		logger,
	)
	chatUC := chatUsecase.New(engine, responder, intentUC, conversationUC, chatUsecase.EnrichConfig{
		DefaultCity: cfg.Weather.DefaultCity,
		DefaultCoin: cfg.Crypto.DefaultCoin,
		CacheTTL:    time.Duration(cfg.Chat.EnrichCacheTTLSeconds) * time.Second,
	}, logger)

	trainOut, err := chatUC.Train(ctx)
	if err != nil {
		fmt.Println("Training failed: ", err)
		return
	}
	fmt.Printf("Trained on %d examples across %d intents. Say something (quit/exit to leave).\n",
		trainOut.Examples, trainOut.Intents)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("you> ")
		if !scanner.Scan() {
			break
		}
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		if text == "quit" || text == "exit" {
			fmt.Println("bot> Goodbye!")
			break
		}

		out, err := chatUC.Send(ctx, chatDomain.SendInput{
			Text:    text,
			Channel: conversation.ChannelCLI,
		})
		if err != nil {
			fmt.Println("bot> Something went wrong: ", err)
			continue
		}

		fmt.Printf("bot> %s\n", out.Reply)

		// A confident goodbye ends the session, same as the bot promises.
		if out.Intent == "bye" && !out.Fallback {
			break
		}
	}
}
