package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	api "github.com/ULLASCHANDERR/v0-professional-email-composer/cmd/api"
	composeUsecase "github.com/ULLASCHANDERR/v0-professional-email-composer/internal/compose/usecase"
	convRepo "github.com/ULLASCHANDERR/v0-professional-email-composer/internal/conversation/repository"
	convUsecase "github.com/ULLASCHANDERR/v0-professional-email-composer/internal/conversation/usecase"
	histRepo "github.com/ULLASCHANDERR/v0-professional-email-composer/internal/history/repository"
	histUsecase "github.com/ULLASCHANDERR/v0-professional-email-composer/internal/history/usecase"
	"github.com/ULLASCHANDERR/v0-professional-email-composer/pkg/ai"
	"github.com/ULLASCHANDERR/v0-professional-email-composer/pkg/config"
	"github.com/ULLASCHANDERR/v0-professional-email-composer/pkg/kvstore"
	"github.com/ULLASCHANDERR/v0-professional-email-composer/pkg/logger"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "email-composer-api",
		Short: "API backend for the AI-assisted professional email composer",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run()
		},
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogPretty)

	// Open the state store
	store, err := kvstore.OpenBolt(filepath.Join(cfg.DataDir, "composer.db"))
	if err != nil {
		return fmt.Errorf("open state store: %w", err)
	}
	defer store.Close()

	// Runtime Gemini settings (persisted credential + endpoint)
	api.InitGeminiSettings(store, api.GeminiSettings{
		ApiKey: cfg.GeminiApiKey,
		ApiURL: cfg.GeminiApiURL,
	})

	// Initialize repositories (dependency injection)
	conversationRepo, err := convRepo.NewKVConversationRepository(store)
	if err != nil {
		return fmt.Errorf("load conversations: %w", err)
	}
	historyRepo := histRepo.NewKVHistoryRepository(store)

	// Initialize the text-generation provider
	generator := ai.NewTextGenerator(ai.DynamicConfig{
		Provider:        ai.ProviderType(cfg.AIProvider),
		GetGeminiApiKey: api.GetGeminiApiKey,
		GetGeminiApiURL: api.GetGeminiApiURL,
		OllamaBaseURL:   cfg.OllamaBaseURL,
		OllamaModel:     cfg.OllamaModel,
	})

	// Initialize use cases
	conversationUc := convUsecase.NewConversationUsecase(conversationRepo)
	historyUc := histUsecase.NewHistoryUsecase(historyRepo)
	composeUc := composeUsecase.NewComposeUsecase(generator)

	// Initialize HTTP handler
	handler := api.NewHandler(conversationUc, historyUc, composeUc)

	log.Info().
		Str("port", cfg.Port).
		Str("provider", cfg.AIProvider).
		Msg("server starting")

	return handler.Start(":" + cfg.Port)
}
