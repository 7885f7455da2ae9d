package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/careercrafters/careercoach/internal/config"
	"github.com/careercrafters/careercoach/internal/journey"
	"github.com/careercrafters/careercoach/internal/llm"
	"github.com/careercrafters/careercoach/internal/logger"
	"github.com/careercrafters/careercoach/internal/server"
)

var (
	servePort       int
	serveConfigPath string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for the coaching journey: onboarding, roadmap, mock interviews, and the job dashboard.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config)")
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to JSON config file")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := &config.Config{}
	if serveConfigPath != "" {
		loaded, err := config.LoadConfig(serveConfigPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if servePort != 0 {
		cfg.Port = servePort
	}
	cfg.ApplyEnv()
	merged := cfg.MergeWithDefaults(config.Defaults())
	if err := merged.Validate(); err != nil {
		return err
	}
	if merged.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	log, err := logger.New(merged.LogJSON, merged.Debug)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	llmConfig := llm.DefaultGeminiConfig()
	if merged.ModelLite != "" {
		llmConfig = llmConfig.WithModel(llm.TierLite, merged.ModelLite)
	}
	if merged.ModelStandard != "" {
		llmConfig = llmConfig.WithModel(llm.TierStandard, merged.ModelStandard)
	}
	if merged.ModelAdvanced != "" {
		llmConfig = llmConfig.WithModel(llm.TierAdvanced, merged.ModelAdvanced)
	}

	client, err := llm.NewClient(context.Background(), llmConfig, merged.APIKey)
	if err != nil {
		return fmt.Errorf("failed to create oracle client: %w", err)
	}
	defer func() { _ = client.Close() }()

	controller := journey.NewController(client, journey.NewStore(), log)
	srv := server.New(server.Config{
		Port:        merged.Port,
		MaxUploadMB: merged.MaxUploadMB,
	}, controller, log)

	return srv.Start()
}
