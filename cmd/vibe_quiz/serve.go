package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/vibe-quiz/internal/config"
	"github.com/jonathan/vibe-quiz/internal/logger"
	"github.com/jonathan/vibe-quiz/internal/server"
)

var (
	serveConfigPath string
	servePort       int
	serveOrigins    []string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start an HTTP server that exposes the deck, session, scoring, image and roster endpoints.

Configuration is read from --config (JSON or YAML), then environment variables, then defaults.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to config file (JSON or YAML)")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config and PORT)")
	serveCmd.Flags().StringSliceVar(&serveOrigins, "allowed-origins", nil, "CORS origins (default any)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadServeConfig(cmd)
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.LogMode)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer log.Sync()

	srv, err := server.New(cfg, server.WithLogger(log), server.WithAllowedOrigins(serveOrigins...))
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}

func loadServeConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(serveConfigPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
		if err := cfg.Validate(); err != nil {
			return config.Config{}, err
		}
	}
	return cfg, nil
}
