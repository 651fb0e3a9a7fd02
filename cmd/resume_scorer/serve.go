package main

import (
	"fmt"
	"os"

	"github.com/jonathan/resume-scorer/internal/server"
	"github.com/spf13/cobra"
)

var (
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start an HTTP server that exposes REST endpoints for resume analysis,
content checks, and job matching. Semantic endpoints require GEMINI_API_KEY;
without it they answer with rule-based fallbacks.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadMergedConfig()
	if err != nil {
		return err
	}

	port := servePort
	if !cmd.Flags().Changed("port") && cfg.Port != 0 {
		port = cfg.Port
	}

	// The API key is optional: without it the server still runs, with the
	// semantic endpoints degraded to rule-based scoring.
	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}

	srv, err := server.New(server.Config{
		Port:   port,
		APIKey: apiKey,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
