package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dipyourtrip/brochure-agent/internal/config"
	"github.com/dipyourtrip/brochure-agent/internal/llm"
	"github.com/dipyourtrip/brochure-agent/internal/pipeline"
	"github.com/dipyourtrip/brochure-agent/internal/server"
)

var (
	servePort    int
	serveVerbose bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the brochure generation HTTP server",
	Long:  `Start an HTTP server exposing POST /generate, which runs the full brochure pipeline for a base64-encoded CSV payload and returns the hosted PDF URL.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().BoolVarP(&serveVerbose, "verbose", "v", false, "Print detailed debug information")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}

	ctx := context.Background()
	llmClient, err := llm.NewClient(ctx, cfg.GeminiAPIKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer func() { _ = llmClient.Close() }()

	p, err := pipeline.New(cfg, llmClient)
	if err != nil {
		return fmt.Errorf("failed to create pipeline: %w", err)
	}

	srv := server.New(server.Config{Port: servePort, Verbose: serveVerbose}, p)
	return srv.Start()
}
