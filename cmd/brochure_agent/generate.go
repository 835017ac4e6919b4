package main

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dipyourtrip/brochure-agent/internal/config"
	"github.com/dipyourtrip/brochure-agent/internal/llm"
	"github.com/dipyourtrip/brochure-agent/internal/pipeline"
)

var (
	generateCSVPath string
	generateVerbose bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Run the brochure pipeline once for a local CSV file",
	Long:  `Runs the full brochure pipeline end-to-end for a trip add-on CSV file on disk and prints the hosted PDF URL.`,
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&generateCSVPath, "csv", "c", "", "Path to the trip add-on CSV file (required)")
	generateCmd.Flags().BoolVarP(&generateVerbose, "verbose", "v", false, "Print detailed debug information")
	_ = generateCmd.MarkFlagRequired("csv")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	csvText, err := os.ReadFile(generateCSVPath)
	if err != nil {
		return fmt.Errorf("failed to read CSV file: %w", err)
	}

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

	result, err := p.Run(ctx, pipeline.RunOptions{
		CSVData: base64.StdEncoding.EncodeToString(csvText),
		Verbose: generateVerbose,
	})
	if err != nil {
		return fmt.Errorf("brochure generation failed: %w", err)
	}

	fmt.Printf("Hosted brochure: %s\n", result.HostedURL)
	return nil
}
