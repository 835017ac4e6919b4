// Package config resolves the process configuration from the environment at startup.
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
)

// Defaults for optional settings.
const (
	DefaultBucketURL   = "https://storage.googleapis.com/dyt-challenge-images/"
	DefaultCandidateID = "dip-your-trip"
	DefaultWorkDir     = "workspace"
)

// Config holds every value the collaborator constructors need. It is
// resolved once in main and passed down explicitly; a missing required key
// is a startup-time fatal, never a deep-call-stack failure.
type Config struct {
	// GeminiAPIKey authenticates the LLM collaborator.
	GeminiAPIKey string `validate:"required"`
	// BucketURL is the public object-storage listing URL.
	BucketURL string `validate:"required,url"`
	// UploadEndpoint is the PDF hosting collaborator's upload URL.
	UploadEndpoint string `validate:"required,url"`
	// UploadToken is the bearer token for the hosting collaborator.
	UploadToken string `validate:"required"`
	// CandidateID is the fixed caller identifier sent with uploads.
	CandidateID string `validate:"required"`
	// WorkDir is the root under which per-run workspaces are created.
	WorkDir string `validate:"required"`
	// AssetsDir optionally points at static brochure assets (logo, icons)
	// copied into each run workspace. Empty disables the copy.
	AssetsDir string
}

// FromEnv builds the configuration from environment variables, applying
// defaults for the optional settings.
func FromEnv() (*Config, error) {
	cfg := &Config{
		GeminiAPIKey:   os.Getenv("GEMINI_API_KEY"),
		BucketURL:      envOrDefault("BUCKET_URL", DefaultBucketURL),
		UploadEndpoint: os.Getenv("PDF_UPLOAD_ENDPOINT"),
		UploadToken:    os.Getenv("PDF_UPLOAD_TOKEN"),
		CandidateID:    envOrDefault("CANDIDATE_ID", DefaultCandidateID),
		WorkDir:        envOrDefault("WORK_DIR", DefaultWorkDir),
		AssetsDir:      os.Getenv("ASSETS_DIR"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration using the validator tags.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
