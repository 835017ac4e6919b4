package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("PDF_UPLOAD_ENDPOINT", "https://host.example.com/upload")
	t.Setenv("PDF_UPLOAD_TOKEN", "test-token")
}

func TestFromEnv_Defaults(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("BUCKET_URL", "")
	t.Setenv("CANDIDATE_ID", "")
	t.Setenv("WORK_DIR", "")
	t.Setenv("ASSETS_DIR", "")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "test-key", cfg.GeminiAPIKey)
	assert.Equal(t, DefaultBucketURL, cfg.BucketURL)
	assert.Equal(t, DefaultCandidateID, cfg.CandidateID)
	assert.Equal(t, DefaultWorkDir, cfg.WorkDir)
	assert.Empty(t, cfg.AssetsDir)
}

func TestFromEnv_Overrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("BUCKET_URL", "https://other-bucket.example.com/")
	t.Setenv("CANDIDATE_ID", "someone-else")
	t.Setenv("WORK_DIR", "/tmp/runs")
	t.Setenv("ASSETS_DIR", "/opt/assets")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "https://other-bucket.example.com/", cfg.BucketURL)
	assert.Equal(t, "someone-else", cfg.CandidateID)
	assert.Equal(t, "/tmp/runs", cfg.WorkDir)
	assert.Equal(t, "/opt/assets", cfg.AssetsDir)
}

func TestFromEnv_MissingRequired(t *testing.T) {
	tests := []struct {
		name  string
		unset string
	}{
		{name: "missing API key", unset: "GEMINI_API_KEY"},
		{name: "missing upload endpoint", unset: "PDF_UPLOAD_ENDPOINT"},
		{name: "missing upload token", unset: "PDF_UPLOAD_TOKEN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(tt.unset, "")

			_, err := FromEnv()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "config error")
		})
	}
}

func TestValidate_InvalidURL(t *testing.T) {
	cfg := &Config{
		GeminiAPIKey:   "key",
		BucketURL:      "not-a-url",
		UploadEndpoint: "https://host.example.com/upload",
		UploadToken:    "token",
		CandidateID:    "caller",
		WorkDir:        "workspace",
	}

	require.Error(t, cfg.Validate())
}
