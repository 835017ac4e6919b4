package images

import (
	"context"
	"log"
	"net/url"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/dipyourtrip/brochure-agent/internal/bucket"
	"github.com/dipyourtrip/brochure-agent/internal/types"
)

// DownloadAndOptimize fans out over the requested URLs, downloading each
// image to a temp file and re-encoding it into outputDir. Each image is an
// independent unit of work: a failure is logged and that image is dropped
// from the result set, so partial success is the normal outcome. Per-image
// temp files are removed after optimization; removal failures are logged
// only.
func DownloadAndOptimize(ctx context.Context, client *bucket.Client, imageURLs []string, outputDir string, opts OptimizeOptions) ([]types.OptimizedImage, error) {
	tempDir := filepath.Join(outputDir, "temp")
	if err := os.MkdirAll(tempDir, 0o755); err != nil {
		return nil, err
	}

	results := make([]*types.OptimizedImage, len(imageURLs))

	g, ctx := errgroup.WithContext(ctx)
	for i, imageURL := range imageURLs {
		g.Go(func() error {
			optimized := processOne(ctx, client, imageURL, tempDir, outputDir, opts)
			results[i] = optimized
			// Per-image failures are never fatal to the batch.
			return nil
		})
	}
	_ = g.Wait()

	successful := make([]types.OptimizedImage, 0, len(imageURLs))
	for _, result := range results {
		if result != nil {
			successful = append(successful, *result)
		}
	}
	return successful, nil
}

// processOne runs the download+optimize pipeline for a single image,
// returning nil on any failure.
func processOne(ctx context.Context, client *bucket.Client, imageURL, tempDir, outputDir string, opts OptimizeOptions) *types.OptimizedImage {
	parsed, err := url.Parse(imageURL)
	if err != nil {
		log.Printf("Failed to process %s: %v", imageURL, err)
		return nil
	}
	originalFilename := filepath.Base(parsed.Path)
	tempPath := filepath.Join(tempDir, originalFilename)

	if err := client.Download(ctx, imageURL, tempPath); err != nil {
		log.Printf("Failed to process %s: %v", imageURL, err)
		return nil
	}

	result, err := Optimize(tempPath, outputDir, opts)
	if err != nil {
		log.Printf("Failed to process %s: %v", imageURL, err)
		_ = os.Remove(tempPath)
		return nil
	}

	if err := os.Remove(tempPath); err != nil {
		log.Printf("Warning: could not delete temp file %s, will be cleaned up later", tempPath)
	}

	return &types.OptimizedImage{
		URL:           imageURL,
		Filename:      result.Filename,
		OriginalSize:  result.OriginalSize,
		OptimizedSize: result.OptimizedSize,
		Savings:       SavingsPercent(result.OriginalSize, result.OptimizedSize),
	}
}
