// Package pipeline provides the high-level orchestration for the brochure generation process.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/dipyourtrip/brochure-agent/internal/bucket"
	"github.com/dipyourtrip/brochure-agent/internal/config"
	"github.com/dipyourtrip/brochure-agent/internal/export"
	"github.com/dipyourtrip/brochure-agent/internal/images"
	"github.com/dipyourtrip/brochure-agent/internal/llm"
	"github.com/dipyourtrip/brochure-agent/internal/observability"
	"github.com/dipyourtrip/brochure-agent/internal/parsing"
	"github.com/dipyourtrip/brochure-agent/internal/publish"
	"github.com/dipyourtrip/brochure-agent/internal/rendering"
	"github.com/dipyourtrip/brochure-agent/internal/synthesis"
)

// Step names reported through progress events.
const (
	StepParseCSV   = "parse_csv"
	StepListImages = "list_images"
	StepSynthesize = "synthesize"
	StepAcquire    = "acquire_images"
	StepRender     = "render_html"
	StepExport     = "export_pdf"
	StepPublish    = "publish"
)

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Step    string `json:"step"`
	Message string `json:"message"`
	RunID   string `json:"run_id,omitempty"`
	Content any    `json:"content,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// RunOptions holds per-request configuration for running the pipeline
type RunOptions struct {
	CSVData    string // base64-encoded CSV payload
	Verbose    bool
	OnProgress ProgressCallback
}

// Result holds the outputs of one completed pipeline run
type Result struct {
	RunID     string
	HostedURL string
	TripTitle string
	PDFName   string
}

// Pipeline wires the long-lived collaborators together. One instance
// serves many runs; per-run state lives in a private workspace directory.
type Pipeline struct {
	cfg         *config.Config
	bucket      *bucket.Client
	synthesizer *synthesis.Synthesizer
	uploader    *publish.Uploader
}

// New builds a Pipeline from the resolved configuration and an LLM client.
// Every collaborator validates its own settings eagerly, so a
// misconfiguration surfaces here instead of mid-run.
func New(cfg *config.Config, llmClient llm.Client) (*Pipeline, error) {
	bucketClient, err := bucket.NewClient(cfg.BucketURL)
	if err != nil {
		return nil, fmt.Errorf("creating bucket client: %w", err)
	}

	uploader, err := publish.NewUploader(cfg.UploadEndpoint, cfg.UploadToken, cfg.CandidateID)
	if err != nil {
		return nil, fmt.Errorf("creating uploader: %w", err)
	}

	return &Pipeline{
		cfg:         cfg,
		bucket:      bucketClient,
		synthesizer: synthesis.NewSynthesizer(llmClient),
		uploader:    uploader,
	}, nil
}

// emitProgress calls the progress callback if configured
func emitProgress(opts *RunOptions, runID, step, message string, content any) {
	if opts.OnProgress != nil {
		opts.OnProgress(ProgressEvent{
			Step:    step,
			Message: message,
			RunID:   runID,
			Content: content,
		})
	}
}

// Run executes the full brochure pipeline for one CSV payload and returns
// the hosted PDF URL. All transient files live under a run-scoped
// workspace that is removed before returning, on success and on failure.
func (p *Pipeline) Run(ctx context.Context, opts RunOptions) (*Result, error) {
	printer := observability.NewPrinter(os.Stdout)
	runID := uuid.New().String()

	fmt.Printf("Step 1/7: Parsing trip add-on CSV...\n")
	addOns, err := parsing.ParseCSVPayload(opts.CSVData)
	if err != nil {
		return nil, fmt.Errorf("parsing CSV payload: %w", err)
	}
	emitProgress(&opts, runID, StepParseCSV,
		fmt.Sprintf("Parsed %d trip add-on records", len(addOns)), nil)

	fmt.Printf("Step 2/7: Listing available bucket images...\n")
	listing, err := p.bucket.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing bucket images: %w", err)
	}
	imageNames := bucket.Names(listing)
	emitProgress(&opts, runID, StepListImages,
		fmt.Sprintf("Found %d images in bucket", len(imageNames)), nil)

	fmt.Printf("Step 3/7: Synthesizing brochure content...\n")
	content, err := p.synthesizer.Synthesize(ctx, addOns, imageNames)
	if err != nil {
		return nil, fmt.Errorf("synthesizing brochure content: %w", err)
	}
	if opts.Verbose {
		printer.PrintBrochureContent(content)
	}
	emitProgress(&opts, runID, StepSynthesize,
		fmt.Sprintf("Synthesized brochure: %s", content.TripTitle), content)

	runDir := filepath.Join(p.cfg.WorkDir, runID)
	photosDir := filepath.Join(runDir, "images", "tempPhotos")
	if err := os.MkdirAll(photosDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating run workspace: %w", err)
	}
	defer publish.CleanupDirectory(runDir, "run workspace")

	referenced := content.ReferencedImages()
	imageURLs := bucket.ResolveURLs(listing, referenced)
	fmt.Printf("Step 4/7: Downloading and optimizing %d images...\n", len(imageURLs))
	optimized, err := images.DownloadAndOptimize(ctx, p.bucket, imageURLs, photosDir, images.OptimizeOptions{})
	if err != nil {
		return nil, fmt.Errorf("acquiring images: %w", err)
	}
	if opts.Verbose {
		printer.PrintOptimizedImages(optimized)
	}
	emitProgress(&opts, runID, StepAcquire,
		fmt.Sprintf("Acquired %d of %d referenced images", len(optimized), len(imageURLs)), nil)

	if p.cfg.AssetsDir != "" {
		if err := copyAssets(p.cfg.AssetsDir, filepath.Join(runDir, "images")); err != nil {
			fmt.Printf("Warning: failed to copy static assets: %v\n", err)
		}
	}

	fmt.Printf("Step 5/7: Rendering brochure HTML...\n")
	html, err := rendering.RenderHTML(content)
	if err != nil {
		return nil, fmt.Errorf("rendering HTML: %w", err)
	}
	emitProgress(&opts, runID, StepRender,
		fmt.Sprintf("Rendered HTML document (%d bytes)", len(html)), nil)

	fmt.Printf("Step 6/7: Exporting PDF...\n")
	pdfName := export.PDFFilename(content.TripTitle, time.Now())
	pdfPath := filepath.Join(runDir, pdfName)
	exporter := export.NewExporter(runDir)
	if err := exporter.ExportToFile(ctx, html, pdfPath, export.DefaultOptions()); err != nil {
		return nil, fmt.Errorf("exporting PDF: %w", err)
	}
	emitProgress(&opts, runID, StepExport,
		fmt.Sprintf("Exported %s", pdfName), nil)

	fmt.Printf("Step 7/7: Uploading PDF to hosting...\n")
	hostedURL, err := p.uploader.Upload(ctx, pdfPath)
	if err != nil {
		return nil, fmt.Errorf("uploading PDF: %w", err)
	}
	emitProgress(&opts, runID, StepPublish,
		fmt.Sprintf("Brochure hosted at %s", hostedURL), nil)

	fmt.Printf("Done! Brochure hosted at %s\n", hostedURL)

	return &Result{
		RunID:     runID,
		HostedURL: hostedURL,
		TripTitle: content.TripTitle,
		PDFName:   pdfName,
	}, nil
}

// copyAssets mirrors the static brochure assets (logo, icons) into the run
// workspace so the exporter can resolve their references.
func copyAssets(srcDir, destDir string) error {
	return filepath.WalkDir(srcDir, func(path string, entry os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(srcDir, path)
		if err != nil {
			return err
		}
		target := filepath.Join(destDir, rel)
		if entry.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		return copyFile(path, target)
	})
}

func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
