package export

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// Deterministic viewport for rasterization.
const (
	viewportWidth  = 1920
	viewportHeight = 1080
	viewportScale  = 1.0
)

// DefaultTimeout bounds one page load and export.
const DefaultTimeout = 60 * time.Second

// Options configures the PDF export. Paper dimensions and margins are in
// inches, matching the browser's print protocol.
type Options struct {
	PaperWidth      float64
	PaperHeight     float64
	Landscape       bool
	MarginTop       float64
	MarginRight     float64
	MarginBottom    float64
	MarginLeft      float64
	PrintBackground bool
	Timeout         time.Duration
}

// DefaultOptions returns the brochure export configuration: A4 landscape,
// zero margins, backgrounds printed.
func DefaultOptions() Options {
	return Options{
		PaperWidth:      8.27,
		PaperHeight:     11.69,
		Landscape:       true,
		PrintBackground: true,
		Timeout:         DefaultTimeout,
	}
}

// Exporter embeds local images into rendered HTML and rasterizes the
// result. The browser process is scoped to a single export call, never
// pooled or reused.
type Exporter struct {
	imageRoot string
}

// NewExporter creates an Exporter resolving image references against
// imageRoot.
func NewExporter(imageRoot string) *Exporter {
	return &Exporter{imageRoot: imageRoot}
}

// Export renders htmlContent to PDF bytes in memory.
func (e *Exporter) Export(ctx context.Context, htmlContent string, opts Options) ([]byte, error) {
	embedded, err := EmbedImages(htmlContent, e.imageRoot)
	if err != nil {
		return nil, err
	}

	htmlPath, cleanup, err := writeTempHTML(embedded)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	return rasterize(ctx, htmlPath, opts)
}

// ExportToFile renders htmlContent to a PDF file at outputPath, creating
// the parent directory if needed.
func (e *Exporter) ExportToFile(ctx context.Context, htmlContent, outputPath string, opts Options) error {
	data, err := e.Export(ctx, htmlContent, opts)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return &Error{Message: "failed to create output directory", Cause: err}
	}
	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		return &Error{Message: "failed to write PDF file", Cause: err}
	}
	return nil
}

// writeTempHTML persists the embedded-image HTML so the browser can load
// it over file://.
func writeTempHTML(htmlContent string) (string, func(), error) {
	file, err := os.CreateTemp("", "brochure-*.html")
	if err != nil {
		return "", nil, &Error{Message: "failed to create temp HTML file", Cause: err}
	}
	path := file.Name()
	cleanup := func() { _ = os.Remove(path) }

	if _, err := file.WriteString(htmlContent); err != nil {
		_ = file.Close()
		cleanup()
		return "", nil, &Error{Message: "failed to write temp HTML file", Cause: err}
	}
	if err := file.Close(); err != nil {
		cleanup()
		return "", nil, &Error{Message: "failed to close temp HTML file", Cause: err}
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		cleanup()
		return "", nil, &Error{Message: "failed to resolve temp HTML path", Cause: err}
	}
	return absPath, cleanup, nil
}

// rasterize loads the HTML file in a headless browser and exports it to
// PDF. The browser instance is released on both success and failure paths
// via the context cancels.
func rasterize(ctx context.Context, htmlPath string, opts Options) ([]byte, error) {
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	browserCtx, cancelTimeout := context.WithTimeout(browserCtx, timeout)
	defer cancelTimeout()

	var pdfData []byte
	err := chromedp.Run(browserCtx,
		chromedp.EmulateViewport(viewportWidth, viewportHeight, chromedp.EmulateScale(viewportScale)),
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfData, _, err = page.PrintToPDF().
				WithPaperWidth(opts.PaperWidth).
				WithPaperHeight(opts.PaperHeight).
				WithLandscape(opts.Landscape).
				WithMarginTop(opts.MarginTop).
				WithMarginRight(opts.MarginRight).
				WithMarginBottom(opts.MarginBottom).
				WithMarginLeft(opts.MarginLeft).
				WithPrintBackground(opts.PrintBackground).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, &Error{Message: "browser export failed", Cause: err}
	}

	return pdfData, nil
}
