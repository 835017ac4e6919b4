// Package images downloads bucket images and re-encodes them under a size budget.
package images

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"

	// Codecs for decoding bucket images beyond JPEG/PNG.
	_ "image/gif"

	_ "golang.org/x/image/webp"
)

// Format selects the output encoding of an optimized image.
type Format string

// Supported output formats. JPEG is the Go encoder's baseline variant;
// quality semantics otherwise match the other encoders.
const (
	FormatJPEG Format = "jpeg"
	FormatWebP Format = "webp"
	FormatPNG  Format = "png"
)

// OptimizeOptions configures re-encoding. Zero values fall back to
// DefaultQuality / DefaultMaxWidth / DefaultMaxHeight, and an empty Format
// is inferred from the source file's extension.
type OptimizeOptions struct {
	Quality   int
	MaxWidth  int
	MaxHeight int
	Format    Format
}

// Defaults applied when an option is unset.
const (
	DefaultQuality   = 70
	DefaultMaxWidth  = 1200
	DefaultMaxHeight = 675
)

// Result reports one optimized image's byte sizes.
type Result struct {
	Filename      string
	OriginalSize  int64
	OptimizedSize int64
}

// Optimize decodes inputPath, resizes it to fit the configured bounds
// (never upscaling), re-encodes it in the selected format and writes it to
// outputDir under the original base filename with the target extension.
func Optimize(inputPath, outputDir string, opts OptimizeOptions) (*Result, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat input image: %w", err)
	}
	originalSize := info.Size()

	img, err := imaging.Open(inputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", filepath.Base(inputPath), err)
	}

	quality := opts.Quality
	if quality == 0 {
		quality = DefaultQuality
	}
	maxWidth := opts.MaxWidth
	if maxWidth == 0 {
		maxWidth = DefaultMaxWidth
	}
	maxHeight := opts.MaxHeight
	if maxHeight == 0 {
		maxHeight = DefaultMaxHeight
	}

	originalExt := strings.TrimPrefix(strings.ToLower(filepath.Ext(inputPath)), ".")
	format := opts.Format
	if format == "" {
		format = inferFormat(originalExt)
	}

	// Fit never upscales: smaller images pass through at original size.
	bounds := img.Bounds()
	if bounds.Dx() > maxWidth || bounds.Dy() > maxHeight {
		img = imaging.Fit(img, maxWidth, maxHeight, imaging.Lanczos)
	}

	outputFilename := outputName(filepath.Base(inputPath), originalExt, format)
	outputPath := filepath.Join(outputDir, outputFilename)

	if err := encode(img, outputPath, format, quality); err != nil {
		return nil, fmt.Errorf("failed to encode %s: %w", outputFilename, err)
	}

	outInfo, err := os.Stat(outputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat optimized image: %w", err)
	}

	return &Result{
		Filename:      outputFilename,
		OriginalSize:  originalSize,
		OptimizedSize: outInfo.Size(),
	}, nil
}

// inferFormat maps a source extension to an output format; anything
// unrecognized re-encodes as JPEG.
func inferFormat(ext string) Format {
	switch ext {
	case "jpg", "jpeg":
		return FormatJPEG
	case "webp":
		return FormatWebP
	case "png":
		return FormatPNG
	default:
		return FormatJPEG
	}
}

// outputName keeps the source extension for JPEG sources and otherwise
// switches to the target format's extension, so renderer references built
// from bucket names keep resolving.
func outputName(base, originalExt string, format Format) string {
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	switch format {
	case FormatJPEG:
		if originalExt == "jpg" || originalExt == "jpeg" {
			return stem + "." + originalExt
		}
		return stem + ".jpg"
	default:
		return stem + "." + string(format)
	}
}

func encode(img image.Image, outputPath string, format Format, quality int) error {
	switch format {
	case FormatWebP:
		file, err := os.Create(outputPath)
		if err != nil {
			return err
		}
		if err := webp.Encode(file, img, &webp.Options{Quality: float32(quality)}); err != nil {
			_ = file.Close()
			_ = os.Remove(outputPath)
			return err
		}
		return file.Close()
	case FormatPNG:
		return imaging.Save(img, outputPath, imaging.PNGCompressionLevel(png.BestCompression))
	default:
		return imaging.Save(img, outputPath, imaging.JPEGQuality(quality))
	}
}

// SavingsPercent formats the byte savings between original and optimized
// sizes as a percentage with one decimal, e.g. "42.5%".
func SavingsPercent(originalSize, optimizedSize int64) string {
	if originalSize <= 0 {
		return "0.0%"
	}
	savings := (1 - float64(optimizedSize)/float64(originalSize)) * 100
	return fmt.Sprintf("%.1f%%", savings)
}
