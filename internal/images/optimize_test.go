package images

import (
	"image/color"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTestImage saves a solid-color image at the given path.
func writeTestImage(t *testing.T, path string, width, height int) {
	t.Helper()
	img := imaging.New(width, height, color.NRGBA{R: 120, G: 80, B: 40, A: 255})
	require.NoError(t, imaging.Save(img, path))
}

func TestOptimize_ResizesLargeImage(t *testing.T) {
	dir := t.TempDir()
	inputPath := filepath.Join(dir, "wide.jpg")
	writeTestImage(t, inputPath, 2400, 1350)

	outputDir := t.TempDir()
	result, err := Optimize(inputPath, outputDir, OptimizeOptions{})
	require.NoError(t, err)

	assert.Equal(t, "wide.jpg", result.Filename)
	assert.Positive(t, result.OriginalSize)
	assert.Positive(t, result.OptimizedSize)

	out, err := imaging.Open(filepath.Join(outputDir, result.Filename))
	require.NoError(t, err)
	assert.Equal(t, DefaultMaxWidth, out.Bounds().Dx())
	assert.Equal(t, DefaultMaxHeight, out.Bounds().Dy())
}

func TestOptimize_NeverUpscales(t *testing.T) {
	dir := t.TempDir()
	inputPath := filepath.Join(dir, "small.jpg")
	writeTestImage(t, inputPath, 300, 200)

	outputDir := t.TempDir()
	result, err := Optimize(inputPath, outputDir, OptimizeOptions{})
	require.NoError(t, err)

	out, err := imaging.Open(filepath.Join(outputDir, result.Filename))
	require.NoError(t, err)
	assert.Equal(t, 300, out.Bounds().Dx())
	assert.Equal(t, 200, out.Bounds().Dy())
}

func TestOptimize_PNGKeepsFormat(t *testing.T) {
	dir := t.TempDir()
	inputPath := filepath.Join(dir, "photo.png")
	writeTestImage(t, inputPath, 400, 300)

	outputDir := t.TempDir()
	result, err := Optimize(inputPath, outputDir, OptimizeOptions{})
	require.NoError(t, err)
	assert.Equal(t, "photo.png", result.Filename)
}

func TestOptimize_JPEGFormatConversion(t *testing.T) {
	dir := t.TempDir()
	inputPath := filepath.Join(dir, "photo.png")
	writeTestImage(t, inputPath, 400, 300)

	outputDir := t.TempDir()
	result, err := Optimize(inputPath, outputDir, OptimizeOptions{Format: FormatJPEG})
	require.NoError(t, err)
	assert.Equal(t, "photo.jpg", result.Filename)
}

func TestOptimize_MissingInput(t *testing.T) {
	_, err := Optimize(filepath.Join(t.TempDir(), "nope.jpg"), t.TempDir(), OptimizeOptions{})
	require.Error(t, err)
}

func TestInferFormat(t *testing.T) {
	tests := []struct {
		ext      string
		expected Format
	}{
		{ext: "jpg", expected: FormatJPEG},
		{ext: "jpeg", expected: FormatJPEG},
		{ext: "png", expected: FormatPNG},
		{ext: "webp", expected: FormatWebP},
		{ext: "gif", expected: FormatJPEG},
		{ext: "", expected: FormatJPEG},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, inferFormat(tt.ext), "ext %q", tt.ext)
	}
}

func TestOutputName(t *testing.T) {
	tests := []struct {
		name     string
		base     string
		ext      string
		format   Format
		expected string
	}{
		{name: "jpeg keeps jpg", base: "a.jpg", ext: "jpg", format: FormatJPEG, expected: "a.jpg"},
		{name: "jpeg keeps jpeg", base: "a.jpeg", ext: "jpeg", format: FormatJPEG, expected: "a.jpeg"},
		{name: "png to jpeg", base: "a.png", ext: "png", format: FormatJPEG, expected: "a.jpg"},
		{name: "png stays png", base: "a.png", ext: "png", format: FormatPNG, expected: "a.png"},
		{name: "jpg to webp", base: "a.jpg", ext: "jpg", format: FormatWebP, expected: "a.webp"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, outputName(tt.base, tt.ext, tt.format))
		})
	}
}

func TestSavingsPercent(t *testing.T) {
	assert.Equal(t, "50.0%", SavingsPercent(1000, 500))
	assert.Equal(t, "42.5%", SavingsPercent(1000, 575))
	assert.Equal(t, "0.0%", SavingsPercent(0, 500))
	assert.Equal(t, "-25.0%", SavingsPercent(400, 500))
}
