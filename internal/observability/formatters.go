// Package observability provides formatted output utilities for verbose mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/dipyourtrip/brochure-agent/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintBrochureContent outputs a human-readable summary of the synthesized
// brochure content.
func (p *Printer) PrintBrochureContent(content *types.BrochureContent) {
	if content == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Title:     %s\n", content.TripTitle))
	if content.TripSubtitle != "" {
		sb.WriteString(fmt.Sprintf("Subtitle:  %s\n", content.TripSubtitle))
	}
	sb.WriteString(fmt.Sprintf("Options:   %d\n", len(content.TrekOptions)))
	sb.WriteString(fmt.Sprintf("Timeline:  %d days\n", len(content.Timeline)))
	sb.WriteString(fmt.Sprintf("Included:  %d items\n", len(content.IncludedItems)))
	sb.WriteString(fmt.Sprintf("Galleries: %d\n", len(content.Galleries)))
	sb.WriteString("\n")

	images := content.ReferencedImages()
	sb.WriteString(fmt.Sprintf("Referenced images (%d):\n", len(images)))
	for i, name := range images {
		if i >= maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(images)-maxItemsToShow))
			break
		}
		sb.WriteString(fmt.Sprintf("  - %s\n", name))
	}

	p.printBox("Brochure Content", strings.TrimRight(sb.String(), "\n"))
}

// PrintOptimizedImages outputs the per-image size savings of an
// acquisition batch.
func (p *Printer) PrintOptimizedImages(results []types.OptimizedImage) {
	if len(results) == 0 {
		return
	}

	var sb strings.Builder
	for _, result := range results {
		sb.WriteString(fmt.Sprintf("%s: %d -> %d bytes (%s saved)\n",
			result.Filename, result.OriginalSize, result.OptimizedSize, result.Savings))
	}

	p.printBox(fmt.Sprintf("Optimized %d images", len(results)), strings.TrimRight(sb.String(), "\n"))
}
