package export

import (
	"regexp"
	"strings"
	"time"
)

var (
	reservedChars  = regexp.MustCompile(`[^a-zA-Z0-9\s-]`)
	whitespaceRuns = regexp.MustCompile(`\s+`)
)

// PDFFilename derives the output filename from the trip title: reserved
// characters removed, whitespace collapsed to hyphens, lowercased, with a
// timestamp suffix for uniqueness across runs.
func PDFFilename(tripTitle string, now time.Time) string {
	sanitized := reservedChars.ReplaceAllString(tripTitle, "")
	sanitized = whitespaceRuns.ReplaceAllString(strings.TrimSpace(sanitized), "-")
	sanitized = strings.ToLower(sanitized)

	timestamp := now.UTC().Format("2006-01-02T15-04-05")
	return sanitized + "-" + timestamp + ".pdf"
}
