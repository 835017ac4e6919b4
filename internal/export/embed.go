// Package export rasterizes slide HTML into PDF bytes with a headless browser.
package export

import (
	"encoding/base64"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// cssURLPattern matches CSS background references into the local image
// tree, e.g. url('images/tempPhotos/lake.jpg'). CSS text is not reachable
// through the DOM walk below, so it is rewritten first on the raw string.
var cssURLPattern = regexp.MustCompile(`url\('(images/[^']+)'\)`)

// EmbedImages rewrites every local image reference in the HTML into inline
// base64 data, resolving paths against baseDir. A referenced file that does
// not exist on disk is logged and left as an unresolved reference rather
// than failing the export; the resulting PDF shows a broken image for that
// slot.
func EmbedImages(htmlContent, baseDir string) (string, error) {
	htmlContent = cssURLPattern.ReplaceAllStringFunc(htmlContent, func(match string) string {
		relPath := cssURLPattern.FindStringSubmatch(match)[1]
		dataURI, ok := imageToDataURI(filepath.Join(baseDir, relPath))
		if !ok {
			log.Printf("Background image not found: %s", filepath.Join(baseDir, relPath))
			return match
		}
		return fmt.Sprintf("url('%s')", dataURI)
	})

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return "", &Error{Message: "failed to parse rendered HTML", Cause: err}
	}

	doc.Find("img").Each(func(_ int, sel *goquery.Selection) {
		src, exists := sel.Attr("src")
		if !exists || !strings.HasPrefix(src, "images/") {
			return
		}
		fullPath := filepath.Join(baseDir, src)
		dataURI, ok := imageToDataURI(fullPath)
		if !ok {
			log.Printf("Image not found: %s", fullPath)
			return
		}
		sel.SetAttr("src", dataURI)
	})

	embedded, err := doc.Html()
	if err != nil {
		return "", &Error{Message: "failed to serialize embedded HTML", Cause: err}
	}
	return embedded, nil
}

// imageToDataURI reads an image file and encodes it as a data URI. The
// second return value reports whether the file could be read.
func imageToDataURI(imagePath string) (string, bool) {
	data, err := os.ReadFile(imagePath)
	if err != nil {
		return "", false
	}
	return fmt.Sprintf("data:%s;base64,%s", mimeTypeFor(imagePath), base64.StdEncoding.EncodeToString(data)), true
}

func mimeTypeFor(imagePath string) string {
	switch strings.ToLower(filepath.Ext(imagePath)) {
	case ".png":
		return "image/png"
	case ".webp":
		return "image/webp"
	case ".gif":
		return "image/gif"
	default:
		return "image/jpeg"
	}
}
