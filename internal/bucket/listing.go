package bucket

import (
	"encoding/xml"
	"io"
	"strconv"
	"strings"

	"github.com/dipyourtrip/brochure-agent/internal/types"
)

// listBucketResult mirrors the XML listing body returned by the bucket.
// Decoding whole Contents entries keeps each entry's fields associated,
// so a missing Size or ETag in one entry cannot shift every later entry.
type listBucketResult struct {
	XMLName  xml.Name       `xml:"ListBucketResult"`
	Contents []contentEntry `xml:"Contents"`
}

type contentEntry struct {
	Key          string `xml:"Key"`
	Size         string `xml:"Size"`
	LastModified string `xml:"LastModified"`
	ETag         string `xml:"ETag"`
}

// ParseListing decodes a bucket listing body into image descriptors in
// listing order. Entry URLs are formed by appending the key to baseURL.
// A malformed Size defaults to zero; ETag surrounding quotes are stripped.
func ParseListing(r io.Reader, baseURL string) ([]types.BucketImage, error) {
	var result listBucketResult
	if err := xml.NewDecoder(r).Decode(&result); err != nil {
		return nil, &Error{URL: baseURL, Message: "failed to parse listing XML", Cause: err}
	}

	images := make([]types.BucketImage, 0, len(result.Contents))
	for _, entry := range result.Contents {
		size, err := strconv.ParseInt(strings.TrimSpace(entry.Size), 10, 64)
		if err != nil {
			size = 0
		}
		images = append(images, types.BucketImage{
			Name:         entry.Key,
			URL:          baseURL + entry.Key,
			Size:         size,
			LastModified: entry.LastModified,
			ETag:         strings.Trim(entry.ETag, `"`),
		})
	}

	return images, nil
}

// ResolveURLs returns the download URLs for the requested names,
// preserving the listing's order rather than the requested order. Names
// absent from the listing are silently excluded.
func ResolveURLs(listing []types.BucketImage, names []string) []string {
	requested := make(map[string]bool, len(names))
	for _, name := range names {
		requested[name] = true
	}

	var urls []string
	for _, img := range listing {
		if requested[img.Name] {
			urls = append(urls, img.URL)
		}
	}
	return urls
}

// Names returns the storage keys of a listing in listing order.
func Names(listing []types.BucketImage) []string {
	names := make([]string, len(listing))
	for i, img := range listing {
		names[i] = img.Name
	}
	return names
}
