package bucket

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dipyourtrip/brochure-agent/internal/types"
)

const sampleListing = `<?xml version="1.0" encoding="UTF-8"?>
<ListBucketResult xmlns="http://doc.s3.amazonaws.com/2006-03-01">
  <Name>trip-images</Name>
  <Contents>
    <Key>glacier.jpg</Key>
    <LastModified>2026-01-15T10:00:00.000Z</LastModified>
    <ETag>"abc123"</ETag>
    <Size>204800</Size>
  </Contents>
  <Contents>
    <Key>lake.webp</Key>
    <LastModified>2026-01-16T11:30:00.000Z</LastModified>
    <ETag>"def456"</ETag>
    <Size>102400</Size>
  </Contents>
  <Contents>
    <Key>peak.png</Key>
    <LastModified>2026-01-17T09:15:00.000Z</LastModified>
    <ETag>"ghi789"</ETag>
    <Size>307200</Size>
  </Contents>
</ListBucketResult>`

func TestParseListing_AllEntries(t *testing.T) {
	images, err := ParseListing(strings.NewReader(sampleListing), "https://bucket.example.com/")
	require.NoError(t, err)
	require.Len(t, images, 3)

	assert.Equal(t, "glacier.jpg", images[0].Name)
	assert.Equal(t, "https://bucket.example.com/glacier.jpg", images[0].URL)
	assert.Equal(t, int64(204800), images[0].Size)
	assert.Equal(t, "2026-01-15T10:00:00.000Z", images[0].LastModified)

	// Listing order is preserved
	assert.Equal(t, "lake.webp", images[1].Name)
	assert.Equal(t, "peak.png", images[2].Name)
}

func TestParseListing_ETagQuotesStripped(t *testing.T) {
	images, err := ParseListing(strings.NewReader(sampleListing), "https://bucket.example.com/")
	require.NoError(t, err)

	for _, img := range images {
		assert.NotContains(t, img.ETag, `"`)
	}
	assert.Equal(t, "abc123", images[0].ETag)
}

func TestParseListing_IncompleteEntry(t *testing.T) {
	// An entry missing Size and ETag must not shift fields of later entries.
	listing := `<ListBucketResult>
  <Contents>
    <Key>first.jpg</Key>
  </Contents>
  <Contents>
    <Key>second.jpg</Key>
    <ETag>"tag2"</ETag>
    <Size>512</Size>
  </Contents>
</ListBucketResult>`

	images, err := ParseListing(strings.NewReader(listing), "https://bucket.example.com/")
	require.NoError(t, err)
	require.Len(t, images, 2)

	assert.Equal(t, "first.jpg", images[0].Name)
	assert.Equal(t, int64(0), images[0].Size)
	assert.Empty(t, images[0].ETag)

	assert.Equal(t, "second.jpg", images[1].Name)
	assert.Equal(t, int64(512), images[1].Size)
	assert.Equal(t, "tag2", images[1].ETag)
}

func TestParseListing_MalformedXML(t *testing.T) {
	_, err := ParseListing(strings.NewReader("<ListBucketResult><Contents>"), "https://bucket.example.com/")
	require.Error(t, err)

	var bucketErr *Error
	assert.ErrorAs(t, err, &bucketErr)
}

func TestResolveURLs_PreservesListingOrder(t *testing.T) {
	listing := []types.BucketImage{
		{Name: "a.jpg", URL: "https://b.example.com/a.jpg"},
		{Name: "b.jpg", URL: "https://b.example.com/b.jpg"},
		{Name: "c.jpg", URL: "https://b.example.com/c.jpg"},
	}

	// Requested order differs from listing order
	urls := ResolveURLs(listing, []string{"c.jpg", "a.jpg"})
	assert.Equal(t, []string{"https://b.example.com/a.jpg", "https://b.example.com/c.jpg"}, urls)
}

func TestResolveURLs_UnknownNamesExcluded(t *testing.T) {
	listing := []types.BucketImage{
		{Name: "a.jpg", URL: "https://b.example.com/a.jpg"},
	}

	urls := ResolveURLs(listing, []string{"a.jpg", "invented.jpg"})
	assert.Equal(t, []string{"https://b.example.com/a.jpg"}, urls)
}

func TestResolveURLs_NoMatches(t *testing.T) {
	listing := []types.BucketImage{
		{Name: "a.jpg", URL: "https://b.example.com/a.jpg"},
	}

	urls := ResolveURLs(listing, []string{"missing.jpg"})
	assert.Empty(t, urls)
}

func TestNames(t *testing.T) {
	listing := []types.BucketImage{
		{Name: "a.jpg"},
		{Name: "b.jpg"},
	}
	assert.Equal(t, []string{"a.jpg", "b.jpg"}, Names(listing))
}
