package synthesis

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dipyourtrip/brochure-agent/internal/llm"
	"github.com/dipyourtrip/brochure-agent/internal/types"
)

// fakeClient returns a canned response and records the last request.
type fakeClient struct {
	response   string
	err        error
	lastPrompt string
	lastOpts   llm.Options
}

func (f *fakeClient) Generate(_ context.Context, prompt string, opts llm.Options) (*llm.Response, error) {
	f.lastPrompt = prompt
	f.lastOpts = opts
	if f.err != nil {
		return nil, f.err
	}
	return &llm.Response{
		Content: f.response,
		Model:   llm.DefaultModel,
		Usage:   llm.Usage{InputTokens: 100, OutputTokens: 200},
	}, nil
}

func (f *fakeClient) Close() error { return nil }

const minimalContent = `{
  "tripTitle": "Patagonia Adventure",
  "trekOptions": [{"title": "Classic", "destinations": ["Torres del Paine"], "price": "$2,400"}],
  "overviewTitle": "Trip Overview",
  "timeline": [{"day": "Day 1", "iconPath": "hike-icon.png", "iconAlt": "Hiking", "activity": ["Trek"], "title": "Arrival", "descriptions": ["Land and transfer"]}],
  "includedTitle": "What's Included",
  "includedItems": [{"title": "Guides", "description": "Certified"}],
  "itineraryTitle": "Day by Day",
  "galleries": [{"title": "Peaks", "images": [{"src": "peak.jpg", "alt": "Peak"}]}],
  "backgroundImages": {"cover": "glacier.jpg"},
  "imagesUsed": ["glacier.jpg", "peak.jpg"]
}`

func sampleAddOns() []types.TripAddOn {
	return []types.TripAddOn{
		{TripID: "T1", AddOnID: "A1", Place: "Patagonia", Item: "Trek", NDays: 5, NUsers: 2},
	}
}

func TestSynthesize(t *testing.T) {
	client := &fakeClient{response: minimalContent}
	s := NewSynthesizer(client)

	content, err := s.Synthesize(context.Background(), sampleAddOns(), []string{"glacier.jpg", "peak.jpg"})
	require.NoError(t, err)

	assert.Equal(t, "Patagonia Adventure", content.TripTitle)
	require.Len(t, content.TrekOptions, 1)
	assert.Equal(t, "Classic", content.TrekOptions[0].Title)
	assert.Equal(t, "glacier.jpg", content.BackgroundImages.Cover)

	// Request carries the configured generation settings
	assert.InDelta(t, 0.7, client.lastOpts.Temperature, 0.001)
	assert.Equal(t, 8000, client.lastOpts.MaxTokens)
	assert.NotEmpty(t, client.lastOpts.SystemPrompt)

	// Prompt embeds the trip data and the image catalog
	assert.Contains(t, client.lastPrompt, "Patagonia")
	assert.Contains(t, client.lastPrompt, "glacier.jpg")
}

func TestSynthesize_FencedResponse(t *testing.T) {
	client := &fakeClient{response: "```json\n" + minimalContent + "\n```"}
	s := NewSynthesizer(client)

	content, err := s.Synthesize(context.Background(), sampleAddOns(), []string{"glacier.jpg"})
	require.NoError(t, err)
	assert.Equal(t, "Patagonia Adventure", content.TripTitle)
}

func TestSynthesize_MalformedJSON(t *testing.T) {
	client := &fakeClient{response: "Sorry, I could not produce the brochure."}
	s := NewSynthesizer(client)

	_, err := s.Synthesize(context.Background(), sampleAddOns(), nil)
	require.Error(t, err)

	var contentErr *ContentError
	assert.ErrorAs(t, err, &contentErr)
}

func TestSynthesize_ClientFailure(t *testing.T) {
	client := &fakeClient{err: errors.New("quota exceeded")}
	s := NewSynthesizer(client)

	_, err := s.Synthesize(context.Background(), sampleAddOns(), nil)
	require.Error(t, err)

	var llmErr *LLMError
	require.ErrorAs(t, err, &llmErr)
	assert.ErrorContains(t, err, "quota exceeded")
}

func TestSynthesize_UnknownImagesAdvisoryOnly(t *testing.T) {
	// Content references an image absent from the catalog; the run still
	// succeeds because catalog checks are advisory.
	client := &fakeClient{response: minimalContent}
	s := NewSynthesizer(client)

	content, err := s.Synthesize(context.Background(), sampleAddOns(), []string{"other.jpg"})
	require.NoError(t, err)
	assert.NotNil(t, content)
}
