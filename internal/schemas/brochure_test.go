package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validBrochureJSON = `{
  "tripTitle": "Patagonia Adventure",
  "tripSubtitle": "Lakes and peaks",
  "trekOptions": [{"title": "Classic", "destinations": ["Torres del Paine"], "price": "$2,400", "priceNote": "* per person"}],
  "overviewTitle": "Trip Overview",
  "overviewSubtitle": "Five days in the south",
  "timeline": [{"day": "Day 1", "iconPath": "hike-icon.png", "iconAlt": "Hiking", "activity": ["Trek"], "date": "2026-03-01", "title": "Arrival", "descriptions": ["Land and transfer"]}],
  "includedTitle": "What's Included",
  "includedItems": [{"title": "Guides", "description": "Certified"}],
  "itineraryTitle": "Day by Day",
  "galleries": [{"title": "Peaks", "images": [{"src": "peak.jpg", "alt": "Peak"}]}],
  "backgroundImages": {"cover": "glacier.jpg"},
  "imagesUsed": ["glacier.jpg", "peak.jpg"]
}`

func TestValidateBrochureContent_Valid(t *testing.T) {
	assert.NoError(t, ValidateBrochureContent(validBrochureJSON))
}

func TestValidateBrochureContent_MissingRequiredField(t *testing.T) {
	err := ValidateBrochureContent(`{"tripTitle": "Patagonia"}`)
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.NotEmpty(t, validationErr.Errors)
}

func TestValidateBrochureContent_WrongType(t *testing.T) {
	err := ValidateBrochureContent(`{
	  "tripTitle": 42,
	  "trekOptions": [],
	  "overviewTitle": "o",
	  "timeline": [],
	  "includedTitle": "i",
	  "includedItems": [],
	  "itineraryTitle": "t",
	  "galleries": [],
	  "backgroundImages": {},
	  "imagesUsed": []
	}`)
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)

	found := false
	for _, fieldErr := range validationErr.Errors {
		if fieldErr.Field == "tripTitle" {
			found = true
		}
	}
	assert.True(t, found, "expected a violation on tripTitle, got %v", validationErr.Errors)
}

func TestValidateJSONString_BadSchema(t *testing.T) {
	err := ValidateJSONString(`{"type": `, `{}`)
	require.Error(t, err)

	var loadErr *SchemaLoadError
	assert.ErrorAs(t, err, &loadErr)
}
