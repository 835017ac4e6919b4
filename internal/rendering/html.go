// Package rendering deterministically maps brochure content to slide HTML.
//
// This is a pure function: no I/O, no randomness, identical input yields
// byte-identical output. Content strings are interpolated without HTML
// escaping on purpose. The content originates from the synthesizer, not
// from end users, and escaping would corrupt layout-significant characters;
// this trust boundary is a recorded design decision, not an oversight.
package rendering

import (
	_ "embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/dipyourtrip/brochure-agent/internal/types"
)

// Layout constants for slide pagination.
const (
	// timelineChunkSize is the number of timeline entries per horizontal
	// container on the overview slide.
	timelineChunkSize = 8
	// dayChunkSize is the number of day cards per itinerary slide.
	dayChunkSize = 4
)

//go:embed brochure.html.tmpl
var brochureTemplate string

var tmpl = template.Must(template.New("brochure").Parse(brochureTemplate))

// trekOption is a cover card with pricing fallbacks applied.
type trekOption struct {
	Title        string
	Destinations []string
	Price        string
	PriceNote    string
}

// timelineItem is one overview entry with its activities pre-joined.
type timelineItem struct {
	IconPath   string
	IconAlt    string
	Day        string
	Activities string
}

// dayCard is one itinerary card.
type dayCard struct {
	Heading      string
	Descriptions []string
}

// daySlide is one itinerary slide of up to dayChunkSize cards.
type daySlide struct {
	Number     int
	RangeLabel string
	Title      string
	Cards      []dayCard
}

// gallerySlide is one photo-grid slide.
type gallerySlide struct {
	Number int
	Title  string
	Images []types.GalleryImage
}

// backgroundStyles holds the computed CSS background for each named slot.
type backgroundStyles struct {
	Cover     string
	Overview  string
	Included  string
	Itinerary string
	Gallery   string
}

// templateData is the fully precomputed input to the slide template.
type templateData struct {
	TripTitle          string
	TrekOptions        []trekOption
	OverviewTitle      string
	OverviewSubtitle   string
	TimelineContainers [][]timelineItem
	IncludedTitle      string
	IncludedItems      []types.IncludedItem
	DaySlides          []daySlide
	GallerySlides      []gallerySlide
	FinalMessage       string
	Background         backgroundStyles
}

// RenderHTML renders brochure content into the multi-slide HTML document.
func RenderHTML(content *types.BrochureContent) (string, error) {
	if content == nil {
		return "", &TemplateError{Message: "brochure content is nil"}
	}

	var result strings.Builder
	if err := tmpl.Execute(&result, buildTemplateData(content)); err != nil {
		return "", &TemplateError{Message: "failed to execute slide template", Cause: err}
	}
	return result.String(), nil
}

func buildTemplateData(content *types.BrochureContent) *templateData {
	data := &templateData{
		TripTitle:        content.TripTitle,
		OverviewTitle:    content.OverviewTitle,
		OverviewSubtitle: content.OverviewSubtitle,
		IncludedTitle:    content.IncludedTitle,
		IncludedItems:    content.IncludedItems,
		FinalMessage:     content.FinalMessage,
		Background: backgroundStyles{
			Cover:     backgroundStyle(content.BackgroundImages.Cover),
			Overview:  backgroundStyle(content.BackgroundImages.Overview),
			Included:  backgroundStyle(content.BackgroundImages.Included),
			Itinerary: backgroundStyle(content.BackgroundImages.Itinerary),
			Gallery:   backgroundStyle(content.BackgroundImages.Gallery),
		},
	}

	for _, option := range content.TrekOptions {
		price := option.Price
		if price == "" {
			price = "Price Not Available"
		}
		priceNote := option.PriceNote
		if priceNote == "" {
			priceNote = "* Contact us for details"
		}
		data.TrekOptions = append(data.TrekOptions, trekOption{
			Title:        option.Title,
			Destinations: option.Destinations,
			Price:        price,
			PriceNote:    priceNote,
		})
	}

	for _, chunk := range chunkTimeline(content.Timeline, timelineChunkSize) {
		var items []timelineItem
		for _, entry := range chunk {
			items = append(items, timelineItem{
				IconPath:   entry.IconPath,
				IconAlt:    entry.IconAlt,
				Day:        entry.Day,
				Activities: strings.Join(entry.Activity, "<br>"),
			})
		}
		data.TimelineContainers = append(data.TimelineContainers, items)
	}

	for i, chunk := range chunkTimeline(content.Timeline, dayChunkSize) {
		slide := daySlide{
			Number:     4 + i,
			RangeLabel: fmt.Sprintf("%d-%d", i*dayChunkSize+1, min((i+1)*dayChunkSize, len(content.Timeline))),
			Title:      content.ItineraryTitle,
		}
		for _, entry := range chunk {
			slide.Cards = append(slide.Cards, dayCard{
				Heading:      entry.Day + " - " + entry.Title,
				Descriptions: entry.Descriptions,
			})
		}
		data.DaySlides = append(data.DaySlides, slide)
	}

	for i, gallery := range content.Galleries {
		data.GallerySlides = append(data.GallerySlides, gallerySlide{
			Number: 7 + i,
			Title:  gallery.Title,
			Images: gallery.Images,
		})
	}

	return data
}

// backgroundStyle selects the gradient-over-image background for a slot,
// or solid black when the slot has no filename. A missing background is a
// documented default, never an error.
func backgroundStyle(filename string) string {
	if filename == "" {
		return "background: black;"
	}
	return fmt.Sprintf("background: linear-gradient(rgba(0, 0, 0, 0.4), rgba(0, 0, 0, 0.4)), url('images/tempPhotos/%s') center/cover;", filename)
}

func chunkTimeline(entries []types.TimelineEntry, size int) [][]types.TimelineEntry {
	var chunks [][]types.TimelineEntry
	for i := 0; i < len(entries); i += size {
		chunks = append(chunks, entries[i:min(i+size, len(entries))])
	}
	return chunks
}
