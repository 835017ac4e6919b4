package types

// TrekOption represents one bookable trip option shown on the cover slide.
type TrekOption struct {
	Title        string   `json:"title"`
	Destinations []string `json:"destinations"`
	Price        string   `json:"price,omitempty"`
	PriceNote    string   `json:"priceNote,omitempty"`
}

// TimelineEntry represents a single day in the overview timeline and the
// day-by-day itinerary.
type TimelineEntry struct {
	Day          string   `json:"day"`
	IconPath     string   `json:"iconPath"`
	IconAlt      string   `json:"iconAlt"`
	Activity     []string `json:"activity"`
	Date         string   `json:"date"`
	Title        string   `json:"title"`
	Descriptions []string `json:"descriptions"`
}

// IncludedItem is one entry of the "What's Included" section.
type IncludedItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// GalleryImage references one photo inside a gallery slide. Src is a bare
// filename from the bucket catalog, no path prefix.
type GalleryImage struct {
	Src string `json:"src"`
	Alt string `json:"alt"`
}

// Gallery is one themed photo gallery slide.
type Gallery struct {
	Title  string         `json:"title"`
	Images []GalleryImage `json:"images"`
}

// BackgroundImages maps the named background slots to bucket image
// filenames. Any slot may be empty; the renderer falls back to solid black.
type BackgroundImages struct {
	Cover     string `json:"cover,omitempty"`
	Overview  string `json:"overview,omitempty"`
	Included  string `json:"included,omitempty"`
	Itinerary string `json:"itinerary,omitempty"`
	Gallery   string `json:"gallery,omitempty"`
}

// BrochureContent is the central artifact of a run: the document schema
// synthesized by the LLM from trip data, consumed read-only by the renderer.
// The renderer must tolerate any optional field being absent; the only
// validation applied after JSON parsing is advisory.
type BrochureContent struct {
	TripTitle    string `json:"tripTitle"`
	TripSubtitle string `json:"tripSubtitle,omitempty"`

	TrekOptions []TrekOption `json:"trekOptions"`

	OverviewTitle    string          `json:"overviewTitle"`
	OverviewSubtitle string          `json:"overviewSubtitle"`
	Timeline         []TimelineEntry `json:"timeline"`

	IncludedTitle string         `json:"includedTitle"`
	IncludedItems []IncludedItem `json:"includedItems"`

	ItineraryTitle string `json:"itineraryTitle"`

	Galleries []Gallery `json:"galleries"`

	BackgroundImages BackgroundImages `json:"backgroundImages"`

	FinalMessage string `json:"finalMessage,omitempty"`

	ImagesUsed []string `json:"imagesUsed"`
}

// ReferencedImages returns every bucket image filename the content refers to:
// background slots, gallery photos, and the explicit imagesUsed list.
// Duplicates are removed, first-seen order is preserved.
func (b *BrochureContent) ReferencedImages() []string {
	seen := make(map[string]bool)
	var names []string

	add := func(name string) {
		if name == "" || seen[name] {
			return
		}
		seen[name] = true
		names = append(names, name)
	}

	for _, name := range b.ImagesUsed {
		add(name)
	}
	add(b.BackgroundImages.Cover)
	add(b.BackgroundImages.Overview)
	add(b.BackgroundImages.Included)
	add(b.BackgroundImages.Itinerary)
	add(b.BackgroundImages.Gallery)
	for _, gallery := range b.Galleries {
		for _, img := range gallery.Images {
			add(img.Src)
		}
	}

	return names
}
