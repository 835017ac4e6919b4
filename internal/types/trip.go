// Package types provides type definitions for structured data used throughout the brochure-agent system.
package types

// TripAddOn represents one line item of an itinerary as parsed from the CSV payload.
// Identity is positional (CSV row order); no uniqueness is enforced on the identifiers.
type TripAddOn struct {
	TripID    string  `json:"trip_id"`
	AddOnID   string  `json:"add_on_id"`
	StartDate string  `json:"start_date"`
	EndDate   string  `json:"end_date"`
	NDays     float64 `json:"n_days"`
	NUsers    float64 `json:"n_users"`
	Place     string  `json:"place"`
	Item      string  `json:"item"`
	Detail    string  `json:"detail"`
}
