// Package parsing converts the base64-encoded CSV payload into structured trip add-on records.
package parsing

import (
	"encoding/base64"
	"strconv"
	"strings"

	"github.com/dipyourtrip/brochure-agent/internal/types"
)

// numericFields are the header names whose values parse as floats,
// defaulting to zero when missing or malformed.
var numericFields = map[string]bool{
	"n_days":  true,
	"n_users": true,
}

// ParseCSVPayload decodes a base64 CSV payload and parses it into trip
// add-on records. The payload format deliberately supports no quoting or
// escaping: lines split on newlines, fields split on commas, first
// non-blank line is the header row.
func ParseCSVPayload(payload string) ([]types.TripAddOn, error) {
	if payload == "" {
		return nil, &InputError{Message: "no CSV data provided"}
	}

	decoded, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, &InputError{Message: "CSV payload is not valid base64", Cause: err}
	}

	return parseCSV(string(decoded))
}

// parseCSV maps CSV text to records positionally: each data row is zipped
// with the header row. Missing trailing fields default to the empty string
// (or zero for numeric fields); extra fields are ignored.
func parseCSV(csvText string) ([]types.TripAddOn, error) {
	var lines []string
	for _, line := range strings.Split(csvText, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return nil, &ParseError{Message: "CSV payload contains no rows"}
	}

	headers := strings.Split(lines[0], ",")
	for i := range headers {
		headers[i] = strings.TrimSpace(headers[i])
	}

	records := make([]types.TripAddOn, 0, len(lines)-1)
	for _, line := range lines[1:] {
		values := strings.Split(line, ",")

		record := types.TripAddOn{}
		for i, header := range headers {
			value := ""
			if i < len(values) {
				value = strings.TrimSpace(values[i])
			}
			assignField(&record, header, value)
		}
		records = append(records, record)
	}

	return records, nil
}

// assignField sets one named CSV cell on the record, applying the
// per-field defaulting rules.
func assignField(record *types.TripAddOn, header, value string) {
	if numericFields[header] {
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			parsed = 0
		}
		switch header {
		case "n_days":
			record.NDays = parsed
		case "n_users":
			record.NUsers = parsed
		}
		return
	}

	switch header {
	case "trip_id":
		record.TripID = value
	case "add_on_id":
		record.AddOnID = value
	case "start_date":
		record.StartDate = value
	case "end_date":
		record.EndDate = value
	case "place":
		record.Place = value
	case "item":
		record.Item = value
	case "detail":
		record.Detail = value
	}
}
