package schemas

import (
	_ "embed"
)

// The brochure content schema is advisory: the synthesizer logs violations
// but never rejects a response over them, because the renderer is required
// to tolerate optional and missing fields.

//go:embed brochure_content.schema.json
var brochureContentSchema string

// ValidateBrochureContent checks LLM-produced brochure JSON against the
// embedded schema. See ValidateJSONString for the error contract.
func ValidateBrochureContent(jsonContent string) error {
	return ValidateJSONString(brochureContentSchema, jsonContent)
}
