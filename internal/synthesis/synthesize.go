// Package synthesis turns trip add-on records into brochure content via the LLM collaborator.
package synthesis

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"github.com/dipyourtrip/brochure-agent/internal/llm"
	"github.com/dipyourtrip/brochure-agent/internal/prompts"
	"github.com/dipyourtrip/brochure-agent/internal/schemas"
	"github.com/dipyourtrip/brochure-agent/internal/types"
)

const (
	// temperature biases the model toward creative but bounded variation.
	temperature = 0.7
	// maxTokens is the response budget for one brochure.
	maxTokens = 8000

	promptFile = "brochure.json"
)

// Synthesizer builds brochure content from trip data. The LLM client is
// injected once at startup.
type Synthesizer struct {
	client llm.Client
}

// NewSynthesizer creates a Synthesizer backed by the given LLM client.
func NewSynthesizer(client llm.Client) *Synthesizer {
	return &Synthesizer{client: client}
}

// Synthesize sends the add-ons and the available image catalog to the LLM
// and parses its response into the brochure content schema. The schema is
// over-specified in the prompt to maximize the odds of directly-parseable
// output; the only validation beyond JSON syntax is advisory.
func (s *Synthesizer) Synthesize(ctx context.Context, addOns []types.TripAddOn, imageNames []string) (*types.BrochureContent, error) {
	prompt, err := buildPrompt(addOns, imageNames)
	if err != nil {
		return nil, &ContentError{Message: "failed to build prompt", Cause: err}
	}

	resp, err := s.client.Generate(ctx, prompt, llm.Options{
		Temperature:  temperature,
		MaxTokens:    maxTokens,
		SystemPrompt: prompts.MustGet(promptFile, "system"),
	})
	if err != nil {
		return nil, &LLMError{Message: "generate brochure content", Cause: err}
	}
	log.Printf("LLM produced %d output tokens with model %s", resp.Usage.OutputTokens, resp.Model)

	jsonContent := llm.CleanJSONBlock(resp.Content)

	var content types.BrochureContent
	if err := json.Unmarshal([]byte(jsonContent), &content); err != nil {
		return nil, &ContentError{Message: "response is not valid JSON", Cause: err}
	}

	reportSchemaViolations(jsonContent)
	reportUnknownImages(&content, imageNames)

	return &content, nil
}

// buildPrompt assembles the fixed instruction with the add-ons embedded as
// structured data and the full image-name catalog.
func buildPrompt(addOns []types.TripAddOn, imageNames []string) (string, error) {
	tripJSON, err := json.MarshalIndent(addOns, "", "  ")
	if err != nil {
		return "", err
	}
	namesJSON, err := json.MarshalIndent(imageNames, "", "  ")
	if err != nil {
		return "", err
	}

	template, err := prompts.Get(promptFile, "synthesize")
	if err != nil {
		return "", err
	}

	return prompts.Format(template, map[string]string{
		"TripData":   string(tripJSON),
		"ImageNames": string(namesJSON),
	}), nil
}

// reportSchemaViolations logs schema mismatches in the LLM output. The
// renderer tolerates missing fields, so violations never fail the run.
func reportSchemaViolations(jsonContent string) {
	err := schemas.ValidateBrochureContent(jsonContent)
	if err == nil {
		return
	}

	var ve *schemas.ValidationError
	if errors.As(err, &ve) {
		for _, fieldErr := range ve.Errors {
			log.Printf("Warning: brochure content schema: %s: %s", fieldErr.Field, fieldErr.Message)
		}
		return
	}
	log.Printf("Warning: brochure content schema check unavailable: %v", err)
}

// reportUnknownImages flags filenames the model invented instead of taking
// from the offered catalog. Advisory only: downstream stages degrade to a
// black background or an unresolved reference for unknown names.
func reportUnknownImages(content *types.BrochureContent, imageNames []string) {
	catalog := make(map[string]bool, len(imageNames))
	for _, name := range imageNames {
		catalog[name] = true
	}

	for _, name := range content.ReferencedImages() {
		if !catalog[name] {
			log.Printf("Warning: brochure references image %q not present in the offered catalog", name)
		}
	}
}
