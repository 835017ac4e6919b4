package llm

import (
	"testing"
)

func TestCleanJSONBlock(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "json code block",
			input:    "```json\n{\"tripTitle\": \"Patagonia\"}\n```",
			expected: `{"tripTitle": "Patagonia"}`,
		},
		{
			name:     "generic code block",
			input:    "```\n{\"tripTitle\": \"Patagonia\"}\n```",
			expected: `{"tripTitle": "Patagonia"}`,
		},
		{
			name:     "code block with language",
			input:    "```javascript\n{\"tripTitle\": \"Patagonia\"}\n```",
			expected: `{"tripTitle": "Patagonia"}`,
		},
		{
			name:     "plain JSON untouched",
			input:    `{"tripTitle": "Patagonia"}`,
			expected: `{"tripTitle": "Patagonia"}`,
		},
		{
			name:     "surrounding whitespace trimmed",
			input:    "  \n{\"a\": 1}\n  ",
			expected: `{"a": 1}`,
		},
		{
			name:     "multiline body preserved",
			input:    "```json\n{\n  \"a\": 1,\n  \"b\": 2\n}\n```",
			expected: "{\n  \"a\": 1,\n  \"b\": 2\n}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CleanJSONBlock(tt.input)
			if result != tt.expected {
				t.Errorf("CleanJSONBlock() = %q, want %q", result, tt.expected)
			}
		})
	}
}
