package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJSONBlockStripsCodeFences(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "json fence",
			input:    "```json\n{\"name\": \"Jane Doe\"}\n```",
			expected: `{"name": "Jane Doe"}`,
		},
		{
			name:     "bare fence",
			input:    "```\n{\"name\": \"Jane Doe\"}\n```",
			expected: `{"name": "Jane Doe"}`,
		},
		{
			name:     "fence with another language tag",
			input:    "```javascript\n{\"name\": \"Jane Doe\"}\n```",
			expected: `{"name": "Jane Doe"}`,
		},
		{
			name:     "already plain",
			input:    `{"name": "Jane Doe"}`,
			expected: `{"name": "Jane Doe"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanJSONBlock(tt.input))
		})
	}
}

func TestCleanJSONBlockStripsChatter(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "preamble before object",
			input:    "As requested, here is the JSON:\n{\"name\": \"Jane Doe\"}",
			expected: `{"name": "Jane Doe"}`,
		},
		{
			name:     "long conversational preamble",
			input:    "I read through the resume carefully. Here is the structured output:\n\n{\"name\": \"Jane Doe\", \"email\": \"jane@example.com\"}",
			expected: `{"name": "Jane Doe", "email": "jane@example.com"}`,
		},
		{
			name:     "preamble before array",
			input:    "Here are the skills:\n[\"Go\", \"Python\"]",
			expected: `["Go", "Python"]`,
		},
		{
			name:     "trailing sign-off",
			input:    "{\"name\": \"Jane Doe\"}\n\nLet me know if you need anything else!",
			expected: `{"name": "Jane Doe"}`,
		},
		{
			name:     "nested objects",
			input:    "Output:\n{\"contact\": {\"email\": \"jane@example.com\"}}",
			expected: `{"contact": {"email": "jane@example.com"}}`,
		},
		{
			name:     "escaped quotes survive",
			input:    "Result: {\"summary\": \"Known as \\\"the fixer\\\"\"}",
			expected: `{"summary": "Known as \"the fixer\""}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanJSONBlock(tt.input))
		})
	}
}

func TestExtractJSONObject(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "simple object",
			input:    `{"name": "Jane Doe"}`,
			expected: `{"name": "Jane Doe"}`,
		},
		{
			name:     "nested object",
			input:    `{"contact": {"phone": "415-555-0199"}}`,
			expected: `{"contact": {"phone": "415-555-0199"}}`,
		},
		{
			name:     "object holding an array",
			input:    `{"skills": ["Go", "SQL"]}`,
			expected: `{"skills": ["Go", "SQL"]}`,
		},
		{
			name:     "trailing text dropped",
			input:    `{"name": "Jane Doe"} and some more text`,
			expected: `{"name": "Jane Doe"}`,
		},
		{
			name:     "braces inside a string",
			input:    `{"template": "Hello {name}!"}`,
			expected: `{"template": "Hello {name}!"}`,
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "no leading brace",
			input:    "not json",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractJSONObject(tt.input))
		})
	}
}

func TestExtractJSONArray(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "simple array",
			input:    `["Go", "Python", "SQL"]`,
			expected: `["Go", "Python", "SQL"]`,
		},
		{
			name:     "nested arrays",
			input:    `[[1, 2], [3, 4]]`,
			expected: `[[1, 2], [3, 4]]`,
		},
		{
			name:     "array of objects",
			input:    `[{"name": "Jane"}, {"name": "John"}]`,
			expected: `[{"name": "Jane"}, {"name": "John"}]`,
		},
		{
			name:     "trailing text dropped",
			input:    `[1, 2, 3] extra stuff`,
			expected: `[1, 2, 3]`,
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "no leading bracket",
			input:    "not an array",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractJSONArray(tt.input))
		})
	}
}
