package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJSONBlock(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "json code block",
			input:    "```json\n[{\"label\": \"date\"}]\n```",
			expected: `[{"label": "date"}]`,
		},
		{
			name:     "generic code block",
			input:    "```\n{\"key\": \"value\"}\n```",
			expected: `{"key": "value"}`,
		},
		{
			name:     "plain array",
			input:    `[{"label": "organization", "text": "Acme"}]`,
			expected: `[{"label": "organization", "text": "Acme"}]`,
		},
		{
			name:     "preamble and trailing prose",
			input:    "Here are the entities:\n[{\"text\": \"5 years\"}]\nLet me know!",
			expected: `[{"text": "5 years"}]`,
		},
		{
			name:     "brackets inside strings",
			input:    `{"text": "Acme [EMEA] {Ltd}"} trailing`,
			expected: `{"text": "Acme [EMEA] {Ltd}"}`,
		},
		{
			name:     "escaped quotes",
			input:    `Result: {"text": "He said \"hi\""}`,
			expected: `{"text": "He said \"hi\""}`,
		},
		{
			name:     "no json",
			input:    "nothing here",
			expected: "nothing here",
		},
		{
			name:     "unbalanced",
			input:    `[{"text": "x"}`,
			expected: `[{"text": "x"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanJSONBlock(tt.input))
		})
	}
}
