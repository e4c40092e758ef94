package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractHashtags(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{
			name:     "no hashtags",
			text:     "just a plain post about nothing",
			expected: nil,
		},
		{
			name:     "single hashtag",
			text:     "good morning #coffee",
			expected: []string{"coffee"},
		},
		{
			name:     "multiple hashtags",
			text:     "#go is great for #backend work",
			expected: []string{"go", "backend"},
		},
		{
			name:     "duplicates keep first occurrence",
			text:     "#go #go #backend #go",
			expected: []string{"go", "backend"},
		},
		{
			name:     "surrounding hash runs trimmed",
			text:     "tagged ##double## and #trailing#",
			expected: []string{"double", "trailing"},
		},
		{
			name:     "bare hash ignored",
			text:     "just a # symbol and ## too",
			expected: nil,
		},
		{
			name:     "hash inside word not a tag",
			text:     "c# is not extracted but #csharp is",
			expected: []string{"csharp"},
		},
		{
			name:     "whitespace variants",
			text:     "#one\t#two\n#three",
			expected: []string{"one", "two", "three"},
		},
		{
			name:     "empty text",
			text:     "",
			expected: nil,
		},
		{
			name:     "case preserved",
			text:     "#Go and #go are distinct",
			expected: []string{"Go", "go"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractHashtags(tt.text))
		})
	}
}
