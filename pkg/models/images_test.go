package models

import (
	"reflect"
	"testing"
)

func TestNormalizeImages(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected []string
	}{
		{
			name:     "Nil input",
			input:    nil,
			expected: nil,
		},
		{
			name:     "Empty string",
			input:    "",
			expected: nil,
		},
		{
			name:     "JSON array of strings",
			input:    `["https://cdn.example.com/a.jpg","https://cdn.example.com/b.jpg"]`,
			expected: []string{"https://cdn.example.com/a.jpg", "https://cdn.example.com/b.jpg"},
		},
		{
			name:     "JSON array of url objects",
			input:    `[{"url":"https://cdn.example.com/a.jpg"}]`,
			expected: []string{"https://cdn.example.com/a.jpg"},
		},
		{
			name:     "Bare URL string",
			input:    "https://cdn.example.com/a.jpg",
			expected: []string{"https://cdn.example.com/a.jpg"},
		},
		{
			name:     "Already a string slice",
			input:    []string{"x.jpg"},
			expected: []string{"x.jpg"},
		},
		{
			name:     "Decoded JSON slice",
			input:    []any{"a.jpg", map[string]any{"url": "b.jpg"}, 42},
			expected: []string{"a.jpg", "b.jpg"},
		},
		{
			name:     "JSON null",
			input:    "null",
			expected: nil,
		},
		{
			name:     "Unsupported type",
			input:    3.14,
			expected: nil,
		},
		{
			name:     "Empty entries dropped",
			input:    `["", "a.jpg"]`,
			expected: []string{"a.jpg"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeImages(tt.input)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("NormalizeImages(%v) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}
