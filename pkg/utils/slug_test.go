package utils

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Simple two word name",
			input:    "Red Shoes",
			expected: "red-shoes",
		},
		{
			name:     "Already lowercase",
			input:    "red-shoes",
			expected: "red-shoes",
		},
		{
			name:     "Multiple spaces collapse",
			input:    "Red   Shoes",
			expected: "red-shoes",
		},
		{
			name:     "Leading and trailing whitespace",
			input:    "  Red Shoes  ",
			expected: "red-shoes",
		},
		{
			name:     "Tabs and newlines",
			input:    "Red\tShoes\nSale",
			expected: "red-shoes-sale",
		},
		{
			name:     "Empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "Single word",
			input:    "Shoes",
			expected: "shoes",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Slugify(tt.input)
			if got != tt.expected {
				t.Errorf("Slugify(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestSlugifyIdempotent(t *testing.T) {
	inputs := []string{"Red Shoes", "Premium  Leather Bag", "a B c", "already-slugged"}
	for _, in := range inputs {
		once := Slugify(in)
		twice := Slugify(once)
		if once != twice {
			t.Errorf("Slugify not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}
