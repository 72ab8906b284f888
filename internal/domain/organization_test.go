package domain

import "testing"

func TestNormalizePhones(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{
			name:     "formatting characters are stripped",
			input:    []string{"+7 (495) 123-45-67"},
			expected: []string{"74951234567"},
		},
		{
			name:     "duplicates collapse keeping first occurrence order",
			input:    []string{"+7 916 111-22-33", "8-800-700-06-11", "79161112233"},
			expected: []string{"79161112233", "88007000611"},
		},
		{
			name:     "entries without digits are dropped",
			input:    []string{"---", "  ", "+7 495 123 45 67"},
			expected: []string{"74951234567"},
		},
		{
			name:     "all-garbage input yields empty set",
			input:    []string{"abc", "()"},
			expected: []string{},
		},
		{
			name:     "nil input yields empty set",
			input:    nil,
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizePhones(tt.input)
			if len(got) != len(tt.expected) {
				t.Fatalf("NormalizePhones(%v) expected %v, got %v", tt.input, tt.expected, got)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Fatalf("NormalizePhones(%v) expected %v, got %v", tt.input, tt.expected, got)
				}
			}
		})
	}
}

func TestParseShape(t *testing.T) {
	tests := []struct {
		value    string
		expected Shape
		ok       bool
	}{
		{"", ShapeCircle, true},
		{"circle", ShapeCircle, true},
		{"square", ShapeSquare, true},
		{"triangle", "", false},
		{"Circle", "", false},
	}

	for _, tt := range tests {
		got, ok := ParseShape(tt.value)
		if ok != tt.ok {
			t.Fatalf("ParseShape(%q) ok expected %v, got %v", tt.value, tt.ok, ok)
		}
		if ok && got != tt.expected {
			t.Fatalf("ParseShape(%q) expected %v, got %v", tt.value, tt.expected, got)
		}
	}
}
