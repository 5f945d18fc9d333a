package render

import (
	"strings"
	"testing"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"clean text untouched", "Café Lumière", "Café Lumière"},
		{"control characters removed", "Noodle\x07 Bar\x1b", "Noodle Bar"},
		{"tab kept", "a\tb", "a\tb"},
		{"nbsp replaced", "Taco\u00a0Stand", "Taco Stand"},
		{"invalid byte dropped", "Pho\xffHouse", "PhoHouse"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.input); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		want     string
	}{
		{"no truncation needed", "hello", 10, "hello"},
		{"exact fit", "hello", 5, "hello"},
		{"truncation with ellipsis", "hello world", 8, "hello..."},
		{"very short max width", "hello", 3, "..."},
		{"empty string", "", 10, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Truncate(tt.input, tt.maxWidth)
			if got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.maxWidth, got, tt.want)
			}
		})
	}
}

func TestTruncateAndPad(t *testing.T) {
	tests := []struct {
		input string
		width int
		want  string
	}{
		{"abc", 6, "abc   "},
		{"abcdefgh", 6, "abc..."},
		{"寿司", 6, "寿司  "},
	}
	for _, tt := range tests {
		if got := TruncateAndPad(tt.input, tt.width); got != tt.want {
			t.Errorf("TruncateAndPad(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.want)
		}
	}
}

func TestRow(t *testing.T) {
	tests := []struct {
		name    string
		left    string
		right   string
		width   int
		wantLen int
	}{
		{"basic row", "left", "right", 20, 20},
		{"tight fit", "left", "right", 10, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Row(tt.left, tt.right, tt.width)
			if len(got) < tt.wantLen {
				t.Errorf("Row(%q, %q, %d) length = %d, want >= %d", tt.left, tt.right, tt.width, len(got), tt.wantLen)
			}
			if !strings.HasPrefix(got, tt.left) {
				t.Errorf("Row should start with %q, got %q", tt.left, got)
			}
			if !strings.HasSuffix(got, tt.right) {
				t.Errorf("Row should end with %q, got %q", tt.right, got)
			}
		})
	}
}

func TestCenter(t *testing.T) {
	if got := Center("ab", 6); got != "  ab  " {
		t.Errorf("Center = %q", got)
	}
	if got := Center("abc", 6); got != " abc  " {
		t.Errorf("Center odd = %q", got)
	}
	if got := Center("abcdef", 3); got != "abcdef" {
		t.Errorf("Center overflow = %q", got)
	}
}

func TestStars(t *testing.T) {
	tests := []struct {
		rating float64
		want   string
	}{
		{4.6, "★★★★★"},
		{4.4, "★★★★☆"},
		{0, "☆☆☆☆☆"},
		{-3, "☆☆☆☆☆"},
		{9, "★★★★★"},
	}
	for _, tt := range tests {
		if got := Stars(tt.rating); got != tt.want {
			t.Errorf("Stars(%v) = %q, want %q", tt.rating, got, tt.want)
		}
	}
}

func TestReviews(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "0 reviews"},
		{1, "1 review"},
		{1204, "1,204 reviews"},
		{1500000, "1,500,000 reviews"},
	}
	for _, tt := range tests {
		if got := Reviews(tt.n); got != tt.want {
			t.Errorf("Reviews(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestEmptyLine(t *testing.T) {
	if got := EmptyLine(5); got != "     " {
		t.Errorf("EmptyLine(5) = %q", got)
	}
	if got := EmptyLine(-1); got != "" {
		t.Errorf("EmptyLine(-1) = %q", got)
	}
}
