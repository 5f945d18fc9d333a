//nolint:goconst // test cases intentionally repeat strings for readability
package errmsg

import (
	"errors"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpCatalogOpen,
			err:      nil,
			expected: "",
		},
		{
			name:     "formats error with operation",
			op:       OpCatalogOpen,
			err:      errors.New("database is locked"),
			expected: "Failed to open place catalog: database is locked",
		},
		{
			name:     "config operation",
			op:       OpConfigLoad,
			err:      errors.New("toml: line 3: expected '='"),
			expected: "Failed to load config: toml: line 3: expected '='",
		},
		{
			name:     "layout operation",
			op:       OpSheetResize,
			err:      errors.New("terminal too small"),
			expected: "Failed to resize sheet: terminal too small",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Format(tt.op, tt.err)
			if result != tt.expected {
				t.Errorf("Format(%q, %v) = %q, want %q", tt.op, tt.err, result, tt.expected)
			}
		})
	}
}

func TestFormatWith(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		context  string
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpPlaceLoad,
			context:  "Sushi Go",
			err:      nil,
			expected: "",
		},
		{
			name:     "formats error with context",
			op:       OpPlaceLoad,
			context:  "Sushi Go",
			err:      errors.New("not found"),
			expected: "Failed to load place 'Sushi Go': not found",
		},
		{
			name:     "empty context falls back to Format",
			op:       OpCatalogSeed,
			context:  "",
			err:      errors.New("disk full"),
			expected: "Failed to seed place catalog: disk full",
		},
		{
			name:     "snap with target name",
			op:       OpSheetSnap,
			context:  "halfway",
			err:      errors.New("unknown snap point"),
			expected: "Failed to snap sheet 'halfway': unknown snap point",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatWith(tt.op, tt.context, tt.err)
			if result != tt.expected {
				t.Errorf("FormatWith(%q, %q, %v) = %q, want %q", tt.op, tt.context, tt.err, result, tt.expected)
			}
		})
	}
}
