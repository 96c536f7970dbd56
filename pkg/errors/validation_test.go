package errors

import (
	"strings"
	"testing"
)

func TestValidateNodeName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"numeric id", "000001", false},
		{"crash id", "crash-000002", false},
		{"non-crash id", "nc-143", false},
		{"sha1", "da39a3ee5e6b4b0d3255bfef95601890afd80709", false},
		{"raw file name", "hello.attach-123.pdf", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", 300), true},
		{"slash", "queue/000001", true},
		{"backslash", `queue\000001`, true},
		{"parent dir", "..", true},
		{"current dir", ".", true},
		{"null byte", "foo\x00bar", true},
		{"newline", "foo\nbar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateNodeName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateNodeName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidNodeName) {
				t.Errorf("ValidateNodeName(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidNodeName)
			}
		})
	}
}

func TestValidateFormats(t *testing.T) {
	allowed := []string{"svg", "png", "dot"}
	tests := []struct {
		name    string
		formats []string
		wantErr bool
	}{
		{"single", []string{"svg"}, false},
		{"multiple", []string{"svg", "png"}, false},
		{"empty", nil, true},
		{"unknown", []string{"pdf"}, true},
		{"mixed", []string{"svg", "jpeg"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFormats(tt.formats, allowed)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFormats(%v) error = %v, wantErr %v", tt.formats, err, tt.wantErr)
			}
		})
	}
}
