package errors

import (
	"slices"
	"strings"
	"unicode"
)

// ValidateNodeName validates a node name supplied on the command line.
//
// Node names are joined onto seed directories by the predecessor-chain
// analyzer, so the rules reject anything that could escape that directory:
//   - No empty names
//   - No control characters
//   - No path separators or parent directory references
//   - Maximum length of 255 characters (a single path component)
func ValidateNodeName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidNodeName, "node name cannot be empty")
	}

	if len(name) > 255 {
		return New(ErrCodeInvalidNodeName, "node name too long (max 255 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidNodeName, "node name contains invalid control characters")
		}
	}

	if strings.ContainsAny(name, `/\`) {
		return New(ErrCodeInvalidNodeName, "node name cannot contain path separators: %q", name)
	}

	if name == "." || name == ".." {
		return New(ErrCodeInvalidNodeName, "node name cannot be %q", name)
	}

	return nil
}

// ValidateFormats checks that every requested output format is supported.
// The allowed slice lists the accepted formats, e.g. {"svg", "png", "dot"}.
func ValidateFormats(formats, allowed []string) error {
	if len(formats) == 0 {
		return New(ErrCodeInvalidFormat, "at least one output format is required")
	}
	for _, f := range formats {
		if !slices.Contains(allowed, f) {
			return New(ErrCodeInvalidFormat, "unsupported format %q (available: %s)", f, strings.Join(allowed, ", "))
		}
	}
	return nil
}
