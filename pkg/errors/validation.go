package errors

import (
	"strings"
	"unicode"
)

// ValidatePath validates a record file path given on the command line.
//
// Validation rules:
//   - Path cannot be empty or only whitespace
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
//   - Must not end in a path separator (it names a file, not a directory)
func ValidatePath(path string) error {
	if strings.TrimSpace(path) == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, "\\") {
		return New(ErrCodeInvalidPath, "path must name a file, not a directory: %q", path)
	}

	return nil
}
