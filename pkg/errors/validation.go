package errors

import (
	"strings"
	"unicode"
)

// maxPathLen bounds user supplied paths.
const maxPathLen = 4096

// ValidateFilename validates an output file name.
// It must be a plain base name: output files always land in the output
// directory, never elsewhere.
func ValidateFilename(name string) error {
	if name == "" {
		return New(ErrCodeInvalidPath, "file name cannot be empty")
	}
	if strings.ContainsAny(name, "/\\") {
		return New(ErrCodeInvalidPath, "file name %q cannot contain path separators", name)
	}
	if name == "." || name == ".." {
		return New(ErrCodeInvalidPath, "file name %q is not a file", name)
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "file name contains invalid control characters")
		}
	}
	return nil
}

// ValidatePath validates an input file or output directory path.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	if len(path) > maxPathLen {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLen)
	}

	for _, r := range path {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid control characters")
		}
	}

	return nil
}
