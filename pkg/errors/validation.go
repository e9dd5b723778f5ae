package errors

import (
	"strings"
	"unicode"
)

// ValidatePermutation checks that perm lists every id in [1, n] exactly once.
func ValidatePermutation(perm []int, n int) error {
	if len(perm) != n {
		return New(ErrCodeInvalidPermutation, "permutation has %d entries, want %d", len(perm), n)
	}
	seen := make([]bool, n+1)
	for i, id := range perm {
		if id < 1 || id > n {
			return New(ErrCodeInvalidPermutation, "position %d: element %d out of range [1, %d]", i+1, id, n)
		}
		if seen[id] {
			return New(ErrCodeInvalidPermutation, "position %d: element %d appears twice", i+1, id)
		}
		seen[id] = true
	}
	return nil
}

// ValidatePath validates a user-supplied matrix file path.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
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

	return nil
}

// ValidateCacheURL validates a cache backend URL.
// The empty string and "none" disable caching and are always accepted.
func ValidateCacheURL(rawURL string) error {
	if rawURL == "" || rawURL == "none" {
		return nil
	}
	for _, scheme := range []string{"file://", "redis://", "rediss://", "mongodb://", "mongodb+srv://"} {
		if strings.HasPrefix(rawURL, scheme) {
			return nil
		}
	}
	return New(ErrCodeInvalidInput, "unsupported cache URL %q (want file://, redis://, mongodb:// or none)", rawURL)
}
