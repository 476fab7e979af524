package errors

import (
	"strings"
	"unicode"
)

// MaxNodeIDLength bounds the length of a node identifier.
const MaxNodeIDLength = 256

// ValidateNodeID validates a node identifier from user input.
//
// The rules are:
//   - No empty IDs
//   - No control characters or null bytes
//   - No commas, which separate the endpoints of an edge key
//   - Maximum length of MaxNodeIDLength bytes
func ValidateNodeID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidInput, "node ID cannot be empty")
	}

	if len(id) > MaxNodeIDLength {
		return New(ErrCodeInvalidInput, "node ID too long (max %d characters)", MaxNodeIDLength)
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "node ID contains invalid control characters")
		}
	}

	if strings.Contains(id, ",") {
		return New(ErrCodeInvalidInput, "node ID cannot contain a comma: %q", id)
	}

	return nil
}

// ValidateLimit checks a count against a configured maximum. A limit of
// zero or less disables the check.
func ValidateLimit(what string, n, limit int) error {
	if limit > 0 && n > limit {
		return New(ErrCodeGraphTooLarge, "too many %s: %d (max %d)", what, n, limit)
	}
	return nil
}
