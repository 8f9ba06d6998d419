// Package identifier contains the pure rules for player identifiers.
// An identifier is a 32-character lowercase hexadecimal token (MD5-shaped).
// Checks are total: any input yields a result, nothing panics.
package identifier

import (
	"fmt"
	"unicode/utf8"
)

// Length is the exact number of characters in a player identifier.
const Length = 32

// Result represents the outcome of checking an identifier.
type Result struct {
	Valid  bool
	Reason string
}

// Validate reports whether v is a valid player identifier.
// Non-string input (including nil) is never valid.
func Validate(v any) bool {
	return Check(v).Valid
}

// IsValid reports whether id is a valid player identifier.
func IsValid(id string) bool {
	return checkString(id).Valid
}

// Check evaluates v against the identifier rules and reports the first one
// that fails.
// Rules:
// - Must be a string (or a non-nil *string)
// - Must be exactly 32 characters long
// - Must contain only hexadecimal digits
// - Must not contain uppercase letters
func Check(v any) Result {
	switch id := v.(type) {
	case string:
		return checkString(id)
	case *string:
		if id == nil {
			return Result{Valid: false, Reason: "not a string"}
		}
		return checkString(*id)
	default:
		return Result{Valid: false, Reason: "not a string"}
	}
}

func checkString(id string) Result {
	// Rule 2: exact length
	if len(id) != Length {
		return Result{
			Valid:  false,
			Reason: fmt.Sprintf("length %d, want %d", len(id), Length),
		}
	}

	// Rule 3: hexadecimal digits only
	for i := 0; i < len(id); i++ {
		if !isHexDigit(id[i]) {
			r, _ := utf8.DecodeRuneInString(id[i:])
			return Result{
				Valid:  false,
				Reason: fmt.Sprintf("invalid character %q at position %d", r, i),
			}
		}
	}

	// Rule 4: lowercase only
	for i := 0; i < len(id); i++ {
		if id[i] >= 'A' && id[i] <= 'F' {
			return Result{
				Valid:  false,
				Reason: "contains uppercase characters",
			}
		}
	}

	return Result{Valid: true}
}

func isHexDigit(c byte) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case c >= 'a' && c <= 'f':
		return true
	case c >= 'A' && c <= 'F':
		return true
	}
	return false
}
