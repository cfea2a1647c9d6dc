package keys

import (
	"strings"

	"github.com/rabbitconf/rabbitconf/internal/conf/pattern"
)

// maxSuggestions caps the result of SuggestSimilarKeys.
const maxSuggestions = 5

// IsValidKeyFormat reports whether key is syntactically acceptable as a
// configuration key. A valid key is one or more non-empty dot-separated
// segments; a segment is either all digits (positional entries such as
// "auth_backends.1") or starts with a letter or underscore followed by
// letters, digits, underscores, or hyphens. Leading, trailing, or doubled
// dots are rejected because they produce empty segments.
func IsValidKeyFormat(key string) bool {
	if key == "" {
		return false
	}
	for _, seg := range strings.Split(key, ".") {
		if !validSegment(seg) {
			return false
		}
	}
	return true
}

// IsKnownKey reports whether key matches at least one template in the
// known-key catalog.
func IsKnownKey(key string) bool {
	for _, tmpl := range knownKeyPatterns {
		if pattern.Matches(key, tmpl) {
			return true
		}
	}
	return false
}

// SuggestSimilarKeys returns up to five catalog templates whose first
// segment equals the first segment of key, in catalog order. The result
// is empty when nothing shares the first segment. This is a cheap prefix
// heuristic, not an edit-distance match.
func SuggestSimilarKeys(key string) []string {
	first, _, _ := strings.Cut(key, ".")

	var suggestions []string
	for _, tmpl := range knownKeyPatterns {
		tmplFirst, _, _ := strings.Cut(tmpl, ".")
		if tmplFirst != first && tmplFirst != pattern.Wildcard {
			continue
		}
		suggestions = append(suggestions, tmpl)
		if len(suggestions) == maxSuggestions {
			break
		}
	}
	return suggestions
}

func validSegment(seg string) bool {
	if seg == "" {
		return false
	}
	if allDigits(seg) {
		return true
	}
	if !isLetter(seg[0]) && seg[0] != '_' {
		return false
	}
	for i := 1; i < len(seg); i++ {
		c := seg[i]
		if !isLetter(c) && !isDigit(c) && c != '_' && c != '-' {
			return false
		}
	}
	return true
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
