// Package pattern implements wildcard matching over dot-separated
// configuration key paths. A pattern is a key in which any segment may be
// the literal "*", which matches exactly one whole segment at that
// position. There is no multi-segment wildcard and no partial-segment
// wildcard.
package pattern

import "strings"

// Wildcard is the segment marker that matches any single key segment.
const Wildcard = "*"

// IsPattern reports whether s contains the wildcard marker.
func IsPattern(s string) bool {
	return strings.Contains(s, Wildcard)
}

// Matches reports whether key matches pattern. Both strings are split on
// ".". A key with a different segment count than the pattern never
// matches. Segments are compared positionally: a pattern segment equal to
// Wildcard matches any one key segment, and every other pattern segment
// must equal the key segment exactly.
//
// The same comparison backs both user queries (stored key vs. user
// pattern) and known-key validation (user key vs. catalog template); only
// the argument roles differ.
func Matches(key, pattern string) bool {
	keySegs := strings.Split(key, ".")
	patSegs := strings.Split(pattern, ".")
	if len(keySegs) != len(patSegs) {
		return false
	}
	for i, seg := range patSegs {
		if seg == Wildcard {
			continue
		}
		if keySegs[i] != seg {
			return false
		}
	}
	return true
}
