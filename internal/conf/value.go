package conf

import "strings"

// needsQuoting reports whether a value must be single-quoted on output.
// Values containing a space, "#", or "'" are quoted; everything else is
// emitted bare.
func needsQuoting(v string) bool {
	return strings.ContainsAny(v, " #'")
}

// formatValue renders a value for output, quoting when required.
func formatValue(v string) string {
	if needsQuoting(v) {
		return "'" + v + "'"
	}
	return v
}

// parseBool maps the cuttlefish boolean vocabulary onto bool. The match
// is exact and case-sensitive; anything outside the vocabulary reports
// ok == false.
func parseBool(v string) (val, ok bool) {
	switch v {
	case "true", "on", "yes", "1":
		return true, true
	case "false", "off", "no", "0":
		return false, true
	}
	return false, false
}
