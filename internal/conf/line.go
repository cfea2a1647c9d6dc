package conf

import (
	"strings"

	"github.com/rabbitconf/rabbitconf/internal/conf/keys"
)

type lineKind uint8

const (
	kindSetting lineKind = iota
	kindComment
	kindEmpty
)

// line is one physical line of a configuration file. A setting carries
// its key and decoded value. A comment keeps the original text verbatim,
// including leading whitespace, so rendering reproduces it exactly.
type line struct {
	kind  lineKind
	key   string
	value string
	raw   string
}

// parseLine classifies one source line as a setting, comment, or blank.
// lineNum is 1-based and is used only for error reporting.
func parseLine(text string, lineNum int) (line, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return line{kind: kindEmpty}, nil
	}
	if strings.HasPrefix(trimmed, "#") {
		return line{kind: kindComment, raw: text}, nil
	}

	key, rest, ok := splitSetting(trimmed)
	if !ok {
		return line{}, &ParseError{Line: lineNum, Message: "invalid line: " + text}
	}
	if !keys.IsValidKeyFormat(key) {
		return line{}, &ParseError{Line: lineNum, Message: "invalid key format: " + key}
	}
	return line{kind: kindSetting, key: key, value: parseValue(rest)}, nil
}

// splitSetting tokenizes "key = value" from a trimmed line. The key
// token accepts letters, digits, underscores, and dots; any other
// character before the "=" fails the grammar.
func splitSetting(s string) (key, rest string, ok bool) {
	i := 0
	for i < len(s) && isKeyChar(s[i]) {
		i++
	}
	if i == 0 {
		return "", "", false
	}
	key = s[:i]
	i = skipBlank(s, i)
	if i >= len(s) || s[i] != '=' {
		return "", "", false
	}
	i = skipBlank(s, i+1)
	return key, s[i:], true
}

// parseValue decodes the text following "=". An inline comment opens at
// the first "#" outside single quotes and is discarded. A value wrapped
// in a matching pair of single quotes is unwrapped with its contents
// taken literally; there is no escape mechanism, and an unpaired quote
// stays in the value as-is.
func parseValue(rest string) string {
	if i := unquotedHash(rest); i >= 0 {
		rest = rest[:i]
	}
	rest = strings.TrimSpace(rest)
	if len(rest) >= 2 && rest[0] == '\'' && rest[len(rest)-1] == '\'' {
		return rest[1 : len(rest)-1]
	}
	return rest
}

// unquotedHash returns the index of the first "#" not inside single
// quotes, or -1 when the text has no comment.
func unquotedHash(s string) int {
	inQuote := false
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\'':
			inQuote = !inQuote
		case '#':
			if !inQuote {
				return i
			}
		}
	}
	return -1
}

func isKeyChar(c byte) bool {
	return c == '.' || c == '_' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}

func skipBlank(s string, i int) int {
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	return i
}
