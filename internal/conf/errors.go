package conf

import "fmt"

// ParseError describes the first malformed line encountered while
// parsing configuration text. Line numbers are 1-based.
type ParseError struct {
	Line    int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at line %d: %s", e.Line, e.Message)
}
