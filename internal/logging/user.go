package logging

import (
	"fmt"
	"io"
	"os"
)

// User output destinations, swappable in tests.
var (
	userOut io.Writer = os.Stdout
	userErr io.Writer = os.Stderr
)

// Infof prints an info message to stdout.
func Infof(format string, args ...any) {
	fmt.Fprintf(userOut, "ℹ "+format+"\n", args...)
}

// Successf prints a success message to stdout.
func Successf(format string, args ...any) {
	fmt.Fprintf(userOut, "✓ "+format+"\n", args...)
}

// Warnf prints a warning message to stderr.
func Warnf(format string, args ...any) {
	fmt.Fprintf(userErr, "⚠ "+format+"\n", args...)
}

// Errorf prints an error message to stderr.
func Errorf(format string, args ...any) {
	fmt.Fprintf(userErr, "✗ "+format+"\n", args...)
}
