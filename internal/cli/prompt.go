package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Confirm asks a yes/no question and reports whether the user accepted.
// Empty input, EOF and read errors decline.
func Confirm(writer io.Writer, reader io.Reader, question string) bool {
	_, _ = fmt.Fprintf(writer, "%s [y/N] ", question)

	scanner := bufio.NewScanner(reader)
	if !scanner.Scan() {
		_, _ = fmt.Fprintln(writer)
		return false
	}

	switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
