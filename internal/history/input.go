package history

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// ReadInput reads a single line from r and returns it without its trailing
// newline. A final line with no newline is accepted; a stream that ends
// before yielding any byte is ErrEmptyInput, and a line that is not valid
// UTF-8 is ErrInvalidUTF8.
func ReadInput(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	if line == "" {
		return "", ErrEmptyInput
	}
	if !utf8.ValidString(line) {
		return "", fmt.Errorf("failed to read input: %w", ErrInvalidUTF8)
	}
	return trimEOL(line), nil
}

// trimEOL strips one trailing "\n". Any "\r" before it is part of the entry.
func trimEOL(line string) string {
	return strings.TrimSuffix(line, "\n")
}
