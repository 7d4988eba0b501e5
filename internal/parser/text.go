package parser

import (
	"bufio"
	"errors"
	"io"
	"unicode/utf8"
)

// ErrInvalidUTF8 is returned when the source is not valid UTF-8.
var ErrInvalidUTF8 = errors.New("input is not valid UTF-8")

// ReadLines reads every line of r before returning. Line terminators are
// removed; a trailing carriage return is left for the caller to trim.
func ReadLines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var lines []string
	for scanner.Scan() {
		line := scanner.Text()
		if !utf8.ValidString(line) {
			return nil, ErrInvalidUTF8
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
