package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// errInputClosed is returned when standard input ends before a correct guess.
var errInputClosed = errors.New("input stream closed before a correct guess")

type lineReader struct {
	reader *bufio.Reader
}

func newLineReader(in io.Reader) *lineReader {

	return &lineReader{
		reader: bufio.NewReader(in),
	}

}

// readLine blocks until a full line arrives. Lines have no length limit. A
// trailing line without a newline is returned as a regular line; the next
// call reports the end of the stream.
func (r *lineReader) readLine() (string, error) {

	line, err := r.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			if line == "" {
				return "", errInputClosed
			}
		} else {
			return "", fmt.Errorf("reading guess: %w", err)
		}
	}
	return strings.TrimRight(line, "\r\n"), nil

}
