// Package input reads bank lines from a text source, one bank per line.
package input

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
)

// ErrLineTooLong is returned when a line exceeds the reader's limit.
var ErrLineTooLong = errors.New("exceeded provided buffer")

// Reader yields lines without their terminator. A trailing carriage return
// is stripped so CRLF files read the same as LF files.
type Reader struct {
	scanner *bufio.Scanner
	maxLen  int
	line    int
}

// NewReader returns a Reader that rejects lines longer than maxLen bytes.
func NewReader(r io.Reader, maxLen int) *Reader {
	if maxLen <= 0 {
		panic("maxLen must be positive")
	}
	s := bufio.NewScanner(r)
	// Room for the terminator plus one extra byte so an over-long line is
	// returned and reported instead of stalling the scanner.
	s.Buffer(make([]byte, 0, maxLen+2), maxLen+2)
	return &Reader{scanner: s, maxLen: maxLen}
}

// Next returns the next line, or io.EOF once the input is exhausted. The
// returned slice is only valid until the following call.
func (r *Reader) Next() ([]byte, error) {
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			r.line++
			if errors.Is(err, bufio.ErrTooLong) {
				return nil, fmt.Errorf("%w: more than %d bytes", ErrLineTooLong, r.maxLen)
			}
			return nil, err
		}
		return nil, io.EOF
	}
	r.line++

	line := bytes.TrimSuffix(r.scanner.Bytes(), []byte{'\r'})
	if len(line) > r.maxLen {
		return nil, fmt.Errorf("%w: %d > %d bytes", ErrLineTooLong, len(line), r.maxLen)
	}
	return line, nil
}

// Line returns the 1-based number of the line last returned or rejected.
func (r *Reader) Line() int { return r.line }
