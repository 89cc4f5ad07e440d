package ish

import (
	"bufio"
	"io"
	"strings"
)

// MaxLineLength is the longest line a Reader accepts: the mandatory section,
// a four-digit variable length, and a CRLF.
const MaxLineLength = MandatoryLength + 9999 + 2

// Reader iterates over the records of a newline-delimited ISH stream,
// skipping blank lines.
type Reader struct {
	scanner *bufio.Scanner
	line    string
	n       int
}

// NewReader returns a Reader over r.
func NewReader(r io.Reader) *Reader {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), MaxLineLength)
	return &Reader{scanner: s}
}

// Next advances to the next non-blank line.
func (r *Reader) Next() bool {
	for r.scanner.Scan() {
		r.n++
		line := strings.TrimRight(r.scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		r.line = line
		return true
	}
	return false
}

// Line returns the current record text.
func (r *Reader) Line() string { return r.line }

// LineNumber returns the 1-based physical line number of the current record.
func (r *Reader) LineNumber() int { return r.n }

// Err returns the first non-EOF read error. A line longer than MaxLineLength
// yields bufio.ErrTooLong.
func (r *Reader) Err() error { return r.scanner.Err() }
