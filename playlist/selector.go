// Package playlist selects entries from newline-delimited playlist files.
//
// A playlist is a plain text file naming one media locator per line. Lines are
// separated by '\n'; the final line is selected even without a trailing terminator.
package playlist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// Increment is both the initial capacity of a selection buffer and the step it grows by.
const Increment = 128

// terminator is stored after the selected bytes.
const terminator = '\n'

// ErrNotFound is returned when the stream ends before the requested line.
var ErrNotFound = errors.New("playlist entry not found")

// Entry is the selection buffer holding the most recently selected line.
// Its capacity only grows, in multiples of Increment, and always leaves room for the terminator.
type Entry struct {
	buf []byte
}

// NewEntry returns an Entry with the initial Increment capacity.
func NewEntry() *Entry {
	return &Entry{buf: make([]byte, 0, Increment)}
}

// String returns the selected line without its terminator.
func (e *Entry) String() string {
	return string(e.Bytes())
}

// Bytes returns the selected line without its terminator.
func (e *Entry) Bytes() []byte {
	if len(e.buf) == 0 {
		return nil
	}
	return e.buf[:len(e.buf)-1]
}

// Terminated returns the selected line followed by its terminator.
func (e *Entry) Terminated() []byte {
	return e.buf
}

// Len is the length of the selected line, terminator excluded.
func (e *Entry) Len() int {
	return len(e.Bytes())
}

// Cap is the current capacity of the buffer.
func (e *Entry) Cap() int {
	return cap(e.buf)
}

// IsEmpty reports whether nothing has been selected yet.
func (e *Entry) IsEmpty() bool {
	return len(e.buf) == 0
}

func (e *Entry) commit(line []byte) {
	need := len(line) + 1
	if size := cap(e.buf); size < need {
		for size < need {
			size += Increment
		}
		e.buf = make([]byte, 0, size)
	}

	e.buf = append(e.buf[:0], line...)
	e.buf = append(e.buf, terminator)
}

// Select scans r for the line at the zero-based index and copies it into e.
// It reports false when the stream ends first, when reading fails, or when index is negative;
// e is only modified on success. Select neither opens nor closes r.
func Select(r io.Reader, index int, e *Entry) bool {
	if e == nil {
		return false
	}

	line, err := scan(r, index)
	if err != nil {
		return false
	}

	e.commit(line)
	return true
}

// Lookup is Select without a caller-owned buffer. Unlike Select it tells
// a short stream (ErrNotFound) apart from a failing one.
func Lookup(r io.Reader, index int) (string, error) {
	line, err := scan(r, index)
	if err != nil {
		return "", err
	}
	return string(line), nil
}

func scan(r io.Reader, index int) ([]byte, error) {
	if index < 0 {
		return nil, ErrNotFound
	}

	var (
		br      = bufio.NewReader(r)
		scratch []byte
		line    int
	)

	for {
		c, err := br.ReadByte()
		switch {
		case errors.Is(err, io.EOF):
			// end of stream terminates an unterminated last line
			if line == index && len(scratch) > 0 {
				return scratch, nil
			}
			return nil, ErrNotFound
		case err != nil:
			return nil, fmt.Errorf("read line %d: %w", line, err)
		case c == terminator:
			if line == index {
				return scratch, nil
			}
			line++
		case line == index:
			scratch = appendGrow(scratch, c)
		}
	}
}

// appendGrow appends c, growing by Increment so one byte stays free for the terminator.
func appendGrow(b []byte, c byte) []byte {
	if len(b)+1 >= cap(b) {
		grown := make([]byte, len(b), cap(b)+Increment)
		copy(grown, b)
		b = grown
	}
	return append(b, c)
}

// Entries returns every line of r, following the same line rules as Select.
func Entries(r io.Reader) ([]string, error) {
	var (
		br      = bufio.NewReader(r)
		entries []string
	)

	for {
		line, err := br.ReadString(terminator)
		switch {
		case errors.Is(err, io.EOF):
			if line != "" {
				entries = append(entries, line)
			}
			return entries, nil
		case err != nil:
			return nil, fmt.Errorf("read line %d: %w", len(entries), err)
		}

		entries = append(entries, line[:len(line)-1])
	}
}

// Count returns the number of lines in r.
func Count(r io.Reader) (int, error) {
	entries, err := Entries(r)
	return len(entries), err
}
