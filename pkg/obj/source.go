package obj

import (
	"bufio"
	"io"
)

// DefaultMaxLineBytes is the longest line a ScannerSource accepts by default.
const DefaultMaxLineBytes = 64 * 1024

// LineSource yields input lines one at a time.
type LineSource interface {
	// Next returns the next line, or false at end of input.
	Next() (string, bool)
	// HasNext reports whether another line follows.
	HasNext() bool
	// Err returns the first read error, if any.
	Err() error
}

// ScannerSource reads lines from an io.Reader with one line of lookahead.
type ScannerSource struct {
	sc      *bufio.Scanner
	next    string
	hasNext bool
	primed  bool
	err     error
}

// NewScannerSource returns a source reading r. Lines longer than
// maxLineBytes cause a read error; zero means DefaultMaxLineBytes.
func NewScannerSource(r io.Reader, maxLineBytes int) *ScannerSource {
	if maxLineBytes <= 0 {
		maxLineBytes = DefaultMaxLineBytes
	}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, min(4096, maxLineBytes)), maxLineBytes)
	return &ScannerSource{sc: sc}
}

func (s *ScannerSource) fill() {
	if s.primed {
		return
	}
	s.primed = true
	s.hasNext = s.sc.Scan()
	if s.hasNext {
		s.next = s.sc.Text()
	} else {
		s.next = ""
		s.err = s.sc.Err()
	}
}

// Next implements LineSource.
func (s *ScannerSource) Next() (string, bool) {
	s.fill()
	if !s.hasNext {
		return "", false
	}
	s.primed = false
	return s.next, true
}

// HasNext implements LineSource.
func (s *ScannerSource) HasNext() bool {
	s.fill()
	return s.hasNext
}

// Err implements LineSource.
func (s *ScannerSource) Err() error {
	return s.err
}

// SliceSource serves lines from memory.
type SliceSource struct {
	lines []string
	pos   int
}

// NewSliceSource returns a source over lines.
func NewSliceSource(lines ...string) *SliceSource {
	return &SliceSource{lines: lines}
}

// Next implements LineSource.
func (s *SliceSource) Next() (string, bool) {
	if s.pos >= len(s.lines) {
		return "", false
	}
	s.pos++
	return s.lines[s.pos-1], true
}

// HasNext implements LineSource.
func (s *SliceSource) HasNext() bool {
	return s.pos < len(s.lines)
}

// Err implements LineSource.
func (s *SliceSource) Err() error {
	return nil
}
