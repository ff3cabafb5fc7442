package scan

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/odvcencio/glgen/pkg/record"
)

// Scanner streams completed records from one document in line order. The
// document is read incrementally, never buffered whole. Usage mirrors
// bufio.Scanner: Scan, Record, then Err after Scan returns false.
type Scanner struct {
	doc   string
	lines *bufio.Scanner
	acc   accumulator
	line  int
	rec   record.Record
	err   error
	done  bool
}

// NewScanner reads the document identified by doc from r.
func NewScanner(doc string, r io.Reader) *Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return &Scanner{doc: doc, lines: sc}
}

// Scan advances to the next completed record. Constants complete on their
// own line; functions complete on their terminator line. A line that no
// recognizer fully captures is skipped and leaves any in-progress
// accumulation untouched.
func (s *Scanner) Scan() bool {
	if s.err != nil || s.done {
		return false
	}
	for s.lines.Scan() {
		s.line++
		line := strings.TrimRight(s.lines.Text(), "\r")
		lm := classify(line)
		switch lm.class {
		case ClassNone:
			continue
		case ClassConstant:
			s.rec = record.Constant{Name: lm.name}
			return true
		default:
			fn, err := s.acc.feed(lm, s.line)
			if err != nil {
				s.err = fmt.Errorf("%s:%d: %w", s.doc, s.line, err)
				return false
			}
			if fn != nil {
				s.rec = fn
				return true
			}
		}
	}
	s.done = true
	if err := s.lines.Err(); err != nil {
		s.err = fmt.Errorf("read %s: %w", s.doc, err)
		return false
	}
	if fn := s.acc.pending(); fn != nil {
		s.err = fmt.Errorf("%s: function %s opened at line %d never terminated before end of document",
			s.doc, fn.Name, fn.Line)
	}
	return false
}

// Record returns the record produced by the last successful Scan.
func (s *Scanner) Record() record.Record { return s.rec }

// Err returns the first error hit while scanning, if any.
func (s *Scanner) Err() error { return s.err }
