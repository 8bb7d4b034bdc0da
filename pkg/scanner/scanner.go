// Copyright 2015 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package scanner implements the lexical tokenization of the C subset
// described by this front end. It turns a source string into an ordered
// stream of token.Token values plus a terminal Status.
package scanner

import (
	"fmt"
	"io"
	"os"
	"reflect"
	"runtime"
	"unicode/utf8"

	"github.com/go-ccfe/ccfe/pkg/token"
)

const eof = -1

// stateFn represents one state of the scanner, returning the next state to
// run. A nil stateFn stops the run.
type stateFn func(*Scanner) stateFn

// Status is the terminal outcome of a scan.
type Status int

const (
	// Ok means the full input was consumed with no lexical errors.
	Ok Status = iota
	// UnexpectedCharacterStatus means an unrecognized character halted
	// scanning; Scanner.BadChar and Scanner.BadLine describe it.
	UnexpectedCharacterStatus
	// UnterminatedBlockComment means end-of-input was reached while
	// inside a /* ... */ comment.
	UnterminatedBlockComment
)

func (s Status) String() string {
	switch s {
	case Ok:
		return "Ok"
	case UnexpectedCharacterStatus:
		return "UnexpectedCharacter"
	case UnterminatedBlockComment:
		return "UnterminatedBlockComment"
	}
	return "Unknown"
}

// Options configures a Scanner.
type Options struct {
	// Debug, when set, logs each state transition to Errout.
	Debug bool
	// Errout is where debug traces are written; defaults to os.Stderr.
	Errout io.Writer
}

// A Scanner holds all per-scan state: the source text, cursor, line/column
// counters, accumulated tokens, and terminal status. A Scanner value is
// good for exactly one scan; there is no package-level mutable state (see
// SPEC_FULL.md §10 — this closes the §9 design note on the source's
// process-wide scanner state).
type Scanner struct {
	errout io.Writer
	debug  bool

	input string
	start int // start of the pending lexeme
	pos   int // cursor
	width int // width in bytes of the last rune read
	line  int // 1-based current line
	col   int // 0-based current column

	sline int // line the pending lexeme started on
	scol  int // column the pending lexeme started on

	state stateFn

	tokens []*token.Token
	status Status

	badChar rune
	badLine int
}

// New returns a Scanner ready to scan input.
func New(input string, opts Options) *Scanner {
	errout := opts.Errout
	if errout == nil {
		errout = os.Stderr
	}
	return &Scanner{
		errout: errout,
		debug:  opts.Debug,
		input:  input,
		line:   1,
		state:  lexGround,
	}
}

// Scan runs the scanner to completion and returns the ordered token
// stream and the terminal status. The number of lines visited is
// available afterwards from LineCount.
func (s *Scanner) Scan() ([]*token.Token, Status) {
	for s.state != nil {
		if s.debug {
			name := runtime.FuncForPC(reflect.ValueOf(s.state).Pointer()).Name()
			fmt.Fprintf(s.errout, "%d: state %s\n", s.line, name)
		}
		s.state = s.state(s)
	}
	return s.tokens, s.status
}

// LineCount returns the number of lines actually visited: 0 for empty
// input, otherwise the highest line number reached.
func (s *Scanner) LineCount() int {
	if s.input == "" {
		return 0
	}
	return s.line
}

// BadChar and BadLine describe the offending position after a scan that
// ended in UnexpectedCharacterStatus.
func (s *Scanner) BadChar() rune { return s.badChar }
func (s *Scanner) BadLine() int  { return s.badLine }

// emit appends a token covering [start, pos) as class c, stamped with the
// line the lexeme started on, then consumes it.
func (s *Scanner) emit(c token.Class) {
	s.emitText(c, s.input[s.start:s.pos])
}

// emitText appends a token with explicit text (used for comments, whose
// persisted value is a fixed placeholder rather than their raw text).
func (s *Scanner) emitText(c token.Class, text string) {
	s.tokens = append(s.tokens, &token.Token{
		Class: c,
		Value: text,
		Line:  s.sline,
		Col:   s.scol,
	})
	s.consume()
}

// consume marks all input up to pos as consumed.
func (s *Scanner) consume() { s.start = s.pos }

// next returns the next rune in the input, advancing the cursor, or eof.
func (s *Scanner) next() rune {
	if s.pos >= len(s.input) {
		s.width = 0
		return eof
	}
	r, w := utf8.DecodeRuneInString(s.input[s.pos:])
	s.pos += w
	s.width = w
	if r == '\n' {
		s.line++
		s.col = 0
	} else {
		s.col++
	}
	return r
}

// backup steps back over the last rune read by next. It may only be
// called once per call to next.
func (s *Scanner) backup() {
	s.pos -= s.width
	if s.width > 0 {
		if s.input[s.pos] == '\n' {
			s.line--
		} else {
			s.col--
		}
	}
}

// peek returns, without consuming, the next rune.
func (s *Scanner) peek() rune {
	r := s.next()
	s.backup()
	return r
}

// peekAt returns, without consuming, the rune n positions ahead of pos
// (peekAt(0) == peek()), or eof if that position is past the end of input.
func (s *Scanner) peekAt(n int) rune {
	p := s.pos
	for i := 0; i < n; i++ {
		if p >= len(s.input) {
			return eof
		}
		_, w := utf8.DecodeRuneInString(s.input[p:])
		p += w
	}
	if p >= len(s.input) {
		return eof
	}
	r, _ := utf8.DecodeRuneInString(s.input[p:])
	return r
}

// fail records a fatal unexpected-character error at the current lexeme
// start and stops the scan.
func (s *Scanner) fail(c rune, line int) stateFn {
	s.status = UnexpectedCharacterStatus
	s.badChar = c
	s.badLine = line
	return nil
}
