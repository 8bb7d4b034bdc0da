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

package scanner

import "github.com/go-ccfe/ccfe/pkg/token"

// Below are all the lexer states, dispatched in the fixed priority order
// from spec.md §4.1: whitespace, comments, preprocessor directives,
// maximal-munch operators, special characters, identifiers/keywords,
// numeric constants, then unexpected character.

// lexGround is the state when the scanner is between tokens.
func lexGround(s *Scanner) stateFn {
	// 1. whitespace
	for {
		switch s.peek() {
		case ' ', '\t', '\r', '\n':
			s.next()
			continue
		}
		break
	}
	s.consume()
	s.sline = s.line
	s.scol = s.col

	c := s.peek()
	if c == eof {
		return nil
	}

	// 2. comments; a '/' not followed by '/' or '*' falls through to
	// operator handling below.
	if c == '/' {
		switch s.peekAt(1) {
		case '/':
			return lexLineComment
		case '*':
			return lexBlockComment
		}
	}

	// 3. preprocessor directives
	if c == '#' {
		return lexPreprocessor
	}

	// 4. operators, maximal munch
	if op, n := token.MatchMultiCharOperator(s.input[s.pos:]); n > 0 {
		for i := 0; i < n; i++ {
			s.next()
		}
		s.emitText(token.Operator, op)
		return lexGround
	}
	if c < 128 && token.IsSingleCharOperator(byte(c)) {
		s.next()
		s.emit(token.Operator)
		return lexGround
	}

	// 5. special characters, with the narrow CHAR_LITERAL side-path
	// from spec.md §4.1 rule 5.
	if c == '\'' && tryCharLiteral(s) {
		return lexGround
	}
	if c < 128 && token.IsSpecialCharacter(byte(c)) {
		s.next()
		s.emit(token.SpecialCharacter)
		return lexGround
	}

	// 6. identifiers and keywords
	if isIdentStart(c) {
		return lexIdentifier
	}

	// 7. numeric constants
	if isDigit(c) || (c == '.' && isDigit(s.peekAt(1))) {
		return lexNumber
	}

	// 8. unexpected character
	return s.fail(c, s.sline)
}

// lexLineComment consumes a "//" comment up to, but not including, the
// next newline and emits one placeholder token.
func lexLineComment(s *Scanner) stateFn {
	s.next() // first '/'
	s.next() // second '/'
	for {
		switch s.peek() {
		case '\n', eof:
			s.emitText(token.SingleLineComment, "//")
			return lexGround
		}
		s.next()
	}
}

// lexBlockComment consumes a "/* ... */" comment, updating the line
// counter across embedded newlines. Reaching EOF before the closing "*/"
// is a fatal UnterminatedBlockComment.
func lexBlockComment(s *Scanner) stateFn {
	s.next() // '/'
	s.next() // '*'
	for {
		switch s.next() {
		case eof:
			s.status = UnterminatedBlockComment
			return nil
		case '*':
			if s.peek() == '/' {
				s.next()
				s.emitText(token.MultiLineComment, "/* .. */")
				return lexGround
			}
		}
	}
}

// lexPreprocessor consumes a "#..." line, value spanning to end-of-line.
func lexPreprocessor(s *Scanner) stateFn {
	for {
		switch s.peek() {
		case '\n', eof:
			s.emit(token.PreprocessorDirective)
			return lexGround
		}
		s.next()
	}
}

// lexIdentifier consumes a run of identifier characters and classifies
// the completed word as KEYWORD or IDENTIFIER.
func lexIdentifier(s *Scanner) stateFn {
	for isIdentCont(s.peek()) {
		s.next()
	}
	word := s.input[s.start:s.pos]
	if token.IsKeyword(word) {
		s.emit(token.Keyword)
	} else {
		s.emit(token.Identifier)
	}
	return lexGround
}

// lexNumber implements the segmented numeric rule from spec.md §4.1 rule
// 7: digits and '.'s accumulate together, but a second '.' inside an
// ongoing number closes the current segment and opens a new one starting
// at that '.'.
func lexNumber(s *Scanner) stateFn {
	sawDot := false
	for {
		switch c := s.peek(); {
		case isDigit(c):
			s.next()
		case c == '.' && sawDot:
			s.emit(token.NumericConstant)
			s.sline, s.scol = s.line, s.col
			s.next() // consume the '.' that begins the next segment
			sawDot = true
		case c == '.':
			sawDot = true
			s.next()
		default:
			s.emit(token.NumericConstant)
			return lexGround
		}
	}
}

// tryCharLiteral implements the narrow, grammar-unused CHAR_LITERAL
// side-path from spec.md §4.1 rule 5 / §9 open questions: a "'" followed
// by exactly one alphanumeric and then a non-alphanumeric, non-underscore
// character. It returns false, consuming nothing, if the shape doesn't
// match.
func tryCharLiteral(s *Scanner) bool {
	mid := s.peekAt(1)
	end := s.peekAt(2)
	if !isAlnum(mid) {
		return false
	}
	if isAlnum(end) || end == '_' {
		return false
	}
	s.next() // '\''
	s.next() // the alphanumeric
	s.next() // the terminator
	s.emit(token.CharLiteral)
	return true
}

func isDigit(c rune) bool { return c >= '0' && c <= '9' }

func isAlnum(c rune) bool {
	return isDigit(c) || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentStart(c rune) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentCont(c rune) bool {
	return isIdentStart(c) || isDigit(c)
}
