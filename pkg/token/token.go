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

// Package token defines the lexical token vocabulary shared by the scanner
// and the parser, and the textual interchange format used to persist a
// token stream produced by one and reloaded by the other.
package token

import "fmt"

// A Class is one of the closed set of lexical categories a Token may belong
// to. Class is a string rather than an int so that the interchange format
// (see Write and Load) can persist it verbatim.
type Class string

// The complete, closed vocabulary of lexical categories. Values are the
// exact spelling persisted to the interchange file.
const (
	Keyword               Class = "KEYWORD"
	Identifier            Class = "IDENTIFIER"
	Operator              Class = "OPERATOR"
	SpecialCharacter      Class = "SPECIAL CHARACTER"
	NumericConstant       Class = "NUMERIC CONSTANT"
	PreprocessorDirective Class = "PREPROCESSOR DIRECTIVE"
	SingleLineComment     Class = "Single-Line Comment"
	MultiLineComment      Class = "Multi-Line Comment"
	CharLiteral           Class = "CHAR_LITERAL"

	// EOF is never persisted; it is the synthetic sentinel class returned
	// by a cursor once the stream is exhausted.
	EOF Class = "EOF"
)

// Keywords is the fixed set of C89/C99 reserved words this front end
// recognizes, auto through while.
var Keywords = map[string]bool{
	"auto": true, "break": true, "case": true, "char": true,
	"const": true, "continue": true, "default": true, "do": true,
	"double": true, "else": true, "enum": true, "extern": true,
	"float": true, "for": true, "goto": true, "if": true,
	"int": true, "long": true, "register": true, "return": true,
	"short": true, "signed": true, "sizeof": true, "static": true,
	"struct": true, "switch": true, "typedef": true, "union": true,
	"unsigned": true, "void": true, "volatile": true, "while": true,
}

// singleCharOperators is the fixed set of operator lexemes exactly one
// character wide.
var singleCharOperators = map[byte]bool{
	'+': true, '-': true, '*': true, '/': true, '=': true, '<': true,
	'>': true, '%': true, '^': true, '|': true, '&': true, '~': true,
	'!': true,
}

// multiCharOperators is the fixed set of operator lexemes two or more
// characters wide. MatchMultiCharOperator tries three-character
// candidates before two-character ones for maximal munch. "pow" is kept for
// parity with the original scanner; see SPEC_FULL.md §9/open questions —
// it is never produced by any grammar production.
var multiCharOperators = map[string]bool{
	"<<=": true, ">>=": true,
	"++": true, "--": true, "<<": true, ">>": true, "==": true,
	"&&": true, "||": true, "+=": true, "-=": true, "*=": true,
	"/=": true, "%=": true, "&=": true, "|=": true, "^=": true,
	"!=": true, ">=": true, "<=": true,
	"pow": true,
}

// specialCharacters is the fixed set of one-character punctuation tokens
// distinct from operators.
var specialCharacters = map[byte]bool{
	'(': true, ')': true, '{': true, '}': true, ';': true, ',': true,
	'#': true, '.': true, '[': true, ']': true,
}

// IsKeyword reports whether word is one of the reserved words in Keywords.
func IsKeyword(word string) bool { return Keywords[word] }

// IsSingleCharOperator reports whether c alone forms a complete operator.
func IsSingleCharOperator(c byte) bool { return singleCharOperators[c] }

// IsSpecialCharacter reports whether c is a special (non-operator)
// punctuation character.
func IsSpecialCharacter(c byte) bool { return specialCharacters[c] }

// MatchMultiCharOperator returns the longest operator in multiCharOperators
// matching a prefix of s (tried three characters, then two), and its
// length, or ("", 0) if none matches.
func MatchMultiCharOperator(s string) (string, int) {
	for _, n := range []int{3, 2} {
		if len(s) >= n && multiCharOperators[s[:n]] {
			return s[:n], n
		}
	}
	return "", 0
}

// A Token is one classified lexeme: its category, its exact source text
// (with the two documented exceptions for comments), and the 1-based
// source line on which it began.
//
// Col is an additional, internal-only field: a 0-based column for the
// start of the lexeme. It is never part of the persisted interchange
// format (see Write and Load) but is convenient for in-process diagnostics.
type Token struct {
	Class Class
	Value string
	Line  int
	Col   int
}

// EOFToken is the synthetic sentinel returned by a cursor once its
// underlying stream is exhausted.
var EOFToken = &Token{Class: EOF, Value: "", Line: -1}

// String renders t for debugging and error messages.
func (t *Token) String() string {
	if t == nil {
		return EOFToken.String()
	}
	return fmt.Sprintf("%s(%q)@%d", t.Class, t.Value, t.Line)
}

// Equal reports whether t and o carry the same class, value, and line.
// Col is excluded since it is not part of the persisted, comparable
// identity of a token.
func (t *Token) Equal(o *Token) bool {
	if t == nil || o == nil {
		return t == o
	}
	return t.Class == o.Class && t.Value == o.Value && t.Line == o.Line
}
