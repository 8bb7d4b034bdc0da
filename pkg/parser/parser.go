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

// Package parser implements a hand-written recursive-descent parser over
// a token.Token stream, producing an ast.Node tree.
package parser

import (
	"fmt"

	"github.com/go-ccfe/ccfe/pkg/ast"
	"github.com/go-ccfe/ccfe/pkg/token"
)

// Options configures a Parser. There are currently no tunables; the
// struct exists so callers have a stable place to add them, mirroring the
// teacher's small-options-struct pattern (pkg/yang's Options).
type Options struct{}

// typeKeywords is the closed set of type-specifier keywords this grammar
// recognizes in a declaration: spec.md's {int, float, char, void, const}.
var typeKeywords = map[string]bool{
	"int": true, "float": true, "char": true, "void": true, "const": true,
}

// A Parser holds all per-parse state: the filtered (comment-free) token
// list and a cursor into it. A Parser value is good for exactly one
// parse.
type Parser struct {
	toks []*token.Token
	pos  int
}

// New returns a Parser over stream, with comment tokens filtered out so
// every read point in the grammar automatically skips them — the
// "comment transparency" requirement of spec.md §4.3.
func New(stream []*token.Token, _ Options) *Parser {
	p := &Parser{}
	for _, t := range stream {
		switch t.Class {
		case token.SingleLineComment, token.MultiLineComment:
			continue
		}
		p.toks = append(p.toks, t)
	}
	return p
}

// Parse runs the grammar over stream and returns the Program root, or a
// single *SyntaxError describing the first failure. There is no error
// recovery: parsing stops at the first mismatch (spec.md §4.3/§7).
func Parse(stream []*token.Token, opts Options) (root *ast.Node, err error) {
	p := New(stream, opts)
	defer func() {
		if r := recover(); r != nil {
			se, ok := r.(*SyntaxError)
			if !ok {
				panic(r)
			}
			root, err = nil, se
		}
	}()
	return p.parseProgram(), nil
}

// peek returns the next non-comment token, or the EOF sentinel.
func (p *Parser) peek() *token.Token { return p.lookahead(0) }

// lookahead returns the k-th non-comment token ahead of the cursor
// (k=0 is peek), or the EOF sentinel if the stream is exhausted.
func (p *Parser) lookahead(k int) *token.Token {
	i := p.pos + k
	if i < 0 || i >= len(p.toks) {
		return token.EOFToken
	}
	return p.toks[i]
}

// advance consumes and returns the current token.
func (p *Parser) advance() *token.Token {
	t := p.peek()
	if t.Class != token.EOF {
		p.pos++
	}
	return t
}

// match consumes and returns the current token if it has class c and,
// when value is non-empty, that exact value. Otherwise it raises a fatal
// SyntaxError naming what was expected and what was found.
func (p *Parser) match(c token.Class, value string) *token.Token {
	t := p.peek()
	if t.Class != c || (value != "" && t.Value != value) {
		want := string(c)
		if value != "" {
			want = fmt.Sprintf("%s %q", c, value)
		}
		p.errorf("expected %s, got %s %q", want, t.Class, t.Value)
	}
	return p.advance()
}

// matchSpecial matches a SPECIAL CHARACTER token with the given value,
// e.g. "(" ")" "{" "}" ";" ",".
func (p *Parser) matchSpecial(value string) *token.Token {
	return p.match(token.SpecialCharacter, value)
}

// matchKeyword matches a KEYWORD token with the given value.
func (p *Parser) matchKeyword(value string) *token.Token {
	return p.match(token.Keyword, value)
}

// matchType matches one of the type-specifier keywords.
func (p *Parser) matchType() *token.Token {
	t := p.peek()
	if t.Class != token.Keyword || !typeKeywords[t.Value] {
		p.errorf("expected a type specifier, got %s %q", t.Class, t.Value)
	}
	return p.advance()
}

// isTypeKeyword reports whether t begins a declaration.
func isTypeKeyword(t *token.Token) bool {
	return t.Class == token.Keyword && typeKeywords[t.Value]
}

// errorf raises a fatal *SyntaxError positioned at the current token (or
// at EOF), aborting the parse. It is the sole place the grammar raises.
func (p *Parser) errorf(format string, args ...interface{}) {
	t := p.peek()
	msg := fmt.Sprintf(format, args...)
	if t.Class == token.EOF {
		panic(&SyntaxError{Message: msg, AtEOF: true})
	}
	panic(&SyntaxError{Message: msg, Line: t.Line})
}
