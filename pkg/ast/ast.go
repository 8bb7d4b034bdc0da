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

// Package ast defines the syntax tree produced by pkg/parser and the
// indented printer used to render it.
package ast

import (
	"bytes"
	"fmt"
	"io"
)

// Kind is a tag from the closed set of syntactic categories a Node may
// belong to.
type Kind string

const (
	Program                      Kind = "Program"
	PreprocessorDirective        Kind = "PreprocessorDirective"
	VariableDeclarationStatement Kind = "VariableDeclarationStatement"
	TypeSpecifier                Kind = "TypeSpecifier"
	KeywordNode                  Kind = "Keyword"
	Declarator                   Kind = "Declarator"
	Initializer                  Kind = "Initializer"
	FunctionDefinition           Kind = "FunctionDefinition"
	FunctionPrototype            Kind = "FunctionPrototype"
	BlockStatement               Kind = "BlockStatement"
	IfStatement                  Kind = "IfStatement"
	ForStatement                 Kind = "ForStatement"
	ReturnStatement              Kind = "ReturnStatement"
	EmptyStatement               Kind = "EmptyStatement"
	ExpressionStatement          Kind = "ExpressionStatement"
	AssignmentExpression         Kind = "AssignmentExpression"
	BinaryExpression             Kind = "BinaryExpression"
	Constant                     Kind = "Constant"
	Identifier                   Kind = "Identifier"
	Empty                        Kind = "Empty"
)

// A Node is one element of the syntax tree. A Node exclusively owns its
// Children; dropping the root releases the whole tree (the tree is
// acyclic by construction, so no shared ownership or reference counting
// is needed — see SPEC_FULL.md §9 "Owned tree").
type Node struct {
	Kind     Kind
	Value    string
	Line     int
	Children []*Node
}

// New returns a new Node of the given kind, value, and line, with no
// children.
func New(kind Kind, value string, line int) *Node {
	return &Node{Kind: kind, Value: value, Line: line}
}

// Append adds children to n's child list, in order, and returns n for
// chaining.
func (n *Node) Append(children ...*Node) *Node {
	n.Children = append(n.Children, children...)
	return n
}

// String renders n's subtree using the box-drawing printer (see Fprint).
func (n *Node) String() string {
	var buf bytes.Buffer
	Fprint(&buf, n)
	return buf.String()
}

// Equal reports whether n and o have the same shape: equal kind, value,
// line, and equal children in order. It is used by tests to check the
// comment-transparency law (spec.md §8 property 4): two token streams
// that differ only by inserted comment tokens must parse to Equal trees.
func (n *Node) Equal(o *Node) bool {
	if n == nil || o == nil {
		return n == o
	}
	if n.Kind != o.Kind || n.Value != o.Value || n.Line != o.Line {
		return false
	}
	if len(n.Children) != len(o.Children) {
		return false
	}
	for i := range n.Children {
		if !n.Children[i].Equal(o.Children[i]) {
			return false
		}
	}
	return true
}

// Fprint renders n's subtree to w as indented ASCII using box-drawing
// characters, one node per line: "<prefix><branch><kind> (<value>)
// [Line: <line>]". The root is treated as a last child with an empty
// prefix.
func Fprint(w io.Writer, n *Node) {
	fprintNode(w, n, "", true)
}

func fprintNode(w io.Writer, n *Node, prefix string, last bool) {
	branch := "├── "
	childPrefix := prefix + "│   "
	if last {
		branch = "└── "
		childPrefix = prefix + "    "
	}
	fmt.Fprintf(w, "%s%s%s (%s) [Line: %d]\n", prefix, branch, n.Kind, n.Value, n.Line)
	for i, c := range n.Children {
		fprintNode(w, c, childPrefix, i == len(n.Children)-1)
	}
}
