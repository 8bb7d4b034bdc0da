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

package ast

import (
	"strings"
	"testing"
)

func TestFprint(t *testing.T) {
	root := New(Program, "", 1)
	fn := New(FunctionDefinition, "main", 1)
	ts := New(TypeSpecifier, "int", 1)
	block := New(BlockStatement, "", 1)
	ret := New(ReturnStatement, "", 1)
	ret.Append(New(Constant, "0", 1))
	block.Append(ret)
	fn.Append(ts, block)
	root.Append(fn)

	got := root.String()
	want := strings.Join([]string{
		`└── Program () [Line: 1]`,
		`    └── FunctionDefinition (main) [Line: 1]`,
		`        ├── TypeSpecifier (int) [Line: 1]`,
		`        └── BlockStatement () [Line: 1]`,
		`            └── ReturnStatement () [Line: 1]`,
		`                └── Constant (0) [Line: 1]`,
		``,
	}, "\n")
	if got != want {
		t.Errorf("Fprint mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestFprintBranchesOnMultipleChildren(t *testing.T) {
	root := New(VariableDeclarationStatement, "", 1)
	root.Append(New(TypeSpecifier, "int", 1))
	root.Append(New(Declarator, "a", 1))
	root.Append(New(Declarator, "b", 1))

	got := root.String()
	if !strings.Contains(got, "├── TypeSpecifier") {
		t.Errorf("expected a ├── branch for a non-last child, got:\n%s", got)
	}
	if !strings.Contains(got, "└── Declarator (b)") {
		t.Errorf("expected a └── branch for the last child, got:\n%s", got)
	}
}

func TestEqualIgnoresNothingButShape(t *testing.T) {
	a := New(BinaryExpression, "+", 4)
	a.Append(New(Identifier, "x", 4), New(Constant, "1", 4))
	b := New(BinaryExpression, "+", 4)
	b.Append(New(Identifier, "x", 4), New(Constant, "1", 4))
	if !a.Equal(b) {
		t.Errorf("structurally identical trees compared unequal")
	}

	c := New(BinaryExpression, "+", 5)
	c.Append(New(Identifier, "x", 5), New(Constant, "1", 5))
	if a.Equal(c) {
		t.Errorf("trees differing only by line compared equal")
	}
}
