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

package parser

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/openconfig/gnmi/errdiff"

	"github.com/go-ccfe/ccfe/pkg/ast"
	"github.com/go-ccfe/ccfe/pkg/scanner"
	"github.com/go-ccfe/ccfe/pkg/token"
)

// N is a small tree-builder helper for test tables, mirroring the
// teacher's S/SA Statement builders in parse_test.go.
func N(kind ast.Kind, value string, line int, children ...*ast.Node) *ast.Node {
	n := ast.New(kind, value, line)
	n.Append(children...)
	return n
}

// scan runs src through the real scanner, failing the test if scanning
// doesn't succeed, so parser tests exercise the real interchange shape
// rather than hand-built token tables.
func scan(t *testing.T, src string) []*token.Token {
	t.Helper()
	s := scanner.New(src, scanner.Options{})
	stream, status := s.Scan()
	if status != scanner.Ok {
		t.Fatalf("scan(%q) failed with status %v", src, status)
	}
	return stream
}

func TestParseEndToEndScenarios(t *testing.T) {
	for _, tt := range []struct {
		name string
		in   string
		want *ast.Node
	}{
		{
			name: "function definition",
			in:   "int main(){return 0;}",
			want: N(ast.Program, "", 1,
				N(ast.FunctionDefinition, "main", 1,
					N(ast.TypeSpecifier, "int", 1),
					N(ast.BlockStatement, "", 1,
						N(ast.ReturnStatement, "", 1,
							N(ast.Constant, "0", 1),
						),
					),
				),
			),
		},
		{
			name: "multi-declarator variable declaration",
			in:   "int a = 1, b = 2;",
			want: N(ast.Program, "", 1,
				N(ast.VariableDeclarationStatement, "", 1,
					N(ast.TypeSpecifier, "int", 1),
					N(ast.Declarator, "a", 1,
						N(ast.Initializer, "", 1, N(ast.Constant, "1", 1)),
					),
					N(ast.Declarator, "b", 1,
						N(ast.Initializer, "", 1, N(ast.Constant, "2", 1)),
					),
				),
			),
		},
		{
			name: "for statement with four children",
			in:   "int main(){for(int i=0;i<10;i=i+1){}}",
			want: N(ast.Program, "", 1,
				N(ast.FunctionDefinition, "main", 1,
					N(ast.TypeSpecifier, "int", 1),
					N(ast.BlockStatement, "", 1,
						N(ast.ForStatement, "", 1,
							N(ast.VariableDeclarationStatement, "", 1,
								N(ast.TypeSpecifier, "int", 1),
								N(ast.Declarator, "i", 1,
									N(ast.Initializer, "", 1, N(ast.Constant, "0", 1)),
								),
							),
							N(ast.BinaryExpression, "<", 1,
								N(ast.Identifier, "i", 1),
								N(ast.Constant, "10", 1),
							),
							N(ast.AssignmentExpression, "=", 1,
								N(ast.Identifier, "i", 1),
								N(ast.BinaryExpression, "+", 1,
									N(ast.Identifier, "i", 1),
									N(ast.Constant, "1", 1),
								),
							),
							N(ast.BlockStatement, "", 1),
						),
					),
				),
			),
		},
		{
			name: "const-prefixed declaration",
			in:   "const int x = 5;",
			want: N(ast.Program, "", 1,
				N(ast.VariableDeclarationStatement, "", 1,
					N(ast.KeywordNode, "const", 1),
					N(ast.TypeSpecifier, "int", 1),
					N(ast.Declarator, "x", 1,
						N(ast.Initializer, "", 1, N(ast.Constant, "5", 1)),
					),
				),
			),
		},
		{
			name: "function prototype",
			in:   "int add();",
			want: N(ast.Program, "", 1,
				N(ast.FunctionPrototype, "add", 1,
					N(ast.TypeSpecifier, "int", 1),
				),
			),
		},
		{
			name: "if/else",
			in:   "int main(){if(a<b){return a;}else{return b;}}",
			want: N(ast.Program, "", 1,
				N(ast.FunctionDefinition, "main", 1,
					N(ast.TypeSpecifier, "int", 1),
					N(ast.BlockStatement, "", 1,
						N(ast.IfStatement, "", 1,
							N(ast.BinaryExpression, "<", 1,
								N(ast.Identifier, "a", 1),
								N(ast.Identifier, "b", 1),
							),
							N(ast.BlockStatement, "", 1,
								N(ast.ReturnStatement, "", 1, N(ast.Identifier, "a", 1)),
							),
							N(ast.BlockStatement, "", 1,
								N(ast.ReturnStatement, "", 1, N(ast.Identifier, "b", 1)),
							),
						),
					),
				),
			),
		},
		{
			name: "empty for slots",
			in:   "int main(){for(;;){}}",
			want: N(ast.Program, "", 1,
				N(ast.FunctionDefinition, "main", 1,
					N(ast.TypeSpecifier, "int", 1),
					N(ast.BlockStatement, "", 1,
						N(ast.ForStatement, "", 1,
							N(ast.Empty, "initializer", 1),
							N(ast.Empty, "condition", 1),
							N(ast.Empty, "increment", 1),
							N(ast.BlockStatement, "", 1),
						),
					),
				),
			),
		},
		{
			name: "preprocessor directive at top level",
			in:   "#include <stdio.h>\nint x;",
			want: N(ast.Program, "", 1,
				N(ast.PreprocessorDirective, "#include <stdio.h>", 1),
				N(ast.VariableDeclarationStatement, "", 2,
					N(ast.TypeSpecifier, "int", 2),
					N(ast.Declarator, "x", 2),
				),
			),
		},
		{
			name: "empty statement inside a block",
			in:   "int main(){;}",
			want: N(ast.Program, "", 1,
				N(ast.FunctionDefinition, "main", 1,
					N(ast.TypeSpecifier, "int", 1),
					N(ast.BlockStatement, "", 1,
						N(ast.EmptyStatement, "", 1),
					),
				),
			),
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(scan(t, tt.in), Options{})
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.in, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

func TestParseCommentTransparency(t *testing.T) {
	plain := scan(t, "int x = 1;")
	commented := scan(t, "/* lead */ int /* mid */ x = 1; // trail\n")

	p1, err := Parse(plain, Options{})
	if err != nil {
		t.Fatalf("Parse(plain): %v", err)
	}
	p2, err := Parse(commented, Options{})
	if err != nil {
		t.Fatalf("Parse(commented): %v", err)
	}
	if !p1.Equal(p2) {
		t.Errorf("comments changed the parsed tree:\nplain:\n%s\ncommented:\n%s", p1, p2)
	}
}

func TestParseSyntaxErrors(t *testing.T) {
	for _, tt := range []struct {
		name    string
		in      string
		wantErr string
	}{
		{
			name:    "second numeric segment rejected",
			in:      "float f = 0.2222.3333;",
			wantErr: "NUMERIC CONSTANT",
		},
		{
			name:    "missing semicolon",
			in:      "int x = 1",
			wantErr: "End of File",
		},
		{
			name:    "unexpected token starting an expression",
			in:      "int x = ;",
			wantErr: "unexpected token",
		},
		{
			name:    "missing closing paren",
			in:      "int main( { return 0; }",
			wantErr: "expected",
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(scan(t, tt.in), Options{})
			if diff := errdiff.Substring(err, tt.wantErr); diff != "" {
				t.Error(diff)
			}
		})
	}
}

func TestSyntaxErrorFormatting(t *testing.T) {
	_, err := Parse(scan(t, "int x = 1"), Options{})
	if err == nil {
		t.Fatal("expected an error")
	}
	if got, want := err.Error(), "[End of File] Syntax Error:"; len(got) < len(want) || got[:len(want)] != want {
		t.Errorf("error %q does not start with %q", got, want)
	}

	_, err = Parse(scan(t, "int x = ;"), Options{})
	if err == nil {
		t.Fatal("expected an error")
	}
	if got, want := err.Error(), "[Line 1] Syntax Error:"; len(got) < len(want) || got[:len(want)] != want {
		t.Errorf("error %q does not start with %q", got, want)
	}
}
