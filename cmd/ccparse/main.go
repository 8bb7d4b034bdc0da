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

// Program ccparse loads a token interchange file, runs the grammar over
// it, and either prints the resulting syntax tree or reports the first
// syntax error.
//
// Usage: ccparse [--in FILE] [--tree=false]
package main

import (
	"fmt"
	"os"

	"github.com/pborman/getopt"

	"github.com/go-ccfe/ccfe/pkg/ast"
	"github.com/go-ccfe/ccfe/pkg/parser"
	"github.com/go-ccfe/ccfe/pkg/token"
)

func main() {
	var in string
	tree := true
	var help bool
	getopt.StringVarLong(&in, "in", 0, "interchange file to read", "FILE")
	getopt.BoolVarLong(&tree, "tree", 0, "print the parsed tree on success")
	getopt.BoolVarLong(&help, "help", '?', "display help")

	if err := getopt.Getopt(nil); err != nil {
		fmt.Fprintln(os.Stderr, err)
		getopt.PrintUsage(os.Stderr)
		os.Exit(1)
	}
	if help {
		getopt.PrintUsage(os.Stderr)
		os.Exit(0)
	}
	if in == "" {
		in = "tokens.txt"
	}

	f, err := os.Open(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot open %s: halting\n", in)
		os.Exit(1)
	}
	defer f.Close()

	stream, warnings, err := token.Load(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot read %s: %v\n", in, err)
		os.Exit(1)
	}
	for _, w := range warnings {
		fmt.Fprintln(os.Stderr, w.String())
	}

	if len(stream) == 0 {
		fmt.Fprintf(os.Stderr, "%s is empty: halting\n", in)
		os.Exit(1)
	}

	root, err := parser.Parse(stream, parser.Options{})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Println("Program has one or more syntax errors.")
		os.Exit(1)
	}

	fmt.Println("Program is syntactically valid.")
	if tree {
		ast.Fprint(os.Stdout, root)
	}
}
