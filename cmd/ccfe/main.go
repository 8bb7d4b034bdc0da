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

// Program ccfe is a single-binary umbrella over the scan and parse
// stages, for users who would rather install one tool than two. It adds
// no behavior of its own: "ccfe scan" and "ccfe parse" reuse the same
// pkg/scanner, pkg/parser, and pkg/token plumbing as the standalone
// ccscan and ccparse binaries, which remain the source-of-truth CLIs.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/go-ccfe/ccfe/pkg/ast"
	"github.com/go-ccfe/ccfe/pkg/parser"
	"github.com/go-ccfe/ccfe/pkg/scanner"
	"github.com/go-ccfe/ccfe/pkg/token"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "ccfe",
		Short: "Scan and parse a C99 subset front end",
	}
	root.AddCommand(newScanCmd(), newParseCmd())
	return root
}

func newScanCmd() *cobra.Command {
	var out string
	var debug bool
	cmd := &cobra.Command{
		Use:   "scan FILE",
		Short: "Scan a source file into a token interchange file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("cannot open %s: %w", args[0], err)
			}
			s := scanner.New(string(source), scanner.Options{Debug: debug, Errout: cmd.ErrOrStderr()})
			stream, status := s.Scan()
			switch status {
			case scanner.UnexpectedCharacterStatus:
				return fmt.Errorf("unexpected character %q at line %d", s.BadChar(), s.BadLine())
			case scanner.UnterminatedBlockComment:
				return fmt.Errorf("unterminated block comment")
			}
			if len(source) == 0 {
				return fmt.Errorf("empty source file: nothing to scan")
			}
			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("cannot create %s: %w", out, err)
			}
			defer f.Close()
			if err := token.Write(f, stream, ""); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d tokens across %d lines\n", args[0], len(stream), s.LineCount())
			return nil
		},
	}
	cmd.Flags().StringVar(&out, "out", "tokens.txt", "interchange file to write")
	cmd.Flags().BoolVar(&debug, "debug", false, "log each lexer state transition to stderr")
	return cmd
}

func newParseCmd() *cobra.Command {
	var in string
	var printTree bool
	cmd := &cobra.Command{
		Use:   "parse",
		Short: "Parse a token interchange file and print its syntax tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(in)
			if err != nil {
				return fmt.Errorf("cannot open %s: halting", in)
			}
			defer f.Close()

			stream, warnings, err := token.Load(f)
			if err != nil {
				return err
			}
			for _, w := range warnings {
				fmt.Fprintln(cmd.ErrOrStderr(), w.String())
			}
			if len(stream) == 0 {
				return fmt.Errorf("%s is empty: halting", in)
			}

			root, err := parser.Parse(stream, parser.Options{})
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), err)
				fmt.Fprintln(cmd.OutOrStdout(), "Program has one or more syntax errors.")
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Program is syntactically valid.")
			if printTree {
				ast.Fprint(cmd.OutOrStdout(), root)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&in, "in", "tokens.txt", "interchange file to read")
	cmd.Flags().BoolVar(&printTree, "tree", true, "print the parsed tree on success")
	return cmd
}
