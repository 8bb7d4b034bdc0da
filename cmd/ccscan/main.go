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

// Program ccscan reads a C source file, classifies it into a token
// stream, and writes it to an interchange file for ccparse to consume.
//
// Usage: ccscan [--out FILE] [--quiet] [--debug] [FILE]
//
// If FILE is given it is opened directly. Otherwise ccscan runs
// interactively: it asks whether the source is in the current directory,
// then prompts for a filename, looping until one opens.
package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pborman/getopt"

	"github.com/go-ccfe/ccfe/pkg/scanner"
	"github.com/go-ccfe/ccfe/pkg/token"
)

func main() {
	var out string
	var quiet, debug, help, tagRun bool
	getopt.StringVarLong(&out, "out", 0, "interchange file to write", "FILE")
	getopt.BoolVarLong(&quiet, "quiet", 0, "suppress the line-count summary")
	getopt.BoolVarLong(&debug, "debug", 0, "log each lexer state transition to stderr")
	getopt.BoolVarLong(&tagRun, "tag-run", 0, "prefix the interchange file with a run-id header")
	getopt.BoolVarLong(&help, "help", '?', "display help")
	getopt.SetParameters("[FILE]")

	if err := getopt.Getopt(nil); err != nil {
		fmt.Fprintln(os.Stderr, err)
		getopt.PrintUsage(os.Stderr)
		os.Exit(1)
	}
	if help {
		getopt.PrintUsage(os.Stderr)
		os.Exit(0)
	}
	if out == "" {
		out = "tokens.txt"
	}

	args := getopt.Args()
	var path string
	var source []byte
	var err error
	if len(args) > 0 {
		path = args[0]
		source, err = os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "cannot open %s: %v\n", path, err)
			os.Exit(1)
		}
	} else {
		path, source = promptForSource(os.Stdin, os.Stdout)
	}

	s := scanner.New(string(source), scanner.Options{Debug: debug, Errout: os.Stderr})
	stream, status := s.Scan()

	switch status {
	case scanner.UnexpectedCharacterStatus:
		fmt.Fprintf(os.Stderr, "unexpected character %q at line %d\n", s.BadChar(), s.BadLine())
		os.Exit(1)
	case scanner.UnterminatedBlockComment:
		fmt.Fprintln(os.Stderr, "unterminated block comment: reached end of file inside /* ... */")
		os.Exit(1)
	}

	if len(source) == 0 {
		fmt.Fprintln(os.Stderr, "empty source file: nothing to scan")
		os.Exit(1)
	}

	f, err := os.Create(out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot create %s: %v\n", out, err)
		os.Exit(1)
	}
	defer f.Close()

	runID := ""
	if tagRun {
		runID = token.NewRunID()
	}
	if err := token.Write(f, stream, runID); err != nil {
		fmt.Fprintf(os.Stderr, "cannot write %s: %v\n", out, err)
		os.Exit(1)
	}

	if !quiet {
		fmt.Printf("%s: %d tokens across %d lines\n", path, len(stream), s.LineCount())
	}
}

// promptForSource implements the interactive CLI contract from spec.md
// §6: ask whether the source is in the current directory, then prompt
// for a filename or path, looping until a file opens. The y/n answer
// picks which of the two follow-up prompts is used and, for a bare
// filename, resolves it against the working directory.
func promptForSource(in *os.File, out *os.File) (string, []byte) {
	reader := bufio.NewReader(in)
	fmt.Fprint(out, "Is the source file in the current directory? (y/n): ")
	answer, _ := reader.ReadString('\n')
	inCurrentDir := strings.HasPrefix(strings.ToLower(strings.TrimSpace(answer)), "y")

	prompt := "Enter the full path to the source file: "
	if inCurrentDir {
		prompt = "Enter the source file name: "
	}

	for {
		fmt.Fprint(out, prompt)
		line, _ := reader.ReadString('\n')
		path := strings.TrimSpace(line)
		if inCurrentDir {
			if wd, err := os.Getwd(); err == nil {
				path = filepath.Join(wd, path)
			}
		}
		data, err := os.ReadFile(path)
		if err == nil {
			return path, data
		}
		fmt.Fprintf(out, "cannot open %s: %v\n", path, err)
	}
}
