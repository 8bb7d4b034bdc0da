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

package token

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// runHeaderPrefix marks the one recognized, silently-skipped header line a
// Writer may emit ahead of the first token line (see SPEC_FULL.md §11).
const runHeaderPrefix = "# run "

// readFile makes testing of Load easier, mirroring the teacher's
// package-level readFile seam in file.go.
var readFile = io.ReadAll

// Write serializes stream to w, one token per line, framed as
// "<CLASS, VALUE, LINE>". If runID is non-empty it is written first as a
// recognized, skip-on-load header comment.
func Write(w io.Writer, stream []*Token, runID string) error {
	bw := bufio.NewWriter(w)
	if runID != "" {
		if _, err := fmt.Fprintf(bw, "%s%s\n", runHeaderPrefix, runID); err != nil {
			return err
		}
	}
	for _, t := range stream {
		if _, err := fmt.Fprintf(bw, "<%s, %s, %d>\n", t.Class, t.Value, t.Line); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// NewRunID returns a fresh run identifier for use with Write, grounded on
// google/uuid the way the rest of the retrieval pack tags run-scoped
// artifacts.
func NewRunID() string { return uuid.NewString() }

// Warning is one non-fatal problem encountered while loading a token
// stream: a malformed line that was skipped.
type Warning struct {
	LineNo int // 1-based line number within the interchange file
	Text   string
	Reason string
}

func (w Warning) String() string {
	return fmt.Sprintf("tokens.txt:%d: skipping %q: %s", w.LineNo, w.Text, w.Reason)
}

// Load reads an interchange file from r and returns the reconstructed
// token stream plus any non-fatal warnings for malformed lines. Warnings
// never abort the load; the offending line is simply skipped, per
// spec.md §4.2/§7.
func Load(r io.Reader) ([]*Token, []Warning, error) {
	data, err := readFile(r)
	if err != nil {
		return nil, nil, err
	}
	var stream []*Token
	var warnings []Warning
	lines := strings.Split(string(data), "\n")
	for i, line := range lines {
		lineNo := i + 1
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, runHeaderPrefix) {
			continue
		}
		tok, reason := parseLine(line)
		if tok == nil {
			warnings = append(warnings, Warning{LineNo: lineNo, Text: line, Reason: reason})
			continue
		}
		stream = append(stream, tok)
	}
	return stream, warnings, nil
}

// parseLine parses one "<CLASS, VALUE, LINE>" line. It returns (nil,
// reason) if the line is too short, isn't properly framed, doesn't carry
// two distinct commas, or has an unparseable line number.
func parseLine(line string) (*Token, string) {
	if len(line) < 5 {
		return nil, "line shorter than 5 characters"
	}
	if !strings.HasPrefix(line, "<") || !strings.HasSuffix(line, ">") {
		return nil, "missing leading '<' or trailing '>'"
	}
	body := line[1 : len(line)-1]
	first := strings.Index(body, ", ")
	last := strings.LastIndex(body, ", ")
	if first < 0 || last < 0 || first == last {
		return nil, "does not contain two distinct field separators"
	}
	class := body[:first]
	value := body[first+2 : last]
	lineField := body[last+2:]
	n, err := strconv.Atoi(lineField)
	if err != nil {
		return nil, fmt.Sprintf("unparseable line number %q", lineField)
	}
	return &Token{Class: Class(class), Value: value, Line: n}, ""
}
