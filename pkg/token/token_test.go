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

import "testing"

func TestIsKeyword(t *testing.T) {
	for _, word := range []string{"int", "while", "auto", "const"} {
		if !IsKeyword(word) {
			t.Errorf("IsKeyword(%q) = false, want true", word)
		}
	}
	for _, word := range []string{"foo", "main", "Int"} {
		if IsKeyword(word) {
			t.Errorf("IsKeyword(%q) = true, want false", word)
		}
	}
}

func TestMatchMultiCharOperator(t *testing.T) {
	for _, tt := range []struct {
		in   string
		want string
	}{
		{"<<=1", "<<="},
		{"<<1", "<<"},
		{"<1", ""},
		{"==x", "=="},
		{"pow", "pow"},
	} {
		got, n := MatchMultiCharOperator(tt.in)
		if got != tt.want || (tt.want != "" && n != len(tt.want)) {
			t.Errorf("MatchMultiCharOperator(%q) = (%q, %d), want %q", tt.in, got, n, tt.want)
		}
	}
}

func TestTokenEqual(t *testing.T) {
	a := &Token{Class: Identifier, Value: "x", Line: 3}
	b := &Token{Class: Identifier, Value: "x", Line: 3, Col: 9}
	if !a.Equal(b) {
		t.Errorf("Equal ignoring Col: got false, want true")
	}
	c := &Token{Class: Identifier, Value: "x", Line: 4}
	if a.Equal(c) {
		t.Errorf("tokens on different lines compared equal")
	}
}
