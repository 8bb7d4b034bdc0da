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

import "fmt"

// A SyntaxError is the single diagnostic a failed parse produces. The
// grammar raises it via panic and Parse recovers it at the top, so no
// partially-built subtree is ever returned to the caller (spec.md §9
// "Exceptions as control flow").
type SyntaxError struct {
	Message string
	Line    int
	AtEOF   bool
}

// Error renders e as "[Line N] Syntax Error: <message>" or
// "[End of File] Syntax Error: <message>", matching spec.md §4.3.
func (e *SyntaxError) Error() string {
	if e.AtEOF {
		return fmt.Sprintf("[End of File] Syntax Error: %s", e.Message)
	}
	return fmt.Sprintf("[Line %d] Syntax Error: %s", e.Line, e.Message)
}
