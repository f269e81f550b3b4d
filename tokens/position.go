// SPDX-License-Identifier: Apache-2.0

package tokens

import "fmt"

// Pos represents a location within source code.
type Pos struct {
	Line   int
	Column int
	Offset int
}

// Range represents a contiguous region of source code. It is optional
// decoration on an AST node: the evaluator only copies it onto the
// errors it raises and never lets it affect a result.
type Range struct {
	File string
	From Pos
	To   Pos
}

func (s Range) String() string {
	if s.From.Line == s.To.Line {
		return fmt.Sprintf("%s:%d:%d-%d", s.File, s.From.Line, s.From.Column, s.To.Column)
	}
	return fmt.Sprintf("%s:%d:%d-%d:%d", s.File, s.From.Line, s.From.Column, s.To.Line, s.To.Column)
}

// IsZero reports whether s carries no position information (the
// zero value nodes get when built without a source range).
func (s Range) IsZero() bool { return s == Range{} }
