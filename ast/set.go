// SPDX-License-Identifier: Apache-2.0

package ast

import (
	"strings"

	"github.com/policycore/engine/tokens"
)

// SetLiteral is `[e1, e2, ...]`. Elements evaluate left to right; the
// evaluator de-duplicates by structural equality, preserving
// first-occurrence order.
type SetLiteral struct {
	baseNode
	Elements []Expr
}

func NewSetLiteral(elems []Expr, r tokens.Range) *SetLiteral {
	return &SetLiteral{baseNode: baseNode{Range: r}, Elements: elems}
}

func (e *SetLiteral) String() string {
	parts := make([]string, len(e.Elements))
	for i, el := range e.Elements {
		parts[i] = el.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
func (e *SetLiteral) exprNode() {}
