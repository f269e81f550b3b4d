// SPDX-License-Identifier: Apache-2.0

package ast

import "github.com/policycore/engine/tokens"

// LikeExpr is `Operand like "pattern"`. Pattern is the raw pattern text:
// `*` matches zero or more characters, `\*` matches a literal `*`, every
// other character matches literally by Unicode code point.
type LikeExpr struct {
	baseNode
	Operand Expr
	Pattern string
}

func NewLikeExpr(operand Expr, pattern string, r tokens.Range) *LikeExpr {
	return &LikeExpr{baseNode: baseNode{Range: r}, Operand: operand, Pattern: pattern}
}

func (e *LikeExpr) String() string { return e.Operand.String() + " like \"" + e.Pattern + "\"" }
func (e *LikeExpr) exprNode()      {}
