// SPDX-License-Identifier: Apache-2.0

package ast

import "github.com/policycore/engine/tokens"

// IfExpr is `if Cond then Then else Else`. Whichever branch is not taken
// is never evaluated; its errors are suppressed (see eval).
type IfExpr struct {
	baseNode
	Cond, Then, Else Expr
}

func NewIfExpr(cond, then, els Expr, r tokens.Range) *IfExpr {
	return &IfExpr{baseNode: baseNode{Range: r}, Cond: cond, Then: then, Else: els}
}

func (e *IfExpr) String() string {
	return "if " + e.Cond.String() + " then " + e.Then.String() + " else " + e.Else.String()
}
func (e *IfExpr) exprNode() {}
