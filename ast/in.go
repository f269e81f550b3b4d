// SPDX-License-Identifier: Apache-2.0

package ast

import "github.com/policycore/engine/tokens"

// InExpr is `Left in Right`: Left must evaluate to an entity UID; Right
// to either an entity UID or a set of entity UIDs.
type InExpr struct {
	baseNode
	Left, Right Expr
}

func NewInExpr(left, right Expr, r tokens.Range) *InExpr {
	return &InExpr{baseNode: baseNode{Range: r}, Left: left, Right: right}
}

func (e *InExpr) String() string { return "(" + e.Left.String() + " in " + e.Right.String() + ")" }
func (e *InExpr) exprNode()      {}
