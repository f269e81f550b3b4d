// SPDX-License-Identifier: Apache-2.0

package ast

import "github.com/policycore/engine/tokens"

// HasExpr is `Operand has "Attr"`. Operand may be a record or an
// entity; a missing entity/attribute yields false, never an error.
type HasExpr struct {
	baseNode
	Operand Expr
	Attr    string
}

func NewHasExpr(operand Expr, attr string, r tokens.Range) *HasExpr {
	return &HasExpr{baseNode: baseNode{Range: r}, Operand: operand, Attr: attr}
}

func (e *HasExpr) String() string { return e.Operand.String() + " has \"" + e.Attr + "\"" }
func (e *HasExpr) exprNode()      {}
