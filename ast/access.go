// SPDX-License-Identifier: Apache-2.0

package ast

import "github.com/policycore/engine/tokens"

// GetAttrExpr is `Operand.Attr`, valid on records and entities.
type GetAttrExpr struct {
	baseNode
	Operand Expr
	Attr    string
}

func NewGetAttrExpr(operand Expr, attr string, r tokens.Range) *GetAttrExpr {
	return &GetAttrExpr{baseNode: baseNode{Range: r}, Operand: operand, Attr: attr}
}

func (e *GetAttrExpr) String() string { return e.Operand.String() + "." + e.Attr }
func (e *GetAttrExpr) exprNode()      {}

// IndexExpr is `Operand["Attr"]`, semantically identical to GetAttrExpr
// but with a bracketed literal key (kept distinct so the AST round-trips
// the original syntax form).
type IndexExpr struct {
	baseNode
	Operand Expr
	Attr    string
}

func NewIndexExpr(operand Expr, attr string, r tokens.Range) *IndexExpr {
	return &IndexExpr{baseNode: baseNode{Range: r}, Operand: operand, Attr: attr}
}

func (e *IndexExpr) String() string { return e.Operand.String() + "[\"" + e.Attr + "\"]" }
func (e *IndexExpr) exprNode()      {}
