// SPDX-License-Identifier: Apache-2.0

package ast

import "github.com/policycore/engine/tokens"

// And is `Left && Right`, short-circuiting on a false Left.
type And struct {
	baseNode
	Left, Right Expr
}

func NewAnd(left, right Expr, r tokens.Range) *And {
	return &And{baseNode: baseNode{Range: r}, Left: left, Right: right}
}

func (e *And) String() string { return "(" + e.Left.String() + " && " + e.Right.String() + ")" }
func (e *And) exprNode()      {}

// Or is `Left || Right`, short-circuiting on a true Left.
type Or struct {
	baseNode
	Left, Right Expr
}

func NewOr(left, right Expr, r tokens.Range) *Or {
	return &Or{baseNode: baseNode{Range: r}, Left: left, Right: right}
}

func (e *Or) String() string { return "(" + e.Left.String() + " || " + e.Right.String() + ")" }
func (e *Or) exprNode()      {}

// Not is `!Operand`.
type Not struct {
	baseNode
	Operand Expr
}

func NewNot(operand Expr, r tokens.Range) *Not {
	return &Not{baseNode: baseNode{Range: r}, Operand: operand}
}

func (e *Not) String() string { return "!" + e.Operand.String() }
func (e *Not) exprNode()      {}
