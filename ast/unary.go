// SPDX-License-Identifier: Apache-2.0

package ast

import "github.com/policycore/engine/tokens"

// Neg is unary `-Operand`, requiring a Long operand.
type Neg struct {
	baseNode
	Operand Expr
}

func NewNeg(operand Expr, r tokens.Range) *Neg {
	return &Neg{baseNode: baseNode{Range: r}, Operand: operand}
}

func (e *Neg) String() string { return "-" + e.Operand.String() }
func (e *Neg) exprNode()      {}
