// SPDX-License-Identifier: Apache-2.0

package ast

import "github.com/policycore/engine/tokens"

// BinaryOp is an equality, ordering, or arithmetic operator.
type BinaryOp int

const (
	OpEq BinaryOp = iota
	OpNeq
	OpLt
	OpLte
	OpGt
	OpGte
	OpAdd
	OpSub
	OpMul
)

func (op BinaryOp) String() string {
	switch op {
	case OpEq:
		return "=="
	case OpNeq:
		return "!="
	case OpLt:
		return "<"
	case OpLte:
		return "<="
	case OpGt:
		return ">"
	case OpGte:
		return ">="
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	default:
		return "?op"
	}
}

// BinaryExpr is `Left Op Right` for the operators above.
type BinaryExpr struct {
	baseNode
	Op          BinaryOp
	Left, Right Expr
}

func NewBinaryExpr(op BinaryOp, left, right Expr, r tokens.Range) *BinaryExpr {
	return &BinaryExpr{baseNode: baseNode{Range: r}, Op: op, Left: left, Right: right}
}

func (e *BinaryExpr) String() string {
	return "(" + e.Left.String() + " " + e.Op.String() + " " + e.Right.String() + ")"
}
func (e *BinaryExpr) exprNode() {}
