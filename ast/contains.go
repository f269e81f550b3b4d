// SPDX-License-Identifier: Apache-2.0

package ast

import "github.com/policycore/engine/tokens"

// ContainsExpr is `Set.contains(Elem)`.
type ContainsExpr struct {
	baseNode
	Set, Elem Expr
}

func NewContainsExpr(set, elem Expr, r tokens.Range) *ContainsExpr {
	return &ContainsExpr{baseNode: baseNode{Range: r}, Set: set, Elem: elem}
}

func (e *ContainsExpr) String() string { return e.Set.String() + ".contains(" + e.Elem.String() + ")" }
func (e *ContainsExpr) exprNode()      {}

// ContainsAllExpr is `Set.containsAll(Other)`.
type ContainsAllExpr struct {
	baseNode
	Set, Other Expr
}

func NewContainsAllExpr(set, other Expr, r tokens.Range) *ContainsAllExpr {
	return &ContainsAllExpr{baseNode: baseNode{Range: r}, Set: set, Other: other}
}

func (e *ContainsAllExpr) String() string {
	return e.Set.String() + ".containsAll(" + e.Other.String() + ")"
}
func (e *ContainsAllExpr) exprNode() {}

// ContainsAnyExpr is `Set.containsAny(Other)`.
type ContainsAnyExpr struct {
	baseNode
	Set, Other Expr
}

func NewContainsAnyExpr(set, other Expr, r tokens.Range) *ContainsAnyExpr {
	return &ContainsAnyExpr{baseNode: baseNode{Range: r}, Set: set, Other: other}
}

func (e *ContainsAnyExpr) String() string {
	return e.Set.String() + ".containsAny(" + e.Other.String() + ")"
}
func (e *ContainsAnyExpr) exprNode() {}
