// SPDX-License-Identifier: Apache-2.0

// Package ast defines the expression AST the evaluator walks: literals,
// the principal/action/resource/context variables, template slots,
// partial-evaluation unknowns, the boolean/arithmetic/comparison
// operators, entity hierarchy ("in") and attribute access, set and
// record construction, and extension function calls.
//
// Building policies (out of scope for this package, see policy) produces
// trees of these nodes directly — there is no textual parser here; that
// front end is an external collaborator per the engine's scope.
package ast

import "github.com/policycore/engine/tokens"

// Node is any AST node: every Expr and nothing else (the grammar this
// package models has no separate statement forms).
type Node interface {
	String() string
	Position() tokens.Range
}

// Expr is an expression node. Every concrete type in this package
// implements Expr via the unexported exprNode marker method, which also
// prevents other packages from defining new node kinds.
type Expr interface {
	Node
	exprNode()
}

// baseNode carries the source range common to every node. It is embedded
// by value in each concrete node type (never as a pointer) so zero-value
// nodes built without a range still satisfy Expr.
type baseNode struct {
	Range tokens.Range
}

func (b baseNode) Position() tokens.Range { return b.Range }
