// SPDX-License-Identifier: Apache-2.0

package ast

import (
	"strings"

	"github.com/policycore/engine/tokens"
)

// ExtensionCallExpr is `fn(a1, ..., aN)`. Method-call syntax like
// `a.isInRange(b)` desugars to ExtensionCallExpr{Name: "isInRange",
// Args: [a, b]} before it ever reaches this package.
type ExtensionCallExpr struct {
	baseNode
	Name string
	Args []Expr
}

func NewExtensionCallExpr(name string, args []Expr, r tokens.Range) *ExtensionCallExpr {
	return &ExtensionCallExpr{baseNode: baseNode{Range: r}, Name: name, Args: args}
}

func (e *ExtensionCallExpr) String() string {
	parts := make([]string, len(e.Args))
	for i, a := range e.Args {
		parts[i] = a.String()
	}
	return e.Name + "(" + strings.Join(parts, ", ") + ")"
}
func (e *ExtensionCallExpr) exprNode() {}
