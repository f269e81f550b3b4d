// SPDX-License-Identifier: Apache-2.0

package eval

import (
	"github.com/policycore/engine/ast"
	"github.com/policycore/engine/tokens"
	"github.com/policycore/engine/value"
)

// PartialValue is the result of partial evaluation: either a concrete
// Value or a Residual expression that still contains an Unknown.
type PartialValue struct {
	Value    value.Value
	Residual ast.Expr
}

// IsResidual reports whether this PartialValue still carries an
// unevaluated symbolic expression.
func (pv PartialValue) IsResidual() bool { return pv.Residual != nil }

func concrete(v value.Value) PartialValue { return PartialValue{Value: v} }

func residual(e ast.Expr) PartialValue { return PartialValue{Residual: e} }

// exprOf renders pv back into an ast.Expr: its own Residual if it has
// one, or a freshly built literal node if it is concrete. Used to
// reassemble a parent residual expression out of partially evaluated
// children.
func exprOf(pv PartialValue) ast.Expr {
	if pv.IsResidual() {
		return pv.Residual
	}
	return valueToExpr(pv.Value)
}

// valueToExpr converts a concrete Value into the literal AST node that
// would produce it, for embedding inside a reconstructed residual
// expression. Extension values round-trip through their single-string
// constructor, which both built-in extensions (ip, decimal) support.
func valueToExpr(v value.Value) ast.Expr {
	switch x := v.(type) {
	case bool:
		return ast.NewBoolLiteral(x, tokens.Range{})
	case int64:
		return ast.NewLongLiteral(x, tokens.Range{})
	case string:
		return ast.NewStringLiteral(x, tokens.Range{})
	case value.EntityUID:
		return ast.NewEntityUIDLiteral(x.Type, x.ID, tokens.Range{})
	case *value.Set:
		elems := make([]ast.Expr, 0, len(x.Elements()))
		for _, e := range x.Elements() {
			elems = append(elems, valueToExpr(e))
		}
		return ast.NewSetLiteral(elems, tokens.Range{})
	case *value.Record:
		entries := make([]ast.RecordEntry, 0, x.Len())
		for _, k := range x.Keys() {
			fv, _ := x.Get(k)
			entries = append(entries, ast.RecordEntry{Key: k, Value: valueToExpr(fv)})
		}
		return ast.NewRecordLiteral(entries, tokens.Range{})
	case value.Extension:
		return ast.NewExtensionCallExpr(x.Name, []ast.Expr{
			ast.NewStringLiteral(x.Payload.String(), tokens.Range{}),
		}, tokens.Range{})
	default:
		panic("eval: valueToExpr: unhandled value kind")
	}
}
