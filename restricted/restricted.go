// SPDX-License-Identifier: Apache-2.0

// Package restricted evaluates the restricted-expression grammar used
// for entity attributes and request context: literals, record/set
// literals, and extension calls only. It never looks at an entity
// store and never recurses through a variable or attribute access, so
// it terminates in time proportional to the AST size with no lookups.
package restricted

import (
	"github.com/policycore/engine/ast"
	"github.com/policycore/engine/extension"
	"github.com/policycore/engine/value"
	"github.com/policycore/engine/xerr"
)

// Evaluate reduces a restricted expression to a Value. Any node outside
// the restricted grammar (variable, slot, unknown, attribute access,
// `if`, a boolean connective, or a comparison) raises
// InvalidRestrictedExpression.
func Evaluate(expr ast.Expr, reg *extension.Registry) (value.Value, error) {
	switch n := expr.(type) {
	case *ast.BoolLiteral:
		return n.Value, nil
	case *ast.LongLiteral:
		return n.Value, nil
	case *ast.StringLiteral:
		return n.Value, nil
	case *ast.EntityUIDLiteral:
		return value.EntityUID{Type: n.Type, ID: n.ID}, nil

	case *ast.SetLiteral:
		elems := make([]value.Value, 0, len(n.Elements))
		for _, e := range n.Elements {
			v, err := Evaluate(e, reg)
			if err != nil {
				return nil, err
			}
			elems = append(elems, v)
		}
		return value.NewSet(elems...), nil

	case *ast.RecordLiteral:
		keys := make([]string, 0, len(n.Entries))
		vals := make([]value.Value, 0, len(n.Entries))
		for _, entry := range n.Entries {
			v, err := Evaluate(entry.Value, reg)
			if err != nil {
				return nil, err
			}
			keys = append(keys, entry.Key)
			vals = append(vals, v)
		}
		rec, err := value.NewRecord(keys, vals)
		if err != nil {
			return nil, xerr.InvalidRestrictedExpression(err.Error())
		}
		return rec, nil

	case *ast.ExtensionCallExpr:
		args := make([]value.Value, 0, len(n.Args))
		for _, a := range n.Args {
			v, err := Evaluate(a, reg)
			if err != nil {
				return nil, err
			}
			args = append(args, v)
		}
		return reg.Call(n.Name, args)

	default:
		return nil, xerr.InvalidRestrictedExpression("expression of type "+nodeKind(expr)+" is not allowed here").At(expr.Position())
	}
}

func nodeKind(expr ast.Expr) string {
	switch expr.(type) {
	case *ast.Variable:
		return "variable"
	case *ast.Slot:
		return "slot"
	case *ast.Unknown:
		return "unknown"
	case *ast.IfExpr:
		return "if"
	case *ast.And, *ast.Or, *ast.Not:
		return "boolean connective"
	case *ast.BinaryExpr:
		return "comparison or arithmetic"
	case *ast.GetAttrExpr, *ast.IndexExpr:
		return "attribute access"
	case *ast.InExpr:
		return "in"
	case *ast.HasExpr:
		return "has"
	case *ast.LikeExpr:
		return "like"
	case *ast.ContainsExpr, *ast.ContainsAllExpr, *ast.ContainsAnyExpr:
		return "contains"
	case *ast.Neg:
		return "unary minus"
	default:
		return "unsupported node"
	}
}
