// SPDX-License-Identifier: Apache-2.0

package eval

import (
	"sort"

	"github.com/policycore/engine/ast"
	"github.com/policycore/engine/value"
	"github.com/policycore/engine/xerr"
)

func (in *Interpreter) evalHas(n *ast.HasExpr, depth int) (PartialValue, error) {
	operand, err := in.eval(n.Operand, depth+1)
	if err != nil {
		return PartialValue{}, err
	}
	if operand.IsResidual() {
		return residual(ast.NewHasExpr(operand.Residual, n.Attr, n.Position())), nil
	}

	switch v := operand.Value.(type) {
	case *value.Record:
		return concrete(v.Has(n.Attr)), nil
	case value.EntityUID:
		if v.IsUnspecified() {
			return concrete(false), nil
		}
		if in.mode == ModePartial && in.entities.IsResidual(v) {
			return residual(n), nil
		}
		return concrete(in.entities.HasAttr(v, n.Attr)), nil
	default:
		return PartialValue{}, xerr.TypeError([]value.Type{value.RecordType, value.AnyEntity}, value.TypeOf(operand.Value))
	}
}

func (in *Interpreter) evalGetAttr(operandExpr ast.Expr, attr string, depth int) (PartialValue, error) {
	operand, err := in.eval(operandExpr, depth+1)
	if err != nil {
		return PartialValue{}, err
	}
	if operand.IsResidual() {
		return residual(ast.NewGetAttrExpr(operand.Residual, attr, operandExpr.Position())), nil
	}

	switch v := operand.Value.(type) {
	case *value.Record:
		val, ok := v.Get(attr)
		if !ok {
			alts := append([]string{}, v.Keys()...)
			sort.Strings(alts)
			return PartialValue{}, xerr.RecordAttrDoesNotExist(attr, alts)
		}
		return concrete(val), nil
	case value.EntityUID:
		if v.IsUnspecified() {
			return PartialValue{}, xerr.UnspecifiedEntityAccess(attr)
		}
		if in.mode == ModePartial && in.entities.IsResidual(v) {
			return residual(ast.NewGetAttrExpr(operandExpr, attr, operandExpr.Position())), nil
		}
		val, err := in.entities.Attr(v, attr)
		if err != nil {
			return PartialValue{}, err
		}
		return concrete(val), nil
	default:
		return PartialValue{}, xerr.TypeError([]value.Type{value.RecordType, value.AnyEntity}, value.TypeOf(operand.Value))
	}
}

func (in *Interpreter) evalIn(n *ast.InExpr, depth int) (PartialValue, error) {
	left, err := in.eval(n.Left, depth+1)
	if err != nil {
		return PartialValue{}, err
	}
	right, err := in.eval(n.Right, depth+1)
	if err != nil {
		return PartialValue{}, err
	}
	if left.IsResidual() || right.IsResidual() {
		return residual(ast.NewInExpr(exprOf(left), exprOf(right), n.Position())), nil
	}

	lhs, ok := left.Value.(value.EntityUID)
	if !ok {
		return PartialValue{}, xerr.TypeErrorSingle(value.AnyEntity, value.TypeOf(left.Value))
	}

	switch rhs := right.Value.(type) {
	case value.EntityUID:
		return concrete(in.entities.In(lhs, rhs)), nil
	case *value.Set:
		for _, elem := range rhs.Elements() {
			uid, ok := elem.(value.EntityUID)
			if !ok {
				return PartialValue{}, xerr.TypeErrorSingle(value.AnyEntity, value.TypeOf(elem))
			}
			if in.entities.In(lhs, uid) {
				return concrete(true), nil
			}
		}
		return concrete(false), nil
	default:
		return PartialValue{}, xerr.TypeError([]value.Type{value.AnyEntity, value.SetType}, value.TypeOf(right.Value))
	}
}
