// SPDX-License-Identifier: Apache-2.0

package eval

import (
	"github.com/policycore/engine/ast"
	"github.com/policycore/engine/value"
	"github.com/policycore/engine/xerr"
)

func requireBool(pv PartialValue) (bool, error) {
	b, ok := pv.Value.(bool)
	if !ok {
		return false, xerr.TypeErrorSingle(value.BoolType, value.TypeOf(pv.Value))
	}
	return b, nil
}

func (in *Interpreter) evalIf(n *ast.IfExpr, depth int) (PartialValue, error) {
	cond, err := in.eval(n.Cond, depth+1)
	if err != nil {
		return PartialValue{}, err
	}
	if cond.IsResidual() {
		return residual(ast.NewIfExpr(cond.Residual, n.Then, n.Else, n.Position())), nil
	}
	b, err := requireBool(cond)
	if err != nil {
		return PartialValue{}, err
	}
	if b {
		return in.eval(n.Then, depth+1)
	}
	return in.eval(n.Else, depth+1)
}

func (in *Interpreter) evalAnd(n *ast.And, depth int) (PartialValue, error) {
	left, err := in.eval(n.Left, depth+1)
	if err != nil {
		return PartialValue{}, err
	}
	if left.IsResidual() {
		return residual(ast.NewAnd(left.Residual, n.Right, n.Position())), nil
	}
	lb, err := requireBool(left)
	if err != nil {
		return PartialValue{}, err
	}
	if !lb {
		return concrete(false), nil
	}
	right, err := in.eval(n.Right, depth+1)
	if err != nil {
		return PartialValue{}, err
	}
	if right.IsResidual() {
		// keep the && so the residual still demands a boolean right side
		return residual(ast.NewAnd(ast.NewBoolLiteral(true, n.Position()), right.Residual, n.Position())), nil
	}
	rb, err := requireBool(right)
	if err != nil {
		return PartialValue{}, err
	}
	return concrete(rb), nil
}

func (in *Interpreter) evalOr(n *ast.Or, depth int) (PartialValue, error) {
	left, err := in.eval(n.Left, depth+1)
	if err != nil {
		return PartialValue{}, err
	}
	if left.IsResidual() {
		return residual(ast.NewOr(left.Residual, n.Right, n.Position())), nil
	}
	lb, err := requireBool(left)
	if err != nil {
		return PartialValue{}, err
	}
	if lb {
		return concrete(true), nil
	}
	right, err := in.eval(n.Right, depth+1)
	if err != nil {
		return PartialValue{}, err
	}
	if right.IsResidual() {
		return residual(ast.NewOr(ast.NewBoolLiteral(false, n.Position()), right.Residual, n.Position())), nil
	}
	rb, err := requireBool(right)
	if err != nil {
		return PartialValue{}, err
	}
	return concrete(rb), nil
}

func (in *Interpreter) evalNot(n *ast.Not, depth int) (PartialValue, error) {
	operand, err := in.eval(n.Operand, depth+1)
	if err != nil {
		return PartialValue{}, err
	}
	if operand.IsResidual() {
		return residual(ast.NewNot(operand.Residual, n.Position())), nil
	}
	b, err := requireBool(operand)
	if err != nil {
		return PartialValue{}, err
	}
	return concrete(!b), nil
}
