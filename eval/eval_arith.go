// SPDX-License-Identifier: Apache-2.0

package eval

import (
	"errors"
	"math"

	"github.com/policycore/engine/ast"
	"github.com/policycore/engine/value"
	"github.com/policycore/engine/xerr"
)

func requireLong(pv PartialValue) (int64, error) {
	l, ok := pv.Value.(int64)
	if !ok {
		return 0, xerr.TypeErrorSingle(value.LongType, value.TypeOf(pv.Value))
	}
	return l, nil
}

func (in *Interpreter) evalNeg(n *ast.Neg, depth int) (PartialValue, error) {
	operand, err := in.eval(n.Operand, depth+1)
	if err != nil {
		return PartialValue{}, err
	}
	if operand.IsResidual() {
		return residual(ast.NewNeg(operand.Residual, n.Position())), nil
	}
	l, err := requireLong(operand)
	if err != nil {
		return PartialValue{}, err
	}
	if l == math.MinInt64 {
		return PartialValue{}, xerr.OverflowUnaryOp("negate", l)
	}
	return concrete(-l), nil
}

func (in *Interpreter) evalBinary(n *ast.BinaryExpr, depth int) (PartialValue, error) {
	left, err := in.eval(n.Left, depth+1)
	if err != nil {
		return PartialValue{}, err
	}
	right, err := in.eval(n.Right, depth+1)
	if err != nil {
		return PartialValue{}, err
	}
	if left.IsResidual() || right.IsResidual() {
		return residual(ast.NewBinaryExpr(n.Op, exprOf(left), exprOf(right), n.Position())), nil
	}

	switch n.Op {
	case ast.OpEq:
		return concrete(value.Equal(left.Value, right.Value)), nil
	case ast.OpNeq:
		return concrete(!value.Equal(left.Value, right.Value)), nil
	case ast.OpLt, ast.OpLte, ast.OpGt, ast.OpGte:
		return in.evalOrdering(n.Op, left, right)
	case ast.OpAdd, ast.OpSub, ast.OpMul:
		return in.evalArith(n, left, right)
	default:
		return PartialValue{}, xerr.InvalidRestrictedExpression("unknown binary operator")
	}
}

func (in *Interpreter) evalOrdering(op ast.BinaryOp, left, right PartialValue) (PartialValue, error) {
	cmp, err := value.Compare(left.Value, right.Value)
	if err != nil {
		var notOrderable value.ErrNotOrderable
		if errors.As(err, &notOrderable) {
			return PartialValue{}, xerr.TypeErrorSingle(value.LongType, notOrderable.Actual)
		}
		return PartialValue{}, err
	}
	switch op {
	case ast.OpLt:
		return concrete(cmp < 0), nil
	case ast.OpLte:
		return concrete(cmp <= 0), nil
	case ast.OpGt:
		return concrete(cmp > 0), nil
	default:
		return concrete(cmp >= 0), nil
	}
}

func (in *Interpreter) evalArith(n *ast.BinaryExpr, left, right PartialValue) (PartialValue, error) {
	l, err := requireLong(left)
	if err != nil {
		return PartialValue{}, err
	}
	r, err := requireLong(right)
	if err != nil {
		return PartialValue{}, err
	}

	switch n.Op {
	case ast.OpAdd:
		sum := l + r
		if (r > 0 && sum < l) || (r < 0 && sum > l) {
			return PartialValue{}, xerr.OverflowBinaryOp("add", l, r)
		}
		return concrete(sum), nil
	case ast.OpSub:
		diff := l - r
		if (r < 0 && diff < l) || (r > 0 && diff > l) {
			return PartialValue{}, xerr.OverflowBinaryOp("subtract", l, r)
		}
		return concrete(diff), nil
	default: // OpMul
		if isLiteralLong(n.Left) || isLiteralLong(n.Right) {
			return in.checkedMul(l, r, n)
		}
		return in.checkedMulGeneric(l, r)
	}
}

func isLiteralLong(e ast.Expr) bool {
	_, ok := e.(*ast.LongLiteral)
	return ok
}

// checkedMul reports overflow via OverflowMultiplication when one
// operand is a literal constant in the source expression, keeping
// "multiplication by a constant" distinct from a general binary-op
// overflow in diagnostics.
func (in *Interpreter) checkedMul(l, r int64, n *ast.BinaryExpr) (PartialValue, error) {
	constant := r
	arg := l
	if lit, ok := n.Left.(*ast.LongLiteral); ok {
		constant = lit.Value
		arg = r
	}
	product, overflow := mulOverflows(l, r)
	if overflow {
		return PartialValue{}, xerr.OverflowMultiplication(arg, constant)
	}
	return concrete(product), nil
}

func (in *Interpreter) checkedMulGeneric(l, r int64) (PartialValue, error) {
	product, overflow := mulOverflows(l, r)
	if overflow {
		return PartialValue{}, xerr.OverflowBinaryOp("multiply", l, r)
	}
	return concrete(product), nil
}

func mulOverflows(l, r int64) (int64, bool) {
	if l == 0 || r == 0 {
		return 0, false
	}
	if (l == -1 && r == math.MinInt64) || (r == -1 && l == math.MinInt64) {
		return 0, true
	}
	product := l * r
	if product/r != l {
		return 0, true
	}
	return product, false
}
