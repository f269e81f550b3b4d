// SPDX-License-Identifier: Apache-2.0

package eval

import (
	"github.com/policycore/engine/ast"
	"github.com/policycore/engine/value"
)

func (in *Interpreter) evalExtensionCall(n *ast.ExtensionCallExpr, depth int) (PartialValue, error) {
	args := make([]PartialValue, 0, len(n.Args))
	anyResidual := false
	for _, a := range n.Args {
		v, err := in.eval(a, depth+1)
		if err != nil {
			return PartialValue{}, err
		}
		args = append(args, v)
		anyResidual = anyResidual || v.IsResidual()
	}
	if anyResidual {
		exprs := make([]ast.Expr, 0, len(args))
		for _, a := range args {
			exprs = append(exprs, exprOf(a))
		}
		return residual(ast.NewExtensionCallExpr(n.Name, exprs, n.Position())), nil
	}

	vals := make([]value.Value, 0, len(args))
	for _, a := range args {
		vals = append(vals, a.Value)
	}
	result, err := in.registry.Call(n.Name, vals)
	if err != nil {
		return PartialValue{}, err
	}
	return concrete(result), nil
}
