// SPDX-License-Identifier: Apache-2.0

package ast

import "github.com/policycore/engine/tokens"

// VarKind discriminates the four request variables.
type VarKind int

const (
	VarPrincipal VarKind = iota
	VarAction
	VarResource
	VarContext
)

func (k VarKind) String() string {
	switch k {
	case VarPrincipal:
		return "principal"
	case VarAction:
		return "action"
	case VarResource:
		return "resource"
	case VarContext:
		return "context"
	default:
		return "?var"
	}
}

// Variable references one of principal/action/resource/context.
type Variable struct {
	baseNode
	Kind VarKind
}

func NewVariable(k VarKind, r tokens.Range) *Variable {
	return &Variable{baseNode: baseNode{Range: r}, Kind: k}
}

func (v *Variable) String() string { return v.Kind.String() }
func (v *Variable) exprNode()      {}
