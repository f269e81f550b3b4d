// SPDX-License-Identifier: Apache-2.0

// Package eval is the expression evaluator: total-mode Interpret and
// partial-mode PartialInterpret over the ast package's expression
// grammar, against one Request and one entity.Entities store.
package eval

import (
	"github.com/policycore/engine/ast"
	"github.com/policycore/engine/entity"
	"github.com/policycore/engine/extension"
	"github.com/policycore/engine/tokens"
	"github.com/policycore/engine/value"
	"github.com/policycore/engine/xerr"
)

// Mode selects how Unknown leaves and missing request fields are
// handled. ModeTotal raises NonValue on an Unknown leaf and resolves a
// missing principal/action/resource to value.Unspecified; ModePartial
// turns both into residuals.
type Mode int

const (
	ModeTotal Mode = iota
	ModePartial
)

// defaultRecursionLimit bounds hostile deeply-nested `if` chains while
// leaving ample headroom for any policy a person would actually write.
const defaultRecursionLimit = 200

// DefaultRecursionLimit returns the recursion bound a fresh Interpreter
// uses when WithRecursionLimit is not supplied. config exposes this so
// a config file that omits recursion_limit gets the same default.
func DefaultRecursionLimit() int { return defaultRecursionLimit }

// Interpreter evaluates expressions against a fixed Request, entity
// store, and extension registry. An Interpreter is immutable after
// construction and safe for concurrent use — eval depth is threaded
// through call arguments, never stored on the receiver.
type Interpreter struct {
	request  Request
	entities *entity.Entities
	registry *extension.Registry
	mode     Mode
	limit    int
}

// Option configures an Interpreter at construction.
type Option func(*Interpreter)

// WithPartialMode switches Unknown/missing-variable handling to
// residual-producing partial evaluation.
func WithPartialMode() Option { return func(in *Interpreter) { in.mode = ModePartial } }

// WithRecursionLimit overrides the default recursion bound.
func WithRecursionLimit(n int) Option {
	return func(in *Interpreter) { in.limit = n }
}

// New builds an Interpreter. entities may be entity.Empty() if the
// request never references entity attributes or hierarchy.
func New(req Request, entities *entity.Entities, registry *extension.Registry, opts ...Option) *Interpreter {
	in := &Interpreter{
		request:  req,
		entities: entities,
		registry: registry,
		mode:     ModeTotal,
		limit:    defaultRecursionLimit,
	}
	for _, opt := range opts {
		opt(in)
	}
	return in
}

// Interpret evaluates expr in total mode. An Unknown leaf, or any
// residual surviving to the top level, raises NonValue.
func Interpret(expr ast.Expr, req Request, entities *entity.Entities, registry *extension.Registry, opts ...Option) (value.Value, error) {
	in := New(req, entities, registry, append([]Option{}, opts...)...)
	in.mode = ModeTotal
	pv, err := in.eval(expr, 0)
	if err != nil {
		return nil, err
	}
	if pv.IsResidual() {
		return nil, xerr.NonValue(pv.Residual.String()).At(expr.Position())
	}
	return pv.Value, nil
}

// PartialInterpret evaluates expr in partial mode, returning a
// PartialValue that may still carry a residual expression.
func PartialInterpret(expr ast.Expr, req Request, entities *entity.Entities, registry *extension.Registry, opts ...Option) (PartialValue, error) {
	in := New(req, entities, registry, append([]Option{}, opts...)...)
	in.mode = ModePartial
	return in.eval(expr, 0)
}

// eval is the single recursive dispatcher every node kind goes through.
// It wraps evalNode so that whichever node actually raises an error —
// however deep the recursion — gets its source position stamped onto
// the error exactly once, at the innermost frame that saw it.
func (in *Interpreter) eval(expr ast.Expr, depth int) (PartialValue, error) {
	if depth > in.limit {
		return PartialValue{}, xerr.RecursionLimit().At(expr.Position())
	}

	pv, err := in.evalNode(expr, depth)
	if err != nil {
		if ee, ok := err.(*xerr.EvaluationError); ok {
			return PartialValue{}, ee.At(expr.Position())
		}
		return PartialValue{}, err
	}
	return pv, nil
}

// evalNode dispatches one AST node to its node-kind-specific handler.
func (in *Interpreter) evalNode(expr ast.Expr, depth int) (PartialValue, error) {
	switch n := expr.(type) {
	case *ast.BoolLiteral:
		return concrete(n.Value), nil
	case *ast.LongLiteral:
		return concrete(n.Value), nil
	case *ast.StringLiteral:
		return concrete(n.Value), nil
	case *ast.EntityUIDLiteral:
		return concrete(value.EntityUID{Type: n.Type, ID: n.ID}), nil

	case *ast.Variable:
		return in.evalVariable(n), nil

	case *ast.Slot:
		return PartialValue{}, xerr.UnlinkedSlot(n.ID.String())

	case *ast.Unknown:
		if in.mode == ModeTotal {
			return PartialValue{}, xerr.NonValue(n.String())
		}
		return residual(n), nil

	case *ast.IfExpr:
		return in.evalIf(n, depth)
	case *ast.And:
		return in.evalAnd(n, depth)
	case *ast.Or:
		return in.evalOr(n, depth)
	case *ast.Not:
		return in.evalNot(n, depth)
	case *ast.Neg:
		return in.evalNeg(n, depth)
	case *ast.BinaryExpr:
		return in.evalBinary(n, depth)

	case *ast.InExpr:
		return in.evalIn(n, depth)
	case *ast.HasExpr:
		return in.evalHas(n, depth)
	case *ast.GetAttrExpr:
		return in.evalGetAttr(n.Operand, n.Attr, depth)
	case *ast.IndexExpr:
		return in.evalGetAttr(n.Operand, n.Attr, depth)

	case *ast.ContainsExpr:
		return in.evalContains(n, depth)
	case *ast.ContainsAllExpr:
		return in.evalContainsAll(n, depth)
	case *ast.ContainsAnyExpr:
		return in.evalContainsAny(n, depth)
	case *ast.LikeExpr:
		return in.evalLike(n, depth)

	case *ast.SetLiteral:
		return in.evalSetLiteral(n, depth)
	case *ast.RecordLiteral:
		return in.evalRecordLiteral(n, depth)
	case *ast.ExtensionCallExpr:
		return in.evalExtensionCall(n, depth)

	default:
		return PartialValue{}, xerr.InvalidRestrictedExpression("unsupported expression node")
	}
}

func (in *Interpreter) evalVariable(n *ast.Variable) PartialValue {
	switch n.Kind {
	case ast.VarContext:
		return concrete(in.request.Context)
	case ast.VarPrincipal:
		return in.resolveEntityVar(in.request.Principal, "principal")
	case ast.VarAction:
		return in.resolveEntityVar(in.request.Action, "action")
	case ast.VarResource:
		return in.resolveEntityVar(in.request.Resource, "resource")
	default:
		return concrete(value.Unspecified)
	}
}

func (in *Interpreter) resolveEntityVar(field *value.EntityUID, name string) PartialValue {
	if field != nil {
		return concrete(*field)
	}
	if in.mode == ModeTotal {
		return concrete(value.Unspecified)
	}
	return residual(ast.NewUnknown(name, tokens.Range{}))
}
