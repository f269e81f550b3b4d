// SPDX-License-Identifier: Apache-2.0

package policy

import (
	"github.com/google/uuid"
	"github.com/policycore/engine/ast"
	"github.com/policycore/engine/entity"
	"github.com/policycore/engine/eval"
	"github.com/policycore/engine/extension"
	"github.com/policycore/engine/value"
	"github.com/policycore/engine/xerr"
)

// Effect is a policy's top-level verdict when it is Satisfied.
type Effect int

const (
	Permit Effect = iota
	Forbid
)

// Policy is one fully linked policy: a fixed id, effect, scope, and
// condition expression with no remaining template slots.
type Policy struct {
	ID        string
	Effect    Effect
	Scope     Scope
	Condition ast.Expr
}

// NewPolicy builds a Policy with an auto-generated id (a random UUID
// string), for policies constructed without an explicit id.
func NewPolicy(effect Effect, scope Scope, condition ast.Expr) Policy {
	return Policy{ID: uuid.NewString(), Effect: effect, Scope: scope, Condition: condition}
}

// Outcome is the result of evaluating one policy against one request.
type Outcome int

const (
	Satisfied Outcome = iota
	NotSatisfied
	Errored
)

// Result pairs an Outcome with the evaluation error, if any.
type Result struct {
	Outcome Outcome
	Err     error
}

// Evaluate runs the policy evaluator: scope check first (silent
// NotSatisfied on mismatch, never an error), then the condition
// expression (a non-boolean result or an evaluator error both become
// PolicyError via Errored).
func Evaluate(p Policy, req eval.Request, entities *entity.Entities, registry *extension.Registry, opts ...eval.Option) Result {
	principal := resolveUID(req.Principal)
	action := resolveUID(req.Action)
	resource := resolveUID(req.Resource)

	if !p.Scope.satisfied(principal, action, resource, entities) {
		return Result{Outcome: NotSatisfied}
	}

	v, err := eval.Interpret(p.Condition, req, entities, registry, opts...)
	if err != nil {
		return Result{Outcome: Errored, Err: err}
	}
	b, ok := v.(bool)
	if !ok {
		return Result{Outcome: Errored, Err: xerr.TypeErrorSingle(value.BoolType, value.TypeOf(v))}
	}
	if b {
		return Result{Outcome: Satisfied}
	}
	return Result{Outcome: NotSatisfied}
}

func resolveUID(field *value.EntityUID) value.EntityUID {
	if field != nil {
		return *field
	}
	return value.Unspecified
}

func (s Scope) satisfied(principal, action, resource value.EntityUID, entities *entity.Entities) bool {
	return constraintSatisfied(s.Principal, principal, entities) &&
		constraintSatisfied(s.Action, action, entities) &&
		constraintSatisfied(s.Resource, resource, entities)
}

func constraintSatisfied(c Constraint, actual value.EntityUID, entities *entity.Entities) bool {
	switch c.Kind {
	case Any:
		return true
	case Eq:
		return actual == c.UID
	case In:
		for _, u := range c.UIDs {
			if entities.In(actual, u) {
				return true
			}
		}
		return false
	case Is:
		return actual.Type == c.EntityType
	case IsIn:
		return actual.Type == c.EntityType && entities.In(actual, c.UID)
	default:
		return false
	}
}
