// SPDX-License-Identifier: Apache-2.0

package policy

import (
	"github.com/policycore/engine/ast"
	"github.com/policycore/engine/value"
	"github.com/policycore/engine/xerr"
)

// Template is an unlinked policy: its Scope may name `?principal`/
// `?resource` slots in place of a literal UID, and its Condition may
// contain ast.Slot nodes anywhere a UID literal would otherwise appear.
type Template struct {
	ID        string
	Effect    Effect
	Scope     Scope
	Condition ast.Expr
}

// Link substitutes principal/resource for every slot in t, producing a
// fully concrete Policy under newID. A nil principal/resource leaves
// the corresponding slot unfilled; if t actually references that slot,
// Link raises ErrUnlinkedSlotAtConstruction rather than deferring the
// failure to evaluation time.
func (t Template) Link(newID string, principal, resource *value.EntityUID) (Policy, error) {
	scope, err := linkScope(t.Scope, newID, principal, resource)
	if err != nil {
		return Policy{}, err
	}
	cond, err := linkExpr(t.Condition, newID, principal, resource)
	if err != nil {
		return Policy{}, err
	}
	return Policy{ID: newID, Effect: t.Effect, Scope: scope, Condition: cond}, nil
}

func linkScope(s Scope, policyID string, principal, resource *value.EntityUID) (Scope, error) {
	p, err := linkConstraint(s.Principal, policyID, "?principal", principal)
	if err != nil {
		return Scope{}, err
	}
	a, err := linkConstraint(s.Action, policyID, "", nil)
	if err != nil {
		return Scope{}, err
	}
	r, err := linkConstraint(s.Resource, policyID, "?resource", resource)
	if err != nil {
		return Scope{}, err
	}
	return Scope{Principal: p, Action: a, Resource: r}, nil
}

func linkConstraint(c Constraint, policyID, slotName string, filler *value.EntityUID) (Constraint, error) {
	if c.Slot == nil {
		return c, nil
	}
	if filler == nil {
		return Constraint{}, xerr.ErrUnlinkedSlotAtConstruction(policyID, slotName)
	}
	out := c
	out.Slot = nil
	switch c.Kind {
	case Eq:
		out.UID = *filler
	case In:
		out.UIDs = []value.EntityUID{*filler}
	case IsIn:
		out.UID = *filler
	}
	return out, nil
}

// linkExpr walks expr, replacing every ast.Slot leaf with a concrete
// EntityUIDLiteral built from principal/resource. Every other node
// kind is reconstructed with its children linked, preserving source
// ranges.
func linkExpr(expr ast.Expr, policyID string, principal, resource *value.EntityUID) (ast.Expr, error) {
	switch n := expr.(type) {
	case *ast.Slot:
		var filler *value.EntityUID
		name := n.ID.String()
		if n.ID == ast.SlotPrincipal {
			filler = principal
		} else {
			filler = resource
		}
		if filler == nil {
			return nil, xerr.ErrUnlinkedSlotAtConstruction(policyID, name)
		}
		return ast.NewEntityUIDLiteral(filler.Type, filler.ID, n.Position()), nil

	case *ast.BoolLiteral, *ast.LongLiteral, *ast.StringLiteral, *ast.EntityUIDLiteral,
		*ast.Variable, *ast.Unknown:
		return n, nil

	case *ast.IfExpr:
		cond, err := linkExpr(n.Cond, policyID, principal, resource)
		if err != nil {
			return nil, err
		}
		then, err := linkExpr(n.Then, policyID, principal, resource)
		if err != nil {
			return nil, err
		}
		els, err := linkExpr(n.Else, policyID, principal, resource)
		if err != nil {
			return nil, err
		}
		return ast.NewIfExpr(cond, then, els, n.Position()), nil

	case *ast.And:
		l, r, err := linkPair(n.Left, n.Right, policyID, principal, resource)
		if err != nil {
			return nil, err
		}
		return ast.NewAnd(l, r, n.Position()), nil

	case *ast.Or:
		l, r, err := linkPair(n.Left, n.Right, policyID, principal, resource)
		if err != nil {
			return nil, err
		}
		return ast.NewOr(l, r, n.Position()), nil

	case *ast.Not:
		op, err := linkExpr(n.Operand, policyID, principal, resource)
		if err != nil {
			return nil, err
		}
		return ast.NewNot(op, n.Position()), nil

	case *ast.Neg:
		op, err := linkExpr(n.Operand, policyID, principal, resource)
		if err != nil {
			return nil, err
		}
		return ast.NewNeg(op, n.Position()), nil

	case *ast.BinaryExpr:
		l, r, err := linkPair(n.Left, n.Right, policyID, principal, resource)
		if err != nil {
			return nil, err
		}
		return ast.NewBinaryExpr(n.Op, l, r, n.Position()), nil

	case *ast.InExpr:
		l, r, err := linkPair(n.Left, n.Right, policyID, principal, resource)
		if err != nil {
			return nil, err
		}
		return ast.NewInExpr(l, r, n.Position()), nil

	case *ast.HasExpr:
		op, err := linkExpr(n.Operand, policyID, principal, resource)
		if err != nil {
			return nil, err
		}
		return ast.NewHasExpr(op, n.Attr, n.Position()), nil

	case *ast.GetAttrExpr:
		op, err := linkExpr(n.Operand, policyID, principal, resource)
		if err != nil {
			return nil, err
		}
		return ast.NewGetAttrExpr(op, n.Attr, n.Position()), nil

	case *ast.IndexExpr:
		op, err := linkExpr(n.Operand, policyID, principal, resource)
		if err != nil {
			return nil, err
		}
		return ast.NewIndexExpr(op, n.Attr, n.Position()), nil

	case *ast.ContainsExpr:
		s, e, err := linkPair(n.Set, n.Elem, policyID, principal, resource)
		if err != nil {
			return nil, err
		}
		return ast.NewContainsExpr(s, e, n.Position()), nil

	case *ast.ContainsAllExpr:
		s, o, err := linkPair(n.Set, n.Other, policyID, principal, resource)
		if err != nil {
			return nil, err
		}
		return ast.NewContainsAllExpr(s, o, n.Position()), nil

	case *ast.ContainsAnyExpr:
		s, o, err := linkPair(n.Set, n.Other, policyID, principal, resource)
		if err != nil {
			return nil, err
		}
		return ast.NewContainsAnyExpr(s, o, n.Position()), nil

	case *ast.LikeExpr:
		op, err := linkExpr(n.Operand, policyID, principal, resource)
		if err != nil {
			return nil, err
		}
		return ast.NewLikeExpr(op, n.Pattern, n.Position()), nil

	case *ast.SetLiteral:
		elems := make([]ast.Expr, 0, len(n.Elements))
		for _, e := range n.Elements {
			le, err := linkExpr(e, policyID, principal, resource)
			if err != nil {
				return nil, err
			}
			elems = append(elems, le)
		}
		return ast.NewSetLiteral(elems, n.Position()), nil

	case *ast.RecordLiteral:
		entries := make([]ast.RecordEntry, 0, len(n.Entries))
		for _, entry := range n.Entries {
			lv, err := linkExpr(entry.Value, policyID, principal, resource)
			if err != nil {
				return nil, err
			}
			entries = append(entries, ast.RecordEntry{Key: entry.Key, Value: lv})
		}
		return ast.NewRecordLiteral(entries, n.Position()), nil

	case *ast.ExtensionCallExpr:
		args := make([]ast.Expr, 0, len(n.Args))
		for _, a := range n.Args {
			la, err := linkExpr(a, policyID, principal, resource)
			if err != nil {
				return nil, err
			}
			args = append(args, la)
		}
		return ast.NewExtensionCallExpr(n.Name, args, n.Position()), nil

	default:
		return n, nil
	}
}

func linkPair(a, b ast.Expr, policyID string, principal, resource *value.EntityUID) (ast.Expr, ast.Expr, error) {
	la, err := linkExpr(a, policyID, principal, resource)
	if err != nil {
		return nil, nil, err
	}
	lb, err := linkExpr(b, policyID, principal, resource)
	if err != nil {
		return nil, nil, err
	}
	return la, lb, nil
}
