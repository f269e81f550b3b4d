// SPDX-License-Identifier: Apache-2.0

package authorizer_test

import (
	"testing"

	"github.com/policycore/engine/ast"
	"github.com/policycore/engine/authorizer"
	"github.com/policycore/engine/entity"
	"github.com/policycore/engine/eval"
	"github.com/policycore/engine/extension"
	"github.com/policycore/engine/policy"
	"github.com/policycore/engine/restricted"
	"github.com/policycore/engine/value"
	"github.com/stretchr/testify/require"
)

// End-to-end scenarios, from empty-set default deny through hierarchy
// and extension-gated conditions.

func request(principal, action, resource value.EntityUID, ctx *value.Record) eval.Request {
	if ctx == nil {
		ctx = value.EmptyRecord()
	}
	return eval.Request{Principal: &principal, Action: &action, Resource: &resource, Context: ctx}
}

func TestScenarioEmptyPolicySetDeniesByDefault(t *testing.T) {
	ps, err := policy.NewPolicySet()
	require.NoError(t, err)

	req := request(uid("User", "alice"), uid("Action", "view"), uid("Photo", "door"), nil)
	res := authorizer.New().IsAuthorized(req, ps, entity.Empty())
	require.Equal(t, authorizer.Deny, res.Decision)
	require.Empty(t, res.Reason)
	require.Empty(t, res.Errors)
}

func TestScenarioSimplePermit(t *testing.T) {
	alice := uid("User", "alice")
	scope := policy.Scope{
		Principal: policy.ConstraintEq(alice),
		Action:    policy.ConstraintAny(),
		Resource:  policy.ConstraintAny(),
	}
	p := policy.Policy{ID: "ID1", Effect: policy.Permit, Scope: scope, Condition: ast.NewBoolLiteral(true, r)}
	ps, err := policy.NewPolicySet(p)
	require.NoError(t, err)

	req := request(alice, uid("Action", "view"), uid("Photo", "door"), nil)
	res := authorizer.New().IsAuthorized(req, ps, entity.Empty())
	require.Equal(t, authorizer.Allow, res.Decision)
	require.Equal(t, []string{"ID1"}, res.Reason)
}

func TestScenarioForbidOverridesPermit(t *testing.T) {
	alice := uid("User", "alice")
	door := uid("Photo", "door")

	permit := policy.Policy{ID: "ID0", Effect: policy.Permit, Scope: anyScope(), Condition: ast.NewBoolLiteral(true, r)}
	forbid := policy.Policy{
		ID:     "ID1",
		Effect: policy.Forbid,
		Scope: policy.Scope{
			Principal: policy.ConstraintEq(alice),
			Action:    policy.ConstraintAny(),
			Resource:  policy.ConstraintEq(door),
		},
		Condition: ast.NewBoolLiteral(true, r),
	}
	ps, err := policy.NewPolicySet(permit, forbid)
	require.NoError(t, err)

	req := request(alice, uid("Action", "view"), door, nil)
	res := authorizer.New().IsAuthorized(req, ps, entity.Empty())
	require.Equal(t, authorizer.Deny, res.Decision)
	require.Equal(t, []string{"ID1"}, res.Reason)
}

func TestScenarioAttributeAndHierarchy(t *testing.T) {
	alice := uid("User", "alice")
	door := uid("Photo", "door")
	house := uid("Folder", "house")

	es, err := entity.New(
		entity.Entity{UID: alice, Attrs: value.EmptyRecord()},
		entity.Entity{
			UID:       door,
			Attrs:     value.MustNewRecord([]string{"owner"}, []value.Value{alice}),
			Ancestors: map[value.EntityUID]struct{}{house: {}},
		},
		entity.Entity{UID: house, Attrs: value.EmptyRecord()},
	)
	require.NoError(t, err)

	// permit(principal, action, resource in Folder::"house")
	// when { resource.owner == principal };
	cond := ast.NewBinaryExpr(ast.OpEq,
		ast.NewGetAttrExpr(ast.NewVariable(ast.VarResource, r), "owner", r),
		ast.NewVariable(ast.VarPrincipal, r), r)
	p := policy.Policy{
		ID:     "owner-can-view",
		Effect: policy.Permit,
		Scope: policy.Scope{
			Principal: policy.ConstraintAny(),
			Action:    policy.ConstraintAny(),
			Resource:  policy.ConstraintIn(house),
		},
		Condition: cond,
	}
	ps, err := policy.NewPolicySet(p)
	require.NoError(t, err)

	req := request(alice, uid("Action", "view"), door, nil)
	res := authorizer.New().IsAuthorized(req, ps, es)
	require.Equal(t, authorizer.Allow, res.Decision)
	require.Equal(t, []string{"owner-can-view"}, res.Reason)
}

func TestScenarioContextExtensionCall(t *testing.T) {
	a := authorizer.New()

	// context attributes are restricted expressions: build them the way
	// the out-of-scope request parser would, through restricted.Evaluate.
	ctxExpr := ast.NewRecordLiteral([]ast.RecordEntry{
		{Key: "is_authenticated", Value: ast.NewBoolLiteral(true, r)},
		{Key: "source_ip", Value: ast.NewExtensionCallExpr("ip", []ast.Expr{
			ast.NewStringLiteral("222.222.222.222", r),
		}, r)},
	}, r)
	ctxVal, err := restricted.Evaluate(ctxExpr, extension.Default())
	require.NoError(t, err)
	ctx, ok := ctxVal.(*value.Record)
	require.True(t, ok)

	// context.is_authenticated &&
	// context.source_ip.isInRange(ip("222.222.222.0/24"))
	cond := ast.NewAnd(
		ast.NewGetAttrExpr(ast.NewVariable(ast.VarContext, r), "is_authenticated", r),
		ast.NewExtensionCallExpr("isInRange", []ast.Expr{
			ast.NewGetAttrExpr(ast.NewVariable(ast.VarContext, r), "source_ip", r),
			ast.NewExtensionCallExpr("ip", []ast.Expr{ast.NewStringLiteral("222.222.222.0/24", r)}, r),
		}, r),
		r)
	p := policy.Policy{ID: "on-prem-only", Effect: policy.Permit, Scope: anyScope(), Condition: cond}
	ps, err := policy.NewPolicySet(p)
	require.NoError(t, err)

	req := request(uid("User", "alice"), uid("Action", "view"), uid("Photo", "door"), ctx)
	res := a.IsAuthorized(req, ps, entity.Empty())
	require.Equal(t, authorizer.Allow, res.Decision)
	require.Equal(t, []string{"on-prem-only"}, res.Reason)
}

func TestScenarioShortCircuitMasksError(t *testing.T) {
	// when { false && (MAX + 1 == 0) }: the overflow on the right of &&
	// is never evaluated, so the policy is silently unsatisfied rather
	// than errored.
	overflow := ast.NewBinaryExpr(ast.OpAdd,
		ast.NewLongLiteral(9223372036854775807, r), ast.NewLongLiteral(1, r), r)
	cond := ast.NewAnd(
		ast.NewBoolLiteral(false, r),
		ast.NewBinaryExpr(ast.OpEq, overflow, ast.NewLongLiteral(0, r), r),
		r)
	p := policy.Policy{ID: "ID1", Effect: policy.Permit, Scope: anyScope(), Condition: cond}
	ps, err := policy.NewPolicySet(p)
	require.NoError(t, err)

	req := request(uid("User", "alice"), uid("Action", "view"), uid("Photo", "door"), nil)
	res := authorizer.New().IsAuthorized(req, ps, entity.Empty())
	require.Equal(t, authorizer.Deny, res.Decision)
	require.Empty(t, res.Reason)
	require.Empty(t, res.Errors)
}
