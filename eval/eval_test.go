// SPDX-License-Identifier: Apache-2.0

package eval_test

import (
	"testing"

	"github.com/policycore/engine/ast"
	"github.com/policycore/engine/entity"
	"github.com/policycore/engine/eval"
	"github.com/policycore/engine/extension"
	"github.com/policycore/engine/tokens"
	"github.com/policycore/engine/value"
	"github.com/stretchr/testify/require"
)

var r = tokens.Range{}

func baseRequest() eval.Request {
	return eval.Request{Context: value.EmptyRecord()}
}

func TestArithmeticAndOverflow(t *testing.T) {
	reg := extension.Default()
	es := entity.Empty()

	add := ast.NewBinaryExpr(ast.OpAdd, ast.NewLongLiteral(1, r), ast.NewLongLiteral(2, r), r)
	v, err := eval.Interpret(add, baseRequest(), es, reg)
	require.NoError(t, err)
	require.Equal(t, int64(3), v)

	overflow := ast.NewBinaryExpr(ast.OpAdd,
		ast.NewLongLiteral(9223372036854775807, r),
		ast.NewLongLiteral(1, r), r)
	_, err = eval.Interpret(overflow, baseRequest(), es, reg)
	require.Error(t, err)
}

func TestNegationOverflowAtMinInt64(t *testing.T) {
	reg := extension.Default()
	es := entity.Empty()
	neg := ast.NewNeg(ast.NewLongLiteral(-9223372036854775808, r), r)
	_, err := eval.Interpret(neg, baseRequest(), es, reg)
	require.Error(t, err)
}

func TestShortCircuitAndSuppressesRightError(t *testing.T) {
	reg := extension.Default()
	es := entity.Empty()

	// false && (1 < "x") -- right side would type-error if evaluated
	badRight := ast.NewBinaryExpr(ast.OpLt, ast.NewLongLiteral(1, r), ast.NewStringLiteral("x", r), r)
	expr := ast.NewAnd(ast.NewBoolLiteral(false, r), badRight, r)

	v, err := eval.Interpret(expr, baseRequest(), es, reg)
	require.NoError(t, err)
	require.Equal(t, false, v)
}

func TestShortCircuitOrSuppressesRightError(t *testing.T) {
	reg := extension.Default()
	es := entity.Empty()

	badRight := ast.NewBinaryExpr(ast.OpLt, ast.NewLongLiteral(1, r), ast.NewStringLiteral("x", r), r)
	expr := ast.NewOr(ast.NewBoolLiteral(true, r), badRight, r)

	v, err := eval.Interpret(expr, baseRequest(), es, reg)
	require.NoError(t, err)
	require.Equal(t, true, v)
}

func TestIfSuppressesUntakenBranchError(t *testing.T) {
	reg := extension.Default()
	es := entity.Empty()

	badElse := ast.NewBinaryExpr(ast.OpLt, ast.NewLongLiteral(1, r), ast.NewStringLiteral("x", r), r)
	expr := ast.NewIfExpr(ast.NewBoolLiteral(true, r), ast.NewLongLiteral(1, r), badElse, r)

	v, err := eval.Interpret(expr, baseRequest(), es, reg)
	require.NoError(t, err)
	require.Equal(t, int64(1), v)
}

func TestEqualityIsTotalAcrossTypes(t *testing.T) {
	reg := extension.Default()
	es := entity.Empty()

	expr := ast.NewBinaryExpr(ast.OpEq, ast.NewLongLiteral(1, r), ast.NewStringLiteral("1", r), r)
	v, err := eval.Interpret(expr, baseRequest(), es, reg)
	require.NoError(t, err)
	require.Equal(t, false, v)
}

func TestHasOnMissingEntityIsFalse(t *testing.T) {
	reg := extension.Default()
	es := entity.Empty()
	req := eval.Request{Context: value.EmptyRecord()}

	has := ast.NewHasExpr(ast.NewEntityUIDLiteral("User", "ghost", r), "email", r)
	v, err := eval.Interpret(has, req, es, reg)
	require.NoError(t, err)
	require.Equal(t, false, v)
}

func TestUnspecifiedPrincipalAttrAccessErrors(t *testing.T) {
	reg := extension.Default()
	es := entity.Empty()
	req := eval.Request{Context: value.EmptyRecord()} // principal omitted -> Unspecified

	get := ast.NewGetAttrExpr(ast.NewVariable(ast.VarPrincipal, r), "email", r)
	_, err := eval.Interpret(get, req, es, reg)
	require.Error(t, err)
}

func TestInWithAncestorSet(t *testing.T) {
	reg := extension.Default()
	alice := value.EntityUID{Type: "User", ID: "alice"}
	admins := value.EntityUID{Type: "Group", ID: "admins"}
	es, err := entity.New(entity.Entity{
		UID:       alice,
		Attrs:     value.EmptyRecord(),
		Ancestors: map[value.EntityUID]struct{}{admins: {}},
	})
	require.NoError(t, err)

	set := ast.NewSetLiteral([]ast.Expr{ast.NewEntityUIDLiteral("Group", "admins", r)}, r)
	inExpr := ast.NewInExpr(ast.NewEntityUIDLiteral("User", "alice", r), set, r)

	v, err := eval.Interpret(inExpr, baseRequest(), es, reg)
	require.NoError(t, err)
	require.Equal(t, true, v)
}

func TestLikePattern(t *testing.T) {
	reg := extension.Default()
	es := entity.Empty()

	like := ast.NewLikeExpr(ast.NewStringLiteral("photo.jpg", r), "*.jpg", r)
	v, err := eval.Interpret(like, baseRequest(), es, reg)
	require.NoError(t, err)
	require.Equal(t, true, v)

	noMatch := ast.NewLikeExpr(ast.NewStringLiteral("photo.png", r), "*.jpg", r)
	v, err = eval.Interpret(noMatch, baseRequest(), es, reg)
	require.NoError(t, err)
	require.Equal(t, false, v)
}

func TestRecursionLimit(t *testing.T) {
	reg := extension.Default()
	es := entity.Empty()

	expr := ast.Expr(ast.NewLongLiteral(1, r))
	for i := 0; i < 10; i++ {
		expr = ast.NewNeg(expr, r)
	}
	_, err := eval.Interpret(expr, baseRequest(), es, reg, eval.WithRecursionLimit(3))
	require.Error(t, err)
}

func TestUnknownRaisesNonValueInTotalMode(t *testing.T) {
	reg := extension.Default()
	es := entity.Empty()
	_, err := eval.Interpret(ast.NewUnknown("x", r), baseRequest(), es, reg)
	require.Error(t, err)
}

func TestUnknownBecomesResidualInPartialMode(t *testing.T) {
	reg := extension.Default()
	es := entity.Empty()
	pv, err := eval.PartialInterpret(ast.NewUnknown("x", r), baseRequest(), es, reg, eval.WithPartialMode())
	require.NoError(t, err)
	require.True(t, pv.IsResidual())
}

func TestMissingPrincipalIsResidualInPartialMode(t *testing.T) {
	reg := extension.Default()
	es := entity.Empty()
	req := eval.Request{Context: value.EmptyRecord()}

	pv, err := eval.PartialInterpret(ast.NewVariable(ast.VarPrincipal, r), req, es, reg, eval.WithPartialMode())
	require.NoError(t, err)
	require.True(t, pv.IsResidual())
}

func TestSetDedupAtConstruction(t *testing.T) {
	reg := extension.Default()
	es := entity.Empty()

	set := ast.NewSetLiteral([]ast.Expr{
		ast.NewLongLiteral(1, r), ast.NewLongLiteral(2, r), ast.NewLongLiteral(1, r),
	}, r)
	v, err := eval.Interpret(set, baseRequest(), es, reg)
	require.NoError(t, err)
	s, ok := v.(*value.Set)
	require.True(t, ok)
	require.Equal(t, 2, s.Len())
}

func TestErrorCarriesRaisingNodesPosition(t *testing.T) {
	reg := extension.Default()
	es := entity.Empty()

	at := tokens.Range{File: "policy.cedar", From: tokens.Pos{Line: 3, Column: 5}, To: tokens.Pos{Line: 3, Column: 22}}
	expr := ast.NewBinaryExpr(ast.OpLt, ast.NewStringLiteral("nope", at), ast.NewLongLiteral(1, at), at)

	_, err := eval.Interpret(expr, baseRequest(), es, reg)
	require.Error(t, err)
	require.Contains(t, err.Error(), at.String())
}

func TestRecursionAtExactBoundSucceeds(t *testing.T) {
	reg := extension.Default()
	es := entity.Empty()

	expr := ast.Expr(ast.NewBoolLiteral(true, r))
	for i := 0; i < 10; i++ {
		expr = ast.NewNot(expr, r)
	}

	v, err := eval.Interpret(expr, baseRequest(), es, reg, eval.WithRecursionLimit(10))
	require.NoError(t, err)
	require.Equal(t, true, v)

	_, err = eval.Interpret(expr, baseRequest(), es, reg, eval.WithRecursionLimit(9))
	require.Error(t, err)
}

func TestLikeEscapedStarMatchesLiteralStar(t *testing.T) {
	reg := extension.Default()
	es := entity.Empty()

	cases := []struct {
		s, pattern string
		want       bool
	}{
		{"a*b", `a\*b`, true},
		{"aXb", `a\*b`, false},
		{"file*", `*\*`, true},
		{"file*x", `*\*`, false},
		{"anything", "*", true},
		{"", "", true},
		{"x", "", false},
	}
	for _, tc := range cases {
		expr := ast.NewLikeExpr(ast.NewStringLiteral(tc.s, r), tc.pattern, r)
		v, err := eval.Interpret(expr, baseRequest(), es, reg)
		require.NoError(t, err)
		require.Equal(t, tc.want, v, "%q like %q", tc.s, tc.pattern)
	}
}

func TestPartialAndKeepsBooleanRequirementOnResidualRight(t *testing.T) {
	reg := extension.Default()
	es := entity.Empty()

	expr := ast.NewAnd(ast.NewBoolLiteral(true, r), ast.NewUnknown("x", r), r)
	pv, err := eval.PartialInterpret(expr, baseRequest(), es, reg)
	require.NoError(t, err)
	require.True(t, pv.IsResidual())

	_, ok := pv.Residual.(*ast.And)
	require.True(t, ok)
}

func TestPartialIfLeavesBothBranchesSymbolic(t *testing.T) {
	reg := extension.Default()
	es := entity.Empty()

	// the untaken-branch error stays suppressed even when the test is
	// residual and both branches survive symbolically
	overflow := ast.NewBinaryExpr(ast.OpAdd,
		ast.NewLongLiteral(9223372036854775807, r), ast.NewLongLiteral(1, r), r)
	expr := ast.NewIfExpr(ast.NewUnknown("c", r), ast.NewLongLiteral(1, r), overflow, r)

	pv, err := eval.PartialInterpret(expr, baseRequest(), es, reg)
	require.NoError(t, err)
	require.True(t, pv.IsResidual())

	ifexpr, ok := pv.Residual.(*ast.IfExpr)
	require.True(t, ok)
	require.IsType(t, &ast.Unknown{}, ifexpr.Cond)
	require.IsType(t, &ast.BinaryExpr{}, ifexpr.Else)
}
