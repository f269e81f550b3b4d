// SPDX-License-Identifier: Apache-2.0

package restricted_test

import (
	"testing"

	"github.com/policycore/engine/ast"
	"github.com/policycore/engine/extension"
	"github.com/policycore/engine/restricted"
	"github.com/policycore/engine/tokens"
	"github.com/stretchr/testify/require"
)

func TestEvaluatesLiteralsSetsAndRecords(t *testing.T) {
	reg := extension.Default()

	set := ast.NewSetLiteral([]ast.Expr{
		ast.NewLongLiteral(1, tokens.Range{}),
		ast.NewLongLiteral(2, tokens.Range{}),
	}, tokens.Range{})
	v, err := restricted.Evaluate(set, reg)
	require.NoError(t, err)
	require.NotNil(t, v)

	rec := ast.NewRecordLiteral([]ast.RecordEntry{
		{Key: "a", Value: ast.NewBoolLiteral(true, tokens.Range{})},
	}, tokens.Range{})
	v, err = restricted.Evaluate(rec, reg)
	require.NoError(t, err)
	require.NotNil(t, v)
}

func TestEvaluatesExtensionCall(t *testing.T) {
	reg := extension.Default()
	call := ast.NewExtensionCallExpr("ip", []ast.Expr{
		ast.NewStringLiteral("127.0.0.1", tokens.Range{}),
	}, tokens.Range{})
	v, err := restricted.Evaluate(call, reg)
	require.NoError(t, err)
	require.NotNil(t, v)
}

func TestRejectsVariable(t *testing.T) {
	reg := extension.Default()
	_, err := restricted.Evaluate(ast.NewVariable(ast.VarPrincipal, tokens.Range{}), reg)
	require.Error(t, err)
}

func TestRejectsAttributeAccessAndIf(t *testing.T) {
	reg := extension.Default()
	p := ast.NewVariable(ast.VarPrincipal, tokens.Range{})

	_, err := restricted.Evaluate(ast.NewGetAttrExpr(p, "x", tokens.Range{}), reg)
	require.Error(t, err)

	_, err = restricted.Evaluate(ast.NewIfExpr(
		ast.NewBoolLiteral(true, tokens.Range{}),
		ast.NewLongLiteral(1, tokens.Range{}),
		ast.NewLongLiteral(2, tokens.Range{}),
		tokens.Range{},
	), reg)
	require.Error(t, err)
}

func TestRejectsComparisonAndConnective(t *testing.T) {
	reg := extension.Default()
	lit := ast.NewLongLiteral(1, tokens.Range{})

	_, err := restricted.Evaluate(ast.NewBinaryExpr(ast.OpLt, lit, lit, tokens.Range{}), reg)
	require.Error(t, err)

	_, err = restricted.Evaluate(ast.NewAnd(
		ast.NewBoolLiteral(true, tokens.Range{}),
		ast.NewBoolLiteral(false, tokens.Range{}),
		tokens.Range{},
	), reg)
	require.Error(t, err)
}
