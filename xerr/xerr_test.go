// SPDX-License-Identifier: Apache-2.0

package xerr_test

import (
	"errors"
	"testing"

	"github.com/policycore/engine/value"
	"github.com/policycore/engine/xerr"
	"github.com/stretchr/testify/require"
)

func TestTypeErrorMessageSingular(t *testing.T) {
	err := xerr.TypeErrorSingle(value.LongType, value.StringType)
	require.Contains(t, err.Error(), "expected long")
	require.Contains(t, err.Error(), "got string")
}

func TestTypeErrorMessagePlural(t *testing.T) {
	err := xerr.TypeError([]value.Type{value.LongType, value.StringType}, value.BoolType)
	require.Contains(t, err.Error(), "expected one of [long, string]")
}

func TestNonValueCarriesAdvice(t *testing.T) {
	err := xerr.NonValue("unknown(\"x\")")
	require.Contains(t, err.Error(), "consider using the partial evaluation APIs")
}

func TestOverflowVariantsAreDistinct(t *testing.T) {
	bin := xerr.OverflowBinaryOp("add", int64(1), int64(2))
	mul := xerr.OverflowMultiplication(int64(1), 2)
	un := xerr.OverflowUnaryOp("negate", int64(1))
	require.NotEqual(t, bin.Code(), mul.Code())
	require.NotEqual(t, bin.Code(), un.Code())
}

func TestStructuralErrorsAreDistinctFromEvaluationErrors(t *testing.T) {
	err := xerr.ErrDuplicatePolicyID("p1")
	require.Error(t, err)
	require.Contains(t, err.Error(), "p1")

	var evalErr *xerr.EvaluationError
	require.False(t, errors.As(err, &evalErr))
}
