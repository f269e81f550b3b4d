// SPDX-License-Identifier: Apache-2.0

package value_test

import (
	"testing"

	"github.com/policycore/engine/value"
	"github.com/stretchr/testify/require"
)

func TestEqualityIsTotalAcrossTypes(t *testing.T) {
	require.True(t, value.Equal(int64(1), int64(1)))
	require.False(t, value.Equal(int64(1), "1"))
	require.False(t, value.Equal(true, int64(1)))
	require.True(t, value.Equal("a", "a"))
}

func TestSetDedupPreservesFirstOccurrenceOrder(t *testing.T) {
	s := value.NewSet(int64(1), int64(2), int64(1), int64(3), int64(2))
	require.Equal(t, []value.Value{int64(1), int64(2), int64(3)}, s.Elements())
}

func TestSetEquality(t *testing.T) {
	a := value.NewSet(int64(1), int64(2))
	b := value.NewSet(int64(2), int64(1))
	require.True(t, value.Equal(a, b))
}

func TestRecordRejectsDuplicateKeys(t *testing.T) {
	_, err := value.NewRecord([]string{"a", "a"}, []value.Value{int64(1), int64(2)})
	require.Error(t, err)
}

func TestCompareOnlyDefinedForLong(t *testing.T) {
	_, err := value.Compare("a", "b")
	require.Error(t, err)

	c, err := value.Compare(int64(1), int64(2))
	require.NoError(t, err)
	require.Equal(t, -1, c)
}

func TestContainsAllAndContainsAny(t *testing.T) {
	s := value.NewSet(int64(1), int64(2), int64(3))
	require.True(t, s.ContainsAll(value.NewSet(int64(1), int64(2))))
	require.False(t, s.ContainsAll(value.NewSet(int64(4))))
	require.True(t, s.ContainsAny(value.NewSet(int64(4), int64(3))))
	require.False(t, s.ContainsAny(value.NewSet(int64(9))))
}

func TestDisplayRoundTripsScalars(t *testing.T) {
	require.Equal(t, "42", value.Display(int64(42)))
	require.Equal(t, `"hi"`, value.Display("hi"))
	require.Equal(t, "true", value.Display(true))
	require.Equal(t, `User::"alice"`, value.Display(value.EntityUID{Type: "User", ID: "alice"}))
}

func TestUnspecifiedEntity(t *testing.T) {
	require.True(t, value.Unspecified.IsUnspecified())
	require.False(t, value.EntityUID{Type: "User", ID: "alice"}.IsUnspecified())
}
