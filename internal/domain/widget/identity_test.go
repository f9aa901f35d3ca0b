package widget

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIdentity(t *testing.T) {
	t.Parallel()

	require.True(t, Standalone().IsStandalone())
	require.Equal(t, 0, Standalone().ID())
	require.Equal(t, "standalone", Standalone().String())

	bound := Bound(42)
	require.False(t, bound.IsStandalone())
	require.Equal(t, 42, bound.ID())
	require.Equal(t, "widget 42", bound.String())

	require.True(t, Bound(DefaultID).IsStandalone())
}

func TestOrderedIDs(t *testing.T) {
	t.Parallel()

	require.Empty(t, OrderedIDs(nil))
	require.Equal(t, []int{5, 9}, OrderedIDs(map[string]int{"1": 9, "0": 5}))
	require.Equal(t, []int{7, 3, 8, 4}, OrderedIDs(map[string]int{"10": 8, "2": 3, "b": 4, "a": 0, "1": 7, "x": 3}))
	require.Equal(t, map[string]int{"0": 5, "1": 9}, IDMap([]int{5, 9}))
}
