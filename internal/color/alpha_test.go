package color

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWithAlpha(t *testing.T) {
	t.Parallel()

	c := WithAlpha("#FFFFFF", 0.5)
	require.Equal(t, RGBA{R: 255, G: 255, B: 255, A: 0.5}, c)
	require.Equal(t, "rgba(255, 255, 255, 0.5)", c.String())

	c = WithAlpha("0052cc", 0.7)
	require.Equal(t, RGBA{R: 0, G: 82, B: 204, A: 0.7}, c)
	require.Equal(t, "#0052cc", c.Hex())

	require.Equal(t, RGBA{A: 1}, WithAlpha("not-a-color", 1))
}

func TestTransparent(t *testing.T) {
	t.Parallel()

	require.True(t, Transparent.IsTransparent())
	require.Equal(t, "transparent", Transparent.String())
	require.False(t, WithAlpha("#000000", 0.05).IsTransparent())
}

func TestOverCompositesOntoBase(t *testing.T) {
	t.Parallel()

	require.Equal(t, "#ffffff", WithAlpha("#FFFFFF", 1).Over("#121212"))
	require.Equal(t, "#121212", WithAlpha("#FFFFFF", 0).Over("#121212"))
	require.Equal(t, "#4d4d4d", WithAlpha("#FFFFFF", 0.25).Over("#121212"))
}

func TestResolveDevice(t *testing.T) {
	t.Parallel()

	require.Equal(t, "#FFFFFF", ResolveDevice(RoleText, true))
	require.Equal(t, "#000000", ResolveDevice(RoleText, false))
	require.Equal(t, "#121212", ResolveDevice(RoleBackground, true))
	require.Equal(t, "#FFFFFF", ResolveDevice(RoleBackground, false))

	require.Equal(t, "#FFFFFF", Resolve(DeviceSentinel, RoleText, true))
	require.Equal(t, "#0052CC", Resolve("#0052CC", RoleText, true))
}
