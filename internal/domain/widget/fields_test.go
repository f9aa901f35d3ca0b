package widget

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWithReplacesExactlyOneField(t *testing.T) {
	t.Parallel()

	base := DefaultSettings()
	next, err := base.With(FieldFontSize, 22)
	require.NoError(t, err)
	require.Equal(t, 22, next.FontSize)
	require.Equal(t, 14, base.FontSize)

	next.FontSize = base.FontSize
	require.Equal(t, base, next)
}

func TestWithRejectsWrongTypes(t *testing.T) {
	t.Parallel()

	s := DefaultSettings()
	_, err := s.With(FieldFontSize, "large")
	require.Error(t, err)
	_, err = s.With(FieldFontSize, 12.5)
	require.Error(t, err)
	_, err = s.With(FieldAutoTheme, "yes")
	require.Error(t, err)
	_, err = s.With(Field("shadow"), 1)
	require.Error(t, err)

	next, err := s.With(FieldBackgroundOpacity, 1)
	require.NoError(t, err)
	require.Equal(t, 1.0, next.BackgroundOpacity)
}

func TestGetCoversEveryField(t *testing.T) {
	t.Parallel()

	s := DefaultSettings()
	for _, f := range Fields() {
		v, err := s.Get(f)
		require.NoError(t, err, f)
		round, err := s.With(f, v)
		require.NoError(t, err, f)
		require.Equal(t, s, round)
	}
}

func TestParseFieldAndValue(t *testing.T) {
	t.Parallel()

	f, err := ParseField("Background-Opacity")
	require.NoError(t, err)
	require.Equal(t, FieldBackgroundOpacity, f)

	_, err = ParseField("shadow")
	require.Error(t, err)

	cases := []struct {
		field Field
		raw   string
		want  any
	}{
		{FieldFontSize, "18", 18},
		{FieldBackgroundOpacity, "35%", 0.35},
		{FieldBackgroundOpacity, "0.5", 0.5},
		{FieldAutoTheme, "true", true},
		{FieldTextColor, "ff8800", "#FF8800"},
		{FieldTextColor, "device", "device"},
		{FieldFontWeight, "bold", "bold"},
	}
	for _, tc := range cases {
		got, err := ParseValue(tc.field, tc.raw)
		require.NoError(t, err, tc.raw)
		require.Equal(t, tc.want, got, tc.raw)
	}

	_, err = ParseValue(FieldFontSize, "big")
	require.Error(t, err)
	_, err = ParseValue(FieldAutoTheme, "maybe")
	require.Error(t, err)
}

func TestOptionLabelsAndCycle(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Md", BorderRadiusLabel(16))
	require.Equal(t, "12dp", BorderRadiusLabel(12))
	require.Equal(t, "ExtraBold", FontWeightLabel("900"))
	require.Equal(t, "1 hour", RefreshIntervalLabel(60))
	require.Equal(t, "35%", OpacityLabel(0.35))

	require.Equal(t, 30, Cycle(RefreshIntervals, 15, 1))
	require.Equal(t, 1440, Cycle(RefreshIntervals, 15, -1))
	require.Equal(t, WeightThin, Cycle(FontWeights, WeightExtraBold, 1))
}
