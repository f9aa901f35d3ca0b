package widget

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	qwerrors "github.com/alexisbeaulieu97/quotewidget/pkg/errors"
)

func TestDefaultSettingsAreValid(t *testing.T) {
	t.Parallel()

	require.NoError(t, DefaultSettings().Validate())
}

func TestValidateRejectsOutOfRangeValues(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		field string
		edit  func(*Settings)
	}{
		{"font too small", "font_size", func(s *Settings) { s.FontSize = 9 }},
		{"font too large", "font_size", func(s *Settings) { s.FontSize = 41 }},
		{"weight", "font_weight", func(s *Settings) { s.FontWeight = "500" }},
		{"text color", "text_color", func(s *Settings) { s.TextColor = "red" }},
		{"background color", "background_color", func(s *Settings) { s.BackgroundColor = "#FFF" }},
		{"background type", "background_type", func(s *Settings) { s.BackgroundType = "gradient" }},
		{"opacity", "background_opacity", func(s *Settings) { s.BackgroundOpacity = 1.2 }},
		{"radius", "border_radius", func(s *Settings) { s.BorderRadius = 12 }},
		{"interval", "refresh_interval", func(s *Settings) { s.RefreshInterval = 45 }},
		{"family", "font_family", func(s *Settings) { s.FontFamily = "" }},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			s := DefaultSettings()
			tc.edit(&s)

			err := s.Validate()
			var validationErr *qwerrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			require.Equal(t, tc.field, validationErr.Field)
		})
	}
}

func TestValidateAcceptsDeviceSentinel(t *testing.T) {
	t.Parallel()

	s := DefaultSettings()
	s.TextColor = "device"
	s.BackgroundColor = "device"
	s.BackgroundOpacity = 0
	require.NoError(t, s.Validate())
}

func TestUnmarshalYAMLMigratesLegacyBoldFlag(t *testing.T) {
	t.Parallel()

	var bold Settings
	require.NoError(t, yaml.Unmarshal([]byte("font_family: serif\nis_bold: true\ntext_color: \"#FF112233\"\n"), &bold))
	require.Equal(t, WeightBold, bold.FontWeight)
	require.Equal(t, "serif", bold.FontFamily)
	require.Equal(t, "#112233", bold.TextColor)
	require.Equal(t, 1.0, bold.BackgroundOpacity)

	var regular Settings
	require.NoError(t, yaml.Unmarshal([]byte("is_bold: false\n"), &regular))
	require.Equal(t, WeightMedium, regular.FontWeight)

	var explicit Settings
	require.NoError(t, yaml.Unmarshal([]byte("is_bold: true\nfont_weight: \"900\"\n"), &explicit))
	require.Equal(t, WeightExtraBold, explicit.FontWeight)
}

func TestYAMLRoundTripKeepsSentinels(t *testing.T) {
	t.Parallel()

	s := DefaultSettings()
	s.TextColor = "device"
	s.BackgroundColor = "#0052cc"

	data, err := yaml.Marshal(s)
	require.NoError(t, err)

	var decoded Settings
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	require.Equal(t, "device", decoded.TextColor)
	require.Equal(t, "#0052CC", decoded.BackgroundColor)
}
