package widget

import (
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/quotewidget/internal/color"
)

// Font weight values accepted by the widget host.
const (
	WeightThin      = "200"
	WeightMedium    = "400"
	WeightBold      = "bold"
	WeightExtraBold = "900"
)

// Background types.
const (
	BackgroundSolid       = "solid"
	BackgroundTransparent = "transparent"
	BackgroundTranslucent = "translucent"
)

// Font size bounds.
const (
	MinFontSize = 10
	MaxFontSize = 40
)

// Settings is the configuration record of one widget (or of the defaults).
// Colors are "#RRGGBB" strings or color.DeviceSentinel.
type Settings struct {
	FontFamily        string  `yaml:"font_family" validate:"required,max=64"`
	FontSize          int     `yaml:"font_size" validate:"min=10,max=40"`
	TextColor         string  `yaml:"text_color" validate:"widget_color"`
	FontWeight        string  `yaml:"font_weight" validate:"oneof=200 400 bold 900"`
	BackgroundColor   string  `yaml:"background_color" validate:"widget_color"`
	BackgroundType    string  `yaml:"background_type" validate:"oneof=solid transparent translucent"`
	BackgroundOpacity float64 `yaml:"background_opacity" validate:"min=0,max=1"`
	BorderRadius      int     `yaml:"border_radius" validate:"oneof=0 8 16 24 32 40 48 56"`
	RefreshInterval   int     `yaml:"refresh_interval" validate:"oneof=15 30 60 120 360 720 1440"`
	AutoTheme         bool    `yaml:"auto_theme"`
}

// DefaultSettings returns the built-in configuration used before the bridge
// has provided one and whenever a default load fails.
func DefaultSettings() Settings {
	return Settings{
		FontFamily:        "sans-serif",
		FontSize:          14,
		TextColor:         "#000000",
		FontWeight:        WeightMedium,
		BackgroundColor:   "#FFFFFF",
		BackgroundType:    BackgroundSolid,
		BackgroundOpacity: 1,
		BorderRadius:      16,
		RefreshInterval:   60,
		AutoTheme:         false,
	}
}

// Normalize canonicalises color fields ("#AARRGGBB" and lowercase hex become
// "#RRGGBB"). Values that are neither hex nor the device sentinel are left
// untouched for validation to report.
func (s Settings) Normalize() Settings {
	s.TextColor = normalizeColor(s.TextColor)
	s.BackgroundColor = normalizeColor(s.BackgroundColor)
	return s
}

// UnmarshalYAML decodes a settings record, migrating the legacy boolean
// is_bold field onto font_weight when no font_weight is present.
func (s *Settings) UnmarshalYAML(value *yaml.Node) error {
	type plain Settings
	decoded := plain(DefaultSettings())
	if err := value.Decode(&decoded); err != nil {
		return err
	}

	var legacy struct {
		FontWeight *string `yaml:"font_weight"`
		IsBold     *bool   `yaml:"is_bold"`
	}
	if err := value.Decode(&legacy); err != nil {
		return err
	}
	if legacy.FontWeight == nil && legacy.IsBold != nil {
		if *legacy.IsBold {
			decoded.FontWeight = WeightBold
		} else {
			decoded.FontWeight = WeightMedium
		}
	}

	*s = Settings(decoded).Normalize()
	return nil
}

func normalizeColor(value string) string {
	if value == color.DeviceSentinel {
		return value
	}
	if hex, ok := color.NormalizeHex(value); ok {
		return hex
	}
	return value
}
