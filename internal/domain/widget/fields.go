package widget

import (
	"fmt"
	"strconv"
	"strings"
)

// Field names one editable setting. Names match the stored YAML keys.
type Field string

const (
	FieldFontFamily        Field = "font_family"
	FieldFontSize          Field = "font_size"
	FieldTextColor         Field = "text_color"
	FieldFontWeight        Field = "font_weight"
	FieldBackgroundColor   Field = "background_color"
	FieldBackgroundType    Field = "background_type"
	FieldBackgroundOpacity Field = "background_opacity"
	FieldBorderRadius      Field = "border_radius"
	FieldRefreshInterval   Field = "refresh_interval"
	FieldAutoTheme         Field = "auto_theme"
)

// Fields lists every editable field in display order.
func Fields() []Field {
	return []Field{
		FieldFontFamily,
		FieldFontSize,
		FieldTextColor,
		FieldFontWeight,
		FieldBackgroundColor,
		FieldBackgroundType,
		FieldBackgroundOpacity,
		FieldBorderRadius,
		FieldRefreshInterval,
		FieldAutoTheme,
	}
}

// ParseField resolves a field name, accepting dashes in place of underscores.
func ParseField(name string) (Field, error) {
	normalized := Field(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_"))
	for _, f := range Fields() {
		if f == normalized {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown setting %q", name)
}

// With returns a copy of s with field replaced by value. Only the Go type of
// value is checked; ranges and closed sets are the caller's concern.
func (s Settings) With(field Field, value any) (Settings, error) {
	switch field {
	case FieldFontFamily:
		v, ok := value.(string)
		if !ok {
			return s, typeError(field, "string", value)
		}
		s.FontFamily = v
	case FieldFontSize:
		v, ok := asInt(value)
		if !ok {
			return s, typeError(field, "integer", value)
		}
		s.FontSize = v
	case FieldTextColor:
		v, ok := value.(string)
		if !ok {
			return s, typeError(field, "string", value)
		}
		s.TextColor = v
	case FieldFontWeight:
		v, ok := value.(string)
		if !ok {
			return s, typeError(field, "string", value)
		}
		s.FontWeight = v
	case FieldBackgroundColor:
		v, ok := value.(string)
		if !ok {
			return s, typeError(field, "string", value)
		}
		s.BackgroundColor = v
	case FieldBackgroundType:
		v, ok := value.(string)
		if !ok {
			return s, typeError(field, "string", value)
		}
		s.BackgroundType = v
	case FieldBackgroundOpacity:
		v, ok := asFloat(value)
		if !ok {
			return s, typeError(field, "number", value)
		}
		s.BackgroundOpacity = v
	case FieldBorderRadius:
		v, ok := asInt(value)
		if !ok {
			return s, typeError(field, "integer", value)
		}
		s.BorderRadius = v
	case FieldRefreshInterval:
		v, ok := asInt(value)
		if !ok {
			return s, typeError(field, "integer", value)
		}
		s.RefreshInterval = v
	case FieldAutoTheme:
		v, ok := value.(bool)
		if !ok {
			return s, typeError(field, "boolean", value)
		}
		s.AutoTheme = v
	default:
		return s, fmt.Errorf("unknown setting %q", field)
	}
	return s, nil
}

// Get returns the current value of field.
func (s Settings) Get(field Field) (any, error) {
	switch field {
	case FieldFontFamily:
		return s.FontFamily, nil
	case FieldFontSize:
		return s.FontSize, nil
	case FieldTextColor:
		return s.TextColor, nil
	case FieldFontWeight:
		return s.FontWeight, nil
	case FieldBackgroundColor:
		return s.BackgroundColor, nil
	case FieldBackgroundType:
		return s.BackgroundType, nil
	case FieldBackgroundOpacity:
		return s.BackgroundOpacity, nil
	case FieldBorderRadius:
		return s.BorderRadius, nil
	case FieldRefreshInterval:
		return s.RefreshInterval, nil
	case FieldAutoTheme:
		return s.AutoTheme, nil
	default:
		return nil, fmt.Errorf("unknown setting %q", field)
	}
}

// ParseValue converts command-line text into the Go type field expects.
// Colors are normalised to "#RRGGBB"; opacity also accepts a percentage
// such as "35%".
func ParseValue(field Field, raw string) (any, error) {
	text := strings.TrimSpace(raw)
	switch field {
	case FieldFontSize, FieldBorderRadius, FieldRefreshInterval:
		v, err := strconv.Atoi(text)
		if err != nil {
			return nil, fmt.Errorf("%s: %q is not an integer", field, raw)
		}
		return v, nil
	case FieldBackgroundOpacity:
		if pct, ok := strings.CutSuffix(text, "%"); ok {
			v, err := strconv.ParseFloat(pct, 64)
			if err != nil {
				return nil, fmt.Errorf("%s: %q is not a percentage", field, raw)
			}
			return v / 100, nil
		}
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, fmt.Errorf("%s: %q is not a number", field, raw)
		}
		return v, nil
	case FieldAutoTheme:
		v, err := strconv.ParseBool(text)
		if err != nil {
			return nil, fmt.Errorf("%s: %q is not a boolean", field, raw)
		}
		return v, nil
	case FieldTextColor, FieldBackgroundColor:
		return normalizeColor(text), nil
	case FieldFontFamily, FieldFontWeight, FieldBackgroundType:
		return text, nil
	default:
		return nil, fmt.Errorf("unknown setting %q", field)
	}
}

func asInt(value any) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		if v != float64(int(v)) {
			return 0, false
		}
		return int(v), true
	default:
		return 0, false
	}
}

func asFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	default:
		return 0, false
	}
}

func typeError(field Field, want string, value any) error {
	return fmt.Errorf("%s expects a %s, got %T", field, want, value)
}
