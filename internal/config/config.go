// Package config loads the application configuration from TOML.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/muesli/termenv"

	"github.com/alexisbeaulieu97/quotewidget/internal/color"
	"github.com/alexisbeaulieu97/quotewidget/internal/preview"
	qwerrors "github.com/alexisbeaulieu97/quotewidget/pkg/errors"
)

// Theme settings.
const (
	ThemeAuto  = "auto"
	ThemeLight = "light"
	ThemeDark  = "dark"
)

const appDir = "quotewidget"

// Config is the application configuration.
type Config struct {
	StorePath   string `toml:"store_path" validate:"required"`
	LogLevel    string `toml:"log_level" validate:"oneof=debug info warn error"`
	Theme       string `toml:"theme" validate:"oneof=auto light dark"`
	HSLFallback string `toml:"hsl_fallback" validate:"oneof=black vivid"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		StorePath:   filepath.Join(Dir(), "widgets.yaml"),
		LogLevel:    "info",
		Theme:       ThemeAuto,
		HSLFallback: color.FallbackBlack.String(),
	}
}

// Dir returns ~/.config/quotewidget, or a relative directory when the home
// directory cannot be determined.
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "." + appDir
	}
	return filepath.Join(home, ".config", appDir)
}

// DefaultPath returns the default configuration file location.
func DefaultPath() string {
	return filepath.Join(Dir(), "config.toml")
}

// Load reads the configuration at path. A missing file yields Default; keys
// absent from the file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, qwerrors.NewParseError(path, 0, err)
	}

	meta, err := toml.Decode(string(data), &cfg)
	if err != nil {
		var perr toml.ParseError
		if errors.As(err, &perr) {
			return Config{}, qwerrors.NewParseError(path, perr.Position.Line, err)
		}
		return Config{}, qwerrors.NewParseError(path, 0, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		return Config{}, qwerrors.NewValidationError(keys[0], "unknown configuration key", nil)
	}

	cfg.StorePath = ExpandHome(cfg.StorePath)
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			return strings.SplitN(field.Tag.Get("toml"), ",", 2)[0]
		})
		validateInst = v
	})
	return validateInst
}

// Validate checks every key against its allowed values.
func (c Config) Validate() error {
	err := validatorInstance().Struct(c)
	if err == nil {
		return nil
	}
	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		fe := ves[0]
		if fe.Tag() == "required" {
			return qwerrors.NewValidationError(fe.Field(), "is required", err)
		}
		return qwerrors.NewValidationError(fe.Field(), fmt.Sprintf("must be one of [%s], got %q", fe.Param(), fe.Value()), err)
	}
	return qwerrors.NewValidationError("config", err.Error(), err)
}

// Fallback returns the HSL policy for unparseable hex colors.
func (c Config) Fallback() color.FallbackPolicy {
	policy, err := color.ParseFallbackPolicy(c.HSLFallback)
	if err != nil {
		return color.FallbackBlack
	}
	return policy
}

// ResolveTheme maps the theme setting onto a preview theme, asking the
// terminal for its background color when set to auto.
func (c Config) ResolveTheme() preview.Theme {
	return resolveTheme(c.Theme, termenv.HasDarkBackground)
}

func resolveTheme(setting string, hasDark func() bool) preview.Theme {
	switch setting {
	case ThemeDark:
		return preview.ThemeDark
	case ThemeLight:
		return preview.ThemeLight
	default:
		if hasDark() {
			return preview.ThemeDark
		}
		return preview.ThemeLight
	}
}

// ExpandHome replaces a leading "~/" with the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
