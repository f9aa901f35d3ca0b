package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/quotewidget/internal/color"
	"github.com/alexisbeaulieu97/quotewidget/internal/preview"
	qwerrors "github.com/alexisbeaulieu97/quotewidget/pkg/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, "widgets.yaml", filepath.Base(cfg.StorePath))
	assert.Equal(t, color.FallbackBlack, cfg.Fallback())
}

func TestLoadOverridesDefaults(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
store_path = "/tmp/qw/widgets.yaml"
log_level = "DEBUG"
theme = "dark"
hsl_fallback = "vivid"
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/qw/widgets.yaml", cfg.StorePath)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, ThemeDark, cfg.Theme)
	assert.Equal(t, color.FallbackVivid, cfg.Fallback())
	assert.Equal(t, preview.ThemeDark, cfg.ResolveTheme())
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(writeConfig(t, `theme = "light"`))
	require.NoError(t, err)
	assert.Equal(t, Default().StorePath, cfg.StorePath)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, ThemeLight, cfg.Theme)
}

func TestLoadMalformedReportsLine(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "theme = \"dark\"\nlog_level = \n")
	_, err := Load(path)

	var parseErr *qwerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, path, parseErr.Path)
	assert.Positive(t, parseErr.Line)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		field   string
	}{
		{name: "theme", content: `theme = "sepia"`, field: "theme"},
		{name: "fallback", content: `hsl_fallback = "grey"`, field: "hsl_fallback"},
		{name: "log level", content: `log_level = "loud"`, field: "log_level"},
		{name: "empty store", content: `store_path = ""`, field: "store_path"},
		{name: "unknown key", content: `colour = "red"`, field: "colour"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Load(writeConfig(t, tt.content))
			var validationErr *qwerrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.field, validationErr.Field)
		})
	}
}

func TestResolveTheme(t *testing.T) {
	t.Parallel()

	dark := func() bool { return true }
	light := func() bool { return false }

	assert.Equal(t, preview.ThemeDark, resolveTheme(ThemeAuto, dark))
	assert.Equal(t, preview.ThemeLight, resolveTheme(ThemeAuto, light))
	assert.Equal(t, preview.ThemeLight, resolveTheme(ThemeLight, dark))
	assert.Equal(t, preview.ThemeDark, resolveTheme(ThemeDark, light))
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "widgets.yaml"), ExpandHome("~/widgets.yaml"))
	assert.Equal(t, "/abs/path", ExpandHome("/abs/path"))
}
