package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("widgets.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "widgets.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "widgets.yaml:12")
}

func TestParseErrorWithoutLine(t *testing.T) {
	t.Parallel()

	err := NewParseError("config.toml", 0, stdErrors.New("bad"))
	require.Equal(t, "parse error: config.toml: bad", err.Error())
}

func TestValidationErrorCarriesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("font_size", "must be between 10 and 40", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "font_size", validationErr.Field)
	require.Contains(t, validationErr.Message, "between 10 and 40")
}

func TestBridgeErrorIncludesWidgetContext(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("store locked")
	err := NewBridgeError("updateWidgetSettings", 5, underlying)

	var bridgeErr *BridgeError
	require.ErrorAs(t, err, &bridgeErr)
	require.Equal(t, 5, bridgeErr.WidgetID)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "widget 5")

	defaults := NewBridgeError("updateDefaultSettings", 0, underlying)
	require.Equal(t, "bridge error [updateDefaultSettings]: store locked", defaults.Error())
}
