package widget

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/quotewidget/internal/color"
	qwerrors "github.com/alexisbeaulieu97/quotewidget/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
			if name == "" || name == "-" {
				return field.Name
			}
			return name
		})

		_ = v.RegisterValidation("widget_color", func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			return value == color.DeviceSentinel || color.IsHex(value)
		})

		validateInst = v
	})

	return validateInst
}

// Validate checks every field against its range or closed set and reports
// the first violation as a ValidationError.
func (s Settings) Validate() error {
	if err := validatorInstance().Struct(s); err != nil {
		return convertValidationError(err)
	}
	return nil
}

func convertValidationError(err error) error {
	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		fe := ves[0]
		return qwerrors.NewValidationError(fe.Field(), describe(fe), err)
	}
	return qwerrors.NewValidationError("settings", err.Error(), err)
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s, got %v", fe.Param(), fe.Value())
	case "max":
		return fmt.Sprintf("must be at most %s, got %v", fe.Param(), fe.Value())
	case "oneof":
		return fmt.Sprintf("must be one of [%s], got %v", fe.Param(), fe.Value())
	case "widget_color":
		return fmt.Sprintf("must be a #RRGGBB color or %q, got %q", color.DeviceSentinel, fe.Value())
	default:
		return fmt.Sprintf("failed validation for tag '%s'", fe.Tag())
	}
}
