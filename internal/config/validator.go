package config

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	tiperrors "github.com/alexisbeaulieu97/tiptime/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			return strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		})

		_ = v.RegisterValidation("log_level", func(fl validator.FieldLevel) bool {
			_, err := zerolog.ParseLevel(strings.ToLower(fl.Field().String()))
			return err == nil
		})

		validateInst = v
	})

	return validateInst
}

// ValidateConfig performs schema validation on the configuration.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return tiperrors.NewValidationError("config", "configuration is nil", nil)
	}

	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := strings.ToLower(ve.Namespace())
		return tiperrors.NewValidationError(field, describe(ve), err)
	}

	return tiperrors.NewValidationError("config", err.Error(), err)
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "bcp47_language_tag":
		return "must be a BCP 47 language tag such as en-US"
	case "iso4217":
		return "must be an uppercase ISO 4217 currency code such as USD"
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "log_level":
		return "must be one of trace, debug, info, warn, error, fatal, panic, disabled"
	case "required":
		return "is required"
	default:
		return "failed validation for tag '" + fe.Tag() + "'"
	}
}
