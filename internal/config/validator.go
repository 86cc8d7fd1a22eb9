package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/language"

	"github.com/alexisbeaulieu97/datepick/internal/calkey"
	"github.com/alexisbeaulieu97/datepick/internal/picker"
	pickerrors "github.com/alexisbeaulieu97/datepick/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		// Report fields by their YAML names.
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name, _, _ := strings.Cut(field.Tag.Get("yaml"), ",")
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("selection_mode", func(fl validator.FieldLevel) bool {
			_, err := picker.ParseMode(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("locale_tag", func(fl validator.FieldLevel) bool {
			_, err := language.Parse(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("day_key", func(fl validator.FieldLevel) bool {
			_, _, _, err := calkey.ParseDay(fl.Field().String())
			return err == nil
		})

		validateInst = v
	})

	return validateInst
}

// ValidateConfig performs schema and cross-field validation on the configuration.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return pickerrors.NewValidationError("config", "configuration is nil", nil)
	}

	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	earliest, latest, err := cfg.Bounds()
	if err != nil {
		return pickerrors.NewValidationError("min", err.Error(), err)
	}
	if earliest != nil && latest != nil && earliest.Compare(*latest) > 0 {
		return pickerrors.NewValidationError("max", fmt.Sprintf("max %s is before min %s", cfg.Max, cfg.Min), nil)
	}

	if cfg.Value == "" {
		return nil
	}

	loc, err := cfg.Localizer()
	if err != nil {
		return pickerrors.NewValidationError("locale", err.Error(), err)
	}
	probe := picker.New(cfg.PickerMode(), loc, picker.WithBounds(earliest, latest))
	defer probe.Close()
	if err := probe.SetValue(cfg.Value); err != nil {
		return pickerrors.NewValidationError("value", fmt.Sprintf("not a %s value: %v", cfg.PickerMode(), err), err)
	}

	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return pickerrors.NewValidationError(field, msg, err)
	}

	return pickerrors.NewValidationError("config", err.Error(), err)
}

// yamlishFieldName drops the root struct from the namespace: "Config.log.level" -> "log.level".
func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}
