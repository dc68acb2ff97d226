package validation

import (
	"errors"
	"reflect"
	"strings"

	"tripbook/internal/shared/apperrors"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their JSON names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Struct validates s and turns failures into a ValidationError. Missing
// fields take precedence over malformed ones in the reported list.
func Struct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return apperrors.ValidationError{Msg: "invalid request", Err: err}
	}

	var missing, invalid []string
	for _, fe := range fieldErrs {
		if fe.Tag() == "required" {
			missing = append(missing, fe.Field())
		} else {
			invalid = append(invalid, fe.Field())
		}
	}

	if len(missing) > 0 {
		return apperrors.ValidationError{Fields: missing, Msg: "missing required fields", Err: err}
	}
	return apperrors.ValidationError{Fields: invalid, Msg: "invalid fields", Err: err}
}
