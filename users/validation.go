package users

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/user/aquarealty/apperror"
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report JSON field names rather than Go field names.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validationError turns validator output into a 406-mapped AppError.
func validationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return apperror.NewValidationError("Validation Error: "+err.Error(), err)
	}

	fe := fieldErrs[0]
	switch fe.Tag() {
	case "email":
		return apperror.NewValidationError("Validation Error: invalid email", err)
	case "required":
		return apperror.NewValidationError(fmt.Sprintf("Validation Error: %s is required", fe.Field()), err)
	default:
		return apperror.NewValidationError(fmt.Sprintf("Validation Error: invalid %s", fe.Field()), err)
	}
}
