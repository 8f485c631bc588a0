package api

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rpupo63/portfolio-api-backend/errs"
)

// validationError translates a validator failure into the 422 API shape,
// naming the first offending field.
func validationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return errs.NewValidationError("", err.Error())
	}

	fe := fieldErrs[0]
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return errs.NewValidationError(field, field+" is required")
	case "email":
		return errs.NewValidationError(field, field+" must be a valid email address")
	case "url":
		return errs.NewValidationError(field, field+" must be a valid URL")
	case "max":
		return errs.NewValidationError(field, field+" exceeds maximum length "+fe.Param())
	case "min":
		return errs.NewValidationError(field, field+" is below minimum length "+fe.Param())
	default:
		return errs.NewValidationError(field, field+" failed "+fe.Tag()+" validation")
	}
}
