package http

import (
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if name := fld.Tag.Get("form"); name != "" {
			return name
		}
		return fld.Name
	})

	validate.RegisterValidation("printable", validatePrintable)
}

func validatePrintable(fl validator.FieldLevel) bool {
	return strings.IndexFunc(fl.Field().String(), func(r rune) bool {
		return !unicode.IsPrint(r)
	}) < 0
}

// planQuery is the raw query string of a plan request, checked for shape only.
// Semantic checks (date parsing, catalog lookup) happen in the planner.
type planQuery struct {
	StartDate string `form:"start_date" validate:"omitempty,max=64,printable"`
	EndDate   string `form:"end_date" validate:"omitempty,max=64,printable"`
	StartBook string `form:"start_book" validate:"omitempty,max=64,printable"`
	EndBook   string `form:"end_book" validate:"omitempty,max=64,printable"`
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func ValidateStruct(s interface{}) []ValidationError {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var errors []ValidationError
	for _, err := range err.(validator.ValidationErrors) {
		field := err.Field()

		var message string
		switch err.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", field)
		case "max":
			message = fmt.Sprintf("%s must be at most %s characters", field, err.Param())
		case "printable":
			message = fmt.Sprintf("%s contains unprintable characters", field)
		default:
			message = fmt.Sprintf("%s is invalid", field)
		}

		errors = append(errors, ValidationError{
			Field:   field,
			Message: message,
		})
	}

	return errors
}
