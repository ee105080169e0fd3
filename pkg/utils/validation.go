package utils

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// RegisterPattern adds a string validation tag that passes when the field
// matches re.
func RegisterPattern(tag string, re *regexp.Regexp) error {
	return validate.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		return re.MatchString(fl.Field().String())
	})
}

// ValidateStruct validates a struct based on its validation tags. Failures
// are returned as validator.ValidationErrors.
func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// FailedTags maps each failing field (by its JSON name when tagged) to the
// validation tag that rejected it.
func FailedTags(err error) map[string]string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil
	}

	failed := make(map[string]string, len(validationErrors))
	for _, e := range validationErrors {
		failed[e.Field()] = e.Tag()
	}
	return failed
}

// FormatValidationError formats validation errors into a readable message
func FormatValidationError(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err.Error()
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, formatFieldError(e))
	}
	return strings.Join(messages, "; ")
}

// formatFieldError formats a single field validation error
func formatFieldError(e validator.FieldError) string {
	field := e.Field()

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	default:
		return fmt.Sprintf("%s failed %s", field, e.Tag())
	}
}

func init() {
	// Report fields by their JSON names so messages match the wire format.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
}
