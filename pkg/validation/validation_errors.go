package validation

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// FieldErrors converts validator.ValidationErrors into a per-field error bag
// keyed by the snake_case field name, matching the shape clients already parse.
func FieldErrors(err error) map[string][]string {
	bag := make(map[string][]string)

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		bag["_"] = []string{err.Error()}
		return bag
	}

	for _, e := range validationErrors {
		field := snakeCase(e.Field())
		bag[field] = append(bag[field], message(field, e))
	}
	return bag
}

func message(field string, e validator.FieldError) string {
	label := strings.ReplaceAll(field, "_", " ")
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", label)
	case "email":
		return fmt.Sprintf("The %s must be a valid email address.", label)
	case "min":
		return fmt.Sprintf("The %s must be at least %s.", label, e.Param())
	case "max":
		return fmt.Sprintf("The %s may not be greater than %s.", label, e.Param())
	case "oneof":
		return fmt.Sprintf("The selected %s is invalid.", label)
	case "gte", "gtefield":
		return fmt.Sprintf("The %s must be greater than or equal to %s.", label, strings.ReplaceAll(snakeCase(e.Param()), "_", " "))
	case "url":
		return fmt.Sprintf("The %s format is invalid.", label)
	default:
		return fmt.Sprintf("The %s field is invalid.", label)
	}
}

func snakeCase(s string) string {
	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
