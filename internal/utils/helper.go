package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
)

var strictPolicy = bluemonday.StrictPolicy()

// SanitizeStrict strips any markup from free-text input before it is
// persisted or echoed back.
func SanitizeStrict(s string) string {
	return strings.TrimSpace(strictPolicy.Sanitize(s))
}

// NewValidator returns a validator that reports fields by their JSON names,
// so validation errors line up with the request body.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	return v
}

func DecodeJSONBody(r *http.Request, dest any) error {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return fmt.Errorf("failed to read request body: %w", err)
	}

	defer r.Body.Close()

	if len(body) == 0 {
		return errors.New("request body cannot be empty")
	}

	if err := json.Unmarshal(body, dest); err != nil {
		return fmt.Errorf("invalid JSON format: %w", err)
	}

	return nil
}

// ValidationFields converts validator failures into the field→messages
// mapping the response envelope exposes.
func ValidationFields(errs validator.ValidationErrors) map[string][]string {
	fields := make(map[string][]string, len(errs))

	for _, fe := range errs {
		field := fe.Field()
		label := FieldLabel(field)

		var message string

		switch fe.Tag() {
		case "required":
			message = fmt.Sprintf("The %s field is required.", label)
		case "email":
			message = fmt.Sprintf("The %s must be a valid email address.", label)
		case "min":
			message = fmt.Sprintf("The %s must be at least %s characters.", label, fe.Param())
		case "max":
			message = fmt.Sprintf("The %s must not be greater than %s characters.", label, fe.Param())
		case "datetime":
			message = fmt.Sprintf("The %s is not a valid date.", label)
		case "eqfield":
			message = fmt.Sprintf("The %s and %s must match.", label, FieldLabel(fe.Param()))
		default:
			message = fmt.Sprintf("The %s is invalid.", label)
		}

		fields[field] = append(fields[field], message)
	}

	return fields
}

// FieldLabel humanizes a JSON field name for use inside validation messages:
// "phoneNumber" and "phone_number" both become "phone number".
func FieldLabel(name string) string {
	var b strings.Builder

	for i, r := range name {
		switch {
		case r == '_' || r == '-':
			b.WriteByte(' ')
		case r >= 'A' && r <= 'Z':
			if i > 0 {
				b.WriteByte(' ')
			}

			b.WriteRune(r + ('a' - 'A'))
		default:
			b.WriteRune(r)
		}
	}

	return b.String()
}
