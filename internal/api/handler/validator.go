package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/fittrack/training-api/internal/core/domain"
)

// FieldErrors is the raw outcome of a failed validation: one record per
// failed rule, in declaration order. Handlers wrap it into a localized
// AppError via bindAndValidate.
type FieldErrors []domain.FieldError

func (fe FieldErrors) Error() string {
	msgs := make([]string, 0, len(fe))
	for _, f := range fe {
		msgs = append(msgs, f.Field+": "+f.Message)
	}
	return strings.Join(msgs, "; ")
}

// echoValidator wraps go-playground/validator so Echo can call
// c.Validate(req). It never short-circuits: every failing rule yields a
// field-error record.
type echoValidator struct {
	v *validator.Validate
}

// NewValidator returns an echoValidator ready to be assigned to
// echo.Echo.Validator.
func NewValidator() *echoValidator {
	return &echoValidator{v: validator.New()}
}

// Validate satisfies the echo.Validator interface.
func (ev *echoValidator) Validate(i any) error {
	err := ev.v.Struct(i)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}

	t := reflect.TypeOf(i)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	details := make(FieldErrors, 0, len(ve))
	for _, fe := range ve {
		name, location := fieldBinding(t, fe.StructField())
		details = append(details, domain.FieldError{
			Field:    name,
			Message:  fieldMessage(name, fe),
			Location: location,
		})
	}
	return details
}

// fieldBinding resolves the wire-level field name and request location
// from the struct field's binding tags.
func fieldBinding(t reflect.Type, structField string) (string, domain.FieldLocation) {
	field, ok := t.FieldByName(structField)
	if !ok {
		return strings.ToLower(structField), domain.LocationBody
	}

	if name := tagName(field, "param"); name != "" {
		return name, domain.LocationParam
	}
	if name := tagName(field, "query"); name != "" {
		return name, domain.LocationQuery
	}
	if name := tagName(field, "json"); name != "" {
		return name, domain.LocationBody
	}
	return strings.ToLower(structField), domain.LocationBody
}

func tagName(field reflect.StructField, tag string) string {
	value := field.Tag.Get(tag)
	if value == "" || value == "-" {
		return ""
	}
	if idx := strings.Index(value, ","); idx >= 0 {
		value = value[:idx]
	}
	return value
}

// fieldMessage converts a single failed rule into a human-readable message.
func fieldMessage(field string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
