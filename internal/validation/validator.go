// Package validation adapts go-playground/validator for echo and turns its
// errors into per-field messages.
package validation

import (
	"errors"
	"reflect"
	"strings"

	"user-accounts/internal/dto"

	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps go-playground/validator for Echo
// swagger:ignore
type CustomValidator struct {
	validator *validator.Validate
}

// New returns a validator that reports fields by their json name.
func New() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	return &CustomValidator{validator: v}
}

// Validate calls the underlying validator
func (cv *CustomValidator) Validate(i any) error {
	return cv.validator.Struct(i)
}

// messages per field and tag; a field without an entry for the failed tag
// falls back to its "*" message.
var messages = map[string]map[string]string{
	"name":     {"*": "Name is required"},
	"email":    {"*": "Valid email is required"},
	"password": {"required": "Password is required", "min": "Password must be at least 6 characters"},
	"role":     {"*": "Role must be either admin or staff"},
	"phone":    {"*": "Phone is too long"},
	"city":     {"*": "City is too long"},
	"country":  {"*": "Country is too long"},
}

// FieldErrors converts every failed field of err into a dto.FieldError.
// Errors that are not validator.ValidationErrors yield a single entry.
func FieldErrors(err error) []dto.FieldError {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return []dto.FieldError{{Field: "body", Message: err.Error()}}
	}
	out := make([]dto.FieldError, 0, len(ve))
	for _, fe := range ve {
		out = append(out, dto.FieldError{Field: fe.Field(), Message: message(fe)})
	}
	return out
}

func message(fe validator.FieldError) string {
	if byTag, ok := messages[fe.Field()]; ok {
		if m, ok := byTag[fe.Tag()]; ok {
			return m
		}
		if m, ok := byTag["*"]; ok {
			return m
		}
	}
	return fe.Field() + " failed validation (" + fe.Tag() + ")"
}
