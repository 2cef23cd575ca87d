package dto

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

type FieldError struct {
	ObjectName string `json:"objectName"`
	Field      string `json:"field"`
	Message    string `json:"message"`
}

type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s.%s: %s", f.ObjectName, f.Field, f.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

var (
	fullValidator  = newValidator("validate")
	patchValidator = newValidator("patch")
)

func newValidator(tagName string) *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.SetTagName(tagName)
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate applies the create/update rules to a DTO pointer.
func Validate(d Entity) error {
	return translate(fullValidator.Struct(d))
}

// ValidatePatch applies only the rules that hold for a partial body.
func ValidatePatch(d Entity) error {
	return translate(patchValidator.Struct(d))
}

func translate(err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := &ValidationError{Fields: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, FieldError{
			ObjectName: objectName(fe.StructNamespace()),
			Field:      fe.Field(),
			Message:    message(fe),
		})
	}
	return out
}

func objectName(namespace string) string {
	name := strings.SplitN(namespace, ".", 2)[0]
	if name == "" {
		return name
	}
	runes := []rune(name)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "must not be null"
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "lte":
		return "must be less than or equal to " + fe.Param()
	case "oneof":
		return "must be one of [" + strings.ReplaceAll(fe.Param(), " ", ", ") + "]"
	default:
		return "failed on " + fe.Tag()
	}
}
