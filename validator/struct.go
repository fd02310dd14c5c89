// Package validator configures go-playground/validator for request payloads
// and turns its errors into field messages keyed by JSON name.
package validator

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/jarredbaird/express-jobly/structs"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.SetTagName("binding")
	if err := Register(validate); err != nil {
		panic(err)
	}
}

// valuer is implemented by wrapper types that expose their value for
// validation.
type valuer interface {
	ValidationValue() any
}

var equityPattern = regexp.MustCompile(`^\d*\.?\d+$`)

// isEquity accepts decimal strings between 0 and 1 inclusive.
func isEquity(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return false
	}
	s := field.String()
	if !equityPattern.MatchString(s) {
		return false
	}
	f, err := strconv.ParseFloat(s, 64)
	return err == nil && f >= 0 && f <= 1
}

func unwrap(field reflect.Value) any {
	if v, ok := field.Interface().(valuer); ok {
		return v.ValidationValue()
	}
	return nil
}

// jsonName reports fields by their JSON member name.
func jsonName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}

// Register installs the custom rules and the nullable payload types on v.
func Register(v *validator.Validate) error {
	if err := v.RegisterValidation("equity", isEquity); err != nil {
		return err
	}
	v.RegisterTagNameFunc(jsonName)
	v.RegisterCustomTypeFunc(unwrap,
		structs.Nullable[string]{},
		structs.Nullable[int]{},
	)
	return nil
}

// RegisterGin installs the rules on gin's binding validator and makes JSON
// binding reject unknown members.
func RegisterGin() error {
	binding.EnableDecoderDisallowUnknownFields = true
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("validator: unexpected gin binding engine")
	}
	return Register(v)
}

var errorMessages = map[string]string{
	"required": "The field '%s' is required.",
	"min":      "The field '%s' must be at least %s.",
	"max":      "The field '%s' must be at most %s.",
	"url":      "The field '%s' must be a valid URL.",
	"equity":   "The field '%s' must be a decimal between 0 and 1.",
}

// parseMessage constructs a friendly error message for a failed rule.
func parseMessage(name string, e validator.FieldError) string {
	if msg, ok := errorMessages[e.Tag()]; ok {
		if strings.Count(msg, "%s") == 2 {
			return fmt.Sprintf(msg, name, e.Param())
		}
		return fmt.Sprintf(msg, name)
	}
	return fmt.Sprintf("Field '%s' is invalid: %s", name, e.Tag())
}

// Messages maps JSON field names to friendly messages. It returns nil when
// err is not a validation error.
func Messages(err error) map[string]string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return nil
	}
	out := make(map[string]string, len(validationErrs))
	for _, e := range validationErrs {
		out[e.Field()] = parseMessage(e.Field(), e)
	}
	return out
}

// ValidateStruct validates a struct and returns a map of JSON field names to
// friendly error messages.
func ValidateStruct(s any) map[string]string {
	return Messages(validate.Struct(s))
}
