package dto

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// jsonTagParts is the number of parts when splitting a JSON tag by comma.
const jsonTagParts = 2

// ErrValidation wraps every failure reported by Validate.
var ErrValidation = errors.New("validation failed")

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// Validator returns the singleton validator instance.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()

		// Report fields by their wire names.
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			tag := fld.Tag.Get("json")
			if tag == "" {
				tag = fld.Tag.Get("form")
			}

			name := strings.SplitN(tag, ",", jsonTagParts)[0]
			if name == "-" {
				return ""
			}

			return name
		})

		_ = validate.RegisterValidation("notblank", validateNotBlank)
		_ = validate.RegisterValidation("trimmedlen", validateTrimmedLen)
	})

	return validate
}

// Validatable is implemented by requests with rules that span fields.
type Validatable interface {
	Validate() error
}

// Validate checks struct tags, then the Validatable hook if implemented.
func Validate(v any) error {
	if err := Validator().Struct(v); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}

	if vv, ok := v.(Validatable); ok {
		if err := vv.Validate(); err != nil {
			return fmt.Errorf("%w: %w", ErrValidation, err)
		}
	}

	return nil
}

// BindJSON binds and validates the request body. On failure it writes a 400
// response, aborts the chain and returns false.
func BindJSON(c *gin.Context, v any) bool {
	if err := c.ShouldBindJSON(v); err != nil {
		AbortWithCode(c, ErrorCodeBadRequest, "malformed request body")
		return false
	}

	return validated(c, v)
}

// BindQuery binds and validates query parameters like BindJSON.
func BindQuery(c *gin.Context, v any) bool {
	if err := c.ShouldBindQuery(v); err != nil {
		AbortWithCode(c, ErrorCodeBadRequest, "malformed query parameters")
		return false
	}

	return validated(c, v)
}

func validated(c *gin.Context, v any) bool {
	err := Validate(v)
	if err == nil {
		return true
	}

	fields := ValidationErrors(err)
	if len(fields) == 0 {
		AbortWithCode(c, ErrorCodeValidation, strings.TrimPrefix(err.Error(), ErrValidation.Error()+": "))
		return false
	}

	AbortWithValidationErrors(c, fields)

	return false
}

// ValidationErrors extracts field-level error messages from a validator error.
func ValidationErrors(err error) map[string]string {
	fieldErrors := make(map[string]string)

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		for _, fieldErr := range validationErrs {
			fieldErrors[fieldErr.Field()] = validationMessage(fieldErr)
		}
	}

	return fieldErrors
}

// validationMessages maps validation tags to message templates.
var validationMessages = map[string]string{
	"required":   "this field is required",
	"notblank":   "must not be blank",
	"trimmedlen": "must be {param} characters after trimming",
	"gte":        "must be greater than or equal to {param}",
	"lte":        "must be less than or equal to {param}",
	"oneof":      "must be one of: {param}",
	"dive":       "contains an invalid entry",
}

func validationMessage(fe validator.FieldError) string {
	tag := fe.Tag()
	param := fe.Param()

	if tag == "min" || tag == "max" {
		return minMaxMessage(tag, param, fe.Kind())
	}

	if msg, ok := validationMessages[tag]; ok {
		return strings.ReplaceAll(msg, "{param}", strings.ReplaceAll(param, "-", " to "))
	}

	return "failed validation: " + tag
}

func minMaxMessage(tag, param string, kind reflect.Kind) string {
	suffix := ""

	switch kind {
	case reflect.String:
		suffix = " characters"
	case reflect.Slice:
		suffix = " items"
	}

	if tag == "min" {
		return "must be at least " + param + suffix
	}

	return "must be at most " + param + suffix
}

// validateNotBlank rejects strings that are empty after trimming whitespace.
func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// validateTrimmedLen checks a "min-max" rune length after trimming whitespace,
// so padding cannot satisfy a minimum length.
func validateTrimmedLen(fl validator.FieldLevel) bool {
	lo, hi, ok := strings.Cut(fl.Param(), "-")
	if !ok {
		return false
	}

	var minLen, maxLen int
	if _, err := fmt.Sscanf(lo+" "+hi, "%d %d", &minLen, &maxLen); err != nil {
		return false
	}

	n := len([]rune(strings.TrimSpace(fl.Field().String())))

	return n >= minLen && n <= maxLen
}
