package validation

import (
	"fmt"
	"reflect"
	"strings"

	validatorv10 "github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/DioGolang/GoOrders/internal/domain/entity"
)

var validate = New()

// New returns a validator with the project's custom rules registered.
func New() *validatorv10.Validate {
	v := validatorv10.New(validatorv10.WithRequiredStructEnabled())

	// Violations are reported under the wire field name, not the Go one.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// dgt0 asserts a decimal amount is strictly positive.
	if err := v.RegisterValidation("dgt0", func(fl validatorv10.FieldLevel) bool {
		d, ok := fl.Field().Interface().(decimal.Decimal)
		return ok && d.IsPositive()
	}); err != nil {
		panic(err)
	}

	return v
}

// Struct runs the declared rules once and folds every field violation into a
// single *entity.ValidationError, or returns nil.
func Struct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	violations, ok := err.(validatorv10.ValidationErrors)
	if !ok {
		return &entity.ValidationError{Message: err.Error()}
	}

	msgs := make([]string, 0, len(violations))
	for _, fe := range violations {
		msgs = append(msgs, message(fe))
	}

	return &entity.ValidationError{Message: strings.Join(msgs, "; ")}
}

// message restates the failed constraint in the caller's vocabulary.
func message(fe validatorv10.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min", "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be between 1 and 100 characters", fe.Field())
		}
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "dgt0":
		return fmt.Sprintf("%s must be greater than 0", fe.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of %s", fe.Field(), strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
