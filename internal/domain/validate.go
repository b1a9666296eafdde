package domain

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// ValidationError is a client-side rejection raised before any network
// call is issued. It never causes an optimistic rollback because nothing
// was applied.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// IsValidationError reports whether err is a client-side validation failure.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Teach the validator to see decimal amounts as floats so numeric
	// tags (gte, lte) apply to them.
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
	return v
}

// ValidateBill checks a bill before submission.
func ValidateBill(b Bill) error {
	return firstViolation(validate.Struct(b))
}

// ValidatePaycheck checks a paycheck before submission.
func ValidatePaycheck(p Paycheck) error {
	return firstViolation(validate.Struct(p))
}

// firstViolation converts the validator's error list into a single
// ValidationError for the banner. One message at a time is enough for a
// two-field form.
func firstViolation(err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	fe := verrs[0]
	reason := "failed rule " + fe.Tag()
	switch fe.Tag() {
	case "required":
		reason = "must not be empty"
	case "gte":
		reason = "must not be negative"
	case "min", "max":
		reason = "must be between 1 and 31"
	case "oneof":
		reason = "must be player1 or player2"
	}
	return &ValidationError{Field: fe.Field(), Reason: reason}
}
