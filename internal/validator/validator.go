package validator

import (
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/movierental/movie-rental-service/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	ErrRequired      = "is required"
	ErrMinLength     = "must be at least %s characters long"
	ErrMaxLength     = "must be at most %s characters long"
	ErrGreaterThan   = "must be greater than %s"
	ErrEmail         = "must be a valid email address"
	ErrPaymentMethod = "must be a supported payment method (mbway, paypal)"
)

func NewValidator() *validator.Validate {
	validator := validator.New(validator.WithRequiredStructEnabled())

	validator.RegisterCustomTypeFunc(decimalToFloat, decimal.Decimal{})
	validator.RegisterValidation("payment_method", validatePaymentMethod)

	return validator
}

// decimalToFloat lets the numeric comparison tags (gt, gte, ...) apply to
// decimal.Decimal fields.
func decimalToFloat(field reflect.Value) interface{} {
	if value, ok := field.Interface().(decimal.Decimal); ok {
		f, _ := value.Float64()
		return f
	}

	return nil
}

func validatePaymentMethod(fl validator.FieldLevel) bool {
	return domain.PaymentMethod(fl.Field().String()).IsValid()
}

// ValidationMessage converts validator errors into readable messages
func ValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return ErrRequired
	case "email":
		return ErrEmail
	case "min":
		return fmt.Sprintf(ErrMinLength, err.Param())
	case "max":
		return fmt.Sprintf(ErrMaxLength, err.Param())
	case "gt":
		return fmt.Sprintf(ErrGreaterThan, err.Param())
	case "payment_method":
		return ErrPaymentMethod
	default:
		return "is invalid"
	}
}
