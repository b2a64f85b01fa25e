// Package validator configures go-playground/validator for bizdesk. The same
// rules run on the client before a draft is submitted and in Gin's binding
// engine on the collaborator, so both sides read the `binding` struct tags.
package validator

import (
	stderrors "errors"
	"reflect"
	"strings"
	"sync"

	apperrors "bizdesk/internal/errors"
	"bizdesk/internal/models"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var (
	std     *validator.Validate
	stdOnce sync.Once
)

// Register registers the custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		configure(v)
	}
}

// Struct validates s against its `binding` tags. Failures are returned as a
// VALIDATION_FAILED AppError with one FieldError per failing field, named by
// the field's JSON key.
func Struct(s any) error {
	err := engine().Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !stderrors.As(err, &verrs) {
		return apperrors.Wrap(apperrors.ErrValidation, err)
	}
	return FromValidationErrors(verrs)
}

// FromValidationErrors converts validator output to an AppError.
func FromValidationErrors(verrs validator.ValidationErrors) *apperrors.AppError {
	fields := make([]apperrors.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fieldError(fe))
	}
	return apperrors.Validation(fields...)
}

func engine() *validator.Validate {
	stdOnce.Do(func() {
		std = validator.New(validator.WithRequiredStructEnabled())
		std.SetTagName("binding")
		configure(std)
	})
	return std
}

func configure(v *validator.Validate) {
	v.RegisterTagNameFunc(jsonName)
	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
	v.RegisterCustomTypeFunc(dateValue, models.Date{})
	_ = v.RegisterValidation("payment_method", validatePaymentMethod)
	_ = v.RegisterValidation("recurring_frequency", validateRecurringFrequency)
}

func jsonName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	switch name {
	case "-":
		return ""
	case "":
		return f.Name
	}
	return name
}

func decimalValue(field reflect.Value) any {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		f, _ := d.Float64()
		return f
	}
	return nil
}

func dateValue(field reflect.Value) any {
	if d, ok := field.Interface().(models.Date); ok {
		return d.String()
	}
	return nil
}

func fieldError(fe validator.FieldError) apperrors.FieldError {
	field := fe.Field()
	switch fe.Tag() {
	case "required", "required_if":
		return apperrors.Required(field)
	case "email":
		return apperrors.FieldError{Field: field, Rule: "email", Message: field + " must be a valid email address"}
	case "min":
		return apperrors.FieldError{Field: field, Rule: "min", Message: field + " must be at least " + fe.Param() + " characters"}
	case "max":
		return apperrors.FieldError{Field: field, Rule: "max", Message: field + " must be at most " + fe.Param() + " characters"}
	case "gt":
		return apperrors.FieldError{Field: field, Rule: "gt", Message: field + " must be greater than " + fe.Param()}
	case "gte":
		return apperrors.FieldError{Field: field, Rule: "gte", Message: field + " must be at least " + fe.Param()}
	case "eqfield":
		return apperrors.FieldError{Field: field, Rule: "eqfield", Message: field + " does not match"}
	default:
		return apperrors.Invalid(field, fe.Tag())
	}
}

func validatePaymentMethod(fl validator.FieldLevel) bool {
	return models.PaymentMethod(fl.Field().String()).Valid()
}

// validateRecurringFrequency accepts an empty value; presence is governed by
// required_if on the same field.
func validateRecurringFrequency(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	return s == "" || models.RecurringFrequency(s).Valid()
}

