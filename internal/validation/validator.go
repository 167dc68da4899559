package validation

import (
	"fmt"
	"reflect"
	"strings"

	"finance-tracker/internal/schedule"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("frequency", validateFrequency)
	_ = v.RegisterValidation("date", validateDate)
	_ = v.RegisterValidation("positive_decimal", validatePositiveDecimal)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Struct runs the registered rules against s.
func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

// FieldErrors flattens validator errors into field -> message pairs. Errors
// that did not come from the validator are reported under "request".
func FieldErrors(err error) map[string]string {
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"request": err.Error()}
	}

	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		out[fe.Field()] = describe(fe)
	}
	return out
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "frequency":
		return fmt.Sprintf("must be one of %s", strings.Join(frequencyNames(), ", "))
	case "date":
		return "must be a date in YYYY-MM-DD format"
	case "positive_decimal":
		return "must be a positive amount with at most 2 decimal places"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}

func frequencyNames() []string {
	names := make([]string, 0, len(schedule.Frequencies()))
	for _, f := range schedule.Frequencies() {
		names = append(names, f.String())
	}
	return names
}

// Custom validation functions

// validateFrequency accepts daily, weekly, monthly and yearly in any case
func validateFrequency(fl validator.FieldLevel) bool {
	_, err := schedule.ParseFrequency(fl.Field().String())
	return err == nil
}

// validateDate accepts YYYY-MM-DD calendar dates
func validateDate(fl validator.FieldLevel) bool {
	_, err := schedule.ParseDate(fl.Field().String())
	return err == nil
}

// validatePositiveDecimal validates a decimal string that is greater than 0
// and has at most 2 decimal places
func validatePositiveDecimal(fl validator.FieldLevel) bool {
	amount, err := decimal.NewFromString(strings.TrimSpace(fl.Field().String()))
	if err != nil {
		return false
	}
	if !amount.IsPositive() {
		return false
	}
	return amount.Exponent() >= -2 || amount.Equal(amount.Round(2))
}
