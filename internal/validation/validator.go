package validation

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
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

	_ = v.RegisterValidation("mpesa_code", validateMpesaCode)
	_ = v.RegisterValidation("money_amount", validateMoneyAmount)
	_ = v.RegisterValidation("kenyan_phone", validateKenyanPhone)
	_ = v.RegisterValidation("category_kind", validateCategoryKind)
	_ = v.RegisterValidation("report_window", validateReportWindow)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Custom validation functions

var (
	mpesaCodePattern   = regexp.MustCompile(`^[A-Z0-9]{10}$`)
	moneyAmountPattern = regexp.MustCompile(`^\d+(\.\d{1,2})?$`)
	kenyanPhonePattern = regexp.MustCompile(`^(\+?254|0)[17]\d{8}$`)
)

// validateMpesaCode validates an M-Pesa transaction code
// Format: 10 uppercase alphanumeric characters, e.g. SBK4X7YQZM
func validateMpesaCode(fl validator.FieldLevel) bool {
	return mpesaCodePattern.MatchString(fl.Field().String())
}

// validateMoneyAmount validates a decimal money string: non-negative, at most 2 decimal places
func validateMoneyAmount(fl validator.FieldLevel) bool {
	return moneyAmountPattern.MatchString(fl.Field().String())
}

// validateKenyanPhone validates Kenyan mobile numbers in local or international form
func validateKenyanPhone(fl validator.FieldLevel) bool {
	phone := strings.ReplaceAll(fl.Field().String(), " ", "")
	return kenyanPhonePattern.MatchString(phone)
}

// validateCategoryKind validates that a category kind is business or personal
func validateCategoryKind(fl validator.FieldLevel) bool {
	switch strings.ToLower(fl.Field().String()) {
	case "business", "personal":
		return true
	default:
		return false
	}
}

// validateReportWindow validates that a report window is weekly or monthly
func validateReportWindow(fl validator.FieldLevel) bool {
	switch strings.ToLower(fl.Field().String()) {
	case "weekly", "monthly":
		return true
	default:
		return false
	}
}
