package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// donorEmailPattern is the acceptance pattern for emails: non-whitespace,
// "@", non-whitespace, ".", non-whitespace. Deliberately loose; uniqueness is
// not checked because only one account exists.
var donorEmailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// pincodePattern requires exactly six digits, no padding or truncation.
var pincodePattern = regexp.MustCompile(`^[0-9]{6}$`)

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New()
	v.RegisterValidation("donoremail", func(fl validator.FieldLevel) bool {
		return donorEmailPattern.MatchString(fl.Field().String())
	})
	v.RegisterValidation("pincode", func(fl validator.FieldLevel) bool {
		return pincodePattern.MatchString(fl.Field().String())
	})
	return &CustomValidator{validator: v}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// IsPincode reports whether s is a valid six-digit postal code.
func IsPincode(s string) bool {
	return pincodePattern.MatchString(s)
}

func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	errors := make(map[string]string)

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			field := e.Field()
			switch e.Tag() {
			case "required":
				errors[field] = field + " is required"
			case "donoremail":
				errors[field] = field + " must be a valid email address"
			case "pincode":
				errors[field] = field + " must be a 6-digit PIN code"
			case "eqfield":
				errors[field] = field + " must match " + e.Param()
			case "oneof":
				errors[field] = field + " must be one of: " + e.Param()
			case "min":
				errors[field] = field + " must be at least " + e.Param() + " characters"
			case "max":
				errors[field] = field + " must be at most " + e.Param() + " characters"
			default:
				errors[field] = field + " is invalid"
			}
		}
	}

	return errors
}
