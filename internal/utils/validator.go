package utils

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var expiryPattern = regexp.MustCompile(`^(0[1-9]|1[0-2])/[0-9]{2}$`)

// NewValidator returns a validator with the marketplace's custom tags registered.
func NewValidator() *validator.Validate {
	v := validator.New()

	// MM/YY card expiry
	_ = v.RegisterValidation("expiry", func(fl validator.FieldLevel) bool {
		return expiryPattern.MatchString(fl.Field().String())
	})

	return v
}
