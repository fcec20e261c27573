package validator

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// uniqueIDRegex matches participant unique IDs: 4 to 12 uppercase letters or digits
var uniqueIDRegex = regexp.MustCompile(`^[A-Z0-9]{4,12}$`)

// validateUniqueID validates that a string is a valid participant unique ID
func validateUniqueID(fl validator.FieldLevel) bool {
	return uniqueIDRegex.MatchString(fl.Field().String())
}

// RegisterCustomValidators registers all custom validators with gin's validator
func RegisterCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("uniqueid", validateUniqueID)
	}
}
