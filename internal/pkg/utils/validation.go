package utils

import (
	"medicenter-service/internal/pkg/constvars"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("password", validatePassword)
	validate.RegisterValidation("phone_number", validatePhoneNumber)
	validate.RegisterValidation("role", validateRole)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// IsMissingFieldError reports whether a validation failure is purely about
// absent required fields, so forms can show the blanket
// "All fields are required" message the way the source UI does.
func IsMissingFieldError(err error) bool {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return false
	}
	for _, fieldErr := range validationErrors {
		if fieldErr.Tag() != "required" {
			return false
		}
	}
	return len(validationErrors) > 0
}

func FormatFirstValidationError(err error) string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return constvars.ErrClientCannotProcessRequest
	}

	fieldErr := validationErrors[0]
	message, exists := constvars.CustomValidationErrorMessages[fieldErr.Tag()]
	if !exists {
		return constvars.ErrClientCannotProcessRequest
	}
	return fieldErr.Field() + " " + message
}

func validatePassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()
	hasMinLen := len(password) >= 8
	hasSpecialChar := regexp.MustCompile(constvars.RegexContainAtLeastOneSpecialChar).MatchString(password)
	hasUppercase := regexp.MustCompile(constvars.RegexContainAtLeastOneUppercase).MatchString(password)
	return hasMinLen && hasSpecialChar && hasUppercase
}

func validatePhoneNumber(fl validator.FieldLevel) bool {
	phoneNumber := fl.Field().String()
	re := regexp.MustCompile(`^\+?[0-9]{9,15}$`)
	return re.MatchString(phoneNumber)
}

func validateRole(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case constvars.MedicenterRolePatient,
		constvars.MedicenterRoleDoctor,
		constvars.MedicenterRoleNurse,
		constvars.MedicenterRoleLab,
		constvars.MedicenterRoleAdmin:
		return true
	}
	return false
}
