package validator

import (
	"log"

	"connect_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules installs the domain validation tags on the validator
// instance.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// A rule that fails to register is a startup misconfiguration.
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	// 'is-proficiency': skill proficiency level from the known set
	mustRegister("is-proficiency", validateProficiency)

	// 'is-role-tag': profile role tag from the known set
	mustRegister("is-role-tag", validateRoleTag)
}

func validateProficiency(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // empty values are handled by 'required'/'required_with'
	}
	return models.ValidProficiency(value)
}

func validateRoleTag(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.ValidRoleTag(value)
}
