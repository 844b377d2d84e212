package validator

import (
	"log"
	"time"

	"vpms_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules installs the domain validation tags. A registration
// failure is a startup error, not a request error.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-tenant-category", validateTenantCategory)
	mustRegister("is-issue-date", validateIssueDate)
}

func validateTenantCategory(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // 'required' owns the empty check
	}
	switch models.TenantCategory(value) {
	case models.TenantCategoryResidence, models.TenantCategoryCarpark, models.TenantCategoryShop:
		return true
	}
	return false
}

func validateIssueDate(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	_, err := time.Parse("2006-01-02", value)
	return err == nil
}
