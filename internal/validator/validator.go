// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"fincast/internal/models"
	"fincast/internal/recurrence"
)

var hexColorRegex = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("hex_color", validateHexColor)
		_ = v.RegisterValidation("pay_type", validatePayType)
		_ = v.RegisterValidation("frequency_type", validateFrequencyType)
		_ = v.RegisterValidation("legacy_frequency", validateLegacyFrequency)
	}
}

func validateHexColor(fl validator.FieldLevel) bool {
	return hexColorRegex.MatchString(fl.Field().String())
}

func validatePayType(fl validator.FieldLevel) bool {
	return models.PayType(fl.Field().String()).Valid()
}

func validateFrequencyType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case string(recurrence.UnitDays), string(recurrence.UnitWeeks),
		string(recurrence.UnitMonths), string(recurrence.UnitYears):
		return true
	}
	return false
}

func validateLegacyFrequency(fl validator.FieldLevel) bool {
	_, ok := recurrence.ResolveLegacy(fl.Field().String())
	return ok
}
