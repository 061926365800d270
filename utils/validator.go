package utils

import (
	"reflect"

	"campus/consts"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// InitValidator registers the custom binding validations used by request
// DTOs. Must run before the router starts accepting requests.
func InitValidator() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("role_name", ValidateRoleName)
		_ = v.RegisterValidation("positive_ids", ValidatePositiveIDs)
	}
}

// ValidateRoleName accepts only the seeded role names
func ValidateRoleName(fl validator.FieldLevel) bool {
	_, ok := consts.ValidRoles[consts.RoleName(fl.Field().String())]
	return ok
}

// ValidatePositiveIDs rejects int slices carrying zero or negative values
func ValidatePositiveIDs(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.Slice {
		return true
	}

	for i := 0; i < field.Len(); i++ {
		element := field.Index(i)
		if element.CanInt() && element.Int() <= 0 {
			return false
		}
	}
	return true
}
