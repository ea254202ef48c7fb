package document

import (
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/magus-warrior/80-s-webbuilder/internal/model"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance configures and returns the shared validator used for
// project and preset documents.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("node_type", func(fl validator.FieldLevel) bool {
			return model.NodeType(fl.Field().String()).Valid()
		})

		_ = v.RegisterValidation("token_category", func(fl validator.FieldLevel) bool {
			return model.TokenCategory(fl.Field().String()).Valid()
		})

		validateInst = v
	})

	return validateInst
}

// GetValidator exposes the configured validator for use outside this package.
func GetValidator() *validator.Validate {
	return validatorInstance()
}
