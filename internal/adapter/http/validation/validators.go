package validation

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"workdeck/internal/core/domain"
)

// RegisterCustomValidators hooks domain enums into gin's binding engine so
// payload tags can reference them. The taskstatus tag also accepts the
// legacy Kanban values, which are normalized later by the payload builders.
func RegisterCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("taskstatus", validTaskStatus)
	}
}

func validTaskStatus(fl validator.FieldLevel) bool {
	_, ok := domain.NormalizeTaskStatus(fl.Field().String())
	return ok
}
