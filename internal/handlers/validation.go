package handlers

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// validEntityID reports whether the field holds a well-formed entity
// identifier. All entity IDs in the API are UUID strings.
func validEntityID(fl validator.FieldLevel) bool {
	_, err := uuid.Parse(fl.Field().String())
	return err == nil
}

// RegisterCustomValidators registers the custom binding validators used by
// the request DTOs. Must be called once before routes are served.
func RegisterCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		// Registration only fails for empty tags, safe to ignore here.
		_ = v.RegisterValidation("entityid", validEntityID)
	}
}
