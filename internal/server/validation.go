package server

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var classTimePattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

// RegisterValidators installs custom binding tags on gin's validator engine.
// classtime accepts a 24h HH:MM wall clock time.
func RegisterValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	v.RegisterValidation("classtime", func(fl validator.FieldLevel) bool {
		return classTimePattern.MatchString(fl.Field().String())
	})
}
