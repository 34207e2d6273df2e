package handlers

import (
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	vo "helpdesk/internal/domain/ticket/valueobjects"
)

var registerValidatorsOnce sync.Once

// RegisterValidators installs custom binding validators on gin's validator
// engine. Safe to call from every router constructor.
func RegisterValidators() {
	registerValidatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}

		_ = v.RegisterValidation("ticketcategory", func(fl validator.FieldLevel) bool {
			return vo.Category(fl.Field().String()).IsValid()
		})
	})
}
