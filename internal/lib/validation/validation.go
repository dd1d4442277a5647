// Package validation создаёт валидатор входящих данных с правилами,
// которых нет в go-playground/validator из коробки.
package validation

import (
	"regexp"

	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/foodgram/internal/models"
)

var slugRe = regexp.MustCompile(`^[-a-zA-Z0-9_]+$`)

// New возвращает валидатор с зарегистрированными правилами slug и amount.
func New() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return slugRe.MatchString(fl.Field().String())
	})
	// amount: не больше двух знаков после запятой.
	_ = v.RegisterValidation("amount", func(fl validator.FieldLevel) bool {
		return models.ValidAmount(fl.Field().Float())
	})
	return v
}
