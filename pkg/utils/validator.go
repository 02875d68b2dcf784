package utils

import (
	apperrors "inventory-system/pkg/errors"

	"github.com/go-playground/validator/v10"
)

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator(v *validator.Validate) *CustomValidator {
	return &CustomValidator{validator: v}
}

// Validate приводит ошибки validator/v10 к ValidationError,
// чтобы конверт ответа получил статус 400 и понятное сообщение.
func (cv *CustomValidator) Validate(i interface{}) error {
	if err := cv.validator.Struct(i); err != nil {
		return apperrors.NewValidationError("datos de entrada no válidos: %v", err)
	}
	return nil
}
