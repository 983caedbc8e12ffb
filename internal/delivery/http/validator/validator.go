// Package validator adapts go-playground/validator to echo's Validator
// interface so handlers can call c.Validate on bound input structs.
package validator

import (
	domainerrors "closecart/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

type echoValidator struct {
	validate *validator.Validate
}

// New builds the request validator used by the echo server.
func New() *echoValidator {
	return &echoValidator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// Validate checks the struct tags and converts failures into the shared
// validation error so the error middleware renders them uniformly.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
