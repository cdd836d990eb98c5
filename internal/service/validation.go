package service

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"

	"github.com/noah-isme/colegios-api/internal/models"
	appErrors "github.com/noah-isme/colegios-api/pkg/errors"
)

const (
	missingFieldPrefix = "Falta el campo requerido: "
	invalidFieldPrefix = "Valor inválido para el campo: "
)

// MissingFieldError names the first required field absent from a write request.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return missingFieldPrefix + e.Field
}

// InvalidFieldError names a present field whose value is outside its allowed set.
type InvalidFieldError struct {
	Field string
	Value interface{}
}

func (e *InvalidFieldError) Error() string {
	return invalidFieldPrefix + e.Field
}

// NewValidator returns a validator that reports fields by their label tag and knows the role enum.
func NewValidator() *validator.Validate {
	v := validator.New()
	RegisterRules(v)
	return v
}

// RegisterRules installs the label name function and the role rule on v.
func RegisterRules(v *validator.Validate) {
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		if label := field.Tag.Get("label"); label != "" {
			return label
		}
		return field.Name
	})
	_ = v.RegisterValidation("role", func(fl validator.FieldLevel) bool {
		return models.UserRole(fl.Field().String()).Valid()
	})
}

// validateRequest runs the validation gate over req. Fields are checked in
// declaration order and only the first failure is reported.
func validateRequest(v *validator.Validate, req interface{}) error {
	err := v.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Cuerpo de la solicitud inválido")
	}

	first := fieldErrs[0]
	var cause error
	if first.Tag() == "required" {
		cause = &MissingFieldError{Field: first.Field()}
	} else {
		cause = &InvalidFieldError{Field: first.Field(), Value: first.Value()}
	}
	return appErrors.Wrap(cause, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, cause.Error())
}

// notFound builds the entity-specific 404 error.
func notFound(entity string, feminine bool) error {
	if feminine {
		return appErrors.NotFound(fmt.Sprintf("%s no encontrada", entity))
	}
	return appErrors.NotFound(fmt.Sprintf("%s no encontrado", entity))
}
