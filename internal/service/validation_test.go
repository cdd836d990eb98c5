package service

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/colegios-api/internal/dto"
	appErrors "github.com/noah-isme/colegios-api/pkg/errors"
)

func int64Ptr(v int64) *int64 { return &v }

func requireValidationMessage(t *testing.T, err error, message string) {
	t.Helper()
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
	assert.Equal(t, message, appErr.Message)
}

func TestValidateRequestReportsFirstMissingField(t *testing.T) {
	v := NewValidator()

	cases := []struct {
		name string
		req  interface{}
		want string
	}{
		{"department without name", dto.DepartmentRequest{Code: "05"}, "Falta el campo requerido: nombre"},
		{"department without anything", dto.DepartmentRequest{}, "Falta el campo requerido: nombre"},
		{"department without code", dto.DepartmentRequest{Name: "Antioquia"}, "Falta el campo requerido: codigo"},
		{"municipality without department", dto.MunicipalityRequest{Name: "Medellín", Code: "001"}, "Falta el campo requerido: departamento"},
		{"school without municipality", dto.SchoolRequest{Name: "San José", Code: "C1"}, "Falta el campo requerido: municipio"},
		{"site without school", dto.SiteRequest{Name: "Principal", Code: "S1"}, "Falta el campo requerido: colegio"},
		{"user without role", dto.UserRequest{Name: "Ana"}, "Falta el campo requerido: rol"},
		{"user without name", dto.UserRequest{Role: "admin"}, "Falta el campo requerido: nombre"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validateRequest(v, tc.req)
			requireValidationMessage(t, err, tc.want)

			var missing *MissingFieldError
			require.True(t, errors.As(err, &missing))
		})
	}
}

func TestValidateRequestZeroForeignKeyIsPresent(t *testing.T) {
	v := NewValidator()
	err := validateRequest(v, dto.MunicipalityRequest{Name: "Medellín", Code: "001", DepartmentID: int64Ptr(0)})
	assert.NoError(t, err)
}

func TestValidateRequestRejectsUnknownRole(t *testing.T) {
	v := NewValidator()
	err := validateRequest(v, dto.UserRequest{Name: "Ana", Role: "superuser"})
	requireValidationMessage(t, err, "Valor inválido para el campo: rol")

	var invalid *InvalidFieldError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, "superuser", invalid.Value)
}

func TestValidateRequestAcceptsKnownRoles(t *testing.T) {
	v := NewValidator()
	for _, role := range []string{"admin", "teacher", "student"} {
		assert.NoError(t, validateRequest(v, dto.UserRequest{Name: "Ana", Role: role}), role)
	}
}

func TestNotFoundMessages(t *testing.T) {
	assert.Equal(t, "Departamento no encontrado", appErrors.FromError(notFound("Departamento", false)).Message)
	assert.Equal(t, "Sede no encontrada", appErrors.FromError(notFound("Sede", true)).Message)
	assert.Equal(t, http.StatusNotFound, appErrors.FromError(notFound("Sede", true)).Status)
}
