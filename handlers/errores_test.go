package handlers

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lizet96/hospital-system/models"
	"github.com/lizet96/hospital-system/pdf"
	"github.com/lizet96/hospital-system/services"
)

func TestTraducir(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		intCode string
	}{
		{"no encontrado envuelto", fmt.Errorf("buscar: %w", services.ErrNotFound), fiber.StatusNotFound, IntCodeNoEncontrado},
		{"pdf sin datos", fmt.Errorf("%w: factura 3", pdf.ErrNotFound), fiber.StatusNotFound, IntCodeNoEncontrado},
		{"duplicado", &services.DuplicateKeyError{Campo: "dni", Valor: "1"}, fiber.StatusConflict, IntCodeDuplicado},
		{"referencia", services.ErrReferencia, fiber.StatusBadRequest, IntCodeReferencia},
		{"credenciales", services.ErrCredenciales, fiber.StatusUnauthorized, IntCodeNoAutorizado},
		{"mfa requerido", services.ErrMFARequerido, fiber.StatusUnauthorized, IntCodeMFARequerido},
		{"render", pdf.NewRenderError(pdf.ErrCodeRenderTimeout, "tarde", nil), fiber.StatusInternalServerError, IntCodePDF},
		{"timeout", context.DeadlineExceeded, fiber.StatusServiceUnavailable, IntCodeTimeout},
		{"fiber", fiber.NewError(fiber.StatusForbidden, "no"), fiber.StatusForbidden, IntCodeProhibido},
		{"desconocido", errors.New("boom"), fiber.StatusInternalServerError, IntCodeInterno},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, resp := traducir(tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.intCode, resp.IntCode)
			assert.True(t, resp.Error)
		})
	}
}

func TestTraducirNoFiltraErroresInternos(t *testing.T) {
	_, resp := traducir(errors.New("pq: password authentication failed"))
	assert.NotContains(t, resp.Message, "password")
}

func TestValidador(t *testing.T) {
	v := NewValidador()

	err := v.Validar(&models.Paciente{Dni: "12AB", Nombres: "Ana"})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)

	mensajes := map[string]string{}
	for _, c := range ve.Campos {
		mensajes[c.Campo] = c.Mensaje
	}
	assert.Contains(t, mensajes, "dni")
	assert.Equal(t, "es obligatorio", mensajes["apellidos"])
	assert.NotContains(t, mensajes, "nombres")

	assert.NoError(t, v.Validar(&models.Paciente{Dni: "12345678", Nombres: "Ana", Apellidos: "Diaz"}))
	assert.Error(t, v.Validar(&models.CambioEstadoCitaRequest{Estado: "perdida"}))
	assert.NoError(t, v.Validar(&models.Medico{
		Nombres: "Luis", Apellidos: "Perez", Colegiatura: "CMP-1",
		Especialidad: &models.Especialidad{IDEspecialidad: 2},
	}))
}
