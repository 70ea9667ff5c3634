package middleware

import (
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lizet96/hospital-system/services"
)

type parserFalso map[string]*services.Claims

func (p parserFalso) ParseToken(token string) (*services.Claims, error) {
	if c, ok := p[token]; ok {
		return c, nil
	}
	return nil, errors.New("token desconocido")
}

func appConAuth() *fiber.App {
	parser := parserFalso{
		"admin-token":  {UserID: 1, Email: "admin@hospital.pe", Rol: "admin"},
		"medico-token": {UserID: 2, Email: "medico@hospital.pe", Rol: "medico"},
	}
	app := fiber.New()
	app.Use(JWTMiddleware(parser))
	app.Get("/perfil", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"id": UserID(c), "rol": c.Locals(LocalRol)})
	})
	app.Delete("/solo-admin", RequireRole("admin"), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})
	return app
}

func TestJWTMiddleware(t *testing.T) {
	app := appConAuth()

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"sin header", "", fiber.StatusUnauthorized},
		{"sin Bearer", "admin-token", fiber.StatusUnauthorized},
		{"token inválido", "Bearer otro", fiber.StatusUnauthorized},
		{"token válido", "Bearer admin-token", fiber.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(fiber.MethodGet, "/perfil", nil)
			if tt.header != "" {
				req.Header.Set(fiber.HeaderAuthorization, tt.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}
}

func TestRequireRole(t *testing.T) {
	app := appConAuth()

	req := httptest.NewRequest(fiber.MethodDelete, "/solo-admin", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer medico-token")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	req = httptest.NewRequest(fiber.MethodDelete, "/solo-admin", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer admin-token")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}
