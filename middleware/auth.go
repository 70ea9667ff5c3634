package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/lizet96/hospital-system/services"
)

// Claves de c.Locals con los datos del usuario autenticado
const (
	LocalUserID = "user_id"
	LocalEmail  = "user_email"
	LocalRol    = "user_role"
)

// TokenParser valida un token y devuelve sus claims
type TokenParser interface {
	ParseToken(token string) (*services.Claims, error)
}

// JWTMiddleware exige un token Bearer válido y guarda el usuario en Locals
func JWTMiddleware(parser TokenParser) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Token de autorización requerido")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return fiber.NewError(fiber.StatusUnauthorized, "Formato de token inválido")
		}

		claims, err := parser.ParseToken(tokenString)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Token inválido")
		}

		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalEmail, claims.Email)
		c.Locals(LocalRol, claims.Rol)
		return c.Next()
	}
}

// RequireRole deja pasar solo a los roles indicados
func RequireRole(allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rol, ok := c.Locals(LocalRol).(string)
		if !ok {
			return fiber.NewError(fiber.StatusForbidden, "Rol de usuario no encontrado")
		}
		for _, permitido := range allowedRoles {
			if rol == permitido {
				return c.Next()
			}
		}
		return fiber.NewError(fiber.StatusForbidden, "Acceso denegado: permisos insuficientes")
	}
}

// UserID devuelve el id del usuario autenticado, o 0
func UserID(c *fiber.Ctx) int64 {
	id, _ := c.Locals(LocalUserID).(int64)
	return id
}
