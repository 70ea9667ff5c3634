package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lizet96/hospital-system/middleware"
	"github.com/lizet96/hospital-system/models"
	"github.com/lizet96/hospital-system/services"
)

// AuthHandler atiende login y la configuración de MFA
type AuthHandler struct {
	svc *services.AuthService
	val *Validador
}

func NewAuthHandler(svc *services.AuthService, val *Validador) *AuthHandler {
	return &AuthHandler{svc: svc, val: val}
}

// Login autentica un usuario y devuelve un token JWT
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := h.val.bind(c, &req); err != nil {
		return err
	}
	resp, err := h.svc.Login(c.UserContext(), req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// SetupMFA genera un secreto TOTP para el usuario autenticado
func (h *AuthHandler) SetupMFA(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	if userID == 0 {
		return fiber.NewError(fiber.StatusUnauthorized, "Usuario no autenticado")
	}
	resp, err := h.svc.SetupMFA(c.UserContext(), userID)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// VerifyMFA activa MFA tras un código válido
func (h *AuthHandler) VerifyMFA(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	if userID == 0 {
		return fiber.NewError(fiber.StatusUnauthorized, "Usuario no autenticado")
	}
	var req models.MFAVerifyRequest
	if err := h.val.bind(c, &req); err != nil {
		return err
	}
	if err := h.svc.VerifyMFA(c.UserContext(), userID, req.Codigo); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"mfaEnabled": true})
}
