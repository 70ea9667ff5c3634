package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lizet96/hospital-system/services"
)

type ReporteHandler struct {
	svc *services.ReporteService
}

func NewReporteHandler(svc *services.ReporteService) *ReporteHandler {
	return &ReporteHandler{svc: svc}
}

// GenerarReporteFacturas resume la facturación por estado
func (h *ReporteHandler) GenerarReporteFacturas(c *fiber.Ctx) error {
	reporte, err := h.svc.ResumenFacturas(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(reporte)
}
