package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lizet96/hospital-system/models"
	"github.com/lizet96/hospital-system/services"
)

// CitaHandler atiende las citas médicas
type CitaHandler struct {
	svc *services.CitaService
	val *Validador
}

func NewCitaHandler(svc *services.CitaService, val *Validador) *CitaHandler {
	return &CitaHandler{svc: svc, val: val}
}

func (h *CitaHandler) ObtenerCitas(c *fiber.Ctx) error {
	citas, err := h.svc.ListCitas(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(citas)
}

func (h *CitaHandler) ObtenerCita(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	cita, err := h.svc.GetCita(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(cita)
}

func (h *CitaHandler) ObtenerCitasPorPaciente(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	citas, err := h.svc.ListCitasByPaciente(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(citas)
}

func (h *CitaHandler) ObtenerCitasPorMedico(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	citas, err := h.svc.ListCitasByMedico(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(citas)
}

func (h *CitaHandler) CrearCita(c *fiber.Ctx) error {
	var cita models.Cita
	if err := h.val.bind(c, &cita); err != nil {
		return err
	}
	creada, err := h.svc.CreateCita(c.UserContext(), cita)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(creada)
}

func (h *CitaHandler) ActualizarCita(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var cita models.Cita
	if err := h.val.bind(c, &cita); err != nil {
		return err
	}
	actualizada, err := h.svc.UpdateCita(c.UserContext(), id, cita)
	if err != nil {
		return err
	}
	return c.JSON(actualizada)
}

func (h *CitaHandler) CambiarEstado(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var req models.CambioEstadoCitaRequest
	if err := h.val.bind(c, &req); err != nil {
		return err
	}
	cita, err := h.svc.ChangeEstado(c.UserContext(), id, req.Estado)
	if err != nil {
		return err
	}
	return c.JSON(cita)
}

func (h *CitaHandler) EliminarCita(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	ok, err := h.svc.DeleteCita(c.UserContext(), id)
	if err != nil {
		return err
	}
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "Cita no encontrada")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
