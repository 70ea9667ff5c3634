package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lizet96/hospital-system/models"
	"github.com/lizet96/hospital-system/services"
)

// ConsultaHandler atiende las consultas médicas
type ConsultaHandler struct {
	svc *services.ConsultaService
	val *Validador
}

func NewConsultaHandler(svc *services.ConsultaService, val *Validador) *ConsultaHandler {
	return &ConsultaHandler{svc: svc, val: val}
}

func (h *ConsultaHandler) ObtenerConsultas(c *fiber.Ctx) error {
	consultas, err := h.svc.ListConsultas(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(consultas)
}

func (h *ConsultaHandler) ObtenerConsulta(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	consulta, err := h.svc.GetConsulta(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(consulta)
}

func (h *ConsultaHandler) ObtenerConsultasPorPaciente(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	consultas, err := h.svc.ListConsultasByPaciente(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(consultas)
}

// CrearConsulta crea una nueva consulta médica
func (h *ConsultaHandler) CrearConsulta(c *fiber.Ctx) error {
	var consulta models.Consulta
	if err := h.val.bind(c, &consulta); err != nil {
		return err
	}
	creada, err := h.svc.CreateConsulta(c.UserContext(), consulta)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(creada)
}

func (h *ConsultaHandler) ActualizarConsulta(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var consulta models.Consulta
	if err := h.val.bind(c, &consulta); err != nil {
		return err
	}
	actualizada, err := h.svc.UpdateConsulta(c.UserContext(), id, consulta)
	if err != nil {
		return err
	}
	return c.JSON(actualizada)
}

func (h *ConsultaHandler) EliminarConsulta(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	ok, err := h.svc.DeleteConsulta(c.UserContext(), id)
	if err != nil {
		return err
	}
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "Consulta no encontrada")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
