package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lizet96/hospital-system/models"
	"github.com/lizet96/hospital-system/services"
)

// MedicoHandler atiende médicos y especialidades
type MedicoHandler struct {
	svc *services.MedicoService
	val *Validador
}

func NewMedicoHandler(svc *services.MedicoService, val *Validador) *MedicoHandler {
	return &MedicoHandler{svc: svc, val: val}
}

func (h *MedicoHandler) ObtenerMedicos(c *fiber.Ctx) error {
	medicos, err := h.svc.ListMedicos(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(medicos)
}

func (h *MedicoHandler) ObtenerMedico(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	m, err := h.svc.GetMedico(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(m)
}

func (h *MedicoHandler) CrearMedico(c *fiber.Ctx) error {
	var m models.Medico
	if err := h.val.bind(c, &m); err != nil {
		return err
	}
	creado, err := h.svc.CreateMedico(c.UserContext(), m)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(creado)
}

func (h *MedicoHandler) ActualizarMedico(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var m models.Medico
	if err := h.val.bind(c, &m); err != nil {
		return err
	}
	actualizado, err := h.svc.UpdateMedico(c.UserContext(), id, m)
	if err != nil {
		return err
	}
	return c.JSON(actualizado)
}

func (h *MedicoHandler) EliminarMedico(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	ok, err := h.svc.DeleteMedico(c.UserContext(), id)
	if err != nil {
		return err
	}
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "Médico no encontrado")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *MedicoHandler) ObtenerEspecialidades(c *fiber.Ctx) error {
	especialidades, err := h.svc.ListEspecialidades(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(especialidades)
}

func (h *MedicoHandler) ObtenerEspecialidad(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	e, err := h.svc.GetEspecialidad(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(e)
}

func (h *MedicoHandler) CrearEspecialidad(c *fiber.Ctx) error {
	var e models.Especialidad
	if err := h.val.bind(c, &e); err != nil {
		return err
	}
	creada, err := h.svc.CreateEspecialidad(c.UserContext(), e)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(creada)
}

func (h *MedicoHandler) ActualizarEspecialidad(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var e models.Especialidad
	if err := h.val.bind(c, &e); err != nil {
		return err
	}
	actualizada, err := h.svc.UpdateEspecialidad(c.UserContext(), id, e)
	if err != nil {
		return err
	}
	return c.JSON(actualizada)
}

// EliminarEspecialidad deja sin especialidad a sus médicos
func (h *MedicoHandler) EliminarEspecialidad(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	ok, err := h.svc.DeleteEspecialidad(c.UserContext(), id)
	if err != nil {
		return err
	}
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "Especialidad no encontrada")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
