package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/lizet96/hospital-system/models"
	"github.com/lizet96/hospital-system/services"
)

// PacienteHandler atiende pacientes, su historia clínica y antecedentes
type PacienteHandler struct {
	svc *services.PacienteService
	val *Validador
}

func NewPacienteHandler(svc *services.PacienteService, val *Validador) *PacienteHandler {
	return &PacienteHandler{svc: svc, val: val}
}

// ObtenerPacientes obtiene todos los pacientes
func (h *PacienteHandler) ObtenerPacientes(c *fiber.Ctx) error {
	pacientes, err := h.svc.ListPacientes(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(pacientes)
}

func (h *PacienteHandler) ObtenerPaciente(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	p, err := h.svc.GetPaciente(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(p)
}

func (h *PacienteHandler) ObtenerPacientePorDni(c *fiber.Ctx) error {
	p, err := h.svc.GetPacienteByDni(c.UserContext(), c.Params("dni"))
	if err != nil {
		return err
	}
	return c.JSON(p)
}

// CrearPaciente registra al paciente junto con su historia clínica
func (h *PacienteHandler) CrearPaciente(c *fiber.Ctx) error {
	var p models.Paciente
	if err := h.val.bind(c, &p); err != nil {
		return err
	}
	creado, err := h.svc.CreatePaciente(c.UserContext(), p)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(creado)
}

func (h *PacienteHandler) ActualizarPaciente(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var p models.Paciente
	if err := h.val.bind(c, &p); err != nil {
		return err
	}
	actualizado, err := h.svc.UpdatePaciente(c.UserContext(), id, p)
	if err != nil {
		return err
	}
	return c.JSON(actualizado)
}

func (h *PacienteHandler) EliminarPaciente(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	ok, err := h.svc.DeletePaciente(c.UserContext(), id)
	if err != nil {
		return err
	}
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "Paciente no encontrado")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *PacienteHandler) ObtenerHistoria(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	historia, err := h.svc.GetHistoriaByPaciente(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(historia)
}

func (h *PacienteHandler) ObtenerAntecedentes(c *fiber.Ctx) error {
	idHistoria, err := parseID(c, "idHistoria")
	if err != nil {
		return err
	}
	antecedentes, err := h.svc.ListAntecedentes(c.UserContext(), idHistoria)
	if err != nil {
		return err
	}
	return c.JSON(antecedentes)
}

// AgregarAntecedente toma la historia de la ruta, no del cuerpo
func (h *PacienteHandler) AgregarAntecedente(c *fiber.Ctx) error {
	idHistoria, err := parseID(c, "idHistoria")
	if err != nil {
		return err
	}
	var a models.AntecedenteMedico
	if err := h.val.bind(c, &a); err != nil {
		return err
	}
	a.IDHistoria = idHistoria
	creado, err := h.svc.AddAntecedente(c.UserContext(), a)
	if err != nil {
		if errors.Is(err, services.ErrReferencia) {
			return fiber.NewError(fiber.StatusNotFound, "Historia clínica no encontrada")
		}
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(creado)
}
