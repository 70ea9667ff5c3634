package handlers

import (
	"context"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/lizet96/hospital-system/models"
	"github.com/lizet96/hospital-system/pdf"
	"github.com/lizet96/hospital-system/services"
)

// RenderizadorFacturas genera el PDF de una factura
type RenderizadorFacturas interface {
	Render(ctx context.Context, idFactura int64) ([]byte, error)
}

// FacturaHandler atiende facturas, sus detalles y el PDF
type FacturaHandler struct {
	svc *services.FacturaService
	pdf RenderizadorFacturas
	val *Validador
	// alRenderizar recibe "ok", "not_found" o el código del RenderError
	alRenderizar func(resultado string)
}

func NewFacturaHandler(svc *services.FacturaService, renderer RenderizadorFacturas, val *Validador, alRenderizar func(string)) *FacturaHandler {
	if alRenderizar == nil {
		alRenderizar = func(string) {}
	}
	return &FacturaHandler{svc: svc, pdf: renderer, val: val, alRenderizar: alRenderizar}
}

func (h *FacturaHandler) ObtenerFacturas(c *fiber.Ctx) error {
	facturas, err := h.svc.ListFacturas(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(facturas)
}

func (h *FacturaHandler) ObtenerFactura(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	f, err := h.svc.GetFactura(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(f)
}

func (h *FacturaHandler) ObtenerFacturasPorPaciente(c *fiber.Ctx) error {
	idPaciente, err := parseID(c, "idPaciente")
	if err != nil {
		return err
	}
	facturas, err := h.svc.ListFacturasByPaciente(c.UserContext(), idPaciente)
	if err != nil {
		return err
	}
	return c.JSON(facturas)
}

func (h *FacturaHandler) CrearFactura(c *fiber.Ctx) error {
	var f models.Factura
	if err := h.val.bind(c, &f); err != nil {
		return err
	}
	creada, err := h.svc.CreateFactura(c.UserContext(), f)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(creada)
}

func (h *FacturaHandler) ActualizarFactura(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var f models.Factura
	if err := h.val.bind(c, &f); err != nil {
		return err
	}
	actualizada, err := h.svc.UpdateFactura(c.UserContext(), id, f)
	if err != nil {
		return err
	}
	return c.JSON(actualizada)
}

// CambiarEstado solo toca el estado de la factura
func (h *FacturaHandler) CambiarEstado(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var req models.CambioEstadoRequest
	if err := h.val.bind(c, &req); err != nil {
		return err
	}
	f, err := h.svc.ChangeEstado(c.UserContext(), id, req.Estado)
	if err != nil {
		return err
	}
	return c.JSON(f)
}

// EliminarFactura borra también sus detalles
func (h *FacturaHandler) EliminarFactura(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	ok, err := h.svc.DeleteFactura(c.UserContext(), id)
	if err != nil {
		return err
	}
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "Factura no encontrada")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *FacturaHandler) ObtenerDetalles(c *fiber.Ctx) error {
	idFactura, err := parseID(c, "idFactura")
	if err != nil {
		return err
	}
	detalles, err := h.svc.ListDetalles(c.UserContext(), idFactura)
	if err != nil {
		return err
	}
	return c.JSON(detalles)
}

func (h *FacturaHandler) AgregarDetalle(c *fiber.Ctx) error {
	idFactura, err := parseID(c, "idFactura")
	if err != nil {
		return err
	}
	var d models.DetalleFactura
	if err := h.val.bind(c, &d); err != nil {
		return err
	}
	d.IDFactura = idFactura
	creado, err := h.svc.AddDetalle(c.UserContext(), d)
	if err != nil {
		if errors.Is(err, services.ErrReferencia) {
			return fiber.NewError(fiber.StatusNotFound, "Factura no encontrada")
		}
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(creado)
}

// DescargarPDF devuelve la factura como adjunto application/pdf
func (h *FacturaHandler) DescargarPDF(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	contenido, err := h.pdf.Render(c.UserContext(), id)
	if err != nil {
		var re *pdf.RenderError
		switch {
		case errors.As(err, &re):
			h.alRenderizar(re.Code)
		case errors.Is(err, pdf.ErrNotFound):
			h.alRenderizar("not_found")
		}
		return err
	}
	h.alRenderizar("ok")

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, "attachment; filename=factura_"+strconv.FormatInt(id, 10)+".pdf")
	return c.Send(contenido)
}
