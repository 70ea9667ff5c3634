package handlers

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/lizet96/hospital-system/pdf"
	"github.com/lizet96/hospital-system/services"
)

// Códigos internos de error que recibe el cliente
const (
	IntCodeDatosInvalidos = "F10"
	IntCodeNoAutorizado   = "F11"
	IntCodeProhibido      = "F12"
	IntCodeMFARequerido   = "F13"
	IntCodeNoEncontrado   = "F30"
	IntCodeDuplicado      = "F31"
	IntCodeReferencia     = "F32"
	IntCodeLimite         = "F40"
	IntCodeInterno        = "F60"
	IntCodeTimeout        = "F61"
	IntCodePDF            = "F70"
)

// ErrorResponse es el cuerpo de toda respuesta de error
type ErrorResponse struct {
	Error    bool         `json:"error"`
	IntCode  string       `json:"intCode"`
	Message  string       `json:"message"`
	Detalles []CampoError `json:"detalles,omitempty"`
}

// ErrorHandler traduce los errores de dominio a status HTTP
func ErrorHandler(log *zap.Logger) fiber.ErrorHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return func(c *fiber.Ctx, err error) error {
		status, resp := traducir(err)
		if status >= fiber.StatusInternalServerError {
			log.Error("Error en petición",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.Error(err),
			)
		}
		return c.Status(status).JSON(resp)
	}
}

func traducir(err error) (int, ErrorResponse) {
	resp := ErrorResponse{Error: true}

	var validacion *ValidationError
	var fe *fiber.Error
	var dup *services.DuplicateKeyError
	var render *pdf.RenderError

	switch {
	case errors.As(err, &validacion):
		resp.IntCode, resp.Message, resp.Detalles = IntCodeDatosInvalidos, "Datos inválidos", validacion.Campos
		return fiber.StatusBadRequest, resp
	case errors.As(err, &fe):
		resp.IntCode, resp.Message = codigoPorStatus(fe.Code), fe.Message
		return fe.Code, resp
	case errors.Is(err, services.ErrNotFound), errors.Is(err, pdf.ErrNotFound):
		resp.IntCode, resp.Message = IntCodeNoEncontrado, "Registro no encontrado"
		return fiber.StatusNotFound, resp
	case errors.As(err, &dup):
		resp.IntCode, resp.Message = IntCodeDuplicado, dup.Error()
		return fiber.StatusConflict, resp
	case errors.Is(err, services.ErrReferencia):
		resp.IntCode, resp.Message = IntCodeReferencia, "El registro referenciado no existe"
		return fiber.StatusBadRequest, resp
	case errors.Is(err, services.ErrRolInvalido):
		resp.IntCode, resp.Message = IntCodeDatosInvalidos, err.Error()
		return fiber.StatusBadRequest, resp
	case errors.Is(err, services.ErrMFARequerido):
		resp.IntCode, resp.Message = IntCodeMFARequerido, "Se requiere el código de verificación"
		return fiber.StatusUnauthorized, resp
	case errors.Is(err, services.ErrCredenciales),
		errors.Is(err, services.ErrCodigoMFA),
		errors.Is(err, services.ErrTokenInvalido):
		resp.IntCode, resp.Message = IntCodeNoAutorizado, err.Error()
		return fiber.StatusUnauthorized, resp
	case errors.As(err, &render):
		resp.IntCode, resp.Message = IntCodePDF, "No se pudo generar el PDF: "+render.Code
		return fiber.StatusInternalServerError, resp
	case errors.Is(err, context.DeadlineExceeded):
		resp.IntCode, resp.Message = IntCodeTimeout, "La operación excedió el tiempo límite"
		return fiber.StatusServiceUnavailable, resp
	}
	resp.IntCode, resp.Message = IntCodeInterno, "Error interno del servidor"
	return fiber.StatusInternalServerError, resp
}

func codigoPorStatus(status int) string {
	switch status {
	case fiber.StatusBadRequest, fiber.StatusRequestEntityTooLarge, fiber.StatusUnprocessableEntity:
		return IntCodeDatosInvalidos
	case fiber.StatusUnauthorized:
		return IntCodeNoAutorizado
	case fiber.StatusForbidden:
		return IntCodeProhibido
	case fiber.StatusNotFound, fiber.StatusMethodNotAllowed:
		return IntCodeNoEncontrado
	case fiber.StatusConflict:
		return IntCodeDuplicado
	case fiber.StatusTooManyRequests:
		return IntCodeLimite
	}
	return IntCodeInterno
}

// RutaNoEncontrada responde a las rutas que no existen
func RutaNoEncontrada(c *fiber.Ctx) error {
	return fiber.NewError(fiber.StatusNotFound, "La ruta solicitada no existe en este servidor: "+c.Method()+" "+c.Path())
}
