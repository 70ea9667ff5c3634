package handlers

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CampoError describe un campo rechazado
type CampoError struct {
	Campo   string `json:"campo"`
	Mensaje string `json:"mensaje"`
}

// ValidationError agrupa los campos inválidos de un cuerpo
type ValidationError struct {
	Campos []CampoError
}

func (e *ValidationError) Error() string {
	partes := make([]string, 0, len(e.Campos))
	for _, c := range e.Campos {
		partes = append(partes, c.Campo+": "+c.Mensaje)
	}
	return "validación: " + strings.Join(partes, "; ")
}

// Validador valida los modelos con sus tags validate
type Validador struct {
	v *validator.Validate
}

func NewValidador() *Validador {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Los mensajes usan el nombre JSON del campo
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Validador{v: v}
}

func (val *Validador) Validar(s interface{}) error {
	err := val.v.Struct(s)
	if err == nil {
		return nil
	}
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return err
	}
	out := &ValidationError{Campos: make([]CampoError, 0, len(errs))}
	for _, fe := range errs {
		out.Campos = append(out.Campos, CampoError{Campo: fe.Field(), Mensaje: mensaje(fe)})
	}
	return out
}

func mensaje(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "es obligatorio"
	case "max":
		return fmt.Sprintf("no puede superar %s caracteres", fe.Param())
	case "len":
		return fmt.Sprintf("debe tener %s caracteres", fe.Param())
	case "numeric":
		return "solo admite dígitos"
	case "email":
		return "no es un correo válido"
	case "oneof":
		return "debe ser uno de: " + fe.Param()
	case "gt":
		return "debe ser mayor que " + fe.Param()
	case "datetime":
		return "debe tener el formato " + fe.Param()
	}
	return "no es válido (" + fe.Tag() + ")"
}

// bind lee el cuerpo JSON en dst y lo valida
func (val *Validador) bind(c *fiber.Ctx, dst interface{}) error {
	if err := c.BodyParser(dst); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Datos inválidos: "+err.Error())
	}
	return val.Validar(dst)
}

// parseID lee un parámetro de ruta numérico y positivo
func parseID(c *fiber.Ctx, nombre string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(nombre), 10, 64)
	if err != nil || id <= 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "ID inválido")
	}
	return id, nil
}
