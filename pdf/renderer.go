// Package pdf genera la factura en PDF. FacturaRenderer reúne los datos y
// arma un Documento; un Writer (fpdf o chromedp) lo convierte en bytes.
package pdf

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/lizet96/hospital-system/models"
	"github.com/lizet96/hospital-system/services"
)

// ErrNotFound indica que falta la factura o su paciente
var ErrNotFound = errors.New("datos de la factura no encontrados")

// RenderError representa un fallo del motor de PDF
type RenderError struct {
	Code    string
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}

// Códigos de RenderError
const (
	ErrCodeRenderFailed  = "RENDER_FAILED"
	ErrCodeRenderTimeout = "RENDER_TIMEOUT"
	ErrCodeEmptyOutput   = "EMPTY_OUTPUT"
)

func NewRenderError(code, message string, cause error) *RenderError {
	return &RenderError{Code: code, Message: message, Cause: cause}
}

// FuenteFacturas da acceso a los datos de una factura
type FuenteFacturas interface {
	GetFactura(ctx context.Context, id int64) (*models.Factura, error)
	GetPaciente(ctx context.Context, id int64) (*models.Paciente, error)
	ListDetalles(ctx context.Context, idFactura int64) ([]models.DetalleFactura, error)
}

// Writer convierte un Documento en un PDF
type Writer interface {
	Write(ctx context.Context, doc *Documento) ([]byte, error)
}

type FacturaRenderer struct {
	fuente FuenteFacturas
	writer Writer
	log    *zap.Logger
}

func NewFacturaRenderer(fuente FuenteFacturas, writer Writer, log *zap.Logger) *FacturaRenderer {
	if log == nil {
		log = zap.NewNop()
	}
	return &FacturaRenderer{fuente: fuente, writer: writer, log: log.Named("pdf")}
}

// Render devuelve el PDF de la factura. Si falta la factura o su paciente
// el error es ErrNotFound; los fallos del motor son *RenderError.
func (r *FacturaRenderer) Render(ctx context.Context, idFactura int64) ([]byte, error) {
	inicio := time.Now()

	f, err := r.fuente.GetFactura(ctx, idFactura)
	if err != nil {
		return nil, noEncontrado(err, "factura %d", idFactura)
	}
	p, err := r.fuente.GetPaciente(ctx, f.IDPaciente)
	if err != nil {
		return nil, noEncontrado(err, "paciente %d de la factura %d", f.IDPaciente, idFactura)
	}
	detalles, err := r.fuente.ListDetalles(ctx, idFactura)
	if err != nil {
		return nil, fmt.Errorf("leer detalles de la factura %d: %w", idFactura, err)
	}

	datos, err := r.writer.Write(ctx, NuevoDocumento(*f, *p, detalles))
	if err != nil {
		var re *RenderError
		if errors.As(err, &re) {
			return nil, err
		}
		return nil, NewRenderError(ErrCodeRenderFailed, "no se pudo generar el PDF", err)
	}
	if len(datos) == 0 {
		return nil, NewRenderError(ErrCodeEmptyOutput, "el PDF generado está vacío", nil)
	}

	r.log.Info("Factura renderizada",
		zap.Int64("id_factura", idFactura),
		zap.Int("bytes", len(datos)),
		zap.Duration("duracion", time.Since(inicio)),
	)
	return datos, nil
}

// noEncontrado envuelve err con ErrNotFound solo si el registro no existe
func noEncontrado(err error, formato string, args ...any) error {
	msg := fmt.Sprintf(formato, args...)
	if errors.Is(err, services.ErrNotFound) {
		return fmt.Errorf("%w: %s: %w", ErrNotFound, msg, err)
	}
	return fmt.Errorf("leer %s: %w", msg, err)
}
