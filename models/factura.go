package models

import (
	"github.com/shopspring/decimal"
)

// Estados habituales de una factura. El estado es texto libre: estos son
// los valores que usa el cliente web, no una lista cerrada.
const (
	EstadoFacturaPendiente = "pendiente"
	EstadoFacturaPagado    = "pagado"
	EstadoFacturaAnulado   = "anulado"
)

// Factura representa la tabla factura. El total lo fija quien crea la
// factura y no se recalcula a partir de los detalles.
type Factura struct {
	IDFactura    int64           `json:"idFactura" db:"id_factura"`
	IDPaciente   int64           `json:"idPaciente" db:"id_paciente" validate:"required,gt=0"`
	FechaEmision Fecha           `json:"fechaEmision" db:"fecha_emision"`
	Total        decimal.Decimal `json:"total" db:"total"`
	Estado       string          `json:"estado" db:"estado" validate:"max=20"`
}

// DetalleFactura representa una línea de la factura
type DetalleFactura struct {
	IDDetalle int64           `json:"idDetalleFactura" db:"id_detalle"`
	IDFactura int64           `json:"idFactura" db:"id_factura"`
	Concepto  string          `json:"concepto" db:"concepto" validate:"required,max=200"`
	Monto     decimal.Decimal `json:"monto" db:"monto"`
}

// CambioEstadoRequest es el cuerpo de PATCH /facturas/:id/estado
type CambioEstadoRequest struct {
	Estado string `json:"estado" validate:"max=20"`
}
