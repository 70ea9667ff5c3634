package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReporteFacturas resume la facturación agrupada por estado
type ReporteFacturas struct {
	TotalFacturas   int                     `json:"totalFacturas"`
	Pagadas         int                     `json:"pagadas"`
	Pendientes      int                     `json:"pendientes"`
	MontoTotal      decimal.Decimal         `json:"montoTotal"`
	MontoPagado     decimal.Decimal         `json:"montoPagado"`
	MontoPendiente  decimal.Decimal         `json:"montoPendiente"`
	PorEstado       map[string]ResumenGrupo `json:"porEstado"`
	FechaGeneracion time.Time               `json:"fechaGeneracion"`
}

// ResumenGrupo cuenta y suma las facturas de un estado
type ResumenGrupo struct {
	Cantidad int             `json:"cantidad"`
	Monto    decimal.Decimal `json:"monto"`
}
