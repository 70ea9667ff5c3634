package services

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/lizet96/hospital-system/models"
	"github.com/lizet96/hospital-system/repository"
)

// ReporteService calcula resúmenes de facturación
type ReporteService struct {
	base
	facturas repository.FacturaRepository
}

func NewReporteService(facturas repository.FacturaRepository, log *zap.Logger, opts ...Opcion) *ReporteService {
	return &ReporteService{base: nuevaBase(log, "reportes", opts), facturas: facturas}
}

// ResumenFacturas agrupa las facturas por estado (en minúsculas) y suma sus totales
func (s *ReporteService) ResumenFacturas(ctx context.Context) (*models.ReporteFacturas, error) {
	facturas, err := s.facturas.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	r := &models.ReporteFacturas{
		MontoTotal:      decimal.Zero,
		MontoPagado:     decimal.Zero,
		MontoPendiente:  decimal.Zero,
		PorEstado:       make(map[string]models.ResumenGrupo),
		FechaGeneracion: s.ahora(),
	}
	for _, f := range facturas {
		estado := strings.ToLower(strings.TrimSpace(f.Estado))
		r.TotalFacturas++
		r.MontoTotal = r.MontoTotal.Add(f.Total)

		switch estado {
		case models.EstadoFacturaPagado, "pagada":
			r.Pagadas++
			r.MontoPagado = r.MontoPagado.Add(f.Total)
		case models.EstadoFacturaPendiente:
			r.Pendientes++
			r.MontoPendiente = r.MontoPendiente.Add(f.Total)
		}

		g := r.PorEstado[estado]
		g.Cantidad++
		g.Monto = g.Monto.Add(f.Total)
		r.PorEstado[estado] = g
	}

	s.log.Debug("Resumen de facturas generado", zap.Int("total", r.TotalFacturas))
	return r, nil
}
