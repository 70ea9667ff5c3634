package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/lizet96/hospital-system/models"
	"github.com/lizet96/hospital-system/repository"
)

// FacturaService gestiona facturas y sus detalles. El total lo fija quien
// crea la factura; no se recalcula a partir de los detalles.
type FacturaService struct {
	base
	facturas  repository.FacturaRepository
	detalles  repository.DetalleFacturaRepository
	pacientes repository.PacienteRepository
}

func NewFacturaService(
	facturas repository.FacturaRepository,
	detalles repository.DetalleFacturaRepository,
	pacientes repository.PacienteRepository,
	log *zap.Logger,
	opts ...Opcion,
) *FacturaService {
	return &FacturaService{
		base:      nuevaBase(log, "facturas", opts),
		facturas:  facturas,
		detalles:  detalles,
		pacientes: pacientes,
	}
}

func (s *FacturaService) ListFacturas(ctx context.Context) ([]models.Factura, error) {
	return s.facturas.FindAll(ctx)
}

func (s *FacturaService) GetFactura(ctx context.Context, id int64) (*models.Factura, error) {
	return s.facturas.FindByID(ctx, id)
}

func (s *FacturaService) ListFacturasByPaciente(ctx context.Context, idPaciente int64) ([]models.Factura, error) {
	return s.facturas.FindByPaciente(ctx, idPaciente)
}

// GetPaciente expone el paciente de una factura para el PDF
func (s *FacturaService) GetPaciente(ctx context.Context, id int64) (*models.Paciente, error) {
	return s.pacientes.FindByID(ctx, id)
}

func (s *FacturaService) CreateFactura(ctx context.Context, f models.Factura) (*models.Factura, error) {
	f.IDFactura = 0
	if f.FechaEmision.IsZero() {
		f.FechaEmision = s.hoy()
	}
	if f.Estado == "" {
		f.Estado = models.EstadoFacturaPendiente
	}
	if err := s.facturas.Save(ctx, &f); err != nil {
		return nil, err
	}
	s.log.Info("Factura creada",
		zap.Int64("id_factura", f.IDFactura),
		zap.Int64("id_paciente", f.IDPaciente),
		zap.String("total", f.Total.StringFixed(2)),
	)
	return &f, nil
}

func (s *FacturaService) UpdateFactura(ctx context.Context, id int64, f models.Factura) (*models.Factura, error) {
	existe, err := s.facturas.ExistsByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !existe {
		return nil, ErrNotFound
	}
	f.IDFactura = id
	if err := s.facturas.Save(ctx, &f); err != nil {
		return nil, err
	}
	s.log.Info("Factura actualizada", zap.Int64("id_factura", id))
	return &f, nil
}

// ChangeEstado cambia solo el estado; acepta cualquier texto
func (s *FacturaService) ChangeEstado(ctx context.Context, id int64, estado string) (*models.Factura, error) {
	f, err := s.facturas.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	anterior := f.Estado
	f.Estado = estado
	if err := s.facturas.Save(ctx, f); err != nil {
		return nil, err
	}
	s.log.Info("Estado de factura cambiado",
		zap.Int64("id_factura", id),
		zap.String("anterior", anterior),
		zap.String("nuevo", estado),
	)
	return f, nil
}

func (s *FacturaService) DeleteFactura(ctx context.Context, id int64) (bool, error) {
	existe, err := s.facturas.ExistsByID(ctx, id)
	if err != nil || !existe {
		return false, err
	}
	if err := s.facturas.DeleteByID(ctx, id); err != nil {
		return false, err
	}
	s.log.Info("Factura eliminada", zap.Int64("id_factura", id))
	return true, nil
}

func (s *FacturaService) ListDetalles(ctx context.Context, idFactura int64) ([]models.DetalleFactura, error) {
	return s.detalles.FindByFactura(ctx, idFactura)
}

// AddDetalle requiere que el llamador haya fijado IDFactura
func (s *FacturaService) AddDetalle(ctx context.Context, d models.DetalleFactura) (*models.DetalleFactura, error) {
	d.IDDetalle = 0
	if err := s.detalles.Save(ctx, &d); err != nil {
		return nil, err
	}
	s.log.Info("Detalle agregado", zap.Int64("id_factura", d.IDFactura), zap.String("concepto", d.Concepto))
	return &d, nil
}
