package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/lizet96/hospital-system/models"
	"github.com/lizet96/hospital-system/repository"
)

type CitaService struct {
	base
	citas repository.CitaRepository
}

func NewCitaService(citas repository.CitaRepository, log *zap.Logger, opts ...Opcion) *CitaService {
	return &CitaService{base: nuevaBase(log, "citas", opts), citas: citas}
}

func (s *CitaService) ListCitas(ctx context.Context) ([]models.Cita, error) {
	return s.citas.FindAll(ctx)
}

func (s *CitaService) GetCita(ctx context.Context, id int64) (*models.Cita, error) {
	return s.citas.FindByID(ctx, id)
}

func (s *CitaService) ListCitasByPaciente(ctx context.Context, idPaciente int64) ([]models.Cita, error) {
	return s.citas.FindByPaciente(ctx, idPaciente)
}

func (s *CitaService) ListCitasByMedico(ctx context.Context, idMedico int64) ([]models.Cita, error) {
	return s.citas.FindByMedico(ctx, idMedico)
}

func (s *CitaService) CreateCita(ctx context.Context, c models.Cita) (*models.Cita, error) {
	c.IDCita = 0
	if c.Estado == "" {
		c.Estado = models.EstadoCitaProgramada
	}
	if c.Fecha.IsZero() {
		c.Fecha = s.hoy()
	}
	if err := s.citas.Save(ctx, &c); err != nil {
		return nil, err
	}
	s.log.Info("Cita programada",
		zap.Int64("id_cita", c.IDCita),
		zap.Int64("id_paciente", c.IDPaciente),
		zap.Int64("id_medico", c.IDMedico),
	)
	return &c, nil
}

func (s *CitaService) UpdateCita(ctx context.Context, id int64, c models.Cita) (*models.Cita, error) {
	existe, err := s.citas.ExistsByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !existe {
		return nil, ErrNotFound
	}
	c.IDCita = id
	if err := s.citas.Save(ctx, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// ChangeEstado cambia solo el estado; los valores permitidos se validan en la API
func (s *CitaService) ChangeEstado(ctx context.Context, id int64, estado string) (*models.Cita, error) {
	c, err := s.citas.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c.Estado = estado
	if err := s.citas.Save(ctx, c); err != nil {
		return nil, err
	}
	s.log.Info("Estado de cita cambiado", zap.Int64("id_cita", id), zap.String("estado", estado))
	return c, nil
}

func (s *CitaService) DeleteCita(ctx context.Context, id int64) (bool, error) {
	existe, err := s.citas.ExistsByID(ctx, id)
	if err != nil || !existe {
		return false, err
	}
	if err := s.citas.DeleteByID(ctx, id); err != nil {
		return false, err
	}
	s.log.Info("Cita eliminada", zap.Int64("id_cita", id))
	return true, nil
}
