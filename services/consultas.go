package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/lizet96/hospital-system/models"
	"github.com/lizet96/hospital-system/repository"
)

type ConsultaService struct {
	base
	consultas repository.ConsultaRepository
}

func NewConsultaService(consultas repository.ConsultaRepository, log *zap.Logger, opts ...Opcion) *ConsultaService {
	return &ConsultaService{base: nuevaBase(log, "consultas", opts), consultas: consultas}
}

func (s *ConsultaService) ListConsultas(ctx context.Context) ([]models.Consulta, error) {
	return s.consultas.FindAll(ctx)
}

func (s *ConsultaService) GetConsulta(ctx context.Context, id int64) (*models.Consulta, error) {
	return s.consultas.FindByID(ctx, id)
}

func (s *ConsultaService) ListConsultasByPaciente(ctx context.Context, idPaciente int64) ([]models.Consulta, error) {
	return s.consultas.FindByPaciente(ctx, idPaciente)
}

func (s *ConsultaService) CreateConsulta(ctx context.Context, c models.Consulta) (*models.Consulta, error) {
	c.IDConsulta = 0
	if c.Fecha.IsZero() {
		c.Fecha = s.hoy()
	}
	if err := s.consultas.Save(ctx, &c); err != nil {
		return nil, err
	}
	s.log.Info("Consulta registrada", zap.Int64("id_consulta", c.IDConsulta), zap.Int64("id_paciente", c.IDPaciente))
	return &c, nil
}

func (s *ConsultaService) UpdateConsulta(ctx context.Context, id int64, c models.Consulta) (*models.Consulta, error) {
	existe, err := s.consultas.ExistsByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !existe {
		return nil, ErrNotFound
	}
	c.IDConsulta = id
	if err := s.consultas.Save(ctx, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *ConsultaService) DeleteConsulta(ctx context.Context, id int64) (bool, error) {
	existe, err := s.consultas.ExistsByID(ctx, id)
	if err != nil || !existe {
		return false, err
	}
	if err := s.consultas.DeleteByID(ctx, id); err != nil {
		return false, err
	}
	s.log.Info("Consulta eliminada", zap.Int64("id_consulta", id))
	return true, nil
}
