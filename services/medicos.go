package services

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/lizet96/hospital-system/models"
	"github.com/lizet96/hospital-system/repository"
)

// MedicoService gestiona médicos y especialidades. La colegiatura es única.
type MedicoService struct {
	base
	medicos        repository.MedicoRepository
	especialidades repository.EspecialidadRepository
}

func NewMedicoService(medicos repository.MedicoRepository, especialidades repository.EspecialidadRepository, log *zap.Logger, opts ...Opcion) *MedicoService {
	return &MedicoService{
		base:           nuevaBase(log, "medicos", opts),
		medicos:        medicos,
		especialidades: especialidades,
	}
}

func (s *MedicoService) ListMedicos(ctx context.Context) ([]models.Medico, error) {
	return s.medicos.FindAll(ctx)
}

func (s *MedicoService) GetMedico(ctx context.Context, id int64) (*models.Medico, error) {
	return s.medicos.FindByID(ctx, id)
}

// CreateMedico falla con DuplicateKeyError si la colegiatura ya existe
func (s *MedicoService) CreateMedico(ctx context.Context, m models.Medico) (*models.Medico, error) {
	if err := s.colegiaturaLibre(ctx, m.Colegiatura, 0); err != nil {
		return nil, err
	}
	m.IDMedico = 0
	if m.Estado == "" {
		m.Estado = models.EstadoActivo
	}
	if err := s.medicos.Save(ctx, &m); err != nil {
		return nil, duplicado(err, "colegiatura", m.Colegiatura)
	}
	s.log.Info("Médico creado", zap.Int64("id_medico", m.IDMedico), zap.String("colegiatura", m.Colegiatura))
	return &m, nil
}

// UpdateMedico reemplaza el registro completo. Conservar la propia
// colegiatura no cuenta como duplicado.
func (s *MedicoService) UpdateMedico(ctx context.Context, id int64, m models.Medico) (*models.Medico, error) {
	existe, err := s.medicos.ExistsByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !existe {
		return nil, ErrNotFound
	}
	if err := s.colegiaturaLibre(ctx, m.Colegiatura, id); err != nil {
		return nil, err
	}
	m.IDMedico = id
	if err := s.medicos.Save(ctx, &m); err != nil {
		return nil, duplicado(err, "colegiatura", m.Colegiatura)
	}
	s.log.Info("Médico actualizado", zap.Int64("id_medico", id))
	return &m, nil
}

// DeleteMedico devuelve false si el médico no existía
func (s *MedicoService) DeleteMedico(ctx context.Context, id int64) (bool, error) {
	existe, err := s.medicos.ExistsByID(ctx, id)
	if err != nil || !existe {
		return false, err
	}
	if err := s.medicos.DeleteByID(ctx, id); err != nil {
		return false, err
	}
	s.log.Info("Médico eliminado", zap.Int64("id_medico", id))
	return true, nil
}

// colegiaturaLibre comprueba que ningún otro médico (distinto de propio) la use
func (s *MedicoService) colegiaturaLibre(ctx context.Context, colegiatura string, propio int64) error {
	otro, err := s.medicos.FindByColegiatura(ctx, colegiatura)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if otro.IDMedico != propio {
		return &DuplicateKeyError{Campo: "colegiatura", Valor: colegiatura}
	}
	return nil
}

func (s *MedicoService) ListEspecialidades(ctx context.Context) ([]models.Especialidad, error) {
	return s.especialidades.FindAll(ctx)
}

func (s *MedicoService) GetEspecialidad(ctx context.Context, id int64) (*models.Especialidad, error) {
	return s.especialidades.FindByID(ctx, id)
}

func (s *MedicoService) CreateEspecialidad(ctx context.Context, e models.Especialidad) (*models.Especialidad, error) {
	e.IDEspecialidad = 0
	if err := s.especialidades.Save(ctx, &e); err != nil {
		return nil, err
	}
	s.log.Info("Especialidad creada", zap.Int64("id_especialidad", e.IDEspecialidad))
	return &e, nil
}

func (s *MedicoService) UpdateEspecialidad(ctx context.Context, id int64, e models.Especialidad) (*models.Especialidad, error) {
	existe, err := s.especialidades.ExistsByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !existe {
		return nil, ErrNotFound
	}
	e.IDEspecialidad = id
	if err := s.especialidades.Save(ctx, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *MedicoService) DeleteEspecialidad(ctx context.Context, id int64) (bool, error) {
	existe, err := s.especialidades.ExistsByID(ctx, id)
	if err != nil || !existe {
		return false, err
	}
	if err := s.especialidades.DeleteByID(ctx, id); err != nil {
		return false, err
	}
	s.log.Info("Especialidad eliminada", zap.Int64("id_especialidad", id))
	return true, nil
}
