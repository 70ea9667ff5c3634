package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/lizet96/hospital-system/models"
	"github.com/lizet96/hospital-system/repository"
)

// PacienteService gestiona pacientes, su historia clínica y antecedentes
type PacienteService struct {
	base
	tx           repository.Transactor
	pacientes    repository.PacienteRepository
	historias    repository.HistoriaClinicaRepository
	antecedentes repository.AntecedenteRepository
}

func NewPacienteService(
	tx repository.Transactor,
	pacientes repository.PacienteRepository,
	historias repository.HistoriaClinicaRepository,
	antecedentes repository.AntecedenteRepository,
	log *zap.Logger,
	opts ...Opcion,
) *PacienteService {
	return &PacienteService{
		base:         nuevaBase(log, "pacientes", opts),
		tx:           tx,
		pacientes:    pacientes,
		historias:    historias,
		antecedentes: antecedentes,
	}
}

func (s *PacienteService) ListPacientes(ctx context.Context) ([]models.Paciente, error) {
	return s.pacientes.FindAll(ctx)
}

func (s *PacienteService) GetPaciente(ctx context.Context, id int64) (*models.Paciente, error) {
	return s.pacientes.FindByID(ctx, id)
}

func (s *PacienteService) GetPacienteByDni(ctx context.Context, dni string) (*models.Paciente, error) {
	return s.pacientes.FindByDni(ctx, dni)
}

// CreatePaciente guarda el paciente y su historia clínica en una sola
// transacción; si cualquiera de las dos escrituras falla no queda nada.
func (s *PacienteService) CreatePaciente(ctx context.Context, p models.Paciente) (*models.Paciente, error) {
	p.IDPaciente = 0
	if p.Estado == "" {
		p.Estado = models.EstadoActivo
	}

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.pacientes.Save(ctx, &p); err != nil {
			return duplicado(err, "dni", p.Dni)
		}
		historia := models.HistoriaClinica{
			IDPaciente:    p.IDPaciente,
			FechaApertura: s.hoy(),
			Observaciones: models.ObservacionHistoriaAutomatica,
		}
		if err := s.historias.Save(ctx, &historia); err != nil {
			return fmt.Errorf("crear historia clínica: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Paciente creado", zap.Int64("id_paciente", p.IDPaciente))
	return &p, nil
}

func (s *PacienteService) UpdatePaciente(ctx context.Context, id int64, p models.Paciente) (*models.Paciente, error) {
	existe, err := s.pacientes.ExistsByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !existe {
		return nil, ErrNotFound
	}
	p.IDPaciente = id
	if err := s.pacientes.Save(ctx, &p); err != nil {
		return nil, duplicado(err, "dni", p.Dni)
	}
	s.log.Info("Paciente actualizado", zap.Int64("id_paciente", id))
	return &p, nil
}

// DeletePaciente borra solo el paciente; la historia clínica se conserva
func (s *PacienteService) DeletePaciente(ctx context.Context, id int64) (bool, error) {
	existe, err := s.pacientes.ExistsByID(ctx, id)
	if err != nil || !existe {
		return false, err
	}
	if err := s.pacientes.DeleteByID(ctx, id); err != nil {
		return false, err
	}
	s.log.Info("Paciente eliminado", zap.Int64("id_paciente", id))
	return true, nil
}

func (s *PacienteService) GetHistoriaByPaciente(ctx context.Context, idPaciente int64) (*models.HistoriaClinica, error) {
	return s.historias.FindByPaciente(ctx, idPaciente)
}

func (s *PacienteService) ListAntecedentes(ctx context.Context, idHistoria int64) ([]models.AntecedenteMedico, error) {
	return s.antecedentes.FindByHistoria(ctx, idHistoria)
}

// AddAntecedente no comprueba la historia: lo hace el almacén
func (s *PacienteService) AddAntecedente(ctx context.Context, a models.AntecedenteMedico) (*models.AntecedenteMedico, error) {
	a.IDAntecedente = 0
	if a.FechaRegistro.IsZero() {
		a.FechaRegistro = s.hoy()
	}
	if err := s.antecedentes.Save(ctx, &a); err != nil {
		return nil, err
	}
	s.log.Info("Antecedente registrado", zap.Int64("id_historia", a.IDHistoria), zap.String("tipo", a.Tipo))
	return &a, nil
}
