package memoria

import (
	"context"

	"github.com/lizet96/hospital-system/models"
	"github.com/lizet96/hospital-system/repository"
)

func copiarPaciente(p models.Paciente) models.Paciente {
	p.Direccion = clonarTexto(p.Direccion)
	p.Telefono = clonarTexto(p.Telefono)
	p.Correo = clonarTexto(p.Correo)
	return p
}

type PacienteRepo struct {
	s *Store
}

func (r *PacienteRepo) FindAll(ctx context.Context) ([]models.Paciente, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	filas := r.s.t.pacientes.ordenadas(nil)
	for i := range filas {
		filas[i] = copiarPaciente(filas[i])
	}
	return filas, nil
}

func (r *PacienteRepo) FindByID(ctx context.Context, id int64) (*models.Paciente, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.t.pacientes.filas[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	p = copiarPaciente(p)
	return &p, nil
}

func (r *PacienteRepo) FindByDni(ctx context.Context, dni string) (*models.Paciente, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, p := range r.s.t.pacientes.ordenadas(nil) {
		if p.Dni == dni {
			p = copiarPaciente(p)
			return &p, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *PacienteRepo) ExistsByID(ctx context.Context, id int64) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	_, ok := r.s.t.pacientes.filas[id]
	return ok, nil
}

func (r *PacienteRepo) Save(ctx context.Context, p *models.Paciente) error {
	defer r.s.escribir(ctx)()
	t := r.s.t.pacientes
	for id, otro := range t.filas {
		if id != p.IDPaciente && otro.Dni == p.Dni {
			return repository.ErrDuplicate
		}
	}
	if err := t.asignar(&p.IDPaciente); err != nil {
		return err
	}
	t.filas[p.IDPaciente] = copiarPaciente(*p)
	return nil
}

func (r *PacienteRepo) DeleteByID(ctx context.Context, id int64) error {
	defer r.s.escribir(ctx)()
	delete(r.s.t.pacientes.filas, id)
	return nil
}

type HistoriaClinicaRepo struct {
	s *Store
}

func (r *HistoriaClinicaRepo) FindByID(ctx context.Context, id int64) (*models.HistoriaClinica, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	h, ok := r.s.t.historias.filas[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &h, nil
}

func (r *HistoriaClinicaRepo) FindByPaciente(ctx context.Context, idPaciente int64) (*models.HistoriaClinica, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, h := range r.s.t.historias.ordenadas(nil) {
		if h.IDPaciente == idPaciente {
			return &h, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *HistoriaClinicaRepo) Save(ctx context.Context, h *models.HistoriaClinica) error {
	defer r.s.escribir(ctx)()
	t := r.s.t.historias
	for id, otra := range t.filas {
		if id != h.IDHistoria && otra.IDPaciente == h.IDPaciente {
			return repository.ErrDuplicate
		}
	}
	if err := t.asignar(&h.IDHistoria); err != nil {
		return err
	}
	t.filas[h.IDHistoria] = *h
	return nil
}

// AntecedenteRepo exige que la historia exista, igual que la FK en PostgreSQL
type AntecedenteRepo struct {
	s *Store
}

func (r *AntecedenteRepo) FindByHistoria(ctx context.Context, idHistoria int64) ([]models.AntecedenteMedico, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.t.antecedentes.ordenadas(func(a models.AntecedenteMedico) bool {
		return a.IDHistoria == idHistoria
	}), nil
}

func (r *AntecedenteRepo) Save(ctx context.Context, a *models.AntecedenteMedico) error {
	defer r.s.escribir(ctx)()
	if _, ok := r.s.t.historias.filas[a.IDHistoria]; !ok {
		return repository.ErrReferencia
	}
	t := r.s.t.antecedentes
	if err := t.asignar(&a.IDAntecedente); err != nil {
		return err
	}
	t.filas[a.IDAntecedente] = *a
	return nil
}
