package memoria

import (
	"context"

	"github.com/lizet96/hospital-system/models"
	"github.com/lizet96/hospital-system/repository"
)

// medicoFila guarda solo el id de la especialidad; se resuelve al leer
type medicoFila struct {
	models.Medico
	idEspecialidad *int64
}

func nuevaMedicoFila(m models.Medico) medicoFila {
	m.Telefono = clonarTexto(m.Telefono)
	m.Correo = clonarTexto(m.Correo)
	fila := medicoFila{idEspecialidad: m.IDEspecialidad()}
	m.Especialidad = nil
	fila.Medico = m
	return fila
}

// medico arma el registro público; llamar con el mutex tomado
func (s *Store) medico(f medicoFila) models.Medico {
	m := f.Medico
	m.Telefono = clonarTexto(m.Telefono)
	m.Correo = clonarTexto(m.Correo)
	if f.idEspecialidad != nil {
		if e, ok := s.t.especialidades.filas[*f.idEspecialidad]; ok {
			m.Especialidad = &e
		}
	}
	return m
}

type MedicoRepo struct {
	s *Store
}

func (r *MedicoRepo) FindAll(ctx context.Context) ([]models.Medico, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	filas := r.s.t.medicos.ordenadas(nil)
	out := make([]models.Medico, 0, len(filas))
	for _, f := range filas {
		out = append(out, r.s.medico(f))
	}
	return out, nil
}

func (r *MedicoRepo) FindByID(ctx context.Context, id int64) (*models.Medico, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	f, ok := r.s.t.medicos.filas[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	m := r.s.medico(f)
	return &m, nil
}

func (r *MedicoRepo) FindByColegiatura(ctx context.Context, colegiatura string) (*models.Medico, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, f := range r.s.t.medicos.ordenadas(nil) {
		if f.Colegiatura == colegiatura {
			m := r.s.medico(f)
			return &m, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *MedicoRepo) ExistsByID(ctx context.Context, id int64) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	_, ok := r.s.t.medicos.filas[id]
	return ok, nil
}

func (r *MedicoRepo) Save(ctx context.Context, m *models.Medico) error {
	defer r.s.escribir(ctx)()
	fila := nuevaMedicoFila(*m)
	if fila.idEspecialidad != nil {
		if _, ok := r.s.t.especialidades.filas[*fila.idEspecialidad]; !ok {
			return repository.ErrReferencia
		}
	}
	t := r.s.t.medicos
	for id, otro := range t.filas {
		if id != m.IDMedico && otro.Colegiatura == m.Colegiatura {
			return repository.ErrDuplicate
		}
	}
	if err := t.asignar(&m.IDMedico); err != nil {
		return err
	}
	fila.IDMedico = m.IDMedico
	t.filas[m.IDMedico] = fila
	*m = r.s.medico(fila)
	return nil
}

func (r *MedicoRepo) DeleteByID(ctx context.Context, id int64) error {
	defer r.s.escribir(ctx)()
	delete(r.s.t.medicos.filas, id)
	return nil
}

type EspecialidadRepo struct {
	s *Store
}

func (r *EspecialidadRepo) FindAll(ctx context.Context) ([]models.Especialidad, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.t.especialidades.ordenadas(nil), nil
}

func (r *EspecialidadRepo) FindByID(ctx context.Context, id int64) (*models.Especialidad, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	e, ok := r.s.t.especialidades.filas[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &e, nil
}

func (r *EspecialidadRepo) ExistsByID(ctx context.Context, id int64) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	_, ok := r.s.t.especialidades.filas[id]
	return ok, nil
}

func (r *EspecialidadRepo) Save(ctx context.Context, e *models.Especialidad) error {
	defer r.s.escribir(ctx)()
	t := r.s.t.especialidades
	if err := t.asignar(&e.IDEspecialidad); err != nil {
		return err
	}
	t.filas[e.IDEspecialidad] = *e
	return nil
}

// DeleteByID deja a los médicos de la especialidad sin especialidad (ON DELETE SET NULL)
func (r *EspecialidadRepo) DeleteByID(ctx context.Context, id int64) error {
	defer r.s.escribir(ctx)()
	if _, ok := r.s.t.especialidades.filas[id]; !ok {
		return nil
	}
	delete(r.s.t.especialidades.filas, id)
	for mid, f := range r.s.t.medicos.filas {
		if f.idEspecialidad != nil && *f.idEspecialidad == id {
			f.idEspecialidad = nil
			r.s.t.medicos.filas[mid] = f
		}
	}
	return nil
}
