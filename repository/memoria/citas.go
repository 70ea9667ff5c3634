package memoria

import (
	"context"

	"github.com/lizet96/hospital-system/models"
	"github.com/lizet96/hospital-system/repository"
)

type CitaRepo struct {
	s *Store
}

func (r *CitaRepo) FindAll(ctx context.Context) ([]models.Cita, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.t.citas.ordenadas(nil), nil
}

func (r *CitaRepo) FindByID(ctx context.Context, id int64) (*models.Cita, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c, ok := r.s.t.citas.filas[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &c, nil
}

func (r *CitaRepo) FindByPaciente(ctx context.Context, idPaciente int64) ([]models.Cita, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.t.citas.ordenadas(func(c models.Cita) bool { return c.IDPaciente == idPaciente }), nil
}

func (r *CitaRepo) FindByMedico(ctx context.Context, idMedico int64) ([]models.Cita, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.t.citas.ordenadas(func(c models.Cita) bool { return c.IDMedico == idMedico }), nil
}

func (r *CitaRepo) ExistsByID(ctx context.Context, id int64) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	_, ok := r.s.t.citas.filas[id]
	return ok, nil
}

func (r *CitaRepo) Save(ctx context.Context, c *models.Cita) error {
	defer r.s.escribir(ctx)()
	t := r.s.t.citas
	if err := t.asignar(&c.IDCita); err != nil {
		return err
	}
	t.filas[c.IDCita] = *c
	return nil
}

func (r *CitaRepo) DeleteByID(ctx context.Context, id int64) error {
	defer r.s.escribir(ctx)()
	delete(r.s.t.citas.filas, id)
	return nil
}

type ConsultaRepo struct {
	s *Store
}

func copiarConsulta(c models.Consulta) models.Consulta {
	if c.IDCita != nil {
		id := *c.IDCita
		c.IDCita = &id
	}
	return c
}

func (r *ConsultaRepo) FindAll(ctx context.Context) ([]models.Consulta, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	filas := r.s.t.consultas.ordenadas(nil)
	for i := range filas {
		filas[i] = copiarConsulta(filas[i])
	}
	return filas, nil
}

func (r *ConsultaRepo) FindByID(ctx context.Context, id int64) (*models.Consulta, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c, ok := r.s.t.consultas.filas[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	c = copiarConsulta(c)
	return &c, nil
}

func (r *ConsultaRepo) FindByPaciente(ctx context.Context, idPaciente int64) ([]models.Consulta, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	filas := r.s.t.consultas.ordenadas(func(c models.Consulta) bool { return c.IDPaciente == idPaciente })
	for i := range filas {
		filas[i] = copiarConsulta(filas[i])
	}
	return filas, nil
}

func (r *ConsultaRepo) ExistsByID(ctx context.Context, id int64) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	_, ok := r.s.t.consultas.filas[id]
	return ok, nil
}

func (r *ConsultaRepo) Save(ctx context.Context, c *models.Consulta) error {
	defer r.s.escribir(ctx)()
	t := r.s.t.consultas
	if err := t.asignar(&c.IDConsulta); err != nil {
		return err
	}
	t.filas[c.IDConsulta] = copiarConsulta(*c)
	return nil
}

func (r *ConsultaRepo) DeleteByID(ctx context.Context, id int64) error {
	defer r.s.escribir(ctx)()
	delete(r.s.t.consultas.filas, id)
	return nil
}
