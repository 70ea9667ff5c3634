package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/lizet96/hospital-system/models"
)

const medicoSelect = `
	SELECT m.id_medico, m.nombres, m.apellidos, m.colegiatura, m.telefono, m.correo, m.estado,
		e.id_especialidad, e.nombre, e.descripcion
	FROM medico m
	LEFT JOIN especialidad e ON e.id_especialidad = m.id_especialidad`

type MedicoRepo struct{ base }

func scanMedico(row pgx.Row) (*models.Medico, error) {
	var (
		m           models.Medico
		idEsp       *int64
		nombreEsp   *string
		descripcion *string
	)
	err := row.Scan(&m.IDMedico, &m.Nombres, &m.Apellidos, &m.Colegiatura, &m.Telefono, &m.Correo, &m.Estado,
		&idEsp, &nombreEsp, &descripcion)
	if err != nil {
		return nil, mapError(err)
	}
	if idEsp != nil {
		m.Especialidad = &models.Especialidad{IDEspecialidad: *idEsp}
		if nombreEsp != nil {
			m.Especialidad.Nombre = *nombreEsp
		}
		if descripcion != nil {
			m.Especialidad.Descripcion = *descripcion
		}
	}
	return &m, nil
}

func (r *MedicoRepo) FindAll(ctx context.Context) ([]models.Medico, error) {
	rows, err := r.conn(ctx).Query(ctx, medicoSelect+` ORDER BY m.id_medico`)
	return collect(rows, err, scanMedico)
}

func (r *MedicoRepo) FindByID(ctx context.Context, id int64) (*models.Medico, error) {
	return scanMedico(r.conn(ctx).QueryRow(ctx, medicoSelect+` WHERE m.id_medico = $1`, id))
}

func (r *MedicoRepo) FindByColegiatura(ctx context.Context, colegiatura string) (*models.Medico, error) {
	return scanMedico(r.conn(ctx).QueryRow(ctx, medicoSelect+` WHERE m.colegiatura = $1`, colegiatura))
}

func (r *MedicoRepo) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS(SELECT 1 FROM medico WHERE id_medico = $1)`, id)
}

// Save guarda el médico y recarga la especialidad referenciada
func (r *MedicoRepo) Save(ctx context.Context, m *models.Medico) error {
	if m.IDMedico == 0 {
		err := r.conn(ctx).QueryRow(ctx, `
			INSERT INTO medico (nombres, apellidos, colegiatura, telefono, correo, estado, id_especialidad)
			VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id_medico`,
			m.Nombres, m.Apellidos, m.Colegiatura, m.Telefono, m.Correo, m.Estado, m.IDEspecialidad(),
		).Scan(&m.IDMedico)
		if err != nil {
			return mapError(err)
		}
	} else {
		err := r.update(ctx, `
			UPDATE medico SET nombres = $2, apellidos = $3, colegiatura = $4, telefono = $5,
				correo = $6, estado = $7, id_especialidad = $8
			WHERE id_medico = $1`,
			m.IDMedico, m.Nombres, m.Apellidos, m.Colegiatura, m.Telefono, m.Correo, m.Estado, m.IDEspecialidad())
		if err != nil {
			return err
		}
	}
	guardado, err := r.FindByID(ctx, m.IDMedico)
	if err != nil {
		return err
	}
	*m = *guardado
	return nil
}

func (r *MedicoRepo) DeleteByID(ctx context.Context, id int64) error {
	return r.exec(ctx, `DELETE FROM medico WHERE id_medico = $1`, id)
}

type EspecialidadRepo struct{ base }

func scanEspecialidad(row pgx.Row) (*models.Especialidad, error) {
	var e models.Especialidad
	if err := row.Scan(&e.IDEspecialidad, &e.Nombre, &e.Descripcion); err != nil {
		return nil, mapError(err)
	}
	return &e, nil
}

func (r *EspecialidadRepo) FindAll(ctx context.Context) ([]models.Especialidad, error) {
	rows, err := r.conn(ctx).Query(ctx, `SELECT id_especialidad, nombre, descripcion FROM especialidad ORDER BY id_especialidad`)
	return collect(rows, err, scanEspecialidad)
}

func (r *EspecialidadRepo) FindByID(ctx context.Context, id int64) (*models.Especialidad, error) {
	return scanEspecialidad(r.conn(ctx).QueryRow(ctx,
		`SELECT id_especialidad, nombre, descripcion FROM especialidad WHERE id_especialidad = $1`, id))
}

func (r *EspecialidadRepo) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS(SELECT 1 FROM especialidad WHERE id_especialidad = $1)`, id)
}

func (r *EspecialidadRepo) Save(ctx context.Context, e *models.Especialidad) error {
	if e.IDEspecialidad == 0 {
		err := r.conn(ctx).QueryRow(ctx,
			`INSERT INTO especialidad (nombre, descripcion) VALUES ($1, $2) RETURNING id_especialidad`,
			e.Nombre, e.Descripcion,
		).Scan(&e.IDEspecialidad)
		return mapError(err)
	}
	return r.update(ctx, `UPDATE especialidad SET nombre = $2, descripcion = $3 WHERE id_especialidad = $1`,
		e.IDEspecialidad, e.Nombre, e.Descripcion)
}

func (r *EspecialidadRepo) DeleteByID(ctx context.Context, id int64) error {
	return r.exec(ctx, `DELETE FROM especialidad WHERE id_especialidad = $1`, id)
}
