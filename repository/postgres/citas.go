package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/lizet96/hospital-system/models"
)

const citaCols = `id_cita, id_paciente, id_medico, fecha, hora, motivo, estado`

type CitaRepo struct{ base }

func scanCita(row pgx.Row) (*models.Cita, error) {
	var c models.Cita
	if err := row.Scan(&c.IDCita, &c.IDPaciente, &c.IDMedico, &c.Fecha, &c.Hora, &c.Motivo, &c.Estado); err != nil {
		return nil, mapError(err)
	}
	return &c, nil
}

func (r *CitaRepo) FindAll(ctx context.Context) ([]models.Cita, error) {
	rows, err := r.conn(ctx).Query(ctx, `SELECT `+citaCols+` FROM cita ORDER BY id_cita`)
	return collect(rows, err, scanCita)
}

func (r *CitaRepo) FindByID(ctx context.Context, id int64) (*models.Cita, error) {
	return scanCita(r.conn(ctx).QueryRow(ctx, `SELECT `+citaCols+` FROM cita WHERE id_cita = $1`, id))
}

func (r *CitaRepo) FindByPaciente(ctx context.Context, idPaciente int64) ([]models.Cita, error) {
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+citaCols+` FROM cita WHERE id_paciente = $1 ORDER BY id_cita`, idPaciente)
	return collect(rows, err, scanCita)
}

func (r *CitaRepo) FindByMedico(ctx context.Context, idMedico int64) ([]models.Cita, error) {
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+citaCols+` FROM cita WHERE id_medico = $1 ORDER BY id_cita`, idMedico)
	return collect(rows, err, scanCita)
}

func (r *CitaRepo) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS(SELECT 1 FROM cita WHERE id_cita = $1)`, id)
}

func (r *CitaRepo) Save(ctx context.Context, c *models.Cita) error {
	if c.IDCita == 0 {
		err := r.conn(ctx).QueryRow(ctx, `
			INSERT INTO cita (id_paciente, id_medico, fecha, hora, motivo, estado)
			VALUES ($1, $2, $3, $4, $5, $6) RETURNING id_cita`,
			c.IDPaciente, c.IDMedico, c.Fecha, c.Hora, c.Motivo, c.Estado,
		).Scan(&c.IDCita)
		return mapError(err)
	}
	return r.update(ctx, `
		UPDATE cita SET id_paciente = $2, id_medico = $3, fecha = $4, hora = $5, motivo = $6, estado = $7
		WHERE id_cita = $1`,
		c.IDCita, c.IDPaciente, c.IDMedico, c.Fecha, c.Hora, c.Motivo, c.Estado)
}

func (r *CitaRepo) DeleteByID(ctx context.Context, id int64) error {
	return r.exec(ctx, `DELETE FROM cita WHERE id_cita = $1`, id)
}

const consultaCols = `id_consulta, id_cita, id_paciente, id_medico, fecha, hora, motivo_consulta, observaciones`

type ConsultaRepo struct{ base }

func scanConsulta(row pgx.Row) (*models.Consulta, error) {
	var c models.Consulta
	err := row.Scan(&c.IDConsulta, &c.IDCita, &c.IDPaciente, &c.IDMedico, &c.Fecha, &c.Hora,
		&c.MotivoConsulta, &c.Observaciones)
	if err != nil {
		return nil, mapError(err)
	}
	return &c, nil
}

func (r *ConsultaRepo) FindAll(ctx context.Context) ([]models.Consulta, error) {
	rows, err := r.conn(ctx).Query(ctx, `SELECT `+consultaCols+` FROM consulta ORDER BY id_consulta`)
	return collect(rows, err, scanConsulta)
}

func (r *ConsultaRepo) FindByID(ctx context.Context, id int64) (*models.Consulta, error) {
	return scanConsulta(r.conn(ctx).QueryRow(ctx, `SELECT `+consultaCols+` FROM consulta WHERE id_consulta = $1`, id))
}

func (r *ConsultaRepo) FindByPaciente(ctx context.Context, idPaciente int64) ([]models.Consulta, error) {
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+consultaCols+` FROM consulta WHERE id_paciente = $1 ORDER BY id_consulta`, idPaciente)
	return collect(rows, err, scanConsulta)
}

func (r *ConsultaRepo) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS(SELECT 1 FROM consulta WHERE id_consulta = $1)`, id)
}

func (r *ConsultaRepo) Save(ctx context.Context, c *models.Consulta) error {
	if c.IDConsulta == 0 {
		err := r.conn(ctx).QueryRow(ctx, `
			INSERT INTO consulta (id_cita, id_paciente, id_medico, fecha, hora, motivo_consulta, observaciones)
			VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id_consulta`,
			c.IDCita, c.IDPaciente, c.IDMedico, c.Fecha, c.Hora, c.MotivoConsulta, c.Observaciones,
		).Scan(&c.IDConsulta)
		return mapError(err)
	}
	return r.update(ctx, `
		UPDATE consulta SET id_cita = $2, id_paciente = $3, id_medico = $4, fecha = $5, hora = $6,
			motivo_consulta = $7, observaciones = $8
		WHERE id_consulta = $1`,
		c.IDConsulta, c.IDCita, c.IDPaciente, c.IDMedico, c.Fecha, c.Hora, c.MotivoConsulta, c.Observaciones)
}

func (r *ConsultaRepo) DeleteByID(ctx context.Context, id int64) error {
	return r.exec(ctx, `DELETE FROM consulta WHERE id_consulta = $1`, id)
}
