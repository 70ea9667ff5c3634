package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/lizet96/hospital-system/models"
)

const pacienteCols = `id_paciente, dni, nombres, apellidos, fecha_nacimiento,
	COALESCE(sexo, ''), direccion, telefono, correo, estado`

type PacienteRepo struct{ base }

func scanPaciente(row pgx.Row) (*models.Paciente, error) {
	var p models.Paciente
	err := row.Scan(&p.IDPaciente, &p.Dni, &p.Nombres, &p.Apellidos, &p.FechaNacimiento,
		&p.Sexo, &p.Direccion, &p.Telefono, &p.Correo, &p.Estado)
	if err != nil {
		return nil, mapError(err)
	}
	return &p, nil
}

func (r *PacienteRepo) FindAll(ctx context.Context) ([]models.Paciente, error) {
	rows, err := r.conn(ctx).Query(ctx, `SELECT `+pacienteCols+` FROM paciente ORDER BY id_paciente`)
	return collect(rows, err, scanPaciente)
}

func (r *PacienteRepo) FindByID(ctx context.Context, id int64) (*models.Paciente, error) {
	return scanPaciente(r.conn(ctx).QueryRow(ctx, `SELECT `+pacienteCols+` FROM paciente WHERE id_paciente = $1`, id))
}

func (r *PacienteRepo) FindByDni(ctx context.Context, dni string) (*models.Paciente, error) {
	return scanPaciente(r.conn(ctx).QueryRow(ctx, `SELECT `+pacienteCols+` FROM paciente WHERE dni = $1`, dni))
}

func (r *PacienteRepo) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS(SELECT 1 FROM paciente WHERE id_paciente = $1)`, id)
}

func (r *PacienteRepo) Save(ctx context.Context, p *models.Paciente) error {
	if p.IDPaciente == 0 {
		err := r.conn(ctx).QueryRow(ctx, `
			INSERT INTO paciente (dni, nombres, apellidos, fecha_nacimiento, sexo, direccion, telefono, correo, estado)
			VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $7, $8, $9)
			RETURNING id_paciente`,
			p.Dni, p.Nombres, p.Apellidos, p.FechaNacimiento, p.Sexo, p.Direccion, p.Telefono, p.Correo, p.Estado,
		).Scan(&p.IDPaciente)
		return mapError(err)
	}
	return r.update(ctx, `
		UPDATE paciente SET dni = $2, nombres = $3, apellidos = $4, fecha_nacimiento = $5,
			sexo = NULLIF($6, ''), direccion = $7, telefono = $8, correo = $9, estado = $10
		WHERE id_paciente = $1`,
		p.IDPaciente, p.Dni, p.Nombres, p.Apellidos, p.FechaNacimiento, p.Sexo, p.Direccion, p.Telefono, p.Correo, p.Estado)
}

func (r *PacienteRepo) DeleteByID(ctx context.Context, id int64) error {
	return r.exec(ctx, `DELETE FROM paciente WHERE id_paciente = $1`, id)
}

type HistoriaClinicaRepo struct{ base }

const historiaCols = `id_historia, id_paciente, fecha_apertura, observaciones`

func scanHistoria(row pgx.Row) (*models.HistoriaClinica, error) {
	var h models.HistoriaClinica
	if err := row.Scan(&h.IDHistoria, &h.IDPaciente, &h.FechaApertura, &h.Observaciones); err != nil {
		return nil, mapError(err)
	}
	return &h, nil
}

func (r *HistoriaClinicaRepo) FindByID(ctx context.Context, id int64) (*models.HistoriaClinica, error) {
	return scanHistoria(r.conn(ctx).QueryRow(ctx, `SELECT `+historiaCols+` FROM historia_clinica WHERE id_historia = $1`, id))
}

func (r *HistoriaClinicaRepo) FindByPaciente(ctx context.Context, idPaciente int64) (*models.HistoriaClinica, error) {
	return scanHistoria(r.conn(ctx).QueryRow(ctx, `SELECT `+historiaCols+` FROM historia_clinica WHERE id_paciente = $1`, idPaciente))
}

func (r *HistoriaClinicaRepo) Save(ctx context.Context, h *models.HistoriaClinica) error {
	if h.IDHistoria == 0 {
		err := r.conn(ctx).QueryRow(ctx, `
			INSERT INTO historia_clinica (id_paciente, fecha_apertura, observaciones)
			VALUES ($1, $2, $3) RETURNING id_historia`,
			h.IDPaciente, h.FechaApertura, h.Observaciones,
		).Scan(&h.IDHistoria)
		return mapError(err)
	}
	return r.update(ctx, `
		UPDATE historia_clinica SET id_paciente = $2, fecha_apertura = $3, observaciones = $4
		WHERE id_historia = $1`,
		h.IDHistoria, h.IDPaciente, h.FechaApertura, h.Observaciones)
}

type AntecedenteRepo struct{ base }

func scanAntecedente(row pgx.Row) (*models.AntecedenteMedico, error) {
	var a models.AntecedenteMedico
	if err := row.Scan(&a.IDAntecedente, &a.IDHistoria, &a.Tipo, &a.Descripcion, &a.FechaRegistro); err != nil {
		return nil, mapError(err)
	}
	return &a, nil
}

func (r *AntecedenteRepo) FindByHistoria(ctx context.Context, idHistoria int64) ([]models.AntecedenteMedico, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT id_antecedente, id_historia, tipo, descripcion, fecha_registro
		FROM antecedente_medico WHERE id_historia = $1 ORDER BY id_antecedente`, idHistoria)
	return collect(rows, err, scanAntecedente)
}

func (r *AntecedenteRepo) Save(ctx context.Context, a *models.AntecedenteMedico) error {
	if a.IDAntecedente == 0 {
		err := r.conn(ctx).QueryRow(ctx, `
			INSERT INTO antecedente_medico (id_historia, tipo, descripcion, fecha_registro)
			VALUES ($1, $2, $3, $4) RETURNING id_antecedente`,
			a.IDHistoria, a.Tipo, a.Descripcion, a.FechaRegistro,
		).Scan(&a.IDAntecedente)
		return mapError(err)
	}
	return r.update(ctx, `
		UPDATE antecedente_medico SET id_historia = $2, tipo = $3, descripcion = $4, fecha_registro = $5
		WHERE id_antecedente = $1`,
		a.IDAntecedente, a.IDHistoria, a.Tipo, a.Descripcion, a.FechaRegistro)
}
