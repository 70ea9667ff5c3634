// Package postgres implementa los repositorios sobre PostgreSQL con pgx.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lizet96/hospital-system/database"
	"github.com/lizet96/hospital-system/repository"
)

type queryable interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type base struct {
	pool *pgxpool.Pool
}

// conn usa la transacción del contexto si la hay
func (b base) conn(ctx context.Context) queryable {
	if tx := database.TxFromContext(ctx); tx != nil {
		return tx
	}
	return b.pool
}

func (b base) exists(ctx context.Context, query string, id int64) (bool, error) {
	var ok bool
	if err := b.conn(ctx).QueryRow(ctx, query, id).Scan(&ok); err != nil {
		return false, mapError(err)
	}
	return ok, nil
}

func (b base) exec(ctx context.Context, query string, args ...any) error {
	_, err := b.conn(ctx).Exec(ctx, query, args...)
	return mapError(err)
}

// update ejecuta un UPDATE por id; sin filas afectadas devuelve ErrNotFound
func (b base) update(ctx context.Context, query string, args ...any) error {
	tag, err := b.conn(ctx).Exec(ctx, query, args...)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// mapError traduce los errores de pgx a los del paquete repository
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return repository.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return fmt.Errorf("%w: %s", repository.ErrDuplicate, pgErr.ConstraintName)
		case "23503":
			return fmt.Errorf("%w: %s", repository.ErrReferencia, pgErr.ConstraintName)
		}
	}
	return err
}

func collect[T any](rows pgx.Rows, err error, scan func(pgx.Row) (*T, error)) ([]T, error) {
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()
	out := []T{}
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *item)
	}
	return out, mapError(rows.Err())
}

// Transactor abre una transacción de pgx y la deja en el contexto
type Transactor struct {
	pool *pgxpool.Pool
}

func (t *Transactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return database.WithTx(ctx, t.pool, fn)
}

// New arma todos los repositorios sobre el pool
func New(pool *pgxpool.Pool) repository.Repositorios {
	b := base{pool: pool}
	return repository.Repositorios{
		Transactor:      &Transactor{pool: pool},
		Pacientes:       &PacienteRepo{b},
		Historias:       &HistoriaClinicaRepo{b},
		Antecedentes:    &AntecedenteRepo{b},
		Medicos:         &MedicoRepo{b},
		Especialidades:  &EspecialidadRepo{b},
		Facturas:        &FacturaRepo{b},
		DetallesFactura: &DetalleFacturaRepo{b},
		Citas:           &CitaRepo{b},
		Consultas:       &ConsultaRepo{b},
		Usuarios:        &UsuarioRepo{b},
	}
}
