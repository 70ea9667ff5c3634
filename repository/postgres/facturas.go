package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/lizet96/hospital-system/models"
)

const facturaCols = `id_factura, id_paciente, fecha_emision, total, estado`

type FacturaRepo struct{ base }

func scanFactura(row pgx.Row) (*models.Factura, error) {
	var f models.Factura
	if err := row.Scan(&f.IDFactura, &f.IDPaciente, &f.FechaEmision, &f.Total, &f.Estado); err != nil {
		return nil, mapError(err)
	}
	return &f, nil
}

func (r *FacturaRepo) FindAll(ctx context.Context) ([]models.Factura, error) {
	rows, err := r.conn(ctx).Query(ctx, `SELECT `+facturaCols+` FROM factura ORDER BY id_factura`)
	return collect(rows, err, scanFactura)
}

func (r *FacturaRepo) FindByID(ctx context.Context, id int64) (*models.Factura, error) {
	return scanFactura(r.conn(ctx).QueryRow(ctx, `SELECT `+facturaCols+` FROM factura WHERE id_factura = $1`, id))
}

func (r *FacturaRepo) FindByPaciente(ctx context.Context, idPaciente int64) ([]models.Factura, error) {
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+facturaCols+` FROM factura WHERE id_paciente = $1 ORDER BY id_factura`, idPaciente)
	return collect(rows, err, scanFactura)
}

func (r *FacturaRepo) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS(SELECT 1 FROM factura WHERE id_factura = $1)`, id)
}

func (r *FacturaRepo) Save(ctx context.Context, f *models.Factura) error {
	if f.IDFactura == 0 {
		err := r.conn(ctx).QueryRow(ctx, `
			INSERT INTO factura (id_paciente, fecha_emision, total, estado)
			VALUES ($1, $2, $3, $4) RETURNING id_factura`,
			f.IDPaciente, f.FechaEmision, f.Total, f.Estado,
		).Scan(&f.IDFactura)
		return mapError(err)
	}
	return r.update(ctx, `
		UPDATE factura SET id_paciente = $2, fecha_emision = $3, total = $4, estado = $5
		WHERE id_factura = $1`,
		f.IDFactura, f.IDPaciente, f.FechaEmision, f.Total, f.Estado)
}

func (r *FacturaRepo) DeleteByID(ctx context.Context, id int64) error {
	return r.exec(ctx, `DELETE FROM factura WHERE id_factura = $1`, id)
}

type DetalleFacturaRepo struct{ base }

func scanDetalle(row pgx.Row) (*models.DetalleFactura, error) {
	var d models.DetalleFactura
	if err := row.Scan(&d.IDDetalle, &d.IDFactura, &d.Concepto, &d.Monto); err != nil {
		return nil, mapError(err)
	}
	return &d, nil
}

func (r *DetalleFacturaRepo) FindByFactura(ctx context.Context, idFactura int64) ([]models.DetalleFactura, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT id_detalle, id_factura, concepto, monto
		FROM detalle_factura WHERE id_factura = $1 ORDER BY id_detalle`, idFactura)
	return collect(rows, err, scanDetalle)
}

func (r *DetalleFacturaRepo) Save(ctx context.Context, d *models.DetalleFactura) error {
	if d.IDDetalle == 0 {
		err := r.conn(ctx).QueryRow(ctx, `
			INSERT INTO detalle_factura (id_factura, concepto, monto)
			VALUES ($1, $2, $3) RETURNING id_detalle`,
			d.IDFactura, d.Concepto, d.Monto,
		).Scan(&d.IDDetalle)
		return mapError(err)
	}
	return r.update(ctx, `UPDATE detalle_factura SET id_factura = $2, concepto = $3, monto = $4 WHERE id_detalle = $1`,
		d.IDDetalle, d.IDFactura, d.Concepto, d.Monto)
}
