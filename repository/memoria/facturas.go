package memoria

import (
	"context"

	"github.com/lizet96/hospital-system/models"
	"github.com/lizet96/hospital-system/repository"
)

type FacturaRepo struct {
	s *Store
}

func (r *FacturaRepo) FindAll(ctx context.Context) ([]models.Factura, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.t.facturas.ordenadas(nil), nil
}

func (r *FacturaRepo) FindByID(ctx context.Context, id int64) (*models.Factura, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	f, ok := r.s.t.facturas.filas[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &f, nil
}

func (r *FacturaRepo) FindByPaciente(ctx context.Context, idPaciente int64) ([]models.Factura, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.t.facturas.ordenadas(func(f models.Factura) bool {
		return f.IDPaciente == idPaciente
	}), nil
}

func (r *FacturaRepo) ExistsByID(ctx context.Context, id int64) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	_, ok := r.s.t.facturas.filas[id]
	return ok, nil
}

func (r *FacturaRepo) Save(ctx context.Context, f *models.Factura) error {
	defer r.s.escribir(ctx)()
	t := r.s.t.facturas
	if err := t.asignar(&f.IDFactura); err != nil {
		return err
	}
	t.filas[f.IDFactura] = *f
	return nil
}

// DeleteByID borra también los detalles (ON DELETE CASCADE)
func (r *FacturaRepo) DeleteByID(ctx context.Context, id int64) error {
	defer r.s.escribir(ctx)()
	delete(r.s.t.facturas.filas, id)
	for did, d := range r.s.t.detalles.filas {
		if d.IDFactura == id {
			delete(r.s.t.detalles.filas, did)
		}
	}
	return nil
}

type DetalleFacturaRepo struct {
	s *Store
}

func (r *DetalleFacturaRepo) FindByFactura(ctx context.Context, idFactura int64) ([]models.DetalleFactura, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.t.detalles.ordenadas(func(d models.DetalleFactura) bool {
		return d.IDFactura == idFactura
	}), nil
}

func (r *DetalleFacturaRepo) Save(ctx context.Context, d *models.DetalleFactura) error {
	defer r.s.escribir(ctx)()
	if _, ok := r.s.t.facturas.filas[d.IDFactura]; !ok {
		return repository.ErrReferencia
	}
	t := r.s.t.detalles
	if err := t.asignar(&d.IDDetalle); err != nil {
		return err
	}
	t.filas[d.IDDetalle] = *d
	return nil
}
