// Package memoria implementa los repositorios sobre mapas en memoria.
// Se usa con STORAGE=memory y en las pruebas.
package memoria

import (
	"context"
	"maps"
	"slices"
	"sync"

	"github.com/lizet96/hospital-system/models"
	"github.com/lizet96/hospital-system/repository"
)

type tabla[T any] struct {
	filas map[int64]T
	sig   int64
}

func nuevaTabla[T any]() *tabla[T] {
	return &tabla[T]{filas: make(map[int64]T)}
}

func (t *tabla[T]) siguienteID() int64 {
	t.sig++
	return t.sig
}

// asignar da un id nuevo si es cero; si no, exige que la fila exista
func (t *tabla[T]) asignar(id *int64) error {
	if *id == 0 {
		*id = t.siguienteID()
		return nil
	}
	if _, ok := t.filas[*id]; !ok {
		return repository.ErrNotFound
	}
	return nil
}

func (t *tabla[T]) copia() *tabla[T] {
	return &tabla[T]{filas: maps.Clone(t.filas), sig: t.sig}
}

// ordenadas devuelve las filas ordenadas por id
func (t *tabla[T]) ordenadas(filtro func(T) bool) []T {
	ids := make([]int64, 0, len(t.filas))
	for id := range t.filas {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	out := make([]T, 0, len(ids))
	for _, id := range ids {
		fila := t.filas[id]
		if filtro == nil || filtro(fila) {
			out = append(out, fila)
		}
	}
	return out
}

type tablas struct {
	pacientes      *tabla[models.Paciente]
	historias      *tabla[models.HistoriaClinica]
	antecedentes   *tabla[models.AntecedenteMedico]
	especialidades *tabla[models.Especialidad]
	medicos        *tabla[medicoFila]
	facturas       *tabla[models.Factura]
	detalles       *tabla[models.DetalleFactura]
	citas          *tabla[models.Cita]
	consultas      *tabla[models.Consulta]
	usuarios       *tabla[models.Usuario]
}

func (t tablas) copia() tablas {
	return tablas{
		pacientes:      t.pacientes.copia(),
		historias:      t.historias.copia(),
		antecedentes:   t.antecedentes.copia(),
		especialidades: t.especialidades.copia(),
		medicos:        t.medicos.copia(),
		facturas:       t.facturas.copia(),
		detalles:       t.detalles.copia(),
		citas:          t.citas.copia(),
		consultas:      t.consultas.copia(),
		usuarios:       t.usuarios.copia(),
	}
}

// Store guarda todas las tablas detrás de un único mutex
type Store struct {
	mu   sync.RWMutex
	txMu sync.Mutex
	t    tablas
}

// NewStore crea un almacén vacío
func NewStore() *Store {
	return &Store{t: tablas{
		pacientes:      nuevaTabla[models.Paciente](),
		historias:      nuevaTabla[models.HistoriaClinica](),
		antecedentes:   nuevaTabla[models.AntecedenteMedico](),
		especialidades: nuevaTabla[models.Especialidad](),
		medicos:        nuevaTabla[medicoFila](),
		facturas:       nuevaTabla[models.Factura](),
		detalles:       nuevaTabla[models.DetalleFactura](),
		citas:          nuevaTabla[models.Cita](),
		consultas:      nuevaTabla[models.Consulta](),
		usuarios:       nuevaTabla[models.Usuario](),
	}}
}

// txKey marca el contexto de una transacción abierta sobre un Store
type txKey struct{}

func (s *Store) enTransaccion(ctx context.Context) bool {
	tx, _ := ctx.Value(txKey{}).(*Store)
	return tx == s
}

// WithinTransaction serializa las transacciones y, si fn falla, restaura
// el estado previo. Mientras fn corre, las escrituras que no usan su
// contexto esperan a que termine, así el respaldo sólo descarta lo que
// hizo fn. Una llamada anidada con ese contexto se une a la transacción.
func (s *Store) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if s.enTransaccion(ctx) {
		return fn(ctx)
	}
	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.RLock()
	respaldo := s.t.copia()
	s.mu.RUnlock()

	if err := fn(context.WithValue(ctx, txKey{}, s)); err != nil {
		s.mu.Lock()
		s.t = respaldo
		s.mu.Unlock()
		return err
	}
	return nil
}

// escribir toma el candado de escritura; fuera de una transacción espera
// además a que no haya ninguna abierta. Uso: defer s.escribir(ctx)()
func (s *Store) escribir(ctx context.Context) func() {
	if s.enTransaccion(ctx) {
		s.mu.Lock()
		return s.mu.Unlock
	}
	s.txMu.Lock()
	s.mu.Lock()
	return func() {
		s.mu.Unlock()
		s.txMu.Unlock()
	}
}

// Repositorios devuelve todos los repositorios respaldados por este almacén
func (s *Store) Repositorios() repository.Repositorios {
	return repository.Repositorios{
		Transactor:      s,
		Pacientes:       &PacienteRepo{s: s},
		Historias:       &HistoriaClinicaRepo{s: s},
		Antecedentes:    &AntecedenteRepo{s: s},
		Medicos:         &MedicoRepo{s: s},
		Especialidades:  &EspecialidadRepo{s: s},
		Facturas:        &FacturaRepo{s: s},
		DetallesFactura: &DetalleFacturaRepo{s: s},
		Citas:           &CitaRepo{s: s},
		Consultas:       &ConsultaRepo{s: s},
		Usuarios:        &UsuarioRepo{s: s},
	}
}

func clonarTexto(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
