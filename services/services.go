// Package services contiene las reglas de negocio sobre los repositorios:
// claves duplicadas, creación en cascada de la historia clínica y cambios
// de estado.
package services

import (
	"time"

	"go.uber.org/zap"

	"github.com/lizet96/hospital-system/models"
	"github.com/lizet96/hospital-system/repository"
)

type base struct {
	log   *zap.Logger
	ahora func() time.Time
}

// Opcion modifica la configuración común de un servicio
type Opcion func(*base)

// WithReloj fija el reloj usado para las fechas por defecto
func WithReloj(ahora func() time.Time) Opcion {
	return func(b *base) { b.ahora = ahora }
}

func nuevaBase(log *zap.Logger, nombre string, opts []Opcion) base {
	if log == nil {
		log = zap.NewNop()
	}
	b := base{log: log.Named(nombre), ahora: time.Now}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

func (b base) hoy() models.Fecha {
	return models.NuevaFecha(b.ahora())
}

// Services agrupa todos los servicios construidos sobre un mismo almacén
type Services struct {
	Medicos   *MedicoService
	Pacientes *PacienteService
	Facturas  *FacturaService
	Citas     *CitaService
	Consultas *ConsultaService
	Reportes  *ReporteService
}

// New construye los servicios de negocio sobre repos
func New(repos repository.Repositorios, log *zap.Logger, opts ...Opcion) *Services {
	return &Services{
		Medicos:   NewMedicoService(repos.Medicos, repos.Especialidades, log, opts...),
		Pacientes: NewPacienteService(repos.Transactor, repos.Pacientes, repos.Historias, repos.Antecedentes, log, opts...),
		Facturas:  NewFacturaService(repos.Facturas, repos.DetallesFactura, repos.Pacientes, log, opts...),
		Citas:     NewCitaService(repos.Citas, log, opts...),
		Consultas: NewConsultaService(repos.Consultas, log, opts...),
		Reportes:  NewReporteService(repos.Facturas, log, opts...),
	}
}
