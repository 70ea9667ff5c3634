// Package repository define el acceso a datos por entidad. Cada interfaz
// tiene una implementación PostgreSQL (repository/postgres) y una en memoria
// (repository/memoria).
//
// Convenciones comunes:
//   - FindByID y las búsquedas por clave alternativa devuelven ErrNotFound
//     cuando no hay registro.
//   - Save inserta si el id es cero (y lo asigna) y reemplaza el registro
//     completo en caso contrario; reemplazar un id inexistente da ErrNotFound.
//   - DeleteByID sobre un id inexistente no hace nada.
package repository

import (
	"context"
	"errors"

	"github.com/lizet96/hospital-system/models"
)

var (
	// ErrNotFound indica que no existe un registro con la clave pedida
	ErrNotFound = errors.New("registro no encontrado")
	// ErrDuplicate indica que el almacén rechazó una clave única repetida
	ErrDuplicate = errors.New("clave única duplicada")
	// ErrReferencia indica que el registro apunta a un padre inexistente
	ErrReferencia = errors.New("referencia a un registro inexistente")
)

// Transactor ejecuta fn como una unidad atómica. Los repositorios que
// reciben el ctx pasado a fn participan en la misma transacción.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type PacienteRepository interface {
	FindAll(ctx context.Context) ([]models.Paciente, error)
	FindByID(ctx context.Context, id int64) (*models.Paciente, error)
	FindByDni(ctx context.Context, dni string) (*models.Paciente, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	Save(ctx context.Context, p *models.Paciente) error
	DeleteByID(ctx context.Context, id int64) error
}

type HistoriaClinicaRepository interface {
	FindByID(ctx context.Context, id int64) (*models.HistoriaClinica, error)
	FindByPaciente(ctx context.Context, idPaciente int64) (*models.HistoriaClinica, error)
	Save(ctx context.Context, h *models.HistoriaClinica) error
}

type AntecedenteRepository interface {
	FindByHistoria(ctx context.Context, idHistoria int64) ([]models.AntecedenteMedico, error)
	Save(ctx context.Context, a *models.AntecedenteMedico) error
}

type MedicoRepository interface {
	FindAll(ctx context.Context) ([]models.Medico, error)
	FindByID(ctx context.Context, id int64) (*models.Medico, error)
	FindByColegiatura(ctx context.Context, colegiatura string) (*models.Medico, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	Save(ctx context.Context, m *models.Medico) error
	DeleteByID(ctx context.Context, id int64) error
}

type EspecialidadRepository interface {
	FindAll(ctx context.Context) ([]models.Especialidad, error)
	FindByID(ctx context.Context, id int64) (*models.Especialidad, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	Save(ctx context.Context, e *models.Especialidad) error
	DeleteByID(ctx context.Context, id int64) error
}

type FacturaRepository interface {
	FindAll(ctx context.Context) ([]models.Factura, error)
	FindByID(ctx context.Context, id int64) (*models.Factura, error)
	FindByPaciente(ctx context.Context, idPaciente int64) ([]models.Factura, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	Save(ctx context.Context, f *models.Factura) error
	DeleteByID(ctx context.Context, id int64) error
}

type DetalleFacturaRepository interface {
	FindByFactura(ctx context.Context, idFactura int64) ([]models.DetalleFactura, error)
	Save(ctx context.Context, d *models.DetalleFactura) error
}

type CitaRepository interface {
	FindAll(ctx context.Context) ([]models.Cita, error)
	FindByID(ctx context.Context, id int64) (*models.Cita, error)
	FindByPaciente(ctx context.Context, idPaciente int64) ([]models.Cita, error)
	FindByMedico(ctx context.Context, idMedico int64) ([]models.Cita, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	Save(ctx context.Context, c *models.Cita) error
	DeleteByID(ctx context.Context, id int64) error
}

type ConsultaRepository interface {
	FindAll(ctx context.Context) ([]models.Consulta, error)
	FindByID(ctx context.Context, id int64) (*models.Consulta, error)
	FindByPaciente(ctx context.Context, idPaciente int64) ([]models.Consulta, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	Save(ctx context.Context, c *models.Consulta) error
	DeleteByID(ctx context.Context, id int64) error
}

type UsuarioRepository interface {
	FindByID(ctx context.Context, id int64) (*models.Usuario, error)
	FindByEmail(ctx context.Context, email string) (*models.Usuario, error)
	Save(ctx context.Context, u *models.Usuario) error
}

// Repositorios agrupa todas las implementaciones de un mismo almacén
type Repositorios struct {
	Transactor      Transactor
	Pacientes       PacienteRepository
	Historias       HistoriaClinicaRepository
	Antecedentes    AntecedenteRepository
	Medicos         MedicoRepository
	Especialidades  EspecialidadRepository
	Facturas        FacturaRepository
	DetallesFactura DetalleFacturaRepository
	Citas           CitaRepository
	Consultas       ConsultaRepository
	Usuarios        UsuarioRepository
}
