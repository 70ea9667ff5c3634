package models

// Estados de un paciente o médico
const (
	EstadoActivo   = "activo"
	EstadoInactivo = "inactivo"
)

// ObservacionHistoriaAutomatica es la observación con la que nace cada historia clínica
const ObservacionHistoriaAutomatica = "Historia clínica creada automáticamente"

// Paciente representa la tabla paciente en la base de datos
type Paciente struct {
	IDPaciente      int64   `json:"idPaciente" db:"id_paciente"`
	Dni             string  `json:"dni" db:"dni" validate:"required,len=8,numeric"`
	Nombres         string  `json:"nombres" db:"nombres" validate:"required,max=100"`
	Apellidos       string  `json:"apellidos" db:"apellidos" validate:"required,max=100"`
	FechaNacimiento Fecha   `json:"fechaNacimiento" db:"fecha_nacimiento"`
	Sexo            string  `json:"sexo,omitempty" db:"sexo" validate:"omitempty,oneof=M F"`
	Direccion       *string `json:"direccion" db:"direccion" validate:"omitempty,max=200"`
	Telefono        *string `json:"telefono" db:"telefono" validate:"omitempty,max=20"`
	Correo          *string `json:"correo" db:"correo" validate:"omitempty,email,max=100"`
	Estado          string  `json:"estado" db:"estado" validate:"omitempty,oneof=activo inactivo"`
}

// NombreCompleto devuelve nombres y apellidos
func (p Paciente) NombreCompleto() string {
	return p.Nombres + " " + p.Apellidos
}

// HistoriaClinica representa la tabla historia_clinica; una por paciente
type HistoriaClinica struct {
	IDHistoria    int64  `json:"idHistoria" db:"id_historia"`
	IDPaciente    int64  `json:"idPaciente" db:"id_paciente"`
	FechaApertura Fecha  `json:"fechaApertura" db:"fecha_apertura"`
	Observaciones string `json:"observaciones" db:"observaciones"`
}

// AntecedenteMedico representa la tabla antecedente_medico
type AntecedenteMedico struct {
	IDAntecedente int64  `json:"idAntecedente" db:"id_antecedente"`
	IDHistoria    int64  `json:"idHistoria" db:"id_historia"`
	Tipo          string `json:"tipo" db:"tipo" validate:"required,max=50"`
	Descripcion   string `json:"descripcion" db:"descripcion" validate:"required"`
	FechaRegistro Fecha  `json:"fechaRegistro" db:"fecha_registro"`
}
