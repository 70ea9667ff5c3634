package models

// Estados de una cita
const (
	EstadoCitaProgramada = "programada"
	EstadoCitaAtendida   = "atendida"
	EstadoCitaCancelada  = "cancelada"
)

// Cita representa la tabla cita en la base de datos
type Cita struct {
	IDCita     int64  `json:"idCita" db:"id_cita"`
	IDPaciente int64  `json:"idPaciente" db:"id_paciente" validate:"required,gt=0"`
	IDMedico   int64  `json:"idMedico" db:"id_medico" validate:"required,gt=0"`
	Fecha      Fecha  `json:"fecha" db:"fecha"`
	Hora       string `json:"hora" db:"hora" validate:"omitempty,datetime=15:04"`
	Motivo     string `json:"motivo" db:"motivo" validate:"max=500"`
	Estado     string `json:"estado" db:"estado" validate:"omitempty,oneof=programada atendida cancelada"`
}

// Consulta representa la tabla consulta; puede originarse en una cita
type Consulta struct {
	IDConsulta     int64  `json:"idConsulta" db:"id_consulta"`
	IDCita         *int64 `json:"idCita" db:"id_cita"`
	IDPaciente     int64  `json:"idPaciente" db:"id_paciente" validate:"required,gt=0"`
	IDMedico       int64  `json:"idMedico" db:"id_medico" validate:"required,gt=0"`
	Fecha          Fecha  `json:"fecha" db:"fecha"`
	Hora           string `json:"hora" db:"hora" validate:"omitempty,datetime=15:04"`
	MotivoConsulta string `json:"motivoConsulta" db:"motivo_consulta" validate:"max=500"`
	Observaciones  string `json:"observaciones" db:"observaciones"`
}

// CambioEstadoCitaRequest restringe el estado de una cita a los valores conocidos
type CambioEstadoCitaRequest struct {
	Estado string `json:"estado" validate:"required,oneof=programada atendida cancelada"`
}
