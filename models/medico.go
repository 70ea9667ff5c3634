package models

// Especialidad representa la tabla especialidad en la base de datos
type Especialidad struct {
	IDEspecialidad int64  `json:"idEspecialidad" db:"id_especialidad"`
	Nombre         string `json:"nombre" db:"nombre" validate:"required,max=100"`
	Descripcion    string `json:"descripcion" db:"descripcion" validate:"max=255"`
}

// Medico representa la tabla medico. La colegiatura es única.
type Medico struct {
	IDMedico     int64         `json:"idMedico" db:"id_medico"`
	Nombres      string        `json:"nombres" db:"nombres" validate:"required,max=100"`
	Apellidos    string        `json:"apellidos" db:"apellidos" validate:"required,max=100"`
	Colegiatura  string        `json:"colegiatura" db:"colegiatura" validate:"required,max=20"`
	Telefono     *string       `json:"telefono" db:"telefono" validate:"omitempty,max=20"`
	Correo       *string       `json:"correo" db:"correo" validate:"omitempty,email,max=100"`
	Estado       string        `json:"estado" db:"estado" validate:"omitempty,oneof=activo inactivo"`
	Especialidad *Especialidad `json:"especialidad,omitempty" validate:"-"`
}

// IDEspecialidad devuelve el id de la especialidad referenciada, si la hay
func (m Medico) IDEspecialidad() *int64 {
	if m.Especialidad == nil || m.Especialidad.IDEspecialidad == 0 {
		return nil
	}
	id := m.Especialidad.IDEspecialidad
	return &id
}
