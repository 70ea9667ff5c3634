package models

import (
	"time"
)

// Roles de usuario del sistema
const (
	RolAdmin     = "admin"
	RolRecepcion = "recepcion"
	RolMedico    = "medico"
)

// Usuario representa la tabla usuario (personal con acceso a la API)
type Usuario struct {
	IDUsuario    int64     `json:"idUsuario" db:"id_usuario"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Rol          string    `json:"rol" db:"rol"`
	MFAEnabled   bool      `json:"mfaEnabled" db:"mfa_enabled"`
	MFASecret    string    `json:"-" db:"mfa_secret"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

// LoginRequest representa la solicitud de login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Codigo   string `json:"codigo,omitempty" validate:"omitempty,len=6,numeric"`
}

// LoginResponse representa la respuesta del login
type LoginResponse struct {
	AccessToken string  `json:"accessToken"`
	ExpiresIn   int     `json:"expiresIn"` // segundos
	Usuario     Usuario `json:"usuario"`
}

type MFASetupResponse struct {
	Secret    string `json:"secret"`
	QRCodeURL string `json:"qrCodeUrl"`
}

type MFAVerifyRequest struct {
	Codigo string `json:"codigo" validate:"required,len=6,numeric"`
}
