package services

import (
	"context"
	"testing"
	"time"

	"github.com/pquerna/otp/totp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lizet96/hospital-system/models"
	"github.com/lizet96/hospital-system/repository/memoria"
)

func nuevoAuth(t *testing.T) *AuthService {
	t.Helper()
	repos := memoria.NewStore().Repositorios()
	return NewAuthService(repos.Usuarios, AuthConfig{Secret: "secreto-de-prueba", Expiracion: time.Hour}, zap.NewNop(), WithReloj(relojFijo))
}

func TestLoginYToken(t *testing.T) {
	ctx := context.Background()
	auth := nuevoAuth(t)

	u, err := auth.CrearUsuario(ctx, "Admin@Hospital.pe", "clave-123", models.RolAdmin)
	require.NoError(t, err)
	assert.Equal(t, "admin@hospital.pe", u.Email)
	assert.NotEqual(t, "clave-123", u.PasswordHash)

	_, err = auth.CrearUsuario(ctx, "admin@hospital.pe", "otra", models.RolAdmin)
	assert.ErrorIs(t, err, ErrDuplicateKey)
	_, err = auth.CrearUsuario(ctx, "x@hospital.pe", "otra", "paciente")
	assert.ErrorIs(t, err, ErrRolInvalido)

	_, err = auth.Login(ctx, models.LoginRequest{Email: "admin@hospital.pe", Password: "mala"})
	assert.ErrorIs(t, err, ErrCredenciales)
	_, err = auth.Login(ctx, models.LoginRequest{Email: "nadie@hospital.pe", Password: "x"})
	assert.ErrorIs(t, err, ErrCredenciales)

	resp, err := auth.Login(ctx, models.LoginRequest{Email: "admin@hospital.pe", Password: "clave-123"})
	require.NoError(t, err)
	assert.Equal(t, 3600, resp.ExpiresIn)

	claims, err := auth.ParseToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, u.IDUsuario, claims.UserID)
	assert.Equal(t, models.RolAdmin, claims.Rol)

	_, err = auth.ParseToken(resp.AccessToken + "x")
	assert.ErrorIs(t, err, ErrTokenInvalido)
}

func TestMFA(t *testing.T) {
	ctx := context.Background()
	auth := nuevoAuth(t)

	u, err := auth.CrearUsuario(ctx, "medico@hospital.pe", "clave-123", models.RolMedico)
	require.NoError(t, err)

	setup, err := auth.SetupMFA(ctx, u.IDUsuario)
	require.NoError(t, err)
	assert.NotEmpty(t, setup.Secret)
	assert.Contains(t, setup.QRCodeURL, "otpauth://totp/")

	assert.ErrorIs(t, auth.VerifyMFA(ctx, u.IDUsuario, "000000"), ErrCodigoMFA)

	codigo, err := totp.GenerateCode(setup.Secret, fechaFija)
	require.NoError(t, err)
	require.NoError(t, auth.VerifyMFA(ctx, u.IDUsuario, codigo))

	_, err = auth.Login(ctx, models.LoginRequest{Email: "medico@hospital.pe", Password: "clave-123"})
	assert.ErrorIs(t, err, ErrMFARequerido)

	resp, err := auth.Login(ctx, models.LoginRequest{Email: "medico@hospital.pe", Password: "clave-123", Codigo: codigo})
	require.NoError(t, err)
	assert.True(t, resp.Usuario.MFAEnabled)
}
