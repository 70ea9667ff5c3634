package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/lizet96/hospital-system/models"
	"github.com/lizet96/hospital-system/repository"
)

var (
	ErrCredenciales  = errors.New("credenciales inválidas")
	ErrMFARequerido  = errors.New("se requiere el código MFA")
	ErrCodigoMFA     = errors.New("código MFA inválido")
	ErrTokenInvalido = errors.New("token inválido")
	ErrRolInvalido   = errors.New("rol de usuario inválido")
)

// Claims personalizados para el JWT
type Claims struct {
	UserID int64  `json:"user_id"`
	Email  string `json:"email"`
	Rol    string `json:"rol"`
	jwt.RegisteredClaims
}

// AuthConfig agrupa los parámetros de firma de tokens
type AuthConfig struct {
	Secret     string
	Expiracion time.Duration
	Emisor     string
}

// AuthService autentica usuarios con contraseña y, si lo activaron, TOTP
type AuthService struct {
	base
	usuarios repository.UsuarioRepository
	cfg      AuthConfig
}

func NewAuthService(usuarios repository.UsuarioRepository, cfg AuthConfig, log *zap.Logger, opts ...Opcion) *AuthService {
	if cfg.Emisor == "" {
		cfg.Emisor = "hospital-system"
	}
	if cfg.Expiracion <= 0 {
		cfg.Expiracion = 24 * time.Hour
	}
	return &AuthService{base: nuevaBase(log, "auth", opts), usuarios: usuarios, cfg: cfg}
}

func rolValido(rol string) bool {
	switch rol {
	case models.RolAdmin, models.RolRecepcion, models.RolMedico:
		return true
	}
	return false
}

// CrearUsuario registra un usuario con la contraseña encriptada
func (s *AuthService) CrearUsuario(ctx context.Context, email, password, rol string) (*models.Usuario, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !rolValido(rol) {
		return nil, fmt.Errorf("%w: %q", ErrRolInvalido, rol)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("encriptar contraseña: %w", err)
	}
	u := models.Usuario{Email: email, PasswordHash: string(hash), Rol: rol, CreatedAt: s.ahora()}
	if err := s.usuarios.Save(ctx, &u); err != nil {
		return nil, duplicado(err, "email", email)
	}
	s.log.Info("Usuario creado", zap.Int64("id_usuario", u.IDUsuario), zap.String("rol", rol))
	return &u, nil
}

// Login valida la contraseña y, si el usuario tiene MFA, el código TOTP
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	u, err := s.usuarios.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if errors.Is(err, ErrNotFound) {
		return nil, ErrCredenciales
	}
	if err != nil {
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		s.log.Warn("Contraseña incorrecta", zap.Int64("id_usuario", u.IDUsuario))
		return nil, ErrCredenciales
	}
	if u.MFAEnabled {
		if req.Codigo == "" {
			return nil, ErrMFARequerido
		}
		if !s.codigoValido(req.Codigo, u.MFASecret) {
			return nil, ErrCodigoMFA
		}
	}

	token, err := s.GenerarToken(u)
	if err != nil {
		return nil, err
	}
	s.log.Info("Inicio de sesión", zap.Int64("id_usuario", u.IDUsuario))
	return &models.LoginResponse{
		AccessToken: token,
		ExpiresIn:   int(s.cfg.Expiracion.Seconds()),
		Usuario:     *u,
	}, nil
}

// GenerarToken firma un JWT HS256 para el usuario
func (s *AuthService) GenerarToken(u *models.Usuario) (string, error) {
	ahora := s.ahora()
	claims := Claims{
		UserID: u.IDUsuario,
		Email:  u.Email,
		Rol:    u.Rol,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.cfg.Emisor,
			Subject:   fmt.Sprint(u.IDUsuario),
			ExpiresAt: jwt.NewNumericDate(ahora.Add(s.cfg.Expiracion)),
			IssuedAt:  jwt.NewNumericDate(ahora),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	firmado, err := token.SignedString([]byte(s.cfg.Secret))
	if err != nil {
		return "", fmt.Errorf("firmar token: %w", err)
	}
	return firmado, nil
}

// ParseToken valida la firma y la expiración de un token
func (s *AuthService) ParseToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (any, error) {
		return []byte(s.cfg.Secret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.ahora),
	)
	if err != nil || !token.Valid {
		return nil, ErrTokenInvalido
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, ErrTokenInvalido
	}
	return claims, nil
}

// SetupMFA genera un secreto TOTP nuevo. Queda pendiente hasta VerifyMFA.
func (s *AuthService) SetupMFA(ctx context.Context, idUsuario int64) (*models.MFASetupResponse, error) {
	u, err := s.usuarios.FindByID(ctx, idUsuario)
	if err != nil {
		return nil, err
	}
	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      s.cfg.Emisor,
		AccountName: u.Email,
	})
	if err != nil {
		return nil, fmt.Errorf("generar secreto TOTP: %w", err)
	}
	u.MFASecret = key.Secret()
	u.MFAEnabled = false
	if err := s.usuarios.Save(ctx, u); err != nil {
		return nil, err
	}
	return &models.MFASetupResponse{Secret: key.Secret(), QRCodeURL: key.URL()}, nil
}

// VerifyMFA activa el segundo factor tras un código válido
func (s *AuthService) VerifyMFA(ctx context.Context, idUsuario int64, codigo string) error {
	u, err := s.usuarios.FindByID(ctx, idUsuario)
	if err != nil {
		return err
	}
	if u.MFASecret == "" || !s.codigoValido(codigo, u.MFASecret) {
		return ErrCodigoMFA
	}
	u.MFAEnabled = true
	if err := s.usuarios.Save(ctx, u); err != nil {
		return err
	}
	s.log.Info("MFA activado", zap.Int64("id_usuario", idUsuario))
	return nil
}

func (s *AuthService) codigoValido(codigo, secreto string) bool {
	ok, err := totp.ValidateCustom(codigo, secreto, s.ahora().UTC(), totp.ValidateOpts{
		Period:    30,
		Skew:      1,
		Digits:    otp.DigitsSix,
		Algorithm: otp.AlgorithmSHA1,
	})
	return err == nil && ok
}
