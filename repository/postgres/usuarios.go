package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/lizet96/hospital-system/models"
)

const usuarioCols = `id_usuario, email, password_hash, rol, mfa_enabled, mfa_secret, created_at`

type UsuarioRepo struct{ base }

func scanUsuario(row pgx.Row) (*models.Usuario, error) {
	var u models.Usuario
	err := row.Scan(&u.IDUsuario, &u.Email, &u.PasswordHash, &u.Rol, &u.MFAEnabled, &u.MFASecret, &u.CreatedAt)
	if err != nil {
		return nil, mapError(err)
	}
	return &u, nil
}

func (r *UsuarioRepo) FindByID(ctx context.Context, id int64) (*models.Usuario, error) {
	return scanUsuario(r.conn(ctx).QueryRow(ctx, `SELECT `+usuarioCols+` FROM usuario WHERE id_usuario = $1`, id))
}

func (r *UsuarioRepo) FindByEmail(ctx context.Context, email string) (*models.Usuario, error) {
	return scanUsuario(r.conn(ctx).QueryRow(ctx, `SELECT `+usuarioCols+` FROM usuario WHERE email = $1`, email))
}

func (r *UsuarioRepo) Save(ctx context.Context, u *models.Usuario) error {
	if u.IDUsuario == 0 {
		err := r.conn(ctx).QueryRow(ctx, `
			INSERT INTO usuario (email, password_hash, rol, mfa_enabled, mfa_secret)
			VALUES ($1, $2, $3, $4, $5) RETURNING id_usuario, created_at`,
			u.Email, u.PasswordHash, u.Rol, u.MFAEnabled, u.MFASecret,
		).Scan(&u.IDUsuario, &u.CreatedAt)
		return mapError(err)
	}
	return r.update(ctx, `
		UPDATE usuario SET email = $2, password_hash = $3, rol = $4, mfa_enabled = $5, mfa_secret = $6
		WHERE id_usuario = $1`,
		u.IDUsuario, u.Email, u.PasswordHash, u.Rol, u.MFAEnabled, u.MFASecret)
}
