package memoria

import (
	"context"

	"github.com/lizet96/hospital-system/models"
	"github.com/lizet96/hospital-system/repository"
)

type UsuarioRepo struct {
	s *Store
}

func (r *UsuarioRepo) FindByID(ctx context.Context, id int64) (*models.Usuario, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	u, ok := r.s.t.usuarios.filas[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (r *UsuarioRepo) FindByEmail(ctx context.Context, email string) (*models.Usuario, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, u := range r.s.t.usuarios.ordenadas(nil) {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *UsuarioRepo) Save(ctx context.Context, u *models.Usuario) error {
	defer r.s.escribir(ctx)()
	t := r.s.t.usuarios
	for id, otro := range t.filas {
		if id != u.IDUsuario && otro.Email == u.Email {
			return repository.ErrDuplicate
		}
	}
	if err := t.asignar(&u.IDUsuario); err != nil {
		return err
	}
	t.filas[u.IDUsuario] = *u
	return nil
}
