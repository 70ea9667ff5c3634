package services

import (
	"errors"
	"fmt"

	"github.com/lizet96/hospital-system/repository"
)

var (
	// ErrNotFound es el mismo valor que repository.ErrNotFound
	ErrNotFound = repository.ErrNotFound
	// ErrReferencia indica que el registro apunta a un padre inexistente
	ErrReferencia = repository.ErrReferencia
	// ErrDuplicateKey identifica cualquier *DuplicateKeyError
	ErrDuplicateKey = errors.New("clave duplicada")
)

// DuplicateKeyError indica qué campo único ya está ocupado
type DuplicateKeyError struct {
	Campo string
	Valor string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("ya existe un registro con %s %q", e.Campo, e.Valor)
}

func (e *DuplicateKeyError) Is(target error) bool {
	return target == ErrDuplicateKey
}

// duplicado convierte el ErrDuplicate del almacén en un DuplicateKeyError
func duplicado(err error, campo, valor string) error {
	if errors.Is(err, repository.ErrDuplicate) {
		return &DuplicateKeyError{Campo: campo, Valor: valor}
	}
	return err
}
