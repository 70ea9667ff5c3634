package services

import (
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/lizet96/hospital-system/repository"
	"github.com/lizet96/hospital-system/repository/memoria"
)

var fechaFija = time.Date(2025, time.March, 10, 9, 30, 0, 0, time.UTC)

func relojFijo() time.Time { return fechaFija }

func nuevoEntorno(t *testing.T) (repository.Repositorios, *Services) {
	t.Helper()
	repos := memoria.NewStore().Repositorios()
	return repos, New(repos, zap.NewNop(), WithReloj(relojFijo))
}
