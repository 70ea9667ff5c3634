package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTxFromContextVacio(t *testing.T) {
	assert.Nil(t, TxFromContext(context.Background()))
}

func TestMigrateURL(t *testing.T) {
	assert.Equal(t, "pgx5://u:p@localhost:5432/hospital?sslmode=disable",
		migrateURL("postgres://u:p@localhost:5432/hospital?sslmode=disable"))
	assert.Equal(t, "pgx5://u:p@db/hospital", migrateURL("postgresql://u:p@db/hospital"))
	assert.Equal(t, "pgx5://db/hospital", migrateURL("pgx5://db/hospital"))
}

func TestMigracionesEmbebidas(t *testing.T) {
	entradas, err := migrationsFS.ReadDir("migrations")
	assert.NoError(t, err)
	assert.Len(t, entradas, 2)
}
