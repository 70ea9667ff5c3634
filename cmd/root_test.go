package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComandos(t *testing.T) {
	root := newRootCmd()
	nombres := map[string]bool{}
	for _, c := range root.Commands() {
		nombres[c.Name()] = true
	}
	assert.True(t, nombres["serve"])
	assert.True(t, nombres["migrate"])
	assert.True(t, nombres["usuario"])

	migrate, _, err := root.Find([]string{"migrate", "version"})
	require.NoError(t, err)
	assert.Equal(t, "version", migrate.Name())
}

func TestMigrateRequierePostgres(t *testing.T) {
	t.Setenv("STORAGE", "memory")
	t.Setenv("LOG_OUTPUT", "stderr")

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"migrate", "up"})

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "STORAGE=postgres")
}

func TestConfiguracionInvalida(t *testing.T) {
	t.Setenv("STORAGE", "postgres")
	t.Setenv("DATABASE_URL", "")

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"migrate", "version"})

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}
