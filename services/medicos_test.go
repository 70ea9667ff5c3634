package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lizet96/hospital-system/models"
)

func TestCreateMedicoColegiaturaDuplicada(t *testing.T) {
	ctx := context.Background()
	_, svc := nuevoEntorno(t)

	m1, err := svc.Medicos.CreateMedico(ctx, models.Medico{Nombres: "Luis", Apellidos: "Paz", Colegiatura: "CMP-100"})
	require.NoError(t, err)
	assert.NotZero(t, m1.IDMedico)
	assert.Equal(t, models.EstadoActivo, m1.Estado)

	_, err = svc.Medicos.CreateMedico(ctx, models.Medico{Nombres: "Otro", Apellidos: "Medico", Colegiatura: "CMP-100"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateKey)

	var dup *DuplicateKeyError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, "colegiatura", dup.Campo)
	assert.Equal(t, "CMP-100", dup.Valor)

	todos, err := svc.Medicos.ListMedicos(ctx)
	require.NoError(t, err)
	assert.Len(t, todos, 1)
}

func TestUpdateMedico(t *testing.T) {
	ctx := context.Background()
	_, svc := nuevoEntorno(t)

	m1, err := svc.Medicos.CreateMedico(ctx, models.Medico{Nombres: "Luis", Colegiatura: "CMP-100"})
	require.NoError(t, err)
	m2, err := svc.Medicos.CreateMedico(ctx, models.Medico{Nombres: "Rosa", Colegiatura: "CMP-200"})
	require.NoError(t, err)

	t.Run("misma colegiatura propia no es duplicado", func(t *testing.T) {
		actualizado, err := svc.Medicos.UpdateMedico(ctx, m1.IDMedico, models.Medico{Nombres: "Luis Alberto", Colegiatura: "CMP-100"})
		require.NoError(t, err)
		assert.Equal(t, "Luis Alberto", actualizado.Nombres)
		assert.Equal(t, m1.IDMedico, actualizado.IDMedico)
	})

	t.Run("colegiatura de otro médico", func(t *testing.T) {
		_, err := svc.Medicos.UpdateMedico(ctx, m2.IDMedico, models.Medico{Nombres: "Rosa", Colegiatura: "CMP-100"})
		assert.ErrorIs(t, err, ErrDuplicateKey)
	})

	t.Run("reemplazo completo", func(t *testing.T) {
		tel := "999888777"
		_, err := svc.Medicos.UpdateMedico(ctx, m2.IDMedico, models.Medico{Nombres: "Rosa", Colegiatura: "CMP-200", Telefono: &tel})
		require.NoError(t, err)
		actualizado, err := svc.Medicos.UpdateMedico(ctx, m2.IDMedico, models.Medico{Nombres: "Rosa", Colegiatura: "CMP-200"})
		require.NoError(t, err)
		assert.Nil(t, actualizado.Telefono)
		assert.Empty(t, actualizado.Apellidos)
	})

	t.Run("id inexistente", func(t *testing.T) {
		_, err := svc.Medicos.UpdateMedico(ctx, 999, models.Medico{Colegiatura: "CMP-999"})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestDeleteMedicoInexistente(t *testing.T) {
	ctx := context.Background()
	_, svc := nuevoEntorno(t)

	m, err := svc.Medicos.CreateMedico(ctx, models.Medico{Colegiatura: "CMP-1"})
	require.NoError(t, err)

	ok, err := svc.Medicos.DeleteMedico(ctx, 42)
	require.NoError(t, err)
	assert.False(t, ok)

	todos, err := svc.Medicos.ListMedicos(ctx)
	require.NoError(t, err)
	assert.Len(t, todos, 1)

	ok, err = svc.Medicos.DeleteMedico(ctx, m.IDMedico)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = svc.Medicos.GetMedico(ctx, m.IDMedico)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEspecialidades(t *testing.T) {
	ctx := context.Background()
	_, svc := nuevoEntorno(t)

	e1, err := svc.Medicos.CreateEspecialidad(ctx, models.Especialidad{Nombre: "Cardiología"})
	require.NoError(t, err)
	// no hay unicidad en el nombre
	_, err = svc.Medicos.CreateEspecialidad(ctx, models.Especialidad{Nombre: "Cardiología"})
	require.NoError(t, err)

	_, err = svc.Medicos.UpdateEspecialidad(ctx, 77, models.Especialidad{Nombre: "X"})
	assert.ErrorIs(t, err, ErrNotFound)

	actualizada, err := svc.Medicos.UpdateEspecialidad(ctx, e1.IDEspecialidad, models.Especialidad{Nombre: "Cardiología", Descripcion: "Corazón"})
	require.NoError(t, err)
	assert.Equal(t, "Corazón", actualizada.Descripcion)

	m, err := svc.Medicos.CreateMedico(ctx, models.Medico{Colegiatura: "CMP-5", Especialidad: &models.Especialidad{IDEspecialidad: e1.IDEspecialidad}})
	require.NoError(t, err)
	require.NotNil(t, m.Especialidad)
	assert.Equal(t, "Cardiología", m.Especialidad.Nombre)

	ok, err := svc.Medicos.DeleteEspecialidad(ctx, 77)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = svc.Medicos.DeleteEspecialidad(ctx, e1.IDEspecialidad)
	require.NoError(t, err)
	assert.True(t, ok)

	lista, err := svc.Medicos.ListEspecialidades(ctx)
	require.NoError(t, err)
	assert.Len(t, lista, 1)
}
