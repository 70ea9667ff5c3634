package services

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lizet96/hospital-system/models"
	"github.com/lizet96/hospital-system/repository"
	"github.com/lizet96/hospital-system/repository/memoria"
)

// historiasQueFallan simula un fallo al guardar la historia clínica
type historiasQueFallan struct {
	repository.HistoriaClinicaRepository
}

var errDisco = errors.New("disco lleno")

func (historiasQueFallan) Save(context.Context, *models.HistoriaClinica) error {
	return errDisco
}

func pacienteAna() models.Paciente {
	return models.Paciente{Dni: "12345678", Nombres: "Ana", Apellidos: "Diaz"}
}

func TestCreatePacienteCreaHistoria(t *testing.T) {
	ctx := context.Background()
	_, svc := nuevoEntorno(t)

	p, err := svc.Pacientes.CreatePaciente(ctx, pacienteAna())
	require.NoError(t, err)
	assert.NotZero(t, p.IDPaciente)
	assert.Equal(t, models.EstadoActivo, p.Estado)

	h, err := svc.Pacientes.GetHistoriaByPaciente(ctx, p.IDPaciente)
	require.NoError(t, err)
	assert.Equal(t, p.IDPaciente, h.IDPaciente)
	assert.Equal(t, "2025-03-10", h.FechaApertura.String())
	assert.Equal(t, models.ObservacionHistoriaAutomatica, h.Observaciones)
}

func TestCreatePacienteAtomico(t *testing.T) {
	ctx := context.Background()
	store := memoria.NewStore()
	repos := store.Repositorios()
	svc := NewPacienteService(store, repos.Pacientes, historiasQueFallan{repos.Historias}, repos.Antecedentes,
		zap.NewNop(), WithReloj(relojFijo))

	_, err := svc.CreatePaciente(ctx, pacienteAna())
	require.Error(t, err)
	assert.ErrorIs(t, err, errDisco)

	_, err = svc.GetPacienteByDni(ctx, "12345678")
	assert.ErrorIs(t, err, ErrNotFound)
	todos, err := svc.ListPacientes(ctx)
	require.NoError(t, err)
	assert.Empty(t, todos)
}

// historiasConFacturaConcurrente crea una factura desde otra petición
// mientras la transacción del paciente sigue abierta y luego falla
type historiasConFacturaConcurrente struct {
	repository.HistoriaClinicaRepository
	facturas *FacturaService
	creada   chan *models.Factura
}

func (h historiasConFacturaConcurrente) Save(context.Context, *models.HistoriaClinica) error {
	go func() {
		f, err := h.facturas.CreateFactura(context.Background(), models.Factura{IDPaciente: 1, Total: decimal.NewFromInt(80)})
		if err != nil {
			f = nil
		}
		h.creada <- f
	}()
	return errDisco
}

func TestCreatePacienteFallidoNoBorraEscriturasAjenas(t *testing.T) {
	ctx := context.Background()
	store := memoria.NewStore()
	repos := store.Repositorios()
	all := New(repos, zap.NewNop(), WithReloj(relojFijo))
	historias := historiasConFacturaConcurrente{repos.Historias, all.Facturas, make(chan *models.Factura, 1)}
	svc := NewPacienteService(store, repos.Pacientes, historias, repos.Antecedentes,
		zap.NewNop(), WithReloj(relojFijo))

	_, err := svc.CreatePaciente(ctx, pacienteAna())
	require.ErrorIs(t, err, errDisco)

	f := <-historias.creada
	require.NotNil(t, f)
	guardada, err := all.Facturas.GetFactura(ctx, f.IDFactura)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(80).Equal(guardada.Total))

	_, err = svc.GetPacienteByDni(ctx, "12345678")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreatePacienteDniDuplicado(t *testing.T) {
	ctx := context.Background()
	_, svc := nuevoEntorno(t)

	_, err := svc.Pacientes.CreatePaciente(ctx, pacienteAna())
	require.NoError(t, err)
	_, err = svc.Pacientes.CreatePaciente(ctx, pacienteAna())
	assert.ErrorIs(t, err, ErrDuplicateKey)
}

func TestUpdateYDeletePaciente(t *testing.T) {
	ctx := context.Background()
	_, svc := nuevoEntorno(t)

	p, err := svc.Pacientes.CreatePaciente(ctx, pacienteAna())
	require.NoError(t, err)

	_, err = svc.Pacientes.UpdatePaciente(ctx, 99, pacienteAna())
	assert.ErrorIs(t, err, ErrNotFound)

	cambio := pacienteAna()
	cambio.Nombres = "Ana Lucía"
	actualizado, err := svc.Pacientes.UpdatePaciente(ctx, p.IDPaciente, cambio)
	require.NoError(t, err)
	assert.Equal(t, "Ana Lucía", actualizado.Nombres)
	assert.Empty(t, actualizado.Estado, "el reemplazo es completo")

	ok, err := svc.Pacientes.DeletePaciente(ctx, 99)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = svc.Pacientes.DeletePaciente(ctx, p.IDPaciente)
	require.NoError(t, err)
	assert.True(t, ok)

	// la historia no se borra en cascada
	_, err = svc.Pacientes.GetHistoriaByPaciente(ctx, p.IDPaciente)
	assert.NoError(t, err)
}

func TestAntecedentes(t *testing.T) {
	ctx := context.Background()
	_, svc := nuevoEntorno(t)

	p, err := svc.Pacientes.CreatePaciente(ctx, pacienteAna())
	require.NoError(t, err)
	h, err := svc.Pacientes.GetHistoriaByPaciente(ctx, p.IDPaciente)
	require.NoError(t, err)

	a, err := svc.Pacientes.AddAntecedente(ctx, models.AntecedenteMedico{IDHistoria: h.IDHistoria, Tipo: "alergias", Descripcion: "Penicilina"})
	require.NoError(t, err)
	assert.NotZero(t, a.IDAntecedente)
	assert.Equal(t, "2025-03-10", a.FechaRegistro.String())

	lista, err := svc.Pacientes.ListAntecedentes(ctx, h.IDHistoria)
	require.NoError(t, err)
	require.Len(t, lista, 1)
	assert.Equal(t, "Penicilina", lista[0].Descripcion)

	vacia, err := svc.Pacientes.ListAntecedentes(ctx, 404)
	require.NoError(t, err)
	assert.Empty(t, vacia)

	_, err = svc.Pacientes.AddAntecedente(ctx, models.AntecedenteMedico{IDHistoria: 404, Tipo: "otros", Descripcion: "x"})
	assert.ErrorIs(t, err, ErrReferencia)
}
