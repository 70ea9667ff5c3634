package services

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lizet96/hospital-system/models"
)

func TestCreateFacturaValoresPorDefecto(t *testing.T) {
	ctx := context.Background()
	_, svc := nuevoEntorno(t)

	f, err := svc.Facturas.CreateFactura(ctx, models.Factura{IDPaciente: 1, Total: decimal.RequireFromString("150.00")})
	require.NoError(t, err)
	assert.NotZero(t, f.IDFactura)
	assert.Equal(t, models.EstadoFacturaPendiente, f.Estado)
	assert.Equal(t, "2025-03-10", f.FechaEmision.String())
}

func TestChangeEstadoSoloCambiaEstado(t *testing.T) {
	ctx := context.Background()
	_, svc := nuevoEntorno(t)

	fecha, err := models.ParseFecha("2024-12-01")
	require.NoError(t, err)
	f, err := svc.Facturas.CreateFactura(ctx, models.Factura{
		IDPaciente:   3,
		FechaEmision: fecha,
		Total:        decimal.RequireFromString("150.00"),
		Estado:       "PENDIENTE",
	})
	require.NoError(t, err)

	cambiada, err := svc.Facturas.ChangeEstado(ctx, f.IDFactura, "PAGADA")
	require.NoError(t, err)
	assert.Equal(t, "PAGADA", cambiada.Estado)

	leida, err := svc.Facturas.GetFactura(ctx, f.IDFactura)
	require.NoError(t, err)
	assert.Equal(t, "PAGADA", leida.Estado)
	assert.True(t, f.Total.Equal(leida.Total))
	assert.Equal(t, f.IDPaciente, leida.IDPaciente)
	assert.Equal(t, "2024-12-01", leida.FechaEmision.String())

	_, err = svc.Facturas.ChangeEstado(ctx, 999, "pagado")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFacturaTotalNoSeRecalcula(t *testing.T) {
	ctx := context.Background()
	_, svc := nuevoEntorno(t)

	f, err := svc.Facturas.CreateFactura(ctx, models.Factura{IDPaciente: 1, Total: decimal.NewFromInt(10)})
	require.NoError(t, err)
	_, err = svc.Facturas.AddDetalle(ctx, models.DetalleFactura{IDFactura: f.IDFactura, Concepto: "Consulta", Monto: decimal.NewFromInt(100)})
	require.NoError(t, err)

	leida, err := svc.Facturas.GetFactura(ctx, f.IDFactura)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(10).Equal(leida.Total))

	detalles, err := svc.Facturas.ListDetalles(ctx, f.IDFactura)
	require.NoError(t, err)
	assert.Len(t, detalles, 1)

	_, err = svc.Facturas.AddDetalle(ctx, models.DetalleFactura{IDFactura: 999, Concepto: "x"})
	assert.ErrorIs(t, err, ErrReferencia)
}

func TestUpdateYDeleteFactura(t *testing.T) {
	ctx := context.Background()
	_, svc := nuevoEntorno(t)

	f, err := svc.Facturas.CreateFactura(ctx, models.Factura{IDPaciente: 1, Total: decimal.NewFromInt(10)})
	require.NoError(t, err)
	_, err = svc.Facturas.CreateFactura(ctx, models.Factura{IDPaciente: 2, Total: decimal.NewFromInt(20)})
	require.NoError(t, err)

	_, err = svc.Facturas.UpdateFactura(ctx, 999, models.Factura{IDPaciente: 1})
	assert.ErrorIs(t, err, ErrNotFound)

	actualizada, err := svc.Facturas.UpdateFactura(ctx, f.IDFactura, models.Factura{IDPaciente: 1, Total: decimal.NewFromInt(30), Estado: "pagado"})
	require.NoError(t, err)
	assert.Equal(t, "pagado", actualizada.Estado)

	delPaciente, err := svc.Facturas.ListFacturasByPaciente(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, delPaciente, 1)

	ok, err := svc.Facturas.DeleteFactura(ctx, 999)
	require.NoError(t, err)
	assert.False(t, ok)
	todas, err := svc.Facturas.ListFacturas(ctx)
	require.NoError(t, err)
	assert.Len(t, todas, 2)

	ok, err = svc.Facturas.DeleteFactura(ctx, f.IDFactura)
	require.NoError(t, err)
	assert.True(t, ok)
}
