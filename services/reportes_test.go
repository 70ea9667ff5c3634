package services

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lizet96/hospital-system/models"
)

func TestResumenFacturas(t *testing.T) {
	ctx := context.Background()
	_, svc := nuevoEntorno(t)

	for _, f := range []models.Factura{
		{IDPaciente: 1, Total: decimal.RequireFromString("100.50"), Estado: "pagado"},
		{IDPaciente: 1, Total: decimal.RequireFromString("49.50"), Estado: "PAGADA"},
		{IDPaciente: 2, Total: decimal.RequireFromString("20.00")},
		{IDPaciente: 2, Total: decimal.RequireFromString("5.00"), Estado: "anulado"},
	} {
		_, err := svc.Facturas.CreateFactura(ctx, f)
		require.NoError(t, err)
	}

	r, err := svc.Reportes.ResumenFacturas(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, r.TotalFacturas)
	assert.Equal(t, 2, r.Pagadas)
	assert.Equal(t, 1, r.Pendientes)
	assert.Equal(t, "175.00", r.MontoTotal.StringFixed(2))
	assert.Equal(t, "150.00", r.MontoPagado.StringFixed(2))
	assert.Equal(t, "20.00", r.MontoPendiente.StringFixed(2))
	assert.Equal(t, 1, r.PorEstado["anulado"].Cantidad)
	assert.Equal(t, 1, r.PorEstado["pagada"].Cantidad)
	assert.Equal(t, fechaFija, r.FechaGeneracion)
}
