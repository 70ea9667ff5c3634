package pdf

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lizet96/hospital-system/models"
	"github.com/lizet96/hospital-system/repository/memoria"
	"github.com/lizet96/hospital-system/services"
)

// writerGrabador guarda el último documento recibido
type writerGrabador struct {
	doc *Documento
	err error
}

func (w *writerGrabador) Write(_ context.Context, doc *Documento) ([]byte, error) {
	w.doc = doc
	if w.err != nil {
		return nil, w.err
	}
	return []byte("%PDF-fake"), nil
}

// facturaAna crea la factura 7 de Ana Diaz con dos detalles
func facturaAna(t *testing.T) (*services.FacturaService, int64) {
	t.Helper()
	ctx := context.Background()
	repos := memoria.NewStore().Repositorios()
	svc := services.New(repos, zap.NewNop())

	p, err := svc.Pacientes.CreatePaciente(ctx, models.Paciente{Dni: "12345678", Nombres: "Ana", Apellidos: "Diaz"})
	require.NoError(t, err)

	var f *models.Factura
	for i := 0; i < 7; i++ {
		f, err = svc.Facturas.CreateFactura(ctx, models.Factura{
			IDPaciente: p.IDPaciente,
			Total:      decimal.RequireFromString("150.00"),
			Estado:     "PENDIENTE",
		})
		require.NoError(t, err)
	}
	require.Equal(t, int64(7), f.IDFactura)

	for _, d := range []models.DetalleFactura{
		{IDFactura: 7, Concepto: "Consulta", Monto: decimal.RequireFromString("100.00")},
		{IDFactura: 7, Concepto: "Medicina", Monto: decimal.RequireFromString("50.00")},
	} {
		_, err := svc.Facturas.AddDetalle(ctx, d)
		require.NoError(t, err)
	}
	return svc.Facturas, f.IDFactura
}

func TestRenderArmaDocumento(t *testing.T) {
	facturas, id := facturaAna(t)
	w := &writerGrabador{}
	r := NewFacturaRenderer(facturas, w, zap.NewNop())

	datos, err := r.Render(context.Background(), id)
	require.NoError(t, err)
	assert.NotEmpty(t, datos)

	doc := w.doc
	require.NotNil(t, doc)
	assert.Equal(t, "Factura Hospitalaria", doc.Titulo)
	assert.Equal(t, "Paciente: Ana Diaz", doc.Datos[0])
	assert.Equal(t, "DNI: 12345678", doc.Datos[1])
	assert.Equal(t, "Correo: N/A", doc.Datos[2])
	assert.Equal(t, "Teléfono: N/A", doc.Datos[3])
	assert.Equal(t, "Estado: PENDIENTE", doc.Datos[5])
	assert.Equal(t, [2]string{"Concepto", "Monto (S/.)"}, doc.Columnas)
	assert.Equal(t, []Fila{{"Consulta", "100.0"}, {"Medicina", "50.0"}}, doc.Filas)
	assert.Equal(t, "Total: S/ 150.00", doc.Total)
}

func TestRenderFacturaInexistente(t *testing.T) {
	facturas, _ := facturaAna(t)
	r := NewFacturaRenderer(facturas, &writerGrabador{}, zap.NewNop())

	datos, err := r.Render(context.Background(), 999)
	assert.Nil(t, datos)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, err, services.ErrNotFound)

	var re *RenderError
	assert.False(t, errors.As(err, &re))
}

func TestRenderPacienteInexistente(t *testing.T) {
	ctx := context.Background()
	repos := memoria.NewStore().Repositorios()
	svc := services.New(repos, zap.NewNop())
	f, err := svc.Facturas.CreateFactura(ctx, models.Factura{IDPaciente: 55, Total: decimal.NewFromInt(1)})
	require.NoError(t, err)

	_, err = NewFacturaRenderer(svc.Facturas, &writerGrabador{}, nil).Render(ctx, f.IDFactura)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRenderFalloDelMotor(t *testing.T) {
	facturas, id := facturaAna(t)
	r := NewFacturaRenderer(facturas, &writerGrabador{err: errors.New("sin fuentes")}, zap.NewNop())

	_, err := r.Render(context.Background(), id)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)

	var re *RenderError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, ErrCodeRenderFailed, re.Code)
}

func TestFPDFWriter(t *testing.T) {
	facturas, id := facturaAna(t)
	r := NewFacturaRenderer(facturas, &FPDFWriter{Compresion: false}, zap.NewNop())

	datos, err := r.Render(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(datos, []byte("%PDF-")))

	texto := string(datos)
	for _, esperado := range []string{"Factura Hospitalaria", "Consulta", "100.0", "Medicina", "50.0", "Total: S/ 150.00"} {
		assert.True(t, strings.Contains(texto, esperado), "falta %q en el PDF", esperado)
	}
}

func TestFormatoMonto(t *testing.T) {
	assert.Equal(t, "100.0", FormatoMonto(decimal.RequireFromString("100.00")))
	assert.Equal(t, "12.5", FormatoMonto(decimal.RequireFromString("12.50")))
	assert.Equal(t, "12.25", FormatoMonto(decimal.RequireFromString("12.25")))
	assert.Equal(t, "0.0", FormatoMonto(decimal.Zero))
}

func TestHTMLEscapaContenido(t *testing.T) {
	correo := "ana@correo.pe"
	doc := NuevoDocumento(
		models.Factura{Total: decimal.RequireFromString("10"), Estado: "pagado"},
		models.Paciente{Nombres: "Ana", Apellidos: "<b>Diaz</b>", Dni: "12345678", Correo: &correo},
		[]models.DetalleFactura{{Concepto: "Rayos X", Monto: decimal.NewFromInt(10)}},
	)
	html, err := HTML(doc)
	require.NoError(t, err)
	assert.Contains(t, html, "Correo: ana@correo.pe")
	assert.Contains(t, html, "&lt;b&gt;Diaz&lt;/b&gt;")
	assert.Contains(t, html, "Total: S/ 10.00")
}
