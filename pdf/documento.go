package pdf

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/lizet96/hospital-system/models"
)

const (
	TituloFactura   = "Factura Hospitalaria"
	TituloDetalles  = "Detalles de la factura:"
	ColumnaConcepto = "Concepto"
	ColumnaMonto    = "Monto (S/.)"
	sinDato         = "N/A"
)

// Fila es una línea de la tabla de detalles ya formateada
type Fila struct {
	Concepto string
	Monto    string
}

// Documento es el contenido de la factura independiente del motor de PDF
type Documento struct {
	Titulo    string
	Datos     []string
	Subtitulo string
	Columnas  [2]string
	Filas     []Fila
	Total     string
}

// NuevoDocumento arma el contenido a partir de la factura, su paciente y sus detalles.
// El total es el guardado en la factura, no la suma de los detalles.
func NuevoDocumento(f models.Factura, p models.Paciente, detalles []models.DetalleFactura) *Documento {
	doc := &Documento{
		Titulo: TituloFactura,
		Datos: []string{
			"Paciente: " + p.NombreCompleto(),
			"DNI: " + p.Dni,
			"Correo: " + opcional(p.Correo),
			"Teléfono: " + opcional(p.Telefono),
			"Fecha de Emisión: " + f.FechaEmision.String(),
			"Estado: " + f.Estado,
		},
		Subtitulo: TituloDetalles,
		Columnas:  [2]string{ColumnaConcepto, ColumnaMonto},
		Filas:     make([]Fila, 0, len(detalles)),
		Total:     "Total: S/ " + f.Total.StringFixed(2),
	}
	for _, d := range detalles {
		doc.Filas = append(doc.Filas, Fila{Concepto: d.Concepto, Monto: FormatoMonto(d.Monto)})
	}
	return doc
}

// FormatoMonto muestra el monto con al menos un decimal: 100 -> "100.0", 12.25 -> "12.25"
func FormatoMonto(m decimal.Decimal) string {
	s := m.String()
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func opcional(s *string) string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return sinDato
	}
	return *s
}
