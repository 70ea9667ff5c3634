package pdf

import (
	"bytes"
	"context"

	"github.com/go-pdf/fpdf"
)

const (
	anchoConcepto = 120.0
	anchoMonto    = 50.0
)

// FPDFWriter dibuja la factura en A4 con Helvetica
type FPDFWriter struct {
	// Compresion comprime los streams de página; se apaga en pruebas para leer el texto
	Compresion bool
}

func NewFPDFWriter() *FPDFWriter {
	return &FPDFWriter{Compresion: true}
}

func (w *FPDFWriter) Write(ctx context.Context, doc *Documento) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, NewRenderError(ErrCodeRenderTimeout, "generación cancelada", err)
	}

	p := fpdf.New("P", "mm", "A4", "")
	p.SetCompression(w.Compresion)
	p.SetTitle(doc.Titulo, true)
	p.SetMargins(20, 20, 20)
	tr := p.UnicodeTranslatorFromDescriptor("")
	p.AddPage()

	p.SetFont("Helvetica", "B", 18)
	p.CellFormat(0, 10, tr(doc.Titulo), "", 1, "C", false, 0, "")
	p.Ln(6)

	p.SetFont("Helvetica", "", 11)
	for _, linea := range doc.Datos {
		p.CellFormat(0, 7, tr(linea), "", 1, "L", false, 0, "")
	}
	p.Ln(4)

	p.SetFont("Helvetica", "B", 12)
	p.CellFormat(0, 8, tr(doc.Subtitulo), "", 1, "L", false, 0, "")

	p.SetFillColor(230, 230, 230)
	p.SetFont("Helvetica", "B", 11)
	p.CellFormat(anchoConcepto, 8, tr(doc.Columnas[0]), "1", 0, "L", true, 0, "")
	p.CellFormat(anchoMonto, 8, tr(doc.Columnas[1]), "1", 1, "R", true, 0, "")

	p.SetFont("Helvetica", "", 11)
	for _, fila := range doc.Filas {
		p.CellFormat(anchoConcepto, 7, tr(fila.Concepto), "1", 0, "L", false, 0, "")
		p.CellFormat(anchoMonto, 7, tr(fila.Monto), "1", 1, "R", false, 0, "")
	}
	p.Ln(4)

	p.SetFont("Helvetica", "B", 12)
	p.CellFormat(0, 8, tr(doc.Total), "", 1, "R", false, 0, "")

	if err := p.Error(); err != nil {
		return nil, NewRenderError(ErrCodeRenderFailed, "fpdf no pudo dibujar la factura", err)
	}
	var buf bytes.Buffer
	if err := p.Output(&buf); err != nil {
		return nil, NewRenderError(ErrCodeRenderFailed, "fpdf no pudo escribir el PDF", err)
	}
	return buf.Bytes(), nil
}

var _ Writer = (*FPDFWriter)(nil)
