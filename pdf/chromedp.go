package pdf

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"go.uber.org/zap"
)

const defaultChromeTimeout = 30 * time.Second

var plantillaFactura = template.Must(template.New("factura").Parse(`<!DOCTYPE html>
<html lang="es">
<head>
<meta charset="UTF-8">
<title>{{.Titulo}}</title>
<style>
  body { font-family: Helvetica, Arial, sans-serif; font-size: 11pt; margin: 0; }
  h1 { text-align: center; font-size: 18pt; margin-bottom: 18pt; }
  p.dato { margin: 2pt 0; }
  h2 { font-size: 12pt; margin-top: 12pt; }
  table { width: 100%; border-collapse: collapse; }
  th, td { border: 1px solid #444; padding: 4pt 6pt; }
  th { background: #e6e6e6; text-align: left; }
  .monto { text-align: right; width: 30%; }
  p.total { text-align: right; font-weight: bold; font-size: 12pt; margin-top: 12pt; }
</style>
</head>
<body>
<h1>{{.Titulo}}</h1>
{{range .Datos}}<p class="dato">{{.}}</p>
{{end}}
<h2>{{.Subtitulo}}</h2>
<table>
<thead><tr><th>{{index .Columnas 0}}</th><th class="monto">{{index .Columnas 1}}</th></tr></thead>
<tbody>
{{range .Filas}}<tr><td>{{.Concepto}}</td><td class="monto">{{.Monto}}</td></tr>
{{end}}</tbody>
</table>
<p class="total">{{.Total}}</p>
</body>
</html>`))

// ChromedpConfig configura la impresión con Chrome headless
type ChromedpConfig struct {
	// RemoteURL apunta a un Chrome remoto (ws://...); vacío lanza uno local
	RemoteURL string
	Timeout   time.Duration
	NoSandbox bool
	Logger    *zap.Logger
}

// ChromedpWriter imprime el Documento como HTML con Chrome
type ChromedpWriter struct {
	cfg         ChromedpConfig
	logger      *zap.Logger
	allocCtx    context.Context
	allocCancel context.CancelFunc
}

func NewChromedpWriter(cfg ChromedpConfig) *ChromedpWriter {
	if cfg.Timeout == 0 {
		cfg.Timeout = defaultChromeTimeout
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	w := &ChromedpWriter{cfg: cfg, logger: logger}

	if cfg.RemoteURL != "" {
		w.allocCtx, w.allocCancel = chromedp.NewRemoteAllocator(context.Background(), cfg.RemoteURL)
		return w
	}
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-first-run", true),
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("font-render-hinting", "none"),
	)
	if cfg.NoSandbox {
		opts = append(opts, chromedp.Flag("no-sandbox", true))
	}
	w.allocCtx, w.allocCancel = chromedp.NewExecAllocator(context.Background(), opts...)
	return w
}

// HTML devuelve el documento como página HTML
func HTML(doc *Documento) (string, error) {
	var buf bytes.Buffer
	if err := plantillaFactura.Execute(&buf, doc); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (w *ChromedpWriter) Write(ctx context.Context, doc *Documento) ([]byte, error) {
	html, err := HTML(doc)
	if err != nil {
		return nil, NewRenderError(ErrCodeRenderFailed, "no se pudo armar el HTML", err)
	}

	ctx, cancel := context.WithTimeout(ctx, w.cfg.Timeout)
	defer cancel()

	browserCtx, browserCancel := chromedp.NewContext(w.allocCtx,
		chromedp.WithLogf(func(format string, args ...any) {
			w.logger.Debug(fmt.Sprintf(format, args...))
		}),
	)
	defer browserCancel()

	// el navegador vive en allocCtx; se corta cuando vence ctx
	stop := context.AfterFunc(ctx, browserCancel)
	defer stop()

	var datos []byte
	err = chromedp.Run(browserCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			arbol, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(arbol.Frame.ID, html).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			// A4 en pulgadas
			pdf, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).
				WithPaperHeight(11.69).
				WithMarginTop(0.79).
				WithMarginBottom(0.79).
				WithMarginLeft(0.79).
				WithMarginRight(0.79).
				Do(ctx)
			if err != nil {
				return err
			}
			datos = pdf
			return nil
		}),
	)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, NewRenderError(ErrCodeRenderTimeout,
				fmt.Sprintf("la impresión superó %v", w.cfg.Timeout), err)
		}
		w.logger.Error("Falló la impresión con chromedp", zap.Error(err))
		return nil, NewRenderError(ErrCodeRenderFailed, "chromedp no pudo imprimir la factura", err)
	}
	return datos, nil
}

// Close libera el navegador
func (w *ChromedpWriter) Close() error {
	if w.allocCancel != nil {
		w.allocCancel()
	}
	return nil
}

var _ Writer = (*ChromedpWriter)(nil)
