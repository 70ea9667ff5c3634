package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lizet96/hospital-system/config"
	"github.com/lizet96/hospital-system/middleware"
	"github.com/lizet96/hospital-system/pdf"
	"github.com/lizet96/hospital-system/routes"
	"github.com/lizet96/hospital-system/services"
)

const shutdownTimeout = 10 * time.Second

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Inicia el servidor HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context())
		},
	}
}

func runServer(parent context.Context) error {
	// Los montos viajan como números en JSON
	decimal.MarshalJSONWithoutQuotes = true

	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	e, err := cargarEntorno()
	if err != nil {
		return err
	}
	defer e.Close()
	log := e.log
	cfg := e.cfg

	if cfg.MigrateOnStart && cfg.Storage == config.StoragePostgres {
		m, err := e.migrador()
		if err != nil {
			return err
		}
		err = m.Up()
		_ = m.Close()
		if err != nil {
			return fmt.Errorf("migrar al iniciar: %w", err)
		}
	}
	if err := e.abrirAlmacen(ctx); err != nil {
		return err
	}

	svc := services.New(e.repos, log)
	metrics := middleware.NewMetrics()

	writer, cerrarWriter := nuevoWriter(cfg, log)
	defer cerrarWriter()

	deps := routes.Dependencias{
		Services: svc,
		Renderer: pdf.NewFacturaRenderer(svc.Facturas, writer, log),
		Metrics:  metrics,
		Logger:   log,
		Opciones: routes.Opciones{
			CORSOrigins:     cfg.CORSOrigins,
			RateLimitMax:    cfg.RateLimitMax,
			RateLimitWindow: cfg.RateLimitWindow,
			RequestTimeout:  30 * time.Second,
		},
	}
	if e.pool != nil {
		deps.Ping = e.pool.Ping
	}
	if cfg.AuthEnabled {
		deps.Auth = services.NewAuthService(e.repos.Usuarios, services.AuthConfig{
			Secret:     cfg.JWTSecret,
			Expiracion: cfg.JWTExpiration,
		}, log)
	} else {
		log.Warn("Autenticación desactivada: todas las rutas de /api son públicas")
	}
	if cfg.RedisURL != "" {
		storage, err := middleware.NewRedisStorage(ctx, cfg.RedisURL)
		if err != nil {
			return err
		}
		defer storage.Close()
		deps.Opciones.LimiterStorage = storage
		log.Info("Rate limit compartido en redis")
	}

	app := routes.NewApp(deps)

	errCh := make(chan error, 1)
	go func() {
		log.Info("Servidor Hospital Management System iniciado",
			zap.String("port", cfg.Port),
			zap.String("environment", cfg.Environment),
			zap.String("storage", cfg.Storage),
			zap.String("pdf_engine", cfg.PDFEngine),
		)
		errCh <- app.Listen(":" + cfg.Port)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("servidor HTTP: %w", err)
	case <-ctx.Done():
	}

	log.Info("Apagando servidor")
	if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
		return fmt.Errorf("apagar servidor: %w", err)
	}
	return nil
}

// nuevoWriter elige el motor de PDF configurado
func nuevoWriter(cfg *config.Config, log *zap.Logger) (pdf.Writer, func()) {
	if cfg.PDFEngine == config.PDFEngineChromedp {
		w := pdf.NewChromedpWriter(pdf.ChromedpConfig{
			RemoteURL: cfg.ChromeURL,
			NoSandbox: true,
			Logger:    log,
		})
		return w, func() { _ = w.Close() }
	}
	return pdf.NewFPDFWriter(), func() {}
}
