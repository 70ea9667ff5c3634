package routes

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lizet96/hospital-system/handlers"
	"github.com/lizet96/hospital-system/middleware"
	"github.com/lizet96/hospital-system/models"
	"github.com/lizet96/hospital-system/services"
)

const Version = "1.0.0"

// Opciones de la capa HTTP
type Opciones struct {
	CORSOrigins     string
	RateLimitMax    int
	RateLimitWindow time.Duration
	// LimiterStorage comparte el rate limit entre instancias; nil usa memoria
	LimiterStorage fiber.Storage
	BodyLimit      int
	RequestTimeout time.Duration
}

// Dependencias que necesita el router
type Dependencias struct {
	Services *services.Services
	// Auth nil deja la API abierta
	Auth     *services.AuthService
	Renderer handlers.RenderizadorFacturas
	Metrics  *middleware.Metrics
	Logger   *zap.Logger
	// Ping comprueba el almacén en /health; puede ser nil
	Ping     func(ctx context.Context) error
	Opciones Opciones
}

// NewApp crea la aplicación fiber con el manejador de errores y todas las rutas
func NewApp(deps Dependencias) *fiber.App {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.Metrics == nil {
		deps.Metrics = middleware.NewMetrics()
	}
	if deps.Opciones.BodyLimit <= 0 {
		deps.Opciones.BodyLimit = 4 * 1024 * 1024
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(deps.Logger),
		AppName:      "Hospital Management System API v" + Version,
		BodyLimit:    deps.Opciones.BodyLimit,
	})
	SetupRoutes(app, deps)
	return app
}

// SetupRoutes configura todas las rutas de la aplicación
func SetupRoutes(app *fiber.App, deps Dependencias) {
	opts := deps.Opciones

	// Middleware global
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(deps.Metrics.Middleware())
	app.Use(middleware.RequestLogger(deps.Logger))
	app.Use(cors.New(cors.Config{
		AllowOrigins: opts.CORSOrigins,
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))
	app.Use(middleware.SecurityHeaders())

	// Ruta de salud del sistema
	app.Get("/health", func(c *fiber.Ctx) error {
		if deps.Ping != nil {
			if err := deps.Ping(c.UserContext()); err != nil {
				deps.Logger.Warn("Health check fallido", zap.Error(err))
				return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
					"status":  "error",
					"message": "El almacén de datos no responde",
				})
			}
		}
		return c.JSON(fiber.Map{
			"status":  "ok",
			"message": "Hospital Management System API",
			"version": Version,
		})
	})
	app.Get("/metrics", deps.Metrics.Handler())

	// Grupo de API
	api := app.Group("/api")
	if opts.RateLimitMax > 0 {
		api.Use(middleware.CreateRateLimiter(middleware.RateLimitConfig{
			Max:        opts.RateLimitMax,
			Expiration: opts.RateLimitWindow,
			Storage:    opts.LimiterStorage,
		}))
	}
	api.Use(middleware.BodySizeLimit(opts.BodyLimit))
	if opts.RequestTimeout > 0 {
		api.Use(middleware.RequestTimeout(opts.RequestTimeout))
	}

	val := handlers.NewValidador()
	rol := func(roles ...string) fiber.Handler {
		return func(c *fiber.Ctx) error { return c.Next() }
	}

	// === RUTAS DE AUTENTICACIÓN (solo con AUTH_ENABLED) ===
	protected := api
	if deps.Auth != nil {
		authH := handlers.NewAuthHandler(deps.Auth, val)
		jwt := middleware.JWTMiddleware(deps.Auth)

		auth := api.Group("/auth")
		auth.Post("/login", middleware.CreateRateLimiter(withStorage(middleware.AuthRateLimit, opts.LimiterStorage)), authH.Login)
		auth.Post("/mfa/setup", jwt, authH.SetupMFA)
		auth.Post("/mfa/verify", jwt, authH.VerifyMFA)

		protected = api.Group("", jwt)
		rol = middleware.RequireRole
	}
	todos := rol(models.RolAdmin, models.RolRecepcion, models.RolMedico)
	gestion := rol(models.RolAdmin, models.RolRecepcion)
	admin := rol(models.RolAdmin)

	// --- RUTAS DE PACIENTES ---
	pacH := handlers.NewPacienteHandler(deps.Services.Pacientes, val)
	pacientes := protected.Group("/pacientes")
	pacientes.Get("/", todos, pacH.ObtenerPacientes)
	pacientes.Post("/", gestion, pacH.CrearPaciente)
	pacientes.Get("/dni/:dni", todos, pacH.ObtenerPacientePorDni)
	pacientes.Get("/historia/:idHistoria/antecedentes", todos, pacH.ObtenerAntecedentes)
	pacientes.Post("/historia/:idHistoria/antecedentes", rol(models.RolAdmin, models.RolMedico), pacH.AgregarAntecedente)
	pacientes.Get("/:id", todos, pacH.ObtenerPaciente)
	pacientes.Put("/:id", gestion, pacH.ActualizarPaciente)
	pacientes.Delete("/:id", admin, pacH.EliminarPaciente)
	pacientes.Get("/:id/historia", todos, pacH.ObtenerHistoria)

	// --- RUTAS DE MÉDICOS ---
	medH := handlers.NewMedicoHandler(deps.Services.Medicos, val)
	medicos := protected.Group("/medicos")
	medicos.Get("/especialidades", todos, medH.ObtenerEspecialidades)
	medicos.Post("/especialidades", admin, medH.CrearEspecialidad)
	medicos.Get("/especialidades/:id", todos, medH.ObtenerEspecialidad)
	medicos.Put("/especialidades/:id", admin, medH.ActualizarEspecialidad)
	medicos.Delete("/especialidades/:id", admin, medH.EliminarEspecialidad)
	medicos.Get("/", todos, medH.ObtenerMedicos)
	medicos.Post("/", admin, medH.CrearMedico)
	medicos.Get("/:id", todos, medH.ObtenerMedico)
	medicos.Put("/:id", admin, medH.ActualizarMedico)
	medicos.Delete("/:id", admin, medH.EliminarMedico)

	// --- RUTAS DE FACTURAS ---
	facH := handlers.NewFacturaHandler(deps.Services.Facturas, deps.Renderer, val, deps.Metrics.PDFRenderizado)
	facturas := protected.Group("/facturas")
	facturas.Get("/", gestion, facH.ObtenerFacturas)
	facturas.Post("/", gestion, facH.CrearFactura)
	facturas.Get("/paciente/:idPaciente", gestion, facH.ObtenerFacturasPorPaciente)
	facturas.Get("/:id", gestion, facH.ObtenerFactura)
	facturas.Put("/:id", gestion, facH.ActualizarFactura)
	facturas.Patch("/:id/estado", gestion, facH.CambiarEstado)
	facturas.Delete("/:id", admin, facH.EliminarFactura)
	facturas.Get("/:idFactura/detalles", gestion, facH.ObtenerDetalles)
	facturas.Post("/:idFactura/detalles", gestion, facH.AgregarDetalle)
	facturas.Get("/:id/pdf", gestion, facH.DescargarPDF)

	// --- RUTAS DE CITAS ---
	citH := handlers.NewCitaHandler(deps.Services.Citas, val)
	citas := protected.Group("/citas")
	citas.Get("/", todos, citH.ObtenerCitas)
	citas.Post("/", gestion, citH.CrearCita)
	citas.Get("/paciente/:id", todos, citH.ObtenerCitasPorPaciente)
	citas.Get("/medico/:id", todos, citH.ObtenerCitasPorMedico)
	citas.Get("/:id", todos, citH.ObtenerCita)
	citas.Put("/:id", gestion, citH.ActualizarCita)
	citas.Patch("/:id/estado", todos, citH.CambiarEstado)
	citas.Delete("/:id", gestion, citH.EliminarCita)

	// --- RUTAS DE CONSULTAS ---
	conH := handlers.NewConsultaHandler(deps.Services.Consultas, val)
	consultas := protected.Group("/consultas")
	consultas.Get("/", todos, conH.ObtenerConsultas)
	consultas.Post("/", rol(models.RolAdmin, models.RolMedico), conH.CrearConsulta)
	consultas.Get("/paciente/:id", todos, conH.ObtenerConsultasPorPaciente)
	consultas.Get("/:id", todos, conH.ObtenerConsulta)
	consultas.Put("/:id", rol(models.RolAdmin, models.RolMedico), conH.ActualizarConsulta)
	consultas.Delete("/:id", admin, conH.EliminarConsulta)

	// --- RUTAS DE REPORTES ---
	repH := handlers.NewReporteHandler(deps.Services.Reportes)
	reportes := protected.Group("/reportes")
	reportes.Get("/facturas", gestion, repH.GenerarReporteFacturas)

	app.Use(handlers.RutaNoEncontrada)
}

func withStorage(cfg middleware.RateLimitConfig, storage fiber.Storage) middleware.RateLimitConfig {
	cfg.Storage = storage
	return cfg
}
