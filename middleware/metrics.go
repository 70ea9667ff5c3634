package middleware

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics agrupa los colectores HTTP sobre un registro propio
type Metrics struct {
	registry *prometheus.Registry
	requests *prometheus.CounterVec
	duracion *prometheus.HistogramVec
	pdfs     *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hospital",
			Name:      "http_requests_total",
			Help:      "Peticiones HTTP atendidas.",
		}, []string{"method", "route", "status"}),
		duracion: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "hospital",
			Name:      "http_request_duration_seconds",
			Help:      "Latencia de las peticiones HTTP.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		pdfs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hospital",
			Name:      "facturas_pdf_total",
			Help:      "Facturas renderizadas a PDF por resultado.",
		}, []string{"resultado"}),
	}
	m.registry.MustRegister(
		m.requests,
		m.duracion,
		m.pdfs,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Middleware cuenta peticiones por ruta registrada, no por path concreto
func (m *Metrics) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		resolverError(c, c.Next())
		status := c.Response().StatusCode()
		route := c.Route().Path
		m.requests.WithLabelValues(c.Method(), route, strconv.Itoa(status)).Inc()
		m.duracion.WithLabelValues(c.Method(), route).Observe(time.Since(start).Seconds())
		return nil
	}
}

// PDFRenderizado registra el resultado de un render ("ok" o el código de error)
func (m *Metrics) PDFRenderizado(resultado string) {
	m.pdfs.WithLabelValues(resultado).Inc()
}

// Handler expone el registro en formato prometheus
func (m *Metrics) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}
