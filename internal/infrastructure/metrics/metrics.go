// Package metrics expone los colectores Prometheus de la tienda.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry colectores propios de la aplicación.
	Registry = prometheus.NewRegistry()

	snapshotWrites = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "burger_house",
			Subsystem: "store",
			Name:      "snapshot_writes_total",
			Help:      "Escrituras del espejo clave-valor por clave y resultado.",
		},
		[]string{"key", "result"},
	)

	ordersPlaced = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "burger_house",
			Subsystem: "orders",
			Name:      "placed_total",
			Help:      "Pedidos registrados, separados entre invitados y clientes.",
		},
		[]string{"customer"},
	)

	orderTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "burger_house",
			Subsystem: "orders",
			Name:      "status_changes_total",
			Help:      "Cambios de estado aplicados a pedidos.",
		},
		[]string{"status"},
	)

	logins = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "burger_house",
			Subsystem: "auth",
			Name:      "logins_total",
			Help:      "Intentos de login por resultado (found, created, rejected).",
		},
		[]string{"outcome"},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "burger_house",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Peticiones HTTP atendidas.",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "burger_house",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duración de las peticiones HTTP.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 12), // 5ms a ~10s (el checkout simula 2s)
		},
		[]string{"method", "route"},
	)
)

func init() {
	Registry.MustRegister(
		snapshotWrites,
		ordersPlaced,
		orderTransitions,
		logins,
		httpRequests,
		httpDuration,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
}

// Recorder adaptador de los observadores de dominio sobre los colectores globales.
type Recorder struct{}

// NewRecorder construye el adaptador.
func NewRecorder() *Recorder { return &Recorder{} }

// ObserveWrite cuenta una escritura del espejo.
func (Recorder) ObserveWrite(key string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	snapshotWrites.WithLabelValues(key, result).Inc()
}

// OrderPlaced cuenta un pedido nuevo.
func (Recorder) OrderPlaced(guest bool) {
	customer := "registered"
	if guest {
		customer = "guest"
	}
	ordersPlaced.WithLabelValues(customer).Inc()
}

// OrderStatusChanged cuenta una transición aplicada.
func (Recorder) OrderStatusChanged(status string) {
	orderTransitions.WithLabelValues(status).Inc()
}

// LoginAttempt cuenta un login por resultado.
func (Recorder) LoginAttempt(outcome string) {
	logins.WithLabelValues(outcome).Inc()
}

// Handler expone los colectores registrados en formato Prometheus.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// Middleware mide cada petición de fiber por ruta registrada (no por path, para acotar la cardinalidad).
func Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Path() == "/metrics" {
			return c.Next()
		}
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		route := c.Route().Path
		method := c.Method()
		httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
		httpDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
		return err
	}
}
