package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Métricas de negocio
	ProductsCreatedCounter   prometheus.Counter
	StockAdjustmentsCounter  *prometheus.CounterVec
	SalesRecordedCounter     prometheus.Counter
	AlertReportsCounter      prometheus.Counter
	AlertsEmittedHistogram   prometheus.Histogram
	InsufficientStockCounter prometheus.Counter

	// Métricas HTTP
	RequestDurationHistogram *prometheus.HistogramVec
	APIRequestCounter        *prometheus.CounterVec
	APIErrorCounter          *prometheus.CounterVec

	namespace string
)

// Init registra todas las métricas con el prefijo configurado.
// Llamar una sola vez al arranque.
func Init(prefix string) {
	namespace = prefix

	ProductsCreatedCounter = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "products_created_total",
		Help:      "Total de productos creados (con stock inicial)",
	})

	StockAdjustmentsCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stock_adjustments_total",
			Help:      "Total de ajustes de stock aplicados",
		},
		[]string{"reason"},
	)

	SalesRecordedCounter = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sales_recorded_total",
		Help:      "Total de ventas registradas",
	})

	AlertReportsCounter = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "alert_reports_total",
		Help:      "Total de reportes de stock bajo generados",
	})

	AlertsEmittedHistogram = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "alerts_per_report",
		Help:      "Cantidad de alertas por reporte de stock bajo",
		Buckets:   []float64{0, 1, 5, 10, 25, 50, 100, 250},
	})

	InsufficientStockCounter = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "insufficient_stock_rejections_total",
		Help:      "Total de ajustes rechazados por stock insuficiente",
	})

	RequestDurationHistogram = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duración de las peticiones HTTP en segundos",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	APIRequestCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "api_requests_total",
			Help:      "Total de peticiones al API",
		},
		[]string{"method", "path"},
	)

	APIErrorCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "api_errors_total",
			Help:      "Total de respuestas de error del API",
		},
		[]string{"method", "path", "status"},
	)
}

// Middleware registra contadores y duración por petición. Usa c.Route().Path
// (la plantilla de la ruta) como label para no explotar la cardinalidad.
func Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		path := c.Route().Path
		method := c.Method()
		status := strconv.Itoa(c.Response().StatusCode())

		APIRequestCounter.With(prometheus.Labels{
			"method": method,
			"path":   path,
		}).Inc()

		RequestDurationHistogram.With(prometheus.Labels{
			"method": method,
			"path":   path,
			"status": status,
		}).Observe(time.Since(start).Seconds())

		if c.Response().StatusCode() >= 400 {
			APIErrorCounter.With(prometheus.Labels{
				"method": method,
				"path":   path,
				"status": status,
			}).Inc()
		}

		return err
	}
}

// Handler expone el endpoint /metrics en formato Prometheus.
func Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}

// Los Record* son no-op si Init no fue llamado (tests de handlers).

// RecordProductCreated incrementa el contador de productos creados.
func RecordProductCreated() {
	if ProductsCreatedCounter != nil {
		ProductsCreatedCounter.Inc()
	}
}

// RecordStockAdjustment incrementa el contador de ajustes por razón.
func RecordStockAdjustment(reason string) {
	if StockAdjustmentsCounter != nil {
		StockAdjustmentsCounter.WithLabelValues(reason).Inc()
	}
}

// RecordSale incrementa el contador de ventas registradas.
func RecordSale() {
	if SalesRecordedCounter != nil {
		SalesRecordedCounter.Inc()
	}
}

// RecordAlertReport registra un reporte generado y su cantidad de alertas.
func RecordAlertReport(alertCount int) {
	if AlertReportsCounter != nil {
		AlertReportsCounter.Inc()
	}
	if AlertsEmittedHistogram != nil {
		AlertsEmittedHistogram.Observe(float64(alertCount))
	}
}

// RecordInsufficientStock incrementa el contador de rechazos por stock insuficiente.
func RecordInsufficientStock() {
	if InsufficientStockCounter != nil {
		InsufficientStockCounter.Inc()
	}
}
