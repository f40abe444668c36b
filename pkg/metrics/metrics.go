package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shenikar/geo_risk_system/internal/models"
)

const namespace = "georisk"

// Recorder - коллекторы приложения на отдельном реестре
type Recorder struct {
	registry *prometheus.Registry

	assessmentsTotal    *prometheus.CounterVec
	viewsMounted        prometheus.Gauge
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// New регистрирует коллекторы в новом реестре
func New() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Recorder{
		registry: reg,
		assessmentsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "risk",
			Name:      "assessments_total",
			Help:      "Risk assessments computed, by level",
		}, []string{"level"}),
		viewsMounted: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "views_mounted",
			Help:      "Analysis views with a mounted map",
		}),
		httpRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests processed",
		}, []string{"method", "path", "status"}),
		httpRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"method", "path"}),
	}
}

// ObserveAssessment учитывает вычисленную оценку риска
func (r *Recorder) ObserveAssessment(level models.RiskLevel) {
	r.assessmentsTotal.WithLabelValues(level.String()).Inc()
}

// SetMountedViews выставляет число смонтированных экранов
func (r *Recorder) SetMountedViews(n int) {
	r.viewsMounted.Set(float64(n))
}

// Middleware записывает метрики запросов. Путь берется из шаблона маршрута,
// чтобы идентификаторы экранов не раздували кардинальность
func (r *Recorder) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		method := c.Request.Method
		r.httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(c.Writer.Status())).Inc()
		r.httpRequestDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
	}
}

// Handler отдает /metrics
func (r *Recorder) Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry}))
}

// Registry нужен тестам и для регистрации сторонних коллекторов
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}
