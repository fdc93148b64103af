package http

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dropDatabas3/eventkit/internal/storage"
)

var (
	metricsOnce sync.Once

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	storageBackendInfo  *prometheus.GaugeVec
	cacheHitsTotal      *prometheus.CounterVec
)

// RegisterMetrics inicializa las métricas y retorna el handler para /metrics.
// Idempotente: registrar dos veces no falla.
func RegisterMetrics(reg prometheus.Registerer) http.Handler {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	metricsOnce.Do(func() {
		httpRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "eventkit_http_requests_total",
			Help: "Requests procesadas por método, recurso y status",
		}, []string{"method", "resource", "status"})

		httpRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "eventkit_http_request_duration_seconds",
			Help:    "Latencia de los requests",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "resource"})

		storageBackendInfo = prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "eventkit_storage_backend_info",
			Help: "Backend activo por entidad (valor fijo 1)",
		}, []string{"entity", "backend"})

		cacheHitsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "eventkit_cache_requests_total",
			Help: "Lecturas de cache por recurso y resultado (hit|miss)",
		}, []string{"resource", "result"})

		reg.MustRegister(httpRequestsTotal, httpRequestDuration, storageBackendInfo, cacheHitsTotal)
	})

	return promhttp.Handler()
}

// RecordBackends publica el backend activo por entidad. Se llama una vez al
// arrancar, con el mismo mapa que expone /api/v1/storage.
func RecordBackends(backends map[string]storage.BackendKind) {
	if storageBackendInfo == nil {
		return
	}
	for entity, kind := range backends {
		storageBackendInfo.WithLabelValues(entity, string(kind)).Set(1)
	}
}

// Instrument mide requests por recurso lógico.
func Instrument(resource string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if httpRequestsTotal == nil {
			next.ServeHTTP(w, r)
			return
		}
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(sw, r)

		httpRequestsTotal.WithLabelValues(r.Method, resource, strconv.Itoa(sw.status)).Inc()
		httpRequestDuration.WithLabelValues(r.Method, resource).Observe(time.Since(start).Seconds())
	})
}

func recordCache(resource string, hit bool) {
	if cacheHitsTotal == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	cacheHitsTotal.WithLabelValues(resource, result).Inc()
}
