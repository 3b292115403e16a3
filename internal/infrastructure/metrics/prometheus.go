// Package metrics expone las métricas de evaluación en formato Prometheus.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "estoque"

// Recorder implementa ports.EvaluationRecorder sobre un registro propio
// (no el global, para que los tests puedan crear varios).
type Recorder struct {
	registry *prometheus.Registry
	duration *prometheus.HistogramVec
	entities *prometheus.CounterVec
	statuses *prometheus.CounterVec
}

// NewRecorder registra los colectores del motor más los de proceso y runtime de Go.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "batch_duration_seconds",
			Help:      "Duración de las evaluaciones por lote.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"kind"}),
		entities: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "entities_evaluated_total",
			Help:      "Entidades evaluadas por tipo de lote.",
		}, []string{"kind"}),
		statuses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "status_total",
			Help:      "Estados resueltos por tipo de lote.",
		}, []string{"kind", "status"}),
	}
	r.registry.MustRegister(
		r.duration, r.entities, r.statuses,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

func (r *Recorder) ObserveBatch(kind string, elapsed time.Duration, entities int) {
	r.duration.WithLabelValues(kind).Observe(elapsed.Seconds())
	r.entities.WithLabelValues(kind).Add(float64(entities))
}

func (r *Recorder) CountStatus(kind, status string) {
	r.statuses.WithLabelValues(kind, status).Inc()
}

// Registry registro subyacente.
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

// Handler handler HTTP de /metrics.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
