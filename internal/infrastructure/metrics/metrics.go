// Package metrics métricas Prometheus del motor de movimientos.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/jhoicas/picking-api/internal/application/inventory"
	"github.com/jhoicas/picking-api/internal/domain/entity"
)

var _ inventory.Observer = (*Recorder)(nil)

// Recorder implementa inventory.Observer sobre Prometheus.
type Recorder struct {
	confirms       *prometheus.CounterVec
	confirmLatency *prometheus.HistogramVec
	stockUnits     *prometheus.CounterVec
}

// NewRecorder crea y registra las métricas en reg.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		confirms: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "picking_confirmations_total",
				Help: "Llamadas de confirmación por tipo de documento y resultado",
			},
			[]string{"doc_type", "outcome"},
		),
		confirmLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "picking_confirmation_duration_seconds",
				Help:    "Duración de las llamadas de confirmación",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"doc_type"},
		),
		stockUnits: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "picking_stock_units_total",
				Help: "Unidades movidas en el libro de stock por tipo de documento y dirección",
			},
			[]string{"doc_type", "direction"},
		),
	}
	reg.MustRegister(r.confirms, r.confirmLatency, r.stockUnits)
	return r
}

// ObserveConfirm cuenta la llamada y su duración.
func (r *Recorder) ObserveConfirm(docType entity.DocType, outcome string, elapsed time.Duration) {
	r.confirms.WithLabelValues(string(docType), outcome).Inc()
	r.confirmLatency.WithLabelValues(string(docType)).Observe(elapsed.Seconds())
}

// ObserveStockAdjustment acumula unidades entrantes o salientes.
func (r *Recorder) ObserveStockAdjustment(docType entity.DocType, delta int64) {
	direction := "in"
	if delta < 0 {
		direction = "out"
		delta = -delta
	}
	r.stockUnits.WithLabelValues(string(docType), direction).Add(float64(delta))
}
