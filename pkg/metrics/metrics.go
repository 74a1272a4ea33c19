// Package metrics holds the Prometheus instrumentation for the consulta
// service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	Consultas    *prometheus.CounterVec
	HealthChecks *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics on the default registry.
func New() *Metrics {
	return &Metrics{
		Consultas: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "transito_consultas_total",
			Help: "Total number of consulta requests by outcome",
		}, []string{"outcome"}),
		HealthChecks: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "transito_health_checks_total",
			Help: "Total number of health probes by status",
		}, []string{"status"}),
	}
}

// Outcome labels for the consultas counter.
const (
	OutcomeFound        = "found"
	OutcomeNotFound     = "not_found"
	OutcomeInvalidInput = "invalid_input"
	OutcomeError        = "error"
)

// ObserveConsulta increments the consulta counter for one outcome.
func (m *Metrics) ObserveConsulta(outcome string) {
	if m == nil {
		return
	}
	m.Consultas.WithLabelValues(outcome).Inc()
}

// ObserveHealthCheck increments the health probe counter.
func (m *Metrics) ObserveHealthCheck(status string) {
	if m == nil {
		return
	}
	m.HealthChecks.WithLabelValues(status).Inc()
}
