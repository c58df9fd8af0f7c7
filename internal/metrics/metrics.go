// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	ResultValid   = "valid"
	ResultInvalid = "invalid"
)

// Collectors groups every counter the service records. A nil *Collectors is
// valid and records nothing.
type Collectors struct {
	registry *prometheus.Registry

	validations      *prometheus.CounterVec
	validationIssues *prometheus.CounterVec
	httpRequests     *prometheus.CounterVec
}

// New creates the collectors on a private registry, alongside the standard
// Go runtime and process collectors.
func New() *Collectors {
	reg := prometheus.NewRegistry()
	c := &Collectors{
		registry: reg,
		validations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "admin_validations_total",
				Help: "Total number of records validated, by entity and result",
			},
			[]string{"entity", "result"},
		),
		validationIssues: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "admin_validation_issues_total",
				Help: "Total number of validation issues reported, by entity and code",
			},
			[]string{"entity", "code"},
		),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "admin_http_requests_total",
				Help: "Total number of HTTP requests served, by method and status",
			},
			[]string{"method", "status"},
		),
	}
	reg.MustRegister(
		c.validations,
		c.validationIssues,
		c.httpRequests,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return c
}

// ObserveValidation records one validation outcome. codes lists the code of
// every reported issue and is empty for a valid record.
func (c *Collectors) ObserveValidation(entity string, codes []string) {
	if c == nil {
		return
	}
	if len(codes) == 0 {
		c.validations.WithLabelValues(entity, ResultValid).Inc()
		return
	}
	c.validations.WithLabelValues(entity, ResultInvalid).Inc()
	for _, code := range codes {
		c.validationIssues.WithLabelValues(entity, code).Inc()
	}
}

func (c *Collectors) ObserveRequest(method string, status int) {
	if c == nil {
		return
	}
	c.httpRequests.WithLabelValues(method, strconv.Itoa(status)).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (c *Collectors) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// Gatherer exposes the registry for tests and embedding.
func (c *Collectors) Gatherer() prometheus.Gatherer {
	return c.registry
}
