// Package metrics owns the Prometheus registry for the planner service.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sujeonghan78-lgtm/CargoLoading/internal/domain"
)

type Metrics struct {
	registry *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	PlansTotal          *prometheus.CounterVec
	PlanDuration        prometheus.Histogram
	VehiclesRequired    *prometheus.HistogramVec
	PlanCacheLookups    *prometheus.CounterVec
}

// New builds a registry with Go runtime and process collectors plus the
// planner's own metrics.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	m := &Metrics{registry: reg}

	m.HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_server_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	m.HTTPRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_server_request_duration_seconds",
		Help:    "HTTP request latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})

	m.PlansTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "loadplan_plans_total",
		Help: "Fleet plans computed, by result",
	}, []string{"result"})

	m.PlanDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "loadplan_plan_duration_seconds",
		Help:    "Time spent computing a fleet plan",
		Buckets: prometheus.ExponentialBuckets(0.001, 4, 8),
	})

	m.VehiclesRequired = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "loadplan_vehicles_required",
		Help:    "Vehicles needed by each evaluated vehicle type, by outcome",
		Buckets: []float64{1, 2, 3, 5, 8, 13, 21, 34, 50},
	}, []string{"outcome"})

	m.PlanCacheLookups = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "loadplan_plan_cache_lookups_total",
		Help: "Plan cache lookups, by result",
	}, []string{"result"})

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.PlansTotal,
		m.PlanDuration,
		m.VehiclesRequired,
		m.PlanCacheLookups,
	)

	return m
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveHTTP records one served request.
func (m *Metrics) ObserveHTTP(method, path string, status int, dur time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(dur.Seconds())
}

// ObservePlan records a computed fleet plan.
func (m *Metrics) ObservePlan(plan *domain.FleetPlan, dur time.Duration) {
	m.PlanDuration.Observe(dur.Seconds())

	result := "feasible"
	if !plan.Feasible() {
		result = "infeasible"
	}
	m.PlansTotal.WithLabelValues(result).Inc()

	for _, e := range plan.Evaluations {
		m.VehiclesRequired.WithLabelValues(string(e.Outcome)).Observe(float64(e.Count()))
	}
}

// ObservePlanError records a planning run that returned an error, labeled
// with a short reason such as "oversize" or "invalid".
func (m *Metrics) ObservePlanError(reason string) {
	m.PlansTotal.WithLabelValues(reason).Inc()
}

// ObserveCacheLookup records a plan cache hit or miss.
func (m *Metrics) ObserveCacheLookup(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	m.PlanCacheLookups.WithLabelValues(result).Inc()
}
