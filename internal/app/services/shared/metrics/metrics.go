package metrics

import (
	"context"
	"hospital-service/internal/app/contracts"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const serviceName = "hospital-service"

// Collector owns a private registry so several instances (one per test) never collide on
// registration.
type Collector struct {
	registry            *prometheus.Registry
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	domainEventsTotal   *prometheus.CounterVec
}

func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		httpRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "endpoint", "status_code", "service"},
		),
		httpRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "endpoint", "service"},
		),
		domainEventsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hospital_domain_events_total",
				Help: "Domain events emitted by bookings and billing, by routing key and outcome",
			},
			[]string{"routing_key", "status", "service"},
		),
	}

	c.registry.MustRegister(
		c.httpRequestsTotal,
		c.httpRequestDuration,
		c.domainEventsTotal,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return c
}

func (c *Collector) RecordHTTPRequest(method, endpoint string, statusCode int, duration time.Duration) {
	c.httpRequestsTotal.WithLabelValues(method, endpoint, strconv.Itoa(statusCode), serviceName).Inc()
	c.httpRequestDuration.WithLabelValues(method, endpoint, serviceName).Observe(duration.Seconds())
}

func (c *Collector) RecordDomainEvent(routingKey string, err error) {
	status := "published"
	if err != nil {
		status = "failed"
	}
	c.domainEventsTotal.WithLabelValues(routingKey, status, serviceName).Inc()
}

func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}

type countingPublisher struct {
	next      contracts.EventPublisher
	collector *Collector
}

// WrapPublisher counts every event handed to next, successful or not.
func WrapPublisher(next contracts.EventPublisher, collector *Collector) contracts.EventPublisher {
	return &countingPublisher{next: next, collector: collector}
}

func (p *countingPublisher) Publish(ctx context.Context, routingKey string, payload interface{}) error {
	err := p.next.Publish(ctx, routingKey, payload)
	p.collector.RecordDomainEvent(routingKey, err)
	return err
}
