package metrics

import (
	"strconv"
	"time"

	"service-marketplace/internal/domain/payment"
	"service-marketplace/internal/usecase/shared"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "marketplace"

// Collector is a prometheus.Collector for the booking and payment flows.
type Collector struct {
	bookings        *prometheus.CounterVec
	payments        *prometheus.CounterVec
	refunds         *prometheus.CounterVec
	slotsGenerated  prometheus.Counter
	requestDuration *prometheus.HistogramVec
}

func NewCollector() *Collector {
	return &Collector{
		bookings: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "bookings_total",
				Help:      "Booking attempts by outcome.",
			}, []string{"outcome"},
		),
		payments: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "payments_total",
				Help:      "Gateway calls by method, kind and outcome.",
			}, []string{"method", "kind", "outcome"},
		),
		refunds: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "refunds_total",
				Help:      "Refund decisions taken on cancellation or by an admin.",
			}, []string{"decision"},
		),
		slotsGenerated: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "slots_generated_total",
				Help:      "Slots materialized from provider availability.",
			},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency.",
				Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
			}, []string{"method", "route", "status"},
		),
	}
}

// Describe is part of the prometheus.Collector interface.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	c.bookings.Describe(ch)
	c.payments.Describe(ch)
	c.refunds.Describe(ch)
	c.slotsGenerated.Describe(ch)
	c.requestDuration.Describe(ch)
}

// Collect is part of the prometheus.Collector interface.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.bookings.Collect(ch)
	c.payments.Collect(ch)
	c.refunds.Collect(ch)
	c.slotsGenerated.Collect(ch)
	c.requestDuration.Collect(ch)
}

func (c *Collector) BookingOutcome(outcome string) {
	c.bookings.WithLabelValues(outcome).Inc()
}

func (c *Collector) Payment(method payment.Method, kind, outcome string) {
	c.payments.WithLabelValues(method.String(), kind, outcome).Inc()
}

func (c *Collector) RefundDecision(decision string) {
	c.refunds.WithLabelValues(decision).Inc()
}

func (c *Collector) SlotsGenerated(n int) {
	if n > 0 {
		c.slotsGenerated.Add(float64(n))
	}
}

func (c *Collector) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	c.requestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(elapsed.Seconds())
}

var _ shared.Recorder = (*Collector)(nil)

// Nop discards everything; use cases get it when metrics are not wired.
type Nop struct{}

func (Nop) BookingOutcome(string)                  {}
func (Nop) Payment(payment.Method, string, string) {}
func (Nop) RefundDecision(string)                  {}
func (Nop) SlotsGenerated(int)                     {}
