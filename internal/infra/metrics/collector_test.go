//go:build unit

package metrics_test

import (
	"strings"
	"testing"
	"time"

	"service-marketplace/internal/domain/payment"
	"service-marketplace/internal/infra/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	c := metrics.NewCollector()
	reg := prometheus.NewPedanticRegistry()
	require.NoError(t, reg.Register(c))

	c.BookingOutcome("confirmed")
	c.BookingOutcome("confirmed")
	c.BookingOutcome("slot_unavailable")
	c.Payment(payment.MethodStripe, "charge", "success")
	c.RefundDecision("auto_approved")
	c.SlotsGenerated(12)
	c.SlotsGenerated(0)
	c.ObserveRequest("GET", "/api/v1/services", 200, 15*time.Millisecond)

	expected := `
# HELP marketplace_bookings_total Booking attempts by outcome.
# TYPE marketplace_bookings_total counter
marketplace_bookings_total{outcome="confirmed"} 2
marketplace_bookings_total{outcome="slot_unavailable"} 1
# HELP marketplace_slots_generated_total Slots materialized from provider availability.
# TYPE marketplace_slots_generated_total counter
marketplace_slots_generated_total 12
`
	err := testutil.GatherAndCompare(reg, strings.NewReader(expected),
		"marketplace_bookings_total", "marketplace_slots_generated_total")
	assert.NoError(t, err)

	count, err := testutil.GatherAndCount(reg, "marketplace_payments_total", "marketplace_refunds_total", "marketplace_http_request_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}
