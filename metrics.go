package adyen_soap_recurring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome label values.
const (
	outcomeSuccess        = "success"
	outcomeUnsuccessful   = "unsuccessful"
	outcomeInvalidRequest = "invalid_request"
	outcomeTransportError = "transport_error"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "adyen_recurring_requests_total",
			Help: "Total number of Recurring service calls by action and outcome",
		},
		[]string{"action", "outcome"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "adyen_recurring_request_duration_seconds",
			Help:    "Duration of Recurring service exchanges in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"action"},
	)
)
