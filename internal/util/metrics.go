package util

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OrdersCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pharmacy_orders_created_total",
		Help: "Total number of customer orders created",
	})

	OrdersRejectedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pharmacy_orders_rejected_total",
		Help: "Total number of rejected order creation requests",
	}, []string{"reason"})

	SupplyOrdersCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pharmacy_supply_orders_created_total",
		Help: "Total number of supply orders created",
	})

	SupplyOrdersReceivedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pharmacy_supply_orders_received_total",
		Help: "Total number of supply orders marked as received",
	})

	LoginAttemptsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pharmacy_login_attempts_total",
		Help: "Total number of login attempts",
	})

	LoginFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pharmacy_login_failures_total",
		Help: "Total number of failed login attempts",
	})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})
)
