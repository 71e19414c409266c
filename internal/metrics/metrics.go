// Package metrics defines the Prometheus instrumentation for the kudos bot.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Kudos flow metrics
var (
	// KudosSentTotal tracks recorded kudos events by entry point (command, modal)
	KudosSentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kudos_sent_total",
			Help: "Total kudos events recorded by entry point",
		},
		[]string{"source"},
	)

	// KudosRejectedTotal tracks rejected submissions by reason
	// (busy, cooling_down, no_recipients, empty_message, unknown_user)
	KudosRejectedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kudos_rejected_total",
			Help: "Total rejected kudos submissions by reason",
		},
		[]string{"reason"},
	)

	// StoreAppendFailures tracks swallowed persistence failures
	StoreAppendFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "kudos_store_append_failures_total",
			Help: "Total kudos store append failures (logged and swallowed)",
		},
	)

	// StatsRequestsTotal tracks stats command requests by outcome (ok, denied, error)
	StatsRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kudos_stats_requests_total",
			Help: "Total stats requests by outcome",
		},
		[]string{"outcome"},
	)
)

// Directory cache metrics
var (
	// DirectoryCacheLookups tracks directory cache lookups by result (hit, miss)
	DirectoryCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "directory_cache_lookups_total",
			Help: "Directory cache lookups by result",
		},
		[]string{"result"},
	)

	// DirectoryFetchErrors tracks failed member list fetches
	DirectoryFetchErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "directory_fetch_errors_total",
			Help: "Total failed workspace member list fetches",
		},
	)

	// DirectoryBreakerState tracks the directory circuit breaker state
	// (0=closed, 1=half-open, 2=open)
	DirectoryBreakerState = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "directory_circuit_breaker_state",
			Help: "Current directory circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
	)
)

// HTTP surface metrics
var (
	// SlackRequestsTotal tracks inbound Slack requests by route and status
	SlackRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "slack_requests_total",
			Help: "Inbound Slack requests by route and status",
		},
		[]string{"route", "status"},
	)

	// SlackRequestsThrottled tracks requests rejected by the per-IP flood limiter
	SlackRequestsThrottled = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "slack_requests_throttled_total",
			Help: "Inbound Slack requests rejected by the flood limiter",
		},
	)
)
