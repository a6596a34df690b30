package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chat_http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "chat_http_request_duration_seconds",
			Help:    "HTTP request duration",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"method", "route"},
	)

	// Conversations
	MessagesAppended = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chat_messages_appended_total",
			Help: "Total messages persisted",
		},
		[]string{"kind", "source"}, // kind: room|dm, source: live|rest
	)

	ThreadsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "chat_direct_threads_created_total",
			Help: "Total direct threads created",
		},
	)

	// Live delivery
	LiveSessions = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "chat_live_sessions",
			Help: "Currently joined live sessions",
		},
		[]string{"kind"},
	)

	FramesDelivered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "chat_frames_delivered_total",
			Help: "Frames enqueued to live subscribers",
		},
	)

	SubscribersEvicted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "chat_subscribers_evicted_total",
			Help: "Live subscribers dropped for not keeping up",
		},
	)

	FramesRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chat_frames_rejected_total",
			Help: "Inbound frames dropped without persisting",
		},
		[]string{"reason"},
	)

	// Identity mirror
	IdentityEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chat_identity_events_total",
			Help: "Identity updates consumed from the bus",
		},
		[]string{"status"},
	)
)
