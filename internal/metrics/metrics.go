// Package metrics holds the application's Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// NotificationsCreated counts successfully persisted notifications,
	// labeled by notification type.
	NotificationsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sahaaya_notifications_created_total",
		Help: "Total number of notifications persisted.",
	}, []string{"type"})

	// FanoutFailures counts notification writes dropped during the
	// event-creation fan-out.
	FanoutFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sahaaya_notification_fanout_failures_total",
		Help: "Total number of notification writes that failed during event fan-out.",
	})

	// FanoutRecipients counts recipients targeted by event fan-outs.
	FanoutRecipients = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sahaaya_notification_fanout_recipients_total",
		Help: "Total number of recipients targeted by event-creation fan-outs.",
	})
)
