// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

// Package metrics holds the Prometheus collectors for the event bus.
package metrics

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// emptyLabel stands in for the empty event name. Angle brackets keep it
// apart from ordinary event identifiers.
const emptyLabel = "<empty>"

var (
	SubscriptionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "eventbus_subscriptions_total",
		Help: "Total number of callbacks registered, by event",
	}, []string{"event"})

	PublishTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "eventbus_publish_total",
		Help: "Total number of publish calls, by event",
	}, []string{"event"})

	PublishUnroutedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "eventbus_publish_unrouted_total",
		Help: "Total number of publish calls that found no subscribers, by event",
	}, []string{"event"})

	CallbackInvocationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "eventbus_callback_invocations_total",
		Help: "Total number of callbacks that returned normally, by event",
	}, []string{"event"})
)

// label maps an event name to a valid Prometheus label value.
// WithLabelValues panics on invalid UTF-8, so invalid bytes are replaced.
func label(event string) string {
	if event == "" {
		return emptyLabel
	}
	return strings.ToValidUTF8(event, "\uFFFD")
}

// IncSubscription records a registered callback for the given event.
func IncSubscription(event string) {
	SubscriptionsTotal.WithLabelValues(label(event)).Inc()
}

// IncPublish records a publish call for the given event.
func IncPublish(event string) {
	PublishTotal.WithLabelValues(label(event)).Inc()
}

// IncUnrouted records a publish call that had nobody to deliver to.
func IncUnrouted(event string) {
	PublishUnroutedTotal.WithLabelValues(label(event)).Inc()
}

// IncInvocation records one completed callback invocation.
func IncInvocation(event string) {
	CallbackInvocationsTotal.WithLabelValues(label(event)).Inc()
}
