// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package metrics_test

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ManuGH/eventbus/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"
)

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	m := &dto.Metric{}
	require.NoError(t, c.Write(m))
	return m.GetCounter().GetValue()
}

func TestIncHelpers(t *testing.T) {
	tests := []struct {
		name  string
		inc   func(string)
		vec   *prometheus.CounterVec
		event string
		label string
	}{
		{name: "subscription", inc: metrics.IncSubscription, vec: metrics.SubscriptionsTotal, event: "metrics-sub", label: "metrics-sub"},
		{name: "publish", inc: metrics.IncPublish, vec: metrics.PublishTotal, event: "metrics-pub", label: "metrics-pub"},
		{name: "unrouted", inc: metrics.IncUnrouted, vec: metrics.PublishUnroutedTotal, event: "metrics-unrouted", label: "metrics-unrouted"},
		{name: "invocation", inc: metrics.IncInvocation, vec: metrics.CallbackInvocationsTotal, event: "metrics-inv", label: "metrics-inv"},
		{name: "empty event normalised", inc: metrics.IncPublish, vec: metrics.PublishTotal, event: "", label: "<empty>"},
		{name: "invalid utf8 replaced", inc: metrics.IncSubscription, vec: metrics.SubscriptionsTotal, event: "bad\xffname", label: "bad\uFFFDname"},
		{name: "invalid utf8 unrouted", inc: metrics.IncUnrouted, vec: metrics.PublishUnroutedTotal, event: "\xfe", label: "\uFFFD"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := counterValue(t, tt.vec.WithLabelValues(tt.label))
			tt.inc(tt.event)
			after := counterValue(t, tt.vec.WithLabelValues(tt.label))
			require.Equal(t, before+1, after)
		})
	}
}

func TestPromhttpExposure(t *testing.T) {
	metrics.IncPublish("exposed")

	recorder := httptest.NewRecorder()
	promhttp.Handler().ServeHTTP(recorder, httptest.NewRequest("GET", "/metrics", nil))

	body := recorder.Body.String()
	require.True(t, strings.Contains(body, `eventbus_publish_total{event="exposed"}`), "metric not exposed:\n%s", body)
}
