// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package provider

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome label values.
const (
	outcomeSuccess = "success"
	outcomeFailure = "failure"
)

// Metrics holds the provider collectors.
type Metrics struct {
	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
}

// NewMetrics registers the provider collectors with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "folio_provider_requests_total",
			Help: "Response provider calls by provider and outcome.",
		}, []string{"provider", "outcome"}),
		latency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "folio_provider_request_duration_seconds",
			Help:    "Response provider call latency.",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 30, 60},
		}, []string{"provider"}),
	}
}

// Instrument wraps p so every call is counted and timed under kind.
// A nil m returns p unchanged.
func Instrument(p Provider, kind Kind, m *Metrics) Provider {
	if m == nil {
		return p
	}
	return Func(func(ctx context.Context, text string) (Answer, error) {
		start := time.Now()
		answer, err := p.Respond(ctx, text)
		m.latency.WithLabelValues(string(kind)).Observe(time.Since(start).Seconds())
		outcome := outcomeSuccess
		if err != nil {
			outcome = outcomeFailure
		}
		m.requests.WithLabelValues(string(kind), outcome).Inc()
		return answer, err
	})
}
