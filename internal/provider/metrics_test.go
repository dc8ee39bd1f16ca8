// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package provider

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstrument_CountsOutcomes(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	fail := true
	p := Instrument(Func(func(ctx context.Context, text string) (Answer, error) {
		if fail {
			return Answer{}, errors.New("down")
		}
		return Answer{Text: text}, nil
	}), KindRemote, m)

	_, err := p.Respond(context.Background(), "a")
	require.Error(t, err)

	fail = false
	answer, err := p.Respond(context.Background(), "b")
	require.NoError(t, err)
	assert.Equal(t, "b", answer.Text)
	_, _ = p.Respond(context.Background(), "c")

	assert.Equal(t, float64(1), testutil.ToFloat64(m.requests.WithLabelValues("remote", "failure")))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.requests.WithLabelValues("remote", "success")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.latency))
}

func TestInstrument_NilMetrics(t *testing.T) {
	inner := Func(func(ctx context.Context, text string) (Answer, error) {
		return Answer{Text: "x"}, nil
	})
	p := Instrument(inner, KindMock, nil)

	answer, err := p.Respond(context.Background(), "q")
	require.NoError(t, err)
	assert.Equal(t, "x", answer.Text)
}
