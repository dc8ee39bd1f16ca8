// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package provider

import (
	"context"
	"math/rand"
	"strings"
	"time"
	"unicode"

	"github.com/jeranaias/folio-chat/internal/locale"
)

// Mock latency window. The delay keeps the typing indicator on screen long
// enough to read as a reply being written.
const (
	DefaultMockMinDelay = 1000 * time.Millisecond
	DefaultMockMaxDelay = 1800 * time.Millisecond
)

// triggerWords is how many leading words of a trigger phrase must appear
// in the input.
const triggerWords = 3

// Mock answers from a fixed keyword table. Lookup is first-match-wins in
// table order, not a similarity search.
type Mock struct {
	triggers []string
	replies  []string
	fallback string

	minDelay time.Duration
	maxDelay time.Duration
	random   func() float64
}

// MockOption configures a Mock.
type MockOption func(*Mock)

// WithDelay sets the latency window. A zero window disables the delay.
func WithDelay(minDelay, maxDelay time.Duration) MockOption {
	return func(m *Mock) {
		m.minDelay = minDelay
		m.maxDelay = maxDelay
	}
}

// WithRandom replaces the source of randomness; fn must return [0, 1).
func WithRandom(fn func() float64) MockOption {
	return func(m *Mock) {
		m.random = fn
	}
}

// NewMock builds a keyword provider from a copy table.
func NewMock(c locale.Copy, opts ...MockOption) *Mock {
	m := &Mock{
		triggers: make([]string, len(c.MockReplies)),
		replies:  make([]string, len(c.MockReplies)),
		fallback: c.MockFallback,
		minDelay: DefaultMockMinDelay,
		maxDelay: DefaultMockMaxDelay,
		random:   rand.Float64,
	}
	for i, r := range c.MockReplies {
		m.triggers[i] = triggerKey(r.Trigger)
		m.replies[i] = r.Reply
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// triggerKey lower-cases a trigger phrase and keeps its leading words, with
// punctuation stripped from the ends of each word.
func triggerKey(trigger string) string {
	var words []string
	for _, w := range strings.Fields(strings.ToLower(trigger)) {
		if w = strings.TrimFunc(w, unicode.IsPunct); w != "" {
			words = append(words, w)
		}
	}
	if len(words) > triggerWords {
		words = words[:triggerWords]
	}
	return strings.Join(words, " ")
}

// Match returns the canned reply for input without any delay.
func (m *Mock) Match(input string) string {
	lower := strings.ToLower(strings.TrimSpace(input))
	for i, key := range m.triggers {
		if strings.Contains(lower, key) {
			return m.replies[i]
		}
	}
	return m.fallback
}

// Delay returns the latency for the next reply.
func (m *Mock) Delay() time.Duration {
	if m.maxDelay <= m.minDelay {
		return m.minDelay
	}
	span := float64(m.maxDelay - m.minDelay)
	return m.minDelay + time.Duration(m.random()*span)
}

// Respond waits out the simulated latency, then returns the matched reply.
func (m *Mock) Respond(ctx context.Context, text string) (Answer, error) {
	if d := m.Delay(); d > 0 {
		timer := time.NewTimer(d)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return Answer{}, ctx.Err()
		case <-timer.C:
		}
	}
	return Answer{Text: m.Match(text)}, nil
}
