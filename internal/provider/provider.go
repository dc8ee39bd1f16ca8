// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package provider

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/jeranaias/folio-chat/internal/model"
)

// =============================================================================
// PROVIDER INTERFACE
// =============================================================================

// Provider produces an assistant answer for one user utterance.
// Respond must honour ctx cancellation.
type Provider interface {
	Respond(ctx context.Context, text string) (Answer, error)
}

// Func adapts an ordinary function to the Provider interface.
type Func func(ctx context.Context, text string) (Answer, error)

// Respond calls f(ctx, text).
func (f Func) Respond(ctx context.Context, text string) (Answer, error) {
	return f(ctx, text)
}

// Answer is a provider's reply before display formatting.
type Answer struct {
	Text    string
	Sources []model.Source
}

// =============================================================================
// PROVIDER KINDS
// =============================================================================

// Kind names a provider implementation.
type Kind string

const (
	KindRemote Kind = "remote"
	KindMock   Kind = "mock"
)

// ParseKind validates a provider name.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindRemote, KindMock:
		return k, nil
	default:
		return "", errors.Errorf("unknown provider %q, must be one of: remote, mock", s)
	}
}

// =============================================================================
// ERRORS
// =============================================================================

var (
	// ErrEmptyMessage indicates Respond was called with blank text.
	ErrEmptyMessage = errors.New("empty message")

	// ErrMessageTooLong indicates the text exceeds MaxMessageLength.
	ErrMessageTooLong = errors.New("message too long")

	// ErrMalformedResponse indicates a success status with a body that does
	// not have the expected shape.
	ErrMalformedResponse = errors.New("malformed response")
)

// StatusError is returned when the backend answers with a non-2xx status.
type StatusError struct {
	Status int
	Body   string
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("backend returned %d: %s", e.Status, e.Body)
	}
	return fmt.Sprintf("backend returned %d", e.Status)
}

// =============================================================================
// FORMATTING
// =============================================================================

// FormatAnswer renders an answer for display. When sources are present a
// markdown appendix is added under heading, one numbered entry per source
// with its score to two decimal places and its excerpt quoted.
func FormatAnswer(a Answer, heading string) string {
	if len(a.Sources) == 0 {
		return a.Text
	}

	var b strings.Builder
	b.WriteString(a.Text)
	b.WriteString("\n\n---\n**")
	b.WriteString(heading)
	b.WriteString("**\n")
	for i, src := range a.Sources {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%d. **%s** (%.2f)\n> %s", i+1, src.Name, src.RelevanceScore, src.Excerpt)
	}
	return b.String()
}
