// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package provider

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// REQUEST SHAPE
// =============================================================================

func TestRemote_RequestShape(t *testing.T) {
	var gotMethod, gotPath, gotContentType string
	var gotBody map[string]interface{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"answer": "hi", "sources": []}`))
	}))
	defer server.Close()

	answer, err := NewRemote(server.URL+"/").Respond(context.Background(), "  hello there  ")
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/rag/chat", gotPath)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, "hello there", gotBody["message"])
	assert.Equal(t, float64(4), gotBody["top_k"])
	assert.Equal(t, "hi", answer.Text)
	assert.Empty(t, answer.Sources)
}

func TestRemote_DecodesSources(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"answer": "I use Go.",
			"sources": [
				{"source_name": "Curriculo.txt", "score": 0.91234, "excerpt": "Go, Python"},
				{"source_name": "notes.md", "score": 0.4, "excerpt": "FastAPI"}
			]
		}`))
	}))
	defer server.Close()

	answer, err := NewRemote(server.URL).Respond(context.Background(), "stack?")
	require.NoError(t, err)
	require.Len(t, answer.Sources, 2)
	assert.Equal(t, "Curriculo.txt", answer.Sources[0].Name)
	assert.InDelta(t, 0.91234, answer.Sources[0].RelevanceScore, 1e-9)
	assert.Equal(t, "FastAPI", answer.Sources[1].Excerpt)
}

func TestRemote_NullSourcesIsNotAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"answer": "ok", "sources": null}`))
	}))
	defer server.Close()

	answer, err := NewRemote(server.URL).Respond(context.Background(), "q")
	require.NoError(t, err)
	assert.Equal(t, "ok", answer.Text)
	assert.Nil(t, answer.Sources)
}

// =============================================================================
// FAILURES
// =============================================================================

func TestRemote_Failures(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		checkFn func(t *testing.T, err error)
	}{
		{
			name:   "server error",
			status: http.StatusInternalServerError,
			body:   `{"detail": "boom"}`,
			checkFn: func(t *testing.T, err error) {
				var se *StatusError
				require.True(t, errors.As(err, &se))
				assert.Equal(t, 500, se.Status)
				assert.Contains(t, se.Body, "boom")
			},
		},
		{
			name:   "bad request",
			status: http.StatusBadRequest,
			checkFn: func(t *testing.T, err error) {
				var se *StatusError
				require.True(t, errors.As(err, &se))
				assert.Equal(t, 400, se.Status)
			},
		},
		{
			name:   "not json",
			status: http.StatusOK,
			body:   `<html>oops</html>`,
			checkFn: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrMalformedResponse)
			},
		},
		{
			name:   "missing answer",
			status: http.StatusOK,
			body:   `{"sources": []}`,
			checkFn: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrMalformedResponse)
			},
		},
		{
			name:   "null source score",
			status: http.StatusOK,
			body:   `{"answer": "x", "sources": [{"source_name": "a.md", "score": null, "excerpt": "e"}]}`,
			checkFn: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrMalformedResponse)
			},
		},
		{
			name:   "missing source score",
			status: http.StatusOK,
			body:   `{"answer": "x", "sources": [{"source_name": "a.md", "excerpt": "e"}]}`,
			checkFn: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrMalformedResponse)
			},
		},
		{
			name:   "sources wrong type",
			status: http.StatusOK,
			body:   `{"answer": "x", "sources": "nope"}`,
			checkFn: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrMalformedResponse)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				w.Write([]byte(tc.body))
			}))
			defer server.Close()

			_, err := NewRemote(server.URL).Respond(context.Background(), "q")
			require.Error(t, err)
			tc.checkFn(t, err)
		})
	}
}

func TestRemote_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	_, err := NewRemote(url).Respond(context.Background(), "q")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "/rag/chat")
}

func TestRemote_NoRetry(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	_, err := NewRemote(server.URL).Respond(context.Background(), "q")
	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestRemote_ContextDeadline(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := NewRemote(server.URL).Respond(ctx, "q")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestRemote_InputValidation(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer server.Close()
	r := NewRemote(server.URL)

	_, err := r.Respond(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrEmptyMessage)

	_, err = r.Respond(context.Background(), strings.Repeat("a", MaxMessageLength+1))
	assert.ErrorIs(t, err, ErrMessageTooLong)

	assert.Equal(t, int32(0), calls.Load(), "rejected input must not reach the backend")
}

func TestRemote_BaseURL(t *testing.T) {
	assert.Equal(t, DefaultBaseURL, NewRemote("").BaseURL())
	assert.Equal(t, "https://api.example.com", NewRemote("https://api.example.com/").BaseURL())
	assert.Equal(t, "https://api.example.com/rag/chat", NewRemote("https://api.example.com").Endpoint())
}
