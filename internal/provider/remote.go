// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/jeranaias/folio-chat/internal/model"
)

// Configuration constants for the RAG backend.
const (
	// DefaultBaseURL is where the backend listens during local development.
	DefaultBaseURL = "http://localhost:8000"

	// ChatPath is appended to the base URL for every request.
	ChatPath = "/rag/chat"

	// TopK is the number of retrieved passages requested per question.
	TopK = 4

	// MaxMessageLength mirrors the backend's request validation.
	MaxMessageLength = 4000

	// MaxResponseSize bounds how much of a response body is read.
	MaxResponseSize = 10 * 1024 * 1024

	// maxErrorBody bounds how much of an error body is kept on StatusError.
	maxErrorBody = 512
)

// chatRequest is the JSON body of POST /rag/chat.
type chatRequest struct {
	Message string `json:"message"`
	TopK    int    `json:"top_k"`
}

// chatResponse is the JSON body of a successful reply. Answer is a pointer so
// a missing field can be told apart from an empty answer.
type chatResponse struct {
	Answer  *string      `json:"answer"`
	Sources []chatSource `json:"sources"`
}

// chatSource is one citation on the wire. A null or missing score is
// rejected rather than rendered as 0.00.
type chatSource struct {
	Name    string   `json:"source_name"`
	Score   *float64 `json:"score"`
	Excerpt string   `json:"excerpt"`
}

// Remote is a client for the RAG backend.
type Remote struct {
	baseURL    string
	httpClient *http.Client
}

// NewRemote creates a client for the backend at baseURL. An empty baseURL
// selects DefaultBaseURL.
//
// The client sets no overall timeout; bound each call through ctx.
func NewRemote(baseURL string) *Remote {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.MaxIdleConnsPerHost = 4
	transport.IdleConnTimeout = 90 * time.Second

	r := &Remote{
		httpClient: &http.Client{Transport: transport},
	}
	return r.WithBaseURL(baseURL)
}

// WithBaseURL sets the backend base URL.
func (r *Remote) WithBaseURL(url string) *Remote {
	url = strings.TrimSpace(url)
	if url == "" {
		url = DefaultBaseURL
	}
	r.baseURL = strings.TrimSuffix(url, "/")
	return r
}

// WithHTTPClient replaces the HTTP client.
func (r *Remote) WithHTTPClient(client *http.Client) *Remote {
	r.httpClient = client
	return r
}

// BaseURL returns the configured base URL.
func (r *Remote) BaseURL() string {
	return r.baseURL
}

// Endpoint returns the full chat URL.
func (r *Remote) Endpoint() string {
	return r.baseURL + ChatPath
}

// Respond posts text to the backend and decodes the answer. Non-2xx
// statuses, transport errors and undecodable bodies are all errors; no
// request is retried.
func (r *Remote) Respond(ctx context.Context, text string) (Answer, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Answer{}, ErrEmptyMessage
	}
	if utf8.RuneCountInString(text) > MaxMessageLength {
		return Answer{}, errors.Wrapf(ErrMessageTooLong, "%d characters, limit %d",
			utf8.RuneCountInString(text), MaxMessageLength)
	}

	body, err := json.Marshal(chatRequest{Message: text, TopK: TopK})
	if err != nil {
		return Answer{}, errors.Wrap(err, "failed to encode request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.Endpoint(), bytes.NewReader(body))
	if err != nil {
		return Answer{}, errors.Wrap(err, "failed to create request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := r.httpClient.Do(req)
	if err != nil {
		return Answer{}, errors.Wrapf(err, "request to %s failed", ChatPath)
	}
	defer resp.Body.Close()

	// Only method, path, status and timing are logged; bodies may carry
	// whatever the visitor typed.
	log.WithFields(log.Fields{
		"method":   req.Method,
		"path":     req.URL.Path,
		"status":   resp.StatusCode,
		"duration": time.Since(start),
	}).Debug("rag backend responded")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return Answer{}, &StatusError{
			Status: resp.StatusCode,
			Body:   strings.TrimSpace(string(snippet)),
		}
	}

	var decoded chatResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, MaxResponseSize)).Decode(&decoded); err != nil {
		return Answer{}, errors.Wrapf(ErrMalformedResponse, "decode body: %v", err)
	}
	if decoded.Answer == nil {
		return Answer{}, errors.Wrap(ErrMalformedResponse, "missing answer field")
	}

	sources, err := toSources(decoded.Sources)
	if err != nil {
		return Answer{}, err
	}
	return Answer{
		Text:    *decoded.Answer,
		Sources: sources,
	}, nil
}

func toSources(wire []chatSource) ([]model.Source, error) {
	if len(wire) == 0 {
		return nil, nil
	}
	sources := make([]model.Source, len(wire))
	for i, s := range wire {
		if s.Score == nil {
			return nil, errors.Wrapf(ErrMalformedResponse, "source %d has no score", i)
		}
		sources[i] = model.Source{
			Name:           s.Name,
			RelevanceScore: *s.Score,
			Excerpt:        s.Excerpt,
		}
	}
	return sources, nil
}
