// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package provider turns a user utterance into an assistant answer.
//
// Two implementations exist behind the Provider interface:
//
//   - Mock: an ordered keyword table with a fallback reply and an artificial,
//     randomized latency so the typing indicator stays visible.
//   - Remote: a thin client for the RAG backend's POST /rag/chat endpoint,
//     returning the answer plus any supporting sources.
//
// Providers report failures as ordinary errors (ErrMalformedResponse,
// *StatusError, wrapped network errors). Mapping those failures to user
// copy is the caller's job; nothing in this package knows about display text
// beyond the mock's canned replies.
//
// # Usage
//
//	p := provider.NewRemote("http://localhost:8000")
//	answer, err := p.Respond(ctx, "What tech do you use?")
//	if err != nil {
//	    // show the localized failure message
//	}
//	fmt.Println(provider.FormatAnswer(answer, "Sources"))
//
// Wrap any provider with Instrument to export request counts and latency
// to Prometheus.
package provider
