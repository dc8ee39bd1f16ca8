// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for a chat conversation.
package model

import (
	"sync/atomic"
	"time"
)

// =============================================================================
// ROLE TYPE
// =============================================================================

// Role represents the sender of a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// String returns the string representation of the role.
func (r Role) String() string {
	return string(r)
}

// DisplayName returns a human-readable name for the role.
func (r Role) DisplayName() string {
	switch r {
	case RoleUser:
		return "You"
	case RoleAssistant:
		return "Assistant"
	default:
		return string(r)
	}
}

// =============================================================================
// MESSAGE TYPE
// =============================================================================

// Message represents a single message in a conversation.
// Messages are values; once appended to a Conversation they never change.
type Message struct {
	// Identity. Unique within a conversation and strictly increasing in
	// append order, so it doubles as the render key and the sort key.
	ID        uint64    `json:"id"`
	Role      Role      `json:"role"`
	Timestamp time.Time `json:"timestamp"`

	// Content is plain text or lightweight markdown, opaque to the controller.
	Content string `json:"content"`
}

// IsUser reports whether the message was authored by the user.
func (m Message) IsUser() bool {
	return m.Role == RoleUser
}

// IsAssistant reports whether the message was authored by the assistant.
func (m Message) IsAssistant() bool {
	return m.Role == RoleAssistant
}

// =============================================================================
// SOURCE TYPE
// =============================================================================

// Source is a supporting citation returned alongside a remote answer.
type Source struct {
	Name           string  `json:"source_name"`
	RelevanceScore float64 `json:"score"`
	Excerpt        string  `json:"excerpt"`
}

// =============================================================================
// ID GENERATION
// =============================================================================

// IDGenerator hands out strictly increasing message identifiers.
// Wall-clock identifiers collide when two messages land in the same tick;
// a counter cannot.
type IDGenerator struct {
	last atomic.Uint64
}

// Next returns the next identifier. The first call returns 1.
func (g *IDGenerator) Next() uint64 {
	return g.last.Add(1)
}

// Last returns the most recently issued identifier, or 0 if none.
func (g *IDGenerator) Last() uint64 {
	return g.last.Load()
}
