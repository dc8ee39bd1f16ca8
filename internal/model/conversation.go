// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for a chat conversation.
package model

import (
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// CONVERSATION TYPE
// =============================================================================

// Conversation is the state of one mounted chat surface: an append-only
// message history plus the typing and first-message flags.
//
// Conversation is not safe for concurrent use; its owner serializes access.
type Conversation struct {
	// Identity
	ID        string
	CreatedAt time.Time

	messages            []Message
	isTyping            bool
	hasSentFirstMessage bool

	ids IDGenerator
}

// NewConversation creates a conversation seeded with one assistant greeting,
// so the history is never empty.
func NewConversation(greeting string) *Conversation {
	c := &Conversation{
		ID:        uuid.NewString(),
		CreatedAt: time.Now(),
		messages:  make([]Message, 0, 8),
	}
	c.append(RoleAssistant, greeting)
	return c
}

// =============================================================================
// MESSAGE MANAGEMENT
// =============================================================================

func (c *Conversation) append(role Role, content string) Message {
	msg := Message{
		ID:        c.ids.Next(),
		Role:      role,
		Content:   content,
		Timestamp: time.Now(),
	}
	c.messages = append(c.messages, msg)
	return msg
}

// AppendUser appends a user-authored message and returns it.
func (c *Conversation) AppendUser(content string) Message {
	return c.append(RoleUser, content)
}

// AppendAssistant appends an assistant message and returns it.
func (c *Conversation) AppendAssistant(content string) Message {
	return c.append(RoleAssistant, content)
}

// Len returns the number of messages.
func (c *Conversation) Len() int {
	return len(c.messages)
}

// Last returns the most recent message.
func (c *Conversation) Last() Message {
	return c.messages[len(c.messages)-1]
}

// =============================================================================
// FLAGS
// =============================================================================

// IsTyping reports whether a reply is pending.
func (c *Conversation) IsTyping() bool {
	return c.isTyping
}

// SetTyping sets the typing flag.
func (c *Conversation) SetTyping(typing bool) {
	c.isTyping = typing
}

// HasSentFirstMessage reports whether the user has sent a message yet.
func (c *Conversation) HasSentFirstMessage() bool {
	return c.hasSentFirstMessage
}

// MarkFirstMessage records that the user sent a message. It returns true
// only on the call that flips the flag; the flag never reverts.
func (c *Conversation) MarkFirstMessage() bool {
	if c.hasSentFirstMessage {
		return false
	}
	c.hasSentFirstMessage = true
	return true
}

// =============================================================================
// SNAPSHOT
// =============================================================================

// Snapshot is a read-only copy of a conversation for rendering.
type Snapshot struct {
	ConversationID      string
	Messages            []Message
	IsTyping            bool
	HasSentFirstMessage bool
}

// Snapshot copies the current state. Later appends do not affect the copy.
func (c *Conversation) Snapshot() Snapshot {
	msgs := make([]Message, len(c.messages))
	copy(msgs, c.messages)
	return Snapshot{
		ConversationID:      c.ID,
		Messages:            msgs,
		IsTyping:            c.isTyping,
		HasSentFirstMessage: c.hasSentFirstMessage,
	}
}

// Last returns the most recent message in the snapshot.
func (s Snapshot) Last() Message {
	return s.Messages[len(s.Messages)-1]
}
