// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for a chat conversation.
//
// This package defines the domain types shared by the controller, the
// response providers and the presentation surfaces.
//
// # Key Types
//
//   - Conversation: append-only message store plus the typing and
//     first-message flags for one mounted chat surface
//   - Message: single immutable message with a monotonic ID, role and content
//   - Snapshot: read-only copy of a Conversation handed to renderers
//   - Source: supporting citation attached to a remote answer
//   - Role: message role enumeration (user, assistant)
//
// # Usage
//
// Create a conversation seeded with a greeting:
//
//	conv := model.NewConversation("Hey! Ask me anything.")
//	conv.AppendUser("What's your experience?")
//	conv.SetTyping(true)
//
// Render from a snapshot:
//
//	snap := conv.Snapshot()
//	for _, msg := range snap.Messages {
//	    fmt.Printf("%d %s: %s\n", msg.ID, msg.Role, msg.Content)
//	}
package model
