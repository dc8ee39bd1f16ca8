// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat implements the conversation controller: the only component
// that mutates a conversation.
//
// The controller follows the Bubble Tea model. Submit performs every
// synchronous transition (first-message hook, user message, cleared input,
// typing on) and returns a tea.Cmd that calls the response provider; that
// command is the single point where the conversation waits. The command's
// ReplyMsg is fed back through Resolve (or Update), which appends the
// assistant reply, or the localized failure text, and turns typing off.
//
// While a reply is pending every further Submit is a silent no-op, so at
// most one provider call is ever in flight and replies land in submission
// order. Provider failures never escape the controller.
//
// Surfaces without a Bubble Tea runtime use Send, which runs the same steps
// and blocks until the reply is settled.
package chat
