// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for a chat conversation.
package model

import (
	"sync"
	"testing"
)

// =============================================================================
// CONVERSATION TESTS
// =============================================================================

func TestNewConversation_SeededWithGreeting(t *testing.T) {
	conv := NewConversation("hello there")

	if conv.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", conv.Len())
	}
	first := conv.Last()
	if first.Role != RoleAssistant {
		t.Errorf("seed role = %q, want assistant", first.Role)
	}
	if first.Content != "hello there" {
		t.Errorf("seed content = %q, want %q", first.Content, "hello there")
	}
	if conv.IsTyping() {
		t.Error("new conversation should not be typing")
	}
	if conv.HasSentFirstMessage() {
		t.Error("new conversation should not have a first message")
	}
	if conv.ID == "" {
		t.Error("conversation ID should not be empty")
	}
}

func TestConversation_IDsStrictlyIncrease(t *testing.T) {
	conv := NewConversation("hi")
	for i := 0; i < 50; i++ {
		conv.AppendUser("q")
		conv.AppendAssistant("a")
	}

	snap := conv.Snapshot()
	for i := 1; i < len(snap.Messages); i++ {
		if snap.Messages[i].ID <= snap.Messages[i-1].ID {
			t.Fatalf("message %d ID %d not greater than previous %d",
				i, snap.Messages[i].ID, snap.Messages[i-1].ID)
		}
	}
}

func TestConversation_MarkFirstMessageOnce(t *testing.T) {
	conv := NewConversation("hi")

	if !conv.MarkFirstMessage() {
		t.Error("first MarkFirstMessage() should report the transition")
	}
	for i := 0; i < 3; i++ {
		if conv.MarkFirstMessage() {
			t.Errorf("MarkFirstMessage() call %d reported a second transition", i+2)
		}
	}
	if !conv.HasSentFirstMessage() {
		t.Error("flag should stay set")
	}
}

func TestConversation_SnapshotIsDetached(t *testing.T) {
	conv := NewConversation("hi")
	conv.AppendUser("first")
	snap := conv.Snapshot()

	conv.AppendAssistant("second")
	conv.SetTyping(true)

	if len(snap.Messages) != 2 {
		t.Errorf("snapshot grew to %d messages after a later append", len(snap.Messages))
	}
	if snap.IsTyping {
		t.Error("snapshot typing flag changed after SetTyping")
	}
	if snap.Last().Content != "first" {
		t.Errorf("snapshot Last() = %q, want %q", snap.Last().Content, "first")
	}
}

// =============================================================================
// ROLE TESTS
// =============================================================================

func TestRole_DisplayName(t *testing.T) {
	tests := []struct {
		role Role
		want string
	}{
		{RoleUser, "You"},
		{RoleAssistant, "Assistant"},
		{Role("other"), "other"},
	}

	for _, tc := range tests {
		t.Run(tc.role.String(), func(t *testing.T) {
			if got := tc.role.DisplayName(); got != tc.want {
				t.Errorf("DisplayName() = %q, want %q", got, tc.want)
			}
		})
	}
}

// =============================================================================
// ID GENERATOR TESTS
// =============================================================================

func TestIDGenerator_ConcurrentUnique(t *testing.T) {
	var gen IDGenerator
	const workers, perWorker = 8, 500

	var mu sync.Mutex
	seen := make(map[uint64]bool, workers*perWorker)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				id := gen.Next()
				mu.Lock()
				if seen[id] {
					t.Errorf("duplicate id %d", id)
				}
				seen[id] = true
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if got := gen.Last(); got != workers*perWorker {
		t.Errorf("Last() = %d, want %d", got, workers*perWorker)
	}
}
