// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
)

// maxSuggestionKeys is how many suggestion chips get a shortcut.
const maxSuggestionKeys = 4

// =============================================================================
// KEY MAP DEFINITION
// =============================================================================

// KeyMap defines the keyboard bindings for the chat card.
type KeyMap struct {
	Submit   key.Binding
	Expand   key.Binding
	Collapse key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Quit     key.Binding

	// Suggest[i] sends the i-th suggestion chip.
	Suggest [maxSuggestionKeys]key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	km := KeyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "send"),
		),
		Expand: key.NewBinding(
			key.WithKeys("ctrl+f"),
			key.WithHelp("C-f", "fullscreen"),
		),
		Collapse: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("Esc", "close fullscreen"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("PgUp", "scroll up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("PgDn", "scroll down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("C-c", "quit"),
		),
	}
	for i := range km.Suggest {
		k := fmt.Sprintf("alt+%d", i+1)
		km.Suggest[i] = key.NewBinding(
			key.WithKeys(k),
			key.WithHelp(fmt.Sprintf("M-%d", i+1), "suggestion"),
		)
	}
	return km
}
