// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the terminal chat card.
//
// Model is a Bubble Tea model that binds a textinput, a viewport and a
// typing spinner to a conversation controller. It never mutates the
// conversation itself: keystrokes become controller intents and every frame
// is drawn from a controller snapshot.
//
// # Layout
//
// A featured card can be expanded to the full terminal width and collapsed
// back. The first message sent from a featured card expands it.
//
// # Key Bindings
//
//   - Enter: send the input
//   - Alt+1..Alt+4: send a suggestion chip
//   - Ctrl+F / Esc: expand / collapse (featured cards only)
//   - PgUp / PgDn: scroll the message list
//   - Ctrl+C: quit
package chat
