// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	convo "github.com/jeranaias/folio-chat/internal/chat"
	"github.com/jeranaias/folio-chat/internal/locale"
	"github.com/jeranaias/folio-chat/internal/provider"
	"github.com/jeranaias/folio-chat/internal/ui/styles"
)

// Options configures a Model.
type Options struct {
	// Featured cards may expand to the full terminal width.
	Featured bool

	// Controller options, applied after the layout hooks.
	Controller []convo.Option
}

// layout is shared with the controller hooks, which fire during Update.
type layout struct {
	featured bool
	expanded bool
}

// =============================================================================
// CHAT MODEL
// =============================================================================

// Model is the Bubble Tea model for the chat card.
type Model struct {
	ctrl   *convo.Controller
	copy   locale.Copy
	layout *layout

	theme    *styles.Theme
	keyMap   KeyMap
	markdown *markdown

	// Dimensions
	width  int
	height int
	ready  bool

	// UI Components
	viewport viewport.Model
	input    textinput.Model
	spinner  spinner.Model
}

// New creates a chat card over a fresh conversation answered by p.
func New(theme *styles.Theme, p provider.Provider, c locale.Copy, opts Options) Model {
	l := &layout{featured: opts.Featured}

	var ctrl *convo.Controller
	hooks := convo.Hooks{
		OnFirstMessage: func() {
			if l.featured {
				ctrl.RequestExpand()
			}
		},
		OnExpand: func() {
			if l.featured {
				l.expanded = true
			}
		},
		OnCollapse: func() {
			l.expanded = false
		},
	}
	ctrlOpts := append([]convo.Option{convo.WithHooks(hooks)}, opts.Controller...)
	ctrl = convo.New(p, c, ctrlOpts...)

	input := textinput.New()
	input.Placeholder = c.Placeholder
	input.CharLimit = provider.MaxMessageLength
	input.Prompt = "> "
	input.Focus()

	sp := spinner.New()
	sp.Spinner = styles.TypingDots
	sp.Style = theme.Typing

	return Model{
		ctrl:     ctrl,
		copy:     c,
		layout:   l,
		theme:    theme,
		keyMap:   DefaultKeyMap(),
		markdown: newMarkdown(theme.GlamourStyle()),
		viewport: viewport.New(styles.CompactWidth, 10),
		input:    input,
		spinner:  sp,
	}
}

// Controller returns the conversation controller behind the card.
func (m Model) Controller() *convo.Controller {
	return m.ctrl
}

// Expanded reports whether the card is at full width.
func (m Model) Expanded() bool {
	return m.layout.expanded
}

// Init starts the cursor blinking.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// =============================================================================
// UPDATE
// =============================================================================

// Update handles messages and returns the updated model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case convo.ReplyMsg:
		return m.handleReply(msg)

	case spinner.TickMsg:
		if m.ctrl.IsTyping() {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			m.refresh()
			return m, cmd
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.theme.SetSize(msg.Width, msg.Height)
	m.ready = true
	m.refresh()
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keyMap.Submit):
		return m.send(m.ctrl.SubmitInput())

	case key.Matches(msg, m.keyMap.Expand):
		if m.layout.featured && !m.layout.expanded {
			m.ctrl.RequestExpand()
			m.refresh()
		}
		return m, nil

	case key.Matches(msg, m.keyMap.Collapse):
		if m.layout.featured && m.layout.expanded {
			m.ctrl.RequestCollapse()
			m.refresh()
		}
		return m, nil

	case key.Matches(msg, m.keyMap.PageUp):
		m.viewport.HalfViewUp()
		return m, nil

	case key.Matches(msg, m.keyMap.PageDown):
		m.viewport.HalfViewDown()
		return m, nil
	}

	for i, binding := range m.keyMap.Suggest {
		if key.Matches(msg, binding) {
			if i >= len(m.copy.Suggestions) {
				return m, nil
			}
			return m.send(m.ctrl.SendSuggestion(m.copy.Suggestions[i]))
		}
	}

	// The input is read-only while a reply is pending.
	if m.ctrl.IsTyping() {
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.ctrl.SetInput(m.input.Value())
	return m, cmd
}

// send finishes an accepted submit. A nil cmd means the controller refused
// it and nothing changes.
func (m Model) send(cmd tea.Cmd) (tea.Model, tea.Cmd) {
	if cmd == nil {
		return m, nil
	}
	m.input.SetValue(m.ctrl.Input())
	m.input.Blur()
	m.refresh()
	return m, tea.Batch(cmd, m.spinner.Tick)
}

func (m Model) handleReply(msg convo.ReplyMsg) (tea.Model, tea.Cmd) {
	if !m.ctrl.Update(msg) {
		return m, nil
	}
	m.input.Focus()
	m.refresh()
	return m, textinput.Blink
}

// refresh resizes the viewport for the current layout, redraws the message
// list and scrolls to the bottom.
func (m *Model) refresh() {
	if !m.ready {
		return
	}
	inner := m.innerWidth()
	m.viewport.Width = inner
	m.viewport.Height = m.messageHeight()
	m.input.Width = inner - 12
	m.viewport.SetContent(m.renderMessages(inner))
	m.viewport.GotoBottom()
}
