// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/folio-chat/internal/model"
	"github.com/jeranaias/folio-chat/internal/provider"
)

// chrome is the card height not available to the message list:
// border (2), header (1), chips (3), input (1), footer (1).
const chrome = 8

// View renders the card.
func (m Model) View() string {
	if !m.ready {
		return ""
	}

	card := lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.viewport.View(),
		m.renderChips(),
		m.renderInput(),
		m.renderFooter(),
	)
	card = m.theme.Card.Width(m.cardWidth() - 2).Render(card)

	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, card)
}

// =============================================================================
// DIMENSIONS
// =============================================================================

func (m Model) cardWidth() int {
	return m.theme.CardWidth(m.layout.expanded)
}

// innerWidth is the card width minus border and padding.
func (m Model) innerWidth() int {
	return m.cardWidth() - 4
}

func (m Model) messageHeight() int {
	h := m.height - chrome
	if h < 3 {
		h = 3
	}
	return h
}

// =============================================================================
// HEADER AND FOOTER
// =============================================================================

func (m Model) renderHeader() string {
	left := m.theme.HeaderTitle.Render(m.copy.Title) + "  " +
		m.theme.StatusDot.Render("●") + " " +
		m.theme.HeaderStatus.Render(m.copy.Status)

	var right string
	if m.layout.featured {
		if m.layout.expanded {
			right = m.theme.Hint.Render(m.copy.CollapseHint + " (" + m.keyMap.Collapse.Help().Key + ")")
		} else {
			right = m.theme.Hint.Render(m.copy.ExpandHint + " (" + m.keyMap.Expand.Help().Key + ")")
		}
	}

	gap := m.innerWidth() - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		return m.theme.Header.Width(m.innerWidth()).Render(left)
	}
	return m.theme.Header.Width(m.innerWidth()).Render(left + strings.Repeat(" ", gap) + right)
}

func (m Model) renderFooter() string {
	text := m.copy.FooterLive
	if m.ctrl.Kind() == provider.KindMock {
		text = m.copy.FooterMock
	}
	return m.theme.Footer.Render(Truncate(text, m.innerWidth()))
}

// =============================================================================
// MESSAGES
// =============================================================================

func (m *Model) renderMessages(width int) string {
	snap := m.ctrl.Snapshot()

	blocks := make([]string, 0, len(snap.Messages)+1)
	for _, msg := range snap.Messages {
		blocks = append(blocks, m.renderMessage(msg, width))
	}
	if snap.IsTyping {
		label := m.theme.RoleLabel.Render(model.RoleAssistant.DisplayName())
		blocks = append(blocks, label+"\n"+m.spinner.View())
	}
	return strings.Join(blocks, "\n\n")
}

func (m *Model) renderMessage(msg model.Message, width int) string {
	label := m.theme.RoleLabel.Render(msg.Role.DisplayName())
	bodyWidth := width - 2

	if msg.IsUser() {
		body := m.theme.UserBubble.MaxWidth(bodyWidth).Render(
			lipgloss.NewStyle().Width(bodyWidth - 2).Render(msg.Content))
		return lipgloss.JoinVertical(lipgloss.Right, label, body)
	}

	body := m.markdown.Render(msg.Content, bodyWidth-2)
	return label + "\n" + m.theme.AssistantBubble.Render(body)
}

// =============================================================================
// INPUT AREA
// =============================================================================

// renderChips draws the suggestion row. Chips are dimmed while a reply is
// pending.
func (m Model) renderChips() string {
	n := len(m.copy.Suggestions)
	if n == 0 {
		return ""
	}

	style := m.theme.Chip
	if m.ctrl.IsTyping() {
		style = m.theme.ChipDisabled
	}

	// Each chip adds border and padding (4 cells) plus its number prefix.
	per := m.innerWidth()/n - 6
	chips := make([]string, n)
	for i, s := range m.copy.Suggestions {
		chips[i] = style.Render(fmt.Sprintf("%d %s", i+1, Truncate(s, per)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, chips...)
}

// renderInput draws the text input, the character count and the send
// button. The button is dimmed when the input is blank or a reply is pending.
func (m Model) renderInput() string {
	send := m.theme.SendDisabled.Render("↵")
	if m.ctrl.CanSubmit() {
		send = m.theme.Send.Render("↵")
	}

	count := ""
	if n := len([]rune(m.input.Value())); n > 0 {
		style := m.theme.CharCount
		if n >= provider.MaxMessageLength {
			style = m.theme.CharCountLimit
		}
		count = style.Render(fmt.Sprintf("%d/%d", n, provider.MaxMessageLength)) + " "
	}

	return m.theme.Input.Render(m.input.View()) + " " + count + send
}
