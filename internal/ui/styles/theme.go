// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// CompactWidth is the card width when the chat is not expanded.
const CompactWidth = 72

// MinWidth is the narrowest card that still lays out.
const MinWidth = 32

// TypingDots is the assistant typing indicator.
var TypingDots = spinner.Spinner{
	Frames: []string{".  ", ".. ", "...", " ..", "  .", "   "},
	FPS:    time.Second / 6,
}

// Theme holds the styles for the chat card.
type Theme struct {
	// Terminal capabilities
	IsDark       bool
	ColorProfile termenv.Profile

	// Layout dimensions
	Width  int
	Height int

	// ==========================================================================
	// CARD
	// ==========================================================================

	Card         lipgloss.Style
	Header       lipgloss.Style
	HeaderTitle  lipgloss.Style
	HeaderStatus lipgloss.Style
	StatusDot    lipgloss.Style
	Footer       lipgloss.Style
	Hint         lipgloss.Style

	// ==========================================================================
	// MESSAGES
	// ==========================================================================

	UserBubble      lipgloss.Style
	AssistantBubble lipgloss.Style
	RoleLabel       lipgloss.Style
	Typing          lipgloss.Style

	// ==========================================================================
	// INPUT AREA
	// ==========================================================================

	Chip           lipgloss.Style
	ChipDisabled   lipgloss.Style
	Input          lipgloss.Style
	Send           lipgloss.Style
	SendDisabled   lipgloss.Style
	CharCount      lipgloss.Style
	CharCountLimit lipgloss.Style
}

// NewTheme creates a theme for the current terminal.
func NewTheme() *Theme {
	t := &Theme{
		IsDark:       termenv.HasDarkBackground(),
		ColorProfile: termenv.ColorProfile(),
	}
	t.initStyles()
	return t
}

func (t *Theme) initStyles() {
	t.Card = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Overlay).
		Padding(0, 1)

	t.Header = lipgloss.NewStyle().
		Background(SurfaceDim).
		Padding(0, 1)

	t.HeaderTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	t.HeaderStatus = lipgloss.NewStyle().
		Foreground(TextSecondary)

	t.StatusDot = lipgloss.NewStyle().
		Foreground(Online)

	t.Footer = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)

	t.Hint = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.UserBubble = lipgloss.NewStyle().
		Foreground(UserBubbleFg).
		Background(UserBubbleBg).
		Padding(0, 1)

	t.AssistantBubble = lipgloss.NewStyle().
		Foreground(AssistantBubbleFg).
		BorderStyle(lipgloss.NormalBorder()).
		BorderLeft(true).
		BorderTop(false).
		BorderRight(false).
		BorderBottom(false).
		BorderForeground(AssistantBubbleBorder).
		PaddingLeft(1)

	t.RoleLabel = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Bold(true)

	t.Typing = lipgloss.NewStyle().
		Foreground(Primary)

	t.Chip = lipgloss.NewStyle().
		Foreground(TextPrimary).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Overlay).
		Padding(0, 1)

	t.ChipDisabled = t.Chip.
		Foreground(TextMuted)

	t.Input = lipgloss.NewStyle().
		Foreground(TextPrimary)

	t.Send = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextInverse).
		Background(PrimaryDeep).
		Padding(0, 1)

	t.SendDisabled = lipgloss.NewStyle().
		Foreground(TextMuted).
		Background(SurfaceDim).
		Padding(0, 1)

	t.CharCount = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.CharCountLimit = lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "#E11D48", Dark: "#FB7185"})
}

// SetSize updates the terminal dimensions.
func (t *Theme) SetSize(width, height int) {
	t.Width = width
	t.Height = height
}

// CardWidth returns the outer card width. An expanded card takes the whole
// terminal; a compact one is capped at CompactWidth.
func (t *Theme) CardWidth(expanded bool) int {
	w := t.Width
	if !expanded && w > CompactWidth {
		w = CompactWidth
	}
	if w < MinWidth {
		w = MinWidth
	}
	return w
}

// GlamourStyle names the glamour style matching the background.
func (t *Theme) GlamourStyle() string {
	if t.ColorProfile == termenv.Ascii {
		return "notty"
	}
	if t.IsDark {
		return "dark"
	}
	return "light"
}
