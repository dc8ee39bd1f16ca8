// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/mattn/go-runewidth"
	log "github.com/sirupsen/logrus"
)

// singleFence matches content that is entirely one fenced code block.
var singleFence = regexp.MustCompile("^\\s*```(?:[\\w-]+)?\\s*([\\s\\S]*?)\\s*```\\s*$")

// UnwrapFence returns the inner text when content is exactly one fenced code
// block, and content unchanged otherwise.
func UnwrapFence(content string) string {
	m := singleFence.FindStringSubmatch(content)
	if m == nil {
		return content
	}
	return strings.TrimSpace(m[1])
}

// Truncate shortens s to width terminal cells.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "…")
}

// =============================================================================
// MARKDOWN
// =============================================================================

// markdown renders assistant content, rebuilding its glamour renderer when
// the wrap width changes.
type markdown struct {
	style    string
	width    int
	renderer *glamour.TermRenderer
}

func newMarkdown(style string) *markdown {
	return &markdown{style: style}
}

// Render renders content as markdown wrapped to width. On renderer failure
// the raw text is returned.
func (md *markdown) Render(content string, width int) string {
	content = UnwrapFence(content)
	if width < 1 {
		width = 1
	}
	if md.renderer == nil || md.width != width {
		r, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(md.style),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			log.WithError(err).Debug("markdown renderer unavailable")
			return content
		}
		md.renderer = r
		md.width = width
	}

	out, err := md.renderer.Render(content)
	if err != nil {
		log.WithError(err).Debug("markdown render failed")
		return content
	}
	return strings.Trim(out, "\n")
}
