// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling for the folio chat card.
//
// All colors use Lip Gloss AdaptiveColor so the card reads on light and dark
// terminals. Theme detects the background and color profile once through
// termenv and also picks the matching glamour style for assistant markdown.
package styles
