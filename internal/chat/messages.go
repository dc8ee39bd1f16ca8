// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"time"

	"github.com/jeranaias/folio-chat/internal/provider"
)

// ReplyMsg carries a provider result back to the controller.
type ReplyMsg struct {
	RequestID uint64
	Answer    provider.Answer
	Err       error
	Duration  time.Duration
}
