// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"context"
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/jeranaias/folio-chat/internal/locale"
	"github.com/jeranaias/folio-chat/internal/model"
	"github.com/jeranaias/folio-chat/internal/provider"
)

// =============================================================================
// OPTIONS
// =============================================================================

// Hooks are notifications for the presentation layer. Any may be nil.
type Hooks struct {
	// OnFirstMessage fires once, when the first user message is accepted.
	OnFirstMessage func()
	OnExpand       func()
	OnCollapse     func()
}

// Option configures a Controller.
type Option func(*Controller)

// WithHooks installs presentation hooks.
func WithHooks(h Hooks) Option {
	return func(c *Controller) {
		c.hooks = h
	}
}

// WithTimeout bounds each provider call. On expiry the call is treated as a
// provider failure. Zero waits indefinitely.
func WithTimeout(d time.Duration) Option {
	return func(c *Controller) {
		c.timeout = d
	}
}

// WithGreeting overrides the seeded assistant greeting.
func WithGreeting(greeting string) Option {
	return func(c *Controller) {
		c.greeting = greeting
	}
}

// WithKind labels the provider in log output.
func WithKind(kind provider.Kind) Option {
	return func(c *Controller) {
		c.kind = kind
	}
}

// =============================================================================
// CONTROLLER
// =============================================================================

// Controller owns one conversation and mediates between UI intents and the
// response provider. It is safe to read snapshots from other goroutines.
type Controller struct {
	mu sync.Mutex

	conv  *model.Conversation
	input string

	// requests numbers provider calls; pending is the in-flight one, 0 if idle.
	requests model.IDGenerator
	pending  uint64

	provider provider.Provider
	copy     locale.Copy
	hooks    Hooks
	timeout  time.Duration
	greeting string
	kind     provider.Kind

	logger *log.Entry
}

// New creates a controller whose conversation is seeded with the copy
// table's greeting.
func New(p provider.Provider, c locale.Copy, opts ...Option) *Controller {
	ctrl := &Controller{
		provider: p,
		copy:     c,
		greeting: c.Greeting,
	}
	for _, opt := range opts {
		opt(ctrl)
	}

	ctrl.conv = model.NewConversation(ctrl.greeting)
	ctrl.logger = log.WithFields(log.Fields{
		"conversation": ctrl.conv.ID,
		"provider":     ctrl.kind,
	})
	ctrl.logger.Debug("conversation started")
	return ctrl
}

// =============================================================================
// INPUT BUFFER
// =============================================================================

// SetInput stages text typed by the user.
func (c *Controller) SetInput(text string) {
	c.mu.Lock()
	c.input = text
	c.mu.Unlock()
}

// Input returns the staged text.
func (c *Controller) Input() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.input
}

// CanSubmit reports whether the staged text would be accepted.
func (c *Controller) CanSubmit() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return strings.TrimSpace(c.input) != "" && !c.conv.IsTyping()
}

// =============================================================================
// SENDING
// =============================================================================

// Submit sends raw as a user message. Blank text, or any call while a reply
// is pending, is ignored and returns nil. Otherwise the user message is
// recorded, the input buffer cleared and typing turned on before Submit
// returns; the returned command calls the provider and yields a ReplyMsg.
func (c *Controller) Submit(raw string) tea.Cmd {
	id, text, ok := c.begin(raw)
	if !ok {
		return nil
	}
	return func() tea.Msg {
		return c.respond(context.Background(), id, text)
	}
}

// SubmitInput submits the staged input buffer.
func (c *Controller) SubmitInput() tea.Cmd {
	return c.Submit(c.Input())
}

// SendSuggestion submits a pre-canned prompt. It is guarded exactly like
// Submit.
func (c *Controller) SendSuggestion(text string) tea.Cmd {
	return c.Submit(text)
}

// Send submits raw and blocks until the reply is settled. It reports
// whether the message was accepted.
func (c *Controller) Send(ctx context.Context, raw string) bool {
	id, text, ok := c.begin(raw)
	if !ok {
		return false
	}
	c.Resolve(c.respond(ctx, id, text))
	return true
}

// begin applies the synchronous half of a send.
func (c *Controller) begin(raw string) (uint64, string, bool) {
	text := strings.TrimSpace(raw)

	c.mu.Lock()
	if text == "" || c.conv.IsTyping() {
		c.mu.Unlock()
		return 0, "", false
	}
	first := c.conv.MarkFirstMessage()
	msg := c.conv.AppendUser(text)
	c.input = ""
	c.conv.SetTyping(true)
	id := c.requests.Next()
	c.pending = id
	c.mu.Unlock()

	c.logger.WithFields(log.Fields{
		"request": id,
		"message": msg.ID,
	}).Debug("user message accepted")

	// Hooks run unlocked so they may read a snapshot.
	if first && c.hooks.OnFirstMessage != nil {
		c.hooks.OnFirstMessage()
	}
	return id, text, true
}

// respond is the asynchronous half: one provider call, never retried.
func (c *Controller) respond(ctx context.Context, id uint64, text string) (reply ReplyMsg) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	start := time.Now()
	reply.RequestID = id
	defer func() {
		if r := recover(); r != nil {
			reply.Answer = provider.Answer{}
			reply.Err = errors.Errorf("response provider panicked: %v", r)
		}
		reply.Duration = time.Since(start)
	}()

	reply.Answer, reply.Err = c.provider.Respond(ctx, text)
	return reply
}

// =============================================================================
// SETTLING
// =============================================================================

// Resolve settles the in-flight request with msg. A reply for any other
// request is ignored and Resolve returns false.
func (c *Controller) Resolve(msg ReplyMsg) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry := c.logger.WithFields(log.Fields{
		"request":  msg.RequestID,
		"duration": msg.Duration,
	})
	if !c.conv.IsTyping() || msg.RequestID != c.pending {
		entry.Debug("ignoring stale reply")
		return false
	}

	if msg.Err != nil {
		entry.WithError(msg.Err).Warn("response provider failed")
		c.conv.AppendAssistant(c.copy.ProviderError)
	} else {
		entry.WithField("sources", len(msg.Answer.Sources)).Debug("reply received")
		c.conv.AppendAssistant(provider.FormatAnswer(msg.Answer, c.copy.SourcesHeading))
	}
	c.conv.SetTyping(false)
	c.pending = 0
	return true
}

// Update feeds Bubble Tea messages to the controller. It reports whether
// msg was a reply this controller settled.
func (c *Controller) Update(msg tea.Msg) bool {
	reply, ok := msg.(ReplyMsg)
	if !ok {
		return false
	}
	return c.Resolve(reply)
}

// =============================================================================
// LAYOUT NOTIFICATIONS
// =============================================================================

// RequestExpand asks the presentation layer to expand the chat surface.
func (c *Controller) RequestExpand() {
	if c.hooks.OnExpand != nil {
		c.hooks.OnExpand()
	}
}

// RequestCollapse asks the presentation layer to collapse the chat surface.
func (c *Controller) RequestCollapse() {
	if c.hooks.OnCollapse != nil {
		c.hooks.OnCollapse()
	}
}

// =============================================================================
// ACCESSORS
// =============================================================================

// Snapshot returns a copy of the conversation for rendering.
func (c *Controller) Snapshot() model.Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conv.Snapshot()
}

// IsTyping reports whether a reply is pending.
func (c *Controller) IsTyping() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conv.IsTyping()
}

// Copy returns the copy table the controller was built with.
func (c *Controller) Copy() locale.Copy {
	return c.copy
}

// Kind returns the provider label.
func (c *Controller) Kind() provider.Kind {
	return c.kind
}

// ConversationID returns the session identifier used in logs.
func (c *Controller) ConversationID() string {
	return c.conv.ID
}
