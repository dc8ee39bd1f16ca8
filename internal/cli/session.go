// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"

	"github.com/jeranaias/folio-chat/internal/chat"
	"github.com/jeranaias/folio-chat/internal/config"
	"github.com/jeranaias/folio-chat/internal/locale"
	"github.com/jeranaias/folio-chat/internal/provider"
)

// session is everything needed to start a conversation.
type session struct {
	provider provider.Provider
	copy     locale.Copy
	kind     provider.Kind
	options  []chat.Option
}

// newSession builds the provider and controller options from cfg. Provider
// calls are recorded in reg when it is not nil.
func newSession(cfg *config.Config, reg prometheus.Registerer) session {
	lang := cfg.ResolveLanguage()
	c := locale.For(lang)
	kind := cfg.ProviderKind()

	var (
		p        provider.Provider
		greeting string
	)
	switch kind {
	case provider.KindMock:
		minDelay, maxDelay := cfg.MockDelay()
		p = provider.NewMock(c, provider.WithDelay(minDelay, maxDelay))
		greeting = c.OfflineGreeting
	default:
		p = provider.NewRemote(cfg.Remote.BaseURL)
		greeting = c.Greeting
	}

	if reg != nil {
		p = provider.Instrument(p, kind, provider.NewMetrics(reg))
	}

	log.WithFields(log.Fields{
		"provider": kind,
		"language": lang,
		"base_url": cfg.Remote.BaseURL,
	}).Debug("session configured")

	return session{
		provider: p,
		copy:     c,
		kind:     kind,
		options: []chat.Option{
			chat.WithKind(kind),
			chat.WithGreeting(greeting),
			chat.WithTimeout(cfg.RequestTimeout()),
		},
	}
}

// controller starts a conversation with no presentation hooks.
func (s session) controller() *chat.Controller {
	return chat.New(s.provider, s.copy, s.options...)
}
