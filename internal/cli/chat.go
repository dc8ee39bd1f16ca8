// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jeranaias/folio-chat/internal/chat"
	"github.com/jeranaias/folio-chat/internal/provider"
	uichat "github.com/jeranaias/folio-chat/internal/ui/chat"
	"github.com/jeranaias/folio-chat/internal/ui/styles"
)

// runChat starts the TUI when attached to a terminal and line mode
// otherwise.
func (a *app) runChat(cmd *cobra.Command, args []string) error {
	if interactive(cmd.InOrStdin(), cmd.OutOrStdout()) {
		return a.runTUI()
	}
	return runLines(cmd.Context(), a.session().controller(), cmd.InOrStdin(), cmd.OutOrStdout())
}

// =============================================================================
// TUI
// =============================================================================

func (a *app) runTUI() error {
	restore, err := redirectLogs(a.cfg.Log.File)
	if err != nil {
		return err
	}
	defer restore()

	s := a.session()
	m := uichat.New(styles.NewTheme(), s.provider, s.copy, uichat.Options{
		Featured:   a.cfg.UI.Featured,
		Controller: s.options,
	})

	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return errors.Wrap(err, "running chat UI")
	}
	return nil
}

// =============================================================================
// LINE MODE
// =============================================================================

// runLines prints the greeting, then submits each non-blank input line and
// prints the assistant reply. It stops at end of input or when ctx is done.
func runLines(ctx context.Context, ctrl *chat.Controller, in io.Reader, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	fmt.Fprintln(out, ctrl.Snapshot().Last().Content)

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*provider.MaxMessageLength)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return nil
		}
		if !ctrl.Send(ctx, scanner.Text()) {
			continue
		}
		fmt.Fprintln(out)
		fmt.Fprintln(out, ctrl.Snapshot().Last().Content)
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "reading input")
	}
	log.WithField("conversation", ctrl.ConversationID()).Debug("input closed")
	return nil
}
