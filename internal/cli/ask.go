// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	uichat "github.com/jeranaias/folio-chat/internal/ui/chat"
)

func newAskCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "ask QUESTION...",
		Short: "Ask one question and print the answer",
		Example: `  folio ask "What tech do you use?"
  folio --provider mock ask tell me about your projects`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			question := strings.Join(args, " ")
			ctrl := a.session().controller()
			if !ctrl.Send(cmd.Context(), question) {
				return errors.New("question is empty")
			}
			displayResponse(cmd.OutOrStdout(), ctrl.Snapshot().Last().Content)
			return nil
		},
	}
}

// displayResponse prints content, rendering markdown only on a terminal so
// piped output stays plain.
func displayResponse(out io.Writer, content string) {
	if isTerminal(out) {
		fmt.Fprint(out, renderMarkdown(content, terminalWidth(out)))
		return
	}
	fmt.Fprintln(out, content)
}

func renderMarkdown(content string, width int) string {
	content = uichat.UnwrapFence(content)
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return content + "\n"
	}
	rendered, err := r.Render(content)
	if err != nil {
		return content + "\n"
	}
	return rendered
}
