// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/jeranaias/folio-chat/internal/config"
)

// app is the state shared by the commands of one invocation.
type app struct {
	flags    *GlobalFlags
	cfg      *config.Config
	registry *prometheus.Registry
	stop     func()
}

// NewRootCommand builds the folio command tree.
func NewRootCommand() *cobra.Command {
	a := &app{
		flags:    NewGlobalFlags(),
		registry: prometheus.NewRegistry(),
	}

	cmd := &cobra.Command{
		Use:   "folio",
		Short: "Chat with a portfolio assistant",
		Long: `folio is a terminal chat with a portfolio assistant. Answers come from a
RAG backend, or from canned replies when the provider is "mock".`,
		Args:               cobra.NoArgs,
		SilenceUsage:       true,
		SilenceErrors:      true,
		PersistentPreRunE:  a.setup,
		PersistentPostRunE: a.teardown,
		RunE:               a.runChat,
	}
	a.flags.BindFlags(cmd.PersistentFlags())

	cmd.AddCommand(
		newAskCommand(a),
		NewVersionCommand(),
	)
	return cmd
}

// setup loads config and starts logging and metrics before any command.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := a.flags.LoadConfig(cmd.Flags())
	if err != nil {
		return err
	}
	a.cfg = cfg
	configureLogging(cfg.LogLevel())

	if a.flags.ListenMetrics != "" {
		_, stop, err := serveMetrics(a.flags.ListenMetrics, a.registry)
		if err != nil {
			return err
		}
		a.stop = stop
	}
	return nil
}

func (a *app) teardown(cmd *cobra.Command, args []string) error {
	if a.stop != nil {
		a.stop()
		a.stop = nil
	}
	return nil
}

func (a *app) session() session {
	return newSession(a.cfg, a.registry)
}
