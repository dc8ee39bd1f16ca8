// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"github.com/spf13/pflag"

	"github.com/jeranaias/folio-chat/internal/config"
)

// GlobalFlags are the flags shared by every command.
type GlobalFlags struct {
	ConfigPath    string
	Provider      string
	Language      string
	BaseURL       string
	LogLevel      string
	ListenMetrics string
}

func NewGlobalFlags() *GlobalFlags {
	return &GlobalFlags{}
}

func (f *GlobalFlags) BindFlags(fs *pflag.FlagSet) {
	fs.StringVar(&f.ConfigPath, "config", "", "Config file (default ~/.folio/config.toml)")
	fs.StringVar(&f.Provider, "provider", "", "Response provider: remote or mock")
	fs.StringVar(&f.Language, "language", "", "Chat language: en, br, pt-BR or auto")
	fs.StringVar(&f.BaseURL, "base-url", "", "RAG backend base URL")
	fs.StringVar(&f.LogLevel, "log-level", "", "Log level (trace,debug,info,warn,error) (default info)")
	fs.StringVar(&f.ListenMetrics, "listen-metrics", "", "Serve Prometheus metrics on this address, e.g. :2112")
}

// LoadConfig loads the config file named by --config, or the default one,
// and applies any flags that were set explicitly.
func (f *GlobalFlags) LoadConfig(fs *pflag.FlagSet) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if f.ConfigPath != "" {
		cfg, err = config.LoadFromPath(f.ConfigPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	if fs.Changed("provider") {
		cfg.Chat.Provider = f.Provider
	}
	if fs.Changed("language") {
		cfg.Chat.Language = f.Language
	}
	if fs.Changed("base-url") {
		cfg.Remote.BaseURL = f.BaseURL
	}
	if fs.Changed("log-level") {
		cfg.Log.Level = f.LogLevel
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
