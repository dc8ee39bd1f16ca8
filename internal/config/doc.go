// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config loads folio's TOML configuration.
//
// # Configuration Precedence
//
// Values are resolved in this order, later wins:
//   - Built-in defaults
//   - ~/.folio/config.toml, or the file passed with --config
//   - Environment variables (RAG_API_URL, FOLIO_*)
//   - Command-line flags (applied by the cli package)
//
// # Example
//
//	[chat]
//	provider = "remote"
//	language = "br"
//	request_timeout_secs = 30
//
//	[remote]
//	base_url = "https://api.example.com"
//
//	[log]
//	level = "debug"
//	file = "/tmp/folio.log"
//
// # Usage
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.WithError(err).Fatal("loading config")
//	}
//	lang := cfg.ResolveLanguage()
package config
