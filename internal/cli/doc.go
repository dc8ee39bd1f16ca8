// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli implements the folio command line.
//
// # Commands
//
//	folio                  Chat interactively (TUI on a terminal, line mode otherwise)
//	folio ask "question"   Ask one question and print the answer
//	folio version          Print version information
//
// # Global Flags
//
//	--config PATH          Config file (default ~/.folio/config.toml)
//	--provider NAME        remote or mock
//	--language LANG        en, br, pt-BR or auto
//	--base-url URL         RAG backend base URL
//	--log-level LEVEL      trace, debug, info, warn or error
//	--listen-metrics ADDR  Serve Prometheus metrics on ADDR
//
// Flags override the config file, which overrides the built-in defaults.
package cli
