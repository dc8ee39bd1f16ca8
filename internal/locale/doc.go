// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package locale holds the user-facing copy of the chat surface in each
// supported display language.
//
// Copy records are immutable values: For returns a fresh copy every call, so
// callers may hold on to one for the lifetime of a surface without sharing
// mutable state. Language tags are negotiated with golang.org/x/text/language,
// which lets "pt", "pt-BR" and "pt_BR.UTF-8" all resolve to the "br" table.
package locale
