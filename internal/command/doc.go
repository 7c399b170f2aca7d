// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package command defines the CLI command set for cfgstore. It wires flags,
// validators, actions, and shell completion for the get, keys and diff
// subcommands, each of which reads config files through a store.Store.
package command
