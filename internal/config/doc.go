// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package config loads the cfgstore rc file, a YAML document that supplies
// defaults for the CLI (config root, format, output and colors). It is located
// through CFGSTORE_CFG_FILE or in the user's configuration directory:
//   - Linux: $XDG_CONFIG_HOME/cfgstore.yaml or $HOME/.config/cfgstore.yaml
//   - macOS: $HOME/Library/Application Support/cfgstore.yaml
//   - Windows: %AppData%/cfgstore.yaml
//
// The rc file configures the tool only; the config files it inspects are
// handled by the store package.
package config
