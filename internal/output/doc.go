// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package output renders loaded config documents as text tables, JSON, YAML
// or their raw source.
package output
