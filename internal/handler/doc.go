// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package handler parses config documents and exposes them through read-only
// Handlers. JSON documents are navigated with gjson using dotted paths with
// optional array indices; properties documents are flat key/value maps parsed
// with magiconair/properties.
package handler
